// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"bufio"
	"os"
	"path/filepath"

	"grimm.is/wfdocs/internal/errors"
)

// WriteFile replaces path with content, creating parent directories.
// The file is closed on every path and a failed close is reported.
func WriteFile(path, content string) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapIO(err, dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO(err, path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO(cerr, path)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(content); err != nil {
		return errors.WrapIO(err, path)
	}
	if err := w.Flush(); err != nil {
		return errors.WrapIO(err, path)
	}
	return nil
}

// WriteToDir writes every Hugo page below dir.
func (h *HugoOutput) WriteToDir(dir string) error {
	for _, name := range h.Names() {
		if err := WriteFile(filepath.Join(dir, name), h.Files[name]); err != nil {
			return err
		}
	}
	return nil
}

// readExisting returns the current content of path, or "" when it does not exist.
func readExisting(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.WrapIO(err, path)
	}
	return string(data), nil
}
