// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package workflowdoc

import (
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"grimm.is/wfdocs/internal/errors"
)

// Discover lists the files directly inside dir whose base name matches
// pattern. Subdirectories are not searched. Results follow the directory
// listing order; callers must not depend on it.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Attr(errors.Wrapf(err, errors.KindValidation, "invalid file pattern %q", pattern), "pattern", pattern)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO(err, dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !g.Match(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
