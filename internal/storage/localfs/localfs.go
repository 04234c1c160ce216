// Package localfs opens directories of the host filesystem as hackpadfs filesystems.
package localfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// OpenDir creates dir if needed and returns a filesystem rooted at it.
func OpenDir(dir string) (hackpadfs.FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", abs, err)
	}
	root := osfs.NewFS()
	fsPath, err := root.FromOSPath(abs)
	if err != nil {
		return nil, err
	}
	return root.Sub(fsPath)
}
