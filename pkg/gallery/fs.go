package gallery

import (
	"fmt"

	"github.com/spf13/afero"
)

// DirFs roots an afero fs at path. With create set the directory is made
// when missing, otherwise it must exist.
func DirFs(path string, create bool) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		if !create {
			return nil, fmt.Errorf("dir %s not exists", path)
		}
		if err := fs.MkdirAll(path, 0755); err != nil {
			return nil, err
		}
	}
	return afero.NewBasePathFs(fs, path), nil
}
