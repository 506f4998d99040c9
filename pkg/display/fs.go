package display

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/afero"
)

func newFs(path string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	return afero.NewBasePathFs(fs, path), nil
}

// NewTmpFs hands out unique file names under dir, or under the system temp
// dir when dir is empty.
func NewTmpFs(dir string) (*TmpFs, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	fs, err := newFs(dir)
	if err != nil {
		return nil, err
	}
	return &TmpFs{fs: fs, dir: dir}, nil
}

type TmpFs struct {
	fs  afero.Fs
	dir string
}

// NewFile returns a name relative to the temp fs and its real path.
func (t *TmpFs) NewFile(ext string) (string, string) {
	name := xid.New().String() + ext
	real, err := t.fs.(*afero.BasePathFs).RealPath(name)
	if err != nil {
		real = filepath.Join(t.dir, name)
	}
	return name, real
}

func (t *TmpFs) Fs() afero.Fs {
	return t.fs
}
