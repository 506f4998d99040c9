package paint

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// Load decodes the image stored at name in fs.
func Load(fs afero.Fs, name string) (*Canvas, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, &CodecError{Op: "decode", Path: name, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(f, name)
}

// Decode reads an image in any format known to imaging. name is only used
// in errors.
func Decode(r io.Reader, name string) (*Canvas, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, &CodecError{Op: "decode", Path: name, Err: err}
	}
	return FromImage(img), nil
}

// Save encodes the canvas in the format implied by the extension of name,
// creating parent directories as needed.
func (c *Canvas) Save(fs afero.Fs, name string) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return &CodecError{Op: "encode", Path: name, Err: err}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.img, format); err != nil {
		return &CodecError{Op: "encode", Path: name, Err: err}
	}

	if dir := filepath.Dir(name); dir != "." {
		if exists, err := afero.DirExists(fs, dir); err != nil {
			return err
		} else if !exists {
			if err2 := fs.MkdirAll(dir, 0755); err2 != nil {
				return err2
			}
		}
	}

	return afero.WriteFile(fs, name, buf.Bytes(), 0644)
}

// EncodePNG is used by displays that ship the picture elsewhere.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := imaging.Encode(w, c.img, imaging.PNG); err != nil {
		return &CodecError{Op: "encode", Path: "png", Err: err}
	}
	return nil
}
