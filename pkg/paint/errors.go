package paint

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidImageArgument = errors.New("image argument must be a path, an image.Image or a *Canvas")
	ErrIndexOutOfRange      = errors.New("pixel index out of range")
	ErrInvalidComponent     = errors.New("invalid color component")
	ErrInvalidSize          = errors.New("invalid canvas size")
	ErrDecode               = errors.New("image decode failed")
	ErrEncode               = errors.New("image encode failed")
)

// CodecError reports a failure of the image codec, keeping the codec's own
// error as the cause.
type CodecError struct {
	Op   string
	Path string
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func (e *CodecError) Is(target error) bool {
	switch target {
	case ErrDecode:
		return e.Op == "decode"
	case ErrEncode:
		return e.Op == "encode"
	}
	return false
}
