package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bububa/food-agents/components"
)

// File loads an image from the local filesystem
type File struct {
	path    string
	maxSize int64
}

var _ Loader = (*File)(nil)

func NewFile(path string, maxSize int64) *File {
	return &File{path: path, maxSize: maxSize}
}

func (f *File) Load(ctx context.Context) (*components.Image, error) {
	fp, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, components.NewValidationError(components.FieldError{
				Field:   "image",
				Message: fmt.Sprintf("%s: %s", components.MsgImageMissing, f.path),
			})
		}
		return nil, err
	}
	defer fp.Close()
	info, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", f.path)
	}
	if f.maxSize > 0 && info.Size() > f.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, f.path, info.Size())
	}
	return readLimited(fp, f.maxSize)
}
