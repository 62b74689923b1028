package image

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError is returned when an image cannot be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Load loads an image for use given a file path
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, &DecodeError{path, e}
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, &DecodeError{path, e}
	}

	return i, nil
}
