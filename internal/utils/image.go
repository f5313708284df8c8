// internal/utils/image.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes is the largest photo the backend accepts (10 MB).
const MaxImageBytes = 10 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds the 10 MB limit")
	ErrNotAnImage    = errors.New("file is not an image")
)

// ImageFile is a photo that passed the local checks.
type ImageFile struct {
	Path     string
	Size     int64
	MIMEType string
}

// CheckImageFile verifies that path exists, is a regular file of at most
// MaxImageBytes and sniffs as image/*. No network is involved.
func CheckImageFile(path string) (*ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotAnImage, path)
	}
	if info.Size() > MaxImageBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrImageTooLarge, info.Size())
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read image: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w (detected %s)", ErrNotAnImage, mtype.String())
	}

	return &ImageFile{Path: path, Size: info.Size(), MIMEType: mtype.String()}, nil
}

// SniffImage reports the MIME type of an in-memory upload and whether it is an image.
func SniffImage(data []byte) (string, bool) {
	mtype := mimetype.Detect(data)
	return mtype.String(), strings.HasPrefix(mtype.String(), "image/")
}
