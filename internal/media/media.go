package media

import (
	"context"

	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
)

// Size ceilings are measured against the encoded string, matching what the
// backend enforces on the payload it stores.
const (
	MaxImageBytes = 10 << 20 // images
	MaxOtherBytes = 4 << 30  // video and anything else
)

var ErrTooLarge = apperrors.New("the file is too large: images up to 10MB, other media up to 4GB")

// Preparer turns local files into the encoded strings the backend expects.
type Preparer interface {
	// CompressImage re-encodes an image file, downscaling oversized ones,
	// and returns it as a base64 data URL.
	CompressImage(ctx context.Context, path string) (string, error)

	// EncodeFile base64-encodes any file as a data URL without recompression.
	EncodeFile(ctx context.Context, path string) (string, error)

	// ValidateSize checks an encoded string against the ceiling for its media
	// class and returns ErrTooLarge on violation.
	ValidateSize(encoded string) error
}
