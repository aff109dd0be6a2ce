package mediaimpl

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/capsy-labs/capsy-companion/internal/media"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
	"golang.org/x/image/draw"
)

const (
	maxDimension = 1920
	jpegQuality  = 80
)

type Opts struct {
	fx.In

	Logger logger.Logger
}

type PreparerImpl struct {
	logger logger.Logger
}

func New(opts Opts) *PreparerImpl {
	return &PreparerImpl{logger: opts.Logger.WithComponent("MediaPreparer")}
}

var _ media.Preparer = (*PreparerImpl)(nil)

func (p *PreparerImpl) CompressImage(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	if scaled := downscale(img); scaled != nil {
		p.logger.Debug("Downscaled image", "path", path, "format", format)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image %s: %w", path, err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (p *PreparerImpl) EncodeFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	mt := mimetype.Detect(raw)
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func (p *PreparerImpl) ValidateSize(encoded string) error {
	limit := media.MaxOtherBytes
	if strings.HasPrefix(encoded, "data:image/") {
		limit = media.MaxImageBytes
	}
	if len(encoded) > limit {
		return media.ErrTooLarge
	}
	return nil
}

// downscale shrinks img so its longest side fits maxDimension, or returns nil
// when no scaling is needed.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return nil
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
