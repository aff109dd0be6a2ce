package mediaimpl

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/capsy-labs/capsy-companion/internal/media"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
)

func newPreparer() *PreparerImpl {
	return New(Opts{Logger: logger.New(logger.Opts{Env: "test"})})
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompressImage(t *testing.T) {
	p := newPreparer()
	encoded, err := p.CompressImage(context.Background(), writeTestPNG(t))
	if err != nil {
		t.Fatalf("CompressImage: %v", err)
	}
	// Every image comes back as jpeg regardless of input format.
	if !strings.HasPrefix(encoded, "data:image/jpeg;base64,") {
		t.Errorf("unexpected prefix: %.40s", encoded)
	}
}

func TestCompressImage_NotAnImage(t *testing.T) {
	p := newPreparer()
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := p.CompressImage(context.Background(), path); err == nil {
		t.Error("expected decode error for non-image input")
	}
}

func TestEncodeFile(t *testing.T) {
	p := newPreparer()
	path := filepath.Join(t.TempDir(), "clip.bin")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}

	encoded, err := p.EncodeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if !strings.HasPrefix(encoded, "data:") || !strings.Contains(encoded, ";base64,") {
		t.Errorf("not a data URL: %.40s", encoded)
	}
}

func TestValidateSize(t *testing.T) {
	p := newPreparer()

	tests := []struct {
		name    string
		encoded string
		wantErr bool
	}{
		{"Small Image", "data:image/jpeg;base64," + strings.Repeat("A", 128), false},
		{"Oversized Image", "data:image/jpeg;base64," + strings.Repeat("A", media.MaxImageBytes), true},
		// The same size is fine for non-image media, whose ceiling is far higher.
		{"Video At Image Ceiling", "data:video/mp4;base64," + strings.Repeat("A", media.MaxImageBytes), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateSize(tt.encoded)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
