// Package carrier loads and saves the images that payloads are embedded
// in. Every image is normalized to 8-bit NRGBA so the codec sees a flat
// buffer of one byte per channel slot.
package carrier

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Channels per pixel after normalization.
const Channels = 4

// Pixmap is a decoded carrier image.
type Pixmap struct {
	img *image.NRGBA
}

// Load decodes the image file at path and normalizes it.
func Load(path string) (*Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return p, nil
}

// Decode reads an image in any registered format from r and normalizes it
// to NRGBA. Alpha stays non-premultiplied so every channel byte survives a
// PNG round trip.
func Decode(r io.Reader) (*Pixmap, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// FromImage normalizes an in-memory image, reusing its storage when it is
// already tightly packed NRGBA.
func FromImage(src image.Image) *Pixmap {
	if img, ok := src.(*image.NRGBA); ok &&
		img.Rect.Min == (image.Point{}) && img.Stride == img.Rect.Dx()*Channels {
		return &Pixmap{img: img}
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Pixmap{img: img}
}

func (p *Pixmap) Width() int  { return p.img.Rect.Dx() }
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// Slots exposes the raw channel-slot bytes the codec reads and writes.
// The slice aliases the pixmap's storage.
func (p *Pixmap) Slots() []byte { return p.img.Pix }

// EncodePNG writes the pixmap as PNG to w.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, p.img)
}

// Save writes the pixmap to path, in a format chosen by the extension.
// Only lossless formats are accepted: lossy compression would destroy the
// embedded low-order bits. The file is written through a temporary name
// and renamed into place, so a failed save leaves no partial output.
func (p *Pixmap) Save(path string) (err error) {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = p.EncodePNG
	case ".bmp":
		encode = func(w io.Writer) error { return bmp.Encode(w, p.img) }
	case ".tif", ".tiff":
		encode = func(w io.Writer) error { return tiff.Encode(w, p.img, nil) }
	default:
		return fmt.Errorf("unsupported output format %q, use png, bmp or tiff", ext)
	}

	outFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			outFile.Close()
			os.Remove(outFile.Name())
		}
	}()

	if err = encode(outFile); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", path, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination %q: %w", path, err)
	}
	if err = outFile.Close(); err != nil {
		return fmt.Errorf("could not close destination %q: %w", path, err)
	}
	if err = os.Rename(outFile.Name(), path); err != nil {
		return fmt.Errorf("could not rename destination %q: %w", path, err)
	}
	return nil
}
