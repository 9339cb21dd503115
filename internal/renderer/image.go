package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

var ErrUnsupportedChannels = errors.New("unsupported number of color channels")

// TextureImage is decoded pixel data ready for upload. Rows are tightly packed
// and stored bottom row first, which is the order OpenGL expects.
type TextureImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// SizeBytes is the CPU-side size of the pixel data.
func (t *TextureImage) SizeBytes() int {
	return len(t.Pix)
}

// DecodeTextureImage reads a JPEG, PNG or BMP file and converts it with
// NewTextureImage.
func DecodeTextureImage(path string) (*TextureImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	tex, err := NewTextureImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return tex, nil
}

// NewTextureImage flips img vertically and packs it as RGB (opaque images) or
// RGBA. Grayscale images report a single channel and are rejected.
func NewTextureImage(img image.Image) (*TextureImage, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	pix := make([]byte, 0, w*h*channels)
	for y := h - 1; y >= 0; y-- {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		if channels == 4 {
			pix = append(pix, row...)
			continue
		}
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &TextureImage{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      pix,
	}, nil
}

func channelCount(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
