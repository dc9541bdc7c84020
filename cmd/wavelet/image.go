package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"

	"github.com/octu0/wavelet"
)

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if 1 < v {
		return 255
	}
	return uint8(int(v * 255.5))
}

// decodeImage reads any registered format into a 3-channel float image
// with samples in 0..1.
func decodeImage(r io.Reader) (*wavelet.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return fromStdImage(src), nil
}

func loadImage(path string) (*wavelet.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	img, err := decodeImage(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

func fromStdImage(src image.Image) *wavelet.Image {
	rect := src.Bounds()
	width, height := rect.Dx(), rect.Dy()

	img := wavelet.NewImage(width, height, wavelet.RGB)
	for y := 0; y < height; y += 1 {
		for x := 0; x < width; x += 1 {
			r, g, b, _ := src.At(rect.Min.X+x, rect.Min.Y+y).RGBA()
			p := img.At(x, y)
			p[0] = float64(r>>8) / 255
			p[1] = float64(g>>8) / 255
			p[2] = float64(b>>8) / 255
		}
	}
	return img
}

// toStdImage clamps every sample into 8 bits. A single-channel image is
// written as gray.
func toStdImage(img *wavelet.Image) image.Image {
	rect := image.Rect(0, 0, img.Width, img.Height)
	if img.Channels == wavelet.Gray {
		dst := image.NewGray(rect)
		for y := 0; y < img.Height; y += 1 {
			for x := 0; x < img.Width; x += 1 {
				dst.SetGray(x, y, color.Gray{Y: clampU8(img.At(x, y)[0])})
			}
		}
		return dst
	}

	dst := image.NewNRGBA(rect)
	for y := 0; y < img.Height; y += 1 {
		for x := 0; x < img.Width; x += 1 {
			p := img.At(x, y)
			c := color.NRGBA{A: 255}
			c.R = clampU8(p[0])
			if 1 < len(p) {
				c.G = clampU8(p[1])
			}
			if 2 < len(p) {
				c.B = clampU8(p[2])
			}
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

func encodePNG(w io.Writer, img *wavelet.Image) error {
	if err := png.Encode(w, toStdImage(img)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// saveImage encodes in memory first so that a failed encode leaves no file.
func saveImage(img *wavelet.Image, path string) error {
	buf := bytes.NewBuffer(nil)
	if err := encodePNG(buf, img); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
