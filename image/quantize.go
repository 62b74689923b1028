package image

import (
	"image"

	"github.com/esimov/colorquant"
)

// Quantize reduces img to at most num colors. num <= 0 returns img as is.
func Quantize(img image.Image, num int) image.Image {
	if num <= 0 {
		return img
	}

	o := image.NewNRGBA(img.Bounds())
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}
