package image

import (
	"image"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an opaque 8-bit RGB color.
type Pixel struct {
	R, G, B uint8
}

// PixelOf converts any color to a Pixel, dropping alpha without
// premultiplying it into the channels.
func PixelOf(c color.Color) Pixel {
	if c, ok := c.(color.NRGBA64); ok {
		return Pixel{uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)}
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B}
}

// Hex returns the color as lowercase #rrggbb.
func (p Pixel) Hex() string {
	return colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}.Hex()
}

// Predicate reports whether a pixel should be tallied.
type Predicate func(Pixel) bool

// Above keeps pixels whose channels are all strictly greater than the
// given thresholds.
func Above(r, g, b uint8) Predicate {
	return func(p Pixel) bool {
		return p.R > r && p.G > g && p.B > b
	}
}

// Tan selects the light tan and cream colors of the logo.
var Tan = Above(200, 200, 180)

// Tally counts occurrences of exact colors and remembers the order in
// which each color was first seen.
type Tally struct {
	counts map[Pixel]int
	order  []Pixel
}

func NewTally() *Tally {
	return &Tally{counts: make(map[Pixel]int)}
}

func (t *Tally) Add(p Pixel) {
	if t.counts[p] == 0 {
		t.order = append(t.order, p)
	}
	t.counts[p]++
}

func (t *Tally) Count(p Pixel) int { return t.counts[p] }

// Len returns the number of distinct colors.
func (t *Tally) Len() int { return len(t.order) }

// Total returns the number of pixels tallied.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

type ColorCount struct {
	Color Pixel
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int           { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool { return ccl[i].Count > ccl[j].Count }
func (ccl ColorCountList) Swap(i, j int)      { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Top returns at most the first n entries.
func (ccl ColorCountList) Top(n int) ColorCountList {
	if n <= 0 {
		return ColorCountList{}
	}
	if n > len(ccl) {
		n = len(ccl)
	}
	return ccl[:n]
}

// GetColors scans img row by row and tallies every pixel accepted by keep.
// A nil keep tallies everything.
func GetColors(img image.Image, keep Predicate) *Tally {
	t := NewTally()

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := PixelOf(img.At(x, y))
			if keep != nil && !keep(p) {
				continue
			}
			t.Add(p)
		}
	}

	return t
}

// RankColors orders a tally by count, most frequent first. Colors with
// equal counts stay in first-seen order.
func RankColors(t *Tally) ColorCountList {
	cc := make(ColorCountList, len(t.order))
	for i, p := range t.order {
		cc[i] = ColorCount{p, t.counts[p]}
	}

	sort.Stable(cc)
	return cc
}
