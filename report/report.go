// Package report renders ranked colors as text, one line per color.
package report

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colortally/image"
	"github.com/mmuldo/colortally/palette"
)

const (
	// DefaultLine is the line printed for each color.
	DefaultLine = "RGB: ({{ r }}, {{ g }}, {{ b }}), Hex: {{ hex }}, Count: {{ count }}"

	// LabLine is DefaultLine followed by the color's Lab coordinates.
	LabLine = DefaultLine + `, Lab: ({{ l|floatformat:2 }}, {{ a|floatformat:2 }}, {{ bb|floatformat:2 }})`
)

// Writer writes one templated line per ranked color.
type Writer struct {
	out   io.Writer
	tpl   *pongo2.Template
	title string
	lab   bool // expose Lab and delta to the template
}

// New compiles line, falling back to DefaultLine when it is empty.
// A non-empty title is written once before the first color.
func New(out io.Writer, line, title string) (*Writer, error) {
	if line == "" {
		line = DefaultLine
	}

	tpl, e := pongo2.FromString(line)
	if e != nil {
		return nil, fmt.Errorf("parse template %q: %w", line, e)
	}

	return &Writer{out: out, tpl: tpl, title: title, lab: line != DefaultLine}, nil
}

func (w *Writer) Write(ccl image.ColorCountList) error {
	if w.title != "" {
		if _, e := fmt.Fprintln(w.out, w.title); e != nil {
			return e
		}
	}

	for i, cc := range ccl {
		o, e := w.tpl.Execute(context(i, cc, ccl[0].Color, w.lab))
		if e != nil {
			return fmt.Errorf("render %s: %w", cc.Color.Hex(), e)
		}
		if _, e = fmt.Fprintln(w.out, o); e != nil {
			return e
		}
	}

	return nil
}

// context exposes a ranked color to the line template.
// delta is the CIE2000 difference from the most frequent color. The Lab
// values are only computed when lab is set; DefaultLine never uses them.
func context(rank int, cc image.ColorCount, top image.Pixel, lab bool) pongo2.Context {
	ctx := pongo2.Context{
		"rank":  rank + 1,
		"r":     int(cc.Color.R),
		"g":     int(cc.Color.G),
		"b":     int(cc.Color.B),
		"hex":   cc.Color.Hex(),
		"count": cc.Count,
	}
	if !lab {
		return ctx
	}

	c := palette.Lab(cc.Color)
	ctx["l"] = c.L()
	ctx["a"] = c.A()
	ctx["bb"] = c.B()
	ctx["delta"] = palette.Distance(cc.Color, top)
	return ctx
}
