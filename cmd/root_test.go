package cmd

import (
	"bytes"
	"errors"
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/colortally/image"
)

func tanSettings(path string) settings {
	return settings{path: path, top: image.DefaultTop, minR: 200, minG: 200, minB: 180}
}

func writeLogo(t *testing.T, px ...color.NRGBA) string {
	t.Helper()
	img := goimage.NewNRGBA(goimage.Rect(0, 0, len(px), 1))
	for x, c := range px {
		img.SetNRGBA(x, 0, c)
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	cream := color.NRGBA{245, 235, 205, 255}
	path := writeLogo(t, white, cream, color.NRGBA{90, 60, 30, 255}, white)

	var buf bytes.Buffer
	if err := run(&buf, tanSettings(path)); err != nil {
		t.Fatal(err)
	}

	want := "RGB: (255, 255, 255), Hex: #ffffff, Count: 2\n" +
		"RGB: (245, 235, 205), Hex: #f5ebcd, Count: 1\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunTitleAndLab(t *testing.T) {
	path := writeLogo(t, color.NRGBA{255, 255, 255, 255})

	s := tanSettings(path)
	s.title = "Most common tan colors in the logo:"
	s.lab = true

	var buf bytes.Buffer
	if err := run(&buf, s); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != s.title || !strings.Contains(lines[1], "Lab: (") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunMissingImage(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, tanSettings(filepath.Join(t.TempDir(), "nope.png")))

	var de *image.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want *image.DecodeError", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
