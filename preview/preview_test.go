package preview

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderTransparent(t *testing.T) {
	out := Render(solid(8, 8, color.NRGBA{}), 4)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		if l != "    " {
			t.Errorf("line %d = %q, want 4 spaces", i, l)
		}
	}
}

func TestRenderOpaque(t *testing.T) {
	out := Render(solid(16, 8, color.NRGBA{255, 0, 0, 255}), 8)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		if strings.Count(l, "▀") != 8 {
			t.Errorf("line %d has %d half blocks, want 8: %q", i, strings.Count(l, "▀"), l)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := Render(image.NewNRGBA(image.Rectangle{}), 10); out != "" {
		t.Errorf("empty image rendered %q", out)
	}
	if out := Render(solid(2, 2, color.NRGBA{A: 255}), 0); out != "" {
		t.Errorf("zero cols rendered %q", out)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   color.NRGBA
		want string
	}{
		{color.NRGBA{255, 0, 0, 255}, "#ff0000"},
		{color.NRGBA{255, 255, 255, 0}, "#000000"},
		{color.NRGBA{200, 100, 50, 128}, "#643219"},
	}

	for _, tt := range tests {
		if got := string(hex(tt.in)); got != tt.want {
			t.Errorf("hex(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFitCols(t *testing.T) {
	square := image.Rect(0, 0, 512, 512)
	tests := []struct {
		width, height int
		want          int
	}{
		{80, 24, 48},
		{40, 100, 40},
		{80, 0, 0},
	}

	for _, tt := range tests {
		if got := fitCols(square, tt.width, tt.height); got != tt.want {
			t.Errorf("fitCols(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestModelQuitsOnKey(t *testing.T) {
	m := model{img: solid(4, 4, color.NRGBA{A: 255}), title: "icon"}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if v := next.View(); !strings.Contains(v, "icon") || !strings.Contains(v, "press any key") {
		t.Errorf("view missing title or help: %q", v)
	}
	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command on key press")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("key press did not produce tea.QuitMsg")
	}
}
