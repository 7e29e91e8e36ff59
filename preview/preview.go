// Package preview draws images in the terminal using half-block characters,
// two pixels per cell.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	"golang.org/x/term"
)

const DefaultCols = 64

// Available reports whether stdout is a terminal that can host a preview.
func Available() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Render scales img to cols cells wide and returns it as rows of "▀"
// glyphs. Alpha is composited over black; fully transparent cell pairs
// render as spaces.
func Render(img image.Image, cols int) string {
	sb := img.Bounds()
	if cols <= 0 || sb.Dx() <= 0 || sb.Dy() <= 0 {
		return ""
	}
	rows := cols * sb.Dy() / sb.Dx()
	if rows < 2 {
		rows = 2
	}
	rows += rows % 2

	small := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, sb, draw.Src, nil)

	var out strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top, bot := small.NRGBAAt(x, y), small.NRGBAAt(x, y+1)
			switch {
			case top.A == 0 && bot.A == 0:
				out.WriteString(" ")
			case bot.A == 0:
				out.WriteString(lipgloss.NewStyle().Foreground(hex(top)).Render("▀"))
			case top.A == 0:
				out.WriteString(lipgloss.NewStyle().Foreground(hex(bot)).Render("▄"))
			default:
				out.WriteString(lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bot)).Render("▀"))
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}

func hex(c color.NRGBA) lipgloss.Color {
	a := uint32(c.A)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x",
		uint32(c.R)*a/255, uint32(c.G)*a/255, uint32(c.B)*a/255))
}

type model struct {
	img    image.Image
	title  string
	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	return titleStyle.Render(m.title) + "\n" +
		Render(m.img, fitCols(m.img.Bounds(), m.width, m.height-2)) +
		helpStyle.Render("press any key to exit")
}

// fitCols picks the widest preview whose half-block rows fit in the given
// terminal cell area.
func fitCols(b image.Rectangle, width, height int) int {
	if b.Dx() <= 0 || b.Dy() <= 0 || height <= 0 {
		return 0
	}
	cols := width
	if byHeight := 2 * height * b.Dx() / b.Dy(); byHeight < cols {
		cols = byHeight
	}
	return cols
}

// Run shows img full-screen until a key is pressed.
func Run(title string, img image.Image) error {
	p := tea.NewProgram(model{img: img, title: title}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
