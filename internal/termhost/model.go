// Package termhost runs a scroller on a character-cell display inside a
// Bubble Tea program. Each cell of the grid is one display pixel.
package termhost

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edward-ap/smoothscroll/scroller"
)

const (
	tickInterval = 33 * time.Millisecond
	speedStep    = 2
)

// tickMsg drives the frame loop.
type tickMsg time.Time

func doTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Display lipgloss.Style
	Status  lipgloss.Style
	Paused  lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles tints the display text with fg, a "#RRGGBB" string.
func DefaultStyles(fg, bg string) Styles {
	display := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color(fg))
	if bg != "" {
		display = display.Background(lipgloss.Color(bg))
	}
	return Styles{
		Display: display,
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	}
}

// Model is the Bubble Tea model hosting one scroller.
type Model struct {
	sc      *scroller.Scroller
	clock   *scroller.ManualClock
	display scroller.Surface
	base    []scroller.Option
	// baseHorizontal is the axis the base options were written for.
	baseHorizontal bool
	styles         Styles

	paused bool
	last   time.Time
	err    error
}

// NewModel builds a model showing text on a cols x rows grid. opts are
// applied to every scroller the model builds; the model adds its own clock
// and element factory.
func NewModel(text string, cols, rows int, styles Styles, opts ...scroller.Option) (Model, error) {
	m := Model{
		clock:   &scroller.ManualClock{},
		display: scroller.Surface{W: cols, H: rows},
		base:    opts,
		styles:  styles,
	}
	sc, err := m.build(text)
	if err != nil {
		return Model{}, err
	}
	m.sc = sc
	m.baseHorizontal = sc.Direction().Horizontal()
	return m, nil
}

func (m Model) build(text string, extra ...scroller.Option) (*scroller.Scroller, error) {
	opts := make([]scroller.Option, 0, len(m.base)+len(extra)+2)
	opts = append(opts, m.base...)
	opts = append(opts, extra...)
	opts = append(opts, scroller.WithClock(m.clock), scroller.WithElementFactory(CellFactory))
	return scroller.New(text, m.display, opts...)
}

// Scroller exposes the hosted scroller.
func (m Model) Scroller() *scroller.Scroller { return m.sc }

// Paused reports whether the clock is frozen.
func (m Model) Paused() bool { return m.paused }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return doTick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m = m.advance(time.Time(msg))
		return m, doTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// advance moves the clock by the wall time since the previous tick. The
// first tick only records a baseline.
func (m Model) advance(now time.Time) Model {
	if !m.last.IsZero() && !m.paused {
		m.clock.Advance(now.Sub(m.last).Seconds())
	}
	m.last = now
	m.sc.Update()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case " ", "space":
		m.paused = !m.paused
	case "r":
		m.sc.Reset()
	case "+", "=":
		m.sc.SetSpeed(m.sc.Speed() + speedStep)
	case "-":
		m.sc.SetSpeed(m.sc.Speed() - speedStep)
	case "left", "right", "up", "down":
		m = m.changeDirection(msg.String())
	}
	return m, nil
}

// changeDirection rebuilds the scroller; direction is fixed per scroller.
func (m Model) changeDirection(dir string) Model {
	if m.sc.Direction().String() == dir {
		return m
	}
	next, err := scroller.ParseDirection(dir)
	if err != nil {
		m.err = err
		return m
	}
	extra := []scroller.Option{scroller.WithDirection(dir), scroller.WithSpeed(m.sc.Speed())}
	if next.Horizontal() != m.baseHorizontal {
		// a cross-axis position from the base options belongs to the other axis
		extra = append(extra, scroller.WithPosition(crossCentre(next, m.display)))
	}
	sc, err := m.build(m.sc.Text(), extra...)
	if err != nil {
		m.err = err
		return m
	}
	m.sc = sc
	m.err = nil
	return m
}

// crossCentre is the default cross-axis coordinate for d.
func crossCentre(d scroller.Direction, display scroller.Surface) int {
	if d.Horizontal() {
		return display.H / 2
	}
	return display.W / 2
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Display.Render(strings.Join(renderGrid(m.sc, m.display), "\n")))
	b.WriteByte('\n')
	status := fmt.Sprintf("%s  %.0f cells/s  pos %.1f", m.sc.Direction(), m.sc.Speed(), m.sc.Position())
	b.WriteString(m.styles.Status.Render(status))
	if m.paused {
		b.WriteString("  ")
		b.WriteString(m.styles.Paused.Render("paused"))
	}
	if m.err != nil {
		b.WriteString("  ")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}
	b.WriteByte('\n')
	b.WriteString(m.styles.Status.Render("space pause  r reset  arrows direction  +/- speed  q quit"))
	return b.String()
}

// painter is implemented by elements that can draw onto a cell grid.
type painter interface {
	Paint(grid [][]rune)
}

// renderGrid rasterizes the scroller onto a blank grid and returns one string
// per row.
func renderGrid(sc *scroller.Scroller, display scroller.Surface) []string {
	w, h := max(display.W, 0), max(display.H, 0)
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}
	if p, ok := sc.Label().(painter); ok {
		p.Paint(grid)
	}
	rows := make([]string, len(grid))
	for y, row := range grid {
		var sb strings.Builder
		for _, r := range row {
			if r != wideTail {
				sb.WriteRune(r)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
