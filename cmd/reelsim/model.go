package main

import (
	"image/color"
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"demoreel-go/bus"
	"demoreel-go/services/reel/platform"
	"demoreel-go/types"
)

const (
	refreshEvery  = 50 * time.Millisecond
	buttonHold    = 120 * time.Millisecond // longer than the debounce window
	encButtonHold = 60 * time.Millisecond
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
)

// lineLog keeps the last n console lines written by the diag service.
type lineLog struct {
	mu    sync.Mutex
	n     int
	lines []string
	part  string
}

func newLineLog(n int) *lineLog { return &lineLog{n: n} }

func (l *lineLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.part + string(p)
	parts := strings.Split(s, "\n")
	l.part = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		l.lines = append(l.lines, line)
	}
	if over := len(l.lines) - l.n; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	return len(p), nil
}

func (l *lineLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

type refreshMsg time.Time
type releaseMsg struct{ pin *platform.FakePin }

func refresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

// press holds pin low and schedules its release.
func press(pin *platform.FakePin, hold time.Duration) tea.Cmd {
	pin.Press()
	return tea.Tick(hold, func(time.Time) tea.Msg { return releaseMsg{pin: pin} })
}

type model struct {
	host  *platform.Host
	sub   *bus.Subscription
	log   *lineLog
	state types.ReelState
	width int
}

func newModel(host *platform.Host, sub *bus.Subscription, log *lineLog) model {
	return model{host: host, sub: sub, log: log, width: 80}
}

func (m model) Init() tea.Cmd { return refresh() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "[":
			return m, press(m.host.Down, buttonHold)
		case "]":
			return m, press(m.host.Up, buttonHold)
		case "h", "left":
			m.host.Turn(-1)
		case "l", "right":
			m.host.Turn(+1)
		case " ":
			return m, press(m.host.Button, encButtonHold)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case releaseMsg:
		msg.pin.Release()
	case refreshMsg:
		m.state = m.latestState()
		return m, refresh()
	}
	return m, nil
}

func (m model) latestState() types.ReelState {
	st := m.state
	for {
		select {
		case msg := <-m.sub.Channel():
			if s, ok := msg.Payload.(types.ReelState); ok {
				st = s
			}
		default:
			return st
		}
	}
}

func hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("demo reel"))
	b.WriteString("\n\n")

	width := m.width
	if width < 1 {
		width = 80
	}
	for i, c := range m.host.Strip.Snapshot() {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex(c))).Render("█"))
	}
	b.WriteString("\n\n")

	st := m.state
	b.WriteString(statusStyle.Render(
		"mode " + st.Mode +
			"  pattern " + strconv.Itoa(st.Pattern) + " " + st.PatternName +
			"  hue " + strconv.Itoa(int(st.SolidHue)) +
			"  brightness " + strconv.Itoa(int(st.Brightness))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[ ] prev/next  ←/→ turn  space click  q quit"))
	b.WriteString("\n\n")
	for _, line := range m.log.Lines() {
		b.WriteString(dimStyle.Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}
