// Package ui provides the terminal star field using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/pocket-planetarium/internal/astro"
	"github.com/litescript/pocket-planetarium/internal/attitude"
	"github.com/litescript/pocket-planetarium/internal/camera"
	"github.com/litescript/pocket-planetarium/internal/logging"
	"github.com/litescript/pocket-planetarium/internal/sky"
	"github.com/litescript/pocket-planetarium/internal/version"
)

const (
	// Rows used by header, status and footer around the canvas
	chromeRows = 5

	minFOV     = 10.0
	maxFOV     = 120.0
	zoomStep   = 5.0
	defaultFPS = 33 * time.Millisecond
)

// Msg types for Bubble Tea
type (
	// FrameMsg drives one frame of the render loop.
	FrameMsg time.Time
)

// Options configures the root model.
type Options struct {
	Cache         *sky.Cache
	Source        attitude.Source
	Viewport      camera.Viewport
	PickRadius    float64
	FrameInterval time.Duration
	Labels        LabelMode
	StepDeg       float64 // manual nudge per key press
	Logger        *logging.Logger
}

// Model is the root Bubble Tea model. It owns the frame loop: every
// FrameMsg refreshes the cache when due, samples the attitude once and
// composes the frame.
type Model struct {
	cache      *sky.Cache
	source     attitude.Source
	origSource attitude.Source
	vp         camera.Viewport
	baseFOV    float64
	pickRadius float64
	interval   time.Duration
	labels     LabelMode
	step       float64
	logger     *logging.Logger

	// UI state
	width     int
	height    int
	ready     bool
	paused    bool
	pausedAt  time.Time
	statusMsg string

	// Last composed frame
	now      time.Time
	attitude attitude.Attitude
	frame    sky.Frame
	buf      []sky.Plotted
	lastPick int
}

// New creates a new root UI model.
func New(opts Options) Model {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFPS
	}
	step := opts.StepDeg
	if step <= 0 {
		step = 2
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		cache:      opts.Cache,
		source:     opts.Source,
		origSource: opts.Source,
		vp:         opts.Viewport,
		baseFOV:    opts.Viewport.FOVDeg,
		pickRadius: opts.PickRadius,
		interval:   interval,
		labels:     opts.Labels,
		step:       step,
		logger:     logger,
		frame:      sky.Frame{Picked: -1},
		lastPick:   -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return FrameMsg(time.Now()) }
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case FrameMsg:
		t := time.Time(msg)
		if m.paused {
			t = m.pausedAt
		}
		m.advance(t)
		return m, m.frameCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "left", "a":
		// Positive yaw turns the view west
		m.steer(m.step, 0, 0)
	case "right", "d":
		m.steer(-m.step, 0, 0)
	case "up", "w":
		m.steer(0, m.step, 0)
	case "down", "s":
		m.steer(0, -m.step, 0)
	case "[":
		m.steer(0, 0, -m.step)
	case "]":
		m.steer(0, 0, m.step)

	case "+", "=":
		m.zoom(-zoomStep)
	case "-", "_":
		m.zoom(zoomStep)

	case "l":
		m.labels = m.labels.next()
		m.statusMsg = "Labels: " + m.labels.String()

	case "r":
		m.reset()

	case " ", "p":
		m.paused = !m.paused
		if m.paused {
			m.pausedAt = m.now
			m.statusMsg = "Paused"
		} else {
			m.statusMsg = ""
		}

	default:
		return m, nil
	}

	// Redraw right away with the new view
	if !m.now.IsZero() {
		m.advance(m.now)
	}
	return m, nil
}

// steer nudges a manual source, taking over from a timed source at the
// current attitude.
func (m *Model) steer(dYaw, dPitch, dRoll float64) {
	man, ok := m.source.(*attitude.Manual)
	if !ok {
		man = attitude.NewManual(m.attitude)
		m.source = man
		m.statusMsg = "Manual control (r to release)"
		m.logger.Info("Switched to manual attitude at %s", m.attitude)
	}
	man.Nudge(dYaw, dPitch, dRoll)
}

func (m *Model) zoom(delta float64) {
	fov := m.vp.FOVDeg + delta
	if fov < minFOV {
		fov = minFOV
	}
	if fov > maxFOV {
		fov = maxFOV
	}
	m.vp.FOVDeg = fov
	m.statusMsg = fmt.Sprintf("FOV %.0f°", fov)
}

func (m *Model) reset() {
	if man, ok := m.origSource.(*attitude.Manual); ok {
		man.Reset()
	}
	m.source = m.origSource
	m.vp.FOVDeg = m.baseFOV
	m.statusMsg = "View reset"
}

// advance composes the frame for instant now.
func (m *Model) advance(now time.Time) {
	m.now = now
	if m.cache == nil {
		return
	}

	m.cache.Update(now)

	if m.source != nil {
		m.attitude = m.source.Attitude(now)
	}
	b := camera.BasisFromAttitude(m.attitude.Yaw, m.attitude.Pitch, m.attitude.Roll)
	m.frame = sky.Compose(m.cache, b, m.vp, m.pickRadius, m.buf)
	m.buf = m.frame.Points

	picked := -1
	if m.frame.HasPick {
		picked = m.frame.Picked
	}
	if picked != m.lastPick {
		if s, ok := m.frame.PickedStar(m.cache.Stars()); ok {
			m.logger.Debug("Target acquired: %s", s.Name)
		} else {
			m.logger.Debug("Target lost")
		}
		m.lastPick = picked
	}
}

// Frame returns the last composed frame.
func (m Model) Frame() sky.Frame { return m.frame }

// Attitude returns the attitude used for the last frame.
func (m Model) Attitude() attitude.Attitude { return m.attitude }

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < chromeRows+5 {
		return "Star field requires larger terminal"
	}

	rows := m.height - chromeRows
	stars := m.cacheStars()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(RenderFrame(m.frame, stars, m.labels, m.width, rows))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) cacheStars() []astro.Star {
	if m.cache == nil {
		return nil
	}
	return m.cache.Stars()
}

func (m Model) renderHeader() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel))

	title := renderGradient("Pocket Planetarium") + dimStyle.Render(" v"+version.Version)

	obs := "no observer"
	lst := "--h--m--s"
	visible := 0
	if m.cache != nil {
		o := m.cache.Observer()
		obs = fmt.Sprintf("%.2f°, %.2f°", o.LatDeg, o.LonDeg)
		if o.Name != "" {
			obs = o.Name + " " + obs
		}
		lst = sky.FormatHours(m.cache.LSTHours())
		visible = m.cache.VisibleCount()
	}

	info := fmt.Sprintf("%s | LST %s | %s | FOV %.0f° | %d up",
		accentStyle.Render(obs), lst, m.attitude, m.vp.FOVDeg, visible)
	return title + "\n" + dimStyle.Render(info)
}

func (m Model) renderStatus() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTarget))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel))

	if m.cache == nil {
		return dimStyle.Render("No catalog loaded") + "\n"
	}

	s, ok := m.frame.PickedStar(m.cache.Stars())
	if !ok {
		return dimStyle.Render(fmt.Sprintf("No target within %.0f px of center", m.pickRadius)) + "\n"
	}

	e := m.cache.Entry(m.frame.Picked)
	line1 := fmt.Sprintf(">>> %s | mag %.2f | Alt:%.1f° Az:%.1f°", s.Name, s.Mag, e.AltDeg, e.AzDeg)
	line2 := fmt.Sprintf("    RA %s  Dec %+.2f°", sky.FormatHours(s.RAHours), s.DecDeg)
	return accentStyle.Render(line1) + "\n" + dimStyle.Render(line2)
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	help := dimStyle.Render("arrows: steer | [ ]: roll | +/-: zoom | l: labels | space: pause | r: reset | q: quit")
	if m.statusMsg != "" {
		return "  " + accentStyle.Render(m.statusMsg) + "  " + dimStyle.Render("|") + "  " + help
	}
	return "  " + help
}

// renderGradient renders text with the purple-to-pink title gradient.
func renderGradient(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		color := gradientColor(i, len(runes))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// gradientColor returns a hex color for position col of width.
// Blue (#3B82F6) -> Purple (#8B5CF6) -> Magenta (#D946EF) -> Pink (#EC4899)
func gradientColor(col, width int) string {
	if width <= 1 {
		return "#3B82F6"
	}
	xRatio := float64(col) / float64(width-1)

	var r, g, b float64
	switch {
	case xRatio < 0.33:
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	case xRatio < 0.66:
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	default:
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}
