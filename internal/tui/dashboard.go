// Package tui is the interactive dashboard: a parameter panel on the left,
// live charts of the current run on the right. Every parameter change
// rebuilds the input records and re-runs the engine once; the dashboard
// itself holds no simulation state beyond the latest result.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cropsim/internal/config"
	"github.com/san-kum/cropsim/internal/sim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// param describes one adjustable dashboard field and how it maps onto the
// config document. Ranges and steps follow the reference control panel.
type param struct {
	name    string
	group   string
	unit    string
	min     float64
	max     float64
	step    float64
	integer bool
	get     func(*config.Config) float64
	set     func(*config.Config, float64)
}

var params = []param{
	{"days", "scenario", "d", 30, 180, 1, true,
		func(c *config.Config) float64 { return float64(c.Scenario.Days) },
		func(c *config.Config, v float64) { c.Scenario.Days = int(v) }},
	{"ppfd", "scenario", "μmol/m²s", 150, 800, 10, false,
		func(c *config.Config) float64 { return c.Scenario.PPFD },
		func(c *config.Config, v float64) { c.Scenario.PPFD = v }},
	{"photoperiod", "scenario", "h", 10, 20, 0.5, false,
		func(c *config.Config) float64 { return c.Scenario.PhotoperiodH },
		func(c *config.Config, v float64) { c.Scenario.PhotoperiodH = v }},
	{"co2", "scenario", "ppm", 400, 2000, 50, false,
		func(c *config.Config) float64 { return c.Scenario.CO2PPM },
		func(c *config.Config, v float64) { c.Scenario.CO2PPM = v }},
	{"target temp", "scenario", "°C", 12, 26, 0.5, false,
		func(c *config.Config) float64 { return c.Scenario.TargetTempC },
		func(c *config.Config, v float64) { c.Scenario.TargetTempC = v }},
	{"init leaf", "scenario", "g", 0.5, 10, 0.5, false,
		func(c *config.Config) float64 { return c.Scenario.InitLeafDryG },
		func(c *config.Config, v float64) { c.Scenario.InitLeafDryG = v }},
	{"area", "scenario", "m²", 0.2, 2.0, 0.1, false,
		func(c *config.Config) float64 { return c.Scenario.GroundAreaM2 },
		func(c *config.Config, v float64) { c.Scenario.GroundAreaM2 = v }},
	{"led power", "chamber", "W", 50, 1500, 10, false,
		func(c *config.Config) float64 { return c.Chamber.LEDPowerW },
		func(c *config.Config, v float64) { c.Chamber.LEDPowerW = v }},
	{"other power", "chamber", "W", 0, 300, 10, false,
		func(c *config.Config) float64 { return c.Chamber.OtherPowerW },
		func(c *config.Config, v float64) { c.Chamber.OtherPowerW = v }},
	{"cooling", "chamber", "kJ/d", 0, 60000, 1000, false,
		func(c *config.Config) float64 { return c.Chamber.CoolingCapacityKJDay },
		func(c *config.Config, v float64) { c.Chamber.CoolingCapacityKJDay = v }},
	{"ambient temp", "chamber", "°C", 10, 35, 0.5, false,
		func(c *config.Config) float64 { return c.Chamber.AmbientTempC },
		func(c *config.Config, v float64) { c.Chamber.AmbientTempC = v }},
}

type model struct {
	cfg    *config.Config
	cursor int

	editing bool
	editBuf string

	result *sim.Result
	runErr error

	width  int
	height int
}

func NewDashboard(cfg *config.Config) *model {
	m := &model{
		cfg:    cfg,
		width:  100,
		height: 32,
	}
	m.rerun()
	return m
}

func (m *model) rerun() {
	scn, gp, cp := m.cfg.Records()
	m.result, m.runErr = sim.New(gp, cp).Run(scn)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				p := params[m.cursor]
				p.set(m.cfg, clampParam(p, val))
				m.rerun()
			}
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", " ":
		m.editing = true
		m.editBuf = trimFloat(params[m.cursor].get(m.cfg))
	case "r":
		m.cfg = config.DefaultConfig()
		m.rerun()
	}
	return m, nil
}

func (m *model) adjust(dir float64) {
	p := params[m.cursor]
	p.set(m.cfg, clampParam(p, p.get(m.cfg)+dir*p.step))
	m.rerun()
}

func clampParam(p param, v float64) float64 {
	if v < p.min {
		v = p.min
	}
	if v > p.max {
		v = p.max
	}
	return v
}

func (m model) View() string {
	left := m.viewParams()
	right := m.viewResult()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("cropsim") + "  " + dim.Render("potato growth-chamber twin") + "\n\n")
	b.WriteString(body)
	b.WriteString("\n" + dim.Render("  ↑↓ select  ←→ adjust  enter edit  r reset  q quit") + "\n")
	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	group := ""
	for i, p := range params {
		if p.group != group {
			group = p.group
			b.WriteString("  " + yellow.Render(group) + "\n")
			b.WriteString(dimmer.Render("  "+strings.Repeat("─", 32)) + "\n")
		}

		val := trimFloat(p.get(m.cfg))
		if m.editing && i == m.cursor {
			val = m.editBuf + "▋"
		}
		line := fmt.Sprintf("%-14s %8s %-9s", p.name, val, p.unit)
		if i == m.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(line[:15]) + magenta.Render(line[15:]) + "\n")
		} else {
			b.WriteString("    " + dim.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder

	if m.runErr != nil {
		b.WriteString("  " + yellow.Render(fmt.Sprintf("run error: %v", m.runErr)) + "\n")
		return b.String()
	}
	if m.result == nil {
		return ""
	}

	s := m.result.Summary()
	_, gp, _ := m.cfg.Records()
	stage := gp.Stage(s.ThermalTime)

	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		dim.Render("tuber fresh"), green.Render(fmt.Sprintf("%.0f g", s.TuberFreshG)),
		dim.Render("total fresh"), white.Render(fmt.Sprintf("%.0f g", s.TotalFreshG)),
		dim.Render("energy"), yellow.Render(fmt.Sprintf("%.1f kWh", s.EnergyKWh))))
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n\n",
		dim.Render("dli"), white.Render(fmt.Sprintf("%.2f mol/m²d", s.DLI)),
		dim.Render("stage"), magenta.Render(stage.String()),
		dim.Render("peak temp"), white.Render(fmt.Sprintf("%.1f °C", s.PeakChamberC))))

	chartWidth := m.width - 50
	if chartWidth < 40 {
		chartWidth = 40
	}

	b.WriteString(m.chart(m.result.TuberFresh, "tuber fresh (g)", chartWidth))
	b.WriteString(m.chart(m.result.ThermalTime, "thermal time (°C·d)", chartWidth))
	b.WriteString(m.chart(m.result.ChamberTemp, "chamber temp (°C)", chartWidth))

	return b.String()
}

func (m model) chart(series []float64, caption string, width int) string {
	if len(series) < 2 {
		return ""
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(6),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	var b strings.Builder
	for _, line := range strings.Split(graph, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// RunDashboard starts the dashboard from the given configuration.
func RunDashboard(cfg *config.Config) error {
	p := tea.NewProgram(NewDashboard(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
