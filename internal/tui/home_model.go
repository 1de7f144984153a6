package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/plans"
	"github.com/balkashynov/wrokout/internal/reorder"
)

// homeAction is what the user picked before leaving the plan list
type homeAction int

const (
	homeQuit homeAction = iota
	homeStart
	homeEdit
	homeNew
)

type templatesMsg []models.WorkoutTemplate

type logsMsg []models.WorkoutLog

type orderSavedMsg struct{ err error }

type planDeletedMsg struct {
	name string
	err  error
}

// HomeModel is the plan list: pick a plan to start, edit, create, delete
// or move it
type HomeModel struct {
	width  int
	height int

	ctx       context.Context
	plans     *plans.Service
	templates []models.WorkoutTemplate
	lastDone  map[string]time.Time
	selected  int
	loaded    bool

	tplCh <-chan []models.WorkoutTemplate
	logCh <-chan []models.WorkoutLog

	deleting *confirm
	status   string
	failed   bool
	shimmer  shimmer

	action homeAction
	chosen models.WorkoutTemplate
}

// NewHomeModel creates the plan list fed by live template and log queries
func NewHomeModel(ctx context.Context, svc *plans.Service, tplCh <-chan []models.WorkoutTemplate, logCh <-chan []models.WorkoutLog, reduceMotion bool) HomeModel {
	return HomeModel{
		ctx:      ctx,
		plans:    svc,
		tplCh:    tplCh,
		logCh:    logCh,
		lastDone: map[string]time.Time{},
		shimmer:  newShimmer(reduceMotion),
	}
}

// Init starts listening to both live queries
func (m HomeModel) Init() tea.Cmd {
	return tea.Batch(waitTemplates(m.tplCh), waitLogs(m.logCh), m.shimmer.tick())
}

func waitTemplates(ch <-chan []models.WorkoutTemplate) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		list, ok := <-ch
		if !ok {
			return nil
		}
		return templatesMsg(list)
	}
}

func waitLogs(ch <-chan []models.WorkoutLog) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		logs, ok := <-ch
		if !ok {
			return nil
		}
		return logsMsg(logs)
	}
}

// Update handles messages
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case templatesMsg:
		m.templates = msg
		m.loaded = true
		if m.selected >= len(m.templates) {
			m.selected = max(len(m.templates)-1, 0)
		}
		return m, waitTemplates(m.tplCh)

	case logsMsg:
		m.lastDone = lastDoneByTemplate(msg)
		return m, waitLogs(m.logCh)

	case orderSavedMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
		}
		return m, nil

	case planDeletedMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
		} else {
			m.status, m.failed = fmt.Sprintf("Deleted \"%s\"", msg.name), false
		}
		return m, nil

	case shimmerTickMsg:
		if name := m.selectedName(); name != "" {
			m.shimmer = m.shimmer.advance(len([]rune(name)))
		}
		return m, m.shimmer.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.deleting != nil {
			return m.handleDeleteKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m HomeModel) handleKeys(msg tea.KeyMsg) (HomeModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.action = homeQuit
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.shimmer = m.shimmer.reset()
		}
	case "down", "j":
		if m.selected < len(m.templates)-1 {
			m.selected++
			m.shimmer = m.shimmer.reset()
		}

	case "shift+up", "K":
		return m.move(m.selected - 1)
	case "shift+down", "J":
		return m.move(m.selected + 1)

	case "enter", "s":
		if tmpl, ok := m.current(); ok {
			m.action, m.chosen = homeStart, tmpl
			return m, tea.Quit
		}
	case "e":
		if tmpl, ok := m.current(); ok {
			m.action, m.chosen = homeEdit, tmpl
			return m, tea.Quit
		}
	case "n", "a":
		m.action = homeNew
		return m, tea.Quit

	case "d", "delete":
		if tmpl, ok := m.current(); ok {
			m.deleting = &confirm{question: fmt.Sprintf("Delete \"%s\"?", tmpl.Name)}
		}
	}
	return m, nil
}

func (m HomeModel) handleDeleteKeys(msg tea.KeyMsg) (HomeModel, tea.Cmd) {
	c, done := m.deleting.handleKey(msg.String())
	if !done {
		m.deleting = &c
		return m, nil
	}
	m.deleting = nil
	tmpl, ok := m.current()
	if !c.yes || !ok {
		return m, nil
	}
	ctx, svc := m.ctx, m.plans
	return m, func() tea.Msg {
		return planDeletedMsg{name: tmpl.Name, err: svc.Delete(ctx, tmpl.ID)}
	}
}

// move shows the new order at once and persists it in the background
func (m HomeModel) move(to int) (HomeModel, tea.Cmd) {
	from := m.selected
	if to < 0 || to >= len(m.templates) || from == to {
		return m, nil
	}
	before := m.templates
	m.templates = reorder.Move(m.templates, from, to)
	m.selected = to
	m.status = ""

	ctx, svc := m.ctx, m.plans
	return m, func() tea.Msg {
		_, err := svc.Reorder(ctx, before, from, to)
		return orderSavedMsg{err: err}
	}
}

func (m HomeModel) current() (models.WorkoutTemplate, bool) {
	if m.selected < 0 || m.selected >= len(m.templates) {
		return models.WorkoutTemplate{}, false
	}
	return m.templates[m.selected], true
}

func (m HomeModel) selectedName() string {
	tmpl, _ := m.current()
	return tmpl.Name
}

// lastDoneByTemplate keeps the start of the newest completed log per plan
func lastDoneByTemplate(logs []models.WorkoutLog) map[string]time.Time {
	out := make(map[string]time.Time)
	for _, wl := range logs {
		if !wl.IsCompleted || wl.TemplateID == "" {
			continue
		}
		if t, ok := out[wl.TemplateID]; !ok || wl.StartTime.After(t) {
			out[wl.TemplateID] = wl.StartTime
		}
	}
	return out
}

// View renders the plan list
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.deleting != nil {
		return renderConfirm(*m.deleting, m.width, m.height)
	}

	leftWidth := m.width * 45 / 100
	rightWidth := m.width - leftWidth - 3

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPlanList(leftWidth),
		" ",
		m.renderPlanDetails(rightWidth),
	)

	bottom := m.renderHelpBar()
	if m.status != "" {
		color := ColorSuccess
		if m.failed {
			color = ColorError
		}
		bottom = lipgloss.JoinVertical(lipgloss.Left,
			fg(color).Width(m.width).Align(lipgloss.Center).Render(m.status), bottom)
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", content, "", bottom)
}

func (m HomeModel) renderPlanList(width int) string {
	var b strings.Builder
	b.WriteString(fg(ColorAccentBright).Bold(true).Render("🏋  Workout Plans"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(fg(ColorSecondaryText).Italic(true).Render("Loading plans..."))
	case len(m.templates) == 0:
		b.WriteString(fg(ColorSecondaryText).Italic(true).Render("No workout plans yet. Press n to create one."))
	}

	for i, tmpl := range m.templates {
		row := fmt.Sprintf("%2d. ", i+1)
		if i == m.selected {
			b.WriteString(lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Padding(0, 1).
				Width(width - 4).
				Render(row + m.shimmer.render(tmpl.Name)))
		} else {
			b.WriteString("  " + fg(ColorPrimaryText).Render(row+tmpl.Name))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}

func (m HomeModel) renderPlanDetails(width int) string {
	var b strings.Builder
	tmpl, ok := m.current()
	if !ok {
		b.WriteString(fg(ColorAccentMain).Bold(true).Align(lipgloss.Center).Width(width - 2).Render("wrokout"))
	} else {
		b.WriteString(fg(ColorPrimaryText).Bold(true).Render("📋 " + tmpl.Name))
		b.WriteString("\n")
		last := "never"
		if t, ok := m.lastDone[tmpl.ID]; ok {
			last = t.Format("Mon 02 Jan 2006")
		}
		b.WriteString(fg(ColorSecondaryText).Render("Last done: " + last))
		b.WriteString("\n\n")

		for i, ex := range tmpl.Exercises {
			line := fmt.Sprintf("%d. %s  %s", i+1, ex.Name,
				fg(ColorSecondaryText).Render(fmt.Sprintf("%d × %s", ex.TargetSets, models.FormatSetTarget(ex))))
			if ex.SetType.Normalize() != models.SetStandard {
				line += " " + fg(ColorAccentBright).Render("["+ex.SetType.Label()+"]")
			}
			b.WriteString(line)
			b.WriteString("\n")
			if ex.SupersetWithNext && i < len(tmpl.Exercises)-1 {
				b.WriteString(fg(ColorWarning).Render("   ↳ superset with next"))
				b.WriteString("\n")
			}
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}

func (m HomeModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("↑/↓ nav · shift+↑/↓ move · enter start · e edit · n new · d delete · q quit")
}
