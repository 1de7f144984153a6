package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/parser"
	"github.com/balkashynov/wrokout/internal/session"
)

// workoutMode is what the input line of the workout screen is collecting
type workoutMode int

const (
	modeBrowse workoutMode = iota
	modeReps
	modeWeight
	modeDuration
	modeDrops
	modeReplace
	modeBodyWeight
	modeNotes
)

// workoutTickMsg is sent every second while the workout runs
type workoutTickMsg struct{}

func workoutTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return workoutTickMsg{}
	})
}

// WorkoutModel drives an active workout session
type WorkoutModel struct {
	width  int
	height int

	ctx context.Context
	s   *session.Session
	now func() time.Time

	// Set cursor
	exercise int
	set      int

	mode     workoutMode
	input    textinput.Model
	pending  session.SetData
	progress progress.Model

	message  string
	msgColor string
	discard  *confirm

	// Result
	saved     *models.WorkoutLog
	discarded bool
}

// NewWorkoutModel wraps a started session
func NewWorkoutModel(ctx context.Context, s *session.Session) WorkoutModel {
	m := WorkoutModel{
		ctx:      ctx,
		s:        s,
		now:      time.Now,
		input:    newInput("", 100),
		progress: progress.New(progress.WithGradient(ColorAccentMain, ColorRest), progress.WithoutPercentage()),
	}
	if s.BodyWeightPrompt() {
		m = m.openInput(modeBodyWeight, "", "Body weight today (enter to skip)")
	}
	return m
}

// Init starts the one second tick
func (m WorkoutModel) Init() tea.Cmd {
	return tea.Batch(workoutTick(), textinput.Blink)
}

// Update handles messages
func (m WorkoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutTickMsg:
		if m.s.State() != session.InProgress {
			return m, nil
		}
		m = m.applyTick(m.s.Tick())
		return m, workoutTick()

	case tea.ResumeMsg:
		if m.s.Show(m.now()) {
			m = m.say("Rest finished while you were away. Time for the next set!", ColorRest)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width/2-8, 10), 50)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+z":
			m.s.Hide(m.now())
			return m, tea.Suspend
		case m.discard != nil:
			return m.handleDiscardKeys(msg)
		case m.mode != modeBrowse:
			return m.handleInputKeys(msg)
		}
		return m.handleKeys(msg)
	}

	if m.mode != modeBrowse {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m WorkoutModel) applyTick(out session.TickOutcome) WorkoutModel {
	if out.RestFinished {
		m = m.say("Rest is over! Time for the next set.", ColorRest)
	}
	if a := out.AutoLogged; a != nil {
		name := ""
		if ex, err := m.s.Exercise(a.Exercise); err == nil {
			name = ex.Name
		}
		m = m.say(fmt.Sprintf("⏱ %s set %d done: %ds", name, a.Set+1, a.Duration), ColorSuccess)
		if a.Outcome.Superset {
			m = m.say(a.Outcome.Message, ColorWarning)
		}
	}
	return m
}

func (m WorkoutModel) say(text, color string) WorkoutModel {
	m.message, m.msgColor = text, color
	return m
}

func (m WorkoutModel) handleKeys(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	m.message = ""
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.discard = &confirm{question: "Discard this workout? Nothing will be saved."}
		return m, nil

	case "up", "k":
		m = m.moveCursor(-1)
	case "down", "j":
		m = m.moveCursor(1)
	case "left", "h":
		m = m.jumpExercise(-1)
	case "right", "l", "tab":
		m = m.jumpExercise(1)

	case "enter", " ":
		return m.beginLog()
	case "u":
		if err := m.s.UnlogSet(m.exercise, m.set); err != nil {
			return m.say(err.Error(), ColorError), nil
		}
	case "+", "a":
		if err := m.s.AddSet(m.exercise); err != nil {
			return m.say(err.Error(), ColorError), nil
		}
		ex, _ := m.s.Exercise(m.exercise)
		m.set = len(ex.LoggedSets) - 1
	case "s":
		if err := m.s.ToggleSkip(m.exercise); err != nil {
			return m.say(err.Error(), ColorError), nil
		}
	case "r":
		if err := m.s.StartReplace(m.exercise); err != nil {
			return m.say(err.Error(), ColorError), nil
		}
		_, name, _ := m.s.Replacing()
		m = m.openInput(modeReplace, name, "New exercise name")
		return m, textinput.Blink

	case "t":
		if err := m.s.StartInSetTimer(m.exercise, m.set, 0); err != nil {
			return m.say(err.Error(), ColorError), nil
		}
	case "T":
		m.s.CancelInSetTimer()

	case "g":
		if err := m.s.StartRest(0); err != nil {
			return m.say(err.Error(), ColorError), nil
		}
	case "p":
		if m.s.Rest().Paused {
			m.s.ResumeRest()
		} else {
			m.s.PauseRest()
		}
	case "x":
		m.s.StopRest()

	case "w":
		m = m.openInput(modeBodyWeight, m.s.Workout().BodyWeight, "Body weight")
		return m, textinput.Blink
	case "o":
		m = m.openInput(modeNotes, m.s.Workout().Notes, "Workout notes")
		return m, textinput.Blink

	case "f":
		wl, err := m.s.Finish(m.ctx, "", "")
		if err != nil {
			return m.say(err.Error(), ColorError), nil
		}
		m.saved = wl
		return m, tea.Quit
	}
	return m, nil
}

// beginLog collects the values for the selected set according to its type
func (m WorkoutModel) beginLog() (WorkoutModel, tea.Cmd) {
	ex, err := m.s.Exercise(m.exercise)
	if err != nil || m.set >= len(ex.LoggedSets) {
		return m, nil
	}
	ls := ex.LoggedSets[m.set]
	m.pending = session.SetData{}

	switch ex.SetType.Normalize() {
	case models.SetTimed:
		value := ""
		if ls.DurationAchieved != nil {
			value = strconv.Itoa(*ls.DurationAchieved)
		} else if ex.TargetDuration != nil {
			value = strconv.Itoa(*ex.TargetDuration)
		}
		m = m.openInput(modeDuration, value, "Seconds held, e.g. 60 or 1:30")
	case models.SetDropset:
		m = m.openInput(modeDrops, formatDrops(ls.Drops), "weight x reps per drop, e.g. 25x10, 20x8")
	case models.SetStandard, models.SetWarmup, models.SetAMRAP:
		m = m.openInput(modeReps, ls.Reps, models.FormatRepRange(ex.TargetRepsMin, ex.TargetRepsMax))
	}
	return m, textinput.Blink
}

func (m WorkoutModel) openInput(mode workoutMode, value, placeholder string) WorkoutModel {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m WorkoutModel) closeInput() WorkoutModel {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m WorkoutModel) handleInputKeys(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m = m.closeInput()
		m.discard = &confirm{question: "Discard this workout? Nothing will be saved."}
		return m, nil
	case "esc":
		switch m.mode {
		case modeReplace:
			m.s.CancelReplace()
		case modeBodyWeight:
			m.s.DismissBodyWeightPrompt()
		}
		return m.closeInput(), nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeReplace {
		_ = m.s.SetReplaceName(m.input.Value())
	}
	return m, cmd
}

func (m WorkoutModel) submitInput() (WorkoutModel, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeReps:
		m.pending.Reps = &value
		ex, _ := m.s.Exercise(m.exercise)
		weight := ""
		if m.set < len(ex.LoggedSets) {
			weight = ex.LoggedSets[m.set].Weight
		}
		if weight == "" {
			weight = ex.TargetWeight
		}
		return m.openInput(modeWeight, weight, "Weight (lbs)"), textinput.Blink

	case modeWeight:
		m.pending.Weight = &value
		return m.logPending()

	case modeDuration:
		secs := 0
		if value != "" {
			n, err := parser.ParseSeconds(value)
			if err != nil {
				return m.say(err.Error(), ColorError), nil
			}
			secs = n
		}
		m.pending.DurationAchieved = &secs
		return m.logPending()

	case modeDrops:
		if value != "" {
			drops, err := parser.ParseDrops(value)
			if err != nil {
				return m.say("Invalid drops: "+err.Error(), ColorError), nil
			}
			m.pending.Drops = drops
		}
		return m.logPending()

	case modeReplace:
		if err := m.s.ConfirmReplace(m.exercise, value); err != nil {
			return m.say(err.Error(), ColorError), nil
		}

	case modeBodyWeight:
		if value == "" {
			m.s.DismissBodyWeightPrompt()
		} else {
			m.s.SetBodyWeight(value)
		}

	case modeNotes:
		m.s.SetNotes(value)
	}
	return m.closeInput(), nil
}

func (m WorkoutModel) logPending() (WorkoutModel, tea.Cmd) {
	out, err := m.s.LogSet(m.exercise, m.set, m.pending)
	m.pending = session.SetData{}
	m = m.closeInput()
	if err != nil {
		return m.say(err.Error(), ColorError), nil
	}
	if out.Superset {
		m = m.say(out.Message, ColorWarning)
		m = m.jumpExercise(1)
	} else {
		m = m.moveCursor(1)
	}
	return m, nil
}

func (m WorkoutModel) handleDiscardKeys(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	c, done := m.discard.handleKey(msg.String())
	if !done {
		m.discard = &c
		return m, nil
	}
	m.discard = nil
	if !c.yes {
		return m, nil
	}
	if err := m.s.Discard(); err != nil {
		return m.say(err.Error(), ColorError), nil
	}
	m.discarded = true
	return m, tea.Quit
}

// moveCursor steps through all sets of all exercises
func (m WorkoutModel) moveCursor(delta int) WorkoutModel {
	w := m.s.Workout()
	if len(w.Exercises) == 0 {
		return m
	}
	ex, set := m.exercise, m.set+delta
	for set < 0 && ex > 0 {
		ex--
		set += max(len(w.Exercises[ex].LoggedSets), 1)
	}
	for ex < len(w.Exercises) && set >= len(w.Exercises[ex].LoggedSets) {
		if ex == len(w.Exercises)-1 {
			set = max(len(w.Exercises[ex].LoggedSets)-1, 0)
			break
		}
		set -= len(w.Exercises[ex].LoggedSets)
		ex++
	}
	m.exercise, m.set = ex, max(set, 0)
	return m
}

func (m WorkoutModel) jumpExercise(delta int) WorkoutModel {
	n := len(m.s.Workout().Exercises)
	next := m.exercise + delta
	if next < 0 || next >= n {
		return m
	}
	m.exercise, m.set = next, 0
	if ex, err := m.s.Exercise(next); err == nil {
		for i, ls := range ex.LoggedSets {
			if !ls.Completed {
				m.set = i
				break
			}
		}
	}
	return m
}

func formatDrops(drops []models.Drop) string {
	parts := make([]string, 0, len(drops))
	for _, d := range drops {
		if d.Weight == "" && d.Reps == "" {
			continue
		}
		parts = append(parts, d.Weight+"x"+d.Reps)
	}
	return strings.Join(parts, ", ")
}

// View renders the workout screen
func (m WorkoutModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.discard != nil {
		return renderConfirm(*m.discard, m.width, m.height)
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderTimerPanel(m.width),
			m.renderExercises(m.width, contentHeight-12),
			m.renderInputLine(),
			helpBar,
		)
	}

	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth - 2
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderExercises(leftWidth, contentHeight-2),
		"  ",
		m.renderTimerPanel(rightWidth),
	)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderInputLine(), helpBar)
}

func (m WorkoutModel) renderExercises(width, height int) string {
	w := m.s.Workout()
	var b strings.Builder

	elapsed := m.now().Sub(w.StartTime).Round(time.Second)
	b.WriteString(fg(ColorAccentBright).Bold(true).Render("🏋  " + w.Name))
	b.WriteString(fg(ColorSecondaryText).Render(fmt.Sprintf("  %s", models.FormatClock(int(elapsed.Seconds())))))
	b.WriteString("\n\n")

	inSet, inSetRunning := m.s.InSet()
	for i, ex := range w.Exercises {
		header := fmt.Sprintf("%d. %s", i+1, ex.Name)
		target := fmt.Sprintf("  %d × %s", ex.TargetSets, models.FormatSetTarget(ex.ExerciseTarget))
		if ex.TargetWeight != "" {
			target += " @ " + ex.TargetWeight
		}
		style := fg(ColorPrimaryText).Bold(true)
		if i == m.exercise {
			style = fg(ColorAccentBright).Bold(true)
		}
		if ex.IsSkipped {
			style = fg(ColorDisabledText).Strikethrough(true)
			target += "  (skipped)"
		}
		b.WriteString(style.Render(header) + fg(ColorSecondaryText).Render(target))
		if ex.SupersetWithNext {
			b.WriteString(fg(ColorWarning).Render("  ⇄ superset"))
		}
		b.WriteString("\n")

		if i == m.exercise {
			prev := history.NoPreviousData
			if ex.PreviousPerformance != nil {
				prev = *ex.PreviousPerformance
			}
			b.WriteString(fg(ColorSecondaryText).Italic(true).Render("   Last time: " + prev))
			b.WriteString("\n")
		}

		for j, ls := range ex.LoggedSets {
			cursor := "   "
			if i == m.exercise && j == m.set {
				cursor = fg(ColorAccentMain).Bold(true).Render(" ▶ ")
			}
			line := fmt.Sprintf("Set %d  %s", j+1, DescribeSet(ex, ls))
			switch {
			case inSetRunning && inSet.ExerciseIndex == i && inSet.SetIndex == j:
				line = fg(ColorRest).Render(line + "  ⏱ " + models.FormatClock(inSet.SecondsLeft))
			case ls.Completed:
				line = fg(ColorSuccess).Render("✓ " + line)
			default:
				line = fg(ColorSecondaryText).Render("○ " + line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		MaxHeight(max(height, 5)).
		Render(b.String())
}

// DescribeSet renders what was typed or logged for a set
func DescribeSet(ex models.ActiveExercise, ls models.LoggedSet) string {
	switch ex.SetType.Normalize() {
	case models.SetTimed:
		if ls.DurationAchieved == nil {
			return "–"
		}
		return fmt.Sprintf("%ds", *ls.DurationAchieved)
	case models.SetDropset:
		var parts []string
		for _, d := range ls.Drops {
			if d.Weight == "" && d.Reps == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s×%s", orDash(d.Weight), orDash(d.Reps)))
		}
		if len(parts) == 0 {
			return "–"
		}
		return strings.Join(parts, " → ")
	case models.SetStandard, models.SetWarmup, models.SetAMRAP:
	}
	if ls.Reps == "" && ls.Weight == "" {
		return "–"
	}
	s := orDash(ls.Reps) + " reps"
	if ls.Weight != "" {
		s += " @ " + ls.Weight + "lbs"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}

func (m WorkoutModel) renderTimerPanel(width int) string {
	rest := m.s.Rest()
	var parts []string

	header := "REST"
	color := ColorDisabledText
	switch {
	case rest.Active && rest.Paused:
		header, color = "REST · PAUSED", ColorWarning
	case rest.Active:
		header, color = "REST", ColorRest
	}
	parts = append(parts, fg(color).Bold(true).Align(lipgloss.Center).Width(width).Render(header))
	parts = append(parts, renderBigClock(rest.SecondsRemaining, color, width))

	pct := 0.0
	if def := m.s.RestDefault(); rest.Active && def > 0 {
		pct = 1 - float64(rest.SecondsRemaining)/float64(def)
		pct = min(max(pct, 0), 1)
	}
	parts = append(parts, lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(m.progress.ViewAs(pct)))

	if st, ok := m.s.InSet(); ok {
		name := ""
		if ex, err := m.s.Exercise(st.ExerciseIndex); err == nil {
			name = ex.Name
		}
		parts = append(parts, fg(ColorRest).Align(lipgloss.Center).Width(width).
			Render(fmt.Sprintf("⏱ %s set %d: %s left", name, st.SetIndex+1, models.FormatClock(st.SecondsLeft))))
	}

	w := m.s.Workout()
	if w.BodyWeight != "" {
		parts = append(parts, fg(ColorSecondaryText).Align(lipgloss.Center).Width(width).Render("Body weight: "+w.BodyWeight))
	}
	if w.Notes != "" {
		parts = append(parts, fg(ColorSecondaryText).Italic(true).Align(lipgloss.Center).Width(width).Render("Notes: "+w.Notes))
	}

	if m.message != "" {
		parts = append(parts, fg(m.msgColor).Bold(true).Align(lipgloss.Center).Width(width).Render(m.message))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "\n\n"))
}

func (m WorkoutModel) renderInputLine() string {
	if m.mode == modeBrowse {
		return ""
	}
	labels := map[workoutMode]string{
		modeReps:       "Reps",
		modeWeight:     "Weight",
		modeDuration:   "Duration",
		modeDrops:      "Drops",
		modeReplace:    "Replace with",
		modeBodyWeight: "Body weight",
		modeNotes:      "Notes",
	}
	return fg(ColorAccentBright).Bold(true).Render(labels[m.mode]+": ") + m.input.View()
}

func (m WorkoutModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	help := "↑/↓ sets · ←/→ exercises · enter log · u unlog · a add set · s skip · r replace · t set timer · g/p/x rest · w bw · o notes · f finish · ctrl+z suspend · esc discard"
	if m.mode != modeBrowse {
		help = "enter confirm · esc cancel"
	}
	return helpStyle.Render(help)
}
