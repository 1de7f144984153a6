package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/parser"
	"github.com/balkashynov/wrokout/internal/plans"
)

// editorFocus is the part of the plan editor taking keys
type editorFocus int

const (
	focusName editorFocus = iota
	focusExercises
	focusEntry
)

// EditorModel creates or edits one workout plan
type EditorModel struct {
	width  int
	height int

	ctx    context.Context
	plans  *plans.Service
	editor *plans.Editor
	isNew  bool

	focus    editorFocus
	name     textinput.Model
	entry    textinput.Model
	selected int
	editing  int // exercise the entry line replaces, -1 when adding
	dirty    bool

	validationErr string
	saveModal     *confirm

	// State
	err       error
	completed bool
	cancelled bool
	savedID   string
	savedName string
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Width = 60
	in.CharLimit = limit
	in.Placeholder = placeholder
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}

// NewEditorModel opens tmpl for editing; a template without an id is a new plan
func NewEditorModel(ctx context.Context, svc *plans.Service, tmpl models.WorkoutTemplate) EditorModel {
	name := newInput("Workout plan name... (required)", 100)
	name.SetValue(tmpl.Name)
	name.Focus()

	entry := newInput("Bench Press 3x8-12 @135 ~ss", 200)

	return EditorModel{
		ctx:     ctx,
		plans:   svc,
		editor:  plans.NewEditor(tmpl),
		isNew:   tmpl.ID == "",
		name:    name,
		entry:   entry,
		editing: -1,
	}
}

// Init initializes the model
func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.saveModal != nil {
			return m.handleSaveChoice(msg)
		}
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		if msg.String() == "ctrl+s" {
			return m.save()
		}
		switch m.focus {
		case focusName:
			return m.handleNameKeys(msg)
		case focusEntry:
			return m.handleEntryKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusEntry:
		m.entry, cmd = m.entry.Update(msg)
	}
	return m, cmd
}

func (m EditorModel) handleNameKeys(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab", "down":
		m.name.Blur()
		m.focus = focusExercises
		return m, nil
	case "esc":
		return m.leave()
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	if m.name.Value() != m.editor.Template().Name {
		m.editor.SetName(m.name.Value())
		m.dirty = true
	}
	return m, cmd
}

func (m EditorModel) handleListKeys(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	n := m.editor.Len()
	switch msg.String() {
	case "esc", "q":
		return m.leave()
	case "tab":
		m.focus = focusName
		m.name.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		} else {
			m.focus = focusName
			m.name.Focus()
			return m, textinput.Blink
		}
	case "down", "j":
		if m.selected < n-1 {
			m.selected++
		}
	case "shift+up", "K":
		if m.selected > 0 {
			m.editor.MoveExercise(m.selected, m.selected-1)
			m.selected--
			m.dirty = true
		}
	case "shift+down", "J":
		if m.selected < n-1 {
			m.editor.MoveExercise(m.selected, m.selected+1)
			m.selected++
			m.dirty = true
		}
	case "a", "n":
		return m.openEntry(-1, "")
	case "enter", "e":
		if n > 0 {
			return m.openEntry(m.selected, parser.FormatExercise(m.editor.Template().Exercises[m.selected]))
		}
		return m.openEntry(-1, "")
	case "x", "delete", "backspace":
		if n > 0 {
			m.editor.RemoveExercise(m.editor.Template().Exercises[m.selected].ID)
			m.selected = max(min(m.selected, m.editor.Len()-1), 0)
			m.dirty = true
		}
	case "s":
		if n > 0 {
			_ = m.editor.ToggleSuperset(m.selected)
			m.dirty = true
		}
	}
	return m, nil
}

func (m EditorModel) openEntry(index int, value string) (EditorModel, tea.Cmd) {
	m.editing = index
	m.entry.SetValue(value)
	m.entry.CursorEnd()
	m.entry.Focus()
	m.focus = focusEntry
	m.validationErr = ""
	return m, textinput.Blink
}

func (m EditorModel) handleEntryKeys(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entry.Blur()
		m.focus = focusExercises
		m.validationErr = ""
		return m, nil
	case "enter":
		parsed := parser.ParseExercise(m.entry.Value())
		if len(parsed.Errors) > 0 {
			m.validationErr = strings.Join(parsed.Errors, "; ")
			return m, nil
		}
		if parsed.Exercise.Name == "" {
			m.validationErr = "Exercise name is required"
			return m, nil
		}
		if m.editing >= 0 {
			_ = m.editor.UpdateExercise(m.editing, func(ex *models.ExerciseTarget) {
				id := ex.ID
				*ex = parsed.Exercise
				ex.ID = id
			})
		} else {
			m.editor.AddExercise(parsed.Exercise)
			m.selected = m.editor.Len() - 1
		}
		m.dirty = true
		m.validationErr = ""
		m.entry.Blur()
		m.focus = focusExercises
		return m, nil
	}
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

// leave asks to save pending changes, or quits
func (m EditorModel) leave() (EditorModel, tea.Cmd) {
	if m.dirty {
		m.saveModal = &confirm{question: "Save changes?", yes: true}
		return m, nil
	}
	m.cancelled = true
	return m, tea.Quit
}

func (m EditorModel) handleSaveChoice(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	c, done := m.saveModal.handleKey(msg.String())
	if !done {
		m.saveModal = &c
		return m, nil
	}
	m.saveModal = nil
	if msg.String() == "esc" {
		return m, nil
	}
	if c.yes {
		return m.save()
	}
	m.cancelled = true
	return m, tea.Quit
}

// save validates and stores the plan; validation problems keep the editor open
func (m EditorModel) save() (EditorModel, tea.Cmd) {
	tmpl := m.editor.Template()
	if err := plans.Validate(&tmpl); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	id, err := m.plans.Save(m.ctx, &tmpl)
	if err != nil {
		m.err = err
		m.validationErr = err.Error()
		return m, nil
	}
	m.err = nil
	m.completed = true
	m.savedID = id
	m.savedName = strings.TrimSpace(tmpl.Name)
	return m, tea.Quit
}

// View renders the editor
func (m EditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.saveModal != nil {
		return renderConfirm(*m.saveModal, m.width, m.height)
	}

	title := "✏️  Edit Workout Plan"
	if m.isNew {
		title = "➕ New Workout Plan"
	}

	var b strings.Builder
	b.WriteString(fg(ColorAccentBright).Bold(true).Render(title))
	b.WriteString("\n\n")

	label := fg(ColorSecondaryText)
	if m.focus == focusName {
		label = fg(ColorAccentBright).Bold(true)
	}
	b.WriteString(label.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\n")

	label = fg(ColorSecondaryText)
	if m.focus != focusName {
		label = fg(ColorAccentBright).Bold(true)
	}
	b.WriteString(label.Render("Exercises"))
	b.WriteString("\n")
	b.WriteString(m.renderExercises())

	if m.focus == focusEntry {
		prompt := "Add exercise"
		if m.editing >= 0 {
			prompt = fmt.Sprintf("Edit exercise #%d", m.editing+1)
		}
		b.WriteString("\n")
		b.WriteString(fg(ColorAccentBright).Render(prompt))
		b.WriteString("\n")
		b.WriteString(m.entry.View())
		b.WriteString("\n")
		b.WriteString(fg(ColorDisabledText).Italic(true).Render("NxR or NxMIN-MAX · Nx60s · N sets · @weight · +warmup/+dropset/+amrap/+timed · drops:WxR,WxR · ~ss"))
	}

	if m.validationErr != "" {
		b.WriteString("\n\n")
		b.WriteString(fg(ColorError).Render("⚠ " + m.validationErr))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Width(min(m.width-2, 100)).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, card, m.renderHelpBar())
}

func (m EditorModel) renderExercises() string {
	tmpl := m.editor.Template()
	if len(tmpl.Exercises) == 0 {
		return fg(ColorDisabledText).Italic(true).Render("  No exercises. Press a to add one.") + "\n"
	}
	var b strings.Builder
	for i, ex := range tmpl.Exercises {
		name := ex.Name
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%d. %s  %s", i+1, name,
			fg(ColorSecondaryText).Render(fmt.Sprintf("%d × %s", ex.TargetSets, models.FormatSetTarget(ex))))
		if ex.TargetWeight != "" {
			line += fg(ColorSecondaryText).Render(" @ " + ex.TargetWeight)
		}
		if ex.SetType.Normalize() != models.SetStandard {
			line += " " + fg(ColorAccentBright).Render("["+ex.SetType.Label()+"]")
		}
		if ex.SupersetWithNext {
			line += " " + fg(ColorWarning).Render("~ss")
		}

		if i == m.selected && m.focus == focusExercises {
			b.WriteString(fg(ColorAccentMain).Bold(true).Render("▶ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m EditorModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var help string
	switch m.focus {
	case focusName:
		help = "type name · enter/tab exercises · ctrl+s save · esc exit"
	case focusEntry:
		help = "enter apply · esc cancel"
	default:
		help = "↑/↓ nav · shift+↑/↓ move · a add · enter edit · x remove · s superset · ctrl+s save · esc exit"
	}
	return helpStyle.Render(help)
}
