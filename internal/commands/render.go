package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/session"
	"github.com/balkashynov/wrokout/internal/tui"
)

const (
	dateLayout   = "02/01/2006"
	maxCellWidth = 38
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tui.ColorAccentBright))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tui.ColorPrimaryText))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorWarning))
	restStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorRest))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorError))
)

// table lays out rows in padded columns; widths account for ANSI styling
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, style *lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if style != nil {
				cell = style.Render(cell)
			}
			if i == len(cells)-1 {
				parts[i] = cell
				continue
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(t.header, &headerStyle)
	for _, row := range t.rows {
		line(row, nil)
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxCellWidth {
		return s
	}
	return string(r[:maxCellWidth-3]) + "..."
}

func renderPlanTable(w io.Writer, list []models.WorkoutTemplate) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No workout plans yet. Use 'wrokout plan add <name> [exercise...]' to create one.")
		return
	}
	t := table{header: []string{"#", "NAME", "EXERCISES", "ID"}}
	for i, tmpl := range list {
		t.add(fmt.Sprint(i+1), truncate(tmpl.Name), fmt.Sprint(len(tmpl.Exercises)), mutedStyle.Render(tmpl.ID))
	}
	t.render(w)
}

func renderPlanDetails(w io.Writer, tmpl models.WorkoutTemplate) {
	fmt.Fprintln(w, titleStyle.Render(tmpl.Name))
	if len(tmpl.Exercises) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no exercises"))
		return
	}
	for i, ex := range tmpl.Exercises {
		line := fmt.Sprintf("  %d. %s  %s", i+1, ex.Name, mutedStyle.Render(models.FormatSetTarget(ex)))
		if ex.SupersetWithNext {
			line += " " + warnStyle.Render("⇣ superset")
		}
		fmt.Fprintln(w, line)
	}
}

func renderLogTable(w io.Writer, logs []models.WorkoutLog) {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No workouts logged yet. Use 'wrokout start <plan>' to begin one.")
		return
	}
	t := table{header: []string{"#", "DATE", "PLAN", "SETS", "DURATION"}}
	for i, wl := range logs {
		t.add(fmt.Sprint(i+1), wl.StartTime.Local().Format(dateLayout), truncate(wl.Name),
			fmt.Sprint(completedSets(wl.Exercises)), logDuration(wl))
	}
	t.render(w)
}

func completedSets(exercises []models.ActiveExercise) int {
	n := 0
	for _, ex := range exercises {
		n += ex.CompletedCount()
	}
	return n
}

func logDuration(wl models.WorkoutLog) string {
	if wl.EndTime == nil {
		return "-"
	}
	return wl.EndTime.Sub(wl.StartTime).Round(time.Minute).String()
}

func renderLogDetails(w io.Writer, wl models.WorkoutLog) {
	fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(wl.Name), mutedStyle.Render(wl.StartTime.Local().Format(dateLayout+" 15:04")))
	if wl.BodyWeight != "" {
		fmt.Fprintf(w, "Body weight: %s\n", wl.BodyWeight)
	}
	if wl.Notes != "" {
		fmt.Fprintf(w, "Notes: %s\n", wl.Notes)
	}
	for i, ex := range wl.Exercises {
		summary, ok := history.Summarize(ex)
		if !ok {
			summary = "no sets logged"
		}
		name := ex.Name
		if ex.IsSkipped {
			name += " " + warnStyle.Render("(skipped)")
		}
		fmt.Fprintf(w, "  %d. %s  %s\n", i+1, name, mutedStyle.Render(summary))
		for j, ls := range ex.LoggedSets {
			fmt.Fprintf(w, "      set %d  %s\n", j+1, tui.DescribeSet(ex, ls))
		}
	}
}

// renderWorkout prints the live session for the line-based workout
func renderWorkout(w io.Writer, s *session.Session) {
	wo := s.Workout()
	fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(wo.Name), mutedStyle.Render("started "+wo.StartTime.Local().Format("15:04")))
	for i, ex := range wo.Exercises {
		head := fmt.Sprintf("%d. %s  %s", i+1, ex.Name, mutedStyle.Render(models.FormatSetTarget(ex.ExerciseTarget)))
		if ex.IsSkipped {
			head += " " + warnStyle.Render("(skipped)")
		}
		if ex.SupersetWithNext {
			head += " " + warnStyle.Render("⇣ superset")
		}
		fmt.Fprintln(w, head)

		prev := history.NoPreviousData
		if ex.PreviousPerformance != nil {
			prev = *ex.PreviousPerformance
		}
		fmt.Fprintf(w, "   Last time: %s\n", mutedStyle.Render(prev))
		for j, ls := range ex.LoggedSets {
			mark := "[ ]"
			if ls.Completed {
				mark = doneStyle.Render("[x]")
			}
			fmt.Fprintf(w, "   %s set %d  %s\n", mark, j+1, tui.DescribeSet(ex, ls))
		}
	}
	fmt.Fprintln(w, restLine(s))
	if st, ok := s.InSet(); ok {
		fmt.Fprintln(w, restStyle.Render(fmt.Sprintf("In-set timer: exercise %d set %d, %s left",
			st.ExerciseIndex+1, st.SetIndex+1, models.FormatClock(st.SecondsLeft))))
	}
}

func restLine(s *session.Session) string {
	rest := s.Rest()
	switch {
	case rest.Active && rest.Paused:
		return warnStyle.Render("Rest paused at " + models.FormatClock(rest.SecondsRemaining))
	case rest.Active:
		return restStyle.Render("Rest: " + models.FormatClock(rest.SecondsRemaining))
	}
	return mutedStyle.Render("Rest timer idle (" + models.FormatClock(s.RestDefault()) + ")")
}
