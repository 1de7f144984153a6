// Package tui holds the interactive screens: the plan list, the plan
// editor and the active workout.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/plans"
	"github.com/balkashynov/wrokout/internal/session"
)

// App is what the screens need from the rest of the program
type App struct {
	Plans        *plans.Service
	History      *history.Service
	NewSession   func() *session.Session
	ReduceMotion bool
}

// RunHomeTUI shows the plan list and runs whatever the user picks from it
// until they quit
func RunHomeTUI(ctx context.Context, app App) error {
	for {
		m, err := runHome(ctx, app)
		if err != nil {
			return err
		}

		switch m.action {
		case homeStart:
			err = RunWorkoutTUI(ctx, app, m.chosen)
		case homeEdit:
			err = RunEditorTUI(ctx, app, m.chosen)
		case homeNew:
			err = RunEditorTUI(ctx, app, plans.NewDraft(m.templates))
		default:
			return nil
		}
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			time.Sleep(1500 * time.Millisecond)
		}
	}
}

func runHome(ctx context.Context, app App) (HomeModel, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tplCh, err := app.Plans.Watch(watchCtx)
	if err != nil {
		return HomeModel{}, err
	}
	logCh, err := app.History.Watch(watchCtx)
	if err != nil {
		return HomeModel{}, err
	}

	p := tea.NewProgram(NewHomeModel(ctx, app.Plans, tplCh, logCh, app.ReduceMotion), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return HomeModel{}, err
	}
	return final.(HomeModel), nil
}

// RunEditorTUI opens the plan editor on tmpl
func RunEditorTUI(ctx context.Context, app App, tmpl models.WorkoutTemplate) error {
	p := tea.NewProgram(NewEditorModel(ctx, app.Plans, tmpl), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(EditorModel); ok {
		if m.completed {
			fmt.Printf("✅ Workout plan \"%s\" saved\n", m.savedName)
		} else if m.cancelled {
			fmt.Println("❌ No changes saved.")
		}
	}
	return nil
}

// RunWorkoutTUI starts a workout from tmpl and runs it to the end
func RunWorkoutTUI(ctx context.Context, app App, tmpl models.WorkoutTemplate) error {
	logs, err := app.History.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load workout history: %w", err)
	}
	s := app.NewSession()
	if err := s.Start(ctx, tmpl, logs); err != nil {
		return err
	}

	p := tea.NewProgram(NewWorkoutModel(ctx, s), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	m := final.(WorkoutModel)
	switch {
	case m.saved != nil:
		printWorkoutSummary(*m.saved)
	case m.discarded:
		fmt.Println("🗑  Workout discarded.")
	}
	return nil
}

func printWorkoutSummary(wl models.WorkoutLog) {
	sets := 0
	for _, ex := range wl.Exercises {
		sets += ex.CompletedCount()
	}
	fmt.Printf("✅ Workout \"%s\" saved: %d sets", wl.Name, sets)
	if wl.EndTime != nil {
		fmt.Printf(" in %s", wl.EndTime.Sub(wl.StartTime).Round(time.Second))
	}
	fmt.Println()
}
