package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrokout/internal/parser"
	"github.com/balkashynov/wrokout/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start <plan>",
	Short: "Start a workout from a plan",
	Long: `Start a workout from a plan. <plan> is its position in 'wrokout plan ls',
its id, or its name.

  wrokout start "Push Day" --rest 2m
  wrokout start 1 --no-ui`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		rest := 0
		if restFlag, _ := cmd.Flags().GetString("rest"); restFlag != "" {
			secs, err := parser.ParseSeconds(restFlag)
			if err != nil {
				fmt.Fprintf(out, "Error: invalid rest '%s': %v\n", restFlag, err)
				return
			}
			rest = secs
		}

		tmpl, err := app.Plans.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunWorkoutTUI(ctx, app.tuiApp(rest), *tmpl); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
			return
		}

		logs, err := app.History.List(ctx)
		if err != nil {
			fmt.Fprintf(out, "Error: failed to load workout history: %v\n", err)
			return
		}
		s := app.newSession(rest)
		if err := s.Start(ctx, *tmpl, logs); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}

		wl, err := runWorkoutREPL(ctx, s, cmd.InOrStdin(), out, time.Second)
		switch {
		case err != nil:
			fmt.Fprintf(out, "Error: %v\n", err)
		case wl == nil:
			fmt.Fprintln(out, "🗑  Workout discarded.")
		default:
			fmt.Fprintf(out, "✅ Workout \"%s\" saved: %d sets", wl.Name, completedSets(wl.Exercises))
			if wl.EndTime != nil {
				fmt.Fprintf(out, " in %s", wl.EndTime.Sub(wl.StartTime).Round(time.Second))
			}
			fmt.Fprintln(out)
		}
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Log the workout with typed commands instead of the interactive screen")
	startCmd.Flags().String("rest", "", "Rest between sets (90, 90s, 2m, 1:30); defaults to rest_seconds from the config")
}
