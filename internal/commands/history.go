package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/parser"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"log", "logs"},
	Short:   "Browse and fix logged workouts",
	Long: `Browse and fix logged workouts. <log> is its position in 'wrokout history ls'
(newest first) or its id.`,
}

var historyListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged workouts, newest first",
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		logs, err := app.History.List(ctx)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error fetching workout history: %v\n", err)
			return
		}
		renderLogTable(cmd.OutOrStdout(), logs)
	}),
}

var historyShowCmd = &cobra.Command{
	Use:   "show <log>",
	Short: "Show the sets of a logged workout",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		wl, err := app.History.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return
		}
		renderLogDetails(cmd.OutOrStdout(), *wl)
	}),
}

var historyRemoveCmd = &cobra.Command{
	Use:     "rm <log>",
	Aliases: []string{"delete"},
	Short:   "Delete a logged workout",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		wl, err := app.History.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		question := fmt.Sprintf("Delete \"%s\" from %s?", wl.Name, wl.StartTime.Local().Format(dateLayout))
		if !yes && !confirm(cmd.InOrStdin(), out, question) {
			fmt.Fprintln(out, "Cancelled.")
			return
		}
		if err := app.History.Delete(ctx, wl.ID); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "🗑  Deleted workout \"%s\"\n", wl.Name)
	}),
}

var historyPlanCmd = &cobra.Command{
	Use:   "plan <log>",
	Short: "Show the plan a workout was started from",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		wl, err := app.History.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		tmpl, err := app.History.PlanForLog(ctx, *wl)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		renderPlanDetails(out, *tmpl)
	}),
}

var historyRemoveSetCmd = &cobra.Command{
	Use:   "rmset <log> <exercise#> <set#>",
	Short: "Delete one set from a logged workout",
	Args:  cobra.ExactArgs(3),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		e, set, err := exerciseAndSet(args[1:])
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return
		}
		editLog(ctx, app, cmd.OutOrStdout(), args[0], func(ed *history.LogEditor) error {
			return ed.RemoveSet(e, set)
		})
	}),
}

var historyDateCmd = &cobra.Command{
	Use:   "date <log> <date>",
	Short: "Move a logged workout to another day (dd/mm/yyyy, yesterday, 3 days ago)",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		day, err := parser.ParseDate(strings.Join(args[1:], " "), time.Now())
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return
		}
		editLog(ctx, app, cmd.OutOrStdout(), args[0], func(ed *history.LogEditor) error {
			ed.SetDate(day.Year(), day.Month(), day.Day())
			return nil
		})
	}),
}

var historySetCmd = &cobra.Command{
	Use:   "set <log> <exercise#> <set#> <reps|weight|duration> <value>",
	Short: "Correct a value of a logged set",
	Args:  cobra.RangeArgs(4, 5),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		e, set, err := exerciseAndSet(args[1:3])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		field, err := models.ParseSetField(args[3])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		value := ""
		if len(args) == 5 {
			value = args[4]
		}
		editLog(ctx, app, out, args[0], func(ed *history.LogEditor) error {
			return ed.SetField(e, set, field, value)
		})
	}),
}

var historyEditCmd = &cobra.Command{
	Use:   "edit <log>",
	Short: "Change the body weight or notes of a logged workout",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		if !flags.Changed("bw") && !flags.Changed("notes") {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to change. Use --bw or --notes.")
			return
		}
		bw, _ := flags.GetString("bw")
		notes, _ := flags.GetString("notes")
		editLog(ctx, app, cmd.OutOrStdout(), args[0], func(ed *history.LogEditor) error {
			if flags.Changed("bw") {
				ed.SetBodyWeight(bw)
			}
			if flags.Changed("notes") {
				ed.SetNotes(notes)
			}
			return nil
		})
	}),
}

// editLog applies fn to a copy of the log and saves the result
func editLog(ctx context.Context, app *App, out io.Writer, ref string, fn func(*history.LogEditor) error) {
	wl, err := app.History.Resolve(ctx, ref)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	ed := history.NewLogEditor(*wl)
	if err := fn(ed); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	edited := ed.Log()
	if err := app.History.Save(ctx, &edited); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(out, "✅ Workout updated")
	renderLogDetails(out, edited)
}

func init() {
	historyRemoveCmd.Flags().BoolP("yes", "y", false, "Delete without asking")
	historyEditCmd.Flags().String("bw", "", "Body weight")
	historyEditCmd.Flags().String("notes", "", "Notes")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyPlanCmd)
	historyCmd.AddCommand(historyRemoveSetCmd)
	historyCmd.AddCommand(historyDateCmd)
	historyCmd.AddCommand(historySetCmd)
	historyCmd.AddCommand(historyEditCmd)
}
