package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/parser"
	"github.com/balkashynov/wrokout/internal/plans"
	"github.com/balkashynov/wrokout/internal/tui"
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"plans"},
	Short:   "Manage workout plans",
}

var planListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List workout plans",
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunHomeTUI(ctx, app.tuiApp(0)); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			}
			return
		}

		list, err := app.Plans.List(ctx)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error fetching workout plans: %v\n", err)
			return
		}
		renderPlanTable(cmd.OutOrStdout(), list)
	}),
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan>",
	Short: "Show the exercises of a plan",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		tmpl, err := app.Plans.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return
		}
		renderPlanDetails(cmd.OutOrStdout(), *tmpl)
	}),
}

var planAddCmd = &cobra.Command{
	Use:   "add <name> [exercise...]",
	Short: "Create a workout plan",
	Long: `Create a workout plan. Each exercise is one argument in the quick syntax:

  wrokout plan add "Push Day" "Bench Press 3x8-12 @135 ~ss" "Dips 3 sets +amrap"

Without exercises the plan editor opens.`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		noUI, _ := cmd.Flags().GetBool("no-ui")

		existing, err := app.Plans.List(ctx)
		if err != nil {
			fmt.Fprintf(out, "Error fetching workout plans: %v\n", err)
			return
		}
		draft := plans.NewDraft(existing)
		draft.Name = args[0]

		if len(args) == 1 && !noUI {
			if err := tui.RunEditorTUI(ctx, app.tuiApp(0), draft); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
			return
		}

		exercises, err := parseExercises(args[1:])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		draft.Exercises = exercises

		if _, err := app.Plans.Save(ctx, &draft); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "✅ Created workout plan \"%s\" with %d exercises\n", draft.Name, len(draft.Exercises))
		renderPlanDetails(out, draft)
	}),
}

var planEditCmd = &cobra.Command{
	Use:   "edit <plan>",
	Short: "Edit a workout plan",
	Long: `Edit a workout plan in the editor, or change it directly with flags:

  wrokout plan edit 1 --rename "Upper" --add "Rows 3x10 @95" --remove 2 --superset 1`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		tmpl, err := app.Plans.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}

		flags := cmd.Flags()
		noUI, _ := flags.GetBool("no-ui")
		changed := flags.Changed("rename") || flags.Changed("add") || flags.Changed("remove") || flags.Changed("superset")
		if !noUI && !changed {
			if err := tui.RunEditorTUI(ctx, app.tuiApp(0), *tmpl); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
			return
		}

		rename, _ := flags.GetString("rename")
		add, _ := flags.GetStringArray("add")
		remove, _ := flags.GetIntSlice("remove")
		superset, _ := flags.GetIntSlice("superset")

		edited, err := editPlan(*tmpl, rename, add, remove, superset)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		if _, err := app.Plans.Save(ctx, &edited); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "✅ Updated workout plan \"%s\"\n", edited.Name)
		renderPlanDetails(out, edited)
	}),
}

var planRemoveCmd = &cobra.Command{
	Use:     "rm <plan>",
	Aliases: []string{"delete"},
	Short:   "Delete a workout plan",
	Long:    "Delete a workout plan. Workouts already logged from it are kept.",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		tmpl, err := app.Plans.Resolve(ctx, args[0])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete workout plan \"%s\"?", tmpl.Name)) {
			fmt.Fprintln(out, "Cancelled.")
			return
		}
		if err := app.Plans.Delete(ctx, tmpl.ID); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "🗑  Deleted workout plan \"%s\"\n", tmpl.Name)
	}),
}

var planMoveCmd = &cobra.Command{
	Use:   "mv <from> <to>",
	Short: "Move a plan to another position in the list",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		list, err := app.Plans.List(ctx)
		if err != nil {
			fmt.Fprintf(out, "Error fetching workout plans: %v\n", err)
			return
		}
		from, err := position(args[0], len(list))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		to, err := position(args[1], len(list))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}

		moved, err := app.Plans.Reorder(ctx, list, from, to)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "↕️  Moved \"%s\" to position %d\n", list[from].Name, to+1)
		renderPlanTable(out, moved)
	}),
}

// parseExercises reads exercises in the quick syntax and reports every
// problem found, prefixed with the exercise it belongs to
func parseExercises(args []string) ([]models.ExerciseTarget, error) {
	var (
		exercises []models.ExerciseTarget
		problems  []string
	)
	for i, arg := range args {
		parsed := parser.ParseExercise(arg)
		for _, e := range parsed.Errors {
			problems = append(problems, fmt.Sprintf("exercise %d: %s", i+1, e))
		}
		if strings.TrimSpace(parsed.Exercise.Name) == "" {
			problems = append(problems, fmt.Sprintf("exercise %d: Exercise name is required", i+1))
		}
		exercises = append(exercises, parsed.Exercise)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return exercises, nil
}

// editPlan applies flag edits in order: rename, superset, remove, add.
// Positions are 1-based and refer to the plan as it was loaded.
func editPlan(tmpl models.WorkoutTemplate, rename string, add []string, remove, superset []int) (models.WorkoutTemplate, error) {
	ed := plans.NewEditor(tmpl)
	if rename != "" {
		ed.SetName(rename)
	}

	for _, p := range superset {
		if err := ed.ToggleSuperset(p - 1); err != nil {
			return models.WorkoutTemplate{}, err
		}
	}

	var ids []string
	for _, p := range remove {
		if p < 1 || p > len(tmpl.Exercises) {
			return models.WorkoutTemplate{}, fmt.Errorf("exercise #%d does not exist", p)
		}
		ids = append(ids, tmpl.Exercises[p-1].ID)
	}
	for _, id := range ids {
		ed.RemoveExercise(id)
	}

	exercises, err := parseExercises(add)
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	for _, ex := range exercises {
		ed.AddExercise(ex)
	}
	return ed.Template(), nil
}

// position turns a 1-based list position into an index
func position(arg string, n int) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || p < 1 || p > n {
		return 0, fmt.Errorf("invalid position '%s': expected 1 to %d", arg, n)
	}
	return p - 1, nil
}

// confirm asks a yes/no question; anything but y or yes is a no
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	planListCmd.Flags().Bool("no-ui", false, "Print a plain table instead of the interactive list")
	planAddCmd.Flags().Bool("no-ui", false, "Never open the editor")
	planEditCmd.Flags().Bool("no-ui", false, "Never open the editor")
	planEditCmd.Flags().String("rename", "", "New plan name")
	planEditCmd.Flags().StringArray("add", nil, "Exercise to append, in the quick syntax (repeatable)")
	planEditCmd.Flags().IntSlice("remove", nil, "Positions of exercises to remove")
	planEditCmd.Flags().IntSlice("superset", nil, "Positions of exercises to toggle superset with the next one")
	planRemoveCmd.Flags().BoolP("yes", "y", false, "Delete without asking")

	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planEditCmd)
	planCmd.AddCommand(planRemoveCmd)
	planCmd.AddCommand(planMoveCmd)
}
