package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for wrokout",
	Long:  `Display detailed help for all wrokout commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				_ = target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

const logo = `
██╗    ██╗██████╗  ██████╗ ██╗  ██╗ ██████╗ ██╗   ██╗████████╗
██║    ██║██╔══██╗██╔═══██╗██║ ██╔╝██╔═══██╗██║   ██║╚══██╔══╝
██║ █╗ ██║██████╔╝██║   ██║█████╔╝ ██║   ██║██║   ██║   ██║
██║███╗██║██╔══██╗██║   ██║██╔═██╗ ██║   ██║██║   ██║   ██║
╚███╔███╔╝██║  ██║╚██████╔╝██║  ██╗╚██████╔╝╚██████╔╝   ██║
 ╚══╝╚══╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚═════╝    ╚═╝`

type helpSection struct {
	title    string
	commands []helpCommand
}

type helpCommand struct {
	name        string
	description string
	examples    []string
	flags       []helpFlag
}

type helpFlag struct {
	name        string
	description string
}

var helpSections = []helpSection{
	{
		title: "PLANS",
		commands: []helpCommand{
			{
				name:        "plan ls",
				description: "Browse plans: enter start, e edit, n new, d delete, shift+↑/↓ reorder",
				flags:       []helpFlag{{"--no-ui", "Plain table output"}},
			},
			{name: "plan show <plan>", description: "Show the exercises of a plan"},
			{
				name:        "plan add <name> [exercise...]",
				description: "Create a plan; without exercises the editor opens",
				examples:    []string{`wrokout plan add "Push Day" "Bench Press 3x8-12 @135 ~ss" "Dips 3 sets +amrap"`},
				flags:       []helpFlag{{"--no-ui", "Never open the editor"}},
			},
			{
				name:        "plan edit <plan>",
				description: "Edit a plan in the editor or with flags",
				flags: []helpFlag{
					{"--rename", "New plan name"},
					{"--add", "Append an exercise (repeatable)"},
					{"--remove", "Remove exercises by position"},
					{"--superset", "Toggle superset with the next exercise"},
				},
			},
			{name: "plan rm <plan>", description: "Delete a plan (logged workouts are kept)", flags: []helpFlag{{"-y, --yes", "Do not ask"}}},
			{name: "plan mv <from> <to>", description: "Move a plan to another position"},
		},
	},
	{
		title: "WORKOUTS",
		commands: []helpCommand{
			{
				name:        "start <plan>",
				description: "Start a workout with the rest clock and previous performance",
				examples:    []string{"wrokout start 1 --rest 2m"},
				flags: []helpFlag{
					{"--rest", "Rest between sets (90, 2m, 1:30)"},
					{"--no-ui", "Log sets with typed commands"},
				},
			},
		},
	},
	{
		title: "HISTORY",
		commands: []helpCommand{
			{name: "history ls", description: "List logged workouts, newest first"},
			{name: "history show <log>", description: "Show the sets of a workout"},
			{name: "history plan <log>", description: "Show the plan a workout was started from"},
			{name: "history date <log> <date>", description: "Move a workout to another day (dd/mm/yyyy, yesterday)"},
			{name: "history set <log> <ex#> <set#> <field> <value>", description: "Correct reps, weight or duration of a set"},
			{name: "history rmset <log> <ex#> <set#>", description: "Delete a set"},
			{name: "history edit <log>", description: "Change body weight or notes", flags: []helpFlag{{"--bw", "Body weight"}, {"--notes", "Notes"}}},
			{name: "history rm <log>", description: "Delete a workout", flags: []helpFlag{{"-y, --yes", "Do not ask"}}},
		},
	},
}

const exerciseSyntaxHelp = `EXERCISE SYNTAX:

  3x8-12        3 sets of 8 to 12 reps
  3x10          3 sets of 10 reps
  3x60s, 3x1:30 3 timed sets
  4 sets        set count only
  @135          target weight
  +amrap        set type: standard, warmup, dropset, amrap, timed
  drops:25x10,20x10  drop set steps (weight x reps)
  ~ss           superset with the next exercise
`

func showCustomHelp(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(logo))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "wrokout - Terminal Workout Logger")
	fmt.Fprintln(w)

	for _, section := range helpSections {
		fmt.Fprintln(w, titleStyle.Render(section.title+":"))
		fmt.Fprintln(w)
		for _, c := range section.commands {
			fmt.Fprintf(w, "  %-34s %s\n", c.name, c.description)
			for _, f := range c.flags {
				fmt.Fprintf(w, "    %-32s %s\n", f.name, f.description)
			}
			for _, ex := range c.examples {
				fmt.Fprintf(w, "    %s\n", mutedStyle.Render(ex))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, exerciseSyntaxHelp)
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(`
Run 'wrokout' with no arguments for the plan list. Settings live in
~/.wrokout/config.toml (rest_seconds, notifications, user, reduce_motion).`))
}
