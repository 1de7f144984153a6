package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrokout/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "wrokout",
	Short: "A terminal workout logger",
	Long: `wrokout keeps your workout plans and logs your sessions from the terminal.
Plan exercises with a quick syntax, log sets with rest and in-set timers,
and see what you lifted last time.`,
	Run: withApp(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) {
		if err := tui.RunHomeTUI(ctx, app.tuiApp(0)); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wrokout %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.wrokout/config.toml)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
