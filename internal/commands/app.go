package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/balkashynov/wrokout/internal/auth"
	"github.com/balkashynov/wrokout/internal/config"
	"github.com/balkashynov/wrokout/internal/db"
	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/logging"
	"github.com/balkashynov/wrokout/internal/notify"
	"github.com/balkashynov/wrokout/internal/plans"
	"github.com/balkashynov/wrokout/internal/session"
	"github.com/balkashynov/wrokout/internal/tui"
)

// App holds everything a command needs once the config is loaded
type App struct {
	Config   *config.Config
	Store    *db.Store
	Users    auth.Provider
	Plans    *plans.Service
	History  *history.Service
	Notifier notify.Notifier

	logCloser io.Closer
}

// openApp loads the config, sets up logging and opens the database
func openApp(cfgPath string) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	closer := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.ToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})

	store, err := db.Open(cfg.DatabasePath)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	users := auth.NewLocal(cfg.User)
	return &App{
		Config:    cfg,
		Store:     store,
		Users:     users,
		Plans:     plans.NewService(store, users),
		History:   history.NewService(store, users),
		Notifier:  newNotifier(cfg),
		logCloser: closer,
	}, nil
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.Notifications {
		return notify.Nop{}
	}
	return notify.Multi{
		notify.Bell{W: os.Stdout},
		notify.Command{Name: cfg.DesktopNotifyCommand},
		notify.Log{Entry: log.WithField("component", "notify")},
	}
}

// Close closes the database and the log file
func (a *App) Close() error {
	return multierr.Combine(a.Store.Close(), a.logCloser.Close())
}

// newSession returns an idle session; restSeconds <= 0 uses the configured rest
func (a *App) newSession(restSeconds int) *session.Session {
	if restSeconds <= 0 {
		restSeconds = a.Config.RestSeconds
	}
	return session.New(a.Store, a.Users, session.Options{
		RestSeconds: restSeconds,
		Notifier:    a.Notifier,
	})
}

func (a *App) tuiApp(restSeconds int) tui.App {
	return tui.App{
		Plans:        a.Plans,
		History:      a.History,
		NewSession:   func() *session.Session { return a.newSession(restSeconds) },
		ReduceMotion: a.Config.ReduceMotion,
	}
}

// withApp wraps a command function to open the app first and close it after
func withApp(fn func(context.Context, *App, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := openApp(configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer func() {
			if err := app.Close(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}()
		fn(cmd.Context(), app, cmd, args)
	}
}
