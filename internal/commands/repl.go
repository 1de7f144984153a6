package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/parser"
	"github.com/balkashynov/wrokout/internal/session"
)

const replHelp = `Commands (exercise and set numbers start at 1):
  log E S [reps] [weight]   log a set; timed sets take seconds, drop sets take 25x10,20x8
  unlog E S                 undo a logged set
  add E                     add a set to an exercise
  skip E                    skip or unskip an exercise
  replace E <name>          swap an exercise for another one
  timer E S [secs]          start the in-set timer of a timed set
  timer cancel              cancel the in-set timer
  rest [secs]               start the rest timer
  pause | resume | stop     control the rest timer
  bw <weight>               record body weight
  notes <text>              record notes
  show                      show the workout
  finish                    save the workout
  cancel                    discard the workout
  help                      show this help
`

var errUnknownCommand = errors.New("unknown command, type 'help' for the list")

// replIO serialises writes from the command and timer goroutines
type replIO struct {
	mu  sync.Mutex
	out io.Writer
}

func (r *replIO) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

// runWorkoutREPL drives a started session from typed commands until the
// workout is finished or discarded. Timer events are printed as they
// happen. End of input discards the workout. A nil log with a nil error
// means the workout was discarded.
func runWorkoutREPL(ctx context.Context, s *session.Session, in io.Reader, out io.Writer, interval time.Duration) (*models.WorkoutLog, error) {
	ctx, cancel := context.WithCancel(ctx)
	loop := session.NewLoop(s, interval)
	rio := &replIO{out: out}

	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = loop.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		printTicks(ctx, loop, rio)
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	rio.printf("%s", replHelp)
	if err := loop.Do(ctx, func(s *session.Session) { renderWorkout(rio, s) }); err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := loop.Do(ctx, func(s *session.Session) { _ = s.Discard() }); err != nil {
					return nil, err
				}
				return nil, nil
			}
			wl, done, err := execLine(ctx, loop, rio, line)
			if err != nil {
				rio.printf("%s\n", errorStyle.Render("Error: "+err.Error()))
				continue
			}
			if done {
				return wl, nil
			}
		}
	}
}

// Write lets renderers print through the lock
func (r *replIO) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.out.Write(p)
}

func printTicks(ctx context.Context, loop *session.Loop, rio *replIO) {
	for out := range loop.Ticks() {
		if out.RestFinished {
			rio.printf("⏰ Rest is over! Time for the next set.\n")
		}
		if a := out.AutoLogged; a != nil {
			name := fmt.Sprintf("exercise %d", a.Exercise+1)
			_ = loop.Do(ctx, func(s *session.Session) {
				if ex, err := s.Exercise(a.Exercise); err == nil && ex.Name != "" {
					name = ex.Name
				}
			})
			rio.printf("⏱ %s set %d done: %ds\n", name, a.Set+1, a.Duration)
			if a.Outcome.Superset {
				rio.printf("%s\n", a.Outcome.Message)
			}
		}
	}
}

// execLine runs one typed command. done is set once the workout has ended.
func execLine(ctx context.Context, loop *session.Loop, rio *replIO, line string) (wl *models.WorkoutLog, done bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	run := func(fn func(*session.Session) error) error {
		var opErr error
		if err := loop.Do(ctx, func(s *session.Session) { opErr = fn(s) }); err != nil {
			return err
		}
		return opErr
	}

	switch name {
	case "help", "?":
		rio.printf("%s", replHelp)
		return nil, false, nil

	case "show", "ls":
		return nil, false, run(func(s *session.Session) error {
			renderWorkout(rio, s)
			return nil
		})

	case "log":
		e, set, err := exerciseAndSet(args)
		if err != nil {
			return nil, false, err
		}
		return nil, false, run(func(s *session.Session) error {
			ex, err := s.Exercise(e)
			if err != nil {
				return err
			}
			data, err := setData(ex, args[2:])
			if err != nil {
				return err
			}
			outcome, err := s.LogSet(e, set, data)
			if err != nil {
				return err
			}
			rio.printf("✅ %s set %d logged\n", ex.Name, set+1)
			switch {
			case outcome.Superset:
				rio.printf("%s\n", outcome.Message)
			case outcome.RestStarted:
				rio.printf("%s\n", restLine(s))
			}
			return nil
		})

	case "unlog":
		e, set, err := exerciseAndSet(args)
		if err != nil {
			return nil, false, err
		}
		return nil, false, run(func(s *session.Session) error {
			if err := s.UnlogSet(e, set); err != nil {
				return err
			}
			rio.printf("↩️  Set %d is no longer logged\n", set+1)
			return nil
		})

	case "add":
		e, err := exerciseArg(args)
		if err != nil {
			return nil, false, err
		}
		return nil, false, run(func(s *session.Session) error {
			if err := s.AddSet(e); err != nil {
				return err
			}
			ex, _ := s.Exercise(e)
			rio.printf("➕ %s now has %d sets\n", ex.Name, len(ex.LoggedSets))
			return nil
		})

	case "skip":
		e, err := exerciseArg(args)
		if err != nil {
			return nil, false, err
		}
		return nil, false, run(func(s *session.Session) error {
			if err := s.ToggleSkip(e); err != nil {
				return err
			}
			ex, _ := s.Exercise(e)
			if ex.IsSkipped {
				rio.printf("⏭  Skipping %s\n", ex.Name)
			} else {
				rio.printf("%s is back in the workout\n", ex.Name)
			}
			return nil
		})

	case "replace":
		e, err := exerciseArg(args)
		if err != nil {
			return nil, false, err
		}
		newName := strings.Join(args[1:], " ")
		return nil, false, run(func(s *session.Session) error {
			if err := s.StartReplace(e); err != nil {
				return err
			}
			if err := s.ConfirmReplace(e, newName); err != nil {
				s.CancelReplace()
				return err
			}
			rio.printf("🔁 Exercise %d is now %s\n", e+1, strings.TrimSpace(newName))
			return nil
		})

	case "timer":
		if len(args) == 1 && strings.EqualFold(args[0], "cancel") {
			return nil, false, run(func(s *session.Session) error {
				s.CancelInSetTimer()
				rio.printf("In-set timer cancelled\n")
				return nil
			})
		}
		e, set, err := exerciseAndSet(args)
		if err != nil {
			return nil, false, err
		}
		secs := 0
		if len(args) > 2 {
			if secs, err = parser.ParseSeconds(strings.Join(args[2:], " ")); err != nil {
				return nil, false, err
			}
		}
		return nil, false, run(func(s *session.Session) error {
			if err := s.StartInSetTimer(e, set, secs); err != nil {
				return err
			}
			st, _ := s.InSet()
			rio.printf("⏱ In-set timer: %s\n", models.FormatClock(st.SecondsLeft))
			return nil
		})

	case "rest":
		secs := 0
		if len(args) > 0 {
			if secs, err = parser.ParseSeconds(strings.Join(args, " ")); err != nil {
				return nil, false, err
			}
		}
		return nil, false, run(func(s *session.Session) error {
			if err := s.StartRest(secs); err != nil {
				return err
			}
			rio.printf("%s\n", restLine(s))
			return nil
		})

	case "pause", "resume", "stop":
		return nil, false, run(func(s *session.Session) error {
			switch name {
			case "pause":
				s.PauseRest()
			case "resume":
				s.ResumeRest()
			case "stop":
				s.StopRest()
			}
			rio.printf("%s\n", restLine(s))
			return nil
		})

	case "bw":
		value := strings.Join(args, " ")
		return nil, false, run(func(s *session.Session) error {
			s.SetBodyWeight(value)
			rio.printf("Body weight: %s\n", orDash(value))
			return nil
		})

	case "notes":
		value := strings.Join(args, " ")
		return nil, false, run(func(s *session.Session) error {
			s.SetNotes(value)
			rio.printf("Notes saved\n")
			return nil
		})

	case "finish", "done":
		err := run(func(s *session.Session) error {
			var err error
			wl, err = s.Finish(ctx, "", "")
			return err
		})
		if err != nil {
			return nil, false, err
		}
		return wl, true, nil

	case "cancel", "discard", "quit", "exit":
		if err := run(func(s *session.Session) error { return s.Discard() }); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	return nil, false, errUnknownCommand
}

// setData reads the logged values for a set in the form its type expects
func setData(ex models.ActiveExercise, values []string) (session.SetData, error) {
	var data session.SetData
	if len(values) == 0 {
		return data, nil
	}
	switch ex.SetType.Normalize() {
	case models.SetTimed:
		secs, err := parser.ParseSeconds(strings.Join(values, " "))
		if err != nil {
			return data, err
		}
		data.DurationAchieved = &secs
	case models.SetDropset:
		drops, err := parser.ParseDrops(strings.Join(values, ","))
		if err != nil {
			return data, fmt.Errorf("invalid drops: %w", err)
		}
		data.Drops = drops
	default:
		data.Reps = &values[0]
		if len(values) > 1 {
			data.Weight = &values[1]
		}
	}
	return data, nil
}

func exerciseArg(args []string) (int, error) {
	if len(args) < 1 {
		return 0, errors.New("expected an exercise number")
	}
	return index(args[0], "exercise")
}

func exerciseAndSet(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, errors.New("expected an exercise number and a set number")
	}
	e, err := index(args[0], "exercise")
	if err != nil {
		return 0, 0, err
	}
	s, err := index(args[1], "set")
	if err != nil {
		return 0, 0, err
	}
	return e, s, nil
}

func index(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s number '%s'", what, arg)
	}
	return n - 1, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
