// Package session runs one workout from a template: set logging, the
// superset rest policy, replacement and skipping of exercises, and the rest
// and in-set timers. A Session is not safe for concurrent use; drive it from
// one goroutine, or through a Loop.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/balkashynov/wrokout/internal/history"
	"github.com/balkashynov/wrokout/internal/models"
	"github.com/balkashynov/wrokout/internal/notify"
	"github.com/balkashynov/wrokout/internal/timer"
)

// DefaultInSetSeconds is used for timed sets without a target duration
const DefaultInSetSeconds = 60

const nextExerciseFallback = "the next exercise"

// State is the lifecycle stage of a session
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
	Discarded
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	case Discarded:
		return "discarded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// SetData is what the user entered for a set. Nil fields keep the value
// already typed into the set.
type SetData struct {
	Reps             *string
	Weight           *string
	DurationAchieved *int
	Drops            []models.Drop
}

// LogOutcome reports what logging a set did to the rest timer
type LogOutcome struct {
	RestStarted bool
	Superset    bool
	Message     string
}

// AutoLog is a set logged by an expired in-set timer
type AutoLog struct {
	Exercise int
	Set      int
	Duration int
	Outcome  LogOutcome
}

// TickOutcome is the result of one second passing
type TickOutcome struct {
	Rest         timer.RestState
	RestFinished bool
	InSet        *timer.InSetState
	AutoLogged   *AutoLog
}

// Options configures a Session
type Options struct {
	RestSeconds int
	Notifier    Notifier
	Now         func() time.Time
}

type replaceState struct {
	exercise int
	name     string
}

// Session owns the active workout and both timers
type Session struct {
	store LogWriter
	users UserProvider

	state            State
	workout          models.ActiveWorkout
	rest             *timer.Rest
	inSet            *timer.InSet
	replacing        *replaceState
	bodyWeightPrompt bool

	now func() time.Time
	log *log.Entry
}

// New returns a session in the NotStarted state
func New(store LogWriter, users UserProvider, opts Options) *Session {
	var n notify.Notifier = notify.Nop{}
	if opts.Notifier != nil {
		n = opts.Notifier
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		store: store,
		users: users,
		rest:  timer.NewRest(opts.RestSeconds, n),
		inSet: timer.NewInSet(),
		now:   now,
		log:   log.WithField("component", "session"),
	}
}

// Start begins a workout from tmpl. Previous performance is taken from
// the most recent completed log of the same template in logs.
func (s *Session) Start(ctx context.Context, tmpl models.WorkoutTemplate, logs []models.WorkoutLog) error {
	if s.state == InProgress {
		return ErrInProgress
	}
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("cannot start workout: %w", err)
	}

	previous := history.PreviousPerformance(logs, tmpl.ID)
	exercises := make([]models.ActiveExercise, len(tmpl.Exercises))
	for i, target := range tmpl.Exercises {
		target = target.Clone()
		if target.ID == "" {
			target.ID = models.NewID()
		}
		n := target.TargetSets
		if n < 1 {
			n = 1
		}
		sets := make([]models.LoggedSet, n)
		for j := range sets {
			sets[j] = models.EmptySet(target)
		}
		ex := models.ActiveExercise{ExerciseTarget: target, LoggedSets: sets}
		if p, ok := previous[target.Name]; ok {
			ex.PreviousPerformance = &p
		}
		exercises[i] = ex
	}

	s.workout = models.ActiveWorkout{
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		StartTime:  s.now(),
		Exercises:  exercises,
	}
	s.state = InProgress
	s.rest.Stop()
	s.inSet.Cancel()
	s.replacing = nil
	s.bodyWeightPrompt = true

	s.log.WithFields(log.Fields{
		"user":      u.ID,
		"template":  tmpl.ID,
		"exercises": len(exercises),
	}).Info("workout started")
	return nil
}

// LogSet marks a set completed with data merged in, then applies the rest
// policy: the rest timer starts unless the exercise leads a superset and
// all of its target sets are now done.
func (s *Session) LogSet(exercise, set int, data SetData) (LogOutcome, error) {
	ls, err := s.set(exercise, set)
	if err != nil {
		return LogOutcome{}, err
	}
	if data.Reps != nil {
		ls.Reps = *data.Reps
	}
	if data.Weight != nil {
		ls.Weight = *data.Weight
	}
	if data.DurationAchieved != nil {
		ls.DurationAchieved = models.IntPtr(*data.DurationAchieved)
	}
	if data.Drops != nil {
		ls.Drops = append([]models.Drop(nil), data.Drops...)
	}
	ls.Completed = true

	ex := s.workout.Exercises[exercise]
	entry := s.log.WithFields(log.Fields{"exercise": ex.Name, "set": set + 1})
	if ex.SupersetWithNext && ex.CompletedCount() >= ex.TargetSets {
		next := nextExerciseFallback
		if exercise+1 < len(s.workout.Exercises) && s.workout.Exercises[exercise+1].Name != "" {
			next = s.workout.Exercises[exercise+1].Name
		}
		entry.Debug("superset complete, rest skipped")
		return LogOutcome{
			Superset: true,
			Message:  fmt.Sprintf("Superset: Move to %s! No long rest.", next),
		}, nil
	}

	s.rest.StartDefault()
	entry.Debug("set logged")
	return LogOutcome{RestStarted: true}, nil
}

// UnlogSet returns a set to its empty, not logged shape. The rest timer is
// left alone.
func (s *Session) UnlogSet(exercise, set int) error {
	ls, err := s.set(exercise, set)
	if err != nil {
		return err
	}
	*ls = models.EmptySet(s.workout.Exercises[exercise].ExerciseTarget)
	return nil
}

// AddSet appends an empty set to the exercise
func (s *Session) AddSet(exercise int) error {
	ex, err := s.exercise(exercise)
	if err != nil {
		return err
	}
	ex.LoggedSets = append(ex.LoggedSets, models.EmptySet(ex.ExerciseTarget))
	return nil
}

// SetField edits a value typed into a set without logging it
func (s *Session) SetField(exercise, set int, field models.SetField, value string) error {
	ls, err := s.set(exercise, set)
	if err != nil {
		return err
	}
	return ls.Set(field, value)
}

// SetDrop edits one drop of a set without logging it
func (s *Session) SetDrop(exercise, set, drop int, patch models.DropPatch) error {
	ls, err := s.set(exercise, set)
	if err != nil {
		return err
	}
	if err := ls.SetDrop(drop, patch, len(s.workout.Exercises[exercise].Drops)); err != nil {
		return fmt.Errorf("%w: #%d", ErrDropIndex, drop+1)
	}
	return nil
}

// ToggleSkip flips the skipped flag of an exercise
func (s *Session) ToggleSkip(exercise int) error {
	ex, err := s.exercise(exercise)
	if err != nil {
		return err
	}
	ex.IsSkipped = !ex.IsSkipped
	return nil
}

// StartReplace enters replace mode for an exercise, prefilled with its name
func (s *Session) StartReplace(exercise int) error {
	ex, err := s.exercise(exercise)
	if err != nil {
		return err
	}
	s.replacing = &replaceState{exercise: exercise, name: ex.Name}
	return nil
}

// SetReplaceName updates the name typed in replace mode
func (s *Session) SetReplaceName(name string) error {
	if s.replacing == nil {
		return ErrNotReplacing
	}
	s.replacing.name = name
	return nil
}

// Replacing reports the exercise in replace mode and its pending name
func (s *Session) Replacing() (exercise int, name string, ok bool) {
	if s.replacing == nil {
		return 0, "", false
	}
	return s.replacing.exercise, s.replacing.name, true
}

// ConfirmReplace renames the exercise. Sets and targets are kept.
func (s *Session) ConfirmReplace(exercise int, name string) error {
	ex, err := s.exercise(exercise)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyReplacementName
	}
	s.log.WithFields(log.Fields{"from": ex.Name, "to": name}).Debug("exercise replaced")
	ex.Name = name
	s.replacing = nil
	return nil
}

// CancelReplace leaves replace mode without changes
func (s *Session) CancelReplace() {
	s.replacing = nil
}

// SetBodyWeight records the body weight for this workout
func (s *Session) SetBodyWeight(v string) {
	s.workout.BodyWeight = v
	s.bodyWeightPrompt = false
}

// SetNotes records the notes for this workout
func (s *Session) SetNotes(v string) {
	s.workout.Notes = v
}

// BodyWeightPrompt reports whether the body weight question is still open
func (s *Session) BodyWeightPrompt() bool { return s.bodyWeightPrompt }

// DismissBodyWeightPrompt closes the body weight question
func (s *Session) DismissBodyWeightPrompt() { s.bodyWeightPrompt = false }

// Finish saves the workout as a log. Only completed sets are kept, except
// for skipped exercises which keep every set. On a save error the session
// stays in progress so the user can retry.
func (s *Session) Finish(ctx context.Context, bodyWeight, notes string) (*models.WorkoutLog, error) {
	if s.state != InProgress {
		return nil, ErrNotInProgress
	}
	u, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if bodyWeight == "" {
		bodyWeight = s.workout.BodyWeight
	}
	if notes == "" {
		notes = s.workout.Notes
	}
	end := s.now()
	wl := &models.WorkoutLog{
		TemplateID:  s.workout.TemplateID,
		Name:        s.workout.Name,
		StartTime:   s.workout.StartTime,
		EndTime:     &end,
		IsCompleted: true,
		BodyWeight:  bodyWeight,
		Notes:       notes,
		Exercises:   make([]models.ActiveExercise, len(s.workout.Exercises)),
	}
	for i, ex := range s.workout.Exercises {
		kept := ex.Clone()
		kept.LoggedSets = kept.LoggedSets[:0]
		for _, set := range ex.LoggedSets {
			if set.Completed || ex.IsSkipped {
				kept.LoggedSets = append(kept.LoggedSets, set.Clone())
			}
		}
		wl.Exercises[i] = kept
	}

	if _, err := s.store.CreateLog(ctx, u.ID, wl); err != nil {
		s.log.WithError(err).Error("saving workout log failed")
		return nil, fmt.Errorf("Error saving workout log: %w", err)
	}

	s.workout.IsCompleted = true
	s.workout.BodyWeight = bodyWeight
	s.workout.Notes = notes
	s.state = Completed
	s.endTransients()
	s.log.WithFields(log.Fields{"log": wl.ID, "duration": end.Sub(wl.StartTime).Round(time.Second)}).Info("workout finished")
	return wl, nil
}

// Discard abandons the workout without saving anything
func (s *Session) Discard() error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	s.state = Discarded
	s.endTransients()
	s.log.WithField("template", s.workout.TemplateID).Info("workout discarded")
	return nil
}

func (s *Session) endTransients() {
	s.rest.Stop()
	s.inSet.Cancel()
	s.replacing = nil
	s.bodyWeightPrompt = false
}

// StartRest restarts the rest countdown; seconds <= 0 uses the default
func (s *Session) StartRest(seconds int) error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	s.rest.Start(seconds)
	return nil
}

// PauseRest pauses the rest countdown
func (s *Session) PauseRest() { s.rest.Pause() }

// ResumeRest resumes a paused rest countdown
func (s *Session) ResumeRest() { s.rest.Resume() }

// StopRest stops the rest countdown and resets it to the default
func (s *Session) StopRest() { s.rest.Stop() }

// Rest returns the rest timer state
func (s *Session) Rest() timer.RestState { return s.rest.State() }

// RestDefault returns the default rest length in seconds
func (s *Session) RestDefault() int { return s.rest.Default() }

// StartInSetTimer starts the countdown of a timed set, replacing any other
// one. seconds <= 0 uses the exercise's target duration.
func (s *Session) StartInSetTimer(exercise, set, seconds int) error {
	if _, err := s.set(exercise, set); err != nil {
		return err
	}
	if seconds <= 0 {
		seconds = DefaultInSetSeconds
		if d := s.workout.Exercises[exercise].TargetDuration; d != nil && *d > 0 {
			seconds = *d
		}
	}
	s.inSet.Start(exercise, set, seconds)
	return nil
}

// CancelInSetTimer drops the running in-set countdown without logging
func (s *Session) CancelInSetTimer() { s.inSet.Cancel() }

// InSet returns the running in-set countdown
func (s *Session) InSet() (timer.InSetState, bool) { return s.inSet.State() }

// Tick advances both timers by one second. An in-set countdown that runs
// out logs its set with the requested duration.
func (s *Session) Tick() TickOutcome {
	var out TickOutcome
	if s.state != InProgress {
		out.Rest = s.rest.State()
		return out
	}

	out.RestFinished = s.rest.Tick()

	if st, expired := s.inSet.Tick(); expired {
		d := st.Duration
		outcome, err := s.LogSet(st.ExerciseIndex, st.SetIndex, SetData{DurationAchieved: &d})
		if err != nil {
			s.log.WithError(err).Warn("in-set timer expired on a missing set")
		} else {
			out.AutoLogged = &AutoLog{Exercise: st.ExerciseIndex, Set: st.SetIndex, Duration: d, Outcome: outcome}
		}
	}
	if st, ok := s.inSet.State(); ok {
		out.InSet = &st
	}
	out.Rest = s.rest.State()
	return out
}

// Hide records that the view went to the background
func (s *Session) Hide(now time.Time) { s.rest.Hide(now) }

// Show corrects the rest countdown for the time spent hidden. It reports
// whether the countdown ran out meanwhile.
func (s *Session) Show(now time.Time) bool { return s.rest.Show(now) }

// State returns the lifecycle stage
func (s *Session) State() State { return s.state }

// Workout returns a copy of the active workout
func (s *Session) Workout() models.ActiveWorkout { return s.workout.Clone() }

// Exercise returns a copy of one exercise
func (s *Session) Exercise(i int) (models.ActiveExercise, error) {
	ex, err := s.exercise(i)
	if err != nil {
		return models.ActiveExercise{}, err
	}
	return ex.Clone(), nil
}

func (s *Session) exercise(i int) (*models.ActiveExercise, error) {
	if s.state != InProgress {
		return nil, ErrNotInProgress
	}
	if i < 0 || i >= len(s.workout.Exercises) {
		return nil, fmt.Errorf("%w: #%d", ErrExerciseIndex, i+1)
	}
	return &s.workout.Exercises[i], nil
}

func (s *Session) set(exercise, set int) (*models.LoggedSet, error) {
	ex, err := s.exercise(exercise)
	if err != nil {
		return nil, err
	}
	if set < 0 || set >= len(ex.LoggedSets) {
		return nil, fmt.Errorf("%w: #%d", ErrSetIndex, set+1)
	}
	return &ex.LoggedSets[set], nil
}
