package notify_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/balkashynov/wrokout/internal/notify"
)

type failing struct{ err error }

func (f failing) Notify(string, string) error { return f.err }

type recorder struct{ titles []string }

func (r *recorder) Notify(title, _ string) error {
	r.titles = append(r.titles, title)
	return nil
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, notify.Bell{W: &buf}.Notify("t", "b"))
	assert.Equal(t, "\a", buf.String())
}

func TestMulti_DeliversToAllAndCombinesErrors(t *testing.T) {
	rec := &recorder{}
	errA := errors.New("a")
	errB := errors.New("b")

	err := notify.Multi{failing{errA}, rec, nil, failing{errB}}.Notify("rest", "done")
	require.Error(t, err)
	assert.Equal(t, []string{"rest"}, rec.titles)
	assert.ElementsMatch(t, []error{errA, errB}, multierr.Errors(err))
}

func TestCommand_MissingExecutable(t *testing.T) {
	err := notify.Command{Name: "wrokout-no-such-notifier"}.Notify("t", "b")
	assert.Error(t, err)
}

func TestBestEffort_NeverPanics(t *testing.T) {
	notify.BestEffort(nil, "t", "b")
	notify.BestEffort(failing{errors.New("denied")}, "t", "b")
	notify.BestEffort(notify.Nop{}, "t", "b")
}
