package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wrokout/internal/auth"
)

func TestLocal_CurrentUser(t *testing.T) {
	env := func(v string) func(string) string {
		return func(key string) string {
			if key == auth.EnvUser {
				return v
			}
			return ""
		}
	}
	account := func(name string, err error) func() (string, error) {
		return func() (string, error) { return name, err }
	}

	tests := []struct {
		name    string
		p       *auth.Local
		want    string
		wantErr error
	}{
		{"profile wins", auth.NewLocalWith(" coach ", env("envuser"), account("os", nil)), "coach", nil},
		{"environment", auth.NewLocalWith("", env("envuser"), account("os", nil)), "envuser", nil},
		{"os account", auth.NewLocalWith("", env(""), account("os", nil)), "os", nil},
		{"nothing", auth.NewLocalWith("", env(" "), account("", errors.New("no passwd"))), "", auth.ErrNoUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.p.CurrentUser(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.ID)
		})
	}
}

func TestLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := auth.NewLocal("coach").CurrentUser(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic(t *testing.T) {
	u, err := auth.Static("alice").CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", u.ID)

	_, err = auth.Static("").CurrentUser(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoUser)
}
