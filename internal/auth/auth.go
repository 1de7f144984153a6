// Package auth resolves the identity that owns templates and logs.
package auth

import (
	"context"
	"errors"
	"os"
	"os/user"
	"strings"
)

// EnvUser overrides the configured profile name
const EnvUser = "WROKOUT_USER"

// ErrNoUser is returned when no identity can be resolved
var ErrNoUser = errors.New("no user profile: set `user` in the config file or WROKOUT_USER")

// User is an authenticated identity
type User struct {
	ID string
}

// Provider supplies the current user
type Provider interface {
	CurrentUser(ctx context.Context) (User, error)
}

// Local resolves the user from the configured profile, then the
// environment, then the operating system account.
type Local struct {
	Profile string

	// hooks for tests
	getenv  func(string) string
	account func() (string, error)
}

// NewLocal returns a Local provider for the configured profile name
func NewLocal(profile string) *Local {
	return &Local{
		Profile: profile,
		getenv:  os.Getenv,
		account: osAccount,
	}
}

// CurrentUser implements Provider
func (l *Local) CurrentUser(ctx context.Context) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	if id := strings.TrimSpace(l.Profile); id != "" {
		return User{ID: id}, nil
	}
	if l.getenv != nil {
		if id := strings.TrimSpace(l.getenv(EnvUser)); id != "" {
			return User{ID: id}, nil
		}
	}
	if l.account != nil {
		if id, err := l.account(); err == nil && strings.TrimSpace(id) != "" {
			return User{ID: strings.TrimSpace(id)}, nil
		}
	}
	return User{}, ErrNoUser
}

func osAccount() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Static always returns the same user. An empty id means signed out.
type Static string

// CurrentUser implements Provider
func (s Static) CurrentUser(context.Context) (User, error) {
	if s == "" {
		return User{}, ErrNoUser
	}
	return User{ID: string(s)}, nil
}
