// Package notify delivers user-facing alerts. Every sink is best effort:
// callers go through BestEffort and never see a failure.
package notify

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Notifier shows a short alert to the user
type Notifier interface {
	Notify(title, body string) error
}

// BestEffort sends through n and swallows any error
func BestEffort(n Notifier, title, body string) {
	if n == nil {
		return
	}
	if err := n.Notify(title, body); err != nil {
		log.Debugf("notification %q not delivered: %s", title, err)
	}
}

// Nop discards notifications; used when they are disabled
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

// Bell rings the terminal bell
type Bell struct {
	W io.Writer
}

func (b Bell) Notify(string, string) error {
	if b.W == nil {
		return nil
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

// Log writes the alert to the application log
type Log struct {
	Entry *log.Entry
}

func (l Log) Notify(title, body string) error {
	entry := l.Entry
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}
	entry.WithField("title", title).Info(body)
	return nil
}

// Command runs a desktop notifier such as notify-send with title and body
// as arguments. A missing executable is reported as an error.
type Command struct {
	Name    string
	Timeout time.Duration
}

func (c Command) Notify(title, body string) error {
	if c.Name == "" {
		return nil
	}
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("desktop notifier %q: %w", c.Name, err)
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := exec.CommandContext(ctx, path, title, body).Run(); err != nil {
		return fmt.Errorf("run %s: %w", c.Name, err)
	}
	return nil
}

// Multi fans an alert out to every sink and combines their errors
type Multi []Notifier

func (m Multi) Notify(title, body string) error {
	var err error
	for _, n := range m {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.Notify(title, body))
	}
	return err
}
