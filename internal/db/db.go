// Package db is the document store for templates and workout logs. Each
// user's documents live in sqlite rows keyed by user id, with the exercise
// documents stored as JSON columns.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/wrokout/internal/models"
)

// ErrNotFound is returned when a document id does not exist for the user
var ErrNotFound = errors.New("document not found")

// Store is an open database plus the live query broker
type Store struct {
	db     *gorm.DB
	broker *broker
	log    *log.Entry
}

// Open sets up the database connection at path and runs migrations
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite allows one writer; a single connection keeps live query reloads
	// from racing writes into SQLITE_BUSY.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	s := &Store{
		db:     gdb,
		broker: newBroker(),
		log:    log.WithField("component", "db"),
	}
	if err := s.runMigrations(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s.log.WithField("path", path).Debug("database opened")
	return s, nil
}

// DefaultPath returns the database location used when none is configured
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".wrokout", "wrokout.db"), nil
}

// runMigrations creates/updates the database schema
func (s *Store) runMigrations() error {
	return s.db.AutoMigrate(
		&models.WorkoutTemplate{},
		&models.WorkoutLog{},
	)
}

// Close ends all live queries and closes the database connection
func (s *Store) Close() error {
	s.broker.closeAll()
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
