package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrMissingSourceDirectory = errors.New("source directory does not exist")
	ErrConfiguration          = errors.New("invalid configuration")
	ErrPersistence            = errors.New("persistence failure")
	ErrNoSession              = errors.New("no session recorded")
)

// ConfigurationError represents a malformed or missing rule set field
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// MoveError represents a failure to move one file
type MoveError struct {
	Source      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// PersistenceError represents a failed ledger operation
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
