package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound      = errors.New("server not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrServerOrderConflict = errors.New("server order already taken in project")
)

// IsNotFound reports whether err refers to a missing server or project.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrServerNotFound) || errors.Is(err, ErrProjectNotFound)
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field string, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}

// QueueError means a connection test job could not be enqueued.
type QueueError struct {
	ServerID string
	Err      error
}

func (e *QueueError) Error() string {
	return fmt.Sprintf("failed to enqueue connection test for server %s: %v", e.ServerID, e.Err)
}

func (e *QueueError) Unwrap() error {
	return e.Err
}

func NewQueueError(serverID string, err error) error {
	return &QueueError{
		ServerID: serverID,
		Err:      err,
	}
}

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
