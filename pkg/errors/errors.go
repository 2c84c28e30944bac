package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeNotification represents alert delivery errors
	ErrorTypeNotification ErrorType = "notification"
	// ErrorTypeState represents seen-state persistence errors
	ErrorTypeState ErrorType = "state"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// WatchError represents a classified error from one step of the run
type WatchError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *WatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *WatchError) Unwrap() error {
	return e.Err
}

// IsType reports whether err is a WatchError of the given type
func IsType(err error, errType ErrorType) bool {
	var werr *WatchError
	if stderrors.As(err, &werr) {
		return werr.Type == errType
	}
	return false
}

// New creates a new WatchError
func New(errType ErrorType, source, message string, err error) *WatchError {
	return &WatchError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(source, message string, err error) *WatchError {
	return New(ErrorTypeNetwork, source, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *WatchError {
	return New(ErrorTypeParsing, source, message, err)
}

// NewNotification creates a new notification error
func NewNotification(source, message string, err error) *WatchError {
	return New(ErrorTypeNotification, source, message, err)
}

// NewState creates a new seen-state error
func NewState(source, message string, err error) *WatchError {
	return New(ErrorTypeState, source, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *WatchError {
	return New(ErrorTypeConfiguration, "config", message, err)
}
