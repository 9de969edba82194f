package storage

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// ErrQuotaExceeded marks a write the medium rejected for lack of space.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// QuotaError represents a disk full condition with additional context.
type QuotaError struct {
	Key     string
	wrapped error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("no space to write %s: %v", e.Key, e.wrapped)
}

func (e *QuotaError) Unwrap() []error {
	return []error{ErrQuotaExceeded, e.wrapped}
}

// IsQuotaError checks if an error indicates a disk full condition.
// It checks for ENOSPC and common disk full error patterns.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrQuotaExceeded) {
		return true
	}

	// Check for ENOSPC (no space left on device)
	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ENOSPC {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"no space left on device",
		"disk full",
		"database or disk is full",
		"quota exceeded",
		"enospc",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// wrapQuotaError tags err as a QuotaError when it indicates disk full.
func wrapQuotaError(err error, key string) error {
	if err == nil || !IsQuotaError(err) {
		return err
	}
	return &QuotaError{Key: key, wrapped: err}
}
