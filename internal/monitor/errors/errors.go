package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrSiteNotFound          = errors.New("site not found")
	ErrSiteNameAlreadyExists = errors.New("site name already exists")

	// ErrEngineUnavailable reports that the shared probing engine itself is
	// unusable, as opposed to an individual probe failing. The scheduler
	// aborts the remaining probes of the tick and restarts the engine.
	ErrEngineUnavailable = errors.New("probing engine unavailable")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
