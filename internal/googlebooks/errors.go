package googlebooks

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVolumeID   = errors.New("volume id must be a 12 char string")
	ErrVolumeNotFound    = errors.New("volume with the given id is not found")
	ErrInvalidVolumeData = errors.New("invalid volume data")
	ErrInvalidOption     = errors.New("invalid option")
	ErrEmptyQuery        = errors.New("empty search query")
)

// APIError - не-2xx ответ Google Books API (кроме 404 по id, см. ErrVolumeNotFound).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("google books api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("google books api: status %d: %s", e.StatusCode, e.Message)
}
