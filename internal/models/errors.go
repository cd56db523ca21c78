package models

import "fmt"

// ErrorCode classifies scrape failures. Item-level parse failures are not
// represented here; they are skipped silently during extraction.
type ErrorCode string

const (
	ErrCodeNavigationTimeout   ErrorCode = "navigation_timeout"
	ErrCodeSelectorExhausted   ErrorCode = "selector_exhausted"
	ErrCodeResourceAcquisition ErrorCode = "resource_acquisition"
	ErrCodeGlobalTimeout       ErrorCode = "global_timeout"
)

// ScrapeError is the typed failure carried in ScrapeOutcome. Adapters never
// panic or return raw errors across their boundary; everything becomes one
// of these values and the caller degrades to an empty product list.
type ScrapeError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError wraps err with a code and a human-readable message.
func NewScrapeError(code ErrorCode, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}

// IsCode reports whether err is a *ScrapeError with the given code.
func IsCode(err error, code ErrorCode) bool {
	se, ok := err.(*ScrapeError)
	return ok && se.Code == code
}
