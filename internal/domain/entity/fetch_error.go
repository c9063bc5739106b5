package entity

import "fmt"

// FetchError is returned when the doctor list could not be retrieved.
// Either StatusCode is set (non-success response) or Err is (transport or decode failure).
type FetchError struct {
	StatusCode int
	StatusText string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Failed to fetch doctors: %d %s", e.StatusCode, e.StatusText)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "An error occurred"
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
