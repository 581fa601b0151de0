// Package parsererror defines the typed errors returned by the extraction
// pipeline. Only hard, call-level failures use these types; per-block
// problems surface as models.Issue values instead.
package parsererror

import "fmt"

// InputTooLargeError is returned when the pasted input exceeds the hard
// character cap. The whole extraction call fails.
type InputTooLargeError struct {
	Length int
	Limit  int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d characters exceeds the %d character limit", e.Length, e.Limit)
}

// EmptyInputError is returned when the input is empty or contains no
// usable email blocks after sanitization.
type EmptyInputError struct {
	Msg string
}

func (e *EmptyInputError) Error() string {
	if e.Msg == "" {
		return "input is empty"
	}
	return fmt.Sprintf("input is empty: %s", e.Msg)
}

// PatternConfigError indicates a misconfigured provider: an extractor was
// invoked for a provider that has no patterns registered for the field.
// This is a programming/configuration error, not a runtime extraction miss.
type PatternConfigError struct {
	Provider string
	Field    string
}

func (e *PatternConfigError) Error() string {
	return fmt.Sprintf("provider %q has no %s patterns configured", e.Provider, e.Field)
}

// InvalidTimezoneError is returned when the caller-supplied IANA timezone
// cannot be loaded.
type InvalidTimezoneError struct {
	Timezone string
	Err      error
}

func (e *InvalidTimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q: %v", e.Timezone, e.Err)
}

func (e *InvalidTimezoneError) Unwrap() error {
	return e.Err
}
