package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration возвращается, когда длительность не является
	// положительным числом, кратным SlotStepMinutes
	ErrInvalidDuration = errors.New("domain: duration must be a positive multiple of 15 minutes")

	// ErrFieldTooLong возвращается при превышении лимита длины идентификатора
	ErrFieldTooLong = errors.New("domain: field exceeds maximum length")
)

// ValidateDuration checks that duration is a positive multiple of the slot
// grid step. Every duration-taking operation calls this before doing any work.
func ValidateDuration(duration int) error {
	if duration <= 0 || duration%SlotStepMinutes != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}
	return nil
}

// ValidateIdentifiers checks the length limits on the opaque client and
// service identifiers.
func ValidateIdentifiers(clientID, serviceName string) error {
	if len(clientID) > MaxClientIDLength {
		return fmt.Errorf("%w: client_id must be %d characters or less", ErrFieldTooLong, MaxClientIDLength)
	}
	if len(serviceName) > MaxServiceNameLength {
		return fmt.Errorf("%w: service_name must be %d characters or less", ErrFieldTooLong, MaxServiceNameLength)
	}
	return nil
}
