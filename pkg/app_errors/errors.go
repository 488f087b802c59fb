package apperrors

import "errors"

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrShowNotFound   = errors.New("show not found")
	ErrDuplicateShow  = errors.New("show already booked for this artist, venue and start time")
	ErrInvalidInput   = errors.New("invalid input")
)

// IsNotFound reports whether err is one of the entity not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound) ||
		errors.Is(err, ErrArtistNotFound) ||
		errors.Is(err, ErrShowNotFound)
}
