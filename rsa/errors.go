package rsa

import "errors"

var (
	// ErrMaxAttempts is returned when key generation cannot find a valid
	// prime pair within the configured number of attempts.
	ErrMaxAttempts = errors.New("rsa: key generation attempts exhausted")

	// ErrWidthOverflow is returned when a value needs more bits than the
	// token width it has to be rendered at.
	ErrWidthOverflow = errors.New("rsa: value does not fit the token width")
)
