package services

import "errors"

const MinPasswordLength = 6

var ErrPasswordTooShort = errors.New("password too short")

func ValidatePasswordLength(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
