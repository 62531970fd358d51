package service

import "errors"

// Sentinel errors returned by the services. The HTTP layer maps each to
// a status code and client-facing message.
var (
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrUserNotFound            = errors.New("user not found")
	ErrResetInvalid            = errors.New("invalid or expired reset token")

	ErrTeamAlreadyRegistered = errors.New("team already registered")
	ErrDuplicateMemberEmail  = errors.New("duplicate member email")

	ErrWorkshopAlreadyRegistered = errors.New("workshop already registered")
	ErrWorkshopEmailTaken        = errors.New("workshop email already registered")
)
