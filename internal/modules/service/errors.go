package service

import (
	"errors"

	"gorm.io/gorm"
)

// Service layer errors, mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrAdminExists        = errors.New("an admin account already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUnknownRole        = errors.New("unknown role")

	ErrUnknownReportType = errors.New("unknown report type")
	ErrUnknownLookup     = errors.New("unknown lookup name")
	ErrUnknownFormat     = errors.New("unknown export format")
)

// mapStoreErr converts gorm sentinel errors into service errors so handlers
// never import gorm.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
