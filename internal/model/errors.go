package model

import "errors"

// Common errors used across the application
var (
	// Transport errors
	ErrNotFound = errors.New("resource not found")

	// Realm errors
	ErrRealmNotFound  = errors.New("realm not found")
	ErrInvalidAddress = errors.New("realm join info has no valid address")

	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSettingMissing  = errors.New("profile setting not present")

	// Identity errors
	ErrIdentityNotFound = errors.New("identity not found")
)
