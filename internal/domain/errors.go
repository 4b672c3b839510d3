package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound     = "not found"
	ErrMsgInvalidInput = "invalid input"

	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgInventoryNotFound = "inventory not found"
	ErrMsgWeaponNotFound    = "weapon not found"
)

// Error kinds. Every domain error wraps exactly one of these.
var (
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// Specific domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound    = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgPlayerNotFound)
	ErrInventoryNotFound = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgInventoryNotFound)
	ErrWeaponNotFound    = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgWeaponNotFound)
)
