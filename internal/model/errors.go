package model

import "errors"

// Validation errors surfaced to the user as non-fatal notifications. State
// is left unchanged when any of these is returned.
var (
	ErrEmptyName          = errors.New("room name cannot be empty")
	ErrDuplicateAddon     = errors.New("add-on is already attached to this room")
	ErrLastRoom           = errors.New("a project must keep at least one room")
	ErrRoomNotFound       = errors.New("room not found")
	ErrMissingProjectName = errors.New("project name is required")
)
