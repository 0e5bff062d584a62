package core

import "errors"

var (
	ErrUnknownNode     = errors.New("unknown team node")
	ErrNotGroup        = errors.New("team node is not a group")
	ErrCycle           = errors.New("team node would contain itself")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidTeamSize = errors.New("team size must be positive")
)
