package strategy

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/courtsim/internal/game/core"
)

// Strategy is a directive a coach can hand to the team
type Strategy int

const (
	None Strategy = iota
	Offensive
	Defensive
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case Offensive:
		return "Offensive"
	case Defensive:
		return "Defensive"
	default:
		return "None"
	}
}

// Execute returns the announcement made when the strategy is applied.
// None has no announcement.
func (s Strategy) Execute() string {
	switch s {
	case Offensive:
		return "Offensive strategy: attack the basket"
	case Defensive:
		return "Defensive strategy: protect the paint"
	default:
		return ""
	}
}

// Parse looks a strategy up by name, ignoring case. An empty name is None.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "offensive":
		return Offensive, nil
	case "defensive":
		return Defensive, nil
	default:
		return None, fmt.Errorf("%q: %w", name, core.ErrUnknownStrategy)
	}
}
