package game

const (
	// MaxTeammates is the size of a player's teammate cache
	MaxTeammates = 4
	// MaxOpponents is the size of a player's opponent cache
	MaxOpponents = 5
)
