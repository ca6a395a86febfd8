package dice

import "time"

// Roll is one resolved roll kept in the history
type Roll struct {
	ID       string    `json:"id"`
	Notation string    `json:"notation"`
	Count    int       `json:"count"`
	Sides    int       `json:"sides"`
	Modifier int       `json:"modifier"`
	Dice     []int     `json:"dice"`
	Total    int       `json:"total"`
	RolledAt time.Time `json:"rolledAt"`
}

// RollDiceInput defines the request for rolling dice. Notation wins over
// the discrete fields when both are set.
type RollDiceInput struct {
	Notation string
	Count    int
	Sides    int
	Modifier int
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll *Roll
}

// GetHistoryInput defines the request for reading the roll history
type GetHistoryInput struct{}

// GetHistoryOutput lists rolls newest first
type GetHistoryOutput struct {
	Rolls []*Roll
}

// ClearHistoryInput defines the request for clearing the roll history
type ClearHistoryInput struct{}

// ClearHistoryOutput reports how many rolls were dropped
type ClearHistoryOutput struct {
	RollsDeleted int
}
