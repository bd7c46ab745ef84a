package models

// Bowl represents a single contest between two teams. A decided bowl carries
// its winner; an undecided one is enumerated over both contestants.
type Bowl struct {
	Name    string `json:"name" validate:"required"`
	TeamA   string `json:"team_a" validate:"required"`
	TeamB   string `json:"team_b" validate:"required"`
	Decided bool   `json:"decided"`
	Winner  string `json:"winner"`
	Row     int    `json:"row"` // source row reference, 0 when unknown
}

// Contestants returns both teams in stable order.
func (b *Bowl) Contestants() [2]string {
	return [2]string{b.TeamA, b.TeamB}
}

// HasContestant reports whether team plays in this bowl.
func (b *Bowl) HasContestant(team string) bool {
	return team == b.TeamA || team == b.TeamB
}

// IsUndecided reports whether the bowl still needs a winner assigned.
func (b *Bowl) IsUndecided() bool {
	return !b.Decided
}
