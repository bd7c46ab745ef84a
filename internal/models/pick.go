package models

// Pick is one bettor's choice of winning team for one bowl, with wagered
// points. Points are expected to be unique per bettor across 1..10, but that
// invariant is enforced by the upstream validator, not here.
type Pick struct {
	Bettor string `json:"bettor" validate:"required"`
	Bowl   string `json:"bowl" validate:"required"`
	Team   string `json:"team" validate:"required"`
	Points int    `json:"points"`
	Row    int    `json:"row"` // source row reference, 0 when unknown
}
