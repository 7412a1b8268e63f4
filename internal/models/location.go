package models

// LocationType distinguishes staffed branches from cash machines
type LocationType string

const (
	LocationBranch LocationType = "branch"
	LocationATM    LocationType = "atm"
)

// Location is a bank branch or ATM in the public directory
type Location struct {
	Name      string       `db:"name"`
	Type      LocationType `db:"type"`
	Address   string       `db:"address"`
	ID        int64        `db:"id"`
	Latitude  float64      `db:"latitude"`
	Longitude float64      `db:"longitude"`
}

// LocationFilter narrows a directory listing. A nil Type lists everything.
type LocationFilter struct {
	Type *LocationType
}
