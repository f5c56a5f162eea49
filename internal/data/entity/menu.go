package entity

// MenuItem is flat reference data; no lifecycle beyond add/remove.
type MenuItem struct {
	Name     string `db:"name"`
	Category string `db:"category"`
}
