package entity

import "time"

// DescriptionAlias is a learned mapping from a normalized statement
// description key to a client. At most one client per key; the automatic
// settlement path repoints an existing alias (last write wins), the manual
// link path never overwrites one.
type DescriptionAlias struct {
	ID             uint
	DescriptionKey string
	ClientID       uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
