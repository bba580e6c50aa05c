package model

// Sequence is a named monotonic id counter. Ids are allocated from here
// instead of the driver's autoincrement so a hard delete of the newest row
// never frees its id for the next insert.
type Sequence struct {
	Name   string `gorm:"primaryKey;size:32"`
	NextID int64  `gorm:"not null"`
}
