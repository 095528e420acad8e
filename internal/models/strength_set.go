package models

// StrengthSet carries a 1-based position unique within its session. The
// unique index is the storage-level backstop for concurrent writers; the
// service re-checks it before every write.
type StrengthSet struct {
	ID         uint `gorm:"primaryKey"`
	SessionID  uint `gorm:"not null;uniqueIndex:uidx_session_position"`
	ExerciseID uint `gorm:"not null;index"`
	Position   int  `gorm:"not null;uniqueIndex:uidx_session_position"`
	Reps       *int
	LoadKg     *float64
}
