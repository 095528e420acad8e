package models

type Exercise struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	MuscleGroup *string `gorm:"size:60"`
	Equipment   *string `gorm:"size:60"`
}
