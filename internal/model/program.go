package model

import "time"

// Program is a named grouping of exercises.
type Program struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:200;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Exercises []Exercise `json:"exercises,omitempty" gorm:"foreignKey:ProgramID"`
}
