package model

import "time"

// Track records one completed exercise session. Tracks are immutable after
// creation; only the owning user may delete them.
type Track struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ExerciseID  uint      `json:"exerciseId" gorm:"not null;index"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	CompletedAt time.Time `json:"completed_at" gorm:"not null"`
	Duration    int       `json:"duration" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Exercise *Exercise `json:"exercise,omitempty" gorm:"foreignKey:ExerciseID"`
	User     *User     `json:"-" gorm:"foreignKey:UserID"`
}
