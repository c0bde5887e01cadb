package model

import "time"

// Difficulty grades an exercise.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Exercise is a single catalog entry, optionally attached to a program.
type Exercise struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"uniqueIndex;size:200;not null"`
	Difficulty Difficulty `json:"difficulty" gorm:"size:20;not null"`
	ProgramID  *uint      `json:"programId"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	Program *Program `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Tracks  []Track  `json:"-" gorm:"foreignKey:ExerciseID"`
}
