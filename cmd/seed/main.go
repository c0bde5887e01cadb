// Command seed loads the starter catalog: three programs, six exercises and
// an admin account. Safe to run repeatedly.
package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fittrack/internal/config"
	"fittrack/internal/db"
	"fittrack/internal/model"
)

const seedBcryptCost = 12

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Program{},
		&model.Exercise{},
		&model.Track{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := seedPrograms(gormDB); err != nil {
		log.Fatalf("seed programs: %v", err)
	}
	if err := seedExercises(gormDB); err != nil {
		log.Fatalf("seed exercises: %v", err)
	}
	if err := seedAdmin(gormDB); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	log.Println("seed done")
}

func seedPrograms(gormDB *gorm.DB) error {
	for _, name := range []string{"Program 1", "Program 2", "Program 3"} {
		program := model.Program{Name: name}
		if err := gormDB.Where("name = ?", name).FirstOrCreate(&program).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedExercises(gormDB *gorm.DB) error {
	entries := []struct {
		name       string
		difficulty model.Difficulty
		program    string
	}{
		{"Exercise 1", model.DifficultyEasy, "Program 1"},
		{"Exercise 2", model.DifficultyEasy, "Program 2"},
		{"Exercise 3", model.DifficultyMedium, "Program 1"},
		{"Exercise 4", model.DifficultyMedium, "Program 2"},
		{"Exercise 5", model.DifficultyHard, "Program 1"},
		{"Exercise 6", model.DifficultyHard, "Program 2"},
	}

	for _, entry := range entries {
		var program model.Program
		if err := gormDB.Where("name = ?", entry.program).First(&program).Error; err != nil {
			return err
		}

		exercise := model.Exercise{
			Name:       entry.name,
			Difficulty: entry.difficulty,
			ProgramID:  &program.ID,
		}
		if err := gormDB.Where("name = ?", entry.name).FirstOrCreate(&exercise).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(gormDB *gorm.DB) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@fittrack.local")
	password := envOr("SEED_ADMIN_PASSWORD", "Admin1234!")

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), seedBcryptCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	return gormDB.Where("email = ?", email).FirstOrCreate(&admin).Error
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
