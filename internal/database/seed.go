package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a default admin account if no admin exists yet, so login
// works on a fresh database.
func Seed(db *sql.DB) error {
	// Check for an existing admin.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admins WHERE role = 'admin'").Scan(&count); err != nil {
		return fmt.Errorf("seed check admins: %w", err)
	}

	if count > 0 {
		slog.Info("admin account already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admins (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
	`, "admin", "admin@gmail.com", string(hash), "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@gmail.com",
		"password", "admin123",
	)

	return nil
}
