package store

import (
	"testing"

	"patrika/internal/models"
)

func TestUserStoreCreate(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "store-test-create@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create("store-test-create", email, "testpass123", models.RoleUser)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Error("expected generated id")
	}
	if user.Email != email {
		t.Errorf("email: got %q, want %q", user.Email, email)
	}
	if user.Role != models.RoleUser {
		t.Errorf("role: got %q, want user", user.Role)
	}
	if user.PasswordHash == "" || user.PasswordHash == "testpass123" {
		t.Error("password must be stored hashed")
	}
}

func TestUserStoreFindByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "store-test-find@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	// Not found case.
	user, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail (not found): %v", err)
	}
	if user != nil {
		t.Error("expected nil for non-existent user")
	}

	created, err := s.Create("store-test-find", email, "pass", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err = s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID != created.ID {
		t.Errorf("id: got %d, want %d", user.ID, created.ID)
	}
	if !user.IsAdmin() {
		t.Error("expected admin role")
	}
}

func TestUserStoreExists(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "store-test-exists@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	if _, err := s.Create("store-test-exists", email, "pass", models.RoleUser); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cases := []struct {
		name     string
		username string
		email    string
		want     bool
	}{
		{"both match", "store-test-exists", email, true},
		{"username matches", "store-test-exists", "other@example.com", true},
		{"email matches", "other-name", email, true},
		{"neither matches", "other-name", "other@example.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Exists(tc.username, tc.email)
			if err != nil {
				t.Fatalf("Exists: %v", err)
			}
			if got != tc.want {
				t.Errorf("Exists(%q, %q): got %v, want %v", tc.username, tc.email, got, tc.want)
			}
		})
	}
}

func TestUserStoreCheckPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "store-test-password@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	user, err := s.Create("store-test-password", email, "correct horse", models.RoleUser)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !s.CheckPassword(user, "correct horse") {
		t.Error("expected correct password to verify")
	}
	if s.CheckPassword(user, "wrong horse") {
		t.Error("expected wrong password to fail")
	}
}

func TestUserStoreRejectsDuplicates(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "store-test-dup@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	if _, err := s.Create("store-test-dup", email, "pass", models.RoleUser); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The unique constraints reject a second row with the same email.
	if _, err := s.Create("store-test-dup-2", email, "pass", models.RoleUser); err == nil {
		t.Error("expected unique violation on duplicate email")
		cleanUsers(t, db, email)
	}
}
