package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"patrika/internal/auth"
	"patrika/internal/httpjson"
	"patrika/internal/models"
	"patrika/internal/store"
)

// Admin handles login and user management.
type Admin struct {
	users  *store.UserStore
	tokens *auth.Manager
}

// NewAdmin creates the admin handler group.
func NewAdmin(users *store.UserStore, tokens *auth.Manager) *Admin {
	return &Admin{users: users, tokens: tokens}
}

// loginBody is the JSON request shape for POST /api/admin/login.
type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userBody is the JSON request shape for POST /api/admin/users.
type userBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userView is the identity returned by login and user creation. The
// password hash never leaves the server.
type userView struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// Login checks credentials and issues a bearer token. The failure
// response is identical for an unknown email and a wrong password, so
// the endpoint cannot be used to enumerate accounts.
func (a *Admin) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if body.Email == "" || body.Password == "" {
		httpjson.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := a.users.FindByEmail(body.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		httpjson.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil || !a.users.CheckPassword(user, body.Password) {
		httpjson.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		slog.Error("token issue failed", "error", err)
		httpjson.Message(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    userView{ID: user.ID, Username: user.Username, Email: user.Email, Role: user.Role},
	})
}

// CreateUser registers a new account. Admin-only: the route is mounted
// behind RequireAuth and RequireAdmin. A missing password is replaced by
// a random one, matching invite-style flows where the password is reset
// out of band.
func (a *Admin) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body userBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.TrimSpace(body.Email)

	if body.Username == "" || body.Email == "" {
		httpjson.Message(w, http.StatusBadRequest, "Username and email are required")
		return
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	role := models.RoleUser
	if body.Role != "" {
		role = models.Role(body.Role)
		if !models.ValidRole(role) {
			httpjson.Message(w, http.StatusBadRequest, "Role must be user or admin")
			return
		}
	}

	exists, err := a.users.Exists(body.Username, body.Email)
	if err != nil {
		slog.Error("user exists check failed", "error", err)
		httpjson.Message(w, http.StatusInternalServerError, "Server error")
		return
	}
	if exists {
		httpjson.Message(w, http.StatusBadRequest, "User with this username or email already exists")
		return
	}

	password := body.Password
	if password == "" {
		password = randomPassword()
	}

	user, err := a.users.Create(body.Username, body.Email, password, role)
	if err != nil {
		slog.Error("user create failed", "error", err)
		httpjson.Message(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpjson.Write(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    userView{ID: user.ID, Username: user.Username, Email: user.Email, Role: user.Role},
	})
}

// randomPassword generates a random 16-byte hex password for accounts
// created without one.
func randomPassword() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
