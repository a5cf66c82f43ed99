package users

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"quickcart/models"
	"quickcart/store"
	"quickcart/utils"
)

type registerInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterUser is the public signup endpoint. Unlike CreateUser the role is
// always "customer" and a password confirmation is required.
func RegisterUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in registerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		utils.SendError(w, http.StatusBadRequest, "Missing required fields",
			"Name, email, password, and confirm password are required")
		return
	}
	if in.Password != in.ConfirmPassword {
		utils.SendError(w, http.StatusBadRequest, "Password mismatch",
			"Password and confirm password do not match")
		return
	}
	if len(in.Password) < 6 {
		utils.SendError(w, http.StatusBadRequest, "Password too short",
			"Password must be at least 6 characters long")
		return
	}
	if store.Users.EmailExists(in.Email, true, 0) {
		utils.SendError(w, http.StatusBadRequest, "Email already exists",
			"A user with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}

	user := store.Users.Create(newUser(userInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(in.Email),
	}, string(hash)))

	utils.SendData(w, http.StatusCreated, user, "Registration successful! You can now log in.")
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser verifies credentials and stamps lastLogin. No session or token is
// issued; the matched user record is returned.
func LoginUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if in.Email == "" || in.Password == "" {
		utils.SendError(w, http.StatusBadRequest, "Missing credentials",
			"Email and password are required")
		return
	}

	user, found := store.Users.FindByEmail(in.Email)
	if !found {
		utils.SendError(w, http.StatusUnauthorized, "Invalid credentials",
			"Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		utils.SendError(w, http.StatusUnauthorized, "Invalid credentials",
			"Invalid email or password")
		return
	}
	if !user.IsActive {
		utils.SendError(w, http.StatusForbidden, "Account disabled",
			"Your account has been disabled")
		return
	}

	now := time.Now().UTC()
	updated, _ := store.Users.Update(user.ID, func(u *models.User) {
		u.LastLogin = &now
	})

	utils.SendData(w, http.StatusOK, updated, "Login successful")
}
