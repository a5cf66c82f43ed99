package users

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"quickcart/models"
	"quickcart/store"
	"quickcart/utils"
)

// GetUsers lists users with role/isActive/search filters. Password hashes
// are never serialized.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, errMsg := utils.ParsePagination(r, 10)
	if errMsg != "" {
		utils.SendError(w, http.StatusBadRequest, "Invalid pagination", errMsg)
		return
	}

	q := r.URL.Query()
	filtered := store.Users.All()

	if role := q.Get("role"); role != "" {
		filtered = filter(filtered, func(u models.User) bool { return u.Role == role })
	}
	if raw := q.Get("isActive"); raw != "" {
		want := raw == "true"
		filtered = filter(filtered, func(u models.User) bool { return u.IsActive == want })
	}
	if search := q.Get("search"); search != "" {
		filtered = filter(filtered, func(u models.User) bool {
			return utils.ContainsIgnoreCase(u.Name, search) || utils.ContainsIgnoreCase(u.Email, search)
		})
	}

	start, end, meta := utils.Paginate(len(filtered), page, limit)
	utils.SendPage(w, filtered[start:end], meta, "Users retrieved successfully")
}

// GetUser returns a single user by id.
func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	user, found := store.Users.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("User with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, user, "User retrieved successfully")
}

type userInput struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     string          `json:"role"`
	Phone    string          `json:"phone"`
	Address  *models.Address `json:"address"`
	Avatar   string          `json:"avatar"`
}

// CreateUser adds a user with an admin-supplied role.
func CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in userInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if details := validateUser(in, true); len(details) > 0 {
		utils.SendValidationError(w, details)
		return
	}
	if store.Users.EmailExists(in.Email, false, 0) {
		utils.SendError(w, http.StatusBadRequest, "Email already exists",
			"A user with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	user := store.Users.Create(newUser(in, string(hash)))
	utils.SendData(w, http.StatusCreated, user, "User created successfully")
}

type userUpdate struct {
	Name            *string             `json:"name"`
	Email           *string             `json:"email"`
	Password        *string             `json:"password"`
	Role            *string             `json:"role"`
	Phone           *string             `json:"phone"`
	Avatar          *string             `json:"avatar"`
	Address         *models.Address     `json:"address"`
	Preferences     *models.Preferences `json:"preferences"`
	IsActive        *bool               `json:"isActive"`
	IsEmailVerified *bool               `json:"isEmailVerified"`
}

// UpdateUser merges the supplied fields. An email change is checked for
// duplicates; a supplied password is re-hashed.
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	current, found := store.Users.Get(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("User with ID %d does not exist", id))
		return
	}

	var in userUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid JSON payload", err.Error())
		return
	}

	if in.Email != nil && *in.Email != current.Email && store.Users.EmailExists(*in.Email, false, id) {
		utils.SendError(w, http.StatusBadRequest, "Email already exists",
			"A user with this email already exists")
		return
	}

	var newHash string
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.SendError(w, http.StatusInternalServerError, "Failed to update user", err.Error())
			return
		}
		newHash = string(hash)
	}

	updated, _ := store.Users.Update(id, func(u *models.User) {
		applyUserUpdate(u, in)
		if newHash != "" {
			u.Password = newHash
		}
	})

	utils.SendData(w, http.StatusOK, updated, "User updated successfully")
}

// DeleteUser removes the user and returns it.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseID(ps, "id")
	if !ok {
		utils.SendError(w, http.StatusBadRequest, "Invalid ID", "ID must be a valid positive number")
		return
	}

	deleted, found := store.Users.Delete(id)
	if !found {
		utils.SendError(w, http.StatusNotFound, "User not found",
			fmt.Sprintf("User with ID %d does not exist", id))
		return
	}

	utils.SendData(w, http.StatusOK, deleted, "User deleted successfully")
}

// GetUsersByRole lists all users with the given role, unpaginated.
func GetUsersByRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	role := ps.ByName("role")
	matched := filter(store.Users.All(), func(u models.User) bool { return u.Role == role })
	utils.SendCount(w, matched, len(matched),
		fmt.Sprintf("Users with role '%s' retrieved successfully", role))
}

func newUser(in userInput, passwordHash string) models.User {
	role := in.Role
	if role == "" {
		role = "customer"
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = "/images/default-avatar.jpg"
	}
	address := models.Address{}
	if in.Address != nil {
		address = *in.Address
	}
	return models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: passwordHash,
		Role:     role,
		Avatar:   avatar,
		Phone:    in.Phone,
		Address:  address,
		IsActive: true,
		Preferences: models.Preferences{
			Newsletter:    true,
			Notifications: true,
			Language:      "en",
		},
		Cart:      []models.CartItem{},
		CreatedAt: time.Now().UTC(),
	}
}

func applyUserUpdate(u *models.User, in userUpdate) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.Preferences != nil {
		u.Preferences = *in.Preferences
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.IsEmailVerified != nil {
		u.IsEmailVerified = *in.IsEmailVerified
	}
}

func filter(us []models.User, keep func(models.User) bool) []models.User {
	out := us[:0:0]
	for _, u := range us {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
