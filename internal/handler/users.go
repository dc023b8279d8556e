package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/user-admin/internal/domain"
	"github.com/msomdec/user-admin/internal/service"
)

// UserHandler serves the admin-only user management endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Password string `json:"password"`
	IsAdmin  *bool  `json:"isAdmin"`
}

// HandleList returns all users, filtered by ?search= when given.
// GET /users?search=
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleGet returns a single user.
// GET /users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeError(w, "get user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleCreate adds a user.
// POST /users
// Request:  {"name":"...","email":"...","age":30,"password":"...","isAdmin":false}
// Response: 201 {"message":"...","userId":4}
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	in := service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		Password: req.Password,
	}
	if req.IsAdmin != nil {
		in.IsAdmin = *req.IsAdmin
	}

	id, err := h.users.Create(r.Context(), in)
	if err != nil {
		writeError(w, "create user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created.",
		"userId":  id,
	})
}

// HandleUpdate replaces a user's profile. Omitting isAdmin keeps the current flag.
// PUT /users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req userRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.users.Update(r.Context(), id, domain.UserUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		writeError(w, "update user", err)
		return
	}
	writeMessage(w, http.StatusOK, "User updated.")
}

// HandleDelete removes a user.
// DELETE /users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeError(w, "delete user", err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted.")
}

// HandleSetAdmin promotes a user to admin.
// PUT /users/{id}/admin
func (h *UserHandler) HandleSetAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.users.SetAdmin(r.Context(), id); err != nil {
		writeError(w, "set admin", err)
		return
	}
	writeMessage(w, http.StatusOK, "User promoted to admin.")
}

// pathID parses the {id} path value. A value that is not a positive integer
// cannot name a user, so it is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return 0, false
	}
	return id, true
}
