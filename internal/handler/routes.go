package handler

import (
	"net/http"

	"github.com/msomdec/user-admin/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, users *service.UserService) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(users)

	authed := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, RequireAdmin(auth, h))
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.Handle("GET /me", authed(authHandler.HandleMe))

	mux.Handle("GET /users", admin(userHandler.HandleList))
	mux.Handle("POST /users", admin(userHandler.HandleCreate))
	mux.Handle("GET /users/{id}", admin(userHandler.HandleGet))
	mux.Handle("PUT /users/{id}", admin(userHandler.HandleUpdate))
	mux.Handle("DELETE /users/{id}", admin(userHandler.HandleDelete))
	mux.Handle("PUT /users/{id}/admin", admin(userHandler.HandleSetAdmin))
}
