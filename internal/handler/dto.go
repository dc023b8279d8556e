package handler

import (
	"github.com/msomdec/user-admin/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is never exposed.
type UserDTO struct {
	ID      int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Age     int    `json:"age"`
	IsAdmin bool   `json:"isAdmin"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Age:     u.Age,
		IsAdmin: u.IsAdmin,
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// MeDTO is the JSON representation of the authenticated principal.
type MeDTO struct {
	ID      int64  `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
