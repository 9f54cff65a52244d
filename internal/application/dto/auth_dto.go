package dto

import "time"

// LoginRequest entrada del formulario de acceso. Login acepta username o email.
type LoginRequest struct {
	Login      string `json:"login" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Warehouses []string  `json:"warehouses"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserListResponse listado de usuarios (vista de administración).
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
