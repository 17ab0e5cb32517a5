package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de usuário. Vendedores (agentes) são os donos de visitas e vendas;
// administradores e supervisores têm acesso de leitura sobre todos os agentes.
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleAgent      = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAgent indica se o usuário é um vendedor (não administrativo)
func (u *User) IsAgent() bool {
	return u.RoleID == RoleAgent
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}
