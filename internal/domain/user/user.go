package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}
