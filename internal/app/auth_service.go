package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/user"
	"gradrecruit/internal/security"
)

type AuthService struct {
	users     user.Repository
	jwt       *security.JWTProvider
	accessTTL time.Duration
}

func NewAuthService(users user.Repository, jwt *security.JWTProvider, accessTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwt: jwt, accessTTL: accessTTL}
}

type TokenResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        user.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, fullName, email, username, password string, role user.Role) (*user.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "username is required"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	}
	if len(password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	normalized := user.Role(strings.ToLower(strings.TrimSpace(string(role))))
	if normalized != user.RoleStudent && normalized != user.RoleEmployer {
		fields["role"] = "role must be student or employer"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid registration", fields)
	}
	return s.users.Create(ctx, user.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		PasswordHash: hashPassword(password),
		Role:         normalized,
		FullName:     strings.TrimSpace(fullName),
	})
}

// Login accepts a username or an email.
func (s *AuthService) Login(ctx context.Context, login, password string) (*TokenResult, error) {
	account, err := s.users.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if account.PasswordHash != hashPassword(password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	token, expiresAt, err := s.jwt.Generate(account.ID, string(account.Role), s.accessTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &TokenResult{AccessToken: token, ExpiresAt: expiresAt, User: *account}, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
