// Package auth gates commissioner actions behind a real credential check at
// the API boundary. The old client-side password flag was a UI convenience,
// not a security boundary; tokens issued here are.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RoleCommissioner is the only privileged role; everyone else is public.
const RoleCommissioner = "commissioner"

// Service issues and verifies commissioner tokens.
type Service struct {
	secret       []byte
	passwordHash string
	tokenTTL     time.Duration
}

// New creates a Service. passwordHash is a bcrypt hash of the commissioner
// password.
func New(secret string, passwordHash string) *Service {
	return &Service{
		secret:       []byte(secret),
		passwordHash: passwordHash,
		tokenTTL:     12 * time.Hour,
	}
}

// HashPassword bcrypt-hashes a plaintext password, for provisioning.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Login checks the commissioner password and returns a signed token.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}
	claims := jwt.MapClaims{
		"role": RoleCommissioner,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a bearer token and confirms the commissioner role.
func (s *Service) Verify(tokenStr string) error {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid token claims")
	}
	if role, _ := claims["role"].(string); role != RoleCommissioner {
		return errors.New("insufficient role")
	}
	return nil
}
