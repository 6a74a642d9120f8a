package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// User is the part of an account the dashboard needs to show who placed a bid
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// DisplayName joins first and last name, "" when both are empty
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
