package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/cristianortiz/auctionDashboard/internal/shared/logger"
	"github.com/cristianortiz/auctionDashboard/internal/user/domain"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// Directory resolves bidder display names through the user repository,
// keeping recently seen names in an LRU cache.
type Directory struct {
	users domain.UserRepository
	cache *lru.Cache
}

// NewDirectory creates a Directory caching up to size names
func NewDirectory(users domain.UserRepository, size int) (*Directory, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("user directory: %w", err)
	}
	return &Directory{users: users, cache: cache}, nil
}

// DisplayName returns the user's display name, "" for an unknown user.
func (d *Directory) DisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	if v, ok := d.cache.Get(userID); ok {
		return v.(string), nil
	}

	user, err := d.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Debug("Directory: user not found", zap.String("userID", userID.String()))
			return "", nil
		}
		return "", fmt.Errorf("user directory: failed to get user %s: %w", userID, err)
	}

	name := user.DisplayName()
	d.cache.Add(userID, name)
	return name, nil
}
