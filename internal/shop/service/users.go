package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loomandfold/loom/internal/shop/domain"
	"github.com/loomandfold/loom/internal/shop/store"
	"github.com/loomandfold/loom/pkg/slogx"
)

var ErrUserNotFound = errors.New("user not found")

// UserService reads user profiles for the authenticated surface.
type UserService struct {
	Store store.Store
}

// GetUserByID returns the user with the given id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch user",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}
	return user, nil
}
