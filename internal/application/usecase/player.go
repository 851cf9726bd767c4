package usecase

import (
	"context"
	"errors"
	"strings"

	"royalestats/internal/domain"

	"github.com/google/uuid"
)

// UserRepository is the slice of the identity store the usecases need.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPlayerTag(ctx context.Context, tag string) (*domain.User, error)
	UpdatePlayerTagAndTrophies(ctx context.Context, id uuid.UUID, tag string, trophyCount int) (*domain.User, error)
}

// StatsProvider is the upstream Clash Royale client.
type StatsProvider interface {
	GetPlayer(ctx context.Context, tag string) (*domain.PlayerStats, error)
}

type PlayerUseCase struct {
	userRepo UserRepository
	stats    StatsProvider
}

func NewPlayerUseCase(ur UserRepository, sp StatsProvider) *PlayerUseCase {
	return &PlayerUseCase{
		userRepo: ur,
		stats:    sp,
	}
}

// GetUserData returns the stored record for the authenticated user. Pure
// store read, no upstream call.
func (uc *PlayerUseCase) GetUserData(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// LinkPlayerTag claims a player tag for the user and caches its trophy
// count. The uniqueness pre-check runs before the upstream call so a
// duplicate tag never burns quota on the rate-limited API; the unique index
// in the store settles concurrent claims of the same tag.
func (uc *PlayerUseCase) LinkPlayerTag(ctx context.Context, userID uuid.UUID, rawTag string) (*domain.User, error) {
	tag := normalizeTag(rawTag)
	if tag == "" {
		return nil, domain.ErrInvalidTag
	}

	holder, err := uc.userRepo.GetByPlayerTag(ctx, tag)
	if err == nil {
		if holder.ID != userID {
			return nil, domain.ErrTagTaken
		}
		// Re-linking their own tag just refreshes the trophy count.
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	stats, err := uc.stats.GetPlayer(ctx, tag)
	if err != nil {
		// At this call site a 404 means the user typed a tag that does
		// not exist.
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, domain.ErrInvalidTag
		}
		return nil, err
	}

	user, err := uc.userRepo.UpdatePlayerTagAndTrophies(ctx, userID, tag, stats.Trophies)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetPlayerStats fetches live stats for a tag, passing the upstream payload
// through untouched. Every call re-hits upstream; nothing is cached.
func (uc *PlayerUseCase) GetPlayerStats(ctx context.Context, rawTag string) (*domain.PlayerStats, error) {
	tag := normalizeTag(rawTag)
	if tag == "" {
		return nil, domain.ErrInvalidTag
	}
	return uc.stats.GetPlayer(ctx, tag)
}

func normalizeTag(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "#")
}
