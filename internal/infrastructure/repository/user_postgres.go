package repository

import (
	"context"
	"errors"
	"time"

	"royalestats/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserGorm is the persistence model. PlayerTag is nullable with a unique
// index: many rows may have no tag, but no two rows may share one.
type UserGorm struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"uniqueIndex;not null;size:50"`
	Email       string    `gorm:"uniqueIndex;not null;size:100"`
	Password    string    `gorm:"not null"`
	PlayerTag   *string   `gorm:"uniqueIndex;size:20"`
	TrophyCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserGorm) TableName() string {
	return "users"
}

func (ug *UserGorm) ToDomain() *domain.User {
	user := &domain.User{
		ID:          ug.ID,
		Username:    ug.Username,
		Email:       ug.Email,
		Password:    ug.Password,
		TrophyCount: ug.TrophyCount,
		CreatedAt:   ug.CreatedAt,
		UpdatedAt:   ug.UpdatedAt,
	}
	if ug.PlayerTag != nil {
		user.PlayerTag = *ug.PlayerTag
	}
	return user
}

func toGormUser(u *domain.User) *UserGorm {
	gormUser := &UserGorm{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Password:    u.Password,
		TrophyCount: u.TrophyCount,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.PlayerTag != "" {
		tag := u.PlayerTag
		gormUser.PlayerTag = &tag
	}
	return gormUser
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	gormUser := toGormUser(user)

	result := r.db.WithContext(ctx).Create(gormUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return result.Error
	}

	user.ID = gormUser.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var userModel UserGorm

	err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return userModel.ToDomain(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var userModel UserGorm

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return userModel.ToDomain(), nil
}

func (r *UserRepository) GetByPlayerTag(ctx context.Context, tag string) (*domain.User, error) {
	var userModel UserGorm

	err := r.db.WithContext(ctx).Where("player_tag = ?", tag).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return userModel.ToDomain(), nil
}

// UpdatePlayerTagAndTrophies writes the linked tag and the cached trophy
// count in one statement. The unique index on player_tag is the real guard
// against two users claiming the same tag: a losing concurrent writer gets
// a duplicate-key error here, surfaced as ErrTagTaken.
func (r *UserRepository) UpdatePlayerTagAndTrophies(ctx context.Context, id uuid.UUID, tag string, trophyCount int) (*domain.User, error) {
	result := r.db.WithContext(ctx).Model(&UserGorm{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"player_tag":   tag,
			"trophy_count": trophyCount,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTagTaken
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}
