package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// RoleClaim is one (user, role) pair. Presence of the row is the claim;
// revoking a role deletes the row.
type RoleClaim struct {
	Email string `gorm:"primaryKey"`
	Role  string `gorm:"primaryKey"`

	CreatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindRoles(ctx context.Context, email string) ([]RoleClaim, error) {
	var claims []RoleClaim

	result := d.db.WithContext(ctx).Where("email = ?", email).Find(&claims)
	if result.Error != nil {
		return nil, result.Error
	}

	return claims, nil
}

// InsertRole grants a role. Re-granting an already held role is a no-op.
func (d *UserDAO) InsertRole(ctx context.Context, claim RoleClaim) error {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&claim)

	return result.Error
}

// DeleteRole revokes a role. Revoking an absent role is a no-op.
func (d *UserDAO) DeleteRole(ctx context.Context, email, role string) error {
	result := d.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, role).
		Delete(&RoleClaim{})

	return result.Error
}
