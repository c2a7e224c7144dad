// File: internal/repository/user/interface.go
package user

import (
	"context"

	"github.com/mentorhub/go-mentorhub/internal/domain"
)

// UserRepository is the persistence boundary for account records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
