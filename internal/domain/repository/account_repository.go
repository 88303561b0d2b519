package repository

import (
	"context"

	"voltmarket/internal/domain/entity"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	FindByField(ctx context.Context, field string, value interface{}, limit, offset int) ([]*entity.Account, int64, error)
	FindBusinessesByStatus(ctx context.Context, status entity.ApprovalStatus, limit, offset int) ([]*entity.Account, int64, error)
}
