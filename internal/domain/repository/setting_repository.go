package repository

import (
	"context"

	"voltmarket/internal/domain/entity"
)

type SettingRepository interface {
	GetAll(ctx context.Context, filter entity.SettingFilter) ([]entity.Setting, error)
	Get(ctx context.Context, key entity.SettingKey) (*entity.Setting, error)
	Set(ctx context.Context, setting *entity.Setting) error
}
