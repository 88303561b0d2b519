package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/repository"
	"voltmarket/pkg/cache"
	"voltmarket/pkg/errors"
)

// SettingsUseCase is a read-through cache over the settings collection with
// optimistic writes. The optimistic value is a responsiveness measure only:
// a successful remote write invalidates the cache so the next read refetches
// from the source of truth, and a failed write restores the pre-write
// snapshot verbatim.
//
// Racing updates to the same key are not serialized locally; the remote
// write runs outside the cache lock and the post-write refetch settles
// whatever order the store resolved.
type SettingsUseCase struct {
	repo repository.SettingRepository
	ttl  time.Duration

	mu        sync.Mutex
	cached    map[entity.SettingKey]entity.Setting
	fetchedAt time.Time
}

func NewSettingsUseCase(repo repository.SettingRepository, ttl time.Duration) *SettingsUseCase {
	return &SettingsUseCase{
		repo: repo,
		ttl:  ttl,
	}
}

func (uc *SettingsUseCase) GetAll(ctx context.Context, filter entity.SettingFilter) ([]entity.Setting, error) {
	if err := uc.ensureFresh(ctx); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var settings []entity.Setting
	for _, setting := range uc.cached {
		if filter.Matches(setting) {
			settings = append(settings, setting)
		}
	}
	return settings, nil
}

func (uc *SettingsUseCase) Update(ctx context.Context, key entity.SettingKey, value interface{}, updatedBy string) (*entity.Setting, error) {
	return uc.write(ctx, key, updatedBy, func(s *entity.Setting) {
		s.Value = value
	})
}

// Delete is a soft delete; setting documents are never physically removed.
func (uc *SettingsUseCase) Delete(ctx context.Context, key entity.SettingKey, updatedBy string) (*entity.Setting, error) {
	return uc.write(ctx, key, updatedBy, func(s *entity.Setting) {
		s.IsDeleted = true
		s.IsActive = false
	})
}

type settingSnapshot struct {
	value   entity.Setting
	existed bool
}

func (uc *SettingsUseCase) write(ctx context.Context, key entity.SettingKey, updatedBy string, mutate func(*entity.Setting)) (*entity.Setting, error) {
	if !key.IsKnown() {
		return nil, errors.BadRequest(fmt.Sprintf("%q is not a recognized setting", key), nil)
	}

	if err := uc.ensureFresh(ctx); err != nil {
		return nil, err
	}

	// Build the optimistic record: the existing entry updated in place, or a
	// synthesized one if the key has never been written.
	uc.mu.Lock()
	next, existed := uc.cached[key]
	if !existed {
		next = entity.Setting{
			Key:      key,
			IsActive: true,
		}
	}
	uc.mu.Unlock()

	mutate(&next)
	next.UpdatedAt = time.Now()
	next.UpdatedBy = updatedBy

	err := cache.Mutate(
		func() settingSnapshot {
			uc.mu.Lock()
			defer uc.mu.Unlock()
			prev, ok := uc.cached[key]
			return settingSnapshot{value: prev, existed: ok}
		},
		func() {
			uc.mu.Lock()
			defer uc.mu.Unlock()
			if uc.cached == nil {
				uc.cached = make(map[entity.SettingKey]entity.Setting)
			}
			uc.cached[key] = next
		},
		func() error {
			return uc.repo.Set(ctx, &next)
		},
		func(prev settingSnapshot) {
			uc.mu.Lock()
			defer uc.mu.Unlock()
			if prev.existed {
				uc.cached[key] = prev.value
			} else {
				delete(uc.cached, key)
			}
		},
	)
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to update %s", key.DisplayName()), err)
	}

	// The optimistic value is not trusted as final; drop the cache so the
	// next read comes from the store.
	uc.Invalidate()

	return &next, nil
}

func (uc *SettingsUseCase) Invalidate() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.fetchedAt = time.Time{}
}

func (uc *SettingsUseCase) ensureFresh(ctx context.Context) error {
	uc.mu.Lock()
	fresh := uc.cached != nil && time.Since(uc.fetchedAt) < uc.ttl
	uc.mu.Unlock()
	if fresh {
		return nil
	}

	settings, err := uc.repo.GetAll(ctx, entity.SettingFilter{})
	if err != nil {
		return errors.Internal("Failed to load settings", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cached = make(map[entity.SettingKey]entity.Setting, len(settings))
	for _, setting := range settings {
		uc.cached[setting.Key] = setting
	}
	uc.fetchedAt = time.Now()
	return nil
}
