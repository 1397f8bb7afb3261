package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/repository"
)

// SettingsService holds the storefront's singleton settings: seeded with
// defaults, overwritten by a successful remote read, then kept current by
// merge-and-apply updates whose remote upsert runs detached.
type SettingsService struct {
	store repository.SettingsStore
	log   *zap.Logger

	mu       sync.RWMutex
	settings models.Settings

	mirrors sync.WaitGroup
}

func NewSettingsService(store repository.SettingsStore, log *zap.Logger) *SettingsService {
	return &SettingsService{
		store:    store,
		log:      log,
		settings: models.DefaultSettings(),
	}
}

// Load replaces the defaults with the remote row when the read succeeds.
// Any error (missing row included) silently keeps the defaults.
func (s *SettingsService) Load(ctx context.Context) {
	remote, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn("settings load failed, keeping defaults", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.settings = remote
	s.mu.Unlock()
}

// Get returns the current settings.
func (s *SettingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update merges the patch into the current settings, applies the result
// immediately, and upserts the full merged record remotely in the
// background. A remote failure is logged, never rolled back.
func (s *SettingsService) Update(_ context.Context, patch models.SettingsPatch) models.Settings {
	s.mu.Lock()
	s.settings = s.settings.Merge(patch)
	merged := s.settings
	s.mu.Unlock()

	s.mirrors.Add(1)
	go func() {
		defer s.mirrors.Done()
		if err := s.store.Put(context.Background(), merged); err != nil {
			s.log.Error("settings mirror upsert failed", zap.Error(err))
		}
	}()
	return merged
}

// Flush waits for in-flight settings writes.
func (s *SettingsService) Flush() {
	s.mirrors.Wait()
}
