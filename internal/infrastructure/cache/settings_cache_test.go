package cache_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/infrastructure/cache"
)

// fakeSalonRepo compte les lectures de réglages.
type fakeSalonRepo struct {
	stubSalonRepo
	calls    int
	settings *entity.SalonSettings
}

func (f *fakeSalonRepo) GetSettings(string) (*entity.SalonSettings, error) {
	f.calls++
	return f.settings, nil
}

func TestSettingsCache_LectureUniquePendantLeTTL(t *testing.T) {
	repo := &fakeSalonRepo{settings: &entity.SalonSettings{DefaultCommissionPct: decimal.NewFromInt(30)}}
	c := cache.NewSettingsCache(repo, time.Minute)

	first, err := c.Get("salon-1")
	require.NoError(t, err)
	second, err := c.Get("salon-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.calls, "une seule lecture DB pendant la fenêtre TTL")
}

func TestSettingsCache_InvalidateForceLaRelecture(t *testing.T) {
	repo := &fakeSalonRepo{settings: &entity.SalonSettings{}}
	c := cache.NewSettingsCache(repo, time.Minute)

	_, err := c.Get("salon-1")
	require.NoError(t, err)
	c.Invalidate("salon-1")
	_, err = c.Get("salon-1")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls, "l'invalidation à l'écriture doit forcer une relecture")
}

func TestSettingsCache_EntreesParSalon(t *testing.T) {
	repo := &fakeSalonRepo{settings: &entity.SalonSettings{}}
	c := cache.NewSettingsCache(repo, time.Minute)

	_, _ = c.Get("salon-1")
	_, _ = c.Get("salon-2")
	assert.Equal(t, 2, repo.calls, "une entrée de cache par salon")
}

// stubSalonRepo implémentation vide de repository.SalonRepository pour
// n'avoir à redéfinir que GetSettings.
type stubSalonRepo struct{}

func (stubSalonRepo) Create(*entity.Salon) error                   { return nil }
func (stubSalonRepo) GetByID(string) (*entity.Salon, error)        { return nil, nil }
func (stubSalonRepo) GetByEmail(string) (*entity.Salon, error)     { return nil, nil }
func (stubSalonRepo) UpdateSubscription(string, string) error      { return nil }
func (stubSalonRepo) UpdateDefaultCommission(string, decimal.Decimal) error {
	return nil
}
func (stubSalonRepo) ReplaceHiddenPeriods(string, []entity.HiddenPeriod) error {
	return nil
}
