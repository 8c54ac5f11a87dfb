// Package cache fournit le cache TTL des réglages salon. Le pattern hérité
// (map globale au niveau module) est remplacé par une abstraction explicite
// injectée dans la façade, avec invalidation à l'écriture.
package cache

import (
	"sync"
	"time"

	"github.com/coiffea/salon-api/internal/application/reporting"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ reporting.SettingsProvider = (*SettingsCache)(nil)

type cachedSettings struct {
	value     *entity.SalonSettings
	expiresAt time.Time
}

// SettingsCache cache TTL des réglages de rapport, sûr pour des lecteurs
// concurrents. Les rapports tolèrent une valeur momentanément périmée ; les
// écritures de réglages appellent Invalidate pour raccourcir la fenêtre.
type SettingsCache struct {
	repo repository.SalonRepository
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cachedSettings
}

// NewSettingsCache construit le cache devant le repository salon.
func NewSettingsCache(repo repository.SalonRepository, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		repo:    repo,
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]cachedSettings{},
	}
}

// Get réglages du salon, depuis le cache si l'entrée est encore fraîche.
func (c *SettingsCache) Get(salonID string) (*entity.SalonSettings, error) {
	c.mu.RLock()
	e, ok := c.entries[salonID]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expiresAt) {
		return e.value, nil
	}

	value, err := c.repo.GetSettings(salonID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.entries[salonID] = cachedSettings{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}

// Invalidate retire l'entrée du salon ; le prochain Get relit la DB.
func (c *SettingsCache) Invalidate(salonID string) {
	c.mu.Lock()
	delete(c.entries, salonID)
	c.mu.Unlock()
}
