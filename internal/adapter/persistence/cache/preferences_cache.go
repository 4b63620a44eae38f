// Package cache holds in-process read-through caches in front of the DynamoDB repositories.
package cache

import (
	"context"
	"log"
	"time"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	defaultPreferencesTTL        = 5 * time.Minute
	defaultPreferencesMaxEntries = 10_000
)

// PreferencesCache fronts the preferences table. Every notification reads the
// recipient's preferences, so the lookups of a batch job mostly hit memory.
// Each entry costs 1, MaxCost is therefore an entry count.
type PreferencesCache struct {
	next interfaces.INotificationPreferencesRepository
	c    *ristretto.Cache[string, entities.NotificationPreferences]
	ttl  time.Duration
}

var _ interfaces.INotificationPreferencesRepository = (*PreferencesCache)(nil)

func NewPreferencesCache(next interfaces.INotificationPreferencesRepository, maxEntries int64, ttl time.Duration) (*PreferencesCache, error) {
	if maxEntries <= 0 {
		maxEntries = defaultPreferencesMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultPreferencesTTL
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, entities.NotificationPreferences]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &PreferencesCache{next: next, c: c, ttl: ttl}, nil
}

// GetByUserID serves from memory when possible. Misses, including users
// without stored preferences, are cached too.
func (p *PreferencesCache) GetByUserID(ctx context.Context, userID string) (entities.NotificationPreferences, error) {
	if v, ok := p.c.Get(userID); ok {
		return v, nil
	}
	v, err := p.next.GetByUserID(ctx, userID)
	if err != nil {
		return entities.NotificationPreferences{}, err
	}
	p.c.SetWithTTL(userID, v, 1, p.ttl)
	return v, nil
}

func (p *PreferencesCache) Upsert(ctx context.Context, prefs entities.NotificationPreferences) (entities.NotificationPreferences, error) {
	saved, err := p.next.Upsert(ctx, prefs)
	if err != nil {
		p.c.Del(prefs.UserID)
		return entities.NotificationPreferences{}, err
	}
	if !p.c.SetWithTTL(saved.UserID, saved, 1, p.ttl) {
		log.Printf("[notification][cache] set dropped user_id=%s; invalidating", saved.UserID)
		p.c.Del(saved.UserID)
	}
	p.c.Wait()
	return saved, nil
}

// Close releases the cache goroutines.
func (p *PreferencesCache) Close() {
	p.c.Close()
}
