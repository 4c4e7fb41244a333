package reminders

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Notifier is an in-process Scheduler: each trigger is held with a TTL
// running out at its absolute time, and the eviction callback fires it.
// Triggers already due are fired immediately. Registrations do not survive a
// restart; callers re-derive triggers when entities are saved or pulled.
type Notifier struct {
	cache *cache.Cache
	fire  func(Trigger)

	mu       sync.Mutex
	canceled map[string]struct{}
}

// NewNotifier builds a Notifier delivering due triggers to fire. The
// janitor granularity bounds how late a trigger can fire.
func NewNotifier(fire func(Trigger)) *Notifier {
	n := &Notifier{
		cache:    cache.New(cache.NoExpiration, time.Second),
		fire:     fire,
		canceled: make(map[string]struct{}),
	}
	n.cache.OnEvicted(func(key string, v interface{}) {
		// eviction also runs for Cancel's delete; the mark suppresses it
		n.mu.Lock()
		_, skip := n.canceled[key]
		delete(n.canceled, key)
		n.mu.Unlock()
		if skip {
			return
		}
		if t, ok := v.(Trigger); ok {
			n.fire(t)
		}
	})
	return n
}

func triggerKey(id int64) string { return strconv.FormatInt(id, 10) }

func (n *Notifier) Schedule(ctx context.Context, t Trigger) error {
	d := time.Until(t.At)
	if d <= 0 {
		// drop any earlier registration under the same id before firing
		_ = n.Cancel(ctx, t.ID)
		n.fire(t)
		return nil
	}
	n.cache.Set(triggerKey(t.ID), t, d)
	return nil
}

func (n *Notifier) Cancel(ctx context.Context, id int64) error {
	key := triggerKey(id)
	n.mu.Lock()
	n.canceled[key] = struct{}{}
	n.mu.Unlock()
	n.cache.Delete(key)
	// nothing was pending: drop the mark so a later expiry is not suppressed
	n.mu.Lock()
	delete(n.canceled, key)
	n.mu.Unlock()
	return nil
}
