// Package notify implements the fire-and-forget status messages shown as
// toasts. Rather than a side-effecting timer per message, notifications are
// an explicit queue of entries with an expiry instant, evicted by a sweeper
// tick; emission is decoupled from any caller's success or failure path.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind classifies a notification for presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a single transient status message.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Center collects notifications and expires them after a fixed TTL.
type Center struct {
	mu      sync.Mutex
	entries []Notification
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCenter builds a notification center with the given TTL.
func NewCenter(ttl time.Duration, logger *zap.Logger) *Center {
	return &Center{ttl: ttl, logger: logger}
}

// Success emits a success notification.
func (c *Center) Success(message string) { c.push(message, KindSuccess) }

// Error emits an error notification.
func (c *Center) Error(message string) { c.push(message, KindError) }

// Info emits an informational notification.
func (c *Center) Info(message string) { c.push(message, KindInfo) }

func (c *Center) push(message string, kind Kind) {
	now := time.Now()
	entry := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()

	c.logger.Info("notification emitted",
		zap.String("kind", string(kind)),
		zap.String("message", message))
}

// Active returns the unexpired notifications in emission order.
func (c *Center) Active(now time.Time) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := make([]Notification, 0, len(c.entries))
	for _, entry := range c.entries {
		if entry.ExpiresAt.After(now) {
			active = append(active, entry)
		}
	}
	return active
}

// Sweep evicts entries whose expiry has passed.
func (c *Center) Sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.entries[:0]
	for _, entry := range c.entries {
		if entry.ExpiresAt.After(now) {
			kept = append(kept, entry)
		}
	}
	c.entries = kept
}

// Run ticks the sweeper until the context is cancelled.
func (c *Center) Run(ctx context.Context) {
	interval := c.ttl / 2
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.Sweep(now)
		}
	}
}
