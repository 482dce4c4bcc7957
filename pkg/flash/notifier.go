package flash

import (
	"context"
	"sync"
)

type contextKey string

const slotKey contextKey = "flash_slot"

// Slot holds the notification raised while handling one request.
type Slot struct {
	mu      sync.Mutex
	message string
}

// Message returns the last message stored in the slot.
func (s *Slot) Message() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message, s.message != ""
}

// WithSlot attaches a fresh Slot to ctx.
func WithSlot(ctx context.Context) (context.Context, *Slot) {
	s := &Slot{}
	return context.WithValue(ctx, slotKey, s), s
}

// SlotFromContext returns the Slot attached by WithSlot.
func SlotFromContext(ctx context.Context) (*Slot, bool) {
	s, ok := ctx.Value(slotKey).(*Slot)
	return s, ok
}

// Notifier records success notifications into the request's Slot.
// Notifications raised outside a request carrying a Slot are dropped.
type Notifier struct{}

func (Notifier) NotifySuccess(ctx context.Context, message string) {
	s, ok := SlotFromContext(ctx)
	if !ok {
		return
	}
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}
