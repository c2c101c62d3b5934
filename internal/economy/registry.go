package economy

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/logger"
)

// Registry holds every registered provider in registration order and
// routes calls to the active one.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	providers map[string]Provider
	active    Provider
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds provider under key (case-insensitive). Re-registering a key
// replaces the provider but keeps its position.
func (r *Registry) Register(ctx context.Context, key string, provider Provider) {
	key = strings.ToLower(strings.TrimSpace(key))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[key]; !exists {
		r.order = append(r.order, key)
	}
	r.providers[key] = provider
	logger.FromContext(ctx).Info(LogMsgProviderRegistered, "key", key, "provider", provider.Name())
}

// Activate selects preferred when it is registered and available, else the
// first available provider. It returns false when nothing is available.
func (r *Registry) Activate(ctx context.Context, preferred string) bool {
	log := logger.FromContext(ctx)
	preferred = strings.ToLower(strings.TrimSpace(preferred))

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.providers[preferred]; ok && p.IsAvailable() {
		r.active = p
		log.Info(LogMsgProviderActivated, "key", preferred, "provider", p.Name())
		return true
	}
	for _, key := range r.order {
		if p := r.providers[key]; p.IsAvailable() {
			r.active = p
			log.Warn(LogMsgProviderFallback, "preferred", preferred, "key", key, "provider", p.Name())
			return true
		}
	}

	r.active = nil
	log.Warn(LogMsgNoProvider)
	return false
}

// Lookup returns the provider registered under key
func (r *Registry) Lookup(key string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgProviderNotFoundFmt, domain.ErrProviderNotFound, key)
	}
	return p, nil
}

// IsAvailable reports whether an active provider exists and is still up
func (r *Registry) IsAvailable() bool {
	return r.current() != nil
}

// Active returns the active provider while it is available, else nil
func (r *Registry) Active() Provider {
	return r.current()
}

// ProviderName returns the active provider name, or "none"
func (r *Registry) ProviderName() string {
	if p := r.current(); p != nil {
		return p.Name()
	}
	return NoProviderName
}

func (r *Registry) current() Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil || !r.active.IsAvailable() {
		return nil
	}
	return r.active
}

func (r *Registry) Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	p := r.current()
	if p == nil {
		return domain.ErrEconomyUnavailable
	}
	return p.Deposit(ctx, player, amount, reason)
}

func (r *Registry) Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	p := r.current()
	if p == nil {
		return domain.ErrEconomyUnavailable
	}
	return p.Withdraw(ctx, player, amount, reason)
}

func (r *Registry) Balance(ctx context.Context, player uuid.UUID) (float64, error) {
	p := r.current()
	if p == nil {
		return 0, domain.ErrEconomyUnavailable
	}
	return p.Balance(ctx, player)
}

func (r *Registry) HasBalance(ctx context.Context, player uuid.UUID, amount float64) (bool, error) {
	p := r.current()
	if p == nil {
		return false, domain.ErrEconomyUnavailable
	}
	return p.HasBalance(ctx, player, amount)
}

// Format uses the active provider, or a plain integer rendering without one
func (r *Registry) Format(amount float64) string {
	if p := r.current(); p != nil {
		return p.Format(amount)
	}
	return fmt.Sprintf("%.0f", amount)
}
