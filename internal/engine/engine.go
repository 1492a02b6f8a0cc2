// Package engine implements entry registration and recipe summarization on
// top of an EntryStore.
package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

// DefaultMaxDepth bounds recipe nesting during summarization.
const DefaultMaxDepth = 64

// DefaultSuggestThreshold is the minimum similarity for a "did you mean" hint.
const DefaultSuggestThreshold = 0.6

// Option configures the engine.
type Option func(*Engine)

// WithMaxDepth sets how many recipe levels a summary may descend through.
// Values <= 0 keep the default.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithSuggestThreshold sets the similarity (0..1) a registered name needs to
// be offered as a suggestion for an unknown one. 1 disables suggestions for
// anything but exact matches.
func WithSuggestThreshold(t float64) Option {
	return func(e *Engine) {
		e.suggestThreshold = t
	}
}

// Engine validates and registers entries and expands recipes into
// summaries. It depends only on the EntryStore interface.
type Engine struct {
	store            domain.EntryStore
	log              *logger.Logger
	maxDepth         int
	suggestThreshold float64
}

// New creates an engine with the given dependencies and options.
func New(store domain.EntryStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:            store,
		log:              log,
		maxDepth:         DefaultMaxDepth,
		suggestThreshold: DefaultSuggestThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxDepth returns the configured nesting limit.
func (e *Engine) MaxDepth() int { return e.maxDepth }

// Entries returns every registered entry sorted by name.
func (e *Engine) Entries(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return entries, nil
}

// Register validates a draft and inserts the resulting entry. Checks run in
// a fixed order and the first failure is returned, wrapped in
// domain.ErrValidation:
//
//  1. the type is "ingredient" or "recipe"
//  2. the name is a non-empty string and not yet registered; an empty or
//     missing name is refused outright rather than stored under ""
//  3. ingredients carry a numeric cookTime >= 0
//  4. recipes carry a requiredItems array of uniquely named items, each
//     with a numeric quantity > 0
func (e *Engine) Register(ctx context.Context, d Draft) (*domain.Entry, error) {
	kind, ok := domain.KindFromString(d.Type)
	if !ok {
		return nil, invalid(`type must be "recipe" or "ingredient"`)
	}

	if d.Name == "" {
		return nil, invalid("name must be a non-empty string")
	}
	if e.store.Contains(ctx, d.Name) {
		return nil, fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrAlreadyExists, d.Name)
	}

	entry := &domain.Entry{Name: d.Name, Kind: kind}

	switch kind {
	case domain.KindIngredient:
		if d.CookTime == nil || *d.CookTime < 0 {
			return nil, invalid("cookTime must be a number >= 0")
		}
		entry.CookTime = *d.CookTime

	case domain.KindRecipe:
		items, err := validateItems(d.RequiredItems)
		if err != nil {
			return nil, err
		}
		entry.RequiredItems = items
	}

	// The store re-checks uniqueness under its write lock.
	if err := e.store.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	e.log.Info("registered %s %q", kind, entry.Name)
	return entry, nil
}

func validateItems(drafts []DraftItem) ([]domain.RequiredItem, error) {
	if drafts == nil {
		return nil, invalid("requiredItems must be an array")
	}

	seen := make(map[string]struct{}, len(drafts))
	items := make([]domain.RequiredItem, 0, len(drafts))
	for i, d := range drafts {
		if d.Name == nil || d.Quantity == nil || *d.Quantity <= 0 {
			return nil, invalid(fmt.Sprintf("requiredItems[%d] must have a string name and a numeric quantity > 0", i))
		}
		if _, dup := seen[*d.Name]; dup {
			return nil, invalid(fmt.Sprintf("duplicate requiredItem name %q", *d.Name))
		}
		seen[*d.Name] = struct{}{}
		items = append(items, domain.RequiredItem{Name: *d.Name, Quantity: *d.Quantity})
	}
	return items, nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, reason)
}
