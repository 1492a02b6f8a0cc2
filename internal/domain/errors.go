package domain

import "errors"

// Sentinel errors used across layers. Wrapped errors carry the
// human-readable reason; match with errors.Is.
var (
	ErrNotRepresentable  = errors.New("no valid name could be derived")
	ErrValidation        = errors.New("invalid entry")
	ErrAlreadyExists     = errors.New("entry name must be unique")
	ErrNotFound          = errors.New("recipe not found")
	ErrNotARecipe        = errors.New("requested item is not a recipe")
	ErrMissingDependency = errors.New("missing required ingredient or recipe in cookbook")
	ErrCyclicDependency  = errors.New("recipe requires itself")
	ErrTooDeep           = errors.New("recipe nesting too deep")
	ErrOverflow          = errors.New("recipe totals exceed the representable range")
)
