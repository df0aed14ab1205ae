package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds all available days and provides lookup functionality.
// It is thread-safe.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Day
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Register adds a day to the registry.
// Returns an error if the day number is already taken.
func (r *Registry) Register(day Day) error {
	if err := day.Validate(); err != nil {
		return fmt.Errorf("invalid day: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.days[day.Number]; exists {
		return fmt.Errorf("%w: %d", ErrDayAlreadyRegistered, day.Number)
	}
	r.days[day.Number] = day
	return nil
}

// MustRegister registers a day and panics on error.
// Use this for static registration at init time.
func (r *Registry) MustRegister(day Day) {
	if err := r.Register(day); err != nil {
		panic(fmt.Sprintf("failed to register day %d: %v", day.Number, err))
	}
}

// Get returns a day by number.
func (r *Registry) Get(number int) (Day, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day, ok := r.days[number]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrDayNotFound, number)
	}
	return day, nil
}

// All returns all registered days ordered by number.
func (r *Registry) All() []Day {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b Day) int { return a.Number - b.Number })
	return days
}

// Count returns the number of registered days.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.days)
}

// Global registry instance for convenience.
var globalRegistry = NewRegistry()

// Global returns the global day registry.
func Global() *Registry {
	return globalRegistry
}

// MustRegister registers a day in the global registry, panicking on error.
func MustRegister(day Day) {
	globalRegistry.MustRegister(day)
}

// Lookup retrieves a day from the global registry.
func Lookup(number int) (Day, error) {
	return globalRegistry.Get(number)
}
