package filters

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFilter is returned by Invoke for a name with no registered filter.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter transforms an input value given auxiliary arguments and the
// evaluation context.
type Filter func(input string, args Arguments, ctx EvalContext) Value

// Collection maps filter names to filters. It is safe for concurrent use.
type Collection struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{filters: make(map[string]Filter)}
}

// Add registers f under name, replacing any previous registration.
func (c *Collection) Add(name string, f Filter) {
	c.mu.Lock()
	c.filters[name] = f
	c.mu.Unlock()
}

// Get looks up a filter by name.
func (c *Collection) Get(name string) (Filter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.filters[name]
	return f, ok
}

// Names returns the registered filter names, sorted.
func (c *Collection) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.filters))
	for name := range c.filters {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Invoke runs the named filter. The only error is ErrUnknownFilter; a filter
// that cannot produce a result returns Nil instead.
func (c *Collection) Invoke(name, input string, args Arguments, ctx EvalContext) (Value, error) {
	f, ok := c.Get(name)
	if !ok {
		return Nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	return f(input, args, ctx), nil
}

// Filter names registered by WithColorFilters.
const (
	NameToRGB   = "color_to_rgb"
	NameToHex   = "color_to_hex"
	NameToHSL   = "color_to_hsl"
	NameExtract = "color_extract"
)

// WithColorFilters registers the four color filters on c and returns it.
func WithColorFilters(c *Collection) *Collection {
	c.Add(NameToRGB, ToRGB)
	c.Add(NameToHex, ToHex)
	c.Add(NameToHSL, ToHSL)
	c.Add(NameExtract, Extract)
	return c
}
