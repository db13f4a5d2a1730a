package personality

import "errors"

// ErrUnknownPersonality reports a lookup outside the builtin set. The
// classifier only ever emits builtin ids, so hitting this indicates an
// internal consistency bug rather than bad user input.
var ErrUnknownPersonality = errors.New("unknown personality")

// Catalog exposes strategy retrieval over the fixed builtin set.
type Catalog struct {
	ordered []Strategy
	byID    map[string]Strategy
}

// NewCatalog returns a catalog preloaded with the builtin strategies.
func NewCatalog() *Catalog {
	ordered := Builtin()
	byID := make(map[string]Strategy, len(ordered))
	for _, s := range ordered {
		byID[s.ID()] = s
	}
	return &Catalog{ordered: ordered, byID: byID}
}

// Get looks up a strategy by identifier.
func (c *Catalog) Get(id string) (Strategy, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, ErrUnknownPersonality
	}
	return s, nil
}

// List returns the strategies in declaration order.
func (c *Catalog) List() []Strategy {
	return append([]Strategy(nil), c.ordered...)
}
