package strategy

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dscsnu/ping-game-theory-25-pkg/game"
)

// Strategy is the decision policy of one participant in a repeated game.
// Begin is called exactly once at the start of a match; Turn is called once
// per later round with the full history so far, from the strategy's own
// perspective. Every returned move must be a member of the Move set. A
// strategy may keep internal state; the tester constructs a fresh instance
// per match.
type Strategy interface {
	Begin() game.Move
	Turn(history game.History) game.Move
}

// Factory constructs a strategy instance with no arguments. The tester is
// built from a Factory so it can create one instance per match.
type Factory func() Strategy

var ErrUnknownStrategy = errors.New("unknown strategy")

var registry = map[string]Factory{}

// Register adds a named factory to the global registry. It panics on an
// empty name or a duplicate. Builtins register themselves in init.
func Register(name string, factory Factory) {
	if name == "" {
		panic("strategy: empty name")
	}
	if factory == nil {
		panic("strategy: nil factory for " + name)
	}
	if _, ok := registry[name]; ok {
		panic("strategy: duplicate name " + name)
	}
	registry[name] = factory
}

// Lookup returns the registered factory for name.
func Lookup(name string) (Factory, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return factory, nil
}

// New constructs a registered strategy by name.
func New(name string) (Strategy, error) {
	factory, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(), nil
}

// Names lists all registered strategy names in sorted order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
