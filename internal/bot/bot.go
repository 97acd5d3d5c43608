// Package bot provides the built-in strategies a table can be seated with.
package bot

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// ErrUnknownStrategy is returned by New for names that are not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

type factory func(rng *rand.Rand, logger *log.Logger) game.Strategy

var registry = map[string]factory{
	"random": func(rng *rand.Rand, logger *log.Logger) game.Strategy { return NewRandBot(rng, logger) },
	"call":   func(_ *rand.Rand, logger *log.Logger) game.Strategy { return NewCallBot(logger) },
	"fold":   func(_ *rand.Rand, logger *log.Logger) game.Strategy { return NewFoldBot(logger) },
	"maniac": func(rng *rand.Rand, logger *log.Logger) game.Strategy { return NewManiacBot(rng, logger) },
	"chart":  func(_ *rand.Rand, logger *log.Logger) game.Strategy { return NewChartBot(logger) },
}

// New creates the named strategy. Randomised strategies draw from rng, which
// must not be shared with another table.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return f(rng, logger.With("strategy", name)), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Known reports whether name is a registered strategy.
func Known(name string) bool {
	_, ok := registry[strings.ToLower(name)]
	return ok
}
