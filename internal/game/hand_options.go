package game

import (
	"github.com/charmbracelet/log"
)

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

// handConfig holds the optional configuration of a hand.
type handConfig struct {
	id     string
	logger *log.Logger
}

// WithID labels the hand. The ID is carried into the HandResult and logs.
func WithID(id string) HandOption {
	return func(c *handConfig) {
		c.id = id
	}
}

// WithLogger sets the logger used by the hand and its betting rounds.
// Default is a discarding logger.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}
