package cache

import (
	"context"
	"time"

	"github.com/nordport/terminal-orders/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type terminalSource interface {
	Terminals(ctx context.Context) ([]domain.Terminal, error)
}

// Terminals keeps the terminal directory close to the handlers. Terminals
// change rarely, so entries live for the configured TTL and get reloaded
// from the repository on the next miss.
type Terminals struct {
	lru *expirable.LRU[string, domain.Terminal]
}

func NewTerminals(size int, ttl time.Duration) *Terminals {
	if size < 1 {
		size = 1
	}
	return &Terminals{
		lru: expirable.NewLRU[string, domain.Terminal](size, nil, ttl),
	}
}

// Warm loads the full terminal list from src. A source error leaves the
// cache as it was.
func (c *Terminals) Warm(ctx context.Context, src terminalSource) error {
	terminals, err := src.Terminals(ctx)
	if err != nil {
		return err
	}
	for _, t := range terminals {
		c.lru.Add(t.ID, t)
	}
	return nil
}

func (c *Terminals) Get(id string) (domain.Terminal, bool) {
	return c.lru.Get(id)
}

func (c *Terminals) Set(t domain.Terminal) {
	c.lru.Add(t.ID, t)
}

func (c *Terminals) All() []domain.Terminal {
	return c.lru.Values()
}

func (c *Terminals) Len() int {
	return c.lru.Len()
}
