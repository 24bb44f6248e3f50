// Package cache guarda respostas JSON já serializadas por um curto período.
// Usado para /auth/me; escritas de perfil invalidam a chave do usuário.
package cache

import (
	"sync"
	"time"
)

type TTL struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

type entry struct {
	data []byte
	exp  time.Time
}

func New(ttl time.Duration) *TTL {
	c := &TTL{entries: make(map[string]entry), ttl: ttl}
	go c.sweep()
	return c
}

// sweep remove entradas vencidas em intervalos de meio TTL.
func (c *TTL) sweep() {
	tick := time.NewTicker(c.ttl / 2)
	defer tick.Stop()
	for range tick.C {
		now := time.Now()
		c.mu.Lock()
		for k, e := range c.entries {
			if e.exp.Before(now) {
				delete(c.entries, k)
			}
		}
		c.mu.Unlock()
	}
}

// Get devolve o valor da chave, ou nil se ausente ou vencido.
func (c *TTL) Get(key string) []byte {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || e.exp.Before(time.Now()) {
		return nil
	}
	return e.data
}

func (c *TTL) Set(key string, value []byte) {
	exp := time.Now().Add(c.ttl)
	c.mu.Lock()
	c.entries[key] = entry{data: value, exp: exp}
	c.mu.Unlock()
}

func (c *TTL) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
