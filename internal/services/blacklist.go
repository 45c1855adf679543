package services

import (
	"sync"
	"time"
)

// Blacklist is a synchronized set of revoked token identifiers (jti).
// Logout writes race with token verification on other requests, so every
// access takes the mutex. Entries are pruned once their token would have
// expired anyway; a zero expiry marks a non-expiring token whose entry is
// kept forever.
type Blacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewBlacklist creates an empty Blacklist.
func NewBlacklist() *Blacklist {
	return &Blacklist{
		revoked: make(map[string]time.Time),
	}
}

// Add records a jti as revoked until expiresAt has passed. Pass the zero
// time for tokens without an expiry.
func (b *Blacklist) Add(jti string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune(time.Now())
	b.revoked[jti] = expiresAt
}

// Contains reports whether a jti has been revoked.
func (b *Blacklist) Contains(jti string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.revoked[jti]
	return ok
}

// Len reports the number of tracked entries.
func (b *Blacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.revoked)
}

// prune drops entries whose token has expired on its own. Caller must hold mu.
func (b *Blacklist) prune(now time.Time) {
	for jti, expiresAt := range b.revoked {
		if !expiresAt.IsZero() && expiresAt.Before(now) {
			delete(b.revoked, jti)
		}
	}
}
