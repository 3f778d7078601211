package auth

import (
	"srms/internal/platform/store"
)

const (
	keyInitialized   = "srms_initialized"
	keyPassword      = "srms_password"
	keyAuthenticated = "srms_authenticated"

	// DefaultPassword seeds the gate on first run. The stored password is
	// compared in plaintext; this console manages no real credentials and the
	// scheme is not suitable for anything that does.
	DefaultPassword = "admin123"
)

// Gate is the single-operator session gate: one stored password, one
// persisted authenticated flag. It owns the srms_initialized, srms_password
// and srms_authenticated keys and is the only writer to them.
type Gate struct {
	store store.Store
}

func NewGate(s store.Store) *Gate {
	return &Gate{store: s}
}

// Initialize seeds the gate state on the first ever run and is a no-op on
// every later one. Call it once before any other Gate operation.
func (g *Gate) Initialize() error {
	value, _, err := g.store.Get(keyInitialized)
	if err != nil {
		return err
	}
	if value == "true" {
		return nil
	}
	if err := g.store.Set(keyPassword, DefaultPassword); err != nil {
		return err
	}
	if err := g.store.Set(keyInitialized, "true"); err != nil {
		return err
	}
	return g.store.Set(keyAuthenticated, "false")
}

// IsAuthenticated reports the persisted flag. Anything but the exact "true"
// sentinel, including an absent key, reads as false.
func (g *Gate) IsAuthenticated() bool {
	value, _, err := g.store.Get(keyAuthenticated)
	if err != nil {
		return false
	}
	return value == "true"
}

// Login flips the authenticated flag on an exact password match. A mismatch
// leaves the state untouched and reports nothing about why.
func (g *Gate) Login(candidate string) (bool, error) {
	stored, _, err := g.store.Get(keyPassword)
	if err != nil {
		return false, err
	}
	if candidate != stored {
		return false, nil
	}
	if err := g.store.Set(keyAuthenticated, "true"); err != nil {
		return false, err
	}
	return true, nil
}

// Logout unconditionally clears the authenticated flag.
func (g *Gate) Logout() error {
	return g.store.Set(keyAuthenticated, "false")
}

// ChangePassword overwrites the stored password when current matches it. The
// authenticated flag is left alone either way. Strength rules for next are the
// caller's concern.
func (g *Gate) ChangePassword(current, next string) (bool, error) {
	stored, _, err := g.store.Get(keyPassword)
	if err != nil {
		return false, err
	}
	if current != stored {
		return false, nil
	}
	if err := g.store.Set(keyPassword, next); err != nil {
		return false, err
	}
	return true, nil
}
