// Package profile holds the fixed registry of setup profiles.
//
// A profile is a named bundle of provisioning targets, such as a minimal base
// system or a full desktop setup. The registry is built once at startup and is
// read-only afterwards.
package profile

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile is returned when a key is not registered in the catalog.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile describes one selectable setup profile.
// - Key: unique identifier used on the command line (e.g., "full").
// - Targets: runner targets, executed in order. Never empty.
// - ETAMinutes: rough duration estimate, for display only.
type Profile struct {
	Key         string
	Title       string
	Description string
	Blurb       string // short text shown next to the key in the selection prompt
	Targets     []string
	ETAMinutes  int
	Recommended bool
}

// Catalog is an immutable, ordered profile registry.
type Catalog struct {
	order []Profile
	byKey map[string]Profile
}

// NewCatalog builds a catalog keeping the given presentation order.
// Duplicate keys, empty keys, empty target lists and negative estimates are rejected.
func NewCatalog(profiles ...Profile) (*Catalog, error) {
	c := &Catalog{byKey: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if p.Key == "" {
			return nil, errors.New("profile key must not be empty")
		}
		if _, dup := c.byKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate profile key %q", p.Key)
		}
		if len(p.Targets) == 0 {
			return nil, fmt.Errorf("profile %q has no targets", p.Key)
		}
		if p.ETAMinutes < 0 {
			return nil, fmt.Errorf("profile %q has a negative estimate", p.Key)
		}
		p.Targets = append([]string(nil), p.Targets...)
		c.order = append(c.order, p)
		c.byKey[p.Key] = p
	}
	return c, nil
}

// Lookup returns the profile registered under key.
func (c *Catalog) Lookup(key string) (Profile, error) {
	p, ok := c.byKey[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, key)
	}
	p.Targets = append([]string(nil), p.Targets...)
	return p, nil
}

// All returns every profile in presentation order.
func (c *Catalog) All() []Profile {
	out := make([]Profile, len(c.order))
	for i, p := range c.order {
		p.Targets = append([]string(nil), p.Targets...)
		out[i] = p
	}
	return out
}

// Keys returns the profile keys in presentation order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, p := range c.order {
		keys[i] = p.Key
	}
	return keys
}

// Default returns the built-in catalog. The recommended "full" profile comes first.
func Default() *Catalog {
	c, err := NewCatalog(
		Profile{
			Key:         "full",
			Title:       "Full",
			Description: "Base + UX + workloads",
			Blurb:       "Base + UX + workloads",
			Targets:     []string{"ansible-base", "ansible-ux", "ansible-workloads"},
			ETAMinutes:  20,
			Recommended: true,
		},
		Profile{
			Key:         "base",
			Title:       "Base",
			Description: "Core system baseline and essential packages",
			Blurb:       "Core system baseline and packages",
			Targets:     []string{"ansible-base"},
			ETAMinutes:  8,
		},
		Profile{
			Key:         "ux",
			Title:       "UX",
			Description: "Desktop UX, battery and dev comfort tools",
			Blurb:       "Desktop UX, battery, dev comfort",
			Targets:     []string{"ansible-ux"},
			ETAMinutes:  10,
		},
		Profile{
			Key:         "workloads",
			Title:       "Workloads",
			Description: "Containers and workload helpers",
			Blurb:       "Containers and workload helpers",
			Targets:     []string{"ansible-workloads"},
			ETAMinutes:  6,
		},
		Profile{
			Key:         "personal",
			Title:       "Personal",
			Description: "Personal extras (wine/retroarch and similar)",
			Blurb:       "Personal extras",
			Targets:     []string{"ansible-personal"},
			ETAMinutes:  7,
		},
	)
	if err != nil {
		panic("invalid built-in profile catalog: " + err.Error())
	}
	return c
}
