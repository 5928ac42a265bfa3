package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// Env supplies environment variable lookups to the resolution policies.
// The second return reports whether the variable is set; implementations
// must report empty values as unset, per the XDG specification.
type Env interface {
	Lookup(key string) (string, bool)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

// Lookup returns the value of the named variable. Variables set to the
// empty string are reported as unset.
func (OSEnv) Lookup(key string) (string, bool) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// MapEnv is a fixed in-memory environment for tests.
type MapEnv map[string]string

// Lookup returns the mapped value. Empty values count as unset.
func (m MapEnv) Lookup(key string) (string, bool) {
	val, ok := m[key]
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// Get returns the named variable or "" when unset.
func Get(env Env, key string) string {
	val, _ := env.Lookup(key)
	return val
}

// ExpandTilde resolves a leading tilde in raw against home.
//
//   - "~/rest" joins rest onto home; absent home means the value cannot be
//     expanded and "" is returned rather than a literal tilde path.
//   - "~" alone resolves to home itself.
//   - Anything else, including a tilde past the first two characters, is
//     returned unchanged. There is no ~user support and no repeated
//     expansion.
func ExpandTilde(raw, home string) string {
	if rest, ok := strings.CutPrefix(raw, "~/"); ok {
		if home == "" {
			return ""
		}
		return filepath.Join(home, rest)
	}
	if raw == "~" {
		return home
	}
	return raw
}

// WithDefault implements the XDG base-directory policy: an environment
// override when set, otherwise a mandated default relative to home.
//
// A set value is tilde-expanded against home and wins unconditionally; if
// expansion fails (tilde with no home) the result is "" rather than the
// default. With no value set, the result is home joined with suffix, or ""
// when home itself is unknown.
func WithDefault(value, home, suffix string) string {
	if value != "" {
		return ExpandTilde(value, home)
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, suffix)
}

// NoDefault implements the XDG user-directory policy: an environment
// override when set, otherwise nothing. These directories have no mandated
// default, so an unset value yields "" even when home is known.
func NoDefault(value, home string) string {
	if value == "" {
		return ""
	}
	return ExpandTilde(value, home)
}
