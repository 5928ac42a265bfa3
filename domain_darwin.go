//go:build darwin

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
)

// SearchDomain selects the scope standard-directory lookups search on
// Apple platforms.
type SearchDomain int

const (
	// DomainUser searches the user's home (~/Library/...). The default.
	DomainUser SearchDomain = iota
	// DomainLocal searches the local machine (/Library/...).
	DomainLocal
	// DomainNetwork searches network locations (/Network/Library/...).
	DomainNetwork
	// DomainSystem searches the system (/System/Library/...).
	DomainSystem
)

// SetSearchDomain switches the search domain for subsequent directory
// lookups; already-resolved paths are unaffected. Admin and system tooling
// uses this to target /Library or /System/Library instead of the user
// home:
//
//	sysdirs.SetSearchDomain(sysdirs.DomainLocal)
//	sysdirs.CacheDir() // /Library/Caches
func SetSearchDomain(d SearchDomain) {
	apple.SetDomain(provider.Domain(d))
}
