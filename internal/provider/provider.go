package provider

import "path/filepath"

// Kind identifies one of the well-known directory concepts. The set is
// fixed; there is no dynamic registration.
type Kind int

const (
	Home Kind = iota
	Cache
	Config
	ConfigLocal
	Data
	DataLocal
	Executable
	Preference
	Runtime
	State
	Audio
	Desktop
	Document
	Download
	Font
	Picture
	Public
	Template
	Video
	Temp
	Library

	numKinds
)

var kindNames = [numKinds]string{
	Home:        "home",
	Cache:       "cache",
	Config:      "config",
	ConfigLocal: "config-local",
	Data:        "data",
	DataLocal:   "data-local",
	Executable:  "executable",
	Preference:  "preference",
	Runtime:     "runtime",
	State:       "state",
	Audio:       "audio",
	Desktop:     "desktop",
	Document:    "document",
	Download:    "download",
	Font:        "font",
	Picture:     "picture",
	Public:      "public",
	Template:    "template",
	Video:       "video",
	Temp:        "temp",
	Library:     "library",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every directory kind in declaration order.
func Kinds() []Kind {
	all := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		all = append(all, k)
	}
	return all
}

// Provider resolves well-known directories for one platform family.
//
// Lookup returns the absolute path for a kind, or "" when the concept does
// not exist on the family or cannot be resolved in the current environment.
// Implementations must be safe for concurrent lookups.
type Provider interface {
	Lookup(kind Kind) string
}

// joinIfPresent joins segments onto base, staying absent when base is.
func joinIfPresent(base string, segments ...string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, segments...)...)
}
