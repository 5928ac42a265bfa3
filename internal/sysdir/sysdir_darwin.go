//go:build darwin

// Package sysdir binds the libSystem standard-directory enumeration
// (sysdir(3)) without cgo, via purego. It is the only foreign-call boundary
// in the module; everything above it works with plain strings.
package sysdir

import (
	"bytes"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"

	"github.com/thoreinstein/sysdirs/internal/provider"
)

// pathMax matches the buffer size sysdir(3) documents for result paths.
const pathMax = 1024

// Domain masks per sysdir.h.
const (
	maskUser    uint32 = 1
	maskLocal   uint32 = 2
	maskNetwork uint32 = 4
	maskSystem  uint32 = 8
)

var (
	loadOnce sync.Once
	loadErr  error

	startEnumeration func(dir, domainMask uint32) uint32
	nextEnumeration  func(state uint32, path *byte) uint32
)

func load() {
	defer func() {
		// RegisterLibFunc panics on a missing symbol; a libSystem without
		// sysdir folds into absent results like every other native failure.
		if r := recover(); r != nil {
			loadErr = errors.Newf("sysdir: binding libSystem: %v", r)
		}
	}()

	lib, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		loadErr = errors.Wrap(err, "sysdir: loading libSystem")
		return
	}
	purego.RegisterLibFunc(&startEnumeration, lib, "sysdir_start_search_path_enumeration")
	purego.RegisterLibFunc(&nextEnumeration, lib, "sysdir_get_next_search_path_enumeration")
}

func domainMask(d provider.Domain) uint32 {
	switch d {
	case provider.DomainLocal:
		return maskLocal
	case provider.DomainNetwork:
		return maskNetwork
	case provider.DomainSystem:
		return maskSystem
	default:
		return maskUser
	}
}

// Catalog is the live libSystem-backed provider.Catalog.
type Catalog struct{}

// FirstPath returns the first entry the enumeration yields for dir in
// domain. An enumeration that finishes with an empty buffer means the kind
// has no mapping in this domain; that and every failure mode report
// ok=false with no further detail.
func (Catalog) FirstPath(dir provider.Dir, domain provider.Domain) (string, bool) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", false
	}

	state := startEnumeration(uint32(dir), domainMask(domain))
	if state == 0 {
		return "", false
	}

	var buf [pathMax]byte
	state = nextEnumeration(state, &buf[0])
	if state == 0 && buf[0] == 0 {
		return "", false
	}

	end := bytes.IndexByte(buf[:], 0)
	if end <= 0 {
		return "", false
	}
	return string(buf[:end]), true
}
