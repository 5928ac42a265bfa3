package provider

import (
	"sync/atomic"

	"github.com/thoreinstein/sysdirs/internal/resolve"
)

// Domain selects the scope for Apple standard-directory lookups. It is a
// process-wide selector: changing it affects subsequent lookups only.
type Domain int32

const (
	DomainUser Domain = iota
	DomainLocal
	DomainNetwork
	DomainSystem
)

// Dir identifies an entry in the Apple standard-directory catalog. Values
// match the sysdir_search_path_directory_t constants.
type Dir uint32

const (
	DirLibrary            Dir = 5
	DirDocument           Dir = 9
	DirDesktop            Dir = 12
	DirCaches             Dir = 13
	DirApplicationSupport Dir = 14
	DirDownloads          Dir = 15
	DirMovies             Dir = 17
	DirMusic              Dir = 18
	DirPictures           Dir = 19
	DirSharedPublic       Dir = 21
)

// Catalog is the narrow boundary to the native standard-directory API.
//
// FirstPath returns the first entry the OS reports for dir in domain. The
// value is raw: the user domain yields "~"-relative paths that the caller
// expands. ok is false both when the kind has no mapping in the domain and
// when the native call fails; the two are deliberately indistinguishable.
type Catalog interface {
	FirstPath(dir Dir, domain Domain) (string, bool)
}

// Apple resolves directories through the standard-directory catalog, with
// home and temp coming from the environment as the catalog carries neither.
// The mobile variant restricts lookups to what the iOS-family sandbox
// exposes to applications.
type Apple struct {
	env     resolve.Env
	catalog Catalog
	mobile  bool
	domain  atomic.Int32
}

// NewApple returns the macOS provider. The domain starts at DomainUser.
func NewApple(env resolve.Env, catalog Catalog) *Apple {
	return &Apple{env: env, catalog: catalog}
}

// NewAppleMobile returns the iOS-family provider: user directories other
// than Documents do not exist inside the app sandbox.
func NewAppleMobile(env resolve.Env, catalog Catalog) *Apple {
	return &Apple{env: env, catalog: catalog, mobile: true}
}

// SetDomain switches the search domain for subsequent lookups. Concurrent
// readers are safe; racing writers get last-write-wins.
func (a *Apple) SetDomain(d Domain) {
	a.domain.Store(int32(d))
}

var appleTable map[Kind]func(*Apple) string

// Assigned in init to break the compile-time initialization cycle between
// the table, the derived entries, and Lookup.
func init() {
	appleTable = map[Kind]func(*Apple) string{
		Home:        (*Apple).home,
		Cache:       appleCatalog(DirCaches),
		Config:      appleCatalog(DirApplicationSupport),
		ConfigLocal: appleCatalog(DirApplicationSupport),
		Data:        appleCatalog(DirApplicationSupport),
		DataLocal:   appleCatalog(DirApplicationSupport),
		Preference:  appleDerived(Library, "Preferences"),
		Audio:       appleDesktopOnly(DirMusic),
		Desktop:     appleDesktopOnly(DirDesktop),
		Document:    appleCatalog(DirDocument),
		Download:    appleDesktopOnly(DirDownloads),
		Font:        (*Apple).font,
		Picture:     appleDesktopOnly(DirPictures),
		Public:      appleDesktopOnly(DirSharedPublic),
		Video:       appleDesktopOnly(DirMovies),
		Temp:        (*Apple).temp,
		Library:     appleCatalog(DirLibrary),
	}
}

// Lookup resolves kind in the current domain. Executable, runtime, state,
// and template have no Apple mapping and stay absent.
func (a *Apple) Lookup(kind Kind) string {
	fn, ok := appleTable[kind]
	if !ok {
		return ""
	}
	return fn(a)
}

// home comes from $HOME; the catalog has no home entry. On the iOS family
// the sandbox container sets $HOME, so this covers both variants.
func (a *Apple) home() string {
	return resolve.Get(a.env, "HOME")
}

func (a *Apple) temp() string {
	return resolve.Get(a.env, "TMPDIR")
}

// font is derived from Library rather than the catalog, which has no font
// entry. Not exposed inside the mobile sandbox.
func (a *Apple) font() string {
	if a.mobile {
		return ""
	}
	return joinIfPresent(a.Lookup(Library), "Fonts")
}

// catalogPath takes the first entry for dir in the current domain and
// expands a "~"-relative result (the user domain reports those) against
// $HOME.
func (a *Apple) catalogPath(dir Dir) string {
	raw, ok := a.catalog.FirstPath(dir, Domain(a.domain.Load()))
	if !ok {
		return ""
	}
	return resolve.ExpandTilde(raw, a.home())
}

func appleCatalog(dir Dir) func(*Apple) string {
	return func(a *Apple) string {
		return a.catalogPath(dir)
	}
}

// appleDesktopOnly marks catalog entries that exist on macOS but not
// inside the iOS-family sandbox.
func appleDesktopOnly(dir Dir) func(*Apple) string {
	return func(a *Apple) string {
		if a.mobile {
			return ""
		}
		return a.catalogPath(dir)
	}
}

func appleDerived(base Kind, segment string) func(*Apple) string {
	return func(a *Apple) string {
		return joinIfPresent(a.Lookup(base), segment)
	}
}
