package provider

import (
	"github.com/thoreinstein/sysdirs/internal/resolve"
)

// XDG resolves directories for POSIX systems following the freedesktop.org
// base-directory and user-directory specifications. It backs both the Linux
// family and the generic Unix fallback family; the fallback drops the XDG
// user directories, which are only meaningful where xdg-user-dirs is
// expected to exist.
type XDG struct {
	env      resolve.Env
	userDirs bool
}

// NewXDG returns the full Linux-family provider.
func NewXDG(env resolve.Env) *XDG {
	return &XDG{env: env, userDirs: true}
}

// NewUnix returns the fallback provider for other Unix-like systems
// (FreeBSD, OpenBSD, etc.): base directories only.
func NewUnix(env resolve.Env) *XDG {
	return &XDG{env: env}
}

// xdgTable maps each kind to its resolution rule. Base directories carry
// spec-mandated defaults relative to $HOME; user directories have none.
var xdgTable map[Kind]func(*XDG) string

// Assigned in init to break the compile-time initialization cycle between
// the table, the derived entries, and Lookup.
func init() {
	xdgTable = map[Kind]func(*XDG) string{
		Home:        (*XDG).home,
		Cache:       xdgBase("XDG_CACHE_HOME", ".cache"),
		Config:      xdgBase("XDG_CONFIG_HOME", ".config"),
		ConfigLocal: xdgBase("XDG_CONFIG_HOME", ".config"),
		Data:        xdgBase("XDG_DATA_HOME", ".local/share"),
		DataLocal:   xdgBase("XDG_DATA_HOME", ".local/share"),
		Executable:  xdgBase("XDG_BIN_HOME", ".local/bin"),
		Preference:  xdgBase("XDG_CONFIG_HOME", ".config"),
		Runtime:     xdgBare("XDG_RUNTIME_DIR"),
		State:       xdgBase("XDG_STATE_HOME", ".local/state"),
		Audio:       xdgUser("XDG_MUSIC_DIR"),
		Desktop:     xdgUser("XDG_DESKTOP_DIR"),
		Document:    xdgUser("XDG_DOCUMENTS_DIR"),
		Download:    xdgUser("XDG_DOWNLOAD_DIR"),
		Font:        xdgDerived(Data, "fonts"),
		Picture:     xdgUser("XDG_PICTURES_DIR"),
		Public:      xdgUser("XDG_PUBLICSHARE_DIR"),
		Template:    xdgUser("XDG_TEMPLATES_DIR"),
		Video:       xdgUser("XDG_VIDEOS_DIR"),
		Temp:        (*XDG).temp,
	}
}

// Lookup resolves kind against the current environment. Library has no
// table entry: it is an Apple concept and always absent here.
func (x *XDG) Lookup(kind Kind) string {
	fn, ok := xdgTable[kind]
	if !ok {
		return ""
	}
	return fn(x)
}

func (x *XDG) home() string {
	return resolve.Get(x.env, "HOME")
}

// temp honors $TMPDIR (tilde-expanded) and falls back to /tmp.
func (x *XDG) temp() string {
	if val := resolve.Get(x.env, "TMPDIR"); val != "" {
		if p := resolve.ExpandTilde(val, x.home()); p != "" {
			return p
		}
	}
	return "/tmp"
}

func xdgBase(key, suffix string) func(*XDG) string {
	return func(x *XDG) string {
		return resolve.WithDefault(resolve.Get(x.env, key), x.home(), suffix)
	}
}

// xdgBare is the no-default policy for base directories that exist on every
// family variant, such as the runtime directory.
func xdgBare(key string) func(*XDG) string {
	return func(x *XDG) string {
		return resolve.NoDefault(resolve.Get(x.env, key), x.home())
	}
}

// xdgUser is the no-default policy for XDG user directories; absent
// entirely on the Unix fallback family.
func xdgUser(key string) func(*XDG) string {
	return func(x *XDG) string {
		if !x.userDirs {
			return ""
		}
		return resolve.NoDefault(resolve.Get(x.env, key), x.home())
	}
}

func xdgDerived(base Kind, segment string) func(*XDG) string {
	return func(x *XDG) string {
		return joinIfPresent(x.Lookup(base), segment)
	}
}
