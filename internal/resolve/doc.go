// Package resolve implements the pure directory-resolution policies shared
// by every platform family: tilde expansion of user-supplied path values and
// the two environment-variable lookup policies from the XDG Base Directory
// Specification (override with a mandated default, and override with no
// default).
//
// # Absence Convention
//
// Throughout this package an empty string means "no path". Absence is a
// normal result ("this directory is not defined in this environment"), not
// an error, so every function returns a plain string.
//
// # Environment Access
//
// Nothing in this package reads the process environment directly. Callers
// fetch values through the [Env] interface and pass them in, keeping the
// policies deterministic and independently testable:
//
//	env := resolve.OSEnv{}
//	val, _ := env.Lookup("XDG_CACHE_HOME")
//	dir := resolve.WithDefault(val, home, ".cache")
//
// Per the XDG specification, an environment variable set to the empty
// string is treated the same as an unset variable.
package resolve
