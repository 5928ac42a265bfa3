// Package sysdirs resolves well-known user and application directories
// (home, cache, config, data, documents, downloads, temp, ...) in a
// platform-appropriate way.
//
// Locations come from the mechanisms each platform family defines:
//
//   - the XDG Base Directory and XDG user-directory specifications on
//     Linux and other Unix-like systems
//   - the known-folder environment variables on Windows
//   - the standard-directory catalog (sysdir) on macOS and the iOS family
//   - the app sandbox roots on Android, set via [InitSandbox]
//
// The platform family is fixed at build time; js/wasm builds resolve
// nothing.
//
// # Absence
//
// Every query returns a [Path]. An empty Path means the directory concept
// is not defined on this platform or in the current environment; that is a
// normal result callers are expected to handle, not an error:
//
//	cache := sysdirs.CacheDir()
//	// Linux:   /home/alice/.cache
//	// macOS:   /Users/Alice/Library/Caches
//	// Windows: C:\Users\Alice\AppData\Local
//	// Android: <filesDir>/cache (after InitSandbox)
//
// Native lookup failures fold into absence as well; there is deliberately
// no way to distinguish "the platform has no such directory" from "the
// native call failed".
//
// # Chaining
//
// Path supports fluent derivation and on-demand creation:
//
//	dir, err := sysdirs.CacheDir().Join("my-app", "index").Ensure()
//
// [Path.Ensure] is the only operation here that touches the filesystem.
//
// # State and Concurrency
//
// Resolution is a pure function of the environment plus two pieces of
// process-wide state: the Android sandbox roots and the Apple search
// domain. Both follow a set-once-at-startup, read-many pattern; concurrent
// readers are always safe, and racing writers are an accepted sharp edge
// rather than something this package locks against. Tests that mutate
// environment variables must serialize.
package sysdirs
