package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/provider"
)

func lookup(kind provider.Kind) Path {
	return Path(active.Lookup(kind))
}

// HomeDir returns the user's home directory.
//
// Platform values:
//   - Linux:   $HOME
//   - macOS:   $HOME
//   - Windows: %USERPROFILE%
//   - iOS:     the sandbox container ($HOME)
//   - Android: the sandbox files root (after [InitSandbox])
func HomeDir() Path {
	return lookup(provider.Home)
}

// CacheDir returns the base directory for user-specific cached data.
//
// Platform values:
//   - Linux:   $XDG_CACHE_HOME, else ~/.cache
//   - macOS:   ~/Library/Caches
//   - Windows: %LOCALAPPDATA%
//   - iOS:     <sandbox>/Library/Caches
//   - Android: the sandbox cache root, else <filesDir>/cache
func CacheDir() Path {
	return lookup(provider.Cache)
}

// ConfigDir returns the base directory for user-specific configuration,
// roaming where the platform makes the distinction.
//
// Platform values:
//   - Linux:   $XDG_CONFIG_HOME, else ~/.config
//   - macOS:   ~/Library/Application Support
//   - Windows: %APPDATA%
//   - iOS:     <sandbox>/Library/Application Support
//   - Android: the sandbox files root
func ConfigDir() Path {
	return lookup(provider.Config)
}

// ConfigLocalDir is [ConfigDir] pinned to this machine: %LOCALAPPDATA% on
// Windows, identical to ConfigDir everywhere else.
func ConfigLocalDir() Path {
	return lookup(provider.ConfigLocal)
}

// DataDir returns the base directory for user-specific application data,
// roaming where the platform makes the distinction.
//
// Platform values:
//   - Linux:   $XDG_DATA_HOME, else ~/.local/share
//   - macOS:   ~/Library/Application Support
//   - Windows: %APPDATA%
//   - iOS:     <sandbox>/Library/Application Support
//   - Android: the sandbox files root
func DataDir() Path {
	return lookup(provider.Data)
}

// DataLocalDir is [DataDir] pinned to this machine: %LOCALAPPDATA% on
// Windows, identical to DataDir everywhere else.
func DataLocalDir() Path {
	return lookup(provider.DataLocal)
}

// ExecutableDir returns the directory for user-installed executables:
// $XDG_BIN_HOME, else ~/.local/bin. Linux and the Unix fallback only.
func ExecutableDir() Path {
	return lookup(provider.Executable)
}

// PreferenceDir returns the directory for user preference files.
//
// Platform values:
//   - Linux:   $XDG_CONFIG_HOME, else ~/.config
//   - macOS:   ~/Library/Preferences
//   - Windows: %APPDATA%
//   - iOS:     <sandbox>/Library/Preferences
//   - Android: the sandbox files root
func PreferenceDir() Path {
	return lookup(provider.Preference)
}

// RuntimeDir returns $XDG_RUNTIME_DIR. There is no default: an unset
// variable means no runtime directory. Linux and the Unix fallback only.
func RuntimeDir() Path {
	return lookup(provider.Runtime)
}

// StateDir returns the directory for user-specific state data (logs,
// history, undo files): $XDG_STATE_HOME, else ~/.local/state. Linux and
// the Unix fallback only.
func StateDir() Path {
	return lookup(provider.State)
}

// AudioDir returns the user's music directory ($XDG_MUSIC_DIR, ~/Music,
// %USERPROFILE%\Music). Desktop platforms only.
func AudioDir() Path {
	return lookup(provider.Audio)
}

// DesktopDir returns the user's desktop directory. Desktop platforms only.
func DesktopDir() Path {
	return lookup(provider.Desktop)
}

// DocumentDir returns the user's documents directory; on iOS this is the
// sandbox Documents directory.
func DocumentDir() Path {
	return lookup(provider.Document)
}

// DownloadDir returns the user's downloads directory. Desktop platforms
// only.
func DownloadDir() Path {
	return lookup(provider.Download)
}

// FontDir returns the user's font directory: <data>/fonts on Linux and the
// Unix fallback, ~/Library/Fonts on macOS, absent elsewhere.
func FontDir() Path {
	return lookup(provider.Font)
}

// PictureDir returns the user's pictures directory. Desktop platforms only.
func PictureDir() Path {
	return lookup(provider.Picture)
}

// PublicDir returns the user's public-share directory. Desktop platforms
// only.
func PublicDir() Path {
	return lookup(provider.Public)
}

// TemplateDir returns the user's document-template directory. Linux and
// Windows only.
func TemplateDir() Path {
	return lookup(provider.Template)
}

// VideoDir returns the user's videos directory (~/Movies on macOS).
// Desktop platforms only.
func VideoDir() Path {
	return lookup(provider.Video)
}

// TempDir returns the directory for temporary files.
//
// Platform values:
//   - Linux:   $TMPDIR, else /tmp
//   - macOS:   $TMPDIR
//   - Windows: %TEMP%, else %TMP%
//   - iOS:     $TMPDIR (the sandbox tmp directory)
//   - Android: <filesDir>/tmp
func TempDir() Path {
	return lookup(provider.Temp)
}

// LibraryDir returns the Library directory on Apple platforms (~/Library
// on macOS, <sandbox>/Library on iOS). Absent everywhere else.
func LibraryDir() Path {
	return lookup(provider.Library)
}
