package provider

import (
	"github.com/thoreinstein/sysdirs/internal/resolve"
)

// Windows resolves directories through the known-folder environment
// variables (USERPROFILE, APPDATA, LOCALAPPDATA, PUBLIC, TEMP/TMP). These
// mirror the Known Folder system for the locations this package exposes
// without requiring a native call.
type Windows struct {
	env resolve.Env
}

// NewWindows returns the Windows-family provider.
func NewWindows(env resolve.Env) *Windows {
	return &Windows{env: env}
}

var windowsTable = map[Kind]func(*Windows) string{
	Home:        winEnv("USERPROFILE"),
	Cache:       winEnv("LOCALAPPDATA"),
	Config:      winEnv("APPDATA"),
	ConfigLocal: winEnv("LOCALAPPDATA"),
	Data:        winEnv("APPDATA"),
	DataLocal:   winEnv("LOCALAPPDATA"),
	Preference:  winEnv("APPDATA"),
	Audio:       winHome("Music"),
	Desktop:     winHome("Desktop"),
	Document:    winHome("Documents"),
	Download:    winHome("Downloads"),
	Picture:     winHome("Pictures"),
	Public:      winEnv("PUBLIC"),
	Template:    (*Windows).template,
	Video:       winHome("Videos"),
	Temp:        (*Windows).temp,
}

// Lookup resolves kind from the known-folder environment. Executable,
// runtime, state, font, and library have no Windows mapping and stay
// absent.
func (w *Windows) Lookup(kind Kind) string {
	fn, ok := windowsTable[kind]
	if !ok {
		return ""
	}
	return fn(w)
}

// template lives under the roaming profile, not the user root.
func (w *Windows) template() string {
	return joinIfPresent(resolve.Get(w.env, "APPDATA"), "Microsoft", "Windows", "Templates")
}

// temp prefers TEMP and accepts TMP, matching cmd.exe resolution order.
func (w *Windows) temp() string {
	if val := resolve.Get(w.env, "TEMP"); val != "" {
		return val
	}
	return resolve.Get(w.env, "TMP")
}

func winEnv(key string) func(*Windows) string {
	return func(w *Windows) string {
		return resolve.Get(w.env, key)
	}
}

func winHome(folder string) func(*Windows) string {
	return func(w *Windows) string {
		return joinIfPresent(resolve.Get(w.env, "USERPROFILE"), folder)
	}
}
