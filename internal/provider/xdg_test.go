package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/sysdirs/internal/resolve"
)

func TestXDGDefaults(t *testing.T) {
	x := NewXDG(resolve.MapEnv{"HOME": "/home/alice"})

	tests := []struct {
		kind Kind
		want string
	}{
		{Home, "/home/alice"},
		{Cache, "/home/alice/.cache"},
		{Config, "/home/alice/.config"},
		{ConfigLocal, "/home/alice/.config"},
		{Data, "/home/alice/.local/share"},
		{DataLocal, "/home/alice/.local/share"},
		{Executable, "/home/alice/.local/bin"},
		{Preference, "/home/alice/.config"},
		{State, "/home/alice/.local/state"},
		{Font, "/home/alice/.local/share/fonts"},
		{Temp, "/tmp"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, x.Lookup(tt.kind))
		})
	}
}

func TestXDGOverrides(t *testing.T) {
	x := NewXDG(resolve.MapEnv{
		"HOME":            "/home/alice",
		"XDG_CACHE_HOME":  "/fast/cache",
		"XDG_CONFIG_HOME": "~/cfg",
		"XDG_DATA_HOME":   "~/share",
		"XDG_STATE_HOME":  "/var/state",
		"XDG_BIN_HOME":    "~/bin",
		"XDG_RUNTIME_DIR": "/run/user/1000",
		"TMPDIR":          "/scratch",
	})

	assert.Equal(t, "/fast/cache", x.Lookup(Cache))
	assert.Equal(t, "/home/alice/cfg", x.Lookup(Config))
	assert.Equal(t, "/home/alice/share", x.Lookup(Data))
	assert.Equal(t, "/var/state", x.Lookup(State))
	assert.Equal(t, "/home/alice/bin", x.Lookup(Executable))
	assert.Equal(t, "/run/user/1000", x.Lookup(Runtime))
	assert.Equal(t, "/scratch", x.Lookup(Temp))
	// font follows the overridden data dir
	assert.Equal(t, "/home/alice/share/fonts", x.Lookup(Font))
}

func TestXDGNoDefaultKinds(t *testing.T) {
	x := NewXDG(resolve.MapEnv{"HOME": "/home/alice"})

	// Runtime and the user directories never synthesize a path.
	for _, kind := range []Kind{Runtime, Audio, Desktop, Document, Download, Picture, Public, Template, Video} {
		assert.Empty(t, x.Lookup(kind), "kind %s", kind)
	}
}

func TestXDGUserDirs(t *testing.T) {
	x := NewXDG(resolve.MapEnv{
		"HOME":                "/home/alice",
		"XDG_MUSIC_DIR":       "/home/alice/Music",
		"XDG_DESKTOP_DIR":     "~/Desktop",
		"XDG_DOCUMENTS_DIR":   "/home/alice/Documents",
		"XDG_DOWNLOAD_DIR":    "/home/alice/Downloads",
		"XDG_PICTURES_DIR":    "/home/alice/Pictures",
		"XDG_PUBLICSHARE_DIR": "/home/alice/Public",
		"XDG_TEMPLATES_DIR":   "/home/alice/Templates",
		"XDG_VIDEOS_DIR":      "/home/alice/Videos",
	})

	assert.Equal(t, "/home/alice/Music", x.Lookup(Audio))
	assert.Equal(t, "/home/alice/Desktop", x.Lookup(Desktop))
	assert.Equal(t, "/home/alice/Documents", x.Lookup(Document))
	assert.Equal(t, "/home/alice/Downloads", x.Lookup(Download))
	assert.Equal(t, "/home/alice/Pictures", x.Lookup(Picture))
	assert.Equal(t, "/home/alice/Public", x.Lookup(Public))
	assert.Equal(t, "/home/alice/Templates", x.Lookup(Template))
	assert.Equal(t, "/home/alice/Videos", x.Lookup(Video))
}

func TestXDGWithoutHome(t *testing.T) {
	x := NewXDG(resolve.MapEnv{})

	assert.Empty(t, x.Lookup(Home))
	assert.Empty(t, x.Lookup(Cache))
	assert.Empty(t, x.Lookup(Data))
	assert.Empty(t, x.Lookup(Font))
	// temp still falls back to /tmp with no environment at all
	assert.Equal(t, "/tmp", x.Lookup(Temp))

	// an explicit absolute override works without a home
	x = NewXDG(resolve.MapEnv{"XDG_CACHE_HOME": "/var/cache/alice"})
	assert.Equal(t, "/var/cache/alice", x.Lookup(Cache))

	// a tilde override without a home resolves to nothing, not the default
	x = NewXDG(resolve.MapEnv{"XDG_CACHE_HOME": "~/cache"})
	assert.Empty(t, x.Lookup(Cache))
}

func TestXDGTempTildeFallback(t *testing.T) {
	// an unexpandable TMPDIR still falls back to /tmp, unlike the base dirs
	x := NewXDG(resolve.MapEnv{"TMPDIR": "~/scratch"})
	assert.Equal(t, "/tmp", x.Lookup(Temp))

	x = NewXDG(resolve.MapEnv{"HOME": "/home/alice", "TMPDIR": "~/scratch"})
	assert.Equal(t, "/home/alice/scratch", x.Lookup(Temp))
}

func TestXDGLibraryAbsent(t *testing.T) {
	x := NewXDG(resolve.MapEnv{"HOME": "/home/alice"})
	assert.Empty(t, x.Lookup(Library))
}

func TestXDGLookupIsPureOfEnvironment(t *testing.T) {
	env := resolve.MapEnv{"HOME": "/home/alice"}
	x := NewXDG(env)

	assert.Equal(t, "/home/alice/.cache", x.Lookup(Cache))

	// no caching: the next lookup observes the changed environment
	env["XDG_CACHE_HOME"] = "/other"
	assert.Equal(t, "/other", x.Lookup(Cache))
}

func TestUnixFallbackDropsUserDirs(t *testing.T) {
	x := NewUnix(resolve.MapEnv{
		"HOME":          "/home/bob",
		"XDG_MUSIC_DIR": "/home/bob/Music",
	})

	// base directories behave exactly like Linux
	assert.Equal(t, "/home/bob/.cache", x.Lookup(Cache))
	assert.Equal(t, "/home/bob/.local/state", x.Lookup(State))
	assert.Equal(t, "/home/bob/.local/share/fonts", x.Lookup(Font))

	// user directories do not exist on the fallback family, set or not
	for _, kind := range []Kind{Audio, Desktop, Document, Download, Picture, Public, Template, Video} {
		assert.Empty(t, x.Lookup(kind), "kind %s", kind)
	}
}
