package sysdirs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allQueries = map[string]func() Path{
	"home":         HomeDir,
	"cache":        CacheDir,
	"config":       ConfigDir,
	"config-local": ConfigLocalDir,
	"data":         DataDir,
	"data-local":   DataLocalDir,
	"executable":   ExecutableDir,
	"preference":   PreferenceDir,
	"runtime":      RuntimeDir,
	"state":        StateDir,
	"audio":        AudioDir,
	"desktop":      DesktopDir,
	"document":     DocumentDir,
	"download":     DownloadDir,
	"font":         FontDir,
	"picture":      PictureDir,
	"public":       PublicDir,
	"template":     TemplateDir,
	"video":        VideoDir,
	"temp":         TempDir,
	"library":      LibraryDir,
}

func TestQueriesReturnAbsoluteOrAbsent(t *testing.T) {
	for name, query := range allQueries {
		t.Run(name, func(t *testing.T) {
			p := query()
			if p.Present() {
				assert.True(t, filepath.IsAbs(p.String()), "got %q", p)
			}
		})
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	for name, query := range allQueries {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, query(), query())
		})
	}
}
