package opt

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	var o Options
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	require.NoError(t, o.Resolve(flags))
	return &o
}

func TestDefaults(t *testing.T) {
	o := parse(t)
	assert.Equal(t, 19, o.Size)
	assert.Equal(t, 0, o.Handicap)
	assert.False(t, o.Unicode)

	cfg := o.BuildConfig(nil)
	assert.Equal(t, 19, cfg.Height)
	assert.Equal(t, 19, cfg.Width)
}

func TestFlagsOverrideConfigAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goban.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 13\nhandicap: 4\nunicode: true\ndb: games.db\n"), 0644))
	t.Setenv("GOBAN_HANDICAP", "2")
	t.Setenv("GOBAN_WIDTH", "7")

	o := parse(t, "-config", path)
	assert.Equal(t, 13, o.Size)
	assert.Equal(t, 2, o.Handicap, "environment beats config file")
	assert.Equal(t, 7, o.Width)
	assert.True(t, o.Unicode)
	assert.Equal(t, "games.db", o.DB)

	cfg := o.BuildConfig(nil)
	assert.Equal(t, 13, cfg.Height)
	assert.Equal(t, 7, cfg.Width)

	o = parse(t, "-config", path, "-size", "9", "-handicap", "3", "-width", "0")
	assert.Equal(t, 9, o.Size)
	assert.Equal(t, 3, o.Handicap)
	assert.Equal(t, 0, o.Width)
}

func TestMissingConfig(t *testing.T) {
	var o Options
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(flags)
	require.NoError(t, flags.Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}))
	assert.Error(t, o.Resolve(flags))
}
