package argfile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/argv"
	"github.com/vk/argv/argfile"
	"github.com/vk/argv/internal/testutil"
)

const sampleArgfile = `
option "verbose" {
  aliases     = ["v"]
  type        = "bool"
  default     = false
  description = "enable verbose output"
}

option "port" {
  aliases = ["p"]
  type    = "number"
  default = 8080
}

option "config" {
  aliases     = ["c"]
  type        = "string"
  required    = true
  description = "path to the configuration file"
}
`

func TestLoad(t *testing.T) {
	t.Parallel()

	path := testutil.WriteArgfile(t, "options.hcl", sampleArgfile)

	spec, err := argfile.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, spec.Options, 3)

	verbose, ok := spec.Lookup("verbose")
	require.True(t, ok)
	assert.Equal(t, []string{"v"}, verbose.Aliases)
	assert.False(t, verbose.Required)
	assert.True(t, verbose.HasDefault())

	config, ok := spec.Lookup("config")
	require.True(t, ok)
	assert.True(t, config.Required)
	assert.False(t, config.HasDefault())

	// Declaration order is preserved across blocks.
	assert.Equal(t, "verbose", spec.Options[0].Name)
	assert.Equal(t, "port", spec.Options[1].Name)
	assert.Equal(t, "config", spec.Options[2].Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		errPart string
	}{
		{
			name:    "unknown type keyword",
			src:     "option \"x\" {\n  type = \"duration\"\n}\n",
			errPart: "unknown option type",
		},
		{
			name:    "default does not fit declared type",
			src:     "option \"x\" {\n  type    = \"number\"\n  default = \"not a number\"\n}\n",
			errPart: "default is not a",
		},
		{
			name:    "duplicate option name",
			src:     "option \"x\" {}\noption \"x\" {}\n",
			errPart: "declared more than once",
		},
		{
			name:    "malformed hcl",
			src:     "option \"x\" {\n",
			errPart: "failed to parse",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteArgfile(t, "bad.hcl", tc.src)

			_, err := argfile.Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoadDir_MergesInPathOrder(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteArgfileTree(t, map[string]string{
		"10-base.hcl":     "option \"alpha\" {}\n",
		"20-extra.hcl":    "option \"beta\" {}\n",
		"nested/more.hcl": "option \"gamma\" {}\n",
		"ignored.txt":     "not hcl\n",
	})

	spec, err := argfile.LoadDir(context.Background(), dir)
	require.NoError(t, err)

	names := make([]string, len(spec.Options))
	for i, opt := range spec.Options {
		names[i] = opt.Name
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestSpec_Bind(t *testing.T) {
	t.Parallel()

	spec, err := argfile.Decode(context.Background(), "test.hcl", []byte(sampleArgfile))
	require.NoError(t, err)

	t.Run("aliases are registered", func(t *testing.T) {
		t.Parallel()

		a, err := spec.Bind([]string{"-v", "-c", "app.conf"})
		require.NoError(t, err)

		on, ok := argv.Get[bool](a, "verbose")
		require.True(t, ok)
		assert.True(t, on)

		path, ok := argv.Get[string](a, "config")
		require.True(t, ok)
		assert.Equal(t, "app.conf", path)
	})

	t.Run("missing required option", func(t *testing.T) {
		t.Parallel()

		_, err := spec.Bind([]string{"-v"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required option(s): config")
	})

	t.Run("required satisfied through an alias", func(t *testing.T) {
		t.Parallel()

		_, err := spec.Bind([]string{"--c=app.conf"})
		require.NoError(t, err)
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	spec, err := argfile.Decode(context.Background(), "test.hcl", []byte(sampleArgfile))
	require.NoError(t, err)

	port, ok := argfile.Default[int](spec, "port")
	require.True(t, ok)
	assert.Equal(t, 8080, port)

	verbose, ok := argfile.Default[bool](spec, "verbose")
	require.True(t, ok)
	assert.False(t, verbose)

	_, ok = argfile.Default[string](spec, "config")
	assert.False(t, ok, "config declares no default")

	_, ok = argfile.Default[int](spec, "nonexistent")
	assert.False(t, ok)
}

func TestGetOr(t *testing.T) {
	t.Parallel()

	spec, err := argfile.Decode(context.Background(), "test.hcl", []byte(sampleArgfile))
	require.NoError(t, err)

	a, err := spec.Bind([]string{"-c", "app.conf"})
	require.NoError(t, err)

	// Not on the command line: the argfile default wins over the fallback.
	assert.Equal(t, 8080, argfile.GetOr(spec, a, "port", 1))

	// On the command line under an alias: the command line wins.
	b, err := spec.Bind([]string{"-c", "app.conf", "-p", "9090"})
	require.NoError(t, err)
	assert.Equal(t, 9090, argfile.GetOr(spec, b, "port", 1))

	// Unknown everywhere: the fallback wins.
	assert.Equal(t, 3, argfile.GetOr(spec, a, "workers", 3))
}

func TestSpec_Usage(t *testing.T) {
	t.Parallel()

	spec, err := argfile.Decode(context.Background(), "test.hcl", []byte(sampleArgfile))
	require.NoError(t, err)

	usage := spec.Usage()
	assert.Contains(t, usage, "--verbose, -v")
	assert.Contains(t, usage, "enable verbose output")
	assert.Contains(t, usage, "--config, -c")
	assert.Contains(t, usage, "required")
	assert.Contains(t, usage, "default 8080")
}
