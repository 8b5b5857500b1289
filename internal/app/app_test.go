package app

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/argv/internal/testutil"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	config, err := NewConfig(cfg)
	require.NoError(t, err)

	inspector, err := New(out, logs, config)
	require.NoError(t, err)
	return inspector, out
}

func TestNewConfig_RejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Output: "yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	inspector, out := newTestApp(t, Config{
		Output: "text",
		Tokens: []string{"pos1", "--flag", "--", "--not-a-flag", "pos2"},
	})

	require.NoError(t, inspector.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "options (1):")
	assert.Contains(t, got, "flag")
	assert.Contains(t, got, "(bare flag)")
	assert.Contains(t, got, `[0] "pos1"`)
	assert.Contains(t, got, `"--not-a-flag"`)
	assert.Contains(t, got, `"pos2"`)
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	inspector, out := newTestApp(t, Config{
		Output: "json",
		Tokens: []string{"--foo=bar", "--foo", "pos"},
	})

	require.NoError(t, inspector.Run(context.Background()))

	var rep report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))

	require.Len(t, rep.Options["foo"], 2)
	assert.Equal(t, occurrence{Value: "bar", HasValue: true}, rep.Options["foo"][0])
	assert.Equal(t, occurrence{HasValue: false}, rep.Options["foo"][1])
	assert.Equal(t, []string{"pos"}, rep.Positionals)
	assert.Empty(t, rep.Skipped)
}

func TestRun_WithArgfile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteArgfile(t, "options.hcl", `
option "config" {
  aliases  = ["c"]
  required = true
}
`)

	t.Run("required satisfied via alias", func(t *testing.T) {
		t.Parallel()

		inspector, out := newTestApp(t, Config{
			Output:      "json",
			ArgfilePath: path,
			Tokens:      []string{"-c", "app.conf"},
		})

		require.NoError(t, inspector.Run(context.Background()))

		var rep report
		require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
		require.Len(t, rep.Options["c"], 1)
		assert.Equal(t, "app.conf", rep.Options["c"][0].Value)
	})

	t.Run("missing required option fails the run", func(t *testing.T) {
		t.Parallel()

		inspector, _ := newTestApp(t, Config{
			Output:      "text",
			ArgfilePath: path,
			Tokens:      []string{"pos"},
		})

		err := inspector.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required option(s): config")
	})
}

func TestNew_BadArgfilePath(t *testing.T) {
	t.Parallel()

	config, err := NewConfig(Config{
		Output:      "text",
		ArgfilePath: "/nonexistent/options.hcl",
	})
	require.NoError(t, err)

	_, err = New(&bytes.Buffer{}, &bytes.Buffer{}, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read argfile path")
}
