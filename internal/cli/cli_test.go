package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArguments(t *testing.T) {
	conf, exit, err := Parse(nil, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, 800, conf.Width)
	assert.Equal(t, 600, conf.Height)
	assert.Empty(t, conf.AssetsDir)
	assert.Equal(t, "escape", conf.QuitKey)
}

func TestParse_Flags(t *testing.T) {
	conf, _, err := Parse([]string{"-assets", "/tmp/shaders", "-width", "1024", "-log-level", "DEBUG", "-log-format", "json"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/shaders", conf.AssetsDir)
	assert.Equal(t, 1024, conf.Width)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "json", conf.LogFormat)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	conf, exit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, conf)
	assert.Contains(t, out.String(), "mesh shader")
}

func TestParse_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"extra"},
		{"-log-format", "xml"},
		{"-log-level", "trace"},
		{"-width", "-5"},
		{"-width", "0"},
		{"-height", "0"},
		{"-nope"},
	} {
		_, _, err := Parse(args, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, "args %v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}
