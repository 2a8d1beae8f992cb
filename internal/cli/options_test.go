package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolagi/unidiff/internal/cli"
)

func TestParseDefaults(t *testing.T) {
	o, err := cli.Parse([]string{"a.txt", "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", o.Original)
	assert.Equal(t, "b.txt", o.Modified)
	assert.Equal(t, 3, o.Lines)
	assert.False(t, o.Color)
}

func TestParseFlags(t *testing.T) {
	o, err := cli.Parse([]string{"-c", "-n", "5", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.True(t, o.Color)
	assert.Equal(t, 5, o.Lines)
}

func TestParseLongFlagEquals(t *testing.T) {
	o, err := cli.Parse([]string{"--lines=7", "--color", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, 7, o.Lines)
	assert.True(t, o.Color)
}

func TestParseLinesAliasLastWins(t *testing.T) {
	o, err := cli.Parse([]string{"-n", "5", "--lines", "9", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, 9, o.Lines)

	o, err = cli.Parse([]string{"--lines", "9", "-n", "5", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, 5, o.Lines)
}

func TestParseOutFileDisablesColor(t *testing.T) {
	o, err := cli.Parse([]string{"-c", "-o", "out.txt", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.False(t, o.Color)
	assert.Equal(t, "out.txt", o.OutFile)
}

func TestParseHelp(t *testing.T) {
	o, err := cli.Parse([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, o.Help)
}

func TestParseWrongPositionalCount(t *testing.T) {
	_, err := cli.Parse([]string{"a.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrArgument)

	_, err = cli.Parse([]string{"a.txt", "b.txt", "c.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrArgument)
}

func TestParseBadLines(t *testing.T) {
	_, err := cli.Parse([]string{"-n", "not-a-number", "a.txt", "b.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrArgument)
}

func TestParseNegativeLinesRejected(t *testing.T) {
	_, err := cli.Parse([]string{"-n", "-1", "a.txt", "b.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrArgument)
}

func TestParseInvalidFilename(t *testing.T) {
	_, err := cli.Parse([]string{"CON", "b.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrArgument)
}

func TestNewWithOptions(t *testing.T) {
	o := cli.New(cli.WithColor(true), cli.WithLines(10))
	assert.True(t, o.Color)
	assert.Equal(t, 10, o.Lines)
}

func TestValidateFilename(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"a.txt", true},
		{"dir/sub/a.txt", true},
		{"", false},
		{"con", false},
		{"NUL", false},
		{"a?.txt", false},
		{strings.Repeat("a", 300) + ".txt", false},
	}
	for _, c := range cases {
		err := cli.ValidateFilename(c.name)
		if c.valid {
			assert.NoError(t, err, c.name)
		} else {
			assert.Error(t, err, c.name)
		}
	}
}
