package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/bookbind/internal/cli"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, logs, "/usr/bin/bookbind", []string{"in.pdf", "out.pdf", "-p", "32"}, nil)

	require.NoError(t, err)
	require.Empty(t, out.String(), "nothing should be printed to stdout on success")
	require.Contains(t, logs.String(), "pages_per_signature=32")
	require.Contains(t, logs.String(), "source=in.pdf")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, "/usr/bin/bookbind", []string{"--help"}, nil)

	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage: bookbind SOURCE DEST [-p PAGES]")
}

func TestRun_ValidationError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, "bookbind", []string{"in.pdf"}, nil)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "please supply a destination filename")
	require.Contains(t, exitErr.Message, "Usage: bookbind")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, "bookbind", []string{"in.pdf", "out.pdf", "--this-is-not-a-valid-flag"}, nil)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_NegativePagesRejectedByConfig(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, "bookbind", []string{"in.pdf", "out.pdf", "-p", "-16"}, nil)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Contains(t, exitErr.Message, "positive multiple of 8")
}

func TestRun_SettingsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log_format = "json"`), 0600), "failed to set up test file")

	logs := &bytes.Buffer{}
	err := run(&bytes.Buffer{}, logs, "bookbind", []string{"in.pdf", "out.pdf"}, []string{"BOOKBIND_SETTINGS=" + path})

	require.NoError(t, err)
	require.Contains(t, logs.String(), `"pages_per_signature":16`)
}

func TestRun_BadSettingsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "chatty"`), 0600), "failed to set up test file")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, "bookbind", []string{"in.pdf", "out.pdf"}, []string{"BOOKBIND_SETTINGS=" + path})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log level")
}
