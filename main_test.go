package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study_notes/notes"
)

func writeMockConfig(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"llm":{"provider":"mock"}}`), 0o644))
	return p
}

func TestRun_WrongArity(t *testing.T) {
	for _, args := range [][]string{
		{"study_notes"},
		{"study_notes", "a.txt", "b.txt"},
	} {
		dir := t.TempDir()
		chdir(t, dir)
		var stderr bytes.Buffer

		code := run(context.Background(), args, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "Usage: study_notes")
		_, err := os.Stat(filepath.Join(dir, notes.OutputFile))
		assert.True(t, os.IsNotExist(err), "no output file expected for %v", args)
	}
}

func TestRun_HelpFlag(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"study_notes", "-h"}, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Usage: study_notes")
	_, err := os.Stat(filepath.Join(dir, notes.OutputFile))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MockProvider(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfg := writeMockConfig(t, dir)
	require.NoError(t, os.WriteFile("topics.txt", []byte("Photosynthesis\nMitosis\n"), 0o644))
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"study_notes", "-config", cfg, "-html", "topics.txt"}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	b, err := os.ReadFile(notes.OutputFile)
	require.NoError(t, err)
	assert.Equal(t,
		"# Study Notes\n\n## Photosynthesis\n\nPlaceholder explanation for Photosynthesis.\n\n## Mitosis\n\nPlaceholder explanation for Mitosis.\n\n",
		string(b))
	_, err = os.Stat(notes.HTMLFile)
	assert.NoError(t, err)
	assert.Contains(t, stderr.String(), "[cli] done: 2 topics, 2 with content, 0 failed")
}

func TestRun_MissingTopicsFileStillSucceeds(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfg := writeMockConfig(t, dir)
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"study_notes", "-config", cfg, "missing.txt"}, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "open topics file")
	_, err := os.Stat(notes.OutputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_BadConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"llm":{"provider":"bard"}}`), 0o644))
	require.NoError(t, os.WriteFile("topics.txt", []byte("x\n"), 0o644))
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"study_notes", "-config", p, "topics.txt"}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "llm provider bard not supported")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the original one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
