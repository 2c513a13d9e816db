package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Flags(t *testing.T) {
	t.Parallel()

	input := filepath.Join(t.TempDir(), "syscalls.h")
	require.NoError(t, os.WriteFile(input, []byte(
		"SYSCALL_MACRO(CLOSE, close, 3, 1, 1) ENTER_PARAM_MACRO(unsigned int, fd) EXIT_PARAM_MACRO(int, ret)\n"), 0o644))

	outDir := t.TempDir()

	var out bytes.Buffer

	cmd, err := newRootCommand()
	require.NoError(t, err)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-i", input, "-o", outDir})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(outDir, "003-close.bpf.c"))
	assert.Contains(t, out.String(), "generated 1 files into "+outDir)
}

func TestRootCommand_MissingFlags(t *testing.T) {
	t.Parallel()

	cmd, err := newRootCommand()
	require.NoError(t, err)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", t.TempDir()})

	err = cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, `required flag(s) "input" not set`, err.Error())
}

func TestRootCommand_MissingInputFile(t *testing.T) {
	t.Parallel()

	cmd, err := newRootCommand()
	require.NoError(t, err)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", filepath.Join(t.TempDir(), "missing.h"), "-o", t.TempDir()})

	err = cmd.Execute()
	require.ErrorIs(t, err, ErrInputMissing)
}

func TestRootCommand_Env(t *testing.T) {
	input := filepath.Join(t.TempDir(), "syscalls.h")
	require.NoError(t, os.WriteFile(input, []byte(
		"SYSCALL_MACRO(DUP, dup, 32, 1, 1) ENTER_PARAM_MACRO(unsigned int, fildes) EXIT_PARAM_MACRO(int, fd)\n"), 0o644))

	outDir := t.TempDir()

	t.Setenv("PROBEGEN_OUTPUT", outDir)
	t.Setenv("PROBEGEN_DRY_RUN", "true")

	var out bytes.Buffer

	cmd, err := newRootCommand()
	require.NoError(t, err)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--input", input})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "would generate: "+filepath.Join(outDir, "032-dup.bpf.c"))
	assert.NoFileExists(t, filepath.Join(outDir, "032-dup.bpf.c"))
}
