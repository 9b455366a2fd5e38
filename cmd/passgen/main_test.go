package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/Veraticus/passgen/internal/clipboard"
	"github.com/Veraticus/passgen/internal/common"
	"github.com/Veraticus/passgen/internal/generator"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader makes every random draw pick the first candidate.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	cfgFile = ""
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func useDeterministicGenerator(t *testing.T) {
	t.Helper()
	prev := newGenerator
	newGenerator = func() *generator.Generator { return generator.NewWithReader(zeroReader{}) }
	t.Cleanup(func() { newGenerator = prev })
}

func useCopier(t *testing.T, c clipboard.Copier) {
	t.Helper()
	prev := copier
	copier = c
	t.Cleanup(func() { copier = prev })
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestBatch_GeneratesCountPasswords(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "-l", "20", "-c", "3", "-s", "-n")
	require.NoError(t, err)

	passwords := lines(stdout)
	require.Len(t, passwords, 3)
	for _, pw := range passwords {
		assert.Len(t, pw, 20)
		assert.True(t, strings.ContainsAny(pw, generator.Digits), "expected a digit in %q", pw)
		assert.True(t, strings.ContainsAny(pw, generator.Punctuation), "expected a symbol in %q", pw)
	}
}

func TestBatch_DefaultLength(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "-n")
	require.NoError(t, err)

	passwords := lines(stdout)
	require.Len(t, passwords, 1)
	assert.Len(t, passwords[0], 16)
}

func TestBatch_LengthBoundaries(t *testing.T) {
	tests := []struct {
		length  string
		wantErr bool
	}{
		{length: "1"},
		{length: "128"},
		{length: "0", wantErr: true},
		{length: "129", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.length, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "", "--length", tt.length)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidConfig))
				assert.Empty(t, stdout)
				return
			}
			require.NoError(t, err)
			want, convErr := strconv.Atoi(tt.length)
			require.NoError(t, convErr)
			assert.Len(t, strings.TrimRight(stdout, "\n"), want)
		})
	}
}

func TestBatch_PatchesAreDeterministic(t *testing.T) {
	useDeterministicGenerator(t)

	stdout, _, err := executeCommand(t, "", "-l", "8", "-s", "-n")
	require.NoError(t, err)
	assert.Equal(t, "aaaaaa!0\n", stdout)
}

func TestBatch_Presets(t *testing.T) {
	tests := []struct {
		preset  string
		pattern string
	}{
		{preset: "pin", pattern: `^[0-9]{6}$`},
		{preset: "basic", pattern: `^[A-Za-z2-9]{12}$`},
		{preset: "wifi", pattern: `^.{16}$`},
		{preset: "strong", pattern: `^.{24}$`},
		{preset: "max", pattern: `^.{32}$`},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				stdout, _, err := executeCommand(t, "", "--preset", tt.preset)
				require.NoError(t, err)
				assert.Regexp(t, regexp.MustCompile(tt.pattern), strings.TrimSpace(stdout))
			}
		})
	}
}

func TestBatch_PresetOverridesFlags(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "--preset", "pin", "-l", "40", "-s")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{6}$`, strings.TrimSpace(stdout))
}

func TestBatch_InvalidPreset(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "--preset", "banking")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidPreset))
	assert.Empty(t, stdout)
}

func TestBatch_PresetAndSaveIgnoreEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.txt")
	t.Setenv("PASSGEN_PRESET", "pin")
	t.Setenv("PASSGEN_SAVE", path)

	stdout, stderr, err := executeCommand(t, "", "-l", "40", "-s")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(stdout), 40)
	assert.NotContains(t, stderr, "Saved")
	assert.NoFileExists(t, path)
}

func TestBatch_EmptyPool(t *testing.T) {
	_, _, err := executeCommand(t, "", "--no-letters")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestBatch_SaveAppendsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	stdout, stderr, err := executeCommand(t, "", "-c", "2", "-n", "--save", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved 2 passwords")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(data))
	assert.Len(t, lines(string(data)), 2)
}

func TestBatch_SaveFailureDoesNotAbort(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := executeCommand(t, "", "-c", "2", "--save", dir)
	require.NoError(t, err)
	assert.Len(t, lines(stdout), 2)
	assert.Contains(t, stderr, "Could not save passwords")
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "valid batch", args: []string{"-l", "12"}, wantCode: 0},
		{name: "unknown preset", args: []string{"--preset", "banking"}, wantCode: 1, wantStderr: `Unknown preset "banking", choose one of: basic`},
		{name: "empty pool", args: []string{"--no-letters"}, wantCode: 1, wantStderr: "Invalid generation settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			cfgFile = ""
			t.Setenv("HOME", t.TempDir())

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, strings.NewReader(""), &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == 0 {
				assert.Len(t, strings.TrimSpace(stdout.String()), 12)
				return
			}
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}

func TestCheck(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "--check", "Tr0ub4dor&3")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Password Analysis")
	assert.Contains(t, stdout, "94")
	assert.Contains(t, stdout, "72.1 bits")
	assert.Contains(t, stdout, "MEDIUM")
}

func TestCheck_TakesPrecedenceOverGeneration(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "--check", "aaaaaaaa", "-c", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "37.6 bits")
	assert.Contains(t, stdout, "WEAK")
}

func TestCheck_FromStdin(t *testing.T) {
	stdout, _, err := executeCommand(t, "CorrectHorseBatteryStaple\n", "--check", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "STRONG")
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "extra")
	assert.Error(t, err)
}
