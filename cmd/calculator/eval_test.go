package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/glass-calculator/internal/config"
	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/keypad"
	"github.com/ytget/glass-calculator/internal/model"
)

const testConfigPath = "/home/test/.config/glass-calculator/config.toml"

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fs)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", testConfigPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestEvalBasic(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "eval", "5 + 3 =")
	require.NoError(t, err)
	assert.Equal(t, []string{"8"}, lines(out))
}

func TestEvalJoinsArguments(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "eval", "12.5", "×", "2", "=")
	require.NoError(t, err)
	assert.Equal(t, []string{"25"}, lines(out))
}

func TestEvalPendingExpression(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "eval", "7 -")
	require.NoError(t, err)
	assert.Equal(t, []string{"7 -", "7"}, lines(out))
}

func TestEvalScientific(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"sine in degrees", []string{"--variant", "scientific", "eval", "90 sin"}, "1"},
		{"sine in radians", []string{"--variant", "sci", "eval", "--angle", "rad", "1 sin"}, "0.841470984808"},
		{"power", []string{"--variant", "scientific", "eval", "2 ^ 10 ="}, "1024"},
		{"precision", []string{"--variant", "scientific", "eval", "--precision", "4", "pi"}, "3.142"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := execute(t, afero.NewMemMapFs(), test.args...)
			require.NoError(t, err)
			got := lines(out)
			assert.Equal(t, test.expected, got[len(got)-1])
		})
	}
}

func TestEvalMemoryLine(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "--variant", "scientific", "eval", "4 m+ 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"M 4", "2"}, lines(out))
}

func TestEvalJSON(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "eval", "--json", "5 + 3")
	require.NoError(t, err)

	var snap engine.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, model.VariantBasic, snap.Variant)
	assert.Equal(t, "3", snap.Display)
	assert.Equal(t, "5 +", snap.Expression)
	assert.Equal(t, model.OpAdd, snap.Operation)
	assert.Equal(t, "entering-second-operand", snap.Phase)
}

func TestEvalUsesConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	precision := 3
	require.NoError(t, config.SaveFile(fs, testConfigPath, &config.File{
		Variant:   "scientific",
		AngleMode: "rad",
		Precision: &precision,
	}))

	out, err := execute(t, fs, "eval", "1 sin")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.841"}, lines(out))

	// flags win over the file
	out, err = execute(t, fs, "eval", "--angle", "deg", "--precision", "12", "90 sin")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, lines(out))
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown token", []string{"eval", "5 plus 3"}, keypad.ErrUnknownToken},
		{"scientific key on basic", []string{"eval", "9 sqrt"}, keypad.ErrUnsupportedKey},
		{"bad variant", []string{"--variant", "graphing", "eval", "1"}, config.ErrInvalidVariant},
		{"bad angle", []string{"eval", "--angle", "grad", "1"}, config.ErrInvalidAngleMode},
		{"bad precision", []string{"eval", "--precision", "40", "1"}, config.ErrInvalidPrecision},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, afero.NewMemMapFs(), test.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.expected), "got %v", err)
		})
	}
}

func TestEvalBrokenConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("variant = [\n"), 0o644))

	_, err := execute(t, fs, "eval", "1")
	assert.Error(t, err)
}

func TestEvalRequiresKeys(t *testing.T) {
	_, err := execute(t, afero.NewMemMapFs(), "eval")
	assert.Error(t, err)
}
