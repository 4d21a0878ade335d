package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScenesCmd(t *testing.T) {
	out, err := execute(t, "scenes")
	require.NoError(t, err)
	assert.Contains(t, out, "apples")
	assert.Contains(t, out, "$0.50 per apple")
	assert.Contains(t, out, "purple candy")
}

func TestScenesCmdCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: test
    scenes:
      - {name: plums, unitRate: 1.25, numberOfBags: 2, quantityPerBag: 3}
`), 0o644))

	out, err := execute(t, "scenes", "--scenes", path)
	require.NoError(t, err)
	assert.Contains(t, out, "plums")
	assert.NotContains(t, out, "apples")
}

func TestScriptCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - {action: drag, target: bag-0, x: 512, y: 380, frames: 4}
  - {action: wait, frames: 60}
  - {action: answer, question: -1, guess: 0.5}
`), 0o644))

	out, err := execute(t, "script", path, "--scene", "apples", "--json")
	require.NoError(t, err)

	var result struct {
		Scene    string      `json:"scene"`
		Quantity float64     `json:"quantity"`
		Markers  []markerRow `json:"markers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "apples", result.Scene)
	assert.Equal(t, 5.0, result.Quantity)
	require.Len(t, result.Markers, 2)
	assert.Equal(t, "scale", result.Markers[0].Creator)
	assert.True(t, result.Markers[0].Undo)
	assert.Equal(t, "question", result.Markers[1].Creator)
}

func TestScriptCmdTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`steps: [{action: editor, denominator: 4, numerator: 2}]`), 0o644))

	out, err := execute(t, "script", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "scene apples: 0 on the scale"), out)
	assert.Contains(t, out, "$2.00")
	assert.Contains(t, out, "(undo)")
}

func TestScriptCmdUnknownScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`steps: [{action: undo}]`), 0o644))

	_, err := execute(t, "script", path, "--scene", "kumquats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scene")
}

func TestConfigFileSetsScene(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "unitrates.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("scene: carrots\nlogLevel: error\n"), 0o644))
	script := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(script, []byte(`steps: [{action: undo}]`), 0o644))

	viper.Reset()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"script", script, "--config", cfg})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "scene carrots")
}

func TestConfigFileMissing(t *testing.T) {
	_, err := execute(t, "scenes", "--config", "/nonexistent/unitrates.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}
