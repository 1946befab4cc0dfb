package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newResolveCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

const testHosting = `rewrites:
  - source: "/app/**"
    destination: /index.html
  - source: "/ssr/**"
    function: ssr
cleanUrls: true
`

const testInventory = `groups:
  - name: default
    target:
      - id: ssr
        region: us-central1
        platform: modern
snapshot:
  loaded: true
`

func TestResolveCmd_Phases(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "hosting.yaml", testHosting)
	invPath := writeFile(t, dir, "inventory.yaml", testInventory)

	// Planning drops the not-yet-live service route.
	out, err := runCommand(t, "-c", cfgPath, "-i", invPath, "--phase", "plan")
	require.NoError(t, err)

	var planned map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &planned))
	assert.Len(t, planned["rewrites"], 1)

	// Finalizing emits it as a run rewrite.
	out, err = runCommand(t, "-c", cfgPath, "-i", invPath, "--phase", "finalize")
	require.NoError(t, err)

	var finalized map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &finalized))
	require.Len(t, finalized["rewrites"], 2)
	assert.Contains(t, out, `"serviceId": "ssr"`)
	assert.Equal(t, true, finalized["cleanUrls"])
}

func TestResolveCmd_NoInventory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "hosting.yaml", "cleanUrls: true\n")

	out, err := runCommand(t, "-c", cfgPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cleanUrls": true}`, out)
}

func TestResolveCmd_UnknownBackendFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "hosting.yaml", testHosting)

	// Without an inventory the function reference cannot resolve.
	_, err := runCommand(t, "-c", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to find a valid endpoint")
}

func TestResolveCmd_UnknownPhase(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "hosting.yaml", "cleanUrls: true\n")

	_, err := runCommand(t, "-c", cfgPath, "--phase", "later")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown phase")
}
