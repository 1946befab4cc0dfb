package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hosting.yaml", testHosting)

	cmd := newValidateCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "valid")
}

func TestValidateCmd_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hosting.yaml", "rewrites:\n  - source: '/**'\n")

	cmd := newValidateCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target is required")
}

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "hostctl")
}
