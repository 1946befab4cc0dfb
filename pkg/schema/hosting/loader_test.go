package hosting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostwise/hostctl/pkg/errors"
)

func TestLoadFromBytes_YAML(t *testing.T) {
	doc := `rewrites:
  - source: "/app/**"
    destination: /index.html
  - source: "/api/**"
    function:
      name: api
      region: europe-west1
  - source: "/fn/**"
    function: handler
  - source: "/svc/**"
    run:
      serviceId: hello
redirects:
  - source: "/old/**"
    destination: /new
    type: 301
headers:
  - source: "**/*.js"
    headers:
      - key: Cache-Control
        value: max-age=3600
cleanUrls: true
trailingSlash: false
appAssociation: AUTO
i18n:
  root: /intl
`

	cfg, err := NewLoader().LoadFromBytes([]byte(doc), "hosting.yaml")
	require.NoError(t, err)

	require.Len(t, cfg.Rewrites, 4)
	assert.Equal(t, "/index.html", cfg.Rewrites[0].Destination)
	require.NotNil(t, cfg.Rewrites[1].Function)
	assert.Equal(t, "api", cfg.Rewrites[1].Function.Name)
	assert.Equal(t, "europe-west1", cfg.Rewrites[1].Function.Region)

	// Scalar shorthand for function references.
	require.NotNil(t, cfg.Rewrites[2].Function)
	assert.Equal(t, "handler", cfg.Rewrites[2].Function.Name)
	assert.Empty(t, cfg.Rewrites[2].Function.Region)

	require.NotNil(t, cfg.Rewrites[3].Run)
	assert.Equal(t, "hello", cfg.Rewrites[3].Run.ServiceID)

	require.Len(t, cfg.Redirects, 1)
	assert.Equal(t, 301, cfg.Redirects[0].Type)

	require.Len(t, cfg.Headers, 1)
	require.Len(t, cfg.Headers[0].Headers, 1)

	require.NotNil(t, cfg.CleanURLs)
	assert.True(t, *cfg.CleanURLs)
	require.NotNil(t, cfg.TrailingSlash)
	assert.False(t, *cfg.TrailingSlash)
	assert.Equal(t, "AUTO", cfg.AppAssociation)
	require.NotNil(t, cfg.I18n)
	assert.Equal(t, "/intl", cfg.I18n.Root)
}

func TestLoadFromBytes_JSON(t *testing.T) {
	doc := `{
  "rewrites": [
    {"source": "/api/**", "function": {"name": "api"}}
  ],
  "trailingSlash": true
}`

	cfg, err := NewLoader().LoadFromBytes([]byte(doc), "hosting.json")
	require.NoError(t, err)
	require.Len(t, cfg.Rewrites, 1)
	require.NotNil(t, cfg.Rewrites[0].Function)
	assert.Equal(t, "api", cfg.Rewrites[0].Function.Name)
	require.NotNil(t, cfg.TrailingSlash)
	assert.True(t, *cfg.TrailingSlash)
}

func TestLoadFromBytes_AbsentSectionsStayNil(t *testing.T) {
	cfg, err := NewLoader().LoadFromBytes([]byte(`cleanUrls: true`), "hosting.yaml")
	require.NoError(t, err)

	assert.Nil(t, cfg.Rewrites)
	assert.Nil(t, cfg.Redirects)
	assert.Nil(t, cfg.Headers)
	assert.Nil(t, cfg.TrailingSlash)
	assert.Nil(t, cfg.I18n)
}

func TestLoadFromBytes_ValidationFailure(t *testing.T) {
	doc := `rewrites:
  - source: "/**"
`
	_, err := NewLoader().LoadFromBytes([]byte(doc), "hosting.yaml")
	assert.True(t, errors.Is(err, errors.ErrCodeValidation), "got %v", err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cleanUrls: true\n"), 0644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.CleanURLs)

	_, err = NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeParse))
}
