package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	entries, err := DefaultCatalog()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server := httptest.NewServer(New(entries, logger))
	t.Cleanup(server.Close)

	return server
}

func TestDefaultCatalogIsConsistent(t *testing.T) {
	entries, err := DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.NoError(t, e.Validate(), e.Name)
		assert.NotEmpty(t, e.Message, e.Name)
	}
}

func TestServerWithClient(t *testing.T) {
	server := newTestServer(t)

	c, err := foaas.New(server.URL)
	require.NoError(t, err)

	ctx := context.Background()

	catalog, err := c.Operations(ctx)
	require.NoError(t, err)

	o, ok := catalog.Find("dosomething")
	require.True(t, ok)

	response, err := c.Invoke(ctx, o, []string{"Deploy", "release / hotfix", "Ops"})
	require.NoError(t, err)

	assert.Equal(t, "Deploy the fucking release / hotfix!", response.Message)
	assert.Equal(t, "- Ops", response.Subtitle)

	response, err = c.Call(ctx, "version")
	require.NoError(t, err)
	assert.Equal(t, "FOAAS", response.Subtitle)
}

func TestServerRandom(t *testing.T) {
	server := newTestServer(t)

	c, err := foaas.New(server.URL)
	require.NoError(t, err)

	response, err := c.Random(context.Background(), "Bob", "Alice")
	require.NoError(t, err)

	assert.Contains(t, response.Message, "Bob")
	assert.Equal(t, "- Alice", response.Subtitle)
}

func TestServerPlainText(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/cool/Alice", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "Cool story, bro. - Alice", string(data))
}

func TestServerUnknownRoute(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/nope/Alice")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestParseCatalogJSON(t *testing.T) {
	data := `[{"name": "Bye", "url": "/bye/:from", "fields": [{"name": "From", "field": "from"}], "message": "Fuckity bye!", "subtitle": "- :from"}]`

	entries, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "bye", entries[0].ID())
	assert.Equal(t, "Fuckity bye!", entries[0].Message)
}

func TestParseCatalogRejectsMismatch(t *testing.T) {
	data := `
- name: Broken
  url: /broken/:name/:from
  fields:
    - name: From
      field: from
  message: broken
`

	_, err := ParseCatalog([]byte(data))

	var terr *foaas.TemplateError
	assert.ErrorAs(t, err, &terr)
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "/back/{name}/{from}", pattern("/back/:name/:from"))
	assert.Equal(t, "/version", pattern("/version"))
}

func TestParseCatalogRejectsRouteConflicts(t *testing.T) {
	tests := map[string]string{
		"different names at same position": `
- name: First
  url: /:a/:from
  fields:
    - {name: A, field: a}
    - {name: From, field: from}
  message: first
- name: Second
  url: /:b/:from
  fields:
    - {name: B, field: b}
    - {name: From, field: from}
  message: second
`,
		"repeated placeholder": `
- name: Twice
  url: /twice/:from/:from
  fields:
    - {name: From, field: from}
  message: twice
`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalogSharedParamNames(t *testing.T) {
	data := `
- name: Awesome
  url: /awesome/:from
  fields:
    - {name: From, field: from}
  message: awesome
- name: Back
  url: /back/:name/:from
  fields:
    - {name: Name, field: name}
    - {name: From, field: from}
  message: back
`

	entries, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestServerOperationsWithoutFields(t *testing.T) {
	entries, err := ParseCatalog([]byte("- name: Version\n  url: /version\n  message: Version 2.0.0\n  subtitle: FOAAS\n"))
	require.NoError(t, err)

	server := httptest.NewServer(New(entries, logrus.New()))
	defer server.Close()

	c, err := foaas.New(server.URL)
	require.NoError(t, err)

	catalog, err := c.Operations(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	assert.Empty(t, catalog[0].Fields)
}
