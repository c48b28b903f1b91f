package foaas

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"
	"github.com/adrianliechti/foaas-cli/pkg/server"
	"github.com/adrianliechti/foaas-cli/pkg/tool"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	entries, err := server.DefaultCatalog()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := httptest.NewServer(server.New(entries, logger))
	t.Cleanup(s.Close)

	client, err := foaas.New(s.URL)
	require.NoError(t, err)

	return New(client)
}

func findTool(tools []tool.Tool, name string) *tool.Tool {
	for i := range tools {
		if tools[i].Name == name {
			return &tools[i]
		}
	}

	return nil
}

func TestTools(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	tools, err := c.Tools(ctx)
	require.NoError(t, err)

	back := findTool(tools, "foaas_back")
	require.NotNil(t, back)
	require.Len(t, back.Parameters, 2)
	assert.Equal(t, "name", back.Parameters[0].Name)
	assert.True(t, back.Parameters[0].Required)

	result, err := back.Execute(ctx, map[string]any{"name": "Bob", "from": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Bob, back the fuck off. - Alice", result)

	_, err = back.Execute(ctx, map[string]any{"name": "Bob"})
	assert.EqualError(t, err, "from is required")
}

func TestRandomTool(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	tools, err := c.Tools(ctx)
	require.NoError(t, err)

	random := findTool(tools, "foaas_random")
	require.NotNil(t, random)

	result, err := random.Execute(ctx, map[string]any{"from": "Alice"})
	require.NoError(t, err)
	assert.Contains(t, result, "- Alice")
}
