package foaas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationID(t *testing.T) {
	tests := map[string]string{
		"/anyway/:company/:from":   "anyway",
		"/version":                 "version",
		"/field/:name/:from/:ref":  "field",
		"/thanks/a/lot/:from":      "thanks_a_lot",
		"/Programmer/:from?x=1#id": "programmer",
	}

	for url, id := range tests {
		o := Operation{URL: url}
		assert.Equal(t, id, o.ID(), url)
	}
}

func TestOperationPlaceholders(t *testing.T) {
	o := Operation{URL: "/ballmer/:name/:company/:from"}
	assert.Equal(t, []string{":name", ":company", ":from"}, o.Placeholders())

	o = Operation{URL: "/version"}
	assert.Empty(t, o.Placeholders())
}

func TestOperationValidate(t *testing.T) {
	o := Operation{
		Name: "Duplicate",
		URL:  "/dup/:from",
		Fields: []Field{
			{Name: "From", Field: "from"},
			{Name: "Again", Field: "from"},
		},
	}

	var terr *TemplateError
	require.ErrorAs(t, o.Validate(), &terr)
	assert.Equal(t, []string{":from"}, terr.Unknown)

	o = Operation{Name: "Version", URL: "/version"}
	assert.NoError(t, o.Validate())
}

func TestOperationExpand(t *testing.T) {
	o := Operation{
		Name: "Can I use",
		URL:  "/caniuse/:tool/:from",
		Fields: []Field{
			{Name: "Tool", Field: "tool"},
			{Name: "From", Field: "from"},
		},
	}

	path, err := o.Expand([]string{"C++ #1", "Ana?"})
	require.NoError(t, err)

	assert.Equal(t, "/caniuse/C++%20%231/Ana%3F", path)
}

func TestOperationExpandKeepsQuery(t *testing.T) {
	o := Operation{
		Name:   "Query",
		URL:    "/query/:from?lang=en",
		Fields: []Field{{Name: "From", Field: "from"}},
	}

	path, err := o.Expand([]string{"Alice"})
	require.NoError(t, err)

	assert.Equal(t, "/query/Alice?lang=en", path)
}

func TestOperationExpandColonValue(t *testing.T) {
	o := Operation{
		Name:   "Awesome",
		URL:    "/awesome/:from",
		Fields: []Field{{Name: "From", Field: "from"}},
	}

	path, err := o.Expand([]string{":from"})
	require.NoError(t, err)

	assert.Equal(t, "/awesome/:from", path)
}

func TestOperationHasFields(t *testing.T) {
	o := Operation{
		URL: "/back/:name/:from",
		Fields: []Field{
			{Name: "Name", Field: "name"},
			{Name: "From", Field: "from"},
		},
	}

	assert.True(t, o.HasFields("name", "from"))
	assert.True(t, o.HasFields("from", "name"))
	assert.False(t, o.HasFields("from"))
	assert.False(t, o.HasFields("company", "from"))

	dup := Operation{
		URL: "/dup/:from",
		Fields: []Field{
			{Name: "From", Field: "from"},
			{Name: "Again", Field: "from"},
		},
	}

	assert.False(t, dup.HasFields("name", "from"))
	assert.False(t, dup.HasFields("from", "from"))
}

func TestCatalogFind(t *testing.T) {
	o, ok := testCatalog.Find("anyway")
	require.True(t, ok)
	assert.Equal(t, "/anyway/:company/:from", o.URL)

	o, ok = testCatalog.Find("/awesome/:from")
	require.True(t, ok)
	assert.Equal(t, "Awesome", o.Name)

	o, ok = testCatalog.Find("back")
	require.True(t, ok)
	assert.Same(t, &testCatalog[1], o)

	_, ok = testCatalog.Find("missing")
	assert.False(t, ok)
}

func TestCatalogFindEmptyKey(t *testing.T) {
	catalog := Catalog{
		{
			Name: "Thing",
			URL:  "/:thing/:from",
			Fields: []Field{
				{Name: "Thing", Field: "thing"},
				{Name: "From", Field: "from"},
			},
		},
	}

	_, ok := catalog.Find("")
	assert.False(t, ok)

	_, ok = catalog.Find("  ")
	assert.False(t, ok)
}

func TestCatalogMatch(t *testing.T) {
	matches := testCatalog.Match("name", "from")
	require.Len(t, matches, 1)
	assert.Equal(t, "Back", matches[0].Name)

	matches = testCatalog.Match("from")
	require.Len(t, matches, 1)
	assert.Equal(t, "Awesome", matches[0].Name)

	assert.Empty(t, testCatalog.Match("tool", "from"))
}

func TestCatalogMatchSkipsBrokenTemplates(t *testing.T) {
	catalog := Catalog{
		{
			Name: "Broken",
			URL:  "/broken/:name/:from/:company",
			Fields: []Field{
				{Name: "Name", Field: "name"},
				{Name: "From", Field: "from"},
			},
		},
	}

	assert.Empty(t, catalog.Match("name", "from"))
}

func TestDecodeCatalogRejectsIncomplete(t *testing.T) {
	tests := map[string]string{
		"null":              `null`,
		"object":            `{"not": "a list"}`,
		"empty name":        `[{"name": "", "url": "/x/:from", "fields": []}]`,
		"missing fields":    `[{"name": "Bye", "url": "/bye/:from"}]`,
		"null fields":       `[{"name": "Bye", "url": "/bye/:from", "fields": null}]`,
		"null url":          `[{"name": "Bye", "url": null, "fields": []}]`,
		"missing field key": `[{"name": "Bye", "url": "/bye/:from", "fields": [{"name": "From"}]}]`,
		"null field name":   `[{"name": "Bye", "url": "/bye/:from", "fields": [{"name": null, "field": "from"}]}]`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCatalog([]byte(data))
			assert.Error(t, err)
		})
	}

	catalog, err := decodeCatalog([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, catalog)

	catalog, err = decodeCatalog([]byte(`[{"name": "Bye", "url": "/bye/:from", "fields": [{"name": "From", "field": "from"}]}]`))
	require.NoError(t, err)
	assert.Equal(t, "bye", catalog[0].ID())
	assert.Equal(t, []Field{{Name: "From", Field: "from"}}, catalog[0].Fields)
}

func TestDecodeResponseRejectsIncomplete(t *testing.T) {
	tests := map[string]string{
		"null":          `null`,
		"null message":  `{"message": null, "subtitle": "- Alice"}`,
		"null subtitle": `{"message": "Fuck off.", "subtitle": null}`,
		"null values":   `{"message": null, "subtitle": null}`,
		"number":        `{"message": 42, "subtitle": "- Alice"}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeResponse([]byte(data))
			assert.Error(t, err)
		})
	}

	response, err := decodeResponse([]byte(`{"message": "", "subtitle": ""}`))
	require.NoError(t, err)
	assert.Equal(t, Response{}, *response)
}
