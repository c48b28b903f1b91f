package openapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/invopop/yaml"
)

// Export describes the catalog as an OpenAPI 3 document served from serverURL.
func Export(catalog foaas.Catalog, serverURL, version string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",

		Info: &openapi3.Info{
			Title:   "FOAAS",
			Version: version,
		},

		Servers: openapi3.Servers{
			&openapi3.Server{URL: serverURL},
		},

		Paths: openapi3.NewPaths(),
	}

	response := openapi3.NewResponse().
		WithDescription("Rendered message").
		WithJSONSchema(responseSchema())

	doc.AddOperation("/operations", http.MethodGet, &openapi3.Operation{
		OperationID: "operations",
		Summary:     "List operations",

		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Available operations").
					WithJSONSchema(openapi3.NewArraySchema().WithItems(operationSchema())),
			}),
		),
	})

	for i := range catalog {
		o := &catalog[i]

		operation := &openapi3.Operation{
			OperationID: operationID(o),
			Summary:     o.Name,

			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: response}),
			),
		}

		for _, f := range o.Fields {
			parameter := openapi3.NewPathParameter(f.Field).
				WithDescription(f.Name).
				WithSchema(openapi3.NewStringSchema())

			operation.Parameters = append(operation.Parameters, &openapi3.ParameterRef{
				Value: parameter,
			})
		}

		doc.AddOperation(path(o.URL), http.MethodGet, operation)
	}

	return doc
}

func Marshal(doc *openapi3.T, format string) ([]byte, error) {
	if strings.EqualFold(format, "yaml") || strings.EqualFold(format, "yml") {
		return yaml.Marshal(doc)
	}

	return json.MarshalIndent(doc, "", "  ")
}

func operationID(o *foaas.Operation) string {
	if id := o.ID(); id != "" {
		return id
	}

	return "root"
}

// path turns "/back/:name/:from" into "/back/{name}/{from}".
func path(template string) string {
	parts := strings.Split(template, "/")

	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + p[1:] + "}"
		}
	}

	return strings.Join(parts, "/")
}

func responseSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("subtitle", openapi3.NewStringSchema()).
		WithRequired([]string{"message", "subtitle"})
}

func operationSchema() *openapi3.Schema {
	field := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("field", openapi3.NewStringSchema())

	return openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("url", openapi3.NewStringSchema()).
		WithProperty("fields", openapi3.NewArraySchema().WithItems(field))
}
