package export

import (
	"context"
	"io"

	"github.com/adrianliechti/foaas-cli/app"
	"github.com/adrianliechti/foaas-cli/pkg/openapi"
)

// Run writes the remote catalog as an OpenAPI document.
func Run(ctx context.Context, a *app.App, w io.Writer, format, version string) error {
	catalog, err := a.Client.Operations(ctx)

	if err != nil {
		return err
	}

	doc := openapi.Export(catalog, a.Client.URL(), version)

	data, err := openapi.Marshal(doc, format)

	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
