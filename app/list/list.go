package list

import (
	"context"

	"github.com/adrianliechti/foaas-cli/app"
	"github.com/adrianliechti/foaas-cli/pkg/cli"
	"github.com/adrianliechti/foaas-cli/pkg/foaas"
)

func Run(ctx context.Context, a *app.App) error {
	var catalog foaas.Catalog

	fn := func() error {
		var err error
		catalog, err = a.Client.Operations(ctx)
		return err
	}

	if err := cli.Run("Loading operations...", fn); err != nil {
		return err
	}

	a.Presenter.Operations(catalog)

	return nil
}
