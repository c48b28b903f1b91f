package invoke

import (
	"context"
	"errors"

	"github.com/adrianliechti/foaas-cli/app"
	"github.com/adrianliechti/foaas-cli/pkg/cli"
	"github.com/adrianliechti/foaas-cli/pkg/foaas"
)

// Run invokes the operation identified by key with values.
func Run(ctx context.Context, a *app.App, key string, values []string) error {
	o, err := a.Client.Lookup(ctx, key)

	if err != nil {
		return err
	}

	_, err = a.Invoke(ctx, o, values)
	return err
}

// Interactive lets the user pick operations and fill their fields until aborted.
func Interactive(ctx context.Context, a *app.App) error {
	var catalog foaas.Catalog

	fn := func() error {
		var err error
		catalog, err = a.Client.Operations(ctx)
		return err
	}

	if err := cli.Run("Loading operations...", fn); err != nil {
		return err
	}

	if len(catalog) == 0 {
		return foaas.ErrNoMatchingOperation
	}

	var options []cli.Option

	for _, o := range catalog {
		options = append(options, cli.Option{
			Key:   o.Name,
			Value: o.URL,
		})
	}

	cli.Info()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		url, err := cli.Select("Operation", options)

		if err != nil {
			if errors.Is(err, cli.ErrAborted) {
				return nil
			}

			return err
		}

		o, ok := catalog.Find(url)

		if !ok {
			continue
		}

		values, err := prompt(o)

		if err != nil {
			if errors.Is(err, cli.ErrAborted) {
				return nil
			}

			return err
		}

		if _, err := a.Invoke(ctx, o, values); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}

			a.Presenter.Error(err)
		}
	}
}

func prompt(o *foaas.Operation) ([]string, error) {
	var values []string

	for _, f := range o.Fields {
		value, err := cli.Input(f.Name, f.Field)

		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}
