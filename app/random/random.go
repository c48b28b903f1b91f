package random

import (
	"context"
	"strings"

	"github.com/adrianliechti/foaas-cli/app"
)

func Run(ctx context.Context, a *app.App, name, from string) error {
	name = strings.TrimSpace(name)
	from = strings.TrimSpace(from)

	o, values, err := a.Client.Pick(ctx, name, from)

	if err != nil {
		return err
	}

	a.Logger.WithField("operation", o.Name).Info("random operation")

	_, err = a.Invoke(ctx, o, values)
	return err
}
