package bridge

import (
	"context"

	"github.com/adrianliechti/foaas-cli/app"
	"github.com/adrianliechti/foaas-cli/pkg/bridge"
	"github.com/adrianliechti/foaas-cli/pkg/tool/foaas"
)

// Run exposes the catalog as MCP tools over stdio.
func Run(ctx context.Context, a *app.App, version string) error {
	tools, err := foaas.New(a.Client).Tools(ctx)

	if err != nil {
		return err
	}

	for _, t := range tools {
		a.Logger.WithField("tool", t.Name).Debug("registered tool")
	}

	return bridge.Run(ctx, "FOAAS MCP Server", version, tools)
}
