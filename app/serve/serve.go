package serve

import (
	"context"

	"github.com/adrianliechti/foaas-cli/pkg/cli"
	"github.com/adrianliechti/foaas-cli/pkg/server"

	"github.com/sirupsen/logrus"
)

// Run serves the stand-in API on addr until ctx is done. An empty path serves the built-in catalog.
func Run(ctx context.Context, logger logrus.FieldLogger, addr, path string) error {
	var entries []server.Entry
	var err error

	if path == "" {
		entries, err = server.DefaultCatalog()
	} else {
		entries, err = server.LoadCatalog(path)
	}

	if err != nil {
		return err
	}

	s := server.New(entries, logger)

	cli.Info()
	cli.Infof("🖥️ Serving %d operations on %s", len(entries), addr)
	cli.Info()

	return s.ListenAndServe(ctx, addr)
}
