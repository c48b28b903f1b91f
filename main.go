package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/foaas-cli/app"
	"github.com/adrianliechti/foaas-cli/app/bridge"
	"github.com/adrianliechti/foaas-cli/app/export"
	"github.com/adrianliechti/foaas-cli/app/history"
	"github.com/adrianliechti/foaas-cli/app/invoke"
	"github.com/adrianliechti/foaas-cli/app/list"
	"github.com/adrianliechti/foaas-cli/app/random"
	"github.com/adrianliechti/foaas-cli/app/serve"
	"github.com/adrianliechti/foaas-cli/pkg/cli"
	"github.com/adrianliechti/foaas-cli/pkg/config"
)

var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := initApp()

	if err := cmd.Run(ctx, os.Args); err != nil {
		cli.Fatal(errors.New(app.Describe(err)))
	}
}

func initApp() cli.Command {
	if version == "" {
		version = "dev"
	}

	return cli.Command{
		Name:  "foaas",
		Usage: "FOAAS CLI",

		Suggest: true,
		Version: version,

		HideHelpCommand: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "API Base URL",
			},

			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request Timeout",
			},

			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log requests",
			},

			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not record responses",
			},
		},

		Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
			return invoke.Interactive(ctx, a)
		}),

		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List Operations",

				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
					return list.Run(ctx, a)
				}),
			},

			{
				Name:      "invoke",
				Usage:     "Invoke Operation",
				ArgsUsage: "<operation> [values...]",

				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
					if cmd.Args().Len() == 0 {
						return cli.ShowCommandHelp(cmd)
					}

					key := cmd.Args().First()
					values := cmd.Args().Tail()

					return invoke.Run(ctx, a, key, values)
				}),
			},

			{
				Name:  "random",
				Usage: "Invoke Random Operation",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "from",
						Usage: "Sender",

						Required: true,
					},

					&cli.StringFlag{
						Name:  "name",
						Usage: "Recipient",
					},
				},

				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
					return random.Run(ctx, a, cmd.String("name"), cmd.String("from"))
				}),
			},

			{
				Name:  "export",
				Usage: "Export Catalog as OpenAPI",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "json or yaml",
						Value: "json",
					},
				},

				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
					return export.Run(ctx, a, os.Stdout, cmd.String("format"), version)
				}),
			},

			{
				Name:  "history",
				Usage: "Show Recent Responses",

				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of entries",
						Value: 10,
					},
				},

				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
					return history.Run(ctx, a, int(cmd.Int("limit")))
				}),
			},

			{
				Name:  "serve",
				Usage: "Serve Stand-in API",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen Address",
						Value: "localhost:8080",
					},

					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Catalog File",
					},
				},

				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := config.Load(app.MustDir())

					if err != nil {
						return err
					}

					logger := app.NewLogger(cfg.LogLevel, cmd.Bool("verbose"))

					return serve.Run(ctx, logger, cmd.String("addr"), cmd.String("catalog"))
				},
			},

			{
				Name:  "mcp",
				Usage: "Serve Catalog as MCP Tools",

				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app.App) error {
					return bridge.Run(ctx, a, version)
				}),
			},
		},
	}
}

func withApp(fn func(ctx context.Context, cmd *cli.Command, a *app.App) error) func(ctx context.Context, cmd *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) error {
		a, err := app.New(ctx, app.Options{
			URL:     cmd.String("url"),
			Timeout: cmd.Duration("timeout"),

			Verbose:   cmd.Bool("verbose"),
			NoHistory: cmd.Bool("no-history"),
		})

		if err != nil {
			return err
		}

		defer a.Close()

		return fn(ctx, cmd, a)
	}
}
