package app

import (
	"context"
	"os"
	"time"

	"github.com/adrianliechti/foaas-cli/pkg/cli"
	"github.com/adrianliechti/foaas-cli/pkg/config"
	"github.com/adrianliechti/foaas-cli/pkg/foaas"
	"github.com/adrianliechti/foaas-cli/pkg/history"

	"github.com/sirupsen/logrus"
)

type Options struct {
	URL     string
	Timeout time.Duration

	Verbose   bool
	NoHistory bool
}

// App bundles what every command needs: resolved config, logger, API client and history.
type App struct {
	Config *config.Config
	Logger *logrus.Logger

	Client  *foaas.Client
	History *history.Store

	Presenter Presenter
}

func New(ctx context.Context, options Options) (*App, error) {
	cfg, err := config.Load(MustDir())

	if err != nil {
		return nil, err
	}

	if options.URL != "" {
		cfg.URL = options.URL
	}

	if options.Timeout > 0 {
		cfg.Timeout = options.Timeout.String()
	}

	logger := NewLogger(cfg.LogLevel, options.Verbose)

	timeout, err := cfg.Duration()

	if err != nil {
		return nil, err
	}

	clientOptions := []foaas.Option{
		foaas.WithLogger(logger),
		foaas.WithTimeout(timeout),
	}

	if options.Verbose {
		clientOptions = append(clientOptions, foaas.WithTrace(func(method, url string) {
			cli.Debug("⚡️", method, url)
		}))
	}

	client, err := foaas.New(cfg.URL, clientOptions...)

	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Logger: logger,

		Client: client,

		Presenter: NewTerminal(os.Stdout),
	}

	if !options.NoHistory && cfg.History != "" {
		store, err := history.New(cfg.History)

		if err != nil {
			logger.WithError(err).Warn("history disabled")
		} else {
			a.History = store
		}
	}

	return a, nil
}

func (a *App) Close() {
	if a.History != nil {
		a.History.Close()
	}
}

// Invoke calls the operation, records the result in the history and presents it.
func (a *App) Invoke(ctx context.Context, o *foaas.Operation, values []string) (*foaas.Response, error) {
	var response *foaas.Response

	fn := func() error {
		var err error
		response, err = a.Client.Invoke(ctx, o, values)
		return err
	}

	if err := cli.Run("Fetching...", fn); err != nil {
		return nil, err
	}

	a.Record(ctx, o, values, response)
	a.Presenter.Response(response)

	return response, nil
}

func (a *App) Record(ctx context.Context, o *foaas.Operation, values []string, r *foaas.Response) {
	if a.History == nil || r == nil {
		return
	}

	path, _ := o.Expand(values)

	entry := history.Entry{
		Operation: o.Name,
		URL:       a.Client.URL() + path,

		Values: values,

		Message:  r.Message,
		Subtitle: r.Subtitle,
	}

	if _, err := a.History.Add(ctx, entry); err != nil {
		a.Logger.WithError(err).Warn("failed to record history")
	}
}

func NewLogger(level string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := logrus.ParseLevel(level)

	if err != nil {
		lvl = logrus.WarnLevel
	}

	if verbose {
		lvl = logrus.DebugLevel
	}

	logger.SetLevel(lvl)

	return logger
}
