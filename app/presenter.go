package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/adrianliechti/foaas-cli/pkg/cli"
	"github.com/adrianliechti/foaas-cli/pkg/foaas"
	"github.com/adrianliechti/foaas-cli/pkg/markdown"
)

// Presenter is the front end: it shows the catalog, responses and errors.
type Presenter interface {
	Operations(catalog foaas.Catalog)
	Response(r *foaas.Response)
	Error(err error)
}

var _ Presenter = (*Terminal)(nil)

type Terminal struct {
	w io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w: w,
	}
}

func (t *Terminal) Operations(catalog foaas.Catalog) {
	markdown.Render(t.w, markdown.Operations(catalog))
}

func (t *Terminal) Response(r *foaas.Response) {
	markdown.Render(t.w, markdown.Response(r))
}

func (t *Terminal) Error(err error) {
	cli.Info("⚠️  " + Describe(err))
	cli.Info()
}

// Describe turns an error into a message for the user.
func Describe(err error) string {
	var nerr *foaas.NetworkError
	var derr *foaas.DecodeError
	var terr *foaas.TemplateError
	var aerr *foaas.ArityError

	switch {
	case err == nil:
		return ""

	case errors.Is(err, context.Canceled):
		return "Cancelled."

	case errors.Is(err, foaas.ErrNoMatchingOperation):
		return "No matching operation found."

	case errors.As(err, &aerr):
		return fmt.Sprintf("This operation needs %d values, got %d.", aerr.Want, aerr.Got)

	case errors.As(err, &terr):
		return fmt.Sprintf("The catalog entry %q is broken: %s", terr.Operation, terr.Error())

	case errors.As(err, &derr):
		return "The service returned an unexpected response."

	case errors.As(err, &nerr):
		if nerr.StatusCode != 0 {
			return fmt.Sprintf("The service answered with %d %s.", nerr.StatusCode, http.StatusText(nerr.StatusCode))
		}

		return "Could not reach the service. Check your connection and try again."
	}

	return err.Error()
}
