package foaas

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"
	"github.com/adrianliechti/foaas-cli/pkg/tool"
)

var (
	_ tool.Provider = (*Catalog)(nil)
)

// Catalog exposes every operation of the remote catalog, plus a random pick, as tools.
type Catalog struct {
	client *foaas.Client
}

func New(client *foaas.Client) *Catalog {
	return &Catalog{
		client: client,
	}
}

func (c *Catalog) Tools(ctx context.Context) ([]tool.Tool, error) {
	catalog, err := c.client.Operations(ctx)

	if err != nil {
		return nil, err
	}

	tools := []tool.Tool{
		c.randomTool(),
	}

	for i := range catalog {
		o := &catalog[i]

		id := o.ID()

		if id == "" {
			continue
		}

		var parameters []tool.Parameter

		for _, f := range o.Fields {
			parameters = append(parameters, tool.Parameter{
				Name:        f.Field,
				Description: f.Name,

				Required: true,
			})
		}

		tools = append(tools, tool.Tool{
			Name:        "foaas_" + id,
			Description: fmt.Sprintf("%s (GET %s)", o.Name, o.URL),

			Parameters: parameters,

			Execute: func(ctx context.Context, args map[string]any) (any, error) {
				var values []string

				for _, f := range o.Fields {
					value, err := stringArg(args, f.Field)

					if err != nil {
						return nil, err
					}

					values = append(values, value)
				}

				response, err := c.client.Invoke(ctx, o, values)

				if err != nil {
					return nil, err
				}

				return format(response), nil
			},
		})
	}

	return tools, nil
}

func (c *Catalog) randomTool() tool.Tool {
	return tool.Tool{
		Name:        "foaas_random",
		Description: "Pick a random operation taking the given name (optional) and from values",

		Parameters: []tool.Parameter{
			{Name: "name", Description: "Who the message is addressed to"},
			{Name: "from", Description: "Who the message is from", Required: true},
		},

		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			from, err := stringArg(args, "from")

			if err != nil {
				return nil, err
			}

			name, _ := args["name"].(string)

			response, err := c.client.Random(ctx, name, from)

			if err != nil {
				return nil, err
			}

			return format(response), nil
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	value, ok := args[name].(string)

	if !ok || strings.TrimSpace(value) == "" {
		return "", errors.New(name + " is required")
	}

	return value, nil
}

func format(r *foaas.Response) string {
	return r.Message + " " + r.Subtitle
}
