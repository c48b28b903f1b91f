package tool

import (
	"context"
)

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
}

type ExecuteFn func(ctx context.Context, args map[string]any) (any, error)

type Parameter struct {
	Name        string
	Description string

	Required bool
}

type Tool struct {
	Name        string
	Description string

	Parameters []Parameter
	Execute    ExecuteFn
}
