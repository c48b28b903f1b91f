package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrianliechti/foaas-cli/pkg/tool"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func New(name, version string, tools []tool.Tool) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
	)

	for _, t := range tools {
		s.AddTool(toTool(t), toHandler(t))
	}

	return s
}

// Run serves the tools over stdio until the input is closed.
func Run(ctx context.Context, name, version string, tools []tool.Tool) error {
	s := New(name, version, tools)
	return server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)
}

func toTool(t tool.Tool) mcp.Tool {
	options := []mcp.ToolOption{
		mcp.WithDescription(t.Description),
	}

	for _, p := range t.Parameters {
		property := []mcp.PropertyOption{
			mcp.Description(p.Description),
		}

		if p.Required {
			property = append(property, mcp.Required())
		}

		options = append(options, mcp.WithString(p.Name, property...))
	}

	return mcp.NewTool(t.Name, options...)
}

func toHandler(t tool.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := arguments(request)

		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := t.Execute(ctx, args)

		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var content string

		switch v := result.(type) {
		case string:
			content = v
		default:
			data, _ := json.Marshal(v)
			content = string(data)
		}

		return mcp.NewToolResultText(content), nil
	}
}

func arguments(request mcp.CallToolRequest) (map[string]any, error) {
	data, err := json.Marshal(request.Params.Arguments)

	if err != nil {
		return nil, err
	}

	args := map[string]any{}

	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if args == nil {
		args = map[string]any{}
	}

	return args, nil
}
