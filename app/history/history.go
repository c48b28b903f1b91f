package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrianliechti/foaas-cli/app"
	"github.com/adrianliechti/foaas-cli/pkg/history"
	"github.com/adrianliechti/foaas-cli/pkg/markdown"
)

func Run(ctx context.Context, a *app.App, limit int) error {
	if a.History == nil {
		return errors.New("history is disabled")
	}

	entries, err := a.History.List(ctx, limit)

	if err != nil {
		return err
	}

	markdown.Render(os.Stdout, Render(entries))

	return nil
}

func Render(entries []history.Entry) string {
	var sb strings.Builder

	sb.WriteString("| When | Operation | Message | Subtitle |\n")
	sb.WriteString("|------|-----------|---------|----------|\n")

	for _, e := range entries {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			e.CreatedAt.Local().Format(time.DateTime),
			cell(e.Operation),
			cell(e.Message),
			cell(e.Subtitle),
		)
	}

	return sb.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
