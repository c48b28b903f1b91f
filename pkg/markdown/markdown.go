package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"

	"github.com/charmbracelet/glamour"
)

func Render(w io.Writer, content string) {
	md, err := glamour.Render(content, "auto")

	if err != nil {
		fmt.Fprintln(w, content)
		return
	}

	fmt.Fprintln(w, md)
}

func Response(r *foaas.Response) string {
	var sb strings.Builder

	sb.WriteString("# " + escape(r.Message) + "\n")

	if r.Subtitle != "" {
		sb.WriteString("\n_" + escape(r.Subtitle) + "_\n")
	}

	return sb.String()
}

func Operations(catalog foaas.Catalog) string {
	var sb strings.Builder

	sb.WriteString("| ID | Name | URL | Fields |\n")
	sb.WriteString("|----|------|-----|--------|\n")

	for _, o := range catalog {
		var fields []string

		for _, f := range o.Fields {
			fields = append(fields, f.Field)
		}

		fmt.Fprintf(&sb, "| %s | %s | `%s` | %s |\n", o.ID(), cell(o.Name), o.URL, strings.Join(fields, ", "))
	}

	return sb.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func escape(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
		"#", "\\#",
	)

	return replacer.Replace(s)
}
