package server

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"

	"github.com/invopop/yaml"
)

var (
	//go:embed catalog.yaml
	defaultCatalog []byte
)

// Entry is an operation together with the message and subtitle templates it renders.
type Entry struct {
	foaas.Operation

	Message  string `json:"message"`
	Subtitle string `json:"subtitle"`
}

func DefaultCatalog() ([]Entry, error) {
	return ParseCatalog(defaultCatalog)
}

func LoadCatalog(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return ParseCatalog(data)
}

// ParseCatalog accepts a YAML or JSON list of entries.
func ParseCatalog(data []byte) ([]Entry, error) {
	var entries []Entry

	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errors.New("catalog is empty")
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	if err := checkRoutes(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// checkRoutes rejects templates the router cannot hold together: a repeated
// placeholder within one template, or differently named placeholders at the same position.
func checkRoutes(entries []Entry) error {
	params := map[string]string{}

	for _, e := range entries {
		path, _, _ := strings.Cut(e.URL, "?")
		path, _, _ = strings.Cut(path, "#")

		var prefix string

		seen := map[string]bool{}

		for _, s := range strings.Split(path, "/") {
			if !strings.HasPrefix(s, ":") {
				prefix += "/" + s
				continue
			}

			name := s[1:]

			if seen[name] {
				return fmt.Errorf("operation %q repeats placeholder %s", e.Name, s)
			}

			seen[name] = true

			if other, ok := params[prefix]; ok && other != name {
				return fmt.Errorf("operation %q placeholder %s conflicts with :%s at %s", e.Name, s, other, prefix)
			}

			params[prefix] = name
			prefix += "/{" + name + "}"
		}
	}

	return nil
}
