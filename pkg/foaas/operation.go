package foaas

import (
	"net/url"
	"slices"
	"strings"
)

type Field struct {
	Name  string `json:"name"`
	Field string `json:"field"`
}

// Token is the placeholder as it appears in an operation URL, e.g. ":from".
func (f Field) Token() string {
	return ":" + f.Field
}

type Operation struct {
	Name string `json:"name"`
	URL  string `json:"url"`

	Fields []Field `json:"fields"`
}

// ID derives a short identifier from the literal path segments,
// "/anyway/:company/:from" becomes "anyway".
func (o *Operation) ID() string {
	var parts []string

	for _, s := range segments(o.URL) {
		if s == "" || isPlaceholder(s) {
			continue
		}

		parts = append(parts, strings.ToLower(s))
	}

	return strings.Join(parts, "_")
}

// Placeholders lists the distinct placeholder tokens of the URL template in order of appearance.
func (o *Operation) Placeholders() []string {
	var result []string

	for _, s := range segments(o.URL) {
		if !isPlaceholder(s) || slices.Contains(result, s) {
			continue
		}

		result = append(result, s)
	}

	return result
}

// Validate checks that fields and template placeholders correspond one to one.
func (o *Operation) Validate() error {
	placeholders := o.Placeholders()

	var missing []string
	var unknown []string

	seen := map[string]int{}

	for _, f := range o.Fields {
		seen[f.Token()]++

		if !slices.Contains(placeholders, f.Token()) {
			unknown = append(unknown, f.Token())
		}
	}

	for _, p := range placeholders {
		if seen[p] == 0 {
			missing = append(missing, p)
		}
	}

	for token, n := range seen {
		if n > 1 && !slices.Contains(unknown, token) {
			unknown = append(unknown, token)
		}
	}

	if len(missing) == 0 && len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)

	return &TemplateError{
		Operation: o.Name,
		URL:       o.URL,

		Missing: missing,
		Unknown: unknown,
	}
}

// Expand substitutes values, in field order, into the URL template and returns the escaped path.
func (o *Operation) Expand(values []string) (string, error) {
	if len(values) != len(o.Fields) {
		return "", &ArityError{
			Operation: o.Name,

			Want: len(o.Fields),
			Got:  len(values),
		}
	}

	if err := o.Validate(); err != nil {
		return "", err
	}

	mapping := map[string]string{}

	for i, f := range o.Fields {
		mapping[f.Token()] = url.PathEscape(values[i])
	}

	path, suffix := split(o.URL)
	parts := strings.Split(path, "/")

	for i, s := range parts {
		if !isPlaceholder(s) {
			continue
		}

		value, ok := mapping[s]

		if !ok {
			return "", &TemplateError{
				Operation: o.Name,
				URL:       o.URL,

				Missing: []string{s},
			}
		}

		parts[i] = value
	}

	return strings.Join(parts, "/") + suffix, nil
}

// HasFields reports whether the operation's field set equals names, ignoring order.
// Duplicate fields never match.
func (o *Operation) HasFields(names ...string) bool {
	if len(o.Fields) != len(names) {
		return false
	}

	seen := map[string]bool{}

	for _, f := range o.Fields {
		if seen[f.Field] || !slices.Contains(names, f.Field) {
			return false
		}

		seen[f.Field] = true
	}

	return true
}

func segments(u string) []string {
	path, _ := split(u)
	return strings.Split(path, "/")
}

func split(u string) (string, string) {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i], u[i:]
	}

	return u, ""
}

func isPlaceholder(s string) bool {
	return len(s) > 1 && s[0] == ':'
}
