package foaas

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Catalog []Operation

func decodeCatalog(data []byte) (Catalog, error) {
	var items []map[string]json.RawMessage

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	if items == nil {
		return nil, errors.New("catalog is null")
	}

	catalog := make(Catalog, 0, len(items))

	for i, item := range items {
		for _, key := range []string{"name", "url", "fields"} {
			if v, ok := item[key]; !ok || isNull(v) {
				return nil, fmt.Errorf("operation at index %d: missing key %s", i, key)
			}
		}

		var o Operation

		if err := json.Unmarshal(item["name"], &o.Name); err != nil {
			return nil, fmt.Errorf("operation at index %d: %w", i, err)
		}

		if err := json.Unmarshal(item["url"], &o.URL); err != nil {
			return nil, fmt.Errorf("operation at index %d: %w", i, err)
		}

		fields, err := decodeFields(item["fields"])

		if err != nil {
			return nil, fmt.Errorf("operation at index %d: %w", i, err)
		}

		o.Fields = fields

		if o.Name == "" || o.URL == "" {
			return nil, fmt.Errorf("operation without name or url at index %d", i)
		}

		catalog = append(catalog, o)
	}

	return catalog, nil
}

func decodeFields(data json.RawMessage) ([]Field, error) {
	var items []map[string]json.RawMessage

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	fields := make([]Field, 0, len(items))

	for i, item := range items {
		var f Field

		if err := decodeString(item, "name", &f.Name); err != nil {
			return nil, fmt.Errorf("field at index %d: %w", i, err)
		}

		if err := decodeString(item, "field", &f.Field); err != nil {
			return nil, fmt.Errorf("field at index %d: %w", i, err)
		}

		if f.Field == "" {
			return nil, fmt.Errorf("field at index %d: empty placeholder", i)
		}

		fields = append(fields, f)
	}

	return fields, nil
}

// Find looks an operation up by ID, URL template or name.
func (c Catalog) Find(key string) (*Operation, bool) {
	key = strings.TrimSpace(key)

	if key == "" {
		return nil, false
	}

	for i := range c {
		o := &c[i]

		if strings.EqualFold(o.ID(), key) || o.URL == key || strings.EqualFold(o.Name, key) {
			return o, true
		}
	}

	return nil, false
}

// Match returns the valid operations whose field set is exactly names.
func (c Catalog) Match(names ...string) []*Operation {
	var result []*Operation

	for i := range c {
		if !c[i].HasFields(names...) || c[i].Validate() != nil {
			continue
		}

		result = append(result, &c[i])
	}

	return result
}
