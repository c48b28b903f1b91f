package foaas

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Response struct {
	Message  string `json:"message"`
	Subtitle string `json:"subtitle"`
}

func decodeResponse(data []byte) (*Response, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	if fields == nil {
		return nil, errors.New("response is null")
	}

	var response Response

	if err := decodeString(fields, "message", &response.Message); err != nil {
		return nil, err
	}

	if err := decodeString(fields, "subtitle", &response.Subtitle); err != nil {
		return nil, err
	}

	return &response, nil
}

// decodeString reads a required, non-null string key.
func decodeString(fields map[string]json.RawMessage, key string, v *string) error {
	data, ok := fields[key]

	if !ok {
		return errors.New("missing key " + key)
	}

	if isNull(data) {
		return errors.New("null value for key " + key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}

	return nil
}

func isNull(data json.RawMessage) bool {
	return string(data) == "null"
}
