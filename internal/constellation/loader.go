package constellation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// envelope is the shape returned by the SNAC API "read" command.
type envelope struct {
	Constellation json.RawMessage `json:"constellation"`
}

// LoadFile loads and parses a constellation JSON file from the given path.
func LoadFile(path string) (*Constellation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constellation file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse parses JSON data into a Constellation. Both a bare record and the
// API envelope {"constellation": {...}} are accepted.
func Parse(data []byte) (*Constellation, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse constellation JSON: %w", err)
	}

	if len(env.Constellation) > 0 && !bytes.Equal(env.Constellation, []byte("null")) {
		data = env.Constellation
	}

	var c Constellation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse constellation JSON: %w", err)
	}

	return &c, nil
}
