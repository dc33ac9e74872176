package types

import (
	"encoding/json"
	"fmt"
)

// StringList decodes from either a JSON string or an array of strings. Clients
// historically posted a single selection as a bare string, so both forms stay
// accepted.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*s = StringList(many)
	return nil
}
