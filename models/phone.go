// File: models/phone.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Phone is a phone number stored as a number. Form posts bind it through its
// int64 kind; JSON bodies may send it as a number or as a string of digits.
type Phone int64

func (p *Phone) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*p = 0
			return nil
		}
		for _, r := range raw {
			if r < '0' || r > '9' {
				return fmt.Errorf("phone number %q: digits only", s)
			}
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("phone number %s: %w", data, err)
	}
	*p = Phone(n)
	return nil
}
