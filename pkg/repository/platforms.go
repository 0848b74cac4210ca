package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// platformsSQL is a JSON array of platform names for SQL operations
type platformsSQL []string

// Value implements driver.Valuer for database storage
func (p platformsSQL) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *platformsSQL) Scan(value interface{}) error {
	if value == nil {
		*p = platformsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for platforms: %T", value)
	}

	if len(data) == 0 {
		*p = platformsSQL{}
		return nil
	}

	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unmarshal platforms: %w", err)
	}
	return nil
}
