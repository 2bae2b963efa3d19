package common

import (
	"encoding/json"
	"fmt"
	"time"
)

type MonthOnly struct {
	time.Time
}

const monthLayout = "2006-01" // yyyy-MM

func (m *MonthOnly) UnmarshalJSON(b []byte) error {
	// b is a quoted string like `"2024-03"`
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		m.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return fmt.Errorf("invalid month format: %v", err)
	}

	m.Time = t
	return nil
}

func (m MonthOnly) MarshalJSON() ([]byte, error) {
	if m.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(m.Format(monthLayout))
}
