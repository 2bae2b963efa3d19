package model

import "time"

// Setting is one persisted key/value entry. The dashboard stores the few
// values it needs between sessions here instead of browser storage.
type Setting struct {
	Key       string    `gorm:"primaryKey;column:key" json:"key"`
	Value     string    `gorm:"column:value" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Setting) TableName() string {
	return "settings"
}

// Settings is the typed view of the persisted configuration.
type Settings struct {
	EmployeeName string  `json:"employeeName"`
	HourlyRate   float64 `json:"hourlyRate"`
	SourceURL    string  `json:"sourceUrl"`
}
