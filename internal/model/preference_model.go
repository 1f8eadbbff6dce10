package model

import "time"

// VisitorPreference is one stored key of a visitor's display settings. The
// key/value layout mirrors what the browser keeps in local storage.
type VisitorPreference struct {
	VisitorId string    `gorm:"type:varchar(64);primaryKey" json:"visitor_id"`
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (VisitorPreference) TableName() string {
	return "visitor_preferences"
}
