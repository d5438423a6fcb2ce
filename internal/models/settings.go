package model

import (
	"taskboard.com/taskboard/internal/constants"
)

// BoardSettings stores per-user board preferences, one row per user.
type BoardSettings struct {
	UserID      string             `gorm:"primaryKey;size:100" json:"userId"`
	ViewMode    constants.ViewMode `gorm:"type:varchar(10);not null;default:public" json:"viewMode"`
	LastChanged string             `gorm:"size:50" json:"lastChanged,omitempty"`
}
