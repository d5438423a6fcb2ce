package dto

import "taskboard.com/taskboard/internal/constants"

type SaveSettingsRequest struct {
	UserID      string             `json:"userId"`
	ViewMode    constants.ViewMode `json:"viewMode"`
	LastChanged string             `json:"lastChanged"`
}
