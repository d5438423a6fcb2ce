package model

// Contact is a reference target for task assignment.
type Contact struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Firstname string `gorm:"size:100;not null" json:"firstname"`
	Lastname  string `gorm:"size:100" json:"lastname"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
}
