package model

// User is an account that can log in and own private tasks.
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string `gorm:"size:100;not null" json:"name"`
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    string `gorm:"size:50" json:"createdAt"`
}
