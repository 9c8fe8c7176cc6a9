package model

import "time"

type Admin struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:100"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// AdminJti records an issued admin token. A token is only honoured while
// its jti row exists; logout deletes the row.
type AdminJti struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	AdminID   string    `json:"admin_id" gorm:"not null;index"`
	Jti       string    `json:"jti" gorm:"uniqueIndex;not null;size:64"`
	IP        string    `json:"ip" gorm:"size:64"`
	UserAgent string    `json:"user_agent" gorm:"size:512"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}
