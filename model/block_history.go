package model

import "time"

// BlockHistory is the durable strike ledger behind the contact limiter.
// One row per tracking key (ip_*, email_*, fp_*, subnet_*). Strikes only
// grow over the life of a row; an administrative unblock resets them to 0.
// LastBlockedAt is cleared once the block duration for the current strike
// count has elapsed, which re-arms the key without losing strike history.
type BlockHistory struct {
	ID              string     `json:"id" gorm:"primaryKey;type:text;not null"`
	Key             string     `json:"key" gorm:"uniqueIndex;not null;size:255"`
	Strikes         int        `json:"strikes" gorm:"default:0;not null;index:idx_block_strikes"`
	LastBlockedAt   *time.Time `json:"last_blocked_at,omitempty" gorm:"index;index:idx_block_strikes"`
	SuspiciousScore int        `json:"suspicious_score" gorm:"default:0;not null"`
	IP              string     `json:"ip" gorm:"size:64"`
	Email           string     `json:"email" gorm:"size:255"`
	UserAgent       string     `json:"user_agent" gorm:"size:512"`
	BlockReason     string     `json:"block_reason" gorm:"size:255"`
	Location        string     `json:"location" gorm:"size:255"`
	CreatedAt       time.Time  `json:"created_at" gorm:"not null;index"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"not null"`
}
