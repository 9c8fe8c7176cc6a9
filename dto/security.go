package dto

import "time"

// ==================== SECURITY DASHBOARD DTOs ====================

type BlockHistoryEntry struct {
	Key             string     `json:"key" example:"ip_203.0.113.7"`
	Strikes         int        `json:"strikes" example:"2"`
	LastBlockedAt   *time.Time `json:"last_blocked_at,omitempty"`
	SuspiciousScore int        `json:"suspicious_score" example:"5"`
	IP              string     `json:"ip,omitempty" example:"203.0.113.7"`
	Email           string     `json:"email,omitempty" example:"spam@tempmail.org"`
	UserAgent       string     `json:"user_agent,omitempty" example:"curl/8.4.0"`
	BlockReason     string     `json:"block_reason,omitempty" example:"rate limit exceeded"`
	Location        string     `json:"location,omitempty" example:"Hanoi, VN"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BlockHistoryResponse struct {
	Entries []BlockHistoryEntry `json:"entries"`
	Total   int64               `json:"total" example:"42"`
}

type SecurityStatsResponse struct {
	TotalRecords     int64         `json:"total_records" example:"42"`
	CurrentlyBlocked int64         `json:"currently_blocked" example:"3"`
	PermanentBans    int64         `json:"permanent_bans" example:"1"`
	StrikeCounts     map[int]int64 `json:"strike_counts"`
	AvgSuspicion     float64       `json:"avg_suspicion" example:"2.4"`
	MaxSuspicion     int           `json:"max_suspicion" example:"9"`

	WindowKeys    int `json:"window_keys" example:"12"`
	EmailPatterns int `json:"email_patterns" example:"4"`
	IPPatterns    int `json:"ip_patterns" example:"6"`
}

type UnblockRequest struct {
	Key string `json:"key" validate:"required" example:"ip_203.0.113.7"`
}

func (u UnblockRequest) Validate() error {
	return GetValidator().Struct(u)
}

type CleanupResponse struct {
	RemovedRecords int64 `json:"removed_records" example:"7"`
	ClearedBlocks  int64 `json:"cleared_blocks" example:"2"`
}
