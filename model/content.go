package model

import (
	"encoding/json"
	"time"
)

type HomeData struct {
	ID           string          `json:"id" gorm:"primaryKey;type:text;not null"`
	HomeLogo     string          `json:"home_logo" gorm:"size:512"`
	DisplayName  string          `json:"display_name" gorm:"size:255"`
	MainRoles    json.RawMessage `json:"main_roles" gorm:"type:jsonb"`
	Description  string          `json:"description" gorm:"type:text"`
	ClientsCount int             `json:"clients_count" gorm:"default:0;not null"`
	Rating       float64         `json:"rating" gorm:"default:0;not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"not null"`
}

type Stat struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Label     string    `json:"label" gorm:"not null;size:255"`
	Value     string    `json:"value" gorm:"not null;size:255"`
	Order     int       `json:"order" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

type AboutUs struct {
	ID          string          `json:"id" gorm:"primaryKey;type:text;not null"`
	Title       string          `json:"title" gorm:"size:255"`
	Description string          `json:"description" gorm:"type:text"`
	Skills      json.RawMessage `json:"skills" gorm:"type:jsonb"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"not null"`
}

type AboutSlide struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Image     string    `json:"image" gorm:"not null;size:512"`
	Caption   string    `json:"caption" gorm:"size:255"`
	Order     int       `json:"order" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

type Skill struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Category  string    `json:"category" gorm:"not null;index;size:100"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Level     int       `json:"level" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

type Project struct {
	ID                   string          `json:"id" gorm:"primaryKey;type:text;not null"`
	Title                string          `json:"title" gorm:"not null;size:255"`
	ShortDescription     string          `json:"short_description" gorm:"not null;type:text"`
	Description          string          `json:"description" gorm:"not null;type:text"`
	Image                string          `json:"image" gorm:"size:512"`
	LiveURL              string          `json:"live_url" gorm:"size:512"`
	Technologies         json.RawMessage `json:"technologies" gorm:"type:jsonb"`
	Status               string          `json:"status" gorm:"size:50"`
	DisplayOrder         int             `json:"display_order" gorm:"default:0;not null"`
	FeaturedDisplayOrder int             `json:"featured_display_order" gorm:"default:0;not null"`
	Featured             bool            `json:"featured" gorm:"default:false;not null;index"`
	CreatedAt            time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt            time.Time       `json:"updated_at" gorm:"not null"`
}

type Cv struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	FileURL   string    `json:"file_url" gorm:"not null;size:512"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

type Seo struct {
	ID                string          `json:"id" gorm:"primaryKey;type:text;not null"`
	Page              string          `json:"page" gorm:"uniqueIndex;not null;size:50"`
	Title             string          `json:"title" gorm:"not null;size:255"`
	Description       string          `json:"description" gorm:"type:text"`
	Keywords          json.RawMessage `json:"keywords" gorm:"type:jsonb"`
	SocialTitle       string          `json:"social_title" gorm:"size:255"`
	SocialDescription string          `json:"social_description" gorm:"type:text"`
	SocialImage       string          `json:"social_image" gorm:"size:512"`
	PageURL           string          `json:"page_url" gorm:"size:512"`
	CreatedAt         time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt         time.Time       `json:"updated_at" gorm:"not null"`
}

type FooterData struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Title        string    `json:"title" gorm:"size:255"`
	Description  string    `json:"description" gorm:"type:text"`
	OwnerEmail   string    `json:"owner_email" gorm:"size:255"`
	OwnerPhone   string    `json:"owner_phone" gorm:"size:64"`
	OwnerAddress string    `json:"owner_address" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null"`
}

type SocialLink struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text;not null"`
	Platform  string    `json:"platform" gorm:"not null;size:100"`
	URL       string    `json:"url" gorm:"not null;size:512"`
	Order     int       `json:"order" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}
