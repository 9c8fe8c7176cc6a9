package dto

import "encoding/json"

// ==================== CONTENT DTOs ====================

type UpdateHomeRequest struct {
	HomeLogo     string   `json:"home_logo,omitempty" validate:"omitempty,url" example:"https://cdn.example.com/logo.png"`
	DisplayName  string   `json:"display_name,omitempty" validate:"omitempty,max=255" example:"Jane Doe"`
	MainRoles    []string `json:"main_roles,omitempty" example:"Fullstack Developer"`
	Description  string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	ClientsCount *int     `json:"clients_count,omitempty" validate:"omitempty,min=0" example:"25"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5" example:"4.9"`
}

func (u UpdateHomeRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpsertStatRequest struct {
	Label string `json:"label" validate:"required,max=255" example:"Years of experience"`
	Value string `json:"value" validate:"required,max=255" example:"7+"`
	Order int    `json:"order" validate:"min=0" example:"1"`
}

func (u UpsertStatRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpdateAboutRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,max=255" example:"About me"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Skills      []string `json:"skills,omitempty" example:"Go"`
}

func (u UpdateAboutRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpsertSlideRequest struct {
	Image   string `json:"image" validate:"required,url" example:"https://cdn.example.com/slide1.jpg"`
	Caption string `json:"caption,omitempty" validate:"omitempty,max=255" example:"Working on site"`
	Order   int    `json:"order" validate:"min=0" example:"1"`
}

func (u UpsertSlideRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpsertSkillRequest struct {
	Category string `json:"category" validate:"required,max=100" example:"Backend"`
	Name     string `json:"name" validate:"required,max=100" example:"Go"`
	Level    int    `json:"level" validate:"required,min=1,max=100" example:"90"`
}

func (u UpsertSkillRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpsertProjectRequest struct {
	Title                string   `json:"title" validate:"required,max=255" example:"Portfolio CMS"`
	ShortDescription     string   `json:"short_description" validate:"required,max=500"`
	Description          string   `json:"description" validate:"required,max=10000"`
	Image                string   `json:"image,omitempty" validate:"omitempty,url"`
	LiveURL              string   `json:"live_url,omitempty" validate:"omitempty,url"`
	Technologies         []string `json:"technologies,omitempty" example:"Go"`
	Status               string   `json:"status" validate:"required,oneof=completed in_progress planned" example:"completed"`
	DisplayOrder         int      `json:"display_order" validate:"min=0" example:"1"`
	FeaturedDisplayOrder int      `json:"featured_display_order" validate:"min=0" example:"1"`
	Featured             bool     `json:"featured" example:"true"`
}

func (u UpsertProjectRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpdateCvRequest struct {
	FileURL string `json:"file_url" validate:"required,url" example:"https://cdn.example.com/cv.pdf"`
}

func (u UpdateCvRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpsertSeoRequest struct {
	Page              string   `json:"page" validate:"required,oneof=home projects skills cv contact" example:"home"`
	Title             string   `json:"title" validate:"required,max=255"`
	Description       string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Keywords          []string `json:"keywords,omitempty" example:"portfolio"`
	SocialTitle       string   `json:"social_title,omitempty" validate:"omitempty,max=255"`
	SocialDescription string   `json:"social_description,omitempty" validate:"omitempty,max=2000"`
	SocialImage       string   `json:"social_image,omitempty" validate:"omitempty,url"`
	PageURL           string   `json:"page_url,omitempty" validate:"omitempty,url"`
}

func (u UpsertSeoRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpdateFooterRequest struct {
	Title        string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=2000"`
	OwnerEmail   string `json:"owner_email,omitempty" validate:"omitempty,email"`
	OwnerPhone   string `json:"owner_phone,omitempty" validate:"omitempty,max=64"`
	OwnerAddress string `json:"owner_address,omitempty" validate:"omitempty,max=255"`
}

func (u UpdateFooterRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpsertSocialLinkRequest struct {
	Platform string `json:"platform" validate:"required,max=100" example:"github"`
	URL      string `json:"url" validate:"required,url" example:"https://github.com/janedoe"`
	Order    int    `json:"order" validate:"min=0" example:"1"`
}

func (u UpsertSocialLinkRequest) Validate() error {
	return GetValidator().Struct(u)
}

// MarshalStrings turns a string list into the jsonb payload stored on the
// content models. Nil input keeps the column untouched upstream.
func MarshalStrings(values []string) json.RawMessage {
	if values == nil {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return raw
}
