package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/model"
	"github.com/lac-hong-legacy/folio_api/services"
)

type AuthServiceInterface interface {
	Login(req dto.LoginRequest, clientIP, userAgent string) (*dto.LoginResponse, error)
	Logout(jti string) error
	ChangePassword(adminID string, req dto.ChangePasswordRequest) error
	Verify(adminID string) (*dto.VerifyResponse, error)
	RequiredAuth() fiber.Handler
}

type ContactServiceInterface interface {
	ContactLimiter() fiber.Handler
	ProcessContact(req dto.ContactRequest) error
	BlockHistory(limit, offset int) (*dto.BlockHistoryResponse, error)
	SecurityStats() (*dto.SecurityStatsResponse, error)
	Unblock(key string) error
	CleanupExpired() (*dto.CleanupResponse, error)
}

type ContentServiceInterface interface {
	GetHome() (*services.HomePayload, error)
	UpdateHome(req dto.UpdateHomeRequest) (*model.HomeData, error)
	UpsertStat(id string, req dto.UpsertStatRequest) (*model.Stat, error)
	DeleteStat(id string) error

	GetAbout() (*services.AboutPayload, error)
	UpdateAbout(req dto.UpdateAboutRequest) (*model.AboutUs, error)
	UpsertSlide(id string, req dto.UpsertSlideRequest) (*model.AboutSlide, error)
	DeleteSlide(id string) error

	GetSkills() ([]model.Skill, error)
	UpsertSkill(id string, req dto.UpsertSkillRequest) (*model.Skill, error)
	DeleteSkill(id string) error

	GetProjects(featuredOnly bool) ([]model.Project, error)
	GetProject(id string) (*model.Project, error)
	UpsertProject(id string, req dto.UpsertProjectRequest) (*model.Project, error)
	DeleteProject(id string) error

	GetCv() (*model.Cv, error)
	UpdateCv(req dto.UpdateCvRequest) (*model.Cv, error)

	GetSeo(page string) (*model.Seo, error)
	GetAllSeo() ([]model.Seo, error)
	UpsertSeo(req dto.UpsertSeoRequest) (*model.Seo, error)

	GetFooter() (*services.FooterPayload, error)
	UpdateFooter(req dto.UpdateFooterRequest) (*model.FooterData, error)
	UpsertSocialLink(id string, req dto.UpsertSocialLinkRequest) (*model.SocialLink, error)
	DeleteSocialLink(id string) error
}

type MediaServiceInterface interface {
	UploadAsset(folder string, fileHeader *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	DeleteAsset(objectName string) error
}
