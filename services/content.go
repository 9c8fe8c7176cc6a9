package services

import (
	stdctx "context"
	"time"

	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/model"
	"github.com/lac-hong-legacy/folio_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

// ContentService serves the public portfolio content and the admin edits
// behind it. Public reads go through redis; every write invalidates the
// page's cache entry.
type ContentService struct {
	context.DefaultService

	postgresSvc *PostgresService
	redisSvc    *RedisService

	cacheTTL time.Duration
}

const CONTENT_SVC = "content_svc"

const (
	cacheKeyHome     = "content:home"
	cacheKeyAbout    = "content:about"
	cacheKeySkills   = "content:skills"
	cacheKeyProjects = "content:projects"
	cacheKeyCv       = "content:cv"
	cacheKeySeo      = "content:seo"
	cacheKeyFooter   = "content:footer"
)

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.cacheTTL = time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	return nil
}

func (svc *ContentService) invalidate(keys ...string) {
	if err := svc.redisSvc.Delete(stdctx.Background(), keys...); err != nil {
		log.WithError(err).Warn("Failed to invalidate content cache")
	}
}

// cached runs loader on a cache miss and stores its result. Redis being
// down only disables the cache.
func (svc *ContentService) cached(key string, dest interface{}, loader func() (interface{}, error)) error {
	ctx := stdctx.Background()

	if err := svc.redisSvc.GetJSON(ctx, key, dest); err == nil {
		if ok, _ := svc.redisSvc.Exists(ctx, key); ok {
			return nil
		}
	}

	value, err := loader()
	if err != nil {
		return err
	}

	if err := svc.redisSvc.Set(ctx, key, value, svc.cacheTTL); err != nil {
		log.WithError(err).WithField("key", key).Debug("Failed to cache content")
	}

	return copyJSON(value, dest)
}

func copyJSON(src, dest interface{}) error {
	raw, err := shared.JSONEncoder(src)
	if err != nil {
		return err
	}
	return shared.JSONDecoder(raw, dest)
}

// ==================== HOME ====================

type HomePayload struct {
	Home  *model.HomeData `json:"home"`
	Stats []model.Stat    `json:"stats"`
}

func (svc *ContentService) GetHome() (*HomePayload, error) {
	var payload HomePayload
	err := svc.cached(cacheKeyHome, &payload, func() (interface{}, error) {
		home, err := svc.postgresSvc.GetHome()
		if err != nil {
			return nil, err
		}
		stats, err := svc.postgresSvc.GetStats()
		if err != nil {
			return nil, err
		}
		return &HomePayload{Home: home, Stats: stats}, nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (svc *ContentService) UpdateHome(req dto.UpdateHomeRequest) (*model.HomeData, error) {
	home, err := svc.postgresSvc.GetHome()
	if err != nil {
		home = &model.HomeData{CreatedAt: time.Now()}
	}

	if req.HomeLogo != "" {
		home.HomeLogo = req.HomeLogo
	}
	if req.DisplayName != "" {
		home.DisplayName = req.DisplayName
	}
	if req.MainRoles != nil {
		home.MainRoles = dto.MarshalStrings(req.MainRoles)
	}
	if req.Description != "" {
		home.Description = req.Description
	}
	if req.ClientsCount != nil {
		home.ClientsCount = *req.ClientsCount
	}
	if req.Rating != nil {
		home.Rating = *req.Rating
	}
	home.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveHome(home); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyHome)
	return home, nil
}

func (svc *ContentService) UpsertStat(id string, req dto.UpsertStatRequest) (*model.Stat, error) {
	stat := &model.Stat{ID: id, CreatedAt: time.Now()}
	if id != "" {
		existing := model.Stat{}
		if err := svc.postgresSvc.Db().Where("id = ?", id).First(&existing).Error; err != nil {
			return nil, svc.postgresSvc.HandleError(err)
		}
		stat = &existing
	}

	stat.Label = req.Label
	stat.Value = req.Value
	stat.Order = req.Order
	stat.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveStat(stat); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyHome)
	return stat, nil
}

func (svc *ContentService) DeleteStat(id string) error {
	if err := svc.postgresSvc.DeleteStat(id); err != nil {
		return err
	}
	svc.invalidate(cacheKeyHome)
	return nil
}

// ==================== ABOUT ====================

type AboutPayload struct {
	About  *model.AboutUs     `json:"about"`
	Slides []model.AboutSlide `json:"slides"`
}

func (svc *ContentService) GetAbout() (*AboutPayload, error) {
	var payload AboutPayload
	err := svc.cached(cacheKeyAbout, &payload, func() (interface{}, error) {
		about, err := svc.postgresSvc.GetAbout()
		if err != nil {
			return nil, err
		}
		slides, err := svc.postgresSvc.GetSlides()
		if err != nil {
			return nil, err
		}
		return &AboutPayload{About: about, Slides: slides}, nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (svc *ContentService) UpdateAbout(req dto.UpdateAboutRequest) (*model.AboutUs, error) {
	about, err := svc.postgresSvc.GetAbout()
	if err != nil {
		about = &model.AboutUs{CreatedAt: time.Now()}
	}

	if req.Title != "" {
		about.Title = req.Title
	}
	if req.Description != "" {
		about.Description = req.Description
	}
	if req.Skills != nil {
		about.Skills = dto.MarshalStrings(req.Skills)
	}
	about.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveAbout(about); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyAbout)
	return about, nil
}

func (svc *ContentService) UpsertSlide(id string, req dto.UpsertSlideRequest) (*model.AboutSlide, error) {
	slide := &model.AboutSlide{ID: id, CreatedAt: time.Now()}
	if id != "" {
		existing := model.AboutSlide{}
		if err := svc.postgresSvc.Db().Where("id = ?", id).First(&existing).Error; err != nil {
			return nil, svc.postgresSvc.HandleError(err)
		}
		slide = &existing
	}

	slide.Image = req.Image
	slide.Caption = req.Caption
	slide.Order = req.Order
	slide.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveSlide(slide); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyAbout)
	return slide, nil
}

func (svc *ContentService) DeleteSlide(id string) error {
	if err := svc.postgresSvc.DeleteSlide(id); err != nil {
		return err
	}
	svc.invalidate(cacheKeyAbout)
	return nil
}

// ==================== SKILLS ====================

func (svc *ContentService) GetSkills() ([]model.Skill, error) {
	var skills []model.Skill
	err := svc.cached(cacheKeySkills, &skills, func() (interface{}, error) {
		return svc.postgresSvc.GetSkills()
	})
	return skills, err
}

func (svc *ContentService) UpsertSkill(id string, req dto.UpsertSkillRequest) (*model.Skill, error) {
	skill := &model.Skill{ID: id, CreatedAt: time.Now()}
	if id != "" {
		existing := model.Skill{}
		if err := svc.postgresSvc.Db().Where("id = ?", id).First(&existing).Error; err != nil {
			return nil, svc.postgresSvc.HandleError(err)
		}
		skill = &existing
	}

	skill.Category = req.Category
	skill.Name = req.Name
	skill.Level = req.Level
	skill.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveSkill(skill); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeySkills)
	return skill, nil
}

func (svc *ContentService) DeleteSkill(id string) error {
	if err := svc.postgresSvc.DeleteSkill(id); err != nil {
		return err
	}
	svc.invalidate(cacheKeySkills)
	return nil
}

// ==================== PROJECTS ====================

func (svc *ContentService) GetProjects(featuredOnly bool) ([]model.Project, error) {
	if featuredOnly {
		return svc.postgresSvc.GetFeaturedProjects()
	}

	var projects []model.Project
	err := svc.cached(cacheKeyProjects, &projects, func() (interface{}, error) {
		return svc.postgresSvc.GetProjects()
	})
	return projects, err
}

func (svc *ContentService) GetProject(id string) (*model.Project, error) {
	return svc.postgresSvc.GetProject(id)
}

func (svc *ContentService) UpsertProject(id string, req dto.UpsertProjectRequest) (*model.Project, error) {
	project := &model.Project{ID: id, CreatedAt: time.Now()}
	if id != "" {
		existing, err := svc.postgresSvc.GetProject(id)
		if err != nil {
			return nil, err
		}
		project = existing
	}

	project.Title = req.Title
	project.ShortDescription = req.ShortDescription
	project.Description = req.Description
	project.Image = req.Image
	project.LiveURL = req.LiveURL
	if req.Technologies != nil {
		project.Technologies = dto.MarshalStrings(req.Technologies)
	}
	project.Status = req.Status
	project.DisplayOrder = req.DisplayOrder
	project.FeaturedDisplayOrder = req.FeaturedDisplayOrder
	project.Featured = req.Featured
	project.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveProject(project); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyProjects)
	return project, nil
}

func (svc *ContentService) DeleteProject(id string) error {
	if err := svc.postgresSvc.DeleteProject(id); err != nil {
		return err
	}
	svc.invalidate(cacheKeyProjects)
	return nil
}

// ==================== CV / SEO / FOOTER ====================

func (svc *ContentService) GetCv() (*model.Cv, error) {
	var cv model.Cv
	err := svc.cached(cacheKeyCv, &cv, func() (interface{}, error) {
		return svc.postgresSvc.GetCv()
	})
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (svc *ContentService) UpdateCv(req dto.UpdateCvRequest) (*model.Cv, error) {
	cv, err := svc.postgresSvc.GetCv()
	if err != nil {
		cv = &model.Cv{CreatedAt: time.Now()}
	}

	cv.FileURL = req.FileURL
	cv.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveCv(cv); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyCv)
	return cv, nil
}

func (svc *ContentService) GetSeo(page string) (*model.Seo, error) {
	return svc.postgresSvc.GetSeo(page)
}

func (svc *ContentService) GetAllSeo() ([]model.Seo, error) {
	var seo []model.Seo
	err := svc.cached(cacheKeySeo, &seo, func() (interface{}, error) {
		return svc.postgresSvc.GetAllSeo()
	})
	return seo, err
}

func (svc *ContentService) UpsertSeo(req dto.UpsertSeoRequest) (*model.Seo, error) {
	seo, err := svc.postgresSvc.GetSeo(req.Page)
	if err != nil {
		seo = &model.Seo{Page: req.Page, CreatedAt: time.Now()}
	}

	seo.Title = req.Title
	seo.Description = req.Description
	if req.Keywords != nil {
		seo.Keywords = dto.MarshalStrings(req.Keywords)
	}
	seo.SocialTitle = req.SocialTitle
	seo.SocialDescription = req.SocialDescription
	seo.SocialImage = req.SocialImage
	seo.PageURL = req.PageURL
	seo.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveSeo(seo); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeySeo)
	return seo, nil
}

type FooterPayload struct {
	Footer *model.FooterData  `json:"footer"`
	Links  []model.SocialLink `json:"links"`
}

func (svc *ContentService) GetFooter() (*FooterPayload, error) {
	var payload FooterPayload
	err := svc.cached(cacheKeyFooter, &payload, func() (interface{}, error) {
		footer, err := svc.postgresSvc.GetFooter()
		if err != nil {
			return nil, err
		}
		links, err := svc.postgresSvc.GetSocialLinks()
		if err != nil {
			return nil, err
		}
		return &FooterPayload{Footer: footer, Links: links}, nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (svc *ContentService) UpdateFooter(req dto.UpdateFooterRequest) (*model.FooterData, error) {
	footer, err := svc.postgresSvc.GetFooter()
	if err != nil {
		footer = &model.FooterData{CreatedAt: time.Now()}
	}

	if req.Title != "" {
		footer.Title = req.Title
	}
	if req.Description != "" {
		footer.Description = req.Description
	}
	if req.OwnerEmail != "" {
		footer.OwnerEmail = req.OwnerEmail
	}
	if req.OwnerPhone != "" {
		footer.OwnerPhone = req.OwnerPhone
	}
	if req.OwnerAddress != "" {
		footer.OwnerAddress = req.OwnerAddress
	}
	footer.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveFooter(footer); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyFooter)
	return footer, nil
}

func (svc *ContentService) UpsertSocialLink(id string, req dto.UpsertSocialLinkRequest) (*model.SocialLink, error) {
	link := &model.SocialLink{ID: id, CreatedAt: time.Now()}
	if id != "" {
		existing := model.SocialLink{}
		if err := svc.postgresSvc.Db().Where("id = ?", id).First(&existing).Error; err != nil {
			return nil, svc.postgresSvc.HandleError(err)
		}
		link = &existing
	}

	link.Platform = req.Platform
	link.URL = req.URL
	link.Order = req.Order
	link.UpdatedAt = time.Now()

	if err := svc.postgresSvc.SaveSocialLink(link); err != nil {
		return nil, err
	}
	svc.invalidate(cacheKeyFooter)
	return link, nil
}

func (svc *ContentService) DeleteSocialLink(id string) error {
	if err := svc.postgresSvc.DeleteSocialLink(id); err != nil {
		return err
	}
	svc.invalidate(cacheKeyFooter)
	return nil
}
