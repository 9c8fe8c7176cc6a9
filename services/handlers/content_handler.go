package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/folio_api/dto"
	"github.com/lac-hong-legacy/folio_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// ==================== PUBLIC READS ====================

// @Summary Get Home
// @Description Get the home section with its stats
// @Tags content
// @Produce json
// @Success 200 {object} shared.Response{data=services.HomePayload}
// @Router /api/v1/content/home [get]
func (h *ContentHandler) GetHome(c *fiber.Ctx) error {
	payload, err := h.contentSvc.GetHome()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", payload)
}

// @Summary Get About
// @Description Get the about section with its slides
// @Tags content
// @Produce json
// @Success 200 {object} shared.Response{data=services.AboutPayload}
// @Router /api/v1/content/about [get]
func (h *ContentHandler) GetAbout(c *fiber.Ctx) error {
	payload, err := h.contentSvc.GetAbout()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", payload)
}

// @Summary Get Skills
// @Description Get all skills grouped by category order
// @Tags content
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Skill}
// @Router /api/v1/content/skills [get]
func (h *ContentHandler) GetSkills(c *fiber.Ctx) error {
	skills, err := h.contentSvc.GetSkills()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", skills)
}

// @Summary Get Projects
// @Description Get projects, optionally only the featured set
// @Tags content
// @Produce json
// @Param featured query bool false "Return only featured projects"
// @Success 200 {object} shared.Response{data=[]model.Project}
// @Router /api/v1/content/projects [get]
func (h *ContentHandler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.contentSvc.GetProjects(c.QueryBool("featured"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", projects)
}

// @Summary Get Project
// @Description Get one project by id
// @Tags content
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} shared.Response{data=model.Project}
// @Router /api/v1/content/projects/{projectId} [get]
func (h *ContentHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.contentSvc.GetProject(c.Params("projectId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", project)
}

// @Summary Get CV
// @Description Get the CV download descriptor
// @Tags content
// @Produce json
// @Success 200 {object} shared.Response{data=model.Cv}
// @Router /api/v1/content/cv [get]
func (h *ContentHandler) GetCv(c *fiber.Ctx) error {
	cv, err := h.contentSvc.GetCv()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", cv)
}

// @Summary Get SEO
// @Description Get SEO metadata, either for one page or all pages
// @Tags content
// @Produce json
// @Param page query string false "Page name (home, projects, skills, cv, contact)"
// @Success 200 {object} shared.Response
// @Router /api/v1/content/seo [get]
func (h *ContentHandler) GetSeo(c *fiber.Ctx) error {
	if page := c.Query("page"); page != "" {
		seo, err := h.contentSvc.GetSeo(page)
		if err != nil {
			return err
		}
		return shared.ResponseJSON(c, fiber.StatusOK, "Success", seo)
	}

	seo, err := h.contentSvc.GetAllSeo()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", seo)
}

// @Summary Get Footer
// @Description Get the footer section with social links
// @Tags content
// @Produce json
// @Success 200 {object} shared.Response{data=services.FooterPayload}
// @Router /api/v1/content/footer [get]
func (h *ContentHandler) GetFooter(c *fiber.Ctx) error {
	payload, err := h.contentSvc.GetFooter()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", payload)
}

// ==================== ADMIN EDITS ====================

// @Summary Update Home
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateHomeRequest body dto.UpdateHomeRequest true "Home fields"
// @Success 200 {object} shared.Response{data=model.HomeData}
// @Router /api/v1/admin/content/home [put]
func (h *ContentHandler) UpdateHome(c *fiber.Ctx) error {
	var req dto.UpdateHomeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	home, err := h.contentSvc.UpdateHome(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", home)
}

// @Summary Upsert Stat
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statId path string false "Stat ID (empty to create)"
// @Param upsertStatRequest body dto.UpsertStatRequest true "Stat fields"
// @Success 200 {object} shared.Response{data=model.Stat}
// @Router /api/v1/admin/content/stats/{statId} [put]
func (h *ContentHandler) UpsertStat(c *fiber.Ctx) error {
	var req dto.UpsertStatRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	stat, err := h.contentSvc.UpsertStat(c.Params("statId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", stat)
}

// @Summary Delete Stat
// @Tags content-admin
// @Produce json
// @Security BearerAuth
// @Param statId path string true "Stat ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/content/stats/{statId} [delete]
func (h *ContentHandler) DeleteStat(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteStat(c.Params("statId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Update About
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateAboutRequest body dto.UpdateAboutRequest true "About fields"
// @Success 200 {object} shared.Response{data=model.AboutUs}
// @Router /api/v1/admin/content/about [put]
func (h *ContentHandler) UpdateAbout(c *fiber.Ctx) error {
	var req dto.UpdateAboutRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	about, err := h.contentSvc.UpdateAbout(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", about)
}

// @Summary Upsert Slide
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slideId path string false "Slide ID (empty to create)"
// @Param upsertSlideRequest body dto.UpsertSlideRequest true "Slide fields"
// @Success 200 {object} shared.Response{data=model.AboutSlide}
// @Router /api/v1/admin/content/slides/{slideId} [put]
func (h *ContentHandler) UpsertSlide(c *fiber.Ctx) error {
	var req dto.UpsertSlideRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	slide, err := h.contentSvc.UpsertSlide(c.Params("slideId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", slide)
}

// @Summary Delete Slide
// @Tags content-admin
// @Produce json
// @Security BearerAuth
// @Param slideId path string true "Slide ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/content/slides/{slideId} [delete]
func (h *ContentHandler) DeleteSlide(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteSlide(c.Params("slideId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Upsert Skill
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skillId path string false "Skill ID (empty to create)"
// @Param upsertSkillRequest body dto.UpsertSkillRequest true "Skill fields"
// @Success 200 {object} shared.Response{data=model.Skill}
// @Router /api/v1/admin/content/skills/{skillId} [put]
func (h *ContentHandler) UpsertSkill(c *fiber.Ctx) error {
	var req dto.UpsertSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	skill, err := h.contentSvc.UpsertSkill(c.Params("skillId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", skill)
}

// @Summary Delete Skill
// @Tags content-admin
// @Produce json
// @Security BearerAuth
// @Param skillId path string true "Skill ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/content/skills/{skillId} [delete]
func (h *ContentHandler) DeleteSkill(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteSkill(c.Params("skillId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Upsert Project
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string false "Project ID (empty to create)"
// @Param upsertProjectRequest body dto.UpsertProjectRequest true "Project fields"
// @Success 200 {object} shared.Response{data=model.Project}
// @Router /api/v1/admin/content/projects/{projectId} [put]
func (h *ContentHandler) UpsertProject(c *fiber.Ctx) error {
	var req dto.UpsertProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	project, err := h.contentSvc.UpsertProject(c.Params("projectId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", project)
}

// @Summary Delete Project
// @Tags content-admin
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/content/projects/{projectId} [delete]
func (h *ContentHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteProject(c.Params("projectId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Update CV
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateCvRequest body dto.UpdateCvRequest true "CV file URL"
// @Success 200 {object} shared.Response{data=model.Cv}
// @Router /api/v1/admin/content/cv [put]
func (h *ContentHandler) UpdateCv(c *fiber.Ctx) error {
	var req dto.UpdateCvRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	cv, err := h.contentSvc.UpdateCv(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", cv)
}

// @Summary Upsert SEO
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param upsertSeoRequest body dto.UpsertSeoRequest true "SEO fields (keyed by page)"
// @Success 200 {object} shared.Response{data=model.Seo}
// @Router /api/v1/admin/content/seo [put]
func (h *ContentHandler) UpsertSeo(c *fiber.Ctx) error {
	var req dto.UpsertSeoRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	seo, err := h.contentSvc.UpsertSeo(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", seo)
}

// @Summary Update Footer
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateFooterRequest body dto.UpdateFooterRequest true "Footer fields"
// @Success 200 {object} shared.Response{data=model.FooterData}
// @Router /api/v1/admin/content/footer [put]
func (h *ContentHandler) UpdateFooter(c *fiber.Ctx) error {
	var req dto.UpdateFooterRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	footer, err := h.contentSvc.UpdateFooter(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", footer)
}

// @Summary Upsert Social Link
// @Tags content-admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param linkId path string false "Link ID (empty to create)"
// @Param upsertSocialLinkRequest body dto.UpsertSocialLinkRequest true "Link fields"
// @Success 200 {object} shared.Response{data=model.SocialLink}
// @Router /api/v1/admin/content/social-links/{linkId} [put]
func (h *ContentHandler) UpsertSocialLink(c *fiber.Ctx) error {
	var req dto.UpsertSocialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	link, err := h.contentSvc.UpsertSocialLink(c.Params("linkId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Updated", link)
}

// @Summary Delete Social Link
// @Tags content-admin
// @Produce json
// @Security BearerAuth
// @Param linkId path string true "Link ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/content/social-links/{linkId} [delete]
func (h *ContentHandler) DeleteSocialLink(c *fiber.Ctx) error {
	if err := h.contentSvc.DeleteSocialLink(c.Params("linkId")); err != nil {
		return err
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}
