package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/lac-hong-legacy/folio_api/docs"
	"github.com/lac-hong-legacy/folio_api/services/handlers"
	"github.com/lac-hong-legacy/folio_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	contactSvc    *ContactService
	contentSvc    *ContentService
	mediaSvc      *MediaService
	monitoringSvc *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.contactSvc = svc.Service(CONTACT_SVC).(*ContactService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	svc.app = fiber.New(fiber.Config{
		AppName:      "folio_api",
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
		ErrorHandler: svc.handleError,
	})

	svc.app.Use(recover.New())
	svc.app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Retry-After",
	}))
	svc.app.Use(MonitoringMiddleware(svc.monitoringSvc))

	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes()

	svc.app.Use(func(c *fiber.Ctx) error {
		return shared.NewNotFoundError(errors.New("page not found"), "Page not found")
	})

	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes() {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	contactHandler := handlers.NewContactHandler(svc.contactSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc)
	securityHandler := handlers.NewSecurityHandler(svc.contactSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	v1 := svc.app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	// Public content
	content := v1.Group("/content")
	content.Get("/home", contentHandler.GetHome)
	content.Get("/about", contentHandler.GetAbout)
	content.Get("/skills", contentHandler.GetSkills)
	content.Get("/projects", contentHandler.GetProjects)
	content.Get("/projects/:projectId", contentHandler.GetProject)
	content.Get("/cv", contentHandler.GetCv)
	content.Get("/seo", contentHandler.GetSeo)
	content.Get("/footer", contentHandler.GetFooter)

	// Contact, guarded by the abuse limiter
	v1.Post("/contact", svc.contactSvc.ContactLimiter(), contactHandler.SendMessage)

	// Auth
	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)

	admin := v1.Group("/admin", svc.authSvc.RequiredAuth())
	admin.Post("/auth/logout", authHandler.Logout)
	admin.Put("/auth/password", authHandler.ChangePassword)
	admin.Get("/verify/jwt", authHandler.Verify)

	// Content management
	adminContent := admin.Group("/content")
	adminContent.Put("/home", contentHandler.UpdateHome)
	adminContent.Put("/stats", contentHandler.UpsertStat)
	adminContent.Put("/stats/:statId", contentHandler.UpsertStat)
	adminContent.Delete("/stats/:statId", contentHandler.DeleteStat)
	adminContent.Put("/about", contentHandler.UpdateAbout)
	adminContent.Put("/slides", contentHandler.UpsertSlide)
	adminContent.Put("/slides/:slideId", contentHandler.UpsertSlide)
	adminContent.Delete("/slides/:slideId", contentHandler.DeleteSlide)
	adminContent.Put("/skills", contentHandler.UpsertSkill)
	adminContent.Put("/skills/:skillId", contentHandler.UpsertSkill)
	adminContent.Delete("/skills/:skillId", contentHandler.DeleteSkill)
	adminContent.Put("/projects", contentHandler.UpsertProject)
	adminContent.Put("/projects/:projectId", contentHandler.UpsertProject)
	adminContent.Delete("/projects/:projectId", contentHandler.DeleteProject)
	adminContent.Put("/cv", contentHandler.UpdateCv)
	adminContent.Put("/seo", contentHandler.UpsertSeo)
	adminContent.Put("/footer", contentHandler.UpdateFooter)
	adminContent.Put("/social-links", contentHandler.UpsertSocialLink)
	adminContent.Put("/social-links/:linkId", contentHandler.UpsertSocialLink)
	adminContent.Delete("/social-links/:linkId", contentHandler.DeleteSocialLink)

	// Media
	admin.Post("/media/:folder", mediaHandler.UploadAsset)
	admin.Delete("/media", mediaHandler.DeleteAsset)

	// Security dashboard
	security := admin.Group("/security")
	security.Get("/blocks", securityHandler.ListBlocks)
	security.Get("/stats", securityHandler.Stats)
	security.Post("/unblock", securityHandler.Unblock)
	security.Post("/cleanup", securityHandler.Cleanup)
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseJSON(c, fiber.StatusInternalServerError, "Internal server error", nil)
}
