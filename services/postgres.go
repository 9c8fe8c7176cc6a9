package services

import (
	stdctx "context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lac-hong-legacy/folio_api/limiter"
	"github.com/lac-hong-legacy/folio_api/model"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PostgresService owns the GORM connection. Besides the CMS content CRUD
// it implements limiter.Ledger, making it the durable strike store behind
// the contact gate.
type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

// Retention horizon for low-severity ledger rows.
const blockHistoryMaxAge = 38 * 24 * time.Hour

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "folio_api"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := os.Getenv("DB_TIMEZONE")
		if timezone == "" {
			timezone = "UTC"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	models := []interface{}{
		// Security
		&model.BlockHistory{},
		&model.Admin{},
		&model.AdminJti{},

		// Content
		&model.HomeData{},
		&model.Stat{},
		&model.AboutUs{},
		&model.AboutSlide{},
		&model.Skill{},
		&model.Project{},
		&model.Cv{},
		&model.Seo{},
		&model.FooterData{},
		&model.SocialLink{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	// Daily retention sweep of the strike ledger and stale admin tokens.
	dailyTicker := time.NewTicker(24 * time.Hour)
	go func() {
		for range dailyTicker.C {
			if _, err := ds.CleanupOldRecords(); err != nil {
				log.Printf("Failed to cleanup old block records: %v", err)
			}
			if err := ds.CleanupExpiredJtis(); err != nil {
				log.Printf("Failed to cleanup expired tokens: %v", err)
			}
		}
	}()

	// Hourly re-arm of temporary blocks whose duration has elapsed, so
	// keys unblock even when they never come back to trigger the lazy
	// path.
	hourlyTicker := time.NewTicker(time.Hour)
	go func() {
		for range hourlyTicker.C {
			if _, err := ds.ClearElapsedBlocks(limiter.ConfigFromEnv()); err != nil {
				log.Printf("Failed to clear elapsed blocks: %v", err)
			}
		}
	}()

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError
		errorType = "TRANSACTION_ERROR"
	default:
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			statusCode = http.StatusConflict
			errorType = "UNIQUE_CONSTRAINT"
		} else if strings.Contains(err.Error(), "relation") && strings.Contains(err.Error(), "does not exist") {
			statusCode = http.StatusInternalServerError
			errorType = "SCHEMA_ERROR"
		} else if strings.Contains(err.Error(), "connection refused") {
			statusCode = http.StatusServiceUnavailable
			errorType = "DATABASE_CONNECTION_ERROR"
		} else {
			statusCode = http.StatusInternalServerError
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}

// ==================== STRIKE LEDGER (limiter.Ledger) ====================

func (ds *PostgresService) Find(ctx stdctx.Context, keys []string) ([]limiter.Record, error) {
	var rows []model.BlockHistory
	if err := ds.db.WithContext(ctx).Where("key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]limiter.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, limiter.Record{
			Key:             row.Key,
			Strikes:         row.Strikes,
			LastBlockedAt:   row.LastBlockedAt,
			SuspiciousScore: row.SuspiciousScore,
		})
	}
	return records, nil
}

func (ds *PostgresService) ClearBlocks(ctx stdctx.Context, keys []string) error {
	return ds.db.WithContext(ctx).Model(&model.BlockHistory{}).
		Where("key IN ?", keys).
		Updates(map[string]interface{}{
			"last_blocked_at": nil,
			"updated_at":      time.Now(),
		}).Error
}

// Upsert writes one ledger row in a single statement so concurrent strike
// writes to the same key cannot lose an update.
func (ds *PostgresService) Upsert(ctx stdctx.Context, rec limiter.Record, meta limiter.Metadata) error {
	id, _ := uuid.NewV7()
	now := time.Now()

	row := model.BlockHistory{
		ID:              id.String(),
		Key:             rec.Key,
		Strikes:         rec.Strikes,
		LastBlockedAt:   rec.LastBlockedAt,
		SuspiciousScore: rec.SuspiciousScore,
		IP:              meta.IP,
		Email:           meta.Email,
		UserAgent:       meta.UserAgent,
		BlockReason:     meta.BlockReason,
		Location:        meta.Location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return ds.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"strikes":          gorm.Expr("GREATEST(block_histories.strikes, ?)", rec.Strikes),
			"last_blocked_at":  rec.LastBlockedAt,
			"suspicious_score": gorm.Expr("GREATEST(block_histories.suspicious_score, ?)", rec.SuspiciousScore),
			"ip":               meta.IP,
			"email":            meta.Email,
			"user_agent":       meta.UserAgent,
			"block_reason":     meta.BlockReason,
			"location":         meta.Location,
			"updated_at":       now,
		}),
	}).Create(&row).Error
}

// ==================== SECURITY DASHBOARD ====================

func (ds *PostgresService) ListBlockHistory(limit, offset int) ([]model.BlockHistory, int64, error) {
	var total int64
	if err := ds.db.Model(&model.BlockHistory{}).Count(&total).Error; err != nil {
		return nil, 0, ds.HandleError(err)
	}

	var rows []model.BlockHistory
	err := ds.db.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, ds.HandleError(err)
	}
	return rows, total, nil
}

type SecurityStats struct {
	TotalRecords     int64
	CurrentlyBlocked int64
	PermanentBans    int64
	StrikeCounts     map[int]int64
	AvgSuspicion     float64
	MaxSuspicion     int
}

func (ds *PostgresService) GetSecurityStats() (*SecurityStats, error) {
	stats := &SecurityStats{StrikeCounts: make(map[int]int64)}

	if err := ds.db.Model(&model.BlockHistory{}).Count(&stats.TotalRecords).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	if err := ds.db.Model(&model.BlockHistory{}).
		Where("last_blocked_at IS NOT NULL").
		Count(&stats.CurrentlyBlocked).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	if err := ds.db.Model(&model.BlockHistory{}).
		Where("strikes >= ? AND last_blocked_at IS NOT NULL", 5).
		Count(&stats.PermanentBans).Error; err != nil {
		return nil, ds.HandleError(err)
	}

	var strikeRows []struct {
		Strikes int
		Count   int64
	}
	err := ds.db.Model(&model.BlockHistory{}).
		Select("strikes, COUNT(*) as count").
		Group("strikes").
		Scan(&strikeRows).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	for _, row := range strikeRows {
		stats.StrikeCounts[row.Strikes] = row.Count
	}

	var suspicion struct {
		Avg float64
		Max int
	}
	err = ds.db.Model(&model.BlockHistory{}).
		Select("COALESCE(AVG(suspicious_score), 0) as avg, COALESCE(MAX(suspicious_score), 0) as max").
		Scan(&suspicion).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	stats.AvgSuspicion = suspicion.Avg
	stats.MaxSuspicion = suspicion.Max

	return stats, nil
}

// UnblockKey is the administrative reset: strikes back to zero and the
// active block lifted.
func (ds *PostgresService) UnblockKey(key string) error {
	result := ds.db.Model(&model.BlockHistory{}).
		Where("key = ?", key).
		Updates(map[string]interface{}{
			"strikes":         0,
			"last_blocked_at": nil,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CleanupOldRecords drops low-severity ledger rows past the retention
// horizon. Rows under an active block or at max strikes are kept.
func (ds *PostgresService) CleanupOldRecords() (int64, error) {
	cutoff := time.Now().Add(-blockHistoryMaxAge)

	result := ds.db.Where("updated_at < ? AND strikes < ? AND last_blocked_at IS NULL", cutoff, 5).
		Delete(&model.BlockHistory{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClearElapsedBlocks re-arms every temporary block whose duration for its
// strike count has passed.
func (ds *PostgresService) ClearElapsedBlocks(cfg limiter.Config) (int64, error) {
	now := time.Now()
	var cleared int64

	// Permanent blocks sit at the top of the escalation table and are
	// never re-armed here.
	for strikes := 1; strikes <= len(cfg.BlockDurations); strikes++ {
		duration := cfg.BlockDurations[strikes-1]
		if duration == limiter.Permanent {
			continue
		}

		result := ds.db.Model(&model.BlockHistory{}).
			Where("strikes = ? AND last_blocked_at IS NOT NULL AND last_blocked_at < ?",
				strikes, now.Add(-duration)).
			Updates(map[string]interface{}{
				"last_blocked_at": nil,
				"updated_at":      now,
			})
		if result.Error != nil {
			return cleared, result.Error
		}
		cleared += result.RowsAffected
	}

	return cleared, nil
}

// ==================== ADMIN ACCOUNT ====================

func (ds *PostgresService) GetAdminByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	if err := ds.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (ds *PostgresService) GetAdmin(id string) (*model.Admin, error) {
	var admin model.Admin
	if err := ds.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &admin, nil
}

func (ds *PostgresService) CreateAdmin(admin *model.Admin) (*model.Admin, error) {
	if admin.ID == "" {
		id, _ := uuid.NewV7()
		admin.ID = id.String()
	}
	if err := ds.db.Create(admin).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return admin, nil
}

func (ds *PostgresService) UpdateAdminPassword(adminID, hashed string) error {
	err := ds.db.Model(&model.Admin{}).Where("id = ?", adminID).
		Update("password", hashed).Error
	return ds.HandleError(err)
}

func (ds *PostgresService) CreateJti(jti *model.AdminJti) error {
	id, _ := uuid.NewV7()
	jti.ID = id.String()
	if err := ds.db.Create(jti).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetJti(jti string) (*model.AdminJti, error) {
	var row model.AdminJti
	if err := ds.db.Where("jti = ?", jti).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (ds *PostgresService) DeleteJti(jti string) error {
	return ds.db.Where("jti = ?", jti).Delete(&model.AdminJti{}).Error
}

func (ds *PostgresService) CleanupExpiredJtis() error {
	return ds.db.Where("expires_at < ?", time.Now()).Delete(&model.AdminJti{}).Error
}

// ==================== CONTENT: HOME ====================

func (ds *PostgresService) GetHome() (*model.HomeData, error) {
	var home model.HomeData
	if err := ds.db.First(&home).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &home, nil
}

func (ds *PostgresService) SaveHome(home *model.HomeData) error {
	if home.ID == "" {
		id, _ := uuid.NewV7()
		home.ID = id.String()
	}
	if err := ds.db.Save(home).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetStats() ([]model.Stat, error) {
	var stats []model.Stat
	if err := ds.db.Order(`"order" ASC`).Find(&stats).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return stats, nil
}

func (ds *PostgresService) SaveStat(stat *model.Stat) error {
	if stat.ID == "" {
		id, _ := uuid.NewV7()
		stat.ID = id.String()
	}
	if err := ds.db.Save(stat).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteStat(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.Stat{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==================== CONTENT: ABOUT ====================

func (ds *PostgresService) GetAbout() (*model.AboutUs, error) {
	var about model.AboutUs
	if err := ds.db.First(&about).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &about, nil
}

func (ds *PostgresService) SaveAbout(about *model.AboutUs) error {
	if about.ID == "" {
		id, _ := uuid.NewV7()
		about.ID = id.String()
	}
	if err := ds.db.Save(about).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetSlides() ([]model.AboutSlide, error) {
	var slides []model.AboutSlide
	if err := ds.db.Order(`"order" ASC`).Find(&slides).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return slides, nil
}

func (ds *PostgresService) SaveSlide(slide *model.AboutSlide) error {
	if slide.ID == "" {
		id, _ := uuid.NewV7()
		slide.ID = id.String()
	}
	if err := ds.db.Save(slide).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteSlide(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.AboutSlide{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==================== CONTENT: SKILLS ====================

func (ds *PostgresService) GetSkills() ([]model.Skill, error) {
	var skills []model.Skill
	if err := ds.db.Order("category ASC, name ASC").Find(&skills).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return skills, nil
}

func (ds *PostgresService) SaveSkill(skill *model.Skill) error {
	if skill.ID == "" {
		id, _ := uuid.NewV7()
		skill.ID = id.String()
	}
	if err := ds.db.Save(skill).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteSkill(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.Skill{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==================== CONTENT: PROJECTS ====================

func (ds *PostgresService) GetProjects() ([]model.Project, error) {
	var projects []model.Project
	if err := ds.db.Order("display_order ASC").Find(&projects).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return projects, nil
}

func (ds *PostgresService) GetFeaturedProjects() ([]model.Project, error) {
	var projects []model.Project
	err := ds.db.Where("featured = ?", true).
		Order("featured_display_order ASC").
		Find(&projects).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return projects, nil
}

func (ds *PostgresService) GetProject(id string) (*model.Project, error) {
	var project model.Project
	if err := ds.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &project, nil
}

func (ds *PostgresService) SaveProject(project *model.Project) error {
	if project.ID == "" {
		id, _ := uuid.NewV7()
		project.ID = id.String()
	}
	if err := ds.db.Save(project).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteProject(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.Project{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==================== CONTENT: CV / SEO / FOOTER ====================

func (ds *PostgresService) GetCv() (*model.Cv, error) {
	var cv model.Cv
	if err := ds.db.First(&cv).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &cv, nil
}

func (ds *PostgresService) SaveCv(cv *model.Cv) error {
	if cv.ID == "" {
		id, _ := uuid.NewV7()
		cv.ID = id.String()
	}
	if err := ds.db.Save(cv).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetSeo(page string) (*model.Seo, error) {
	var seo model.Seo
	if err := ds.db.Where("page = ?", page).First(&seo).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &seo, nil
}

func (ds *PostgresService) GetAllSeo() ([]model.Seo, error) {
	var seo []model.Seo
	if err := ds.db.Find(&seo).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return seo, nil
}

func (ds *PostgresService) SaveSeo(seo *model.Seo) error {
	if seo.ID == "" {
		id, _ := uuid.NewV7()
		seo.ID = id.String()
	}
	if err := ds.db.Save(seo).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetFooter() (*model.FooterData, error) {
	var footer model.FooterData
	if err := ds.db.First(&footer).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &footer, nil
}

func (ds *PostgresService) SaveFooter(footer *model.FooterData) error {
	if footer.ID == "" {
		id, _ := uuid.NewV7()
		footer.ID = id.String()
	}
	if err := ds.db.Save(footer).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetSocialLinks() ([]model.SocialLink, error) {
	var links []model.SocialLink
	if err := ds.db.Order(`"order" ASC`).Find(&links).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return links, nil
}

func (ds *PostgresService) SaveSocialLink(link *model.SocialLink) error {
	if link.ID == "" {
		id, _ := uuid.NewV7()
		link.ID = id.String()
	}
	if err := ds.db.Save(link).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteSocialLink(id string) error {
	result := ds.db.Where("id = ?", id).Delete(&model.SocialLink{})
	if result.Error != nil {
		return ds.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
