// Package database loads the portfolio catalog from Postgres.
package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/config"
	"github.com/rpupo63/portfolio/errs"
	"github.com/rpupo63/portfolio/models"
)

type Database struct {
	projectRepo *ProjectRepo
	blogRepo    *BlogRepo
	photoRepo   *PhotoRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		blogRepo:    NewBlogRepo(db),
		photoRepo:   NewPhotoRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) PhotoRepo() *PhotoRepo {
	return d.photoRepo
}

// DSN builds the Postgres connection string from the DB_* settings.
func DSN(c map[string]string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "portfolio"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "require"),
	)
}

// Open connects to Postgres and checks the connection.
func Open(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("open", "connection", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errs.NewDatabaseError("ping", "connection", err)
	}
	return db, nil
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Project{}, &models.Blog{}, &models.Photo{}); err != nil {
		return errs.NewDatabaseError("migrate", "catalog tables", err)
	}
	return nil
}

// LoadCatalog reads the three catalog tables concurrently and builds the
// in-memory catalog from them.
func (d Database) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var (
		projects []models.Project
		blogs    []models.Blog
		photos   []models.Photo
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if projects, err = d.ProjectRepo().FindAll(ctx); err != nil {
			return errs.NewDatabaseError("find", "projects", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if blogs, err = d.BlogRepo().FindAll(ctx); err != nil {
			return errs.NewDatabaseError("find", "blogs", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if photos, err = d.PhotoRepo().FindAll(ctx); err != nil {
			return errs.NewDatabaseError("find", "photos", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCatalogLoad, err)
	}

	return catalog.New(projects, blogs, photos), nil
}

// Seed writes cat into the catalog tables, replacing rows with the same key.
// Positions follow catalog order.
func Seed(ctx context.Context, db *gorm.DB, cat *catalog.Catalog) error {
	projects := cat.Projects()
	for i := range projects {
		projects[i].Position = i
	}
	blogs := cat.Blogs()
	for i := range blogs {
		blogs[i].Position = i
	}
	photos := cat.Photos()
	for i := range photos {
		photos[i].Position = i
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := func() *gorm.DB { return tx.Clauses(clause.OnConflict{UpdateAll: true}) }
		if len(projects) > 0 {
			if err := upsert().Create(&projects).Error; err != nil {
				return errs.NewDatabaseError("seed", "projects", err)
			}
		}
		if len(blogs) > 0 {
			if err := upsert().Create(&blogs).Error; err != nil {
				return errs.NewDatabaseError("seed", "blogs", err)
			}
		}
		if len(photos) > 0 {
			if err := upsert().Create(&photos).Error; err != nil {
				return errs.NewDatabaseError("seed", "photos", err)
			}
		}
		return nil
	})
}
