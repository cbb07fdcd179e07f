package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio/models"
)

type PhotoRepo struct {
	db *gorm.DB
}

func NewPhotoRepo(db *gorm.DB) *PhotoRepo {
	return &PhotoRepo{db}
}

// FindAll returns the gallery in display order
func (r *PhotoRepo) FindAll(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).Order("position, url").Find(&photos).Error
	return photos, err
}
