package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blog posts in display order
func (r *BlogRepo) FindAll(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).Order("position, id").Find(&blogs).Error
	return blogs, err
}
