package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects in display order
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Order("position, id").Find(&projects).Error
	return projects, err
}
