package repository

import (
	"gorm.io/gorm"

	"formhub/internal/model"
)

type TagRepository interface {
	FindAll() ([]model.Tag, error)
	Search(term string) ([]model.Tag, error)
	FindPublicFormsByTag(tagID uint) ([]model.Form, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindAll() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Order("text ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Search(term string) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Where("text ILIKE ?", "%"+term+"%").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindPublicFormsByTag(tagID uint) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.
		Joins("INNER JOIN form_tags ft ON ft.form_id = forms.id").
		Where("ft.tag_id = ? AND forms.is_public = ?", tagID, true).
		Order("forms.created_at DESC").
		Find(&forms).Error
	return forms, err
}
