package repository

import (
	"gorm.io/gorm"

	"formhub/internal/model"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	DeleteByID(id uint) (int64, error)
	FindByForm(formID uint) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) DeleteByID(id uint) (int64, error) {
	res := r.db.Delete(&model.Comment{}, id)
	return res.RowsAffected, res.Error
}

func (r *commentRepository) FindByForm(formID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("form_id = ?", formID).Order("commented_at DESC").Find(&comments).Error
	return comments, err
}
