package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"formhub/internal/model"
)

type LikeRepository interface {
	Exists(formID uint, userID uuid.UUID) (bool, error)
	Add(formID uint, userID uuid.UUID) error
	Remove(formID uint, userID uuid.UUID) (int64, error)
	FindByForm(formID uint) ([]model.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(formID uint, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("form_id = ? AND user_id = ?", formID, userID).
		Count(&count).Error
	return count > 0, err
}

// Add is idempotent: at most one like per user per form.
func (r *likeRepository) Add(formID uint, userID uuid.UUID) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Like{FormID: formID, UserID: userID}).Error
}

func (r *likeRepository) Remove(formID uint, userID uuid.UUID) (int64, error) {
	res := r.db.Where("form_id = ? AND user_id = ?", formID, userID).Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) FindByForm(formID uint) ([]model.Like, error) {
	var likes []model.Like
	err := r.db.Where("form_id = ?", formID).Find(&likes).Error
	return likes, err
}
