package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formhub/internal/model"
)

// UserFilledFormRow joins one submission with the form it belongs to.
type UserFilledFormRow struct {
	Title     string
	PageID    string
	CreatedAt time.Time
	FilledAt  time.Time
}

type FilledFormRepository interface {
	Create(filled *model.FilledForm) error
	FindByIDWithAnswers(id uint) (*model.FilledForm, error)
	FindByFormIDWithAnswers(formID uint) ([]model.FilledForm, error)
	FindByUser(userID uuid.UUID) ([]UserFilledFormRow, error)
	DeleteByUser(userID uuid.UUID) error
}

type filledFormRepository struct {
	db *gorm.DB
}

func NewFilledFormRepository(db *gorm.DB) FilledFormRepository {
	return &filledFormRepository{db: db}
}

func (r *filledFormRepository) Create(filled *model.FilledForm) error {
	// Runs in a transaction so a failing answer insert never leaves a
	// half-recorded submission behind.
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(filled).Error
	})
}

func (r *filledFormRepository) FindByIDWithAnswers(id uint) (*model.FilledForm, error) {
	var filled model.FilledForm
	if err := r.db.Preload("Answers").First(&filled, id).Error; err != nil {
		return nil, err
	}
	return &filled, nil
}

func (r *filledFormRepository) FindByFormIDWithAnswers(formID uint) ([]model.FilledForm, error) {
	var filled []model.FilledForm
	err := r.db.Preload("Answers").Where("form_id = ?", formID).Order("filled_at DESC").Find(&filled).Error
	return filled, err
}

func (r *filledFormRepository) FindByUser(userID uuid.UUID) ([]UserFilledFormRow, error) {
	var rows []UserFilledFormRow
	err := r.db.Raw(`
		SELECT f.title, f.page_id, f.created_at, ff.filled_at
		FROM filled_forms ff
		INNER JOIN forms f ON f.id = ff.form_id
		WHERE ff.user_id = ?
		ORDER BY ff.filled_at DESC`, userID).Scan(&rows).Error
	return rows, err
}

func (r *filledFormRepository) DeleteByUser(userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("filled_form_id IN (?)",
			tx.Model(&model.FilledForm{}).Select("id").Where("user_id = ?", userID),
		).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.FilledForm{}).Error
	})
}
