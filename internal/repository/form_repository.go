package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formhub/internal/model"
)

// FormDetailRow is one row of the flat left-joined read spanning a form, its
// questions, options, tags and access grants. Nullable columns belong to the
// optional branches of the join.
type FormDetailRow struct {
	FormID              uint
	PageID              string
	Title               string
	TitleMarkdown       string
	Description         string
	DescriptionMarkdown string
	Topic               string
	ImageURL            string
	IsPublic            bool
	CreatorID           uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time

	QuestionID       *uint
	QuestionText     *string
	QuestionType     *string
	IsRequired       *bool
	QuestionPosition *int
	ShowInResults    *bool

	OptionID        *uint
	OptionText      *string
	OptionPosition  *int
	OptionIsCorrect *bool

	TagID   *uint
	TagText *string

	AccessUserID    *uuid.UUID
	AccessUserName  *string
	AccessUserEmail *string
}

// PopularFormRow is a form summary with its submission count.
type PopularFormRow struct {
	FormID      uint
	PageID      string
	Title       string
	Description string
	ImageURL    string
	FilledCount int64
}

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByIDWithQuestions(id uint) (*model.Form, error)
	FindDetailRowsByPageID(pageID string) ([]FormDetailRow, error)
	FindByCreator(creatorID uuid.UUID) ([]model.Form, error)
	FindLatestPublic(limit int) ([]model.Form, error)
	FindPopularPublic(limit int) ([]PopularFormRow, error)
	Search(term string) ([]model.Form, error)
	Delete(id uint) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	// Association create persists the questions and their options in the
	// same statement batch.
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindByIDWithQuestions(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.position ASC")
		}).
		First(&form, id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// detailQuery fans a form out across questions x options x tags x grants.
// The ORDER BY is load-bearing: the tree assembler scans rows once and
// relies on position order, it never re-sorts.
const detailQuery = `
SELECT
  f.id AS form_id, f.page_id, f.title, f.title_markdown, f.description,
  f.description_markdown, f.topic, f.image_url, f.is_public, f.creator_id,
  f.created_at, f.updated_at,
  q.id AS question_id, q.text AS question_text, q.type AS question_type,
  q.is_required, q.position AS question_position, q.show_in_results,
  ao.id AS option_id, ao.text AS option_text, ao.position AS option_position,
  ao.is_correct AS option_is_correct,
  t.id AS tag_id, t.text AS tag_text,
  u.id AS access_user_id, u.name AS access_user_name, u.email AS access_user_email
FROM forms f
LEFT JOIN questions q ON q.form_id = f.id
LEFT JOIN answer_options ao ON ao.question_id = q.id
LEFT JOIN form_tags ft ON ft.form_id = f.id
LEFT JOIN tags t ON t.id = ft.tag_id
LEFT JOIN access_grants ag ON ag.form_id = f.id
LEFT JOIN users u ON u.id = ag.user_id
WHERE f.page_id = ?
ORDER BY q.position, ao.position`

func (r *formRepository) FindDetailRowsByPageID(pageID string) ([]FormDetailRow, error) {
	var rows []FormDetailRow
	err := r.db.Raw(detailQuery, pageID).Scan(&rows).Error
	return rows, err
}

func (r *formRepository) FindByCreator(creatorID uuid.UUID) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *formRepository) FindLatestPublic(limit int) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.Where("is_public = ?", true).Order("created_at DESC").Limit(limit).Find(&forms).Error
	return forms, err
}

func (r *formRepository) FindPopularPublic(limit int) ([]PopularFormRow, error) {
	var rows []PopularFormRow
	err := r.db.Raw(`
		SELECT f.id AS form_id, f.page_id, f.title, f.description, f.image_url,
		       COUNT(ff.id) AS filled_count
		FROM forms f
		LEFT JOIN filled_forms ff ON ff.form_id = f.id
		WHERE f.is_public = ?
		GROUP BY f.id, f.page_id, f.title, f.description, f.image_url
		ORDER BY filled_count DESC
		LIMIT ?`, true, limit).Scan(&rows).Error
	return rows, err
}

// Search matches a substring case-insensitively across form scalars,
// question text, option text and tag text.
func (r *formRepository) Search(term string) ([]model.Form, error) {
	var forms []model.Form
	pattern := "%" + term + "%"
	err := r.db.Raw(`
		SELECT DISTINCT f.*
		FROM forms f
		LEFT JOIN questions q ON q.form_id = f.id
		LEFT JOIN answer_options ao ON ao.question_id = q.id
		LEFT JOIN form_tags ft ON ft.form_id = f.id
		LEFT JOIN tags t ON t.id = ft.tag_id
		WHERE f.title ILIKE @p OR f.description ILIKE @p OR f.topic ILIKE @p
		   OR q.text ILIKE @p OR ao.text ILIKE @p OR t.text ILIKE @p`,
		map[string]interface{}{"p": pattern}).Scan(&forms).Error
	return forms, err
}

// Delete removes the form and everything hanging off it in one transaction.
func (r *formRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var form model.Form
		if err := tx.First(&form, id).Error; err != nil {
			return err
		}
		if err := tx.Where("filled_form_id IN (?)",
			tx.Model(&model.FilledForm{}).Select("id").Where("form_id = ?", id),
		).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.FilledForm{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.AccessGrant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.FormTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)",
			tx.Model(&model.Question{}).Select("id").Where("form_id = ?", id),
		).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Form{}, id).Error
	})
}
