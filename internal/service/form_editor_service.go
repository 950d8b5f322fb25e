package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"formhub/internal/dto"
	"formhub/internal/markdown"
	"formhub/internal/model"
	"formhub/internal/setdiff"
)

// FormEditorService converges a form's persisted questions, options, tags
// and access grants to a submitted desired state.
type FormEditorService interface {
	Reconcile(formID uint, req dto.FormEditRequest) (uint, error)
}

type formEditorService struct {
	db *gorm.DB
}

func NewFormEditorService(db *gorm.DB) FormEditorService {
	return &formEditorService{db: db}
}

// Reconcile applies the whole edit in one transaction; any failing step
// rolls back every change and surfaces a single opaque failure.
//
// There is no optimistic locking: concurrent edits of the same form race and
// the last transaction to commit wins entirely, including its deletes of
// rows absent from its (possibly stale) desired set.
func (s *formEditorService) Reconcile(formID uint, req dto.FormEditRequest) (uint, error) {
	var form model.Form
	if err := s.db.First(&form, formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("form %d: %w", formID, ErrNotFound)
		}
		return 0, fmt.Errorf("loading form %d: %w", formID, err)
	}

	if !req.IsPublic && req.UsersWithAccess == nil {
		return 0, fmt.Errorf("%w: users_with_access is required for private forms", ErrValidation)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := updateFormScalars(tx, formID, req); err != nil {
			return err
		}
		if err := reconcileGrants(tx, formID, req); err != nil {
			return err
		}
		if err := reconcileTags(tx, formID, req.Tags); err != nil {
			return err
		}
		return reconcileQuestions(tx, formID, req.Questions)
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Reconcile: transaction rolled back")
		return 0, fmt.Errorf("reconciling form %d: %w", formID, err)
	}
	return formID, nil
}

func updateFormScalars(tx *gorm.DB, formID uint, req dto.FormEditRequest) error {
	return tx.Model(&model.Form{}).Where("id = ?", formID).Updates(map[string]interface{}{
		"page_id":              req.PageID,
		"title":                req.Title,
		"title_markdown":       markdown.Render(req.Title),
		"description":          req.Description,
		"description_markdown": markdown.Render(req.Description),
		"topic":                req.Topic,
		"image_url":            req.ImageURL,
		"is_public":            req.IsPublic,
		"updated_at":           time.Now(),
	}).Error
}

// reconcileGrants purges every grant when the form turns public; otherwise
// it converges the grant set by user-id difference.
func reconcileGrants(tx *gorm.DB, formID uint, req dto.FormEditRequest) error {
	if req.IsPublic {
		return tx.Where("form_id = ?", formID).Delete(&model.AccessGrant{}).Error
	}

	var existing []uuid.UUID
	if err := tx.Model(&model.AccessGrant{}).Where("form_id = ?", formID).Pluck("user_id", &existing).Error; err != nil {
		return err
	}

	d := setdiff.Diff(existing, req.UsersWithAccess)
	if err := insertGrants(tx, formID, d.ToAdd); err != nil {
		return err
	}
	if len(d.ToRemove) > 0 {
		if err := tx.Where("form_id = ? AND user_id IN ?", formID, d.ToRemove).Delete(&model.AccessGrant{}).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertGrants(tx *gorm.DB, formID uint, userIDs []uuid.UUID) error {
	for _, id := range userIDs {
		// Re-granting an already present user is a no-op.
		grant := model.AccessGrant{FormID: formID, UserID: id}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&grant).Error; err != nil {
			return err
		}
	}
	return nil
}

// reconcileTags resolves desired tag strings to tag rows (reuse on exact
// text match, create otherwise), links the new ones and unlinks any
// currently-linked tag whose text is absent from the desired set.
func reconcileTags(tx *gorm.DB, formID uint, desired []string) error {
	var existing []string
	err := tx.Model(&model.Tag{}).
		Joins("INNER JOIN form_tags ft ON ft.tag_id = tags.id").
		Where("ft.form_id = ?", formID).
		Pluck("tags.text", &existing).Error
	if err != nil {
		return err
	}

	d := setdiff.Diff(existing, desired)
	if len(d.ToRemove) > 0 {
		err := tx.Where("form_id = ? AND tag_id IN (?)", formID,
			tx.Model(&model.Tag{}).Select("id").Where("text IN ?", d.ToRemove),
		).Delete(&model.FormTag{}).Error
		if err != nil {
			return err
		}
	}
	return linkTags(tx, formID, d.ToAdd)
}

func linkTags(tx *gorm.DB, formID uint, texts []string) error {
	for _, text := range texts {
		var tag model.Tag
		err := tx.Where("text = ?", text).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = model.Tag{Text: text}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.FormTag{FormID: formID, TagID: tag.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// reconcileQuestions partitions the desired questions into updates (existing
// id that belongs to this form) and inserts (no id, or an id the form does
// not own - treated leniently as new). Stored positions are re-derived from
// submission order. Existing questions missing from the desired set are
// deleted together with their options.
func reconcileQuestions(tx *gorm.DB, formID uint, desired []dto.QuestionInput) error {
	var existingIDs []uint
	if err := tx.Model(&model.Question{}).Where("form_id = ?", formID).Pluck("id", &existingIDs).Error; err != nil {
		return err
	}
	var desiredIDs []uint
	for _, q := range desired {
		if q.QuestionID != nil {
			desiredIDs = append(desiredIDs, *q.QuestionID)
		}
	}

	d := setdiff.Diff(existingIDs, desiredIDs)
	if len(d.ToRemove) > 0 {
		if err := tx.Where("question_id IN ?", d.ToRemove).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", d.ToRemove).Delete(&model.Question{}).Error; err != nil {
			return err
		}
	}

	for i, q := range desired {
		position := i + 1

		var questionID uint
		if q.QuestionID != nil && setdiff.Contains(d.ToKeep, *q.QuestionID) {
			questionID = *q.QuestionID
			err := tx.Model(&model.Question{}).Where("id = ?", questionID).Updates(map[string]interface{}{
				"text":            q.Text,
				"type":            q.Type,
				"is_required":     q.IsRequired,
				"position":        position,
				"show_in_results": q.ShowInResults,
			}).Error
			if err != nil {
				return err
			}
		} else {
			question := model.Question{
				FormID:        formID,
				Text:          q.Text,
				Type:          q.Type,
				IsRequired:    q.IsRequired,
				Position:      position,
				ShowInResults: q.ShowInResults,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			questionID = question.ID
		}

		if err := reconcileOptions(tx, questionID, q.Options); err != nil {
			return err
		}
	}
	return nil
}

// reconcileOptions applies the same partition/update/insert/delete logic as
// reconcileQuestions, scoped to one question.
func reconcileOptions(tx *gorm.DB, questionID uint, desired []dto.OptionInput) error {
	var existingIDs []uint
	if err := tx.Model(&model.AnswerOption{}).Where("question_id = ?", questionID).Pluck("id", &existingIDs).Error; err != nil {
		return err
	}
	var desiredIDs []uint
	for _, o := range desired {
		if o.OptionID != nil {
			desiredIDs = append(desiredIDs, *o.OptionID)
		}
	}

	d := setdiff.Diff(existingIDs, desiredIDs)
	if len(d.ToRemove) > 0 {
		if err := tx.Where("id IN ?", d.ToRemove).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
	}

	for i, o := range desired {
		position := i + 1
		if o.OptionID != nil && setdiff.Contains(d.ToKeep, *o.OptionID) {
			err := tx.Model(&model.AnswerOption{}).Where("id = ?", *o.OptionID).Updates(map[string]interface{}{
				"text":       o.Text,
				"position":   position,
				"is_correct": o.IsCorrect,
			}).Error
			if err != nil {
				return err
			}
		} else {
			option := model.AnswerOption{
				QuestionID: questionID,
				Text:       o.Text,
				Position:   position,
				IsCorrect:  o.IsCorrect,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
