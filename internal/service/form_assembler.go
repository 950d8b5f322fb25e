package service

import (
	"formhub/internal/dto"
	"formhub/internal/repository"
)

// AssembleFormDocument turns the flat joined rows of one form into the
// nested read model. Rows must arrive pre-sorted by question position then
// option position; the assembler scans once and never re-sorts.
//
// An empty row set means no form matched and is reported as ErrNotFound. A
// form with zero questions still yields one row, with the question columns
// null, and assembles into an empty questions list.
func AssembleFormDocument(rows []repository.FormDetailRow) (*dto.FormDocument, error) {
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	head := rows[0]
	doc := &dto.FormDocument{
		FormID:              head.FormID,
		PageID:              head.PageID,
		Title:               head.Title,
		TitleMarkdown:       head.TitleMarkdown,
		Description:         head.Description,
		DescriptionMarkdown: head.DescriptionMarkdown,
		Topic:               head.Topic,
		ImageURL:            head.ImageURL,
		IsPublic:            head.IsPublic,
		CreatorID:           head.CreatorID,
		CreatedAt:           head.CreatedAt,
		UpdatedAt:           head.UpdatedAt,
		Tags:                []dto.TagResponse{},
		Questions:           []dto.QuestionNode{},
	}

	// The join fans the same question, option, tag and grant out across
	// many rows, so each collection tracks ids it has already attached.
	questionIdx := make(map[uint]int)
	seenOption := make(map[uint]bool)
	seenTag := make(map[uint]bool)
	seenAccessUser := make(map[string]bool)

	for _, row := range rows {
		if row.QuestionID != nil {
			qid := *row.QuestionID
			idx, ok := questionIdx[qid]
			if !ok {
				doc.Questions = append(doc.Questions, dto.QuestionNode{
					QuestionID:    qid,
					Text:          deref(row.QuestionText),
					Type:          deref(row.QuestionType),
					IsRequired:    derefBool(row.IsRequired),
					Position:      derefInt(row.QuestionPosition),
					ShowInResults: derefBool(row.ShowInResults),
					Options:       []dto.OptionNode{},
				})
				idx = len(doc.Questions) - 1
				questionIdx[qid] = idx
			}
			if row.OptionID != nil && !seenOption[*row.OptionID] {
				seenOption[*row.OptionID] = true
				doc.Questions[idx].Options = append(doc.Questions[idx].Options, dto.OptionNode{
					OptionID:  *row.OptionID,
					Text:      deref(row.OptionText),
					Position:  derefInt(row.OptionPosition),
					IsCorrect: derefBool(row.OptionIsCorrect),
				})
			}
		}

		if row.TagID != nil && !seenTag[*row.TagID] {
			seenTag[*row.TagID] = true
			doc.Tags = append(doc.Tags, dto.TagResponse{
				TagID: *row.TagID,
				Text:  deref(row.TagText),
			})
		}

		if !doc.IsPublic && row.AccessUserID != nil {
			key := row.AccessUserID.String()
			if !seenAccessUser[key] {
				seenAccessUser[key] = true
				doc.UsersWithAccess = append(doc.UsersWithAccess, dto.AccessUser{
					UserID:    *row.AccessUserID,
					UserName:  deref(row.AccessUserName),
					UserEmail: deref(row.AccessUserEmail),
				})
			}
		}
	}

	return doc, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
