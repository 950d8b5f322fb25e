package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formhub/internal/dto"
	"formhub/internal/model"
)

// seedForm persists a public form with three short-text questions so the
// reconcile tests start from a known shape.
func seedForm(t *testing.T, db *gorm.DB, creator uuid.UUID) model.Form {
	t.Helper()
	form := model.Form{
		PageID:    "team-retro",
		Title:     "Team Retro",
		IsPublic:  true,
		CreatorID: creator,
		Questions: []model.Question{
			{Text: "What went well?", Type: model.QuestionShortText, Position: 1},
			{Text: "What went badly?", Type: model.QuestionShortText, Position: 2},
			{Text: "Action items?", Type: model.QuestionLongText, Position: 3},
		},
	}
	if err := db.Create(&form).Error; err != nil {
		t.Fatalf("seeding form: %v", err)
	}
	return form
}

func editRequestFromForm(form model.Form) dto.FormEditRequest {
	req := dto.FormEditRequest{
		PageID:   form.PageID,
		Title:    form.Title,
		IsPublic: form.IsPublic,
	}
	for _, q := range form.Questions {
		req.Questions = append(req.Questions, dto.QuestionInput{
			QuestionID: uintPtr(q.ID),
			Text:       q.Text,
			Type:       q.Type,
		})
	}
	return req
}

func loadQuestions(t *testing.T, db *gorm.DB, formID uint) []model.Question {
	t.Helper()
	var questions []model.Question
	if err := db.Where("form_id = ?", formID).Order("position ASC").Find(&questions).Error; err != nil {
		t.Fatalf("loading questions: %v", err)
	}
	return questions
}

func TestReconcileUnknownFormIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormEditorService(db)

	_, err := svc.Reconcile(9999, dto.FormEditRequest{PageID: "x", Title: "x", IsPublic: true})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReconcilePrivateWithoutGrantListIsRejected(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	form := seedForm(t, db, user.ID)
	svc := NewFormEditorService(db)

	req := editRequestFromForm(form)
	req.IsPublic = false
	req.UsersWithAccess = nil

	_, err := svc.Reconcile(form.ID, req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// Keeping A and C, dropping B and appending a new question must delete B and
// leave positions dense in submission order.
func TestReconcileDeletesMissingAndRenumbers(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	form := seedForm(t, db, user.ID)
	svc := NewFormEditorService(db)

	a, b, c := form.Questions[0], form.Questions[1], form.Questions[2]
	req := editRequestFromForm(form)
	req.Questions = []dto.QuestionInput{
		{QuestionID: uintPtr(a.ID), Text: a.Text, Type: a.Type},
		{QuestionID: uintPtr(c.ID), Text: c.Text, Type: c.Type},
		{Text: "Kudos?", Type: model.QuestionShortText},
	}

	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	questions := loadQuestions(t, db, form.ID)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.Position != i+1 {
			t.Errorf("question %d: position %d, want %d", q.ID, q.Position, i+1)
		}
	}
	if questions[0].ID != a.ID || questions[1].ID != c.ID {
		t.Errorf("kept questions out of order: %v", questions)
	}
	if questions[2].Text != "Kudos?" {
		t.Errorf("new question missing, got %q", questions[2].Text)
	}
	var gone int64
	db.Model(&model.Question{}).Where("id = ?", b.ID).Count(&gone)
	if gone != 0 {
		t.Errorf("question %d should have been deleted", b.ID)
	}
}

func TestReconcileReorderRenumbersFromSubmissionOrder(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	form := seedForm(t, db, user.ID)
	svc := NewFormEditorService(db)

	req := editRequestFromForm(form)
	req.Questions[0], req.Questions[2] = req.Questions[2], req.Questions[0]

	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	questions := loadQuestions(t, db, form.ID)
	if questions[0].ID != form.Questions[2].ID || questions[0].Position != 1 {
		t.Errorf("reordered question not first: %+v", questions[0])
	}
	if questions[2].ID != form.Questions[0].ID || questions[2].Position != 3 {
		t.Errorf("reordered question not last: %+v", questions[2])
	}
}

// An id the form does not own is treated leniently: the row is inserted as a
// brand new question instead of failing the whole edit.
func TestReconcileUnknownQuestionIDInsertsAsNew(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	form := seedForm(t, db, user.ID)
	svc := NewFormEditorService(db)

	req := editRequestFromForm(form)
	req.Questions = append(req.Questions, dto.QuestionInput{
		QuestionID: uintPtr(424242),
		Text:       "Smuggled in",
		Type:       model.QuestionShortText,
	})

	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	questions := loadQuestions(t, db, form.ID)
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	last := questions[3]
	if last.Text != "Smuggled in" || last.Position != 4 {
		t.Errorf("unexpected inserted question: %+v", last)
	}
	if last.ID == 424242 {
		t.Errorf("foreign id must not be honored")
	}
}

func TestReconcileOptionsFollowQuestionPattern(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	form := model.Form{
		PageID:    "quiz",
		Title:     "Quiz",
		IsPublic:  true,
		CreatorID: user.ID,
		Questions: []model.Question{{
			Text: "Pick one", Type: model.QuestionSingleChoice, Position: 1,
			Options: []model.AnswerOption{
				{Text: "Red", Position: 1},
				{Text: "Green", Position: 2},
				{Text: "Blue", Position: 3},
			},
		}},
	}
	if err := db.Create(&form).Error; err != nil {
		t.Fatalf("seeding form: %v", err)
	}
	svc := NewFormEditorService(db)

	q := form.Questions[0]
	req := dto.FormEditRequest{
		PageID: form.PageID, Title: form.Title, IsPublic: true,
		Questions: []dto.QuestionInput{{
			QuestionID: uintPtr(q.ID),
			Text:       q.Text,
			Type:       q.Type,
			Options: []dto.OptionInput{
				{OptionID: uintPtr(q.Options[2].ID), Text: "Blue", IsCorrect: true},
				{Text: "Yellow"},
			},
		}},
	}

	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	var options []model.AnswerOption
	if err := db.Where("question_id = ?", q.ID).Order("position ASC").Find(&options).Error; err != nil {
		t.Fatalf("loading options: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].ID != q.Options[2].ID || options[0].Position != 1 || !options[0].IsCorrect {
		t.Errorf("kept option wrong: %+v", options[0])
	}
	if options[1].Text != "Yellow" || options[1].Position != 2 {
		t.Errorf("new option wrong: %+v", options[1])
	}
}

func TestReconcileTagsAreIdempotentAndShared(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "owner@example.com")
	form := seedForm(t, db, user.ID)
	svc := NewFormEditorService(db)

	req := editRequestFromForm(form)
	req.Tags = []string{"retro", "team"}

	for i := 0; i < 2; i++ {
		if _, err := svc.Reconcile(form.ID, req); err != nil {
			t.Fatalf("reconcile pass %d failed: %v", i+1, err)
		}
	}

	var tagCount, linkCount int64
	db.Model(&model.Tag{}).Count(&tagCount)
	db.Model(&model.FormTag{}).Where("form_id = ?", form.ID).Count(&linkCount)
	if tagCount != 2 || linkCount != 2 {
		t.Fatalf("expected 2 tags and 2 links, got %d tags, %d links", tagCount, linkCount)
	}

	// Dropping one tag unlinks it but leaves the shared tag row behind.
	req.Tags = []string{"retro"}
	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	db.Model(&model.Tag{}).Count(&tagCount)
	db.Model(&model.FormTag{}).Where("form_id = ?", form.ID).Count(&linkCount)
	if tagCount != 2 || linkCount != 1 {
		t.Fatalf("expected 2 tags and 1 link, got %d tags, %d links", tagCount, linkCount)
	}
}

func TestReconcileGrantsConvergeAndPurgeOnPublish(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	form := seedForm(t, db, owner.ID)
	svc := NewFormEditorService(db)

	req := editRequestFromForm(form)
	req.IsPublic = false
	req.UsersWithAccess = []uuid.UUID{alice.ID, bob.ID}
	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	var userIDs []uuid.UUID
	db.Model(&model.AccessGrant{}).Where("form_id = ?", form.ID).Pluck("user_id", &userIDs)
	if len(userIDs) != 2 {
		t.Fatalf("expected 2 grants, got %d", len(userIDs))
	}

	// Shrink the grant set.
	req.UsersWithAccess = []uuid.UUID{bob.ID}
	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	userIDs = nil
	db.Model(&model.AccessGrant{}).Where("form_id = ?", form.ID).Pluck("user_id", &userIDs)
	if len(userIDs) != 1 || userIDs[0] != bob.ID {
		t.Fatalf("expected only bob's grant, got %v", userIDs)
	}

	// Going public purges everything, including grants the request still lists.
	req.IsPublic = true
	if _, err := svc.Reconcile(form.ID, req); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	var count int64
	db.Model(&model.AccessGrant{}).Where("form_id = ?", form.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected grants purged, got %d", count)
	}
}

// A grant for an unregistered user violates the FK and must roll back the
// whole edit, including the scalar update that already ran.
func TestReconcileRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	form := seedForm(t, db, owner.ID)
	svc := NewFormEditorService(db)

	req := editRequestFromForm(form)
	req.Title = "Renamed"
	req.IsPublic = false
	req.UsersWithAccess = []uuid.UUID{uuid.New()}

	if _, err := svc.Reconcile(form.ID, req); err == nil {
		t.Fatal("expected reconcile to fail")
	}

	var reloaded model.Form
	if err := db.First(&reloaded, form.ID).Error; err != nil {
		t.Fatalf("reloading form: %v", err)
	}
	if reloaded.Title != "Team Retro" {
		t.Errorf("scalar update leaked out of the transaction: title=%q", reloaded.Title)
	}
}
