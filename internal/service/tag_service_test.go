package service

import (
	"testing"

	"formhub/internal/model"
	"formhub/internal/repository"
)

func TestTagListAndPublicFormsByTag(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repository.NewTagRepository(db))
	owner := createTestUser(t, db, "owner@example.com")

	tag := model.Tag{Text: "feedback"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("seeding tag: %v", err)
	}
	public := model.Form{PageID: "pub", Title: "Public", IsPublic: true, CreatorID: owner.ID}
	private := model.Form{PageID: "priv", Title: "Private", IsPublic: false, CreatorID: owner.ID}
	for _, f := range []*model.Form{&public, &private} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seeding form: %v", err)
		}
		if err := db.Create(&model.FormTag{FormID: f.ID, TagID: tag.ID}).Error; err != nil {
			t.Fatalf("linking tag: %v", err)
		}
	}

	tags, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tags) != 1 || tags[0].Text != "feedback" {
		t.Fatalf("unexpected tags: %+v", tags)
	}

	// Only the public form shows up in tag browsing.
	forms, err := svc.FormsByTag(tag.ID)
	if err != nil {
		t.Fatalf("forms by tag failed: %v", err)
	}
	if len(forms) != 1 || forms[0].PageID != "pub" {
		t.Fatalf("expected only the public form, got %+v", forms)
	}
}
