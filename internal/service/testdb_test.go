package service

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"formhub/internal/model"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps every
// pooled connection on the same database; _foreign_keys turns on FK
// enforcement, which the grant tests rely on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Form{},
		&model.Question{},
		&model.AnswerOption{},
		&model.Tag{},
		&model.FormTag{},
		&model.AccessGrant{},
		&model.FilledForm{},
		&model.Answer{},
		&model.Like{},
		&model.Comment{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	user := model.User{Name: "Test User", Email: email, Password: "secret"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return user
}

func uintPtr(v uint) *uint { return &v }
