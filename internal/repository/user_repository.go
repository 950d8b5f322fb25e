package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"formhub/internal/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
	Search(term string) ([]model.User, error)
	CountByIDs(ids []uuid.UUID) (int64, error)
	DeleteByIDs(ids []uuid.UUID) error
	SetBlocked(ids []uuid.UUID, blocked bool) error
	SetAdmin(ids []uuid.UUID, admin bool) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Search(term string) ([]model.User, error) {
	var users []model.User
	pattern := "%" + term + "%"
	err := r.db.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).Find(&users).Error
	return users, err
}

func (r *userRepository) CountByIDs(ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *userRepository) DeleteByIDs(ids []uuid.UUID) error {
	return r.db.Where("id IN ?", ids).Delete(&model.User{}).Error
}

func (r *userRepository) SetBlocked(ids []uuid.UUID, blocked bool) error {
	return r.db.Model(&model.User{}).Where("id IN ?", ids).Update("is_blocked", blocked).Error
}

func (r *userRepository) SetAdmin(ids []uuid.UUID, admin bool) error {
	return r.db.Model(&model.User{}).Where("id IN ?", ids).Update("is_admin", admin).Error
}
