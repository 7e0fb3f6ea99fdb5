package repository

import (
	"context"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id string) (*model.Subject, error)
	FindAll(ctx context.Context) ([]*model.Subject, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type subjectRepoImpl struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepoImpl{db: db}
}

func (r *subjectRepoImpl) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepoImpl) FindByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepoImpl) FindAll(ctx context.Context) ([]*model.Subject, error) {
	var subjects []*model.Subject
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepoImpl) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Subject{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *subjectRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Subject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
