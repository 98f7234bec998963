package relation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RelationRepository interface {
		Exists(ctx context.Context, kind Kind, subjectID, objectID string) (bool, error)
		Create(ctx context.Context, kind Kind, subjectID, objectID uuid.UUID) error
		Delete(ctx context.Context, kind Kind, subjectID, objectID string) error
	}

	relationRepository struct {
		db *gorm.DB
	}
)

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) Exists(ctx context.Context, kind Kind, subjectID, objectID string) (bool, error) {
	spec := kindSpecs[kind]
	var count int64
	if err := r.db.WithContext(ctx).
		Model(spec.blankRow()).
		Where("user_id = ? AND "+spec.objectColumn+" = ?", subjectID, objectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *relationRepository) Create(ctx context.Context, kind Kind, subjectID, objectID uuid.UUID) error {
	spec := kindSpecs[kind]
	return r.db.WithContext(ctx).Create(spec.newRow(subjectID, objectID)).Error
}

// Delete removes the pair's row if present. Deleting zero rows is not an
// error; the existence check before it decides what the caller reports.
func (r *relationRepository) Delete(ctx context.Context, kind Kind, subjectID, objectID string) error {
	spec := kindSpecs[kind]
	return r.db.WithContext(ctx).
		Where("user_id = ? AND "+spec.objectColumn+" = ?", subjectID, objectID).
		Delete(spec.blankRow()).Error
}
