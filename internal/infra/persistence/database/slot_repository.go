package database

import (
	"context"

	"biaresh/internal/domain/repository"
	"biaresh/internal/errors"
	"biaresh/internal/infra/persistence/database/query"
	"biaresh/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type slotRepository struct {
	q         *query.Query
	keyPrefix string
}

// NewSlotRepository creates a slot repository over the storage_slots table
func NewSlotRepository(db *gorm.DB, keyPrefix string) repository.SlotRepository {
	return &slotRepository{
		q:         query.Use(db),
		keyPrefix: keyPrefix,
	}
}

func (repo *slotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	row, err := repo.q.SlotModel.WithContext(ctx).
		Where(repo.q.SlotModel.Key.Eq(repo.keyPrefix + key)).
		Take()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrSlotNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read slot %s", key)
	}

	return []byte(row.Value), nil
}

func (repo *slotRepository) Set(ctx context.Context, key string, value []byte) error {
	row := toSlotModel(repo.keyPrefix+key, value)
	slots := repo.q.SlotModel

	err := slots.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: string(slots.Key.ColumnName())}},
			DoUpdates: clause.AssignmentColumns([]string{
				string(slots.Value.ColumnName()),
				string(slots.UpdatedAt.ColumnName()),
			}),
		}).
		Create(row)
	if err != nil {
		return errors.Wrapf(err, "failed to write slot %s", key)
	}

	return nil
}

func (repo *slotRepository) Delete(ctx context.Context, key string) error {
	_, err := repo.q.SlotModel.WithContext(ctx).
		Where(repo.q.SlotModel.Key.Eq(repo.keyPrefix + key)).
		Delete()
	if err != nil {
		return errors.Wrapf(err, "failed to delete slot %s", key)
	}

	return nil
}

func toSlotModel(key string, value []byte) *model.SlotModel {
	return &model.SlotModel{
		Key:   key,
		Value: string(value),
	}
}
