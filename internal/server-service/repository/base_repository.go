package repository

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the lookup every entity repository shares.
type Repository[T any] interface {
	GetById(ctx context.Context, id string) (T, error)
}

type baseRepository[T any] struct {
	db       *gorm.DB
	notFound error
}

func (b baseRepository[T]) GetById(ctx context.Context, id string) (T, error) {
	return b.first(b.db.WithContext(ctx), id)
}

// lockById loads the row with SELECT ... FOR UPDATE, tx must be a transaction.
func (b baseRepository[T]) lockById(tx *gorm.DB, id string) (T, error) {
	return b.first(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (b baseRepository[T]) first(query *gorm.DB, id string) (T, error) {
	var entity T
	if !isValidID(id) {
		return entity, fmt.Errorf("baseRepository.GetById: %w", b.notFound)
	}
	result := query.First(&entity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity, fmt.Errorf("baseRepository.GetById: %w", b.notFound)
		}
		return entity, fmt.Errorf("baseRepository.GetById: %w", apperrors.NewStorageError("select by id", result.Error))
	}
	return entity, nil
}

// isValidID reports whether id can match a uuid primary key. Anything else is rejected by
// postgres with invalid_text_representation and must not reach it.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func newBaseRepository[T any](db *gorm.DB, notFound error) baseRepository[T] {
	return baseRepository[T]{
		db:       db,
		notFound: notFound,
	}
}
