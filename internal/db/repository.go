package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Scope = func(*gorm.DB) *gorm.DB

// Repository implements the persistence operations shared by every entity.
// Absence is never an error: lookups return nil or an empty slice.
// Associations are not written; repositories that own a many-to-many
// relation expose their own methods for it.
type Repository[E any] struct {
	db     *gorm.DB
	scopes []Scope
}

func NewRepository[E any](db *gorm.DB, scopes ...Scope) *Repository[E] {
	return &Repository[E]{
		db:     db,
		scopes: scopes,
	}
}

// Query returns a session bound to ctx, restricted to the repository scopes.
func (r *Repository[E]) Query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(E)).Scopes(r.scopes...)
}

func (r *Repository[E]) FindByID(ctx context.Context, id string) (*E, error) {
	var e E
	res := r.Query(ctx).Where("id = ?", id).Limit(1).Find(&e)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "find by id")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &e, nil
}

func (r *Repository[E]) FindManyByID(ctx context.Context, ids []string) ([]E, error) {
	entities := make([]E, 0, len(ids))
	if len(ids) == 0 {
		return entities, nil
	}
	res := r.Query(ctx).Where("id IN ?", ids).Find(&entities)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "find many by id")
	}
	return entities, nil
}

func (r *Repository[E]) Save(ctx context.Context, e *E) (*E, error) {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(e)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "save")
	}
	return e, nil
}

func (r *Repository[E]) SaveMany(ctx context.Context, entities []E) ([]E, error) {
	if len(entities) == 0 {
		return entities, nil
	}
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(&entities)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "save many")
	}
	return entities, nil
}

func (r *Repository[E]) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Scopes(r.scopes...).Where("id = ?", id).Delete(new(E))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete by id")
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[E]) DeleteManyByID(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	res := r.db.WithContext(ctx).Scopes(r.scopes...).Where("id IN ?", ids).Delete(new(E))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete many by id")
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[E]) GetAll(ctx context.Context) ([]E, error) {
	return r.findWhere(ctx)
}

// findWhere lists the scoped rows matching the optional condition, oldest first.
func (r *Repository[E]) findWhere(ctx context.Context, cond ...interface{}) ([]E, error) {
	entities := make([]E, 0)
	q := r.Query(ctx)
	if len(cond) > 0 {
		q = q.Where(cond[0], cond[1:]...)
	}
	res := q.Order("created_at").Find(&entities)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "find")
	}
	return entities, nil
}
