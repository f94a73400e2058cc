package repository

import (
	"context"

	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/sqlerr"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ProgrammerRepository persists Programmer records through gorm.
//
// Records handed out are plain values: changing one has no effect on the
// database until it is passed back to Update, which commits on return.
type ProgrammerRepository struct {
	db *gorm.DB
}

func NewProgrammerRepository(db *gorm.DB) *ProgrammerRepository {
	return &ProgrammerRepository{db: db}
}

// updatableColumns is every Programmer column except the primary key.
func updatableColumns() []string {
	var cols []string
	for _, c := range schema.Programmer.Columns {
		if !c.PrimaryKey {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

// Create inserts p and commits. The returned record carries the new id.
func (r *ProgrammerRepository) Create(ctx context.Context, p model.Programmer) (model.Programmer, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&p).Error
	})
	if err != nil {
		return model.Programmer{}, sqlerr.HandleError(errors.Wrapf(err, "create programmer %s", p.FullName()))
	}
	return p, nil
}

// ByID returns the programmer with the given id.
func (r *ProgrammerRepository) ByID(ctx context.Context, id int) (model.Programmer, error) {
	return first[model.Programmer](ctx, r.db, schema.Programmer, schema.Filter{"id": id})
}

// First returns the first programmer matching every predicate of filter.
func (r *ProgrammerRepository) First(ctx context.Context, filter schema.Filter) (model.Programmer, error) {
	return first[model.Programmer](ctx, r.db, schema.Programmer, filter)
}

// Find returns every programmer matching filter; a nil filter matches all.
func (r *ProgrammerRepository) Find(ctx context.Context, filter schema.Filter) ([]model.Programmer, error) {
	return find[model.Programmer](ctx, r.db, schema.Programmer, filter)
}

// Update writes every column of p to the row with p's id and commits.
func (r *ProgrammerRepository) Update(ctx context.Context, p model.Programmer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Programmer{ID: p.ID}).Select(updatableColumns()).Updates(&p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return sqlerr.HandleError(sqlerr.WithTable(schema.Programmer.Name, "update", err))
	}
	return nil
}

// Delete removes the row of p and commits.
func (r *ProgrammerRepository) Delete(ctx context.Context, p model.Programmer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Programmer{}, p.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return sqlerr.HandleError(sqlerr.WithTable(schema.Programmer.Name, "delete", err))
	}
	return nil
}
