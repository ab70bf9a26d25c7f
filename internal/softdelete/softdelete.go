// Package softdelete holds the shared soft-delete bookkeeping for models that
// embed gorm.DeletedAt.
package softdelete

import "gorm.io/gorm"

// Mode selects which rows a query sees.
type Mode int

const (
	// Active hides soft-deleted rows. This is GORM's default behaviour.
	Active Mode = iota
	// Deleted returns only soft-deleted rows.
	Deleted
	// All returns rows regardless of the marker.
	All
)

// ModeFor maps the common showDeleted query flag to a Mode.
func ModeFor(showDeleted bool) Mode {
	if showDeleted {
		return All
	}
	return Active
}

// Filter returns a GORM scope applying mode. column is the qualified
// deleted_at column when the query joins several tables; it defaults to
// "deleted_at".
func Filter(mode Mode, column ...string) func(db *gorm.DB) *gorm.DB {
	col := "deleted_at"
	if len(column) > 0 && column[0] != "" {
		col = column[0]
	}
	return func(db *gorm.DB) *gorm.DB {
		switch mode {
		case Deleted:
			return db.Unscoped().Where(col + " IS NOT NULL")
		case All:
			return db.Unscoped()
		}
		return db
	}
}

// Delete soft-deletes the rows matching model, or removes them when hard is set.
// It returns the number of affected rows.
func Delete(db *gorm.DB, model any, hard bool) (int64, error) {
	if hard {
		db = db.Unscoped()
	}
	res := db.Delete(model)
	return res.RowsAffected, res.Error
}

// Restore clears the deleted marker of the record with the given id.
func Restore(db *gorm.DB, model any, id string) (int64, error) {
	res := db.Unscoped().Model(model).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	return res.RowsAffected, res.Error
}
