package usecase

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// inTx runs fn inside one read-write transaction spanning the whole service
// method; the transaction commits on nil and rolls back on error or panic.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// inReadTx runs fn inside a read-only transaction. The rollback in the defer
// is a no-op once the commit succeeded; it exists so every exit path,
// including panics, releases the transaction.
func inReadTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.WithContext(ctx).Begin(&sql.TxOptions{ReadOnly: true})
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit().Error
}
