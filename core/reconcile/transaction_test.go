package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestAtomic_Commit(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `widgets`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Atomic(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Exec("UPDATE `widgets` SET name = ?", "x").Error
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomic_RollbackOnFatal(t *testing.T) {
	kinds := []Kind{KindResolution, KindOrdering, KindMissingIDs, KindAmbiguousMerge}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			db, mock := setupMockDB(t)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE `widgets`").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectRollback()

			err := Atomic(context.Background(), db, func(tx *gorm.DB) error {
				if err := tx.Exec("UPDATE `widgets` SET name = ?", "x").Error; err != nil {
					return err
				}
				return Fatal(kind, "boom", nil)
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCancelled))
			assert.Equal(t, kind, KindOf(err))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAtomic_DryRunRollsBackAndSucceeds(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `widgets`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := Atomic(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE `widgets` SET name = ?", "x").Error; err != nil {
			return err
		}
		return DryRun()
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomic_DataErrorIsNotCancellation(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `widgets`").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err := Atomic(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Exec("UPDATE `widgets` SET name = ?", "x").Error
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCancelled))
	assert.Contains(t, err.Error(), "deadlock")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomic_SQLiteRollback(t *testing.T) {
	db := newTestDB(t)

	err := Atomic(context.Background(), db, func(tx *gorm.DB) error {
		if _, _, _, err := Upsert(tx, map[string]any{"id": "w1"}, &widget{ID: "w1", Name: "a"}); err != nil {
			return err
		}
		return Fatal(KindMissingIDs, "gone", map[string]string{"ids": "w0"})
	})
	require.Error(t, err)
	assert.EqualValues(t, 0, countRows(t, db, &widget{}))
}
