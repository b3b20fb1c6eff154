package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func studentRows() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "username", "first_name", "last_name", "middle_name", "school", "level", "course",
		"matric_number", "gender", "phone_number", "password_hash", "supervisor_id", "supervisor_name",
		"hits_num", "created_at", "updated_at",
	}).AddRow(
		"student-1", "jdoe", "John", "Doe", "", "FUTA", "300", "CSC",
		"CSC/2020/001", "male", "0800", "hash", nil, nil,
		0, now, now,
	)
}

func TestStudentRepositoryFindByUsername(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("jdoe").
		WillReturnRows(studentRows())

	student, err := repo.FindByUsername(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	assert.Equal(t, "CSC/2020/001", student.MatricNumber)
	assert.Nil(t, student.SupervisorID)
}

func TestStudentRepositoryFindByUsernameMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryAssign(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET supervisor_id")).
		WithArgs("student-1", "sup-1", "Okafor Ada", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Assign(context.Background(), "student-1", "sup-1", "Okafor Ada")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryAssignMissingStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET supervisor_id")).
		WithArgs("ghost", "sup-1", "Okafor Ada", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Assign(context.Background(), "ghost", "sup-1", "Okafor Ada")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryDecrementHits(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE students SET hits_num = hits_num - $2")).
		WithArgs("jdoe", 3, sqlmock.AnyArg()).
		WillReturnRows(studentRows())

	student, err := repo.DecrementHits(context.Background(), "jdoe", 3)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", student.Username)
}

func TestStudentRepositoryListBySupervisor(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("sup-1").
		WillReturnRows(studentRows())

	roster, err := repo.ListBySupervisor(context.Background(), "sup-1")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "student-1", roster[0].ID)
}
