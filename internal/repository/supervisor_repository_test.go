package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supervisorLoadRows(counts ...int) *sqlmock.Rows {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "username", "first_name", "last_name", "middle_name", "school", "region",
		"gender", "phone_number", "password_hash", "created_at", "updated_at", "roster_count",
	})
	for i, count := range counts {
		created := base.Add(time.Duration(i) * time.Hour)
		rows.AddRow(
			// created_at ascending, matching the query's ORDER BY
			"sup-"+string(rune('a'+i)), "sup"+string(rune('a'+i)), "Ada", "Okafor", "", "FUTA", "Ondo",
			"female", "0800", "hash", created, created, count,
		)
	}
	return rows
}

func TestSupervisorRepositoryListByRegionWithLoad(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSupervisorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN students st ON st.supervisor_id = s.id")).
		WithArgs("Ondo").
		WillReturnRows(supervisorLoadRows(0, 2, 1))

	loads, err := repo.ListByRegionWithLoad(context.Background(), "Ondo")
	require.NoError(t, err)
	require.Len(t, loads, 3)
	assert.Equal(t, 0, loads[0].RosterCount)
	assert.Equal(t, 2, loads[1].RosterCount)
	assert.Equal(t, "Okafor Ada", loads[0].DisplayName())
}

func TestSupervisorRepositoryListByRegionEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSupervisorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN students st ON st.supervisor_id = s.id")).
		WithArgs("Lagos").
		WillReturnRows(supervisorLoadRows())

	loads, err := repo.ListByRegionWithLoad(context.Background(), "Lagos")
	require.NoError(t, err)
	assert.Empty(t, loads)
}

func TestSupervisorRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSupervisorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
