package postgres

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/repository"
)

// newMockDB returns a postgres-dialect session backed by sqlmock, configured the
// same way New configures the real pool.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return newSession(db, slog.New(slog.DiscardHandler), nil), mock
}

func TestConnectionRepository_ExistsAccepted(t *testing.T) {
	caretakerID, patientID := uuid.New(), uuid.New()
	const query = `SELECT count\(\*\) FROM "connections" WHERE "connections"."caretaker_id" = \$1 AND "connections"."patient_id" = \$2 AND "connections"."status" = \$3`

	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "accepted row", count: 1, want: true},
		{name: "no accepted row", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(query).
				WithArgs(caretakerID, patientID, "ACCEPTED").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			ok, err := NewConnectionRepository(db, nil).ExistsAccepted(context.Background(), caretakerID, patientID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestConnectionRepository_ListAcceptedCaretakerIDs(t *testing.T) {
	db, mock := newMockDB(t)
	patientID := uuid.New()
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT .*"caretaker_id" FROM "connections" WHERE "connections"."patient_id" = \$1 AND "connections"."status" = \$2 ORDER BY "connections"."created_at" ASC`).
		WithArgs(patientID, "ACCEPTED").
		WillReturnRows(sqlmock.NewRows([]string{"caretaker_id"}).AddRow(first.String()).AddRow(second.String()))

	ids, err := NewConnectionRepository(db, nil).ListAcceptedCaretakerIDs(context.Background(), patientID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)
}

func TestConnectionRepository_UpdateStatus(t *testing.T) {
	const update = `UPDATE "connections" SET .*"status"=\$1.*"updated_at"=\$2 WHERE "connections"."id" = \$3 AND "connections"."patient_id" = \$4`

	t.Run("not owned by patient", func(t *testing.T) {
		db, mock := newMockDB(t)
		id, patientID := uuid.New(), uuid.New()

		mock.ExpectExec(update).
			WithArgs("ACCEPTED", sqlmock.AnyArg(), id, patientID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		conn, err := NewConnectionRepository(db, nil).UpdateStatus(context.Background(), id, patientID, entity.ConnectionAccepted)

		assert.Nil(t, conn)
		assert.ErrorIs(t, err, repository.ErrConnectionNotFound)
	})

	t.Run("returns stored row", func(t *testing.T) {
		db, mock := newMockDB(t)
		id, patientID, caretakerID := uuid.New(), uuid.New(), uuid.New()
		now := time.Now().UTC()

		mock.ExpectExec(update).
			WithArgs("REJECTED", sqlmock.AnyArg(), id, patientID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "connections" WHERE "connections"."id" = \$1 LIMIT \$2`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "caretaker_id", "patient_id", "status", "created_at", "updated_at"}).
				AddRow(id.String(), caretakerID.String(), patientID.String(), "REJECTED", now, now))

		conn, err := NewConnectionRepository(db, nil).UpdateStatus(context.Background(), id, patientID, entity.ConnectionRejected)

		require.NoError(t, err)
		assert.Equal(t, entity.ConnectionRejected, conn.Status)
		assert.Equal(t, caretakerID, conn.CaretakerID)
	})
}

func TestLocationRepository_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	patientID := uuid.New()
	newest, older := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE "locations"."patient_id" = \$1 ORDER BY "locations"."recorded_at" DESC LIMIT \$2`).
		WithArgs(patientID, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "lat", "lng", "recorded_at"}).
			AddRow(newest.String(), patientID.String(), 25.03, 121.56, now).
			AddRow(older.String(), patientID.String(), 25.02, 121.55, now.Add(-time.Minute)))

	records, err := NewLocationRepository(db, nil).ListRecent(context.Background(), patientID, 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newest, records[0].ID)
	assert.Equal(t, older, records[1].ID)
	assert.True(t, records[0].RecordedAt.After(records[1].RecordedAt))
}

func TestLocationRepository_FindLatest(t *testing.T) {
	const query = `SELECT \* FROM "locations" WHERE "locations"."patient_id" = \$1 ORDER BY "locations"."recorded_at" DESC LIMIT \$2`

	t.Run("no history", func(t *testing.T) {
		db, mock := newMockDB(t)
		patientID := uuid.New()

		mock.ExpectQuery(query).
			WithArgs(patientID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "lat", "lng", "recorded_at"}))

		record, err := NewLocationRepository(db, nil).FindLatest(context.Background(), patientID)

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("newest record", func(t *testing.T) {
		db, mock := newMockDB(t)
		patientID, id := uuid.New(), uuid.New()

		mock.ExpectQuery(query).
			WithArgs(patientID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "lat", "lng", "recorded_at"}).
				AddRow(id.String(), patientID.String(), 25.03, 121.56, time.Now().UTC()))

		record, err := NewLocationRepository(db, nil).FindLatest(context.Background(), patientID)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, id, record.ID)
		assert.InDelta(t, 25.03, record.Lat, 1e-9)
	})
}

func TestAlertRepository_CountUnresolved(t *testing.T) {
	db, mock := newMockDB(t)
	caretakerID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts" WHERE "alerts"."caretaker_id" = \$1 AND "alerts"."resolved" = \$2`).
		WithArgs(caretakerID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewAlertRepository(db, nil).CountUnresolved(context.Background(), caretakerID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAlertRepository_ResolveNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	id, caretakerID := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE "alerts" SET "resolved"=\$1 WHERE "alerts"."id" = \$2 AND "alerts"."caretaker_id" = \$3`).
		WithArgs(true, id, caretakerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	alert, err := NewAlertRepository(db, nil).Resolve(context.Background(), id, caretakerID)

	assert.Nil(t, alert)
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}

func TestJournalRepository_ListByPatient(t *testing.T) {
	db, mock := newMockDB(t)
	patientID := uuid.New()
	newest, older := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "journals" WHERE "journals"."patient_id" = \$1 ORDER BY "journals"."created_at" DESC`).
		WithArgs(patientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "content", "mood", "created_at", "updated_at"}).
			AddRow(newest.String(), patientID.String(), "Walked to the park", "calm", now, now).
			AddRow(older.String(), patientID.String(), "Rainy day", nil, now.Add(-time.Hour), now.Add(-time.Hour)))

	journals, err := NewJournalRepository(db, nil).ListByPatient(context.Background(), patientID)

	require.NoError(t, err)
	require.Len(t, journals, 2)
	assert.Equal(t, newest, journals[0].ID)
	require.NotNil(t, journals[0].Mood)
	assert.Equal(t, "calm", *journals[0].Mood)
	assert.Nil(t, journals[1].Mood)
}

func TestJournalRepository_UpdateScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	id, patientID := uuid.New(), uuid.New()
	content := "Edited"

	mock.ExpectExec(`UPDATE "journals" SET "content"=\$1,"updated_at"=\$2 WHERE "journals"."id" = \$3 AND "journals"."patient_id" = \$4`).
		WithArgs(content, sqlmock.AnyArg(), id, patientID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	journal, err := NewJournalRepository(db, nil).Update(context.Background(), id, patientID, entity.JournalChanges{Content: &content})

	assert.Nil(t, journal)
	assert.ErrorIs(t, err, repository.ErrJournalNotFound)
}

func TestJournalRepository_Delete(t *testing.T) {
	const del = `DELETE FROM "journals" WHERE "journals"."id" = \$1 AND "journals"."patient_id" = \$2`

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "owned entry", affected: 1},
		{name: "missing or foreign entry", affected: 0, wantErr: repository.ErrJournalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			id, patientID := uuid.New(), uuid.New()

			mock.ExpectExec(del).
				WithArgs(id, patientID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := NewJournalRepository(db, nil).Delete(context.Background(), id, patientID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMedicationRepository_ListByPatientOrdersBySchedule(t *testing.T) {
	db, mock := newMockDB(t)
	patientID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "medications" WHERE "medications"."patient_id" = \$1 ORDER BY "medications"."time" ASC,"medications"."created_at" ASC`).
		WithArgs(patientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "name", "dosage", "time", "taken"}).
			AddRow(uuid.NewString(), patientID.String(), "Donepezil", "5mg", "08:00", false))

	meds, err := NewMedicationRepository(db, nil).ListByPatient(context.Background(), patientID)

	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "08:00", meds[0].Time)
}

func TestTaskRepository_UpdateCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	id, patientID := uuid.New(), uuid.New()
	done := true
	now := time.Now().UTC()

	mock.ExpectExec(`UPDATE "tasks" SET "completed"=\$1,"updated_at"=\$2 WHERE "tasks"."id" = \$3 AND "tasks"."patient_id" = \$4`).
		WithArgs(true, sqlmock.AnyArg(), id, patientID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE "tasks"."id" = \$1 LIMIT \$2`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "text", "completed", "created_at", "updated_at"}).
			AddRow(id.String(), patientID.String(), "Water plants", true, now, now))

	task, err := NewTaskRepository(db, nil).Update(context.Background(), id, patientID, entity.TaskChanges{Completed: &done})

	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "Water plants", task.Text)
}
