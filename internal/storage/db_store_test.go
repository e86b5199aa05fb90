package storage

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDBStore(t *testing.T) (*DBStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mockDB.Close()
	})
	return NewDBStore(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestDBStore_Load(t *testing.T) {
	loadQuery := regexp.QuoteMeta("SELECT record_key, payload FROM vocab_entries WHERE namespace = ? AND shard = ?")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      Shard
		wantErr   bool
	}{
		{
			name: "rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(loadQuery).
					WithArgs("words", "ap").
					WillReturnRows(sqlmock.NewRows([]string{"record_key", "payload"}).
						AddRow("apple", `{"word":"apple"}`).
						AddRow("apply", `{"word":"apply"}`))
			},
			want: Shard{
				"apple": json.RawMessage(`{"word":"apple"}`),
				"apply": json.RawMessage(`{"word":"apply"}`),
			},
		},
		{
			name: "no rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(loadQuery).
					WithArgs("words", "ap").
					WillReturnRows(sqlmock.NewRows([]string{"record_key", "payload"}))
			},
			want: Shard{},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(loadQuery).
					WithArgs("words", "ap").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockDBStore(t)
			tt.setupMock(mock)

			got, err := store.Load(context.Background(), NamespaceWords, "ap")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_Save(t *testing.T) {
	deleteQuery := regexp.QuoteMeta("DELETE FROM vocab_entries WHERE namespace = ? AND shard = ?")
	insertQuery := regexp.QuoteMeta("INSERT INTO vocab_entries (namespace, shard, record_key, payload) VALUES (?, ?, ?, ?), (?, ?, ?, ?)")

	tests := []struct {
		name      string
		data      Shard
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "replaces rows in key order",
			data: Shard{
				"apply": json.RawMessage(`{"word":"apply"}`),
				"apple": json.RawMessage(`{"word":"apple"}`),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteQuery).WithArgs("words", "ap").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(insertQuery).
					WithArgs("words", "ap", "apple", `{"word":"apple"}`, "words", "ap", "apply", `{"word":"apply"}`).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name: "empty shard only deletes",
			data: Shard{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteQuery).WithArgs("words", "ap").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name: "insert error rolls back",
			data: Shard{
				"apple": json.RawMessage(`{"word":"apple"}`),
				"apply": json.RawMessage(`{"word":"apply"}`),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(deleteQuery).WithArgs("words", "ap").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(insertQuery).WillReturnError(errors.New("duplicate entry"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockDBStore(t)
			tt.setupMock(mock)

			err := store.Save(context.Background(), NamespaceWords, "ap", tt.data)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_Shards(t *testing.T) {
	store, mock := newMockDBStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT shard FROM vocab_entries WHERE namespace = ? ORDER BY shard")).
		WithArgs("phrases").
		WillReturnRows(sqlmock.NewRows([]string{"shard"}).AddRow("break").AddRow("piece"))

	got, err := store.Shards(context.Background(), NamespacePhrases)
	require.NoError(t, err)
	assert.Equal(t, []string{"break", "piece"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
