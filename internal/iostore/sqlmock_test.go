package iostore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fitengage/fitimport/pkg/db"
	"github.com/fitengage/fitimport/pkg/errcode"
	"github.com/fitengage/fitimport/pkg/member"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var insertRe = regexp.QuoteMeta(db.InsertSQL)

func smith() member.Member {
	return member.Member{
		Name:            "Smith",
		Email:           "na-_smith@fitengage.com",
		Phone:           "N/A",
		MembershipStart: "N/A",
		MembershipEnd:   "N/A",
		Notes:           "N/A",
	}
}

func TestSQLStore_Sequence(t *testing.T) {
	ctx := context.Background()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(insertRe).
		WithArgs("Smith", "na-_smith@fitengage.com", "N/A", nil,
			"N/A", "N/A", "N/A").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectClose()

	st, err := newSQLStore(ctx, conn)
	require.NoError(t, err)

	require.NoError(t, st.Insert(ctx, smith()))
	require.NoError(t, st.Commit(ctx))
	require.NoError(t, st.Close())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_MembershipTypeArg(t *testing.T) {
	ctx := context.Background()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(insertRe).
		WithArgs("Smith", "na-_smith@fitengage.com", "N/A", int64(2),
			"N/A", "N/A", "N/A").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()
	mock.ExpectClose()

	st, err := newSQLStore(ctx, conn)
	require.NoError(t, err)

	m := smith()
	id := int64(2)
	m.MembershipTypeID = &id
	require.NoError(t, st.Insert(ctx, m))
	require.NoError(t, st.Close())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_DriverErrorIsFatal(t *testing.T) {
	ctx := context.Background()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(insertRe).WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()
	mock.ExpectClose()

	st, err := newSQLStore(ctx, conn)
	require.NoError(t, err)

	err = st.Insert(ctx, smith())
	require.Error(t, err)
	assert.False(t, IsConstraint(err))

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.StoreInsertError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "disk I/O error")

	require.NoError(t, st.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_BeginAndCommitErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("begin", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()

		mock.ExpectBegin().WillReturnError(errors.New("locked"))

		_, err = newSQLStore(ctx, conn)
		require.Error(t, err)
		gnErr := err.(*gn.Error)
		assert.Equal(t, errcode.StoreBeginError, gnErr.Code)
	})

	t.Run("commit", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("database is locked"))
		mock.ExpectClose()

		st, err := newSQLStore(ctx, conn)
		require.NoError(t, err)

		err = st.Commit(ctx)
		require.Error(t, err)
		gnErr := err.(*gn.Error)
		assert.Equal(t, errcode.StoreCommitError, gnErr.Code)

		require.NoError(t, st.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsSQLiteConstraint_ForeignErrors(t *testing.T) {
	assert.False(t, isSQLiteConstraint(errors.New("UNIQUE constraint failed")))
	assert.False(t, isPgConstraint(errors.New("duplicate key")))
}

func TestSQLiteMessage(t *testing.T) {
	tests := []struct {
		msg string
		in  string
		res string
	}{
		{
			msg: "unique",
			in:  "constraint failed: UNIQUE constraint failed: members.name (2067)",
			res: "UNIQUE constraint failed: members.name",
		},
		{
			msg: "not null",
			in:  "constraint failed: NOT NULL constraint failed: members.name (1299)",
			res: "NOT NULL constraint failed: members.name",
		},
		{
			msg: "plain message",
			in:  "UNIQUE constraint failed: members.name",
			res: "UNIQUE constraint failed: members.name",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, sqliteMessage(v.in), v.msg)
	}

	cause := errors.New("constraint failed: CHECK constraint failed: x (275)")
	err := sqliteError{err: cause}
	assert.Equal(t, "CHECK constraint failed: x", err.Error())
	assert.ErrorIs(t, err, cause)
}
