package postgres

import (
	"context"
	"errors"
	"testing"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/adapter/out/storage/postgres/mocks"
	"yatube/internal/model"
	"yatube/internal/service"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func followRow(f model.Follow) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*int64)) = f.ID
		*(dest[1].(*int64)) = f.UserID
		*(dest[2].(*string)) = f.User
		*(dest[3].(*int64)) = f.FollowingID
		*(dest[4].(*string)) = f.Following
		return nil
	}}
}

func Test_getFollowsQueryBuilder(t *testing.T) {
	sql, args, err := getFollowsQueryBuilder(storage.GetFollowsParams{UserID: 1}).ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "JOIN users AS follower ON follower.id = follows.user_id")
	require.Contains(t, sql, "JOIN users AS followed ON followed.id = follows.following_id")
	require.NotContains(t, sql, "ILIKE")
	require.Equal(t, []any{int64(1)}, args)

	sql, args, err = getFollowsQueryBuilder(storage.GetFollowsParams{UserID: 1, Search: "b_b%"}).ToSql()
	require.NoError(t, err)
	require.Contains(t, sql, "followed.username ILIKE $2")
	require.Equal(t, []any{int64(1), `%b\_b\%%`}, args)
}

func TestFollowStorage_CreateFollow(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *mocks.MockDB)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m *mocks.MockDB) {
				gomock.InOrder(
					m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(1), int64(2)).Return(idRow(10)),
					m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(10)).Return(followRow(model.Follow{
						ID: 10, UserID: 1, User: "alice", FollowingID: 2, Following: "bob",
					})),
				)
			},
		},
		{
			name: "unique violation",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(1), int64(2)).
					Return(errRow(&pgconn.PgError{Code: codeUniqueViolation}))
			},
			wantErr: service.ErrAlreadyFollowing,
		},
		{
			name: "check violation",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(1), int64(2)).
					Return(errRow(&pgconn.PgError{Code: codeCheckViolation}))
			},
			wantErr: service.ErrSelfFollow,
		},
		{
			name: "unknown user",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(1), int64(2)).
					Return(errRow(&pgconn.PgError{Code: codeForeignKeyViolation}))
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockDB(ctrl)
			tt.setup(m)

			got, err := NewFollowStorage(m, trmpgx.DefaultCtxGetter).CreateFollow(context.Background(), 1, 2)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "bob", got.Following)
			require.Equal(t, "alice", got.User)
		})
	}
}

func TestFollowStorage_FollowExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockDB(ctrl)

	m.EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.Contains(t, sql, "SELECT EXISTS (")
			require.Contains(t, sql, "SELECT 1 FROM follows WHERE")
			return fakeRow{scan: func(dest ...any) error {
				*(dest[0].(*bool)) = true
				return nil
			}}
		})

	ok, err := NewFollowStorage(m, trmpgx.DefaultCtxGetter).FollowExists(context.Background(), 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFollowStorage_GetFollows(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockDB(ctrl)

	rows := pgxmock.
		NewRows([]string{"id", "user_id", "username", "following_id", "username"}).
		AddRow(int64(1), int64(1), "alice", int64(2), "bob").
		AddRow(int64(2), int64(1), "alice", int64(3), "bobby").
		Kind()
	m.EXPECT().Query(gomock.Any(), gomock.Any(), int64(1), "%bob%").Return(rows, nil)

	got, err := NewFollowStorage(m, trmpgx.DefaultCtxGetter).GetFollows(context.Background(), storage.GetFollowsParams{
		UserID: 1,
		Search: "bob",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "bobby", got[1].Following)
}

func TestFollowStorage_GetFollowByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockDB(ctrl)
	m.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(3)).Return(errRow(pgx.ErrNoRows))

	_, err := NewFollowStorage(m, trmpgx.DefaultCtxGetter).GetFollowByID(context.Background(), 3)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestFollowStorage_DeleteFollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockDB(ctrl)
	gomock.InOrder(
		m.EXPECT().Exec(gomock.Any(), "DELETE FROM follows WHERE id = $1", int64(3)).
			Return(pgconn.NewCommandTag("DELETE 1"), nil),
		m.EXPECT().Exec(gomock.Any(), "DELETE FROM follows WHERE id = $1", int64(3)).
			Return(pgconn.NewCommandTag("DELETE 0"), nil),
		m.EXPECT().Exec(gomock.Any(), gomock.Any(), int64(3)).
			Return(pgconn.CommandTag{}, errors.New("db down")),
	)

	st := NewFollowStorage(m, trmpgx.DefaultCtxGetter)
	require.NoError(t, st.DeleteFollow(context.Background(), 3))
	require.ErrorIs(t, st.DeleteFollow(context.Background(), 3), service.ErrNotFound)
	require.ErrorContains(t, st.DeleteFollow(context.Background(), 3), "db down")
}
