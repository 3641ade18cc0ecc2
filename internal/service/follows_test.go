package service

import (
	"context"
	"testing"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func passthroughTx(ctrl *gomock.Controller) *MockTxManager {
	tx := NewMockTxManager(ctrl)
	tx.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func TestFollowService_CreateFollow(t *testing.T) {
	t.Parallel()

	alice := model.User{ID: 1, Username: "alice"}
	bob := model.User{ID: 2, Username: "bob"}

	tests := []struct {
		name     string
		req      CreateFollowRequest
		setup    func(fs *MockFollowStorage, us *MockUserStorage)
		wantErr  error
		wantMsg  string
		wantUser string
	}{
		{
			name:    "missing following",
			req:     CreateFollowRequest{UserID: 1},
			setup:   func(_ *MockFollowStorage, _ *MockUserStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "unknown user",
			req:  CreateFollowRequest{UserID: 1, Following: UserRef{Username: "ghost"}},
			setup: func(_ *MockFollowStorage, us *MockUserStorage) {
				us.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(model.User{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "self follow",
			req:  CreateFollowRequest{UserID: 1, Following: UserRef{Username: "alice"}},
			setup: func(fs *MockFollowStorage, us *MockUserStorage) {
				us.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(alice, nil)
				fs.EXPECT().FollowExists(gomock.Any(), int64(1), int64(1)).Return(false, nil)
			},
			wantErr: ErrSelfFollow,
			wantMsg: "Подписка на cамого себя невозможна",
		},
		{
			name: "duplicate",
			req:  CreateFollowRequest{UserID: 1, Following: UserRef{Username: "bob"}},
			setup: func(fs *MockFollowStorage, us *MockUserStorage) {
				us.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(bob, nil)
				fs.EXPECT().FollowExists(gomock.Any(), int64(1), int64(2)).Return(true, nil)
			},
			wantErr: ErrAlreadyFollowing,
			wantMsg: "Вы уже подписывались на этого автора",
		},
		{
			name: "lost race reported as duplicate",
			req:  CreateFollowRequest{UserID: 1, Following: UserRef{ID: 2}},
			setup: func(fs *MockFollowStorage, us *MockUserStorage) {
				us.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(bob, nil)
				fs.EXPECT().FollowExists(gomock.Any(), int64(1), int64(2)).Return(false, nil)
				fs.EXPECT().CreateFollow(gomock.Any(), int64(1), int64(2)).Return(model.Follow{}, ErrAlreadyFollowing)
			},
			wantErr: ErrAlreadyFollowing,
			wantMsg: "Вы уже подписывались на этого автора",
		},
		{
			name: "success by id",
			req:  CreateFollowRequest{UserID: 1, Following: UserRef{ID: 2}},
			setup: func(fs *MockFollowStorage, us *MockUserStorage) {
				us.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(bob, nil)
				fs.EXPECT().FollowExists(gomock.Any(), int64(1), int64(2)).Return(false, nil)
				fs.EXPECT().CreateFollow(gomock.Any(), int64(1), int64(2)).
					Return(model.Follow{ID: 3, UserID: 1, User: "alice", FollowingID: 2, Following: "bob"}, nil)
			},
			wantUser: "bob",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			fs := NewMockFollowStorage(ctrl)
			us := NewMockUserStorage(ctrl)
			tt.setup(fs, us)

			svc := NewFollowService(fs, us, passthroughTx(ctrl))
			got, err := svc.CreateFollow(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					var verr *ValidationError
					require.ErrorAs(t, err, &verr)
					require.Equal(t, []string{tt.wantMsg}, verr.Fields[NonFieldErrors])
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantUser, got.Following)
		})
	}
}

func TestFollowService_GetFollows(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fs := NewMockFollowStorage(ctrl)
	us := NewMockUserStorage(ctrl)

	fs.EXPECT().
		GetFollows(gomock.Any(), storage.GetFollowsParams{UserID: 1, Search: "bo"}).
		Return([]model.Follow{{ID: 1, UserID: 1, FollowingID: 2, Following: "bob"}}, nil)

	svc := NewFollowService(fs, us, NewMockTxManager(ctrl))

	_, err := svc.GetFollows(context.Background(), 0, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	got, err := svc.GetFollows(context.Background(), 1, "bo")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFollowService_DeleteFollow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fs := NewMockFollowStorage(ctrl)
	us := NewMockUserStorage(ctrl)

	fs.EXPECT().GetFollowByID(gomock.Any(), int64(5)).Return(model.Follow{ID: 5, UserID: 1, FollowingID: 2}, nil).Times(2)
	fs.EXPECT().DeleteFollow(gomock.Any(), int64(5)).Return(nil)

	svc := NewFollowService(fs, us, NewMockTxManager(ctrl))

	require.ErrorIs(t, svc.DeleteFollow(context.Background(), 5, 9), ErrNotFound)
	require.NoError(t, svc.DeleteFollow(context.Background(), 5, 1))
}
