package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	db       *DB
	users    *UserStorage
	groups   *GroupStorage
	posts    *PostStorage
	comments *CommentStorage
	follows  *FollowStorage
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := NewDB()
	return fixture{
		db:       db,
		users:    NewUserStorage(db),
		groups:   NewGroupStorage(db),
		posts:    NewPostStorage(db),
		comments: NewCommentStorage(db),
		follows:  NewFollowStorage(db),
	}
}

func (f fixture) user(t *testing.T, name string) model.User {
	t.Helper()

	u, err := f.users.CreateUser(context.Background(), model.User{Username: name, PasswordHash: "x"})
	require.NoError(t, err)
	return u
}

func TestUserStorage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice")
	require.Equal(t, int64(1), alice.ID)
	require.WithinDuration(t, time.Now(), alice.CreatedAt, time.Second)

	_, err := f.users.CreateUser(ctx, model.User{Username: "alice"})
	require.ErrorIs(t, err, service.ErrUsernameTaken)

	got, err := f.users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice, got)

	_, err = f.users.GetUserByID(ctx, 42)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = f.users.GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostStorage_CreateAndGet(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	tests := []struct {
		name    string
		input   model.Post
		wantID  int64
		wantErr error
	}{
		{
			name:   "first post",
			input:  model.Post{AuthorID: alice.ID, Text: "one"},
			wantID: 1,
		},
		{
			name:   "second post",
			input:  model.Post{AuthorID: alice.ID, Text: "two"},
			wantID: 2,
		},
		{
			name:    "unknown author",
			input:   model.Post{AuthorID: 99, Text: "x"},
			wantErr: service.ErrNotFound,
		},
		{
			name:    "unknown group",
			input:   model.Post{AuthorID: alice.ID, Text: "x", GroupID: ptr(int64(5))},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		out, err := f.posts.CreatePost(ctx, tt.input)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.wantID, out.ID, tt.name)
		require.Equal(t, "alice", out.Author, tt.name)
		require.WithinDuration(t, time.Now(), out.PubDate, time.Second, tt.name)

		got, err := f.posts.GetPostByID(ctx, out.ID)
		require.NoError(t, err, tt.name)
		require.Equal(t, out, got, tt.name)
	}

	_, err := f.posts.GetPostByID(ctx, 10)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostStorage_GetPosts_Window(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	for i := 1; i <= 5; i++ {
		_, err := f.posts.CreatePost(ctx, model.Post{AuthorID: alice.ID, Text: fmt.Sprintf("p%d", i)})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		params  storage.ListParams
		wantIDs []int64
	}{
		{name: "all", params: storage.ListParams{}, wantIDs: []int64{1, 2, 3, 4, 5}},
		{name: "first page", params: storage.ListParams{Limit: 2}, wantIDs: []int64{1, 2}},
		{name: "middle page", params: storage.ListParams{Limit: 2, Offset: 2}, wantIDs: []int64{3, 4}},
		{name: "tail", params: storage.ListParams{Limit: 2, Offset: 4}, wantIDs: []int64{5}},
		{name: "past end", params: storage.ListParams{Limit: 2, Offset: 10}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := f.posts.GetPosts(ctx, tt.params)
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}

	n, err := f.posts.CountPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestPostStorage_UpdateKeepsAuthorAndDate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	p, err := f.posts.CreatePost(ctx, model.Post{AuthorID: alice.ID, Text: "old"})
	require.NoError(t, err)

	upd := p
	upd.AuthorID = bob.ID
	upd.PubDate = time.Time{}
	upd.Text = "new"

	got, err := f.posts.UpdatePost(ctx, upd)
	require.NoError(t, err)
	require.Equal(t, "new", got.Text)
	require.Equal(t, alice.ID, got.AuthorID)
	require.Equal(t, p.PubDate, got.PubDate)

	_, err = f.posts.UpdatePost(ctx, model.Post{ID: 77})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostStorage_DeleteCascadesComments(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	p1, err := f.posts.CreatePost(ctx, model.Post{AuthorID: alice.ID, Text: "one"})
	require.NoError(t, err)
	p2, err := f.posts.CreatePost(ctx, model.Post{AuthorID: alice.ID, Text: "two"})
	require.NoError(t, err)

	c1, err := f.comments.CreateComment(ctx, model.Comment{PostID: p1.ID, AuthorID: alice.ID, Text: "a"})
	require.NoError(t, err)
	c2, err := f.comments.CreateComment(ctx, model.Comment{PostID: p2.ID, AuthorID: alice.ID, Text: "b"})
	require.NoError(t, err)

	require.NoError(t, f.posts.DeletePost(ctx, p1.ID))
	require.ErrorIs(t, f.posts.DeletePost(ctx, p1.ID), service.ErrNotFound)

	_, err = f.comments.GetCommentByID(ctx, c1.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = f.comments.GetCommentByID(ctx, c2.ID)
	require.NoError(t, err)

	_, err = f.posts.GetPostAuthorID(ctx, p1.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
	author, err := f.posts.GetPostAuthorID(ctx, p2.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, author)
}

func TestGroupStorage_DeleteDetachesPosts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	g, err := f.groups.CreateGroup(ctx, model.Group{Title: "Cats", Slug: "cats", Description: "d"})
	require.NoError(t, err)

	p, err := f.posts.CreatePost(ctx, model.Post{AuthorID: alice.ID, Text: "x", GroupID: &g.ID})
	require.NoError(t, err)
	require.Equal(t, g.ID, *p.GroupID)

	g.Title = "Dogs"
	upd, err := f.groups.UpdateGroup(ctx, g)
	require.NoError(t, err)
	require.Equal(t, "Dogs", upd.Title)

	require.NoError(t, f.groups.DeleteGroup(ctx, g.ID))
	require.ErrorIs(t, f.groups.DeleteGroup(ctx, g.ID), service.ErrNotFound)

	got, err := f.posts.GetPostByID(ctx, p.ID)
	require.NoError(t, err)
	require.Nil(t, got.GroupID)

	groups, err := f.groups.GetGroups(ctx)
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestCommentStorage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	p, err := f.posts.CreatePost(ctx, model.Post{AuthorID: alice.ID, Text: "x"})
	require.NoError(t, err)

	_, err = f.comments.CreateComment(ctx, model.Comment{PostID: 99, AuthorID: bob.ID, Text: "x"})
	require.ErrorIs(t, err, service.ErrNotFound)

	c, err := f.comments.CreateComment(ctx, model.Comment{PostID: p.ID, AuthorID: bob.ID, Text: "hi"})
	require.NoError(t, err)
	require.Equal(t, "bob", c.Author)

	c.Text = "edited"
	c.PostID = 99
	upd, err := f.comments.UpdateComment(ctx, c)
	require.NoError(t, err)
	require.Equal(t, "edited", upd.Text)
	require.Equal(t, p.ID, upd.PostID)

	list, err := f.comments.GetCommentsByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.comments.DeleteComment(ctx, c.ID))
	require.ErrorIs(t, f.comments.DeleteComment(ctx, c.ID), service.ErrNotFound)
}

func TestFollowStorage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	bobby := f.user(t, "Bobby")

	fl, err := f.follows.CreateFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", fl.User)
	require.Equal(t, "bob", fl.Following)

	_, err = f.follows.CreateFollow(ctx, alice.ID, bob.ID)
	require.ErrorIs(t, err, service.ErrAlreadyFollowing)
	_, err = f.follows.CreateFollow(ctx, alice.ID, alice.ID)
	require.ErrorIs(t, err, service.ErrSelfFollow)
	_, err = f.follows.CreateFollow(ctx, alice.ID, 99)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = f.follows.CreateFollow(ctx, alice.ID, bobby.ID)
	require.NoError(t, err)
	_, err = f.follows.CreateFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	ok, err := f.follows.FollowExists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	all, err := f.follows.GetFollows(ctx, storage.GetFollowsParams{UserID: alice.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)

	found, err := f.follows.GetFollows(ctx, storage.GetFollowsParams{UserID: alice.ID, Search: "BOBB"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Bobby", found[0].Following)

	require.NoError(t, f.follows.DeleteFollow(ctx, fl.ID))
	_, err = f.follows.GetFollowByID(ctx, fl.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestFollowStorage_ConcurrentCreateKeepsOnePair(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.follows.CreateFollow(context.Background(), alice.ID, bob.ID); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, created)
}

func TestTxManager_PropagatesError(t *testing.T) {
	t.Parallel()

	m := NewTxManager()
	calls := 0
	err := m.Do(context.Background(), func(context.Context) error {
		calls++
		return service.ErrSelfFollow
	})
	require.ErrorIs(t, err, service.ErrSelfFollow)
	require.Equal(t, 1, calls)
}

func ptr[T any](v T) *T {
	return &v
}
