package postgres

import (
	"context"
	"errors"
	"fmt"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

type PostStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewPostStorage(db DB, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{db: db, getter: getter}
}

// selectPosts joins the author so reads carry the username.
func selectPosts() sq.SelectBuilder {
	return sq.
		Select(
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostIDColumn),
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostAuthorIDColumn),
			tableinfo.Qualified(tableinfo.UsersTableName, tableinfo.UserUsernameColumn),
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostTextColumn),
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostPubDateColumn),
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostImageColumn),
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostGroupIDColumn),
		).
		From(tableinfo.PostsTableName).
		Join(fmt.Sprintf("%s ON %s = %s",
			tableinfo.UsersTableName,
			tableinfo.Qualified(tableinfo.UsersTableName, tableinfo.UserIDColumn),
			tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostAuthorIDColumn),
		)).
		PlaceholderFormat(sq.Dollar)
}

func scanPost(row scanner) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.Author, &p.Text, &p.PubDate, &p.Image, &p.GroupID)
	return p, err
}

func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostAuthorIDColumn,
			tableinfo.PostTextColumn,
			tableinfo.PostImageColumn,
			tableinfo.PostGroupIDColumn,
		).
		Values(in.AuthorID, in.Text, in.Image, in.GroupID).
		Suffix("RETURNING " + tableinfo.PostIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	var id int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec error creating post: %w", err)
	}

	return s.GetPostByID(ctx, id)
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	query, args, err := selectPosts().
		Where(sq.Eq{tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostIDColumn): postID}).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec select post by id: %w", err)
	}
	return out, nil
}

func getPostsQueryBuilder(params storage.ListParams) sq.SelectBuilder {
	qb := selectPosts().OrderBy(tableinfo.Qualified(tableinfo.PostsTableName, tableinfo.PostIDColumn))
	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}
	return qb
}

func (s *PostStorage) GetPosts(ctx context.Context, params storage.ListParams) ([]model.Post, error) {
	query, args, err := getPostsQueryBuilder(params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0, params.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

func (s *PostStorage) CountPosts(ctx context.Context) (int, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From(tableinfo.PostsTableName).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	var n int
	if err := tr.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("exec count posts: %w", err)
	}
	return n, nil
}

// UpdatePost writes text, group and image. Author and pub date are never
// touched.
func (s *PostStorage) UpdatePost(ctx context.Context, in model.Post) (model.Post, error) {
	query, args, err := sq.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostTextColumn, in.Text).
		Set(tableinfo.PostGroupIDColumn, in.GroupID).
		Set(tableinfo.PostImageColumn, in.Image).
		Where(sq.Eq{tableinfo.PostIDColumn: in.ID}).
		Suffix("RETURNING " + tableinfo.PostIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	var id int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == codeForeignKeyViolation {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec update post: %w", err)
	}

	return s.GetPostByID(ctx, id)
}

// DeletePost relies on comments.post_id ON DELETE CASCADE.
func (s *PostStorage) DeletePost(ctx context.Context, postID int64) error {
	query, args, err := sq.
		Delete(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *PostStorage) GetPostAuthorID(ctx context.Context, postID int64) (int64, error) {
	query, args, err := sq.
		Select(tableinfo.PostAuthorIDColumn).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	var authorID int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&authorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, service.ErrNotFound
		}
		return 0, fmt.Errorf("exec select author_id: %w", err)
	}
	return authorID, nil
}
