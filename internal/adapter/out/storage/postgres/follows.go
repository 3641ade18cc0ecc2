package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

const (
	followerAlias = "follower"
	followedAlias = "followed"
)

type FollowStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewFollowStorage(db DB, getter *trmpgx.CtxGetter) *FollowStorage {
	return &FollowStorage{db: db, getter: getter}
}

func selectFollows() sq.SelectBuilder {
	join := func(alias, column string) string {
		return fmt.Sprintf("%s AS %s ON %s = %s",
			tableinfo.UsersTableName, alias,
			tableinfo.Qualified(alias, tableinfo.UserIDColumn),
			tableinfo.Qualified(tableinfo.FollowsTableName, column),
		)
	}

	return sq.
		Select(
			tableinfo.Qualified(tableinfo.FollowsTableName, tableinfo.FollowIDColumn),
			tableinfo.Qualified(tableinfo.FollowsTableName, tableinfo.FollowUserIDColumn),
			tableinfo.Qualified(followerAlias, tableinfo.UserUsernameColumn),
			tableinfo.Qualified(tableinfo.FollowsTableName, tableinfo.FollowFollowingIDColumn),
			tableinfo.Qualified(followedAlias, tableinfo.UserUsernameColumn),
		).
		From(tableinfo.FollowsTableName).
		Join(join(followerAlias, tableinfo.FollowUserIDColumn)).
		Join(join(followedAlias, tableinfo.FollowFollowingIDColumn)).
		PlaceholderFormat(sq.Dollar)
}

func scanFollow(row scanner) (model.Follow, error) {
	var f model.Follow
	err := row.Scan(&f.ID, &f.UserID, &f.User, &f.FollowingID, &f.Following)
	return f, err
}

// CreateFollow maps the UNIQUE and CHECK constraints back to the service
// sentinels, so a lost race still reads as a duplicate.
func (s *FollowStorage) CreateFollow(ctx context.Context, userID, followingID int64) (model.Follow, error) {
	query, args, err := sq.
		Insert(tableinfo.FollowsTableName).
		Columns(tableinfo.FollowUserIDColumn, tableinfo.FollowFollowingIDColumn).
		Values(userID, followingID).
		Suffix("RETURNING " + tableinfo.FollowIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Follow{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	var id int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			return model.Follow{}, service.ErrAlreadyFollowing
		case codeCheckViolation:
			return model.Follow{}, service.ErrSelfFollow
		case codeForeignKeyViolation:
			return model.Follow{}, service.ErrNotFound
		}
		return model.Follow{}, fmt.Errorf("exec insert follow: %w", err)
	}

	return s.GetFollowByID(ctx, id)
}

func (s *FollowStorage) FollowExists(ctx context.Context, userID, followingID int64) (bool, error) {
	query, args, err := sq.
		Select("1").
		From(tableinfo.FollowsTableName).
		Where(sq.Eq{
			tableinfo.FollowUserIDColumn:      userID,
			tableinfo.FollowFollowingIDColumn: followingID,
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	var ok bool
	if err := tr.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("exec follow exists: %w", err)
	}
	return ok, nil
}

func (s *FollowStorage) GetFollowByID(ctx context.Context, followID int64) (model.Follow, error) {
	query, args, err := selectFollows().
		Where(sq.Eq{tableinfo.Qualified(tableinfo.FollowsTableName, tableinfo.FollowIDColumn): followID}).
		ToSql()
	if err != nil {
		return model.Follow{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanFollow(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Follow{}, service.ErrNotFound
		}
		return model.Follow{}, fmt.Errorf("exec select follow by id: %w", err)
	}
	return out, nil
}

func getFollowsQueryBuilder(params storage.GetFollowsParams) sq.SelectBuilder {
	qb := selectFollows().
		Where(sq.Eq{tableinfo.Qualified(tableinfo.FollowsTableName, tableinfo.FollowUserIDColumn): params.UserID}).
		OrderBy(tableinfo.Qualified(tableinfo.FollowsTableName, tableinfo.FollowIDColumn))
	if params.Search != "" {
		qb = qb.Where(sq.ILike{
			tableinfo.Qualified(followedAlias, tableinfo.UserUsernameColumn): "%" + escapeLike(params.Search) + "%",
		})
	}
	return qb
}

func (s *FollowStorage) GetFollows(ctx context.Context, params storage.GetFollowsParams) ([]model.Follow, error) {
	query, args, err := getFollowsQueryBuilder(params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select follows: %w", err)
	}
	defer rows.Close()

	out := make([]model.Follow, 0)
	for rows.Next() {
		f, err := scanFollow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *FollowStorage) DeleteFollow(ctx context.Context, followID int64) error {
	query, args, err := sq.
		Delete(tableinfo.FollowsTableName).
		Where(sq.Eq{tableinfo.FollowIDColumn: followID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
