package postgres

import (
	"context"
	"errors"
	"fmt"

	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var groupColumns = []string{
	tableinfo.GroupIDColumn,
	tableinfo.GroupTitleColumn,
	tableinfo.GroupSlugColumn,
	tableinfo.GroupDescriptionColumn,
}

type GroupStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewGroupStorage(db DB, getter *trmpgx.CtxGetter) *GroupStorage {
	return &GroupStorage{db: db, getter: getter}
}

func (s *GroupStorage) CreateGroup(ctx context.Context, in model.Group) (model.Group, error) {
	query, args, err := sq.
		Insert(tableinfo.GroupsTableName).
		Columns(tableinfo.GroupTitleColumn, tableinfo.GroupSlugColumn, tableinfo.GroupDescriptionColumn).
		Values(in.Title, in.Slug, in.Description).
		Suffix("RETURNING " + tableinfo.GroupIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Group{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	out := in
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(&out.ID); err != nil {
		return model.Group{}, fmt.Errorf("exec insert group: %w", err)
	}
	return out, nil
}

func (s *GroupStorage) GetGroupByID(ctx context.Context, groupID int64) (model.Group, error) {
	query, args, err := sq.
		Select(groupColumns...).
		From(tableinfo.GroupsTableName).
		Where(sq.Eq{tableinfo.GroupIDColumn: groupID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Group{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanGroup(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Group{}, service.ErrNotFound
		}
		return model.Group{}, fmt.Errorf("exec select group by id: %w", err)
	}
	return out, nil
}

func (s *GroupStorage) GetGroups(ctx context.Context) ([]model.Group, error) {
	query, args, err := sq.
		Select(groupColumns...).
		From(tableinfo.GroupsTableName).
		OrderBy(tableinfo.GroupIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select groups: %w", err)
	}
	defer rows.Close()

	out := make([]model.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *GroupStorage) UpdateGroup(ctx context.Context, in model.Group) (model.Group, error) {
	query, args, err := sq.
		Update(tableinfo.GroupsTableName).
		Set(tableinfo.GroupTitleColumn, in.Title).
		Set(tableinfo.GroupSlugColumn, in.Slug).
		Set(tableinfo.GroupDescriptionColumn, in.Description).
		Where(sq.Eq{tableinfo.GroupIDColumn: in.ID}).
		Suffix("RETURNING " + tableinfo.GroupIDColumn).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Group{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	var id int64
	if err := tr.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Group{}, service.ErrNotFound
		}
		return model.Group{}, fmt.Errorf("exec update group: %w", err)
	}
	return in, nil
}

// DeleteGroup relies on posts.group_id ON DELETE SET NULL.
func (s *GroupStorage) DeleteGroup(ctx context.Context, groupID int64) error {
	query, args, err := sq.
		Delete(tableinfo.GroupsTableName).
		Where(sq.Eq{tableinfo.GroupIDColumn: groupID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func scanGroup(row scanner) (model.Group, error) {
	var g model.Group
	err := row.Scan(&g.ID, &g.Title, &g.Slug, &g.Description)
	return g, err
}
