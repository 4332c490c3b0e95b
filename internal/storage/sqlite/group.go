package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"paperbase/internal/domain"
)

type GroupStore struct {
	db *sqlx.DB
}

func NewGroupStore(db *sqlx.DB) *GroupStore {
	return &GroupStore{db: db}
}

func (s *GroupStore) Add(ctx context.Context, group *domain.Group) (int64, error) {
	if group.DateCreated.IsZero() {
		group.DateCreated = time.Now().UTC()
	}
	if group.Color == "" {
		group.Color = "#3498db"
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (name, description, color, date_created) VALUES (?, ?, ?, ?)",
		group.Name, group.Description, group.Color, group.DateCreated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateName
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *GroupStore) Update(ctx context.Context, group *domain.Group) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, description = ?, color = ? WHERE id = ?",
		group.Name, group.Description, group.Color, group.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the group and nulls the group reference on its articles.
// Articles are never deleted with their group.
func (s *GroupStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE articles SET group_id = NULL WHERE group_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *GroupStore) List(ctx context.Context) ([]domain.Group, error) {
	groups := []domain.Group{}
	query := "SELECT id, name, description, color, date_created FROM groups ORDER BY name"
	if err := s.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, err
	}
	return groups, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
