package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/yatube/shared/domain"
	internal_errors "github.com/itchan-dev/yatube/shared/errors"
	sharedpg "github.com/itchan-dev/yatube/shared/storage/pg"
)

const groupColumns = "id, slug, title, description"

// =========================================================================
// Public Methods (satisfy service.GroupStorage)
// =========================================================================

func (s *Storage) CreateGroup(ctx context.Context, data domain.GroupCreationData) (domain.Group, error) {
	return s.createGroup(ctx, s.db, data)
}

// Groups returns all groups ordered by title
func (s *Storage) Groups(ctx context.Context) ([]domain.Group, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+groupColumns+" FROM post_groups ORDER BY title, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.Id, &g.Slug, &g.Title, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}
	return groups, nil
}

func (s *Storage) GroupBySlug(ctx context.Context, slug domain.GroupSlug) (domain.Group, error) {
	return s.group(ctx, s.db, "slug", slug)
}

func (s *Storage) GroupById(ctx context.Context, id domain.GroupId) (domain.Group, error) {
	return s.group(ctx, s.db, "id", id)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) createGroup(ctx context.Context, q Querier, data domain.GroupCreationData) (domain.Group, error) {
	group := domain.Group{Slug: data.Slug, Title: data.Title, Description: data.Description}
	err := q.QueryRowContext(ctx,
		"INSERT INTO post_groups(slug, title, description) VALUES($1, $2, $3) RETURNING id",
		data.Slug, data.Title, data.Description,
	).Scan(&group.Id)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return domain.Group{}, internal_errors.Conflict("Group with this slug already exists.")
		}
		return domain.Group{}, fmt.Errorf("failed to insert group: %w", err)
	}
	return group, nil
}

// group fetches a single group by column, which is one of the fixed names used above
func (s *Storage) group(ctx context.Context, q Querier, column string, value any) (domain.Group, error) {
	var g domain.Group
	err := q.QueryRowContext(ctx,
		"SELECT "+groupColumns+" FROM post_groups WHERE "+column+" = $1",
		value,
	).Scan(&g.Id, &g.Slug, &g.Title, &g.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Group{}, internal_errors.NotFound("Group not found")
		}
		return domain.Group{}, fmt.Errorf("failed to query group: %w", err)
	}
	return g, nil
}
