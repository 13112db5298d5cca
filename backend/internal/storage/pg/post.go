package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/itchan-dev/yatube/shared/domain"
	internal_errors "github.com/itchan-dev/yatube/shared/errors"
	sharedpg "github.com/itchan-dev/yatube/shared/storage/pg"
)

const selectPosts = `
	SELECT p.id, p.text, p.created_at,
	       u.id, u.username, u.created_at,
	       g.id, g.slug, g.title, g.description
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN post_groups g ON g.id = p.group_id`

const invalidGroupMsg = "Select a valid choice. That choice is not one of the available choices."

// =========================================================================
// Public Methods (satisfy service.ListingStorage and service.PostStorage)
// =========================================================================

// Posts returns every post matching filter, newest first.
func (s *Storage) Posts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	var (
		conds []string
		args  []any
	)
	if filter.GroupSlug != "" {
		args = append(args, filter.GroupSlug)
		conds = append(conds, fmt.Sprintf("g.slug = $%d", len(args)))
	}
	if filter.AuthorUsername != "" {
		args = append(args, filter.AuthorUsername)
		conds = append(conds, fmt.Sprintf("u.username = $%d", len(args)))
	}

	query := selectPosts
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

func (s *Storage) Post(ctx context.Context, id domain.PostId) (domain.Post, error) {
	return s.post(ctx, s.db, id, false)
}

func (s *Storage) CountPostsByAuthor(ctx context.Context, authorId domain.UserId) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE author_id = $1", authorId).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// CreatePost inserts a post and returns it with author and group filled in.
func (s *Storage) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error) {
	var post domain.Post
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		id, err := s.createPost(ctx, tx, data)
		if err != nil {
			return err
		}
		post, err = s.post(ctx, tx, id, false)
		return err
	})
	return post, err
}

// UpdatePost locks the post row for the rest of the transaction, hands the locked
// version to decide and writes the returned text and group.
// When decide returns nil data nothing is written and the locked version is returned.
func (s *Storage) UpdatePost(ctx context.Context, id domain.PostId, decide func(current domain.Post) (*domain.PostEditData, error)) (domain.Post, error) {
	var post domain.Post
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := s.post(ctx, tx, id, true)
		if err != nil {
			return err
		}
		data, err := decide(current)
		if err != nil {
			return err
		}
		if data == nil {
			post = current
			return nil
		}
		if err := s.updatePost(ctx, tx, id, *data); err != nil {
			return err
		}
		post, err = s.post(ctx, tx, id, false)
		return err
	})
	return post, err
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (domain.Post, error) {
	var (
		post      domain.Post
		groupId   sql.NullInt64
		groupSlug sql.NullString
		title     sql.NullString
		descr     sql.NullString
	)
	err := row.Scan(
		&post.Id, &post.Text, &post.CreatedAt,
		&post.Author.Id, &post.Author.Username, &post.Author.CreatedAt,
		&groupId, &groupSlug, &title, &descr,
	)
	if err != nil {
		return domain.Post{}, err
	}
	if groupId.Valid {
		post.Group = &domain.Group{Id: groupId.Int64, Slug: groupSlug.String, Title: title.String, Description: descr.String}
	}
	return post, nil
}

// post fetches one post. forUpdate locks its row until the enclosing transaction ends.
func (s *Storage) post(ctx context.Context, q Querier, id domain.PostId, forUpdate bool) (domain.Post, error) {
	query := selectPosts + " WHERE p.id = $1"
	if forUpdate {
		// the nullable side of an outer join cannot be locked
		query += " FOR UPDATE OF p"
	}
	post, err := scanPost(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return post, nil
}

func (s *Storage) createPost(ctx context.Context, q Querier, data domain.PostCreationData) (domain.PostId, error) {
	var id domain.PostId
	err := q.QueryRowContext(ctx,
		"INSERT INTO posts(text, author_id, group_id) VALUES($1, $2, $3) RETURNING id",
		data.Text, data.Author.Id, data.GroupId,
	).Scan(&id)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return 0, internal_errors.BadRequest(invalidGroupMsg)
		}
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

// updatePost touches text and group only
func (s *Storage) updatePost(ctx context.Context, q Querier, id domain.PostId, data domain.PostEditData) error {
	result, err := q.ExecContext(ctx,
		"UPDATE posts SET text = $1, group_id = $2 WHERE id = $3",
		data.Text, data.GroupId, id,
	)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return internal_errors.BadRequest(invalidGroupMsg)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for post update: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound("Post not found")
	}
	return nil
}
