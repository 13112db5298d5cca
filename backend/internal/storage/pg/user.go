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

// =========================================================================
// Public Methods (satisfy service.AuthStorage and service.ListingStorage)
// =========================================================================

func (s *Storage) SaveUser(ctx context.Context, user domain.User) (domain.UserId, error) {
	return s.saveUser(ctx, s.db, user)
}

func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	return s.userByUsername(ctx, s.db, username)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveUser(ctx context.Context, q Querier, user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := q.QueryRowContext(ctx,
		"INSERT INTO users(username, password_hash, is_admin) VALUES($1, $2, $3) RETURNING id",
		user.Username, user.PassHash, user.Admin,
	).Scan(&id)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return 0, internal_errors.Conflict("A user with that username already exists.")
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) userByUsername(ctx context.Context, q Querier, username domain.Username) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx,
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Admin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
