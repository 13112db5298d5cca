package pg

import (
	"context"
	"testing"
	"time"

	"github.com/itchan-dev/yatube/backend/internal/service"
	"github.com/itchan-dev/yatube/backend/internal/utils"
	"github.com/itchan-dev/yatube/shared/domain"
	sharedpg "github.com/itchan-dev/yatube/shared/storage/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An edit must complete with a single pooled connection: nothing may ask the pool
// for a second connection while the post row is locked.
func TestPostEdit_SingleConnectionPool(t *testing.T) {
	single, err := New(testCfg, sharedpg.ConnectionConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	})
	require.NoError(t, err)
	defer single.Cleanup()

	author := createTestUser(t)
	group := createTestGroup(t)
	post := createTestPost(t, author, nil, "original")
	posts := service.NewPost(single, utils.NewPostValidator(100))

	t.Run("with group", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := posts.Edit(ctx, &author, post.Id, domain.PostInput{Text: "edited", GroupId: &group.Id})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeApplied, res.Outcome)
		assert.Equal(t, "edited", res.Post.Text)
		require.NotNil(t, res.Post.Group)
		assert.Equal(t, group.Id, res.Post.Group.Id)
	})

	t.Run("unknown group", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		unknown := group.Id + 1_000_000

		res, err := posts.Edit(ctx, &author, post.Id, domain.PostInput{Text: "again", GroupId: &unknown})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeRejected, res.Outcome)
		assert.Contains(t, res.Errors, "group")

		stored, err := single.Post(ctx, post.Id)
		require.NoError(t, err)
		assert.Equal(t, "edited", stored.Text)
	})
}
