package pg

import (
	"context"
	"net/http"
	"testing"

	"github.com/itchan-dev/yatube/shared/domain"
	internal_errors "github.com/itchan-dev/yatube/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup by slug and id", func(t *testing.T) {
		slug := uniqueName("group")
		created, err := storage.CreateGroup(ctx, domain.GroupCreationData{Slug: slug, Title: "Python", Description: "all about python"})
		require.NoError(t, err)
		assert.NotZero(t, created.Id)

		bySlug, err := storage.GroupBySlug(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, created, bySlug)

		byId, err := storage.GroupById(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, created, byId)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		group := createTestGroup(t)

		_, err := storage.CreateGroup(ctx, domain.GroupCreationData{Slug: group.Slug, Title: "Other"})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, internal_errors.StatusCode(err))
	})
}

func TestGroupNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := storage.GroupBySlug(ctx, uniqueName("missing"))
	assert.True(t, internal_errors.IsNotFound(err))

	_, err = storage.GroupById(ctx, -1)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestGroups_OrderedByTitle(t *testing.T) {
	ctx := context.Background()
	suffix := uniqueName("")
	_, err := storage.CreateGroup(ctx, domain.GroupCreationData{Slug: "b" + suffix, Title: "zzz " + suffix})
	require.NoError(t, err)
	_, err = storage.CreateGroup(ctx, domain.GroupCreationData{Slug: "a" + suffix, Title: "aaa " + suffix})
	require.NoError(t, err)

	groups, err := storage.Groups(ctx)
	require.NoError(t, err)

	posA, posB := -1, -1
	for i, g := range groups {
		switch g.Slug {
		case "a" + suffix:
			posA = i
		case "b" + suffix:
			posB = i
		}
	}
	require.NotEqual(t, -1, posA)
	require.NotEqual(t, -1, posB)
	assert.Less(t, posA, posB)
}
