package service

import (
	"context"
	"errors"
	"testing"

	"github.com/itchan-dev/yatube/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockGroupStorage mocks the GroupStorage interface.
type MockGroupStorage struct {
	createGroupFunc func(ctx context.Context, data domain.GroupCreationData) (domain.Group, error)
	groupsFunc      func(ctx context.Context) ([]domain.Group, error)
}

func (m *MockGroupStorage) CreateGroup(ctx context.Context, data domain.GroupCreationData) (domain.Group, error) {
	if m.createGroupFunc != nil {
		return m.createGroupFunc(ctx, data)
	}
	return domain.Group{Id: 1, Slug: data.Slug, Title: data.Title, Description: data.Description}, nil
}

func (m *MockGroupStorage) Groups(ctx context.Context) ([]domain.Group, error) {
	if m.groupsFunc != nil {
		return m.groupsFunc(ctx)
	}
	return nil, nil
}

// MockGroupValidator mocks the GroupValidator interface.
type MockGroupValidator struct {
	slugFunc  func(slug domain.GroupSlug) error
	titleFunc func(title string) error
}

func (m *MockGroupValidator) Slug(slug domain.GroupSlug) error {
	if m.slugFunc != nil {
		return m.slugFunc(slug)
	}
	return nil
}

func (m *MockGroupValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func TestGroupCreate(t *testing.T) {
	testCases := []struct {
		name        string
		data        domain.GroupCreationData
		storageErr  error
		expectError bool
	}{
		{name: "Successful Creation", data: domain.GroupCreationData{Slug: "python", Title: "Python"}},
		{name: "Invalid Slug", data: domain.GroupCreationData{Slug: "", Title: "Python"}, expectError: true},
		{name: "Invalid Title", data: domain.GroupCreationData{Slug: "python", Title: ""}, expectError: true},
		{name: "Storage Error", data: domain.GroupCreationData{Slug: "python", Title: "Python"}, storageErr: errors.New("storage error"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storageCalled := false
			storage := &MockGroupStorage{
				createGroupFunc: func(ctx context.Context, data domain.GroupCreationData) (domain.Group, error) {
					storageCalled = true
					return domain.Group{Id: 1, Slug: data.Slug, Title: data.Title}, tc.storageErr
				},
			}
			validator := &MockGroupValidator{
				slugFunc: func(slug domain.GroupSlug) error {
					if slug == "" {
						return errors.New("invalid slug")
					}
					return nil
				},
				titleFunc: func(title string) error {
					if title == "" {
						return errors.New("invalid title")
					}
					return nil
				},
			}

			group, err := NewGroup(storage, validator).Create(context.Background(), tc.data)

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, storageCalled)
			assert.Equal(t, tc.data.Slug, group.Slug)
		})
	}
}

func TestGroupList(t *testing.T) {
	expected := []domain.Group{{Id: 2, Slug: "golang", Title: "Go"}, {Id: 1, Slug: "python", Title: "Python"}}
	storage := &MockGroupStorage{
		groupsFunc: func(ctx context.Context) ([]domain.Group, error) {
			return expected, nil
		},
	}

	groups, err := NewGroup(storage, &MockGroupValidator{}).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, groups)
}
