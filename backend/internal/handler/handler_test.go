package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/yatube/backend/internal/service"
	"github.com/itchan-dev/yatube/shared/config"
	"github.com/itchan-dev/yatube/shared/domain"
	mw "github.com/itchan-dev/yatube/shared/middleware"
)

// --- Mocks ---

type MockListingService struct {
	MockIndex   func(ctx context.Context, page int) (service.PostList, error)
	MockGroup   func(ctx context.Context, slug domain.GroupSlug, page int) (service.GroupPostList, error)
	MockProfile func(ctx context.Context, username domain.Username, page int) (service.ProfilePostList, error)
	MockDetail  func(ctx context.Context, id domain.PostId) (service.PostDetail, error)
}

func (m *MockListingService) Index(ctx context.Context, page int) (service.PostList, error) {
	if m.MockIndex != nil {
		return m.MockIndex(ctx, page)
	}
	return service.PostList{}, nil
}

func (m *MockListingService) Group(ctx context.Context, slug domain.GroupSlug, page int) (service.GroupPostList, error) {
	if m.MockGroup != nil {
		return m.MockGroup(ctx, slug, page)
	}
	return service.GroupPostList{}, nil
}

func (m *MockListingService) Profile(ctx context.Context, username domain.Username, page int) (service.ProfilePostList, error) {
	if m.MockProfile != nil {
		return m.MockProfile(ctx, username, page)
	}
	return service.ProfilePostList{}, nil
}

func (m *MockListingService) Detail(ctx context.Context, id domain.PostId) (service.PostDetail, error) {
	if m.MockDetail != nil {
		return m.MockDetail(ctx, id)
	}
	return service.PostDetail{}, nil
}

type MockPostService struct {
	MockCreate   func(ctx context.Context, creator *domain.User, input domain.PostInput) (domain.MutationResult, error)
	MockEditForm func(ctx context.Context, editor *domain.User, id domain.PostId) (domain.MutationResult, error)
	MockEdit     func(ctx context.Context, editor *domain.User, id domain.PostId, input domain.PostInput) (domain.MutationResult, error)
}

func (m *MockPostService) Create(ctx context.Context, creator *domain.User, input domain.PostInput) (domain.MutationResult, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, creator, input)
	}
	return domain.MutationResult{}, nil
}

func (m *MockPostService) EditForm(ctx context.Context, editor *domain.User, id domain.PostId) (domain.MutationResult, error) {
	if m.MockEditForm != nil {
		return m.MockEditForm(ctx, editor, id)
	}
	return domain.MutationResult{}, nil
}

func (m *MockPostService) Edit(ctx context.Context, editor *domain.User, id domain.PostId, input domain.PostInput) (domain.MutationResult, error) {
	if m.MockEdit != nil {
		return m.MockEdit(ctx, editor, id, input)
	}
	return domain.MutationResult{}, nil
}

type MockGroupService struct {
	MockCreate func(ctx context.Context, data domain.GroupCreationData) (domain.Group, error)
	MockList   func(ctx context.Context) ([]domain.Group, error)
}

func (m *MockGroupService) Create(ctx context.Context, data domain.GroupCreationData) (domain.Group, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Group{}, nil
}

func (m *MockGroupService) List(ctx context.Context) ([]domain.Group, error) {
	if m.MockList != nil {
		return m.MockList(ctx)
	}
	return nil, nil
}

type MockAuthService struct {
	MockRegister func(ctx context.Context, creds domain.Credentials, admin bool) (domain.UserId, error)
	MockLogin    func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, creds domain.Credentials, admin bool) (domain.UserId, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, creds, admin)
	}
	return 1, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return "token", nil
}

type MockHealthChecker struct {
	MockPing func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// --- Helpers ---

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{JwtTTL: time.Hour, MaxPostLength: 100}}
}

// withUser puts user into the request context the same way the auth middleware does
func withUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
}
