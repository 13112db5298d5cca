package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/itchan-dev/yatube/shared/domain"
)

// to mock service in tests
type ListingService interface {
	Index(ctx context.Context, page int) (PostList, error)
	Group(ctx context.Context, slug domain.GroupSlug, page int) (GroupPostList, error)
	Profile(ctx context.Context, username domain.Username, page int) (ProfilePostList, error)
	Detail(ctx context.Context, id domain.PostId) (PostDetail, error)
}

type ListingStorage interface {
	// Posts returns every post matching filter, in no particular order
	Posts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	Post(ctx context.Context, id domain.PostId) (domain.Post, error)
	CountPostsByAuthor(ctx context.Context, authorId domain.UserId) (int, error)
	GroupBySlug(ctx context.Context, slug domain.GroupSlug) (domain.Group, error)
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}

type PostList struct {
	Page domain.Page
}

type GroupPostList struct {
	Group domain.Group
	Page  domain.Page
}

type ProfilePostList struct {
	Author    domain.User
	PostCount int
	Page      domain.Page
}

type PostDetail struct {
	Post            domain.Post
	AuthorPostCount int
}

type Listing struct {
	storage ListingStorage
}

func NewListing(storage ListingStorage) ListingService {
	return &Listing{storage: storage}
}

func (l *Listing) Index(ctx context.Context, page int) (PostList, error) {
	filter := domain.PostFilter{}
	posts, err := l.storage.Posts(ctx, filter)
	if err != nil {
		return PostList{}, err
	}
	return PostList{Page: Paginate(posts, filter, page)}, nil
}

func (l *Listing) Group(ctx context.Context, slug domain.GroupSlug, page int) (GroupPostList, error) {
	group, err := l.storage.GroupBySlug(ctx, slug)
	if err != nil {
		return GroupPostList{}, err
	}
	filter := domain.PostFilter{GroupSlug: group.Slug}
	posts, err := l.storage.Posts(ctx, filter)
	if err != nil {
		return GroupPostList{}, err
	}
	return GroupPostList{Group: group, Page: Paginate(posts, filter, page)}, nil
}

func (l *Listing) Profile(ctx context.Context, username domain.Username, page int) (ProfilePostList, error) {
	author, err := l.storage.UserByUsername(ctx, username)
	if err != nil {
		return ProfilePostList{}, err
	}
	filter := domain.PostFilter{AuthorUsername: author.Username}
	posts, err := l.storage.Posts(ctx, filter)
	if err != nil {
		return ProfilePostList{}, err
	}
	p := Paginate(posts, filter, page)
	return ProfilePostList{Author: author, PostCount: p.Count, Page: p}, nil
}

func (l *Listing) Detail(ctx context.Context, id domain.PostId) (PostDetail, error) {
	post, err := l.storage.Post(ctx, id)
	if err != nil {
		return PostDetail{}, err
	}
	count, err := l.storage.CountPostsByAuthor(ctx, post.Author.Id)
	if err != nil {
		return PostDetail{}, err
	}
	return PostDetail{Post: post, AuthorPostCount: count}, nil
}

// Paginate filters, orders and slices posts into the requested page.
// Posts are ordered newest first, ties broken by id (higher first), unless filter.Ascending is set.
// requestedPage is clamped into [1, NumPages]; an empty listing has a single empty page.
// The input slice is not modified.
func Paginate(posts []domain.Post, filter domain.PostFilter, requestedPage int) domain.Page {
	matched := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if filter.Match(p) {
			matched = append(matched, p)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.Post) int {
		c := b.CreatedAt.Compare(a.CreatedAt)
		if c == 0 {
			c = cmp.Compare(b.Id, a.Id)
		}
		if filter.Ascending {
			return -c
		}
		return c
	})

	count := len(matched)
	numPages := max(1, (count+domain.PageSize-1)/domain.PageSize)
	number := min(max(requestedPage, 1), numPages)

	start := (number - 1) * domain.PageSize
	end := min(start+domain.PageSize, count)

	return domain.Page{
		Posts:       matched[start:end],
		Number:      number,
		NumPages:    numPages,
		Count:       count,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
}
