package service

import (
	"context"
	"net/http"

	"github.com/itchan-dev/yatube/shared/domain"
	"github.com/itchan-dev/yatube/shared/errors"
	"github.com/itchan-dev/yatube/shared/logger"
)

const (
	fieldText  = "text"
	fieldGroup = "group"

	invalidGroupMsg = "Select a valid choice. That choice is not one of the available choices."
)

// to mock service in tests
type PostService interface {
	Create(ctx context.Context, creator *domain.User, input domain.PostInput) (domain.MutationResult, error)
	EditForm(ctx context.Context, editor *domain.User, id domain.PostId) (domain.MutationResult, error)
	Edit(ctx context.Context, editor *domain.User, id domain.PostId, input domain.PostInput) (domain.MutationResult, error)
}

// EditDecision inspects the locked current post and returns what to write.
// Returning nil edit data with a nil error leaves the post untouched.
type EditDecision = func(current domain.Post) (*domain.PostEditData, error)

type PostStorage interface {
	Post(ctx context.Context, id domain.PostId) (domain.Post, error)
	CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error)
	// UpdatePost locks the post row, calls decide and applies its result in the same transaction.
	// Returns the post as it is after the call.
	UpdatePost(ctx context.Context, id domain.PostId, decide EditDecision) (domain.Post, error)
	GroupById(ctx context.Context, id domain.GroupId) (domain.Group, error)
}

type PostValidator interface {
	Text(text domain.PostText) (domain.PostText, error)
}

type Post struct {
	storage   PostStorage
	validator PostValidator
}

func NewPost(storage PostStorage, validator PostValidator) PostService {
	return &Post{storage: storage, validator: validator}
}

// Create writes a new post authored by creator. It is never Denied.
func (s *Post) Create(ctx context.Context, creator *domain.User, input domain.PostInput) (domain.MutationResult, error) {
	if creator == nil {
		return domain.MutationResult{}, errors.ErrUnauthenticated
	}

	text, errs, err := s.validate(ctx, input)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if len(errs) > 0 {
		return domain.Rejected(input, errs, false), nil
	}

	post, err := s.storage.CreatePost(ctx, domain.PostCreationData{Author: *creator, Text: text, GroupId: input.GroupId})
	if err != nil {
		if groupVanished(err, input) {
			return domain.Rejected(input, domain.ValidationErrors{fieldGroup: invalidGroupMsg}, false), nil
		}
		return domain.MutationResult{}, err
	}
	logger.Log.Info("post created", "post_id", post.Id, "author_id", creator.Id)
	return domain.Applied(post, false), nil
}

// EditForm returns the current post as Applied when editor may edit it, Denied otherwise.
// Nothing is written.
func (s *Post) EditForm(ctx context.Context, editor *domain.User, id domain.PostId) (domain.MutationResult, error) {
	if editor == nil {
		return domain.MutationResult{}, errors.ErrUnauthenticated
	}

	post, err := s.storage.Post(ctx, id)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if !editor.SameAs(post.Author) {
		return domain.Denied(post), nil
	}
	return domain.Applied(post, true), nil
}

// Edit changes text and group of an existing post.
// Input, group lookup included, is validated before storage locks the row: no other connection
// is requested while the lock is held. The ownership check runs under the lock and wins over the validation outcome.
func (s *Post) Edit(ctx context.Context, editor *domain.User, id domain.PostId, input domain.PostInput) (domain.MutationResult, error) {
	if editor == nil {
		return domain.MutationResult{}, errors.ErrUnauthenticated
	}

	text, errs, validateErr := s.validate(ctx, input)

	var result domain.MutationResult
	post, err := s.storage.UpdatePost(ctx, id, func(current domain.Post) (*domain.PostEditData, error) {
		if !editor.SameAs(current.Author) {
			result = domain.Denied(current)
			return nil, nil
		}
		if validateErr != nil {
			return nil, validateErr
		}
		if len(errs) > 0 {
			result = domain.Rejected(input, errs, true)
			return nil, nil
		}
		result.Outcome = domain.OutcomeApplied
		return &domain.PostEditData{Text: text, GroupId: input.GroupId}, nil
	})
	if err != nil {
		if result.Outcome == domain.OutcomeApplied && groupVanished(err, input) {
			return domain.Rejected(input, domain.ValidationErrors{fieldGroup: invalidGroupMsg}, true), nil
		}
		return domain.MutationResult{}, err
	}

	switch result.Outcome {
	case domain.OutcomeApplied:
		logger.Log.Info("post edited", "post_id", post.Id, "editor_id", editor.Id)
		return domain.Applied(post, true), nil
	case domain.OutcomeDenied:
		logger.Log.Warn("edit denied", "post_id", post.Id, "editor_id", editor.Id, "author_id", post.Author.Id)
	}
	return result, nil
}

// groupVanished reports a write refused because the chosen group was deleted after validation
func groupVanished(err error, input domain.PostInput) bool {
	return input.GroupId != nil && errors.StatusCode(err) == http.StatusBadRequest
}

// validate collects field errors. A non-nil error means validation itself failed.
func (s *Post) validate(ctx context.Context, input domain.PostInput) (domain.PostText, domain.ValidationErrors, error) {
	errs := domain.ValidationErrors{}

	text, err := s.validator.Text(input.Text)
	if err != nil {
		if errors.StatusCode(err) != http.StatusBadRequest {
			return "", nil, err
		}
		errs[fieldText] = err.Error()
	}

	if input.GroupId != nil {
		if _, err := s.storage.GroupById(ctx, *input.GroupId); err != nil {
			if !errors.IsNotFound(err) {
				return "", nil, err
			}
			errs[fieldGroup] = invalidGroupMsg
		}
	}
	return text, errs, nil
}
