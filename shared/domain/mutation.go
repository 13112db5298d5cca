package domain

type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeDenied   Outcome = "denied"
	OutcomeRejected Outcome = "rejected"
)

type Reason string

const (
	ReasonNotAuthor        Reason = "not_author"
	ReasonValidationFailed Reason = "validation_failed"
)

// ValidationErrors maps a form field to its complaint.
type ValidationErrors map[string]string

// MutationResult is the outcome of a create or edit attempt.
// Denied and Rejected results never carry a modified post.
type MutationResult struct {
	Outcome Outcome
	Reason  Reason
	Post    Post
	IsEdit  bool
	Input   PostInput
	Errors  ValidationErrors
}

func Applied(post Post, isEdit bool) MutationResult {
	return MutationResult{Outcome: OutcomeApplied, Post: post, IsEdit: isEdit}
}

func Denied(post Post) MutationResult {
	return MutationResult{Outcome: OutcomeDenied, Reason: ReasonNotAuthor, Post: post, IsEdit: true}
}

func Rejected(input PostInput, errs ValidationErrors, isEdit bool) MutationResult {
	return MutationResult{Outcome: OutcomeRejected, Reason: ReasonValidationFailed, Input: input, Errors: errs, IsEdit: isEdit}
}
