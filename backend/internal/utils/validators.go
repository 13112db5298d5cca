package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/yatube/shared/errors"
)

const (
	requiredFieldMsg = "This field is required."
	maxSlugLen       = 50
	maxTitleLen      = 200
)

// PostValidator enforces the form rules on post text.
// Text is kept raw, only whitespace-only text counts as empty.
type PostValidator struct {
	maxLen int
}

func NewPostValidator(maxLen int) *PostValidator {
	return &PostValidator{maxLen: maxLen}
}

// Text returns the text as it should be stored (surrounding whitespace stripped)
func (v *PostValidator) Text(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.BadRequest(requiredFieldMsg)
	}
	if n := utf8.RuneCountInString(text); n > v.maxLen {
		return "", errors.BadRequest(fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", v.maxLen, n))
	}
	return text, nil
}

var slugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type GroupValidator struct{}

func (GroupValidator) Slug(slug string) error {
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return errors.BadRequest("Slug is too long")
	}
	if !slugRegex.MatchString(slug) {
		return errors.BadRequest("Slug should contain only latin letters, numbers, underscores or hyphens")
	}
	return nil
}

func (GroupValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.BadRequest("Title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.BadRequest("Title is too long")
	}
	return nil
}
