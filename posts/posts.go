// Package posts is the resource layer behind the session core: posts owned by
// users, gated per request by the authz package.
package posts

import (
	"unicode/utf8"

	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
)

const (
	maxTitleLength = 100
	maxTextLength  = 4000
)

type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	AuthorID int64  `json:"author_id"`
}

// View is a post as returned to a specific requester.
type View struct {
	Post
	CanEdit bool `json:"can_edit"`
}

// Input is the editable part of a post.
type Input struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (in Input) Validate() error {
	if n := utf8.RuneCountInString(in.Title); n == 0 || n > maxTitleLength {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "title must be 1 to %d characters", maxTitleLength)
	}
	if n := utf8.RuneCountInString(in.Text); n == 0 || n > maxTextLength {
		return apperrors.Wrapf(apperrors.ErrInvalidRequest, "text must be 1 to %d characters", maxTextLength)
	}
	return nil
}
