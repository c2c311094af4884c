package command

import (
	"fmt"
	"strings"
)

// Draft is the staged set of book fields edited in the create/edit form. It
// exists only while the editor is open and is discarded on save or cancel.
type Draft struct {
	Title       string
	Author      string
	CoverImage  string
	Description string
	Rating      int
}

// ValidationError reports a draft field that failed local validation. It is
// raised before any network call and never touches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

const (
	minRating = 0
	maxRating = 5
)

// validateDraft checks the fields the form requires. Title and author must be
// non-empty after trimming; everything else is optional.
func validateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(draft.Author) == "" {
		return &ValidationError{Field: "author", Reason: "is required"}
	}
	return nil
}

// normalizeDraft trims text fields, clamps the rating into [0,5], and falls
// back to the placeholder cover when the URL is blank. Out-of-range ratings
// are clamped rather than rejected.
func normalizeDraft(draft Draft, placeholderCover string) Draft {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Author = strings.TrimSpace(draft.Author)
	draft.CoverImage = strings.TrimSpace(draft.CoverImage)
	draft.Description = strings.TrimSpace(draft.Description)

	if draft.CoverImage == "" {
		draft.CoverImage = placeholderCover
	}
	if draft.Rating < minRating {
		draft.Rating = minRating
	}
	if draft.Rating > maxRating {
		draft.Rating = maxRating
	}
	return draft
}
