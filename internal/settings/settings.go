// Package settings models GitHub merge strategy settings and computes
// the changes needed to move a repository to a desired configuration.
package settings

import "fmt"

// SquashTitle is the source of the commit title for squash merges
type SquashTitle string

const (
	SquashTitlePRTitle         SquashTitle = "PR_TITLE"
	SquashTitleCommitOrPRTitle SquashTitle = "COMMIT_OR_PR_TITLE"
)

// ParseSquashTitle validates a squash title value from user input
func ParseSquashTitle(value string) (SquashTitle, error) {
	switch SquashTitle(value) {
	case SquashTitlePRTitle, SquashTitleCommitOrPRTitle:
		return SquashTitle(value), nil
	}
	return "", fmt.Errorf("invalid squash title %q (allowed: PR_TITLE, COMMIT_OR_PR_TITLE)", value)
}

// SquashMessage is the source of the commit message for squash merges
type SquashMessage string

const (
	SquashMessagePRBody         SquashMessage = "PR_BODY"
	SquashMessageCommitMessages SquashMessage = "COMMIT_MESSAGES"
	SquashMessageBlank          SquashMessage = "BLANK"
)

// ParseSquashMessage validates a squash message value from user input
func ParseSquashMessage(value string) (SquashMessage, error) {
	switch SquashMessage(value) {
	case SquashMessagePRBody, SquashMessageCommitMessages, SquashMessageBlank:
		return SquashMessage(value), nil
	}
	return "", fmt.Errorf("invalid squash message %q (allowed: PR_BODY, COMMIT_MESSAGES, BLANK)", value)
}

// MergeTitle is the source of the commit title for merge commits
type MergeTitle string

const (
	MergeTitlePRTitle      MergeTitle = "PR_TITLE"
	MergeTitleMergeMessage MergeTitle = "MERGE_MESSAGE"
)

// ParseMergeTitle validates a merge title value from user input
func ParseMergeTitle(value string) (MergeTitle, error) {
	switch MergeTitle(value) {
	case MergeTitlePRTitle, MergeTitleMergeMessage:
		return MergeTitle(value), nil
	}
	return "", fmt.Errorf("invalid merge title %q (allowed: PR_TITLE, MERGE_MESSAGE)", value)
}

// MergeMessage is the source of the commit message for merge commits
type MergeMessage string

const (
	MergeMessagePRTitle MergeMessage = "PR_TITLE"
	MergeMessagePRBody  MergeMessage = "PR_BODY"
	MergeMessageBlank   MergeMessage = "BLANK"
)

// ParseMergeMessage validates a merge message value from user input
func ParseMergeMessage(value string) (MergeMessage, error) {
	switch MergeMessage(value) {
	case MergeMessagePRTitle, MergeMessagePRBody, MergeMessageBlank:
		return MergeMessage(value), nil
	}
	return "", fmt.Errorf("invalid merge message %q (allowed: PR_TITLE, PR_BODY, BLANK)", value)
}

// MergeSettings holds the merge strategy configuration of a repository
// as reported by the GitHub API. The title and message fields are empty
// when the API does not report them.
type MergeSettings struct {
	SquashAllowed bool
	MergeAllowed  bool
	RebaseAllowed bool
	SquashTitle   SquashTitle
	SquashMessage SquashMessage
	MergeTitle    MergeTitle
	MergeMessage  MergeMessage
}

// HasStandardSquash returns true when squash merging is enabled and
// configured to source commits from the PR title and body
func (s MergeSettings) HasStandardSquash() bool {
	return s.SquashAllowed &&
		s.SquashTitle == SquashTitlePRTitle &&
		s.SquashMessage == SquashMessagePRBody
}

// HasStandardMerge returns true when merge commits are enabled and
// configured to source both title and message from the PR title
func (s MergeSettings) HasStandardMerge() bool {
	return s.MergeAllowed &&
		s.MergeTitle == MergeTitlePRTitle &&
		s.MergeMessage == MergeMessagePRTitle
}

// NeedsSquashFix returns true when squash merging is enabled but not
// configured to the PR_TITLE + PR_BODY standard
func (s MergeSettings) NeedsSquashFix() bool {
	return s.SquashAllowed && !s.HasStandardSquash()
}

// DesiredSettings is a partial merge configuration. Nil fields are left
// untouched when applied to a repository.
type DesiredSettings struct {
	SquashTitle   *SquashTitle
	SquashMessage *SquashMessage
	MergeTitle    *MergeTitle
	MergeMessage  *MergeMessage
}

// Empty returns true when no setting is specified
func (d DesiredSettings) Empty() bool {
	return d.SquashTitle == nil &&
		d.SquashMessage == nil &&
		d.MergeTitle == nil &&
		d.MergeMessage == nil
}

// AppliesTo returns true when at least one desired field targets a
// merge strategy the repository has enabled. A repository where every
// targeted strategy is disabled cannot be updated meaningfully.
func (d DesiredSettings) AppliesTo(s MergeSettings) bool {
	if s.SquashAllowed && (d.SquashTitle != nil || d.SquashMessage != nil) {
		return true
	}
	if s.MergeAllowed && (d.MergeTitle != nil || d.MergeMessage != nil) {
		return true
	}
	return false
}

// StandardSquash returns the desired configuration used by fix-squash:
// squash commit titles from the PR title and messages from the PR body
func StandardSquash() DesiredSettings {
	title := SquashTitlePRTitle
	message := SquashMessagePRBody
	return DesiredSettings{
		SquashTitle:   &title,
		SquashMessage: &message,
	}
}
