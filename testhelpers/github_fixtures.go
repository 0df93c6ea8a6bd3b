package testhelpers

import (
	"github.com/google/go-github/v62/github"
)

// SampleRepoData provides common repository data for testing
type SampleRepoData struct {
	Owner         string
	Name          string
	Archived      bool
	Fork          bool
	SquashAllowed bool
	MergeAllowed  bool
	RebaseAllowed bool
	SquashTitle   string
	SquashMessage string
	MergeTitle    string
	MergeMessage  string
}

// NewSampleRepository creates a github.Repository from sample data
func NewSampleRepository(data SampleRepoData) *github.Repository {
	repo := &github.Repository{
		Owner:            &github.User{Login: github.String(data.Owner)},
		Name:             github.String(data.Name),
		FullName:         github.String(data.Owner + "/" + data.Name),
		Archived:         github.Bool(data.Archived),
		Fork:             github.Bool(data.Fork),
		AllowSquashMerge: github.Bool(data.SquashAllowed),
		AllowMergeCommit: github.Bool(data.MergeAllowed),
		AllowRebaseMerge: github.Bool(data.RebaseAllowed),
	}

	if data.SquashTitle != "" {
		repo.SquashMergeCommitTitle = github.String(data.SquashTitle)
	}
	if data.SquashMessage != "" {
		repo.SquashMergeCommitMessage = github.String(data.SquashMessage)
	}
	if data.MergeTitle != "" {
		repo.MergeCommitTitle = github.String(data.MergeTitle)
	}
	if data.MergeMessage != "" {
		repo.MergeCommitMessage = github.String(data.MergeMessage)
	}

	return repo
}

// StandardRepoData returns data for a repository already using squash
// merges with PR_TITLE and PR_BODY
func StandardRepoData(owner, name string) SampleRepoData {
	return SampleRepoData{
		Owner:         owner,
		Name:          name,
		SquashAllowed: true,
		SquashTitle:   "PR_TITLE",
		SquashMessage: "PR_BODY",
	}
}

// LegacyRepoData returns data for a repository with squash merges
// enabled but sourcing titles and messages from commits
func LegacyRepoData(owner, name string) SampleRepoData {
	return SampleRepoData{
		Owner:         owner,
		Name:          name,
		SquashAllowed: true,
		SquashTitle:   "COMMIT_OR_PR_TITLE",
		SquashMessage: "COMMIT_MESSAGES",
	}
}

// MergeOnlyRepoData returns data for a repository that only allows
// merge commits, using the default title and message sources
func MergeOnlyRepoData(owner, name string) SampleRepoData {
	return SampleRepoData{
		Owner:        owner,
		Name:         name,
		MergeAllowed: true,
		MergeTitle:   "MERGE_MESSAGE",
		MergeMessage: "PR_TITLE",
	}
}

// RebaseOnlyRepoData returns data for a repository that only allows
// rebase merges and reports no title or message sources
func RebaseOnlyRepoData(owner, name string) SampleRepoData {
	return SampleRepoData{
		Owner:         owner,
		Name:          name,
		RebaseAllowed: true,
	}
}

// ArchivedRepoData returns data for an archived repository
func ArchivedRepoData(owner, name string) SampleRepoData {
	data := LegacyRepoData(owner, name)
	data.Archived = true
	return data
}

// ForkRepoData returns data for a forked repository
func ForkRepoData(owner, name string) SampleRepoData {
	data := LegacyRepoData(owner, name)
	data.Fork = true
	return data
}
