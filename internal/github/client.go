// Package github provides a client for interacting with the GitHub API.
package github

import (
	"context"

	"repokit.dev/repokit/internal/settings"
)

// OwnerKind distinguishes organization accounts from user accounts
type OwnerKind string

const (
	OwnerKindOrganization OwnerKind = "Organization"
	OwnerKindUser         OwnerKind = "User"
)

// Owner is the account that repositories are listed from
type Owner struct {
	Login string
	Kind  OwnerKind
}

// Repo identifies a repository along with the listing metadata used for
// filtering. This is a simplified struct to avoid coupling to the
// go-github library.
type Repo struct {
	Owner    string
	Name     string
	Archived bool
	Fork     bool
}

// FullName returns the repository in owner/name form
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

// Client is an interface for GitHub API interactions
type Client interface {
	// GetOrg looks up an organization account by login
	GetOrg(ctx context.Context, login string) (*Owner, error)

	// GetUser looks up a user account by login
	GetUser(ctx context.Context, login string) (*Owner, error)

	// ListOrgRepos lists every repository of an organization, following
	// pagination to the end
	ListOrgRepos(ctx context.Context, org string) ([]Repo, error)

	// ListUserRepos lists every repository of a user, following
	// pagination to the end
	ListUserRepos(ctx context.Context, user string) ([]Repo, error)

	// GetRepo fetches a single repository by owner and name
	GetRepo(ctx context.Context, owner, name string) (*Repo, error)

	// GetMergeSettings fetches the merge strategy settings of a repository
	GetMergeSettings(ctx context.Context, owner, name string) (settings.MergeSettings, error)

	// UpdateMergeSettings applies the given field changes to a repository
	UpdateMergeSettings(ctx context.Context, owner, name string, changes settings.ChangeSet) error

	// AuthenticatedUser returns the login of the token's user
	AuthenticatedUser(ctx context.Context) (string, error)
}
