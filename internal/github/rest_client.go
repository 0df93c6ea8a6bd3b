package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"

	"repokit.dev/repokit/internal/settings"
)

// listPageSize is the page size used when listing repositories
const listPageSize = 100

// RESTClient implements Client using the GitHub REST API
type RESTClient struct {
	client *github.Client
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient wraps an existing go-github client
func NewRESTClient(client *github.Client) *RESTClient {
	return &RESTClient{client: client}
}

// BaseURL returns the REST endpoint the client talks to
func (c *RESTClient) BaseURL() string {
	return c.client.BaseURL.String()
}

// GetOrg looks up an organization account by login
func (c *RESTClient) GetOrg(ctx context.Context, login string) (*Owner, error) {
	org, _, err := c.client.Organizations.Get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization %s: %w", login, err)
	}
	return &Owner{Login: org.GetLogin(), Kind: OwnerKindOrganization}, nil
}

// GetUser looks up a user account by login
func (c *RESTClient) GetUser(ctx context.Context, login string) (*Owner, error) {
	user, _, err := c.client.Users.Get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", login, err)
	}
	return &Owner{Login: user.GetLogin(), Kind: OwnerKindUser}, nil
}

// ListOrgRepos lists every repository of an organization
func (c *RESTClient) ListOrgRepos(ctx context.Context, org string) ([]Repo, error) {
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	var repos []Repo
	for {
		page, resp, err := c.client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for organization %s: %w", org, err)
		}
		for _, repo := range page {
			repos = append(repos, repoFromAPI(repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}

// ListUserRepos lists every repository of a user
func (c *RESTClient) ListUserRepos(ctx context.Context, user string) ([]Repo, error) {
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	var repos []Repo
	for {
		page, resp, err := c.client.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for user %s: %w", user, err)
		}
		for _, repo := range page {
			repos = append(repos, repoFromAPI(repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}

// GetRepo fetches a single repository by owner and name
func (c *RESTClient) GetRepo(ctx context.Context, owner, name string) (*Repo, error) {
	repo, _, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}
	result := repoFromAPI(repo)
	if result.Owner == "" {
		result.Owner = owner
	}
	return &result, nil
}

// GetMergeSettings fetches the merge strategy settings of a repository
func (c *RESTClient) GetMergeSettings(ctx context.Context, owner, name string) (settings.MergeSettings, error) {
	repo, _, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return settings.MergeSettings{}, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}
	return mergeSettingsFromAPI(repo), nil
}

// UpdateMergeSettings applies the given field changes to a repository
// in a single PATCH request
func (c *RESTClient) UpdateMergeSettings(ctx context.Context, owner, name string, changes settings.ChangeSet) error {
	if changes.Empty() {
		return nil
	}

	edit := &github.Repository{}
	for _, change := range changes.Changes {
		switch change.Field {
		case settings.FieldSquashTitle:
			edit.SquashMergeCommitTitle = github.String(change.Desired)
		case settings.FieldSquashMessage:
			edit.SquashMergeCommitMessage = github.String(change.Desired)
		case settings.FieldMergeTitle:
			edit.MergeCommitTitle = github.String(change.Desired)
		case settings.FieldMergeMessage:
			edit.MergeCommitMessage = github.String(change.Desired)
		}
	}

	_, _, err := c.client.Repositories.Edit(ctx, owner, name, edit)
	if err != nil {
		return fmt.Errorf("failed to update repository %s/%s: %w", owner, name, err)
	}
	return nil
}

// AuthenticatedUser returns the login of the token's user
func (c *RESTClient) AuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

func repoFromAPI(repo *github.Repository) Repo {
	return Repo{
		Owner:    repo.GetOwner().GetLogin(),
		Name:     repo.GetName(),
		Archived: repo.GetArchived(),
		Fork:     repo.GetFork(),
	}
}

func mergeSettingsFromAPI(repo *github.Repository) settings.MergeSettings {
	return settings.MergeSettings{
		SquashAllowed: repo.GetAllowSquashMerge(),
		MergeAllowed:  repo.GetAllowMergeCommit(),
		RebaseAllowed: repo.GetAllowRebaseMerge(),
		SquashTitle:   settings.SquashTitle(repo.GetSquashMergeCommitTitle()),
		SquashMessage: settings.SquashMessage(repo.GetSquashMergeCommitMessage()),
		MergeTitle:    settings.MergeTitle(repo.GetMergeCommitTitle()),
		MergeMessage:  settings.MergeMessage(repo.GetMergeCommitMessage()),
	}
}

// StatusCode extracts the HTTP status from a GitHub API error, or 0
// when the error did not come from an API response
func StatusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a GitHub API 404 response
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
