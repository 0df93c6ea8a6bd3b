package actions

import (
	"context"
	"fmt"
	"strings"

	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/git"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/output"
	"repokit.dev/repokit/internal/runtime"
)

// ResolveTarget turns a target string into the list of repositories to
// operate on. A target containing a slash names a single repository and
// bypasses enumeration, "." resolves the repository from the origin
// remote of the current directory, and anything else is probed as an
// organization first and a user second.
func ResolveTarget(githubCtx context.Context, ctx *runtime.Context, target string, opts FilterOptions) ([]github.Repo, error) {
	splog := ctx.Splog

	if target == "." {
		info, err := git.CurrentRepo(".")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve a repository from the current directory: %w", err)
		}
		target = info.Owner + "/" + info.Name
		splog.Info(output.ColorDim(fmt.Sprintf("Using repository %s from the origin remote", target)))
	}

	if strings.Contains(target, "/") {
		return resolveSingleRepo(githubCtx, ctx, target)
	}

	repos, err := listOwnerRepos(githubCtx, ctx, target)
	if err != nil {
		return nil, err
	}
	splog.Info(output.ColorDim(fmt.Sprintf("Found %d total repositories", len(repos))))

	return filterRepos(ctx, repos, opts), nil
}

// resolveSingleRepo fetches one explicitly named repository. Filters do
// not apply; naming a repository directly overrides them.
func resolveSingleRepo(githubCtx context.Context, ctx *runtime.Context, target string) ([]github.Repo, error) {
	ctx.Splog.Info(output.ColorDim(fmt.Sprintf("Fetching single repository %s...", target)))

	owner, name, _ := strings.Cut(target, "/")
	if owner == "" || name == "" {
		return nil, repokiterrors.NewTargetNotFoundError(target)
	}

	repo, err := ctx.GitHub.GetRepo(githubCtx, owner, name)
	if err != nil {
		if github.IsNotFound(err) {
			return nil, repokiterrors.NewTargetNotFoundError(target)
		}
		return nil, err
	}

	return []github.Repo{*repo}, nil
}

func listOwnerRepos(githubCtx context.Context, ctx *runtime.Context, target string) ([]github.Repo, error) {
	splog := ctx.Splog
	client := ctx.GitHub

	// Try organization first
	if _, err := client.GetOrg(githubCtx, target); err == nil {
		splog.Info(output.ColorDim(fmt.Sprintf("Fetching repositories from organization %s...", target)))
		return client.ListOrgRepos(githubCtx, target)
	}

	// Fallback to user
	if _, err := client.GetUser(githubCtx, target); err != nil {
		if github.IsNotFound(err) {
			return nil, repokiterrors.NewTargetNotFoundError(target)
		}
		return nil, err
	}

	splog.Info(output.ColorDim(fmt.Sprintf("Fetching repositories from user %s...", target)))
	return client.ListUserRepos(githubCtx, target)
}

// filterRepos drops archived repositories, forks and exclude-listed
// names, preserving the API listing order of what remains
func filterRepos(ctx *runtime.Context, repos []github.Repo, opts FilterOptions) []github.Repo {
	splog := ctx.Splog

	filtered := make([]github.Repo, 0, len(repos))
	skippedArchived := 0
	skippedForks := 0
	skippedExcluded := 0

	for _, repo := range repos {
		if !opts.IncludeArchived && repo.Archived {
			skippedArchived++
			continue
		}
		if !opts.IncludeForks && repo.Fork {
			skippedForks++
			continue
		}
		if ctx.Config.IsExcluded(repo.FullName()) {
			skippedExcluded++
			continue
		}
		filtered = append(filtered, repo)
	}

	if skippedArchived > 0 {
		splog.Info(output.ColorDim(fmt.Sprintf("Skipping %d archived repositories", skippedArchived)))
	}
	if skippedForks > 0 {
		splog.Info(output.ColorDim(fmt.Sprintf("Skipping %d forked repositories", skippedForks)))
	}
	if skippedExcluded > 0 {
		splog.Info(output.ColorDim(fmt.Sprintf("Skipping %d excluded repositories", skippedExcluded)))
	}

	return filtered
}
