package actions

import (
	"context"
	"strings"

	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/output"
	"repokit.dev/repokit/internal/runtime"
)

// ListReposOptions contains options for the repos list command
type ListReposOptions struct {
	Target  string
	Verbose bool
	Filters FilterOptions
	Auth    github.ClientOptions
}

// ListReposAction audits merge settings across the target's
// repositories, printing either a compact summary or the full table
func ListReposAction(ctx *runtime.Context, opts ListReposOptions) error {
	splog := ctx.Splog
	githubCtx := context.Background()

	if err := ctx.EnsureGitHubClient(githubCtx, opts.Auth); err != nil {
		return err
	}

	repos, err := ResolveTarget(githubCtx, ctx, opts.Target, opts.Filters)
	if err != nil {
		return err
	}

	result := scanWithProgress(githubCtx, ctx, repos)

	var lines []string
	if opts.Verbose {
		rows := make([]output.SettingsRow, 0, len(result.Repos))
		for _, rs := range result.Repos {
			rows = append(rows, output.SettingsRow{Name: rs.Repo.FullName(), Settings: rs.Settings})
		}
		lines = append(lines, output.Bold("Repository Merge Settings (Verbose)"))
		lines = append(lines, output.RenderSettingsTable(rows)...)
		lines = append(lines, RenderFetchFailures(result.Failures)...)
	} else {
		lines = RenderSummary(BuildReport(result))
	}

	splog.Newline()
	splog.Page(strings.Join(lines, "\n"))
	splog.Newline()

	return nil
}
