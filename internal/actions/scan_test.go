package actions_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"repokit.dev/repokit/internal/actions"
	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/settings"
	"repokit.dev/repokit/testhelpers"
)

// recordingReporter captures progress callbacks in arrival order
type recordingReporter struct {
	events []string
}

func (r *recordingReporter) RepoStarted(index, total int, repo string) {
	r.events = append(r.events, fmt.Sprintf("started %d/%d %s", index, total, repo))
}

func (r *recordingReporter) RepoFailed(index, total int, repo string) {
	r.events = append(r.events, fmt.Sprintf("failed %d/%d %s", index, total, repo))
}

func TestScanSettings(t *testing.T) {
	githubCtx := context.Background()

	t.Run("fetches settings for each repository in order", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")))
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "web")))
		ctx := newTestContext(t, config)

		repos := []github.Repo{
			{Owner: "acme", Name: "api"},
			{Owner: "acme", Name: "web"},
		}

		result := actions.ScanSettings(githubCtx, ctx.GitHub, repos, nil)
		require.Len(t, result.Repos, 2)
		require.Empty(t, result.Failures)

		require.Equal(t, "acme/api", result.Repos[0].Repo.FullName())
		require.True(t, result.Repos[0].Settings.HasStandardSquash())

		require.Equal(t, "acme/web", result.Repos[1].Repo.FullName())
		require.Equal(t, settings.SquashTitleCommitOrPRTitle, result.Repos[1].Settings.SquashTitle)
		require.Equal(t, settings.SquashMessageCommitMessages, result.Repos[1].Settings.SquashMessage)
	})

	t.Run("records a failure and continues with the rest", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")))
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "web")))
		config.ErrorStatus["GET /repos/acme/broken"] = http.StatusInternalServerError
		ctx := newTestContext(t, config)

		repos := []github.Repo{
			{Owner: "acme", Name: "api"},
			{Owner: "acme", Name: "broken"},
			{Owner: "acme", Name: "web"},
		}

		result := actions.ScanSettings(githubCtx, ctx.GitHub, repos, nil)
		require.Len(t, result.Repos, 2)
		require.Equal(t, "acme/api", result.Repos[0].Repo.FullName())
		require.Equal(t, "acme/web", result.Repos[1].Repo.FullName())

		require.Len(t, result.Failures, 1)
		failure := result.Failures[0]
		require.Equal(t, "acme/broken", failure.Repo.FullName())

		var fetchErr *repokiterrors.RepoFetchError
		require.ErrorAs(t, failure.Err, &fetchErr)
		require.Equal(t, "acme/broken", fetchErr.Repo)
		require.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	})

	t.Run("treats a missing repository as a failure, not an abort", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")))
		ctx := newTestContext(t, config)

		repos := []github.Repo{
			{Owner: "acme", Name: "gone"},
			{Owner: "acme", Name: "api"},
		}

		result := actions.ScanSettings(githubCtx, ctx.GitHub, repos, nil)
		require.Len(t, result.Repos, 1)
		require.Len(t, result.Failures, 1)

		var fetchErr *repokiterrors.RepoFetchError
		require.ErrorAs(t, result.Failures[0].Err, &fetchErr)
		require.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	})

	t.Run("reports progress for every repository", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")))
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "web")))
		ctx := newTestContext(t, config)

		repos := []github.Repo{
			{Owner: "acme", Name: "api"},
			{Owner: "acme", Name: "broken"},
			{Owner: "acme", Name: "web"},
		}

		reporter := &recordingReporter{}
		actions.ScanSettings(githubCtx, ctx.GitHub, repos, reporter)

		require.Equal(t, []string{
			"started 1/3 acme/api",
			"started 2/3 acme/broken",
			"failed 2/3 acme/broken",
			"started 3/3 acme/web",
		}, reporter.events)
	})

	t.Run("handles an empty repository list", func(t *testing.T) {
		ctx := newTestContext(t, testhelpers.NewMockGitHubServerConfig())

		result := actions.ScanSettings(githubCtx, ctx.GitHub, nil, nil)
		require.Empty(t, result.Repos)
		require.Empty(t, result.Failures)
	})
}
