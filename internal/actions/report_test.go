package actions_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"repokit.dev/repokit/internal/actions"
	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/settings"
)

func init() {
	// Disable color output for all tests in this package so assertions
	// see plain text
	lipgloss.SetColorProfile(termenv.Ascii)
}

func scanned(owner, name string, s settings.MergeSettings) actions.RepoSettings {
	return actions.RepoSettings{
		Repo:     github.Repo{Owner: owner, Name: name},
		Settings: s,
	}
}

func standardSquash() settings.MergeSettings {
	return settings.MergeSettings{
		SquashAllowed: true,
		SquashTitle:   settings.SquashTitlePRTitle,
		SquashMessage: settings.SquashMessagePRBody,
	}
}

func legacySquash() settings.MergeSettings {
	return settings.MergeSettings{
		SquashAllowed: true,
		SquashTitle:   settings.SquashTitleCommitOrPRTitle,
		SquashMessage: settings.SquashMessageCommitMessages,
	}
}

func defaultMergeCommit() settings.MergeSettings {
	return settings.MergeSettings{
		MergeAllowed: true,
		MergeTitle:   settings.MergeTitleMergeMessage,
		MergeMessage: settings.MergeMessagePRTitle,
	}
}

func TestBuildReport(t *testing.T) {
	t.Run("counts repositories per strategy", func(t *testing.T) {
		result := actions.ScanResult{Repos: []actions.RepoSettings{
			scanned("acme", "api", standardSquash()),
			scanned("acme", "web", legacySquash()),
			scanned("acme", "infra", defaultMergeCommit()),
			scanned("acme", "tools", settings.MergeSettings{RebaseAllowed: true}),
		}}

		report := actions.BuildReport(result)
		require.Equal(t, 4, report.Total)
		require.Equal(t, 2, report.SquashEnabled)
		require.Equal(t, 1, report.SquashStandard)
		require.Equal(t, 1, report.SquashNeedsUpdate)
		require.Equal(t, 1, report.MergeEnabled)
		require.Equal(t, 0, report.MergeStandard)
		require.Equal(t, 1, report.MergeNeedsUpdate)
	})

	t.Run("lists deviating fields as key=value issues", func(t *testing.T) {
		result := actions.ScanResult{Repos: []actions.RepoSettings{
			scanned("acme", "web", legacySquash()),
			scanned("acme", "infra", defaultMergeCommit()),
		}}

		report := actions.BuildReport(result)
		require.Len(t, report.NeedsAttention, 2)

		require.Equal(t, "acme/web", report.NeedsAttention[0].Repo)
		require.Equal(t, []string{
			"squash_title=COMMIT_OR_PR_TITLE",
			"squash_msg=COMMIT_MESSAGES",
		}, report.NeedsAttention[0].Issues)

		// merge_msg is already PR_TITLE, so only the title is reported
		require.Equal(t, "acme/infra", report.NeedsAttention[1].Repo)
		require.Equal(t, []string{"merge_title=MERGE_MESSAGE"}, report.NeedsAttention[1].Issues)
	})

	t.Run("ignores fields of disabled strategies", func(t *testing.T) {
		s := legacySquash()
		s.SquashAllowed = false
		s.MergeTitle = settings.MergeTitleMergeMessage

		report := actions.BuildReport(actions.ScanResult{Repos: []actions.RepoSettings{
			scanned("acme", "tools", s),
		}})
		require.Empty(t, report.NeedsAttention)
	})

	t.Run("carries scan failures through", func(t *testing.T) {
		failure := actions.FetchFailure{
			Repo: github.Repo{Owner: "acme", Name: "broken"},
			Err:  errors.New("boom"),
		}
		report := actions.BuildReport(actions.ScanResult{Failures: []actions.FetchFailure{failure}})
		require.Equal(t, 0, report.Total)
		require.Len(t, report.Failures, 1)
	})
}

func TestRenderSummary(t *testing.T) {
	t.Run("renders the audit counts", func(t *testing.T) {
		report := actions.BuildReport(actions.ScanResult{Repos: []actions.RepoSettings{
			scanned("acme", "api", standardSquash()),
			scanned("acme", "web", legacySquash()),
			scanned("acme", "infra", defaultMergeCommit()),
		}})

		lines := actions.RenderSummary(report)
		require.Equal(t, []string{
			"Summary:",
			"  Total repositories: 3",
			"  Squash merge enabled: 2",
			"    - Using PR_TITLE + PR_BODY: 1",
			"    - Need update: 1",
			"  Merge commit enabled: 1",
			"    - Using PR_TITLE + PR_TITLE: 0",
			"    - Need update: 1",
			"",
			"Repositories needing updates (2):",
			"  acme/web: squash_title=COMMIT_OR_PR_TITLE, squash_msg=COMMIT_MESSAGES",
			"  acme/infra: merge_title=MERGE_MESSAGE",
		}, lines)
	})

	t.Run("omits the need-update lines when everything matches", func(t *testing.T) {
		report := actions.BuildReport(actions.ScanResult{Repos: []actions.RepoSettings{
			scanned("acme", "api", standardSquash()),
		}})

		lines := actions.RenderSummary(report)
		require.Equal(t, []string{
			"Summary:",
			"  Total repositories: 1",
			"  Squash merge enabled: 1",
			"    - Using PR_TITLE + PR_BODY: 1",
			"  Merge commit enabled: 0",
			"    - Using PR_TITLE + PR_TITLE: 0",
		}, lines)
	})

	t.Run("caps the attention list", func(t *testing.T) {
		var repos []actions.RepoSettings
		for i := 0; i < 12; i++ {
			repos = append(repos, scanned("acme", fmt.Sprintf("repo-%02d", i), legacySquash()))
		}

		lines := actions.RenderSummary(actions.BuildReport(actions.ScanResult{Repos: repos}))
		require.Contains(t, lines, "Repositories needing updates (12):")
		require.Contains(t, lines, "  ... and 2 more")

		shown := 0
		for _, line := range lines {
			if strings.HasPrefix(line, "  acme/") {
				shown++
			}
		}
		require.Equal(t, 10, shown)
	})

	t.Run("appends fetch failures", func(t *testing.T) {
		report := actions.BuildReport(actions.ScanResult{
			Repos: []actions.RepoSettings{scanned("acme", "api", standardSquash())},
			Failures: []actions.FetchFailure{{
				Repo: github.Repo{Owner: "acme", Name: "broken"},
				Err:  repokiterrors.NewRepoFetchError("acme/broken", 500, errors.New("boom")),
			}},
		})

		lines := actions.RenderSummary(report)
		require.Contains(t, lines, "Failed to fetch 1 repositories:")
		require.Contains(t, lines, "  acme/broken: boom")
	})
}

func TestRenderFetchFailures(t *testing.T) {
	t.Run("renders nothing for a clean scan", func(t *testing.T) {
		require.Empty(t, actions.RenderFetchFailures(nil))
	})

	t.Run("lists each failure with its cause", func(t *testing.T) {
		failures := []actions.FetchFailure{
			{
				Repo: github.Repo{Owner: "acme", Name: "broken"},
				Err:  repokiterrors.NewRepoFetchError("acme/broken", 500, errors.New("boom")),
			},
			{
				Repo: github.Repo{Owner: "acme", Name: "flaky"},
				Err:  errors.New("connection reset"),
			},
		}

		lines := actions.RenderFetchFailures(failures)
		require.Equal(t, []string{
			"",
			"Failed to fetch 2 repositories:",
			"  acme/broken: boom",
			"  acme/flaky: connection reset",
		}, lines)
	})
}
