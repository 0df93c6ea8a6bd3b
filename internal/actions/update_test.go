package actions_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"repokit.dev/repokit/internal/actions"
	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/settings"
	"repokit.dev/repokit/testhelpers"
)

func TestPlanUpdates(t *testing.T) {
	t.Run("skips repositories with no applicable merge method", func(t *testing.T) {
		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "tools", settings.MergeSettings{RebaseAllowed: true}),
		}, settings.StandardSquash())

		require.Len(t, result.Outcomes, 1)
		require.Equal(t, actions.UpdateStatusSkipped, result.Outcomes[0].Status)
		require.Equal(t, 0, result.Processed())
	})

	t.Run("marks matching repositories unchanged", func(t *testing.T) {
		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "api", standardSquash()),
		}, settings.StandardSquash())

		require.Equal(t, actions.UpdateStatusUnchanged, result.Outcomes[0].Status)
		require.True(t, result.Outcomes[0].Changes.Empty())
		require.Equal(t, 1, result.Succeeded())
		require.Equal(t, 0, result.Pending())
	})

	t.Run("plans the differing fields", func(t *testing.T) {
		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "web", legacySquash()),
		}, settings.StandardSquash())

		outcome := result.Outcomes[0]
		require.Equal(t, actions.UpdateStatusPlanned, outcome.Status)
		require.Equal(t, 2, outcome.Changes.Len())
		require.Equal(t, settings.FieldChange{
			Field:   "squash_merge_commit_title",
			Current: "COMMIT_OR_PR_TITLE",
			Desired: "PR_TITLE",
		}, outcome.Changes.Changes[0])
		require.Equal(t, settings.FieldChange{
			Field:   "squash_merge_commit_message",
			Current: "COMMIT_MESSAGES",
			Desired: "PR_BODY",
		}, outcome.Changes.Changes[1])
		require.Equal(t, 1, result.Pending())
	})

	t.Run("suppresses fields of disabled strategies", func(t *testing.T) {
		squashTitle := settings.SquashTitlePRTitle
		mergeTitle := settings.MergeTitlePRTitle
		desired := settings.DesiredSettings{
			SquashTitle: &squashTitle,
			MergeTitle:  &mergeTitle,
		}

		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "infra", defaultMergeCommit()),
		}, desired)

		outcome := result.Outcomes[0]
		require.Equal(t, actions.UpdateStatusPlanned, outcome.Status)
		require.Equal(t, 1, outcome.Changes.Len())
		require.Equal(t, "merge_commit_title", outcome.Changes.Changes[0].Field)
	})
}

func TestUpdateResultCounts(t *testing.T) {
	result := actions.UpdateResult{Outcomes: []actions.RepoUpdateOutcome{
		{Status: actions.UpdateStatusSkipped},
		{Status: actions.UpdateStatusUnchanged},
		{Status: actions.UpdateStatusPlanned},
		{Status: actions.UpdateStatusUpdated},
		{Status: actions.UpdateStatusFailed},
	}}

	require.Equal(t, 4, result.Processed())
	require.Equal(t, 3, result.Succeeded())
	require.Equal(t, 1, result.Failed())
	require.Equal(t, 1, result.Pending())
}

func TestApplyUpdates(t *testing.T) {
	githubCtx := context.Background()

	t.Run("patches planned repositories", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "web")))
		ctx := newTestContext(t, config)

		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "web", legacySquash()),
		}, settings.StandardSquash())

		actions.ApplyUpdates(githubCtx, ctx, &result)

		require.Equal(t, actions.UpdateStatusUpdated, result.Outcomes[0].Status)
		require.Equal(t, []string{"acme/web"}, config.PatchCalls)

		patched := config.PatchedRepos["acme/web"]
		require.NotNil(t, patched)
		require.Equal(t, "PR_TITLE", patched.GetSquashMergeCommitTitle())
		require.Equal(t, "PR_BODY", patched.GetSquashMergeCommitMessage())
	})

	t.Run("writes nothing for unchanged repositories", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")))
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "web")))
		ctx := newTestContext(t, config)

		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "api", standardSquash()),
			scanned("acme", "web", legacySquash()),
		}, settings.StandardSquash())

		actions.ApplyUpdates(githubCtx, ctx, &result)

		require.Equal(t, []string{"acme/web"}, config.PatchCalls)
		require.Equal(t, actions.UpdateStatusUnchanged, result.Outcomes[0].Status)
		require.Equal(t, actions.UpdateStatusUpdated, result.Outcomes[1].Status)
	})

	t.Run("continues after a failed update", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "locked")))
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "web")))
		config.ErrorStatus["PATCH /repos/acme/locked"] = http.StatusNotFound
		ctx := newTestContext(t, config)

		result := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "locked", legacySquash()),
			scanned("acme", "web", legacySquash()),
		}, settings.StandardSquash())

		actions.ApplyUpdates(githubCtx, ctx, &result)

		require.Equal(t, actions.UpdateStatusFailed, result.Outcomes[0].Status)
		var updateErr *repokiterrors.RepoUpdateError
		require.ErrorAs(t, result.Outcomes[0].Err, &updateErr)
		require.Equal(t, "acme/locked", updateErr.Repo)
		require.Equal(t, http.StatusNotFound, updateErr.StatusCode)

		require.Equal(t, actions.UpdateStatusUpdated, result.Outcomes[1].Status)
		require.Equal(t, []string{"acme/web"}, config.PatchCalls)
		require.Equal(t, 1, result.Failed())
		require.Equal(t, 1, result.Succeeded())
	})
}

func TestFixSquashAction(t *testing.T) {
	t.Run("dry run plans changes without writing", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddOrg("acme",
			testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")),
			testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "web")),
		)
		ctx := newTestContext(t, config)

		err := actions.FixSquashAction(ctx, actions.FixSquashOptions{Target: "acme"})
		require.NoError(t, err)
		require.Empty(t, config.PatchCalls)
	})

	t.Run("apply converges repositories to the standard", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddOrg("acme",
			testhelpers.NewSampleRepository(testhelpers.StandardRepoData("acme", "api")),
			testhelpers.NewSampleRepository(testhelpers.LegacyRepoData("acme", "web")),
		)
		ctx := newTestContext(t, config)

		err := actions.FixSquashAction(ctx, actions.FixSquashOptions{
			Target: "acme",
			Apply:  true,
			Yes:    true,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"acme/web"}, config.PatchCalls)

		// The repository now reports the standard configuration, so a
		// second pass has nothing left to change
		updated, fetchErr := ctx.GitHub.GetMergeSettings(context.Background(), "acme", "web")
		require.NoError(t, fetchErr)
		require.True(t, updated.HasStandardSquash())

		rescan := actions.PlanUpdates([]actions.RepoSettings{
			scanned("acme", "web", updated),
		}, settings.StandardSquash())
		require.Equal(t, 0, rescan.Pending())
	})

	t.Run("leaves repositories without squash merging alone", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddOrg("acme",
			testhelpers.NewSampleRepository(testhelpers.MergeOnlyRepoData("acme", "infra")),
		)
		ctx := newTestContext(t, config)

		err := actions.FixSquashAction(ctx, actions.FixSquashOptions{
			Target: "acme",
			Apply:  true,
			Yes:    true,
		})
		require.NoError(t, err)
		require.Empty(t, config.PatchCalls)
	})
}

func TestUpdateMergeAction(t *testing.T) {
	t.Run("requires at least one setting", func(t *testing.T) {
		ctx := newTestContext(t, testhelpers.NewMockGitHubServerConfig())

		err := actions.UpdateMergeAction(ctx, actions.UpdateMergeOptions{Target: "acme"})
		require.ErrorIs(t, err, repokiterrors.ErrNoSettingsSpecified)
	})

	t.Run("sends only the requested fields", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddRepo(testhelpers.NewSampleRepository(testhelpers.SampleRepoData{
			Owner:         "acme",
			Name:          "infra",
			SquashAllowed: true,
			MergeAllowed:  true,
			SquashTitle:   "COMMIT_OR_PR_TITLE",
			SquashMessage: "COMMIT_MESSAGES",
			MergeTitle:    "MERGE_MESSAGE",
			MergeMessage:  "PR_TITLE",
		}))
		ctx := newTestContext(t, config)

		mergeTitle := settings.MergeTitlePRTitle
		err := actions.UpdateMergeAction(ctx, actions.UpdateMergeOptions{
			Target:  "acme/infra",
			Desired: settings.DesiredSettings{MergeTitle: &mergeTitle},
			Apply:   true,
			Yes:     true,
		})
		require.NoError(t, err)

		patched := config.PatchedRepos["acme/infra"]
		require.NotNil(t, patched)
		require.Equal(t, "PR_TITLE", patched.GetMergeCommitTitle())
		require.Nil(t, patched.SquashMergeCommitTitle)
		require.Nil(t, patched.SquashMergeCommitMessage)
		require.Nil(t, patched.MergeCommitMessage)
	})
}
