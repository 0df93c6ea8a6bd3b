package actions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/output"
	"repokit.dev/repokit/internal/runtime"
	"repokit.dev/repokit/internal/settings"
)

// UpdateMergeOptions contains options for the repos update-merge command
type UpdateMergeOptions struct {
	Target  string
	Desired settings.DesiredSettings
	Apply   bool
	Yes     bool
	Filters FilterOptions
	Auth    github.ClientOptions
}

// UpdateMergeAction applies user-specified merge settings across the
// target's repositories, in dry-run mode unless Apply is set
func UpdateMergeAction(ctx *runtime.Context, opts UpdateMergeOptions) error {
	if opts.Desired.Empty() {
		return repokiterrors.ErrNoSettingsSpecified
	}

	return runUpdateFlow(ctx, updateFlowConfig{
		Target:  opts.Target,
		Desired: opts.Desired,
		Apply:   opts.Apply,
		Yes:     opts.Yes,
		Filters: opts.Filters,
		Auth:    opts.Auth,
	})
}

// FixSquashOptions contains options for the repos fix-squash command
type FixSquashOptions struct {
	Target  string
	Apply   bool
	Yes     bool
	Filters FilterOptions
	Auth    github.ClientOptions
}

// FixSquashAction moves every repository with squash merging enabled
// to the standard PR_TITLE + PR_BODY configuration
func FixSquashAction(ctx *runtime.Context, opts FixSquashOptions) error {
	return runUpdateFlow(ctx, updateFlowConfig{
		Target:  opts.Target,
		Desired: settings.StandardSquash(),
		Action:  "Set squash merge to PR_TITLE + PR_BODY",
		Apply:   opts.Apply,
		Yes:     opts.Yes,
		Filters: opts.Filters,
		Auth:    opts.Auth,
	})
}

// updateFlowConfig is the shared shape of the two update commands
type updateFlowConfig struct {
	Target  string
	Desired settings.DesiredSettings
	Action  string // extra banner line, used by fix-squash
	Apply   bool
	Yes     bool
	Filters FilterOptions
	Auth    github.ClientOptions
}

func runUpdateFlow(ctx *runtime.Context, cfg updateFlowConfig) error {
	splog := ctx.Splog
	githubCtx := context.Background()

	if err := ctx.EnsureGitHubClient(githubCtx, cfg.Auth); err != nil {
		return err
	}

	printUpdateBanner(splog, cfg)

	repos, err := ResolveTarget(githubCtx, ctx, cfg.Target, cfg.Filters)
	if err != nil {
		return err
	}

	scan := scanWithProgress(githubCtx, ctx, repos)

	splog.Newline()
	splog.Info(output.Bold(fmt.Sprintf("Found %d repositories", len(scan.Repos))))
	splog.Newline()

	if len(scan.Failures) > 0 {
		// RenderFetchFailures opens with a blank separator line
		splog.Page(strings.Join(RenderFetchFailures(scan.Failures), "\n"))
		splog.Newline()
	}

	result := PlanUpdates(scan.Repos, cfg.Desired)
	printPlanOutcomes(splog, result, cfg.Apply)

	if cfg.Apply {
		if pending := result.Pending(); pending > 0 && !cfg.Yes && output.IsTTY() {
			if err := confirmUpdate(pending); err != nil {
				if errors.Is(err, repokiterrors.ErrAborted) {
					splog.Info("Aborted.")
					return nil
				}
				return err
			}
		}
		ApplyUpdates(githubCtx, ctx, &result)
	}

	printUpdateSummary(splog, result, cfg.Apply)

	return nil
}

// PlanUpdates computes the change set for each scanned repository.
// Repositories where no desired field targets an enabled merge method
// are skipped; the rest come out unchanged or planned.
func PlanUpdates(scanned []RepoSettings, desired settings.DesiredSettings) UpdateResult {
	var result UpdateResult

	for _, rs := range scanned {
		outcome := RepoUpdateOutcome{Repo: rs.Repo}

		if !desired.AppliesTo(rs.Settings) {
			outcome.Status = UpdateStatusSkipped
		} else {
			outcome.Changes = settings.Diff(rs.Settings, desired)
			if outcome.Changes.Empty() {
				outcome.Status = UpdateStatusUnchanged
			} else {
				outcome.Status = UpdateStatusPlanned
			}
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result
}

// ApplyUpdates issues one settings write per planned repository,
// sequentially, continuing past failures
func ApplyUpdates(githubCtx context.Context, ctx *runtime.Context, result *UpdateResult) {
	splog := ctx.Splog

	for i := range result.Outcomes {
		outcome := &result.Outcomes[i]
		if outcome.Status != UpdateStatusPlanned {
			continue
		}

		full := outcome.Repo.FullName()
		err := ctx.GitHub.UpdateMergeSettings(githubCtx, outcome.Repo.Owner, outcome.Repo.Name, outcome.Changes)
		if err != nil {
			status := github.StatusCode(err)
			outcome.Status = UpdateStatusFailed
			outcome.Err = repokiterrors.NewRepoUpdateError(full, status, err)
			splog.Info(output.ColorFailure(fmt.Sprintf("✗ %s: Failed - %s", full, updateFailureMessage(status, err))))
			continue
		}

		outcome.Status = UpdateStatusUpdated
		splog.Info(output.ColorSuccess(fmt.Sprintf("✓ %s: Updated successfully", full)))
	}
}

// updateFailureMessage keeps the raw API error except on 404, where
// GitHub hides permission problems behind a not-found answer
func updateFailureMessage(status int, err error) string {
	if status == http.StatusNotFound {
		return "404 Not Found (Check permissions or if target is an organization)"
	}
	return err.Error()
}

func printUpdateBanner(splog *output.Splog, cfg updateFlowConfig) {
	splog.Info("%s %s", output.Bold("Organization:"), cfg.Target)
	if cfg.Action != "" {
		splog.Info("%s %s", output.Bold("Action:"), cfg.Action)
		splog.Newline()
	}
	if cfg.Apply {
		splog.Info(output.ColorFailure("Mode: APPLY (making real changes)"))
	} else {
		splog.Info(output.ColorNeedsUpdate("Mode: DRY RUN (use --apply to make changes)"))
	}
	splog.Newline()
}

// printPlanOutcomes prints the per-repository plan. In apply mode the
// planned repositories are reported by ApplyUpdates instead.
func printPlanOutcomes(splog *output.Splog, result UpdateResult, apply bool) {
	for _, outcome := range result.Outcomes {
		full := outcome.Repo.FullName()

		switch outcome.Status {
		case UpdateStatusSkipped:
			splog.Info(output.ColorDim(fmt.Sprintf("%s: No applicable merge methods enabled", full)))
		case UpdateStatusUnchanged:
			splog.Info(output.ColorDim(fmt.Sprintf("%s: No changes needed", full)))
		case UpdateStatusPlanned:
			if apply {
				continue
			}
			splog.Info(output.ColorNeedsUpdate(fmt.Sprintf("%s: Would update:", full)))
			for _, change := range outcome.Changes.Changes {
				splog.Info("  %s: %s", change.Field, change.Desired)
			}
		}
	}
}

func printUpdateSummary(splog *output.Splog, result UpdateResult, apply bool) {
	splog.Newline()
	splog.Info(output.Bold("Summary:"))
	splog.Info("  Processed: %d repositories", result.Processed())

	if !apply {
		splog.Info("  Would update: %d repositories", result.Succeeded())
		splog.Newline()
		splog.Info(output.ColorNeedsUpdate("Run with --apply to make changes"))
		return
	}

	splog.Info(output.ColorSuccess(fmt.Sprintf("  Updated: %d repositories", result.Succeeded())))
	if failed := result.Failed(); failed > 0 {
		splog.Info(output.ColorFailure(fmt.Sprintf("  Failed: %d repositories", failed)))
	}
}
