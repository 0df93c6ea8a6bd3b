package actions

import (
	"context"

	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/output"
	"repokit.dev/repokit/internal/runtime"
)

// ScanReporter receives progress callbacks while settings are fetched
type ScanReporter interface {
	RepoStarted(index, total int, repo string)
	RepoFailed(index, total int, repo string)
}

// ScanSettings fetches merge settings for each repository in listing
// order, one API call per repository. A per-repo failure is recorded
// and the scan continues with the next repository.
func ScanSettings(githubCtx context.Context, client github.Client, repos []github.Repo, reporter ScanReporter) ScanResult {
	var result ScanResult

	total := len(repos)
	for i, repo := range repos {
		if reporter != nil {
			reporter.RepoStarted(i+1, total, repo.FullName())
		}

		fetched, err := client.GetMergeSettings(githubCtx, repo.Owner, repo.Name)
		if err != nil {
			if reporter != nil {
				reporter.RepoFailed(i+1, total, repo.FullName())
			}
			result.Failures = append(result.Failures, FetchFailure{
				Repo: repo,
				Err:  repokiterrors.NewRepoFetchError(repo.FullName(), github.StatusCode(err), err),
			})
			continue
		}

		result.Repos = append(result.Repos, RepoSettings{Repo: repo, Settings: fetched})
	}

	return result
}

// scanWithProgress runs ScanSettings behind a spinner when scanning
// more than one repository on a terminal. The scan itself runs in a
// goroutine; the display owns the foreground until the reporter closes.
func scanWithProgress(githubCtx context.Context, ctx *runtime.Context, repos []github.Repo) ScanResult {
	if len(repos) <= 1 || !output.IsTTY() {
		return ScanSettings(githubCtx, ctx.GitHub, repos, nil)
	}

	reporter := output.NewChannelScanReporter()

	// Suppress console logging while the spinner owns the terminal
	ctx.Splog.SetQuiet(true)
	defer ctx.Splog.SetQuiet(false)

	var result ScanResult
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer reporter.Close()
		result = ScanSettings(githubCtx, ctx.GitHub, repos, reporter)
	}()

	if err := output.RunScanTUI(reporter.Updates()); err != nil {
		ctx.Splog.Debug("Progress display failed: %v", err)
	}
	<-done

	return result
}
