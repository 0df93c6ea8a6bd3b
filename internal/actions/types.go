package actions

import (
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/settings"
)

// FilterOptions controls which repositories a target resolves to
type FilterOptions struct {
	IncludeArchived bool
	IncludeForks    bool
}

// RepoSettings pairs a repository with its fetched merge settings
type RepoSettings struct {
	Repo     github.Repo
	Settings settings.MergeSettings
}

// FetchFailure records a repository whose settings could not be fetched
type FetchFailure struct {
	Repo github.Repo
	Err  error
}

// ScanResult holds the outcome of fetching settings across repositories.
// Failures never abort a scan; they are collected here and reported.
type ScanResult struct {
	Repos    []RepoSettings
	Failures []FetchFailure
}

// UpdateStatus classifies the outcome of one repository during an update
type UpdateStatus string

const (
	// UpdateStatusSkipped means no desired field targets an enabled merge method
	UpdateStatusSkipped UpdateStatus = "skipped"
	// UpdateStatusUnchanged means the repository already matches the desired settings
	UpdateStatusUnchanged UpdateStatus = "unchanged"
	// UpdateStatusPlanned means the repository has pending changes (dry run)
	UpdateStatusPlanned UpdateStatus = "planned"
	UpdateStatusUpdated UpdateStatus = "updated"
	UpdateStatusFailed  UpdateStatus = "failed"
)

// RepoUpdateOutcome records what happened to one repository
type RepoUpdateOutcome struct {
	Repo    github.Repo
	Status  UpdateStatus
	Changes settings.ChangeSet
	Err     error
}

// UpdateResult aggregates per-repository update outcomes
type UpdateResult struct {
	Outcomes []RepoUpdateOutcome
}

// Processed counts repositories where at least one desired field
// targets an enabled merge method
func (r UpdateResult) Processed() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status != UpdateStatusSkipped {
			count++
		}
	}
	return count
}

// Succeeded counts repositories that needed no change, have pending
// changes in a dry run, or were updated
func (r UpdateResult) Succeeded() int {
	count := 0
	for _, outcome := range r.Outcomes {
		switch outcome.Status {
		case UpdateStatusUnchanged, UpdateStatusPlanned, UpdateStatusUpdated:
			count++
		}
	}
	return count
}

// Failed counts repositories whose update call failed
func (r UpdateResult) Failed() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == UpdateStatusFailed {
			count++
		}
	}
	return count
}

// Pending counts repositories with changes waiting to be applied
func (r UpdateResult) Pending() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == UpdateStatusPlanned {
			count++
		}
	}
	return count
}
