package actions

import (
	"errors"
	"fmt"
	"strings"

	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/output"
	"repokit.dev/repokit/internal/settings"
)

// attentionLimit caps how many deviating repositories the summary
// lists by name
const attentionLimit = 10

// AttentionEntry is one repository that deviates from the standard
// merge message configuration, with the fields that differ
type AttentionEntry struct {
	Repo   string
	Issues []string
}

// Report aggregates a scan into audit counts. The squash standard is
// PR_TITLE + PR_BODY; the merge commit standard is PR_TITLE + PR_TITLE.
type Report struct {
	Total             int
	SquashEnabled     int
	SquashStandard    int
	SquashNeedsUpdate int
	MergeEnabled      int
	MergeStandard     int
	MergeNeedsUpdate  int
	NeedsAttention    []AttentionEntry
	Failures          []FetchFailure
}

// BuildReport computes audit counts and the list of repositories
// needing attention, preserving scan order
func BuildReport(result ScanResult) Report {
	report := Report{
		Total:    len(result.Repos),
		Failures: result.Failures,
	}

	for _, rs := range result.Repos {
		s := rs.Settings

		if s.SquashAllowed {
			report.SquashEnabled++
			if s.HasStandardSquash() {
				report.SquashStandard++
			}
		}
		if s.MergeAllowed {
			report.MergeEnabled++
			if s.HasStandardMerge() {
				report.MergeStandard++
			}
		}

		if issues := settingsIssues(s); len(issues) > 0 {
			report.NeedsAttention = append(report.NeedsAttention, AttentionEntry{
				Repo:   rs.Repo.FullName(),
				Issues: issues,
			})
		}
	}

	report.SquashNeedsUpdate = report.SquashEnabled - report.SquashStandard
	report.MergeNeedsUpdate = report.MergeEnabled - report.MergeStandard

	return report
}

// settingsIssues lists the fields of an enabled merge method that
// deviate from the standard values, as key=value pairs
func settingsIssues(s settings.MergeSettings) []string {
	var issues []string

	if s.SquashAllowed {
		if s.SquashTitle != settings.SquashTitlePRTitle {
			issues = append(issues, fmt.Sprintf("squash_title=%s", s.SquashTitle))
		}
		if s.SquashMessage != settings.SquashMessagePRBody {
			issues = append(issues, fmt.Sprintf("squash_msg=%s", s.SquashMessage))
		}
	}
	if s.MergeAllowed {
		if s.MergeTitle != settings.MergeTitlePRTitle {
			issues = append(issues, fmt.Sprintf("merge_title=%s", s.MergeTitle))
		}
		if s.MergeMessage != settings.MergeMessagePRTitle {
			issues = append(issues, fmt.Sprintf("merge_msg=%s", s.MergeMessage))
		}
	}

	return issues
}

// RenderSummary renders the compact audit report
func RenderSummary(report Report) []string {
	lines := []string{
		output.Bold("Summary:"),
		fmt.Sprintf("  Total repositories: %d", report.Total),
		fmt.Sprintf("  Squash merge enabled: %d", report.SquashEnabled),
		fmt.Sprintf("    - Using PR_TITLE + PR_BODY: %d", report.SquashStandard),
	}
	if report.SquashNeedsUpdate > 0 {
		lines = append(lines, output.ColorNeedsUpdate(fmt.Sprintf("    - Need update: %d", report.SquashNeedsUpdate)))
	}

	lines = append(lines,
		fmt.Sprintf("  Merge commit enabled: %d", report.MergeEnabled),
		fmt.Sprintf("    - Using PR_TITLE + PR_TITLE: %d", report.MergeStandard),
	)
	if report.MergeNeedsUpdate > 0 {
		lines = append(lines, output.ColorNeedsUpdate(fmt.Sprintf("    - Need update: %d", report.MergeNeedsUpdate)))
	}

	if len(report.NeedsAttention) > 0 {
		lines = append(lines, "")
		lines = append(lines, output.ColorNeedsUpdate(fmt.Sprintf("Repositories needing updates (%d):", len(report.NeedsAttention))))

		shown := report.NeedsAttention
		if len(shown) > attentionLimit {
			shown = shown[:attentionLimit]
		}
		for _, entry := range shown {
			lines = append(lines, fmt.Sprintf("  %s: %s", entry.Repo, strings.Join(entry.Issues, ", ")))
		}
		if rest := len(report.NeedsAttention) - attentionLimit; rest > 0 {
			lines = append(lines, fmt.Sprintf("  ... and %d more", rest))
		}
	}

	lines = append(lines, RenderFetchFailures(report.Failures)...)

	return lines
}

// RenderFetchFailures lists repositories whose settings fetch failed,
// or nothing when the scan was clean
func RenderFetchFailures(failures []FetchFailure) []string {
	if len(failures) == 0 {
		return nil
	}

	lines := []string{
		"",
		output.ColorFailure(fmt.Sprintf("Failed to fetch %d repositories:", len(failures))),
	}
	for _, failure := range failures {
		lines = append(lines, fmt.Sprintf("  %s: %s", failure.Repo.FullName(), fetchFailureMessage(failure.Err)))
	}
	return lines
}

// fetchFailureMessage unwraps the cause so a failure line does not
// repeat the repository name
func fetchFailureMessage(err error) string {
	var fetchErr *repokiterrors.RepoFetchError
	if errors.As(err, &fetchErr) && fetchErr.Err != nil {
		return fetchErr.Err.Error()
	}
	return err.Error()
}
