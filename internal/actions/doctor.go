package actions

import (
	"context"
	"fmt"
	"os"
	"strings"

	"repokit.dev/repokit/internal/config"
	"repokit.dev/repokit/internal/git"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/output"
	"repokit.dev/repokit/internal/runtime"
)

// DoctorOptions contains options for the doctor command
type DoctorOptions struct {
	Auth github.ClientOptions
}

// DoctorAction runs diagnostic checks on the repokit environment
func DoctorAction(ctx *runtime.Context, opts DoctorOptions) error {
	splog := ctx.Splog

	splog.Info("Running repokit doctor...")
	splog.Newline()

	var warnings []string
	var errors []string

	splog.Info("Environment:")
	warnings, errors = checkEnvironment(ctx, opts, warnings, errors)

	splog.Newline()

	splog.Info("Configuration:")
	checkConfiguration(ctx, splog)

	splog.Newline()

	splog.Info("Repository:")
	checkCurrentRepository(splog)

	// Summary
	splog.Newline()
	if len(errors) > 0 {
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errors), len(warnings))
		for _, err := range errors {
			splog.Info("  ❌ %s", err)
		}
		for _, warn := range warnings {
			splog.Info("  ⚠️  %s", warn)
		}
		return fmt.Errorf("doctor found %d error(s)", len(errors))
	} else if len(warnings) > 0 {
		splog.Info("Doctor found %d warning(s). Your repokit setup is mostly healthy.", len(warnings))
		for _, warn := range warnings {
			splog.Info("  ⚠️  %s", warn)
		}
	} else {
		splog.Info("✅ All checks passed. Your repokit setup is healthy.")
	}

	return nil
}

// checkEnvironment verifies the gh CLI, token resolution and API
// connectivity
func checkEnvironment(ctx *runtime.Context, opts DoctorOptions, warnings []string, errors []string) ([]string, []string) {
	splog := ctx.Splog
	ghCtx := context.Background()

	// Check gh CLI. Only the token fallback needs it, so absence is a
	// warning rather than an error.
	ghVersion, err := git.RunGHCommandWithContext(ghCtx, "--version")
	if err != nil {
		warnings = append(warnings, "GitHub CLI (gh) is not installed or not in PATH")
		splog.Info("  ⚠️  GitHub CLI (gh) is not installed or not in PATH")
	} else {
		version, _, _ := strings.Cut(ghVersion, "\n")
		splog.Info("  ✅ %s", strings.TrimSpace(version))
	}

	// Check authentication
	if opts.Auth.UsesApp() {
		splog.Info("  ✅ Using GitHub App authentication (app ID %d)", opts.Auth.AppID)
	} else {
		token, source, err := github.ResolveToken(ghCtx, opts.Auth.Token)
		if err != nil || token == "" {
			warnings = append(warnings, "GitHub authentication not configured (set GITHUB_TOKEN or run 'gh auth login')")
			splog.Info("  ⚠️  GitHub authentication not configured")
			return warnings, errors
		}
		splog.Info("  ✅ GitHub token resolved from %s", describeTokenSource(source))
	}

	// Verify connectivity with the resolved credentials
	if err := ctx.EnsureGitHubClient(ghCtx, opts.Auth); err != nil {
		errors = append(errors, fmt.Sprintf("failed to build GitHub client: %v", err))
		splog.Info("  ❌ failed to build GitHub client: %v", err)
		return warnings, errors
	}

	if rc, ok := ctx.GitHub.(*github.RESTClient); ok {
		splog.Info("  ✅ GitHub API endpoint: %s", rc.BaseURL())
	}

	login, err := ctx.GitHub.AuthenticatedUser(ghCtx)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("GitHub API request failed: %v", err))
		splog.Info("  ⚠️  GitHub API request failed: %v", err)
	} else if login != "" {
		splog.Info("  ✅ GitHub authentication successful (%s)", login)
	} else {
		splog.Info("  ✅ GitHub authentication successful")
	}

	return warnings, errors
}

func describeTokenSource(source github.TokenSource) string {
	switch source {
	case github.TokenSourceFlag:
		return "the --token flag"
	case github.TokenSourceEnv:
		return "the GITHUB_TOKEN environment variable"
	case github.TokenSourceGH:
		return "the gh CLI"
	}
	return string(source)
}

// checkConfiguration reports the user config file state. A missing
// file is the normal case, not a problem.
func checkConfiguration(ctx *runtime.Context, splog *output.Splog) {
	path, err := config.DefaultPath()
	if err != nil {
		splog.Info(output.ColorDim("  No user config directory available"))
		return
	}

	if _, err := os.Stat(path); err != nil {
		splog.Info(output.ColorDim(fmt.Sprintf("  No config file found at %s (using defaults)", path)))
		return
	}
	splog.Info("  ✅ Config file: %s", path)

	if url := ctx.Config.GetAPIURL(); url != "" {
		splog.Info("  ✅ API endpoint override: %s", url)
	}
	if count := len(ctx.Config.Exclude); count > 0 {
		splog.Info("  ✅ Exclude list: %d repositories", count)
	}
	if logFile := ctx.Config.GetLogFile(); logFile != "" {
		splog.Info("  ✅ File logging: %s", logFile)
	}
}

// checkCurrentRepository reports whether the "." target would resolve
// from the working directory
func checkCurrentRepository(splog *output.Splog) {
	info, err := git.CurrentRepo(".")
	if err != nil {
		splog.Info(output.ColorDim("  Current directory is not inside a GitHub repository (the \".\" target is unavailable)"))
		return
	}
	splog.Info("  ✅ Current directory maps to %s/%s", info.Owner, info.Name)
}
