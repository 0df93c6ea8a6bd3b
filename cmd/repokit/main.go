package main

import (
	"errors"
	"os"

	"repokit.dev/repokit/internal/cli"
	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		reportFatal(err)
		os.Exit(1)
	}
}

// reportFatal prints the error, with a remediation hint where one exists
func reportFatal(err error) {
	splog := output.NewSplog()
	defer splog.Close()

	splog.Error("%v", err)
	switch {
	case errors.Is(err, repokiterrors.ErrNoToken):
		splog.Tip("Set the GITHUB_TOKEN environment variable, run 'gh auth login', or pass --token")
	case errors.Is(err, repokiterrors.ErrNoSettingsSpecified):
		splog.Tip("Use --squash-title, --squash-message, --merge-title, or --merge-message")
	}
}
