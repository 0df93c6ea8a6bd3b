package cli

import (
	"github.com/spf13/cobra"

	"repokit.dev/repokit/internal/actions"
	"repokit.dev/repokit/internal/github"
)

// authFlags collects the authentication flags shared by every command
// that talks to the GitHub API
type authFlags struct {
	token             string
	apiURL            string
	appID             int64
	appInstallationID int64
	appKeyFile        string
}

func (f *authFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "GitHub token (defaults to GITHUB_TOKEN, then gh auth token)")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "GitHub API base URL, for GitHub Enterprise instances")
	cmd.Flags().Int64Var(&f.appID, "app-id", 0, "GitHub App ID, to authenticate as an app installation")
	cmd.Flags().Int64Var(&f.appInstallationID, "app-installation-id", 0, "GitHub App installation ID")
	cmd.Flags().StringVar(&f.appKeyFile, "app-key-file", "", "Path to the GitHub App private key file")
}

func (f *authFlags) options() github.ClientOptions {
	return github.ClientOptions{
		Token:             f.token,
		APIURL:            f.apiURL,
		AppID:             f.appID,
		AppInstallationID: f.appInstallationID,
		AppPrivateKeyFile: f.appKeyFile,
	}
}

// filterFlags collects the flags that control which repositories a
// target resolves to
type filterFlags struct {
	includeArchived bool
	includeForks    bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.includeArchived, "include-archived", false, "Include archived repositories")
	cmd.Flags().BoolVar(&f.includeForks, "include-forks", false, "Include forked repositories")
}

func (f *filterFlags) options() actions.FilterOptions {
	return actions.FilterOptions{
		IncludeArchived: f.includeArchived,
		IncludeForks:    f.includeForks,
	}
}
