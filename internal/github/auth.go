package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	repokiterrors "repokit.dev/repokit/internal/errors"
	"repokit.dev/repokit/internal/git"
)

// TokenSource identifies where a token was resolved from
type TokenSource string

const (
	TokenSourceFlag TokenSource = "flag"
	TokenSourceEnv  TokenSource = "environment"
	TokenSourceGH   TokenSource = "gh"
)

// ResolveToken resolves a GitHub token. An explicitly provided token
// wins, then the GITHUB_TOKEN environment variable, then the gh CLI.
func ResolveToken(ctx context.Context, explicit string) (string, TokenSource, error) {
	if explicit != "" {
		return explicit, TokenSourceFlag, nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, TokenSourceEnv, nil
	}

	output, err := git.RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", "", repokiterrors.NewAuthError(err)
	}

	token := strings.TrimSpace(output)
	if token == "" {
		return "", "", repokiterrors.NewAuthError(nil)
	}

	return token, TokenSourceGH, nil
}

// ClientOptions configures construction of a GitHub API client
type ClientOptions struct {
	// Token authenticates as a user or with a PAT
	Token string

	// APIURL and UploadURL override the API endpoints, for GitHub
	// Enterprise instances. Empty means github.com.
	APIURL    string
	UploadURL string

	// AppID, AppInstallationID and AppPrivateKeyFile authenticate as a
	// GitHub App installation instead of with a token
	AppID             int64
	AppInstallationID int64
	AppPrivateKeyFile string
}

// UsesApp returns true when GitHub App credentials are configured
func (o ClientOptions) UsesApp() bool {
	return o.AppID != 0 || o.AppInstallationID != 0 || o.AppPrivateKeyFile != ""
}

// NewClient creates a GitHub API client from the given options
func NewClient(ctx context.Context, opts ClientOptions) (*RESTClient, error) {
	httpClient, err := newHTTPClient(ctx, opts)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(httpClient)

	if opts.APIURL != "" {
		baseURL, err := parseEndpoint(opts.APIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API URL: %w", err)
		}
		client.BaseURL = baseURL

		uploadURL := opts.UploadURL
		if uploadURL == "" {
			uploadURL = opts.APIURL
		}
		parsed, err := parseEndpoint(uploadURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL: %w", err)
		}
		client.UploadURL = parsed
	}
	// For github.com, the default URLs are already correct

	return NewRESTClient(client), nil
}

func newHTTPClient(ctx context.Context, opts ClientOptions) (*http.Client, error) {
	if opts.UsesApp() {
		if opts.AppID == 0 || opts.AppInstallationID == 0 || opts.AppPrivateKeyFile == "" {
			return nil, fmt.Errorf("app authentication requires --app-id, --app-installation-id and --app-key-file")
		}
		itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, opts.AppID, opts.AppInstallationID, opts.AppPrivateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to configure app authentication: %w", err)
		}
		if opts.APIURL != "" {
			itr.BaseURL = strings.TrimSuffix(opts.APIURL, "/")
		}
		return &http.Client{Transport: itr}, nil
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: opts.Token},
	)
	return oauth2.NewClient(ctx, ts), nil
}

// parseEndpoint parses an endpoint URL, ensuring the trailing slash
// that go-github requires
func parseEndpoint(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return url.Parse(raw)
}
