package runtime

import (
	"context"
	"fmt"

	"repokit.dev/repokit/internal/config"
	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/output"
)

// Context provides access to configuration, output and the GitHub API
// for commands
type Context struct {
	Splog  *output.Splog
	Config *config.Config
	GitHub github.Client
}

// NewContext creates a context with console-only logging and defaults.
// Tests use this and attach a mock GitHub client.
func NewContext() *Context {
	return &Context{
		Splog:  output.NewSplog(),
		Config: &config.Config{},
	}
}

// GetContext loads the user configuration and builds the command context.
// The GitHub client is attached later, once auth flags are known.
func GetContext(ctx context.Context) (*Context, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	splog, err := output.NewSplogWithConfig(cfg.GetLogFile())
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &Context{
		Splog:  splog,
		Config: cfg,
	}, nil
}

// EnsureGitHubClient attaches a GitHub API client to the context,
// resolving the token unless app credentials are configured. Endpoint
// overrides from the user config apply when the options carry none.
// A client attached earlier (by tests) is left in place.
func (c *Context) EnsureGitHubClient(ctx context.Context, opts github.ClientOptions) error {
	if c.GitHub != nil {
		return nil
	}

	if !opts.UsesApp() {
		token, source, err := github.ResolveToken(ctx, opts.Token)
		if err != nil {
			return err
		}
		opts.Token = token

		switch source {
		case github.TokenSourceEnv:
			c.Splog.Info(output.ColorDim("Using token from GITHUB_TOKEN environment variable"))
		case github.TokenSourceGH:
			c.Splog.Info(output.ColorDim("Using token from gh CLI (gh auth token)"))
		}
	}

	if opts.APIURL == "" {
		opts.APIURL = c.Config.GetAPIURL()
		opts.UploadURL = c.Config.GetUploadURL()
	}

	client, err := github.NewClient(ctx, opts)
	if err != nil {
		return err
	}

	c.GitHub = client
	return nil
}

// Close releases resources held by the context
func (c *Context) Close() {
	if c.Splog != nil {
		c.Splog.Close()
	}
}
