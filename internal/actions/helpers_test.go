package actions_test

import (
	"testing"

	"repokit.dev/repokit/internal/github"
	"repokit.dev/repokit/internal/runtime"
	"repokit.dev/repokit/testhelpers"
)

// newTestContext builds a command context backed by a mock GitHub server
func newTestContext(t *testing.T, config *testhelpers.MockGitHubServerConfig) *runtime.Context {
	t.Helper()
	ctx := runtime.NewContext()
	ctx.GitHub = github.NewRESTClient(testhelpers.NewMockGitHubClient(t, config))
	return ctx
}
