// Package runtime provides the execution context for repokit commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// logger, the user configuration and the GitHub API client.
package runtime
