// Package git maps a local checkout to its GitHub repository.
//
// It handles:
//   - Resolving the owner/name pair from the origin remote URL
//   - Parsing SSH and HTTPS remote URL forms
//   - Running gh CLI commands (used for the token fallback)
//
// This package should be the only place where external commands are executed.
package git
