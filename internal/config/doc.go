// Package config manages the repokit user configuration.
//
// It handles:
//   - Loading and saving ~/.config/repokit/config.json
//   - GitHub API endpoint overrides for Enterprise deployments
//   - The repository exclude list applied when listing an owner
//   - The optional log file location
package config
