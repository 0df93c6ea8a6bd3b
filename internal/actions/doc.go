// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a repokit command (repos list, repos
// update-merge, doctor, etc.) and orchestrates target resolution,
// settings scanning and updates across the git and github packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the Splog, the user
//     configuration and the GitHub client
//   - Actions are stateless - repository state lives on the GitHub side
//   - Actions handle user interaction through the output package
//
// Dependencies:
//   - github: GitHub API access
//   - git: Resolution of the repository behind the working directory
//   - output: Terminal rendering and prompts
package actions
