// Package errors provides sentinel errors and custom error types for the repokit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoToken indicates that no GitHub token could be resolved
	ErrNoToken = errors.New("no GitHub token found")

	// ErrTargetNotFound indicates that a target matched neither an organization, a user, nor a repository
	ErrTargetNotFound = errors.New("target not found")

	// ErrNoSettingsSpecified indicates that an update was requested without any merge setting
	ErrNoSettingsSpecified = errors.New("at least one merge setting must be specified")

	// ErrAborted indicates that the user declined a confirmation prompt
	ErrAborted = errors.New("aborted")
)

// AuthError represents a failure to resolve GitHub credentials
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no GitHub token found: %v", e.Err)
	}
	return "no GitHub token found"
}

// Is returns true if the target error is ErrNoToken
func (e *AuthError) Is(target error) bool {
	return target == ErrNoToken
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError
func NewAuthError(err error) *AuthError {
	return &AuthError{Err: err}
}

// TargetNotFoundError represents an error when a target cannot be resolved
type TargetNotFoundError struct {
	Target string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target %s not found: no organization or user with that name", e.Target)
}

// Is returns true if the target error is ErrTargetNotFound
func (e *TargetNotFoundError) Is(target error) bool {
	return target == ErrTargetNotFound
}

// NewTargetNotFoundError creates a new TargetNotFoundError
func NewTargetNotFoundError(target string) *TargetNotFoundError {
	return &TargetNotFoundError{Target: target}
}

// RepoFetchError represents a per-repository settings fetch failure.
// These are recorded and reported; they never abort a run.
type RepoFetchError struct {
	Repo       string
	StatusCode int
	Err        error
}

func (e *RepoFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch settings for %s: HTTP %d: %v", e.Repo, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch settings for %s: %v", e.Repo, e.Err)
}

func (e *RepoFetchError) Unwrap() error {
	return e.Err
}

// NewRepoFetchError creates a new RepoFetchError
func NewRepoFetchError(repo string, statusCode int, err error) *RepoFetchError {
	return &RepoFetchError{
		Repo:       repo,
		StatusCode: statusCode,
		Err:        err,
	}
}

// RepoUpdateError represents a per-repository settings update failure.
// GitHub may answer 404 instead of 403 when the token lacks write scope;
// both surface here with the raw status.
type RepoUpdateError struct {
	Repo       string
	StatusCode int
	Err        error
}

func (e *RepoUpdateError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to update %s: HTTP %d: %v", e.Repo, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to update %s: %v", e.Repo, e.Err)
}

func (e *RepoUpdateError) Unwrap() error {
	return e.Err
}

// NewRepoUpdateError creates a new RepoUpdateError
func NewRepoUpdateError(repo string, statusCode int, err error) *RepoUpdateError {
	return &RepoUpdateError{
		Repo:       repo,
		StatusCode: statusCode,
		Err:        err,
	}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
