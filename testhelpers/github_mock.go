package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Orgs maps organization logins to their account data
	Orgs map[string]*github.Organization
	// Users maps user logins to their account data
	Users map[string]*github.User
	// OrgRepos maps organization logins to their repository listings
	OrgRepos map[string][]*github.Repository
	// UserRepos maps user logins to their repository listings
	UserRepos map[string][]*github.Repository
	// Repos maps "owner/name" to repository data for direct fetches
	Repos map[string]*github.Repository
	// ErrorStatus maps "METHOD /path" to a forced HTTP status code
	ErrorStatus map[string]int
	// PatchedRepos records the PATCH bodies received, keyed by "owner/name"
	PatchedRepos map[string]*github.Repository
	// PatchCalls records the order PATCH requests arrived in
	PatchCalls []string
	// AuthenticatedLogin is returned for the authenticated user endpoint
	AuthenticatedLogin string
	// PageSize splits repository listings into pages when > 0
	PageSize int
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Orgs:               make(map[string]*github.Organization),
		Users:              make(map[string]*github.User),
		OrgRepos:           make(map[string][]*github.Repository),
		UserRepos:          make(map[string][]*github.Repository),
		Repos:              make(map[string]*github.Repository),
		ErrorStatus:        make(map[string]int),
		PatchedRepos:       make(map[string]*github.Repository),
		AuthenticatedLogin: "mock-user",
	}
}

// AddOrg registers an organization with the given repository listing.
// Repositories are also registered for direct fetches and updates.
func (c *MockGitHubServerConfig) AddOrg(login string, repos ...*github.Repository) {
	c.Orgs[login] = &github.Organization{Login: github.String(login)}
	c.OrgRepos[login] = append(c.OrgRepos[login], repos...)
	for _, repo := range repos {
		c.Repos[repoKey(repo)] = repo
	}
}

// AddUser registers a user account with the given repository listing.
// Repositories are also registered for direct fetches and updates.
func (c *MockGitHubServerConfig) AddUser(login string, repos ...*github.Repository) {
	c.Users[login] = &github.User{Login: github.String(login)}
	c.UserRepos[login] = append(c.UserRepos[login], repos...)
	for _, repo := range repos {
		c.Repos[repoKey(repo)] = repo
	}
}

// AddRepo registers a repository for direct fetches and updates only
func (c *MockGitHubServerConfig) AddRepo(repo *github.Repository) {
	c.Repos[repoKey(repo)] = repo
}

func repoKey(repo *github.Repository) string {
	return repo.GetOwner().GetLogin() + "/" + repo.GetName()
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub
// API endpoints used for auditing and updating merge settings
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	notFound := func(w http.ResponseWriter) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}

	// forcedError writes a configured error response and reports whether
	// one was configured for this request
	forcedError := func(w http.ResponseWriter, r *http.Request) bool {
		status, ok := config.ErrorStatus[r.Method+" "+r.URL.Path]
		if !ok {
			return false
		}
		writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
		return true
	}

	// servePage serves one page of a repository listing, with a Link
	// header pointing at the next page when more remain
	servePage := func(w http.ResponseWriter, r *http.Request, repos []*github.Repository) {
		if config.PageSize <= 0 || len(repos) <= config.PageSize {
			writeJSON(w, http.StatusOK, repos)
			return
		}

		page := 1
		if value := r.URL.Query().Get("page"); value != "" {
			page, _ = strconv.Atoi(value)
		}
		if page < 1 {
			page = 1
		}

		start := (page - 1) * config.PageSize
		if start >= len(repos) {
			writeJSON(w, http.StatusOK, []*github.Repository{})
			return
		}
		end := start + config.PageSize
		if end > len(repos) {
			end = len(repos)
		}
		if end < len(repos) {
			w.Header().Set("Link", fmt.Sprintf(`<%s?page=%d>; rel="next"`, r.URL.Path, page+1))
		}
		writeJSON(w, http.StatusOK, repos[start:end])
	}

	mux := http.NewServeMux()

	// GET /orgs/{org} and GET /orgs/{org}/repos
	mux.HandleFunc("/orgs/", func(w http.ResponseWriter, r *http.Request) {
		if forcedError(w, r) {
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/orgs/")
		if strings.HasSuffix(rest, "/repos") {
			login := strings.TrimSuffix(rest, "/repos")
			repos, ok := config.OrgRepos[login]
			if !ok {
				notFound(w)
				return
			}
			servePage(w, r, repos)
			return
		}
		org, ok := config.Orgs[rest]
		if !ok {
			notFound(w)
			return
		}
		writeJSON(w, http.StatusOK, org)
	})

	// GET /users/{user} and GET /users/{user}/repos
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		if forcedError(w, r) {
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/users/")
		if strings.HasSuffix(rest, "/repos") {
			login := strings.TrimSuffix(rest, "/repos")
			repos, ok := config.UserRepos[login]
			if !ok {
				notFound(w)
				return
			}
			servePage(w, r, repos)
			return
		}
		user, ok := config.Users[rest]
		if !ok {
			notFound(w)
			return
		}
		writeJSON(w, http.StatusOK, user)
	})

	// GET /user (authenticated user)
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if forcedError(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, &github.User{Login: github.String(config.AuthenticatedLogin)})
	})

	// GET and PATCH /repos/{owner}/{repo}
	mux.HandleFunc("/repos/", func(w http.ResponseWriter, r *http.Request) {
		if forcedError(w, r) {
			return
		}
		fullName := strings.TrimPrefix(r.URL.Path, "/repos/")

		switch r.Method {
		case http.MethodGet:
			repo, ok := config.Repos[fullName]
			if !ok {
				notFound(w)
				return
			}
			writeJSON(w, http.StatusOK, repo)

		case http.MethodPatch:
			var update github.Repository
			if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			config.PatchedRepos[fullName] = &update
			config.PatchCalls = append(config.PatchCalls, fullName)

			repo, ok := config.Repos[fullName]
			if !ok {
				writeJSON(w, http.StatusOK, &update)
				return
			}
			if update.SquashMergeCommitTitle != nil {
				repo.SquashMergeCommitTitle = update.SquashMergeCommitTitle
			}
			if update.SquashMergeCommitMessage != nil {
				repo.SquashMergeCommitMessage = update.SquashMergeCommitMessage
			}
			if update.MergeCommitTitle != nil {
				repo.MergeCommitTitle = update.MergeCommitTitle
			}
			if update.MergeCommitMessage != nil {
				repo.MergeCommitMessage = update.MergeCommitMessage
			}
			writeJSON(w, http.StatusOK, repo)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) *github.Client {
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL
	return client
}
