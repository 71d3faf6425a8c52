//go:build unit

package gitlab_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/xx-cli/internal/domain/entities"
	"github.com/rios0rios0/xx-cli/internal/infrastructure/repositories/gitlab"
)

func newHost(t *testing.T, mux *http.ServeMux) (*gitlab.GitLabHostRepository, string) {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	host, err := gitlab.NewGitLabHostRepositoryWithBaseURL("gitlab-token", server.URL)
	require.NoError(t, err)
	return host, server.URL
}

func TestGitLabHostRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return the current user", func(t *testing.T) {
		t.Parallel()

		// given
		var token string
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v4/user", func(w http.ResponseWriter, r *http.Request) {
			token = r.Header.Get("PRIVATE-TOKEN")
			fmt.Fprint(w, `{"id":1,"username":"tanuki"}`)
		})
		host, _ := newHost(t, mux)

		// when
		user, err := host.GetUser(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "tanuki", user.Login)
		assert.Equal(t, "gitlab-token", token)
	})

	t.Run("should list groups by full path", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v4/groups", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[{"id":7,"full_path":"acme/platform"}]`)
		})
		host, _ := newHost(t, mux)

		// when
		groups, err := host.GetOrgs(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.HostAccount{{Login: "acme/platform"}}, groups)
	})

	t.Run("should create a missing group project initialised with a README", func(t *testing.T) {
		t.Parallel()

		// given
		var body map[string]any
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v4/projects/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"404 Project Not Found"}`)
		})
		mux.HandleFunc("GET /api/v4/groups/{id}", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"id":42,"full_path":"acme"}`)
		})
		mux.HandleFunc("POST /api/v4/projects", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id":99,"name":"demo"}`)
		})
		host, _ := newHost(t, mux)

		// when
		err := host.EnsureRemoteRepo(context.Background(), "acme", "demo", entities.OwnerOrganization)

		// then
		require.NoError(t, err)
		assert.Equal(t, "demo", body["name"])
		assert.Equal(t, true, body["initialize_with_readme"])
		assert.InDelta(t, 42, body["namespace_id"], 0)
	})

	t.Run("should build the remote URL from the instance address", func(t *testing.T) {
		t.Parallel()

		// given
		host, serverURL := newHost(t, http.NewServeMux())

		// when
		remote := host.GetRemoteURL("acme", "demo")

		// then
		assert.Equal(t, serverURL+"/acme/demo.git", remote)
		assert.Equal(t, "https://gitlab.com/acme/demo.git", gitlab.NewGitLabHostRepository("t").GetRemoteURL("acme", "demo"))
	})
}
