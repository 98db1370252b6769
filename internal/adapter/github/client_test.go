package github

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/m-zajac/ghuser/internal/app"
	"github.com/m-zajac/ghuser/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UserByLogin(t *testing.T) {
	t.Parallel()

	validUserJSON := `{"login":"octocat","name":"The Octocat","id":1,"followers":100,"public_repos":8`
	// Valid JSON, only the padding makes it exceed the size limit.
	paddedUserJSON := func(size int) []byte {
		padding := bytes.Repeat([]byte(" "), size-len(validUserJSON)-1)
		return []byte(validUserJSON + string(padding) + "}")
	}

	timeoutErr := &url.Error{
		Op:  "Get",
		URL: "https://fake/users/octocat",
		Err: context.DeadlineExceeded,
	}

	tests := []struct {
		name         string
		doer         *mock.HTTPDoer
		login        string
		want         app.User
		errPredicate func(error) bool
		wantAPICalls int
		wantPath     string
	}{
		{
			name:         "empty login",
			login:        "",
			want:         app.User{},
			errPredicate: app.IsInvalidRequestError,
			wantAPICalls: 0,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{
						"login": "octocat",
						"id": 1,
						"node_id": "MDQ6VXNlcjE=",
						"type": "User",
						"site_admin": false,
						"name": "The Octocat",
						"company": "@github",
						"public_repos": 8,
						"public_gists": 8,
						"followers": 100,
						"following": 9
					}`),
				},
			},
			login: "octocat",
			want: app.User{
				Login:       "octocat",
				Name:        "The Octocat",
				ID:          1,
				Followers:   100,
				PublicRepos: 8,
			},
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
				Bodies:   [][]byte{[]byte(`{"message":"Not Found"}`)},
			},
			login:        "nobody",
			want:         app.User{},
			errPredicate: app.IsUserNotFoundError,
			wantAPICalls: 1,
			wantPath:     "/users/nobody",
		},
		{
			name: "status internal error",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			login:        "octocat",
			want:         app.User{},
			errPredicate: app.IsUserNotFoundError,
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "status ok, malformed body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"login": "octocat", "id": `)},
			},
			login:        "octocat",
			want:         app.User{},
			errPredicate: app.IsDecodeError,
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "status ok, wrong field type",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"login":"octocat","name":"The Octocat","id":"one","followers":100,"public_repos":8}`),
				},
			},
			login:        "octocat",
			want:         app.User{},
			errPredicate: app.IsDecodeError,
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "status ok, null name",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"login":"octocat","name":null,"id":1,"followers":100,"public_repos":8}`),
				},
			},
			login:        "octocat",
			want:         app.User{},
			errPredicate: app.IsDecodeError,
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "status ok, padded body within limit",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					paddedUserJSON(1024 * 1024),
				},
			},
			login: "octocat",
			want: app.User{
				Login:       "octocat",
				Name:        "The Octocat",
				ID:          1,
				Followers:   100,
				PublicRepos: 8,
			},
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "status ok, body unexpectedly large",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					paddedUserJSON(1024*1024 + 1),
				},
			},
			login:        "octocat",
			want:         app.User{},
			errPredicate: app.IsDecodeError,
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
		{
			name: "timeout",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, timeoutErr
				},
			},
			login:        "octocat",
			want:         app.User{},
			errPredicate: app.IsTransportError,
			wantAPICalls: 1,
			wantPath:     "/users/octocat",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "ghuser-test")
			got, err := c.UserByLogin(context.Background(), tt.login)
			require.Equal(t, tt.errPredicate != nil, err != nil)
			if tt.errPredicate != nil {
				assert.True(t, tt.errPredicate(err), "unexpected error class: %v", err)
			}
			assert.Equal(t, tt.want, got)

			if tt.doer == nil {
				return
			}

			require.Equal(t, tt.wantAPICalls, tt.doer.Calls())
			req := tt.doer.Requests[0]
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "fake", req.URL.Host)
			assert.Equal(t, tt.wantPath, req.URL.Path)
			checkAPIHeaders(req, t)

			for _, resp := range tt.doer.Responses {
				assert.True(t, resp.Body.(*mock.Body).Closed)
			}
		})
	}
}

func TestClient_UserByLoginEscapedPath(t *testing.T) {
	doer := &mock.HTTPDoer{Statuses: []int{http.StatusNotFound}}
	c := NewClient(doer, "https://fake", "ghuser-test")

	_, err := c.UserByLogin(context.Background(), "a/../b")
	require.True(t, app.IsUserNotFoundError(err))
	require.Equal(t, 1, doer.Calls())
	assert.Equal(t, "/users/a%2F..%2Fb", doer.Requests[0].URL.EscapedPath())
}

func TestClient_UserByLoginNotFoundSkipsDecoding(t *testing.T) {
	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusNotFound},
		Bodies:   [][]byte{make([]byte, 4096)},
	}
	c := NewClient(doer, "https://fake", "ghuser-test")

	_, err := c.UserByLogin(context.Background(), "nobody")

	var nfErr app.UserNotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, http.StatusNotFound, nfErr.StatusCode)
	assert.Equal(t, "nobody", nfErr.Login)
	// Only the drain before close touches the body.
	body := doer.Responses[0].Body.(*mock.Body)
	assert.Equal(t, 1024, body.BytesRead)
	assert.True(t, body.Closed)
}

func TestClient_UserByLoginContextCanceled(t *testing.T) {
	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		},
	}
	c := NewClient(doer, "https://fake", "ghuser-test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.UserByLogin(ctx, "octocat")
	require.True(t, app.IsTransportError(err))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, doer.Calls())
}

func checkAPIHeaders(r *http.Request, t *testing.T) {
	assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
	assert.Equal(t, "ghuser-test", r.Header.Get("User-Agent"))
	assert.Empty(t, r.Header.Get("Authorization"))
}
