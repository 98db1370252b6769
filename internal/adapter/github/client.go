package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/m-zajac/ghuser/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns details about github users.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	userAgent string

	userResponseMaxSize int64
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// Github rejects requests without user agent, so userAgent should not be empty.
func NewClient(doer HTTPDoer, address string, userAgent string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		userAgent: userAgent,

		userResponseMaxSize: 1024 * 1024,
	}

	return &c
}

// UserByLogin returns public profile of user with given login.
// Non 2xx response is reported as app.UserNotFoundError.
func (c *Client) UserByLogin(ctx context.Context, login string) (app.User, error) {
	if login == "" {
		return app.User{}, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(login))
	if err != nil {
		return app.User{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return app.User{}, fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return app.User{}, app.TransportError{Err: fmt.Errorf("doing http request: %w", err)}
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return app.User{}, app.UserNotFoundError{
			Login:      login,
			StatusCode: resp.StatusCode,
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.userResponseMaxSize))
	if err != nil {
		return app.User{}, app.TransportError{Err: fmt.Errorf("reading http response body: %w", err)}
	}

	var userResp userResponse
	if err := json.Unmarshal(b, &userResp); err != nil {
		return app.User{}, app.DecodeError{Err: fmt.Errorf("unmarshalling response: %w", err)}
	}
	user, err := userResp.ToUser()
	if err != nil {
		return app.User{}, app.DecodeError{Err: err}
	}

	return user, nil
}
