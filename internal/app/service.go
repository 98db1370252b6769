package app

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mock/githubcli.go -package mock github.com/m-zajac/ghuser/internal/app GithubClient

// GithubClient returns details about github users.
type GithubClient interface {
	UserByLogin(ctx context.Context, login string) (User, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
}

// NewService creates new Service instance
func NewService(githubClient GithubClient, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
	}
}

// UserByLogin returns public profile of github user with given login.
// Makes exactly one call to github client, errors are not retried.
func (s *Service) UserByLogin(ctx context.Context, login string) (User, error) {
	if login == "" {
		return User{}, InvalidRequestError("login cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.githubClient.UserByLogin(ctx, login)
	if err != nil {
		return User{}, fmt.Errorf("retrieving user %s: %w", login, err)
	}

	return user, nil
}
