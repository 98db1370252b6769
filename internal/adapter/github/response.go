package github

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghuser/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// userResponse holds the subset of /users/{login} fields used by the app.
// Pointers tell missing and null fields apart from zero values.
type userResponse struct {
	Login       *string `json:"login"`
	Name        *string `json:"name"`
	ID          *uint64 `json:"id"`
	Followers   *uint64 `json:"followers"`
	PublicRepos *uint64 `json:"public_repos"`
}

func (r userResponse) ToUser() (app.User, error) {
	var missing []string
	if r.Login == nil {
		missing = append(missing, "login")
	}
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.ID == nil {
		missing = append(missing, "id")
	}
	if r.Followers == nil {
		missing = append(missing, "followers")
	}
	if r.PublicRepos == nil {
		missing = append(missing, "public_repos")
	}
	if len(missing) > 0 {
		return app.User{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	return app.User{
		Login:       *r.Login,
		Name:        *r.Name,
		ID:          *r.ID,
		Followers:   *r.Followers,
		PublicRepos: *r.PublicRepos,
	}, nil
}
