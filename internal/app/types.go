package app

// User entity
type User struct {
	Login       string
	Name        string
	ID          uint64
	Followers   uint64
	PublicRepos uint64
}
