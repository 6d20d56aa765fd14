// Package models defines the domain entities shared by the state layer,
// the persistence snapshots, and the remote directory client. JSON tags
// match both the persisted snapshot shapes and the directory payloads.
package models

// User is a member of the remote user directory. It is set wholesale on
// login and never mutated afterwards.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

type Company struct {
	Name string `json:"name"`
}
