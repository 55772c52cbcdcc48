package entity

import "time"

// User is the identity anchor. Rows are created by the external auth
// collaborator at signup; this core never mutates them. Deleting a user
// cascades to its campaigns and leads.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
