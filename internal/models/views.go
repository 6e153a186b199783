package models

import "time"

// MemberView is the read-optimised projection of a member. It currently
// mirrors the write model field for field but is kept separate so the Redis
// read model can grow derived fields without touching the write store.
type MemberView struct {
	ID                 string    `json:"id"`
	Identification     string    `json:"identification"`
	IdentificationType string    `json:"identificationType"`
	Names              string    `json:"names"`
	Surnames           string    `json:"surnames"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Address            string    `json:"address,omitempty"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"createdTimestamp"`
	UpdatedAt          time.Time `json:"updatedTimestamp"`
}
