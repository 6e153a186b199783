package models

import "time"

// Identification types accepted by the cooperative. An individual member is
// registered with a 10-digit national ID, an organization with a 13-digit
// tax registration number.
const (
	IdentificationIndividual   = "INDIVIDUAL"
	IdentificationOrganization = "ORGANIZATION"
)

// Member is the write model for a cooperative member. Identification is
// unique across the whole registry; the members table enforces it with a
// unique constraint in addition to the service-level pre-check.
type Member struct {
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

// AccountSummary is the slice of the accounts service response this service
// consumes. Only presence matters for the deletion check; balances and other
// attributes are never decoded.
type AccountSummary struct {
	ID   string `json:"id"`
	Type string `json:"tipo,omitempty"`
}
