package events

import "time"

// Event types
const (
	MemberCreated = "member.created"
	MemberUpdated = "member.updated"
	MemberDeleted = "member.deleted"
)

// Stream names
const (
	MemberEventsStream = "member.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Member events
type MemberCreatedEvent struct {
	MemberID       string `json:"memberId"`
	Identification string `json:"identification"`
	Names          string `json:"names"`
	Surnames       string `json:"surnames"`
}

type MemberUpdatedEvent struct {
	MemberID       string `json:"memberId"`
	Identification string `json:"identification"`
	Names          string `json:"names"`
	Surnames       string `json:"surnames"`
}

type MemberDeletedEvent struct {
	MemberID       string `json:"memberId"`
	Identification string `json:"identification"`
}
