package cqrs

// GetMemberQuery fetches a single member by ID.
type GetMemberQuery struct {
	MemberID string
}

// GetMemberByIdentificationQuery fetches a single member by their national
// ID or tax registration number.
type GetMemberByIdentificationQuery struct {
	Identification string
}

// ListMembersQuery fetches the whole registry. Ordering is deterministic but
// not insertion order.
type ListMembersQuery struct{}
