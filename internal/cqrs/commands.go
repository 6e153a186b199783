package cqrs

type CreateMemberCommand struct {
	Identification     string
	IdentificationType string
	Names              string
	Surnames           string
	Email              string
	Phone              string
	Address            string
}

type UpdateMemberCommand struct {
	MemberID           string
	Identification     string
	IdentificationType string
	Names              string
	Surnames           string
	Email              string
	Phone              string
	Address            string
	Active             bool
}

type DeleteMemberCommand struct {
	MemberID string
}
