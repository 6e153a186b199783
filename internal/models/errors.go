package models

import "errors"

// Sentinel errors for the member registry. Callers match them with errors.Is;
// every layer that detects one of these conditions returns the same sentinel
// so the HTTP layer sees one consistent kind regardless of which layer caught
// it (the identification race in particular can be caught by the service
// pre-check or by the database constraint).
var (
	// ErrMemberNotFound is returned when the referenced id or identification
	// does not exist in the registry.
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateIdentification is returned when a create or update would
	// register an identification that already belongs to another member.
	ErrDuplicateIdentification = errors.New("identification already registered")

	// ErrActiveAccounts blocks deletion of a member that still holds active
	// accounts in the accounts service.
	ErrActiveAccounts = errors.New("member has active accounts")

	// ErrAccountsUnavailable is returned when the accounts service cannot be
	// reached at all. Deletion is refused: absence of active accounts must be
	// positively confirmed, never assumed.
	ErrAccountsUnavailable = errors.New("accounts service unavailable")

	// ErrAccountsProtocol is returned when the accounts service answers with
	// an unexpected status or a malformed payload. Treated like
	// ErrAccountsUnavailable for the purpose of blocking deletion.
	ErrAccountsProtocol = errors.New("unexpected accounts service response")
)
