package domain

// ClaimOutcome names the result kind of a traveler claim.
// The string values are part of the HTTP response contract.
type ClaimOutcome string

const (
	OutcomeCreated                   ClaimOutcome = "Created"
	OutcomeClaimed                   ClaimOutcome = "Claimed"
	OutcomeRejectedAlreadyOwnedByYou ClaimOutcome = "RejectedAlreadyOwnedByYou"
	OutcomeRejectedOwnedByOther      ClaimOutcome = "RejectedOwnedByOther"
	OutcomeLookupFailed              ClaimOutcome = "LookupFailed"
	OutcomeWriteFailed               ClaimOutcome = "WriteFailed"
)

// IsRejection reports whether o is one of the ownership-conflict outcomes.
func (o ClaimOutcome) IsRejection() bool {
	return o == OutcomeRejectedAlreadyOwnedByYou || o == OutcomeRejectedOwnedByOther
}

// ClaimRequest is the traveler data an agent submits to create or claim a
// traveler. Email is the sole lookup key.
type ClaimRequest struct {
	Email    string
	Name     string
	Phone    string
	Notes    string
	IsActive *bool
	Profile  Profile
}

// ClaimResult is the outcome of a claim together with the affected record.
// For Created and Claimed, User is the record after the write.
// For the two rejections, User is the existing record, unmodified.
// For LookupFailed and WriteFailed, User is the zero value.
type ClaimResult struct {
	Outcome ClaimOutcome
	User    User
}
