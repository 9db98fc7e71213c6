package sdk

// Stable abort symbols shared by every contract. Abort messages start with
// one of these so failures stay classifiable across the platform.
const (
	ErrNotAuthorized        = "ERR_NOT_AUTHORIZED"
	ErrNotFound             = "ERR_NOT_FOUND"
	ErrInvalidData          = "ERR_INVALID_DATA"
	ErrLaunchpadExists      = "ERR_LAUNCHPAD_EXISTS"
	ErrAlreadyJoined        = "ERR_ALREADY_JOINED"
	ErrAlreadyClaimed       = "ERR_ALREADY_CLAIMED"
	ErrInvalidCaller        = "ERR_INVALID_CALLER"
	ErrCompetitionActive    = "ERR_COMPETITION_ACTIVE"
	ErrCompetitionNotActive = "ERR_COMPETITION_NOT_ACTIVE"
	ErrCompetitionEnded     = "ERR_COMPETITION_ENDED"
	ErrWrongPhase           = "ERR_WRONG_PHASE"
	ErrNotOptedIn           = "ERR_NOT_OPTED_IN"
	ErrInsufficientFunds    = "ERR_INSUFFICIENT_FUNDS"
)
