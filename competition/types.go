package competition

import "startex/sdk"

// Competition lifecycle statuses. Transitions are admin-driven.
const (
	StatusUpcoming uint64 = 0
	StatusActive   uint64 = 1
	StatusEnded    uint64 = 2
)

// Payout percentages for ranks 1 through 3.
var rankPayoutPct = [4]uint64{0, 50, 30, 20}

// Competition is one time-boxed contest with a fixed prize pool.
type Competition struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	StartTime       int64  `json:"start_time"`
	EndTime         int64  `json:"end_time"`
	Status          uint64 `json:"status"`
	TotalPrizePool  uint64 `json:"total_prize_pool"`
	MaxParticipants uint64 `json:"max_participants"`
	EntryFee        uint64 `json:"entry_fee"`
}

// Participant is one startup's entry in one competition. The owner address
// is captured at join time and payouts go there regardless of later registry
// state.
type Participant struct {
	StartupOwner  sdk.Address `json:"startup_owner"`
	JoinedAt      int64       `json:"joined_at"`
	Score         uint64      `json:"score"`
	Rank          uint64      `json:"rank"`
	RewardClaimed bool        `json:"reward_claimed"`
}

// Results records the podium once a competition is finalized.
type Results struct {
	FirstPlace         uint64 `json:"first_place"`
	SecondPlace        uint64 `json:"second_place"`
	ThirdPlace         uint64 `json:"third_place"`
	RewardsDistributed bool   `json:"rewards_distributed"`
}

// Config holds the admin plus the registry this contract authorizes against.
type Config struct {
	Owner      sdk.Address `json:"owner"`
	RegistryID uint64      `json:"registry_id"`
}

type createArgs struct {
	Name            string
	Description     string
	StartTime       int64
	EndTime         int64
	MaxParticipants uint64
	EntryFee        uint64
}

type joinArgs struct {
	CompetitionID uint64
	StartupID     uint64
}

type statusArgs struct {
	CompetitionID uint64
	Status        uint64
}

type participantScoreArgs struct {
	CompetitionID uint64
	StartupID     uint64
	Score         uint64
}

type finalizeArgs struct {
	CompetitionID uint64
	First         uint64
	Second        uint64
	Third         uint64
}
