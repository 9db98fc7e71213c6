package competition

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

// CreateCompetition opens a new contest. Admin only. The accompanying
// payment to the contract becomes the prize pool and is never increased.
func CreateCompetition(payload *string) *string {
	requireContractOwner()
	args := decodeCreateArgs(payload)
	if args.StartTime >= args.EndTime {
		sdk.Abort(sdk.ErrInvalidData + ": start time must precede end time")
	}
	env := sdk.GetEnv()
	pay := env.PaymentTo(env.SelfAddress())
	if pay == nil {
		sdk.Abort(sdk.ErrInvalidData + ": prize pool payment missing")
	}

	id := codec.NextID(competitionCountKey)
	saveCompetition(&Competition{
		ID:              id,
		Name:            args.Name,
		Description:     args.Description,
		StartTime:       args.StartTime,
		EndTime:         args.EndTime,
		Status:          StatusUpcoming,
		TotalPrizePool:  pay.Amount,
		MaxParticipants: args.MaxParticipants,
		EntryFee:        args.EntryFee,
	})
	sdk.Log(fmt.Sprintf("cmp-create|id:%d|pool:%d|fee:%d", id, pay.Amount, args.EntryFee))
	return codec.StrPtr(codec.UInt64ToString(id))
}

// JoinCompetition enters a startup into an upcoming competition. The entry
// fee flows to the platform owner, not the contract. Ownership of the
// startup is verified through the registry contract.
func JoinCompetition(payload *string) *string {
	cfg := requireInitialized()
	args := decodeJoinArgs(payload)
	comp := mustLoadCompetition(args.CompetitionID)
	switch comp.Status {
	case StatusUpcoming:
	case StatusActive:
		sdk.Abort(sdk.ErrCompetitionActive + ": competition already started")
	default:
		sdk.Abort(sdk.ErrCompetitionEnded + ": competition already ended")
	}

	env := sdk.GetEnv()
	pay := env.PaymentTo(cfg.Owner)
	if pay == nil || pay.Amount != comp.EntryFee {
		sdk.Abort(sdk.ErrInvalidData + ": entry fee must be paid to the platform owner")
	}
	if _, err := loadParticipant(args.CompetitionID, args.StartupID); err == nil {
		sdk.Abort(fmt.Sprintf("%s: startup %d", sdk.ErrAlreadyJoined, args.StartupID))
	}

	caller := env.Sender.Address
	check := caller.String() + "|" + codec.UInt64ToString(args.StartupID)
	ret := sdk.ContractCall(cfg.RegistryID, "is_startup_owner", check)
	if ret == nil || *ret != "true" {
		sdk.Abort(fmt.Sprintf("%s: caller does not own startup %d", sdk.ErrInvalidCaller, args.StartupID))
	}

	saveParticipant(args.CompetitionID, args.StartupID, &Participant{
		StartupOwner: caller,
		JoinedAt:     env.Timestamp,
	})
	sdk.Log(fmt.Sprintf("cmp-join|id:%d|sid:%d|owner:%s", args.CompetitionID, args.StartupID, caller))
	return codec.StrPtr(codec.BoolString(true))
}

// UpdateStatus overwrites the lifecycle status. Admin only; the caller is
// responsible for advancing in order.
func UpdateStatus(payload *string) *string {
	requireContractOwner()
	args := decodeStatusArgs(payload)
	comp := mustLoadCompetition(args.CompetitionID)
	comp.Status = args.Status
	saveCompetition(comp)
	sdk.Log(fmt.Sprintf("cmp-status|id:%d|status:%d", args.CompetitionID, args.Status))
	return codec.StrPtr(codec.BoolString(true))
}

// UpdateParticipantScore overwrites one participant's score. Admin only.
// Rank is untouched; only finalization assigns ranks.
func UpdateParticipantScore(payload *string) *string {
	requireContractOwner()
	args := decodeParticipantScoreArgs(payload)
	p := mustLoadParticipant(args.CompetitionID, args.StartupID)
	p.Score = args.Score
	saveParticipant(args.CompetitionID, args.StartupID, p)
	sdk.Log(fmt.Sprintf("cmp-score|id:%d|sid:%d|score:%d", args.CompetitionID, args.StartupID, args.Score))
	return nil
}

// FinalizeCompetition assigns ranks 1 to 3 to the named participants,
// records the podium, and moves the competition to Ended. All three winners
// must already be participants.
func FinalizeCompetition(payload *string) *string {
	requireContractOwner()
	args := decodeFinalizeArgs(payload)
	comp := mustLoadCompetition(args.CompetitionID)
	if comp.Status != StatusActive {
		sdk.Abort(sdk.ErrCompetitionNotActive + ": competition must be active to finalize")
	}

	winners := [3]uint64{args.First, args.Second, args.Third}
	for i, sid := range winners {
		p := mustLoadParticipant(args.CompetitionID, sid)
		p.Rank = uint64(i + 1)
		saveParticipant(args.CompetitionID, sid, p)
	}

	saveResults(args.CompetitionID, &Results{
		FirstPlace:  args.First,
		SecondPlace: args.Second,
		ThirdPlace:  args.Third,
	})
	comp.Status = StatusEnded
	saveCompetition(comp)
	sdk.Log(fmt.Sprintf("cmp-final|id:%d|1:%d|2:%d|3:%d", args.CompetitionID, args.First, args.Second, args.Third))
	return codec.StrPtr(codec.BoolString(true))
}

// ClaimReward pays a winner's share of the prize pool to the owner address
// captured at join time. Anyone may trigger the claim; the recipient is
// fixed by the participant record. Exactly once per participant.
func ClaimReward(payload *string) *string {
	requireInitialized()
	args := decodeJoinArgs(payload)
	comp := mustLoadCompetition(args.CompetitionID)
	if comp.Status != StatusEnded {
		sdk.Abort(sdk.ErrWrongPhase + ": competition not ended")
	}
	p := mustLoadParticipant(args.CompetitionID, args.StartupID)
	if p.RewardClaimed {
		sdk.Abort(fmt.Sprintf("%s: startup %d", sdk.ErrAlreadyClaimed, args.StartupID))
	}
	if p.Rank < 1 || p.Rank > 3 {
		sdk.Abort(sdk.ErrInvalidData + ": not a winner")
	}

	prize := comp.TotalPrizePool * rankPayoutPct[p.Rank] / 100
	sdk.Pay(p.StartupOwner, prize)
	p.RewardClaimed = true
	saveParticipant(args.CompetitionID, args.StartupID, p)
	sdk.Log(fmt.Sprintf("cmp-claim|id:%d|sid:%d|rank:%d|prize:%d", args.CompetitionID, args.StartupID, p.Rank, prize))
	return codec.StrPtr(codec.UInt64ToString(prize))
}

// GetCompetition returns the record as JSON.
func GetCompetition(payload *string) *string {
	id := decodeCompetitionIDArg(payload)
	comp := mustLoadCompetition(id)
	return codec.StrPtr(codec.ToJSON(comp, "competition"))
}

// GetParticipant returns one entry as JSON.
func GetParticipant(payload *string) *string {
	args := decodeJoinArgs(payload)
	p := mustLoadParticipant(args.CompetitionID, args.StartupID)
	return codec.StrPtr(codec.ToJSON(p, "participant"))
}
