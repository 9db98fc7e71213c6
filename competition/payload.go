package competition

import (
	"strings"

	"startex/codec"
	"startex/sdk"
)

// decodeCreateArgs unpacks the pipe-delimited creation payload:
// name|description|start_time|end_time|max_participants|entry_fee
func decodeCreateArgs(payload *string) *createArgs {
	raw := codec.UnwrapPayload(payload, "competition payload missing")
	parts := codec.SplitPayload(raw)

	args := &createArgs{
		Name:            strings.TrimSpace(parts.Get(0)),
		Description:     strings.TrimSpace(parts.Get(1)),
		StartTime:       codec.ParseInt64Field(parts.Get(2), "start time"),
		EndTime:         codec.ParseInt64Field(parts.Get(3), "end time"),
		MaxParticipants: codec.ParseUintField(parts.Get(4), "max participants"),
		EntryFee:        codec.ParseUintField(parts.Get(5), "entry fee"),
	}
	if args.Name == "" {
		sdk.Abort(sdk.ErrInvalidData + ": name required")
	}
	return args
}

// decodeJoinArgs unpacks: competition_id|startup_id
func decodeJoinArgs(payload *string) *joinArgs {
	raw := codec.UnwrapPayload(payload, "join payload missing")
	parts := codec.SplitPayload(raw)

	return &joinArgs{
		CompetitionID: codec.ParseUintField(parts.Get(0), "competition id"),
		StartupID:     codec.ParseUintField(parts.Get(1), "startup id"),
	}
}

// decodeStatusArgs unpacks: competition_id|new_status
func decodeStatusArgs(payload *string) *statusArgs {
	raw := codec.UnwrapPayload(payload, "status payload missing")
	parts := codec.SplitPayload(raw)

	args := &statusArgs{
		CompetitionID: codec.ParseUintField(parts.Get(0), "competition id"),
		Status:        codec.ParseUintField(parts.Get(1), "status"),
	}
	if args.Status > StatusEnded {
		sdk.Abort(sdk.ErrInvalidData + ": unknown status")
	}
	return args
}

// decodeParticipantScoreArgs unpacks: competition_id|startup_id|score
func decodeParticipantScoreArgs(payload *string) *participantScoreArgs {
	raw := codec.UnwrapPayload(payload, "score payload missing")
	parts := codec.SplitPayload(raw)

	return &participantScoreArgs{
		CompetitionID: codec.ParseUintField(parts.Get(0), "competition id"),
		StartupID:     codec.ParseUintField(parts.Get(1), "startup id"),
		Score:         codec.ParseUintField(parts.Get(2), "score"),
	}
}

// decodeFinalizeArgs unpacks: competition_id|first|second|third
func decodeFinalizeArgs(payload *string) *finalizeArgs {
	raw := codec.UnwrapPayload(payload, "finalize payload missing")
	parts := codec.SplitPayload(raw)

	return &finalizeArgs{
		CompetitionID: codec.ParseUintField(parts.Get(0), "competition id"),
		First:         codec.ParseUintField(parts.Get(1), "first place"),
		Second:        codec.ParseUintField(parts.Get(2), "second place"),
		Third:         codec.ParseUintField(parts.Get(3), "third place"),
	}
}

func decodeCompetitionIDArg(payload *string) uint64 {
	raw := codec.UnwrapPayload(payload, "competition id missing")
	return codec.ParseUintField(raw, "competition id")
}
