package competition

import "startex/sdk"

// Dispatch routes a method name to its operation.
func Dispatch(method string, payload *string) *string {
	switch method {
	case "contract_init":
		return ContractInit(payload)
	case "set_owner":
		return SetOwner(payload)
	case "create_competition":
		return CreateCompetition(payload)
	case "join_competition":
		return JoinCompetition(payload)
	case "update_status":
		return UpdateStatus(payload)
	case "update_participant_score":
		return UpdateParticipantScore(payload)
	case "finalize_competition":
		return FinalizeCompetition(payload)
	case "claim_reward":
		return ClaimReward(payload)
	case "get_competition":
		return GetCompetition(payload)
	case "get_participant":
		return GetParticipant(payload)
	default:
		sdk.Abort(sdk.ErrNotFound + ": unknown method " + method)
		return nil
	}
}
