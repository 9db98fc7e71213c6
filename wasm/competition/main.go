//go:build wasm

package main

import "startex/competition"

func main() {}

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return competition.ContractInit(payload) }

//go:wasmexport set_owner
func SetOwner(payload *string) *string { return competition.SetOwner(payload) }

//go:wasmexport create_competition
func CreateCompetition(payload *string) *string { return competition.CreateCompetition(payload) }

//go:wasmexport join_competition
func JoinCompetition(payload *string) *string { return competition.JoinCompetition(payload) }

//go:wasmexport update_status
func UpdateStatus(payload *string) *string { return competition.UpdateStatus(payload) }

//go:wasmexport update_participant_score
func UpdateParticipantScore(payload *string) *string { return competition.UpdateParticipantScore(payload) }

//go:wasmexport finalize_competition
func FinalizeCompetition(payload *string) *string { return competition.FinalizeCompetition(payload) }

//go:wasmexport claim_reward
func ClaimReward(payload *string) *string { return competition.ClaimReward(payload) }

//go:wasmexport get_competition
func GetCompetition(payload *string) *string { return competition.GetCompetition(payload) }

//go:wasmexport get_participant
func GetParticipant(payload *string) *string { return competition.GetParticipant(payload) }
