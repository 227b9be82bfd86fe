// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	// ForbiddenTalentPointLimit is the hard cutoff for points invested in
	// forbidden talent lines; reaching it makes the player ineligible.
	ForbiddenTalentPointLimit = 36

	// MaxTalentRank is the number of ranks a single talent line can have.
	MaxTalentRank = 5

	// TeamNameAttempts bounds the name-collision resolution loop.
	TeamNameAttempts = 100
)

// Default appearance for provisioned solo teams.
const (
	DefaultBackgroundColor = 4283124816
	DefaultEmblemStyle     = 45
	DefaultEmblemColor     = 4294242303
	DefaultBorderStyle     = 5
	DefaultBorderColor     = 4294705149
)

const (
	// Join rejection reason constants.
	ReasonLevelTooLow        = "level_too_low"
	ReasonInBattleground     = "in_battleground"
	ReasonTemplateMissing    = "template_missing"
	ReasonFormatDisabled     = "format_disabled"
	ReasonNoBracket          = "no_bracket"
	ReasonAlreadyQueued      = "already_queued"
	ReasonNoFreeSlot         = "no_free_queue_slot"
	ReasonNoTeam             = "no_team"
	ReasonForbiddenTalents   = "too_many_forbidden_talent_points"
	ReasonSlotUnavailable    = "slot_unavailable"
	ReasonAlreadyOwnsTeam    = "already_owns_team"
	ReasonNameSpaceExhausted = "name_space_exhausted"
	ReasonUnknown            = "unknown"
)
