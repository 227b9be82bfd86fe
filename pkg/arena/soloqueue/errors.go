// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"errors"

	"github.com/AccelByte/extend-solo-arena/pkg/constants"
)

// Queue join and team creation outcomes. All are definite synchronous
// results; nothing here is retried.
var (
	ErrLevelTooLow        = errors.New("player level below configured minimum")
	ErrInBattleground     = errors.New("player is already inside a battleground")
	ErrTemplateMissing    = errors.New("battleground template (all arenas) not found")
	ErrFormatDisabled     = errors.New("solo arena format is disabled")
	ErrNoBracket          = errors.New("no bracket for player level")
	ErrAlreadyQueued      = errors.New("player already occupies the solo arena queue")
	ErrNoFreeSlot         = errors.New("player has no free battleground queue slot")
	ErrNoTeam             = errors.New("rated join requires a solo arena team")
	ErrForbiddenTalents   = errors.New("too many talent points in a forbidden tree")
	ErrSlotUnavailable    = errors.New("solo arena slot is not configured")
	ErrAlreadyOwnsTeam    = errors.New("player already owns a solo arena team")
	ErrNameSpaceExhausted = errors.New("no free team name candidate left")
)

var errorReasonMap = map[error]string{
	ErrLevelTooLow:        constants.ReasonLevelTooLow,
	ErrInBattleground:     constants.ReasonInBattleground,
	ErrTemplateMissing:    constants.ReasonTemplateMissing,
	ErrFormatDisabled:     constants.ReasonFormatDisabled,
	ErrNoBracket:          constants.ReasonNoBracket,
	ErrAlreadyQueued:      constants.ReasonAlreadyQueued,
	ErrNoFreeSlot:         constants.ReasonNoFreeSlot,
	ErrNoTeam:             constants.ReasonNoTeam,
	ErrForbiddenTalents:   constants.ReasonForbiddenTalents,
	ErrSlotUnavailable:    constants.ReasonSlotUnavailable,
	ErrAlreadyOwnsTeam:    constants.ReasonAlreadyOwnsTeam,
	ErrNameSpaceExhausted: constants.ReasonNameSpaceExhausted,
}

// ReasonForError returns the metric/log reason label for an outcome error.
func ReasonForError(err error) string {
	reason, ok := errorReasonMap[err]
	if !ok {
		return constants.ReasonUnknown
	}
	return reason
}
