// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package arena

import (
	"github.com/AccelByte/extend-solo-arena/pkg/config"
	"github.com/AccelByte/extend-solo-arena/pkg/envelope"
)

// The hook interfaces below are implemented by the extension and invoked by
// the host. Each is a narrow capability; a single composition root wires
// them together. Hooks that override a host default return the caller's
// default unchanged when the queried category/slot is not the solo one.

// ConfigReloadHandler is notified after the host (re)loads configuration.
type ConfigReloadHandler interface {
	OnConfigLoad(scope *envelope.Scope, cfg *config.Config, reload bool)
}

// PlayerRatingHooks resolve per-player team identity and rating for the
// solo slot.
type PlayerRatingHooks interface {
	TeamIDForSlot(player Player, slot uint8, def uint32) uint32
	PersonalRatingForSlot(player Player, slot uint8, def uint32) uint32
	// MaxPersonalRatingForVendor raises the max personal rating across
	// slots below minSlot when vendor rating is enabled.
	MaxPersonalRatingForVendor(player Player, minSlot uint32, current uint32) uint32
}

// TeamTypeHooks are the generic team-size extension points the solo
// category intercepts.
type TeamTypeHooks interface {
	SlotFor(category TeamCategory, def uint8) uint8
	QueueTypeFor(category TeamCategory, def QueueTypeID) QueueTypeID
	CategoryFor(queueType QueueTypeID, def TeamCategory) TeamCategory
	MaxPlayersFor(category TeamCategory, def uint32) uint32
	PointsMultiplier(category TeamCategory, def float64) float64
}

// GossipHandler serves the player-facing dialog.
type GossipHandler interface {
	OnGossipHello(scope *envelope.Scope, player Player) []MenuOption
	OnGossipSelect(scope *envelope.Scope, player Player, action ActionID) []MenuOption
}

// ActionID identifies a dialog menu action.
type ActionID uint32

const (
	ActionCreateTeam  ActionID = 1
	ActionJoinRated   ActionID = 2
	ActionLeaveQueue  ActionID = 3
	ActionShowStats   ActionID = 4
	ActionDisbandTeam ActionID = 5
	ActionJoinUnrated ActionID = 20
)

// MenuOption is one selectable dialog entry. Confirm carries a confirmation
// prompt for destructive or paid actions, with Cost shown alongside it.
type MenuOption struct {
	Action  ActionID
	Text    string
	Confirm string
	Cost    int64
}
