// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package arena

import "time"

// Player is the host's view of a connected player. All reads are O(1)
// synchronous lookups against in-memory state owned by the host; the
// extension never retains a Player across requests.
type Player interface {
	ID() PlayerID
	Name() string
	Level() uint8
	Money() int64
	ModifyMoney(delta int64)

	// ActiveSpec returns the player's currently active talent specialization.
	ActiveSpec() uint8
	// HasTalent reports whether the given rank spell is unlocked in the spec.
	HasTalent(spellID uint32, spec uint8) bool

	// TeamID returns the player's team id for an arena slot, 0 when none.
	TeamID(slot uint8) uint32

	InBattleground() bool
	InQueueForType(queueType QueueTypeID) bool
	HasFreeQueueSlot() bool
	// AddQueueID records a queue occupancy and returns the occupied slot.
	AddQueueID(queueType QueueTypeID) uint8
}

// TeamRegistry is the host's arena team store.
type TeamRegistry interface {
	TeamByID(id uint32) (*ArenaTeam, bool)
	TeamByName(name string) (*ArenaTeam, bool)
	TeamByCaptain(captain PlayerID, category TeamCategory) (*ArenaTeam, bool)
	// AddTeam registers a newly provisioned team and assigns its id.
	AddTeam(team *ArenaTeam) (uint32, error)
}

// BattlegroundQueue is one queue-type-keyed queue object of the shared
// queue subsystem.
type BattlegroundQueue interface {
	// SetFormat binds the queue to a battleground type and team category.
	SetFormat(bgType BattlegroundTypeID, category TeamCategory)
	AddGroup(player Player, bracket *Bracket, reg QueueRegistration) *GroupQueueInfo
	AverageWaitTime(info *GroupQueueInfo) time.Duration
}

// BattlegroundManager is the host's battleground/queue registry.
type BattlegroundManager interface {
	Template(bgType BattlegroundTypeID) (*BattlegroundTemplate, bool)
	Queue(queueType QueueTypeID) BattlegroundQueue
	// IsDisabled reports whether the battleground type is administratively
	// disabled.
	IsDisabled(bgType BattlegroundTypeID) bool
	// ScheduleQueueUpdate triggers the asynchronous matchmaking sweep for
	// the affected bracket.
	ScheduleQueueUpdate(matchmakerRating uint32, queueType QueueTypeID, bracket BracketID)
}

// BracketLookup resolves the skill bracket for a map and level.
type BracketLookup interface {
	BracketByLevel(mapID uint32, level uint8) (*Bracket, bool)
}

// TalentCatalog enumerates the host's talent lines.
type TalentCatalog interface {
	Entries() []TalentEntry
}

// Notifier delivers user-facing messages and status updates through the
// host's session layer.
type Notifier interface {
	SendSysMessage(player Player, message string)
	SendQueueStatus(player Player, status QueueStatus)
	SendNotInTeam(player Player, category TeamCategory)
}

// QueueOps are the host-owned leave/disband operations the dialog
// dispatches to. Both are external packet-level operations; the extension
// never mutates queue or team state for them directly.
type QueueOps interface {
	LeaveQueue(player Player, queueType QueueTypeID) error
	DisbandTeam(player Player, teamID uint32) error
}
