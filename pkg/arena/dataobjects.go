// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package arena declares the data objects and collaborator contracts the
// solo arena extension shares with its host battleground/team subsystem.
package arena

import (
	"time"

	"github.com/AccelByte/extend-solo-arena/pkg/constants"
)

// PlayerID identifies a player across the host subsystems.
type PlayerID string

// TeamCategory identifies a team-size format understood by the host.
type TeamCategory uint8

const (
	Category2v2 TeamCategory = 2
	Category3v3 TeamCategory = 3
	Category5v5 TeamCategory = 5

	// CategorySolo is the one-player-per-side category this extension layers
	// on the host's generic team machinery.
	CategorySolo TeamCategory = 1
)

// SoloTeamSize is the per-side capacity of the solo category. It is fixed
// and never read from configuration.
const SoloTeamSize uint32 = 1

// QueueTypeID identifies a battleground queue.
type QueueTypeID uint8

const (
	QueueTypeNone QueueTypeID = 0
	QueueType2v2  QueueTypeID = 8
	QueueType3v3  QueueTypeID = 9
	QueueType5v5  QueueTypeID = 10

	// QueueTypeSolo is reserved one past the highest built-in arena queue type.
	QueueTypeSolo = QueueType5v5 + 1
)

// BattlegroundTypeID identifies a battleground template.
type BattlegroundTypeID uint32

// BattlegroundTypeAllArenas is the host's generic arena template used for
// every arena format.
const BattlegroundTypeAllArenas BattlegroundTypeID = 6

// BracketID identifies a level bracket within a battleground map.
type BracketID uint8

// Bracket groups players of comparable progression for matchmaking.
type Bracket struct {
	ID       BracketID
	MinLevel uint8
	MaxLevel uint8
}

// TeamStats is the persistent rating record of an arena team.
type TeamStats struct {
	Rating      uint32
	Rank        uint32
	SeasonGames uint16
	SeasonWins  uint16
	WeekGames   uint16
	WeekWins    uint16
}

// TeamAppearance holds the emblem configuration a team is registered with.
type TeamAppearance struct {
	BackgroundColor uint32
	EmblemStyle     uint32
	EmblemColor     uint32
	BorderStyle     uint32
	BorderColor     uint32
}

// DefaultAppearance returns the canonical appearance for provisioned solo teams.
func DefaultAppearance() TeamAppearance {
	return TeamAppearance{
		BackgroundColor: constants.DefaultBackgroundColor,
		EmblemStyle:     constants.DefaultEmblemStyle,
		EmblemColor:     constants.DefaultEmblemColor,
		BorderStyle:     constants.DefaultBorderStyle,
		BorderColor:     constants.DefaultBorderColor,
	}
}

// ArenaTeam is a named team owned by the host team registry after creation.
type ArenaTeam struct {
	ID         uint32
	Name       string
	CaptainID  PlayerID
	Category   TeamCategory
	Appearance TeamAppearance
	Stats      TeamStats
}

// QueueRegistration is the ephemeral record submitted once per successful
// queue join. The queue subsystem owns it after submission.
type QueueRegistration struct {
	QueueType        QueueTypeID
	Rated            bool
	TeamRating       uint32
	MatchmakerRating uint32
	TeamID           uint32
}

// GroupQueueInfo is the queue membership handle returned by AddGroup.
type GroupQueueInfo struct {
	Registration QueueRegistration
	Bracket      BracketID
	JoinedAt     time.Time
}

// QueueStatus is the "waiting in queue" notification payload sent to the
// player after a successful join.
type QueueStatus struct {
	QueueType    QueueTypeID
	QueueSlot    uint8
	Category     TeamCategory
	Rated        bool
	WaitEstimate time.Duration
}

// BattlegroundTemplate is the host's template record for a battleground
// type. The coordinator forces Rated and per-side capacity to match each
// solo request before enqueueing.
type BattlegroundTemplate struct {
	BGType            BattlegroundTypeID
	MapID             uint32
	Rated             bool
	MaxPlayersPerTeam uint32
}

func (t *BattlegroundTemplate) SetRated(rated bool) {
	t.Rated = rated
}

func (t *BattlegroundTemplate) SetMaxPlayersPerTeam(max uint32) {
	t.MaxPlayersPerTeam = max
}

// TalentEntry is one talent line from the host catalog: the tab (category)
// it belongs to and the spell id of each unlockable rank. Unused rank slots
// hold zero.
type TalentEntry struct {
	TabID        uint32
	RankSpellIDs [constants.MaxTalentRank]uint32
}
