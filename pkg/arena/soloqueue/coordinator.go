// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
	"github.com/AccelByte/extend-solo-arena/pkg/envelope"
	"github.com/AccelByte/extend-solo-arena/pkg/metrics"
)

// QueueCoordinator validates a join request against current player, team
// and queue state, then performs the single all-or-nothing registration
// step. Checks run in a fixed order and short-circuit on the first failure;
// no partial registration is ever created.
type QueueCoordinator struct {
	cfg      *config.Config
	teams    arena.TeamRegistry
	bgs      arena.BattlegroundManager
	brackets arena.BracketLookup
	notify   arena.Notifier
	remap    *SlotRemapper
	metrics  metrics.SoloArenaMetrics
}

func NewQueueCoordinator(
	cfg *config.Config,
	teams arena.TeamRegistry,
	bgs arena.BattlegroundManager,
	brackets arena.BracketLookup,
	notify arena.Notifier,
	remap *SlotRemapper,
	m metrics.SoloArenaMetrics,
) *QueueCoordinator {
	return &QueueCoordinator{
		cfg:      cfg,
		teams:    teams,
		bgs:      bgs,
		brackets: brackets,
		notify:   notify,
		remap:    remap,
		metrics:  m,
	}
}

// JoinQueue registers the player into the solo arena queue. On failure the
// returned error identifies the first check that did not pass and the
// player's state is unchanged.
func (c *QueueCoordinator) JoinQueue(scope *envelope.Scope, player arena.Player, rated bool) error {
	if int(player.Level()) < c.cfg.MinLevel {
		return c.reject(rated, ErrLevelTooLow)
	}

	if player.InBattleground() {
		return c.reject(rated, ErrInBattleground)
	}

	bg, ok := c.bgs.Template(arena.BattlegroundTypeAllArenas)
	if !ok {
		// Host data integrity problem, not user error.
		scope.Log.WithField("bgType", arena.BattlegroundTypeAllArenas).
			Error("battleground template (all arenas) not found")
		return c.reject(rated, ErrTemplateMissing)
	}

	if c.bgs.IsDisabled(arena.BattlegroundTypeAllArenas) {
		return c.reject(rated, ErrFormatDisabled)
	}

	bracket, ok := c.brackets.BracketByLevel(bg.MapID, player.Level())
	if !ok {
		return c.reject(rated, ErrNoBracket)
	}

	if player.InQueueForType(arena.QueueTypeSolo) {
		return c.reject(rated, ErrAlreadyQueued)
	}

	if !player.HasFreeQueueSlot() {
		return c.reject(rated, ErrNoFreeSlot)
	}

	reg := arena.QueueRegistration{
		QueueType: arena.QueueTypeSolo,
		Rated:     rated,
	}

	if rated {
		slot := c.remap.SlotFor(arena.CategorySolo, 0)
		team, ok := c.teams.TeamByID(player.TeamID(slot))
		if !ok {
			c.notify.SendNotInTeam(player, arena.CategorySolo)
			return c.reject(rated, ErrNoTeam)
		}

		rating := team.Stats.Rating
		// A zero rating makes the matchmaker treat the group as unrated.
		if rating == 0 {
			rating = 1
		}

		reg.TeamRating = rating
		reg.MatchmakerRating = rating
		reg.TeamID = team.ID
	}

	queue := c.bgs.Queue(arena.QueueTypeSolo)
	queue.SetFormat(arena.BattlegroundTypeAllArenas, arena.CategorySolo)
	bg.SetRated(rated)
	bg.SetMaxPlayersPerTeam(c.remap.MaxPlayersFor(arena.CategorySolo, arena.SoloTeamSize))

	info := queue.AddGroup(player, bracket, reg)
	avgWait := queue.AverageWaitTime(info)
	queueSlot := player.AddQueueID(arena.QueueTypeSolo)

	c.notify.SendQueueStatus(player, arena.QueueStatus{
		QueueType:    arena.QueueTypeSolo,
		QueueSlot:    queueSlot,
		Category:     arena.CategorySolo,
		Rated:        rated,
		WaitEstimate: avgWait,
	})

	c.bgs.ScheduleQueueUpdate(reg.MatchmakerRating, arena.QueueTypeSolo, bracket.ID)

	scope.Log.WithField("player", player.ID()).
		WithField("rated", rated).
		WithField("avgWait", avgWait).
		Info("player joined solo arena queue")
	c.metrics.QueueJoined(rated, avgWait)

	return nil
}

func (c *QueueCoordinator) reject(rated bool, err error) error {
	c.metrics.JoinRejected(rated, ReasonForError(err))
	return err
}
