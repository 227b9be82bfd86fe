// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"errors"
	"fmt"

	"github.com/mitchellh/copystructure"
	"gopkg.in/typ.v4/slices"

	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
	"github.com/AccelByte/extend-solo-arena/pkg/envelope"
	"github.com/AccelByte/extend-solo-arena/pkg/metrics"
)

const (
	msgModuleDisabled   = "Solo arena is disabled."
	msgForbiddenTalents = "You can not join because you have too many talent points in a forbidden tree. (Heal / Tank)"
	msgJoinFailed       = "Something went wrong when joining the queue."
	msgTeamCreated      = "Solo arena team successfully created!"
	msgTeamDisbanded    = "Solo arena team disbanded!"
	msgAlreadyInTeam    = "You are already in a solo arena team!"
	msgConfirm          = "Are you sure?"
)

// DialogController derives the gossip menu from current player/queue state
// on every open and dispatches the selected action. No state is cached
// between invocations; recomputing from the host's ground truth after each
// action is what keeps the menu consistent.
type DialogController struct {
	cfg         *config.Config
	policy      *TalentPolicy
	coordinator *QueueCoordinator
	provisioner *TeamProvisioner
	remap       *SlotRemapper
	teams       arena.TeamRegistry
	queues      arena.QueueOps
	notify      arena.Notifier
	metrics     metrics.SoloArenaMetrics
}

func NewDialogController(
	cfg *config.Config,
	policy *TalentPolicy,
	coordinator *QueueCoordinator,
	provisioner *TeamProvisioner,
	remap *SlotRemapper,
	teams arena.TeamRegistry,
	queues arena.QueueOps,
	notify arena.Notifier,
	m metrics.SoloArenaMetrics,
) *DialogController {
	return &DialogController{
		cfg:         cfg,
		policy:      policy,
		coordinator: coordinator,
		provisioner: provisioner,
		remap:       remap,
		teams:       teams,
		queues:      queues,
		notify:      notify,
		metrics:     m,
	}
}

// OnGossipHello returns the menu for the player's current state, or nil
// when the module is disabled.
func (d *DialogController) OnGossipHello(scope *envelope.Scope, player arena.Player) []arena.MenuOption {
	if !d.cfg.Enable {
		d.notify.SendSysMessage(player, msgModuleDisabled)
		return nil
	}

	return d.buildMenu(player)
}

// OnGossipSelect dispatches a selected action and returns the recomputed
// menu, or nil when the dialog closes.
func (d *DialogController) OnGossipSelect(scope *envelope.Scope, player arena.Player, action arena.ActionID) []arena.MenuOption {
	if !d.cfg.Enable {
		return nil
	}

	// A selection can race a state change from another request; only
	// dispatch actions the current state actually offers.
	menu := d.buildMenu(player)
	idx := slices.IndexFunc(menu, func(option arena.MenuOption) bool {
		return option.Action == action
	})
	if idx < 0 {
		return menu
	}

	switch action {
	case arena.ActionCreateTeam:
		return d.handleCreateTeam(scope, player)
	case arena.ActionJoinRated:
		return d.handleJoin(scope, player, true)
	case arena.ActionJoinUnrated:
		return d.handleJoin(scope, player, false)
	case arena.ActionLeaveQueue:
		return d.handleLeaveQueue(player)
	case arena.ActionShowStats:
		d.showStatistics(scope, player)
		return d.buildMenu(player)
	case arena.ActionDisbandTeam:
		return d.handleDisband(player)
	}

	return d.buildMenu(player)
}

func (d *DialogController) buildMenu(player arena.Player) []arena.MenuOption {
	var menu []arena.MenuOption

	queued := player.InQueueForType(arena.QueueTypeSolo)
	if queued {
		menu = append(menu, arena.MenuOption{
			Action:  arena.ActionLeaveQueue,
			Text:    "Leave solo arena queue",
			Confirm: msgConfirm,
		})
	} else {
		menu = append(menu, arena.MenuOption{
			Action: arena.ActionJoinUnrated,
			Text:   "Queue for solo arena (unrated)",
		})
	}

	slot := d.remap.SlotFor(arena.CategorySolo, 0)
	if player.TeamID(slot) == 0 {
		menu = append(menu, arena.MenuOption{
			Action:  arena.ActionCreateTeam,
			Text:    "Create new solo arena team",
			Confirm: msgConfirm,
			Cost:    d.cfg.Costs,
		})
	} else {
		if !queued {
			menu = append(menu, arena.MenuOption{
				Action: arena.ActionJoinRated,
				Text:   "Queue for solo arena (rated)",
			})
			menu = append(menu, arena.MenuOption{
				Action:  arena.ActionDisbandTeam,
				Text:    "Disband solo arena team",
				Confirm: msgConfirm,
			})
		}

		menu = append(menu, arena.MenuOption{
			Action: arena.ActionShowStats,
			Text:   "Show your statistics",
		})
	}

	return menu
}

func (d *DialogController) handleCreateTeam(scope *envelope.Scope, player arena.Player) []arena.MenuOption {
	if int(player.Level()) < d.cfg.MinLevel {
		d.notify.SendSysMessage(player, fmt.Sprintf("You have to be level %d+ to create a solo arena team.", d.cfg.MinLevel))
		return nil
	}

	if player.Money() >= d.cfg.Costs {
		_, err := d.provisioner.CreateTeam(scope, player)
		switch {
		case err == nil:
			// Deduct only after a successful creation.
			player.ModifyMoney(-d.cfg.Costs)
			d.notify.SendSysMessage(player, msgTeamCreated)
		case errors.Is(err, ErrAlreadyOwnsTeam):
			d.notify.SendSysMessage(player, msgAlreadyInTeam)
		}
	}

	return d.buildMenu(player)
}

func (d *DialogController) handleJoin(scope *envelope.Scope, player arena.Player, rated bool) []arena.MenuOption {
	if !d.policy.IsEligible(player) {
		d.metrics.JoinRejected(rated, ReasonForError(ErrForbiddenTalents))
		d.notify.SendSysMessage(player, msgForbiddenTalents)
		return nil
	}

	if err := d.coordinator.JoinQueue(scope, player, rated); err != nil {
		d.notify.SendSysMessage(player, messageForJoinError(err))
	}

	return nil
}

func (d *DialogController) handleLeaveQueue(player arena.Player) []arena.MenuOption {
	if !player.InQueueForType(arena.QueueTypeSolo) {
		return nil
	}

	_ = d.queues.LeaveQueue(player, arena.QueueTypeSolo)

	return nil
}

func (d *DialogController) handleDisband(player arena.Player) []arena.MenuOption {
	slot := d.remap.SlotFor(arena.CategorySolo, 0)
	teamID := player.TeamID(slot)
	if teamID == 0 {
		return nil
	}

	if err := d.queues.DisbandTeam(player, teamID); err == nil {
		d.notify.SendSysMessage(player, msgTeamDisbanded)
	}

	return nil
}

// showStatistics renders the owned team's stats record. The stats are deep
// copied so the display path never aliases registry-owned state.
func (d *DialogController) showStatistics(scope *envelope.Scope, player arena.Player) {
	slot := d.remap.SlotFor(arena.CategorySolo, 0)
	team, ok := d.teams.TeamByID(player.TeamID(slot))
	if !ok {
		return
	}

	copied, err := copystructure.Copy(team.Stats)
	if err != nil {
		scope.Log.WithError(err).Error("failed to copy team stats")
		return
	}
	stats := copied.(arena.TeamStats)

	d.notify.SendSysMessage(player, fmt.Sprintf(
		"Rating: %d\nRank: %d\nSeason Games: %d\nSeason Wins: %d\nWeek Games: %d\nWeek Wins: %d",
		stats.Rating, stats.Rank, stats.SeasonGames, stats.SeasonWins, stats.WeekGames, stats.WeekWins))
}

func messageForJoinError(err error) string {
	switch {
	case errors.Is(err, ErrFormatDisabled):
		return "Solo arena matches are currently disabled."
	case errors.Is(err, ErrForbiddenTalents):
		return msgForbiddenTalents
	default:
		return msgJoinFailed
	}
}
