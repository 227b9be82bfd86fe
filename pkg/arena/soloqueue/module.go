// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
	"github.com/AccelByte/extend-solo-arena/pkg/constants"
	"github.com/AccelByte/extend-solo-arena/pkg/envelope"
	"github.com/AccelByte/extend-solo-arena/pkg/metrics"
)

// Dependencies are the host collaborators the module composes against.
type Dependencies struct {
	Teams         arena.TeamRegistry
	Battlegrounds arena.BattlegroundManager
	Brackets      arena.BracketLookup
	Talents       arena.TalentCatalog
	Notifier      arena.Notifier
	Queues        arena.QueueOps
	Metrics       metrics.SoloArenaMetrics
}

// Module is the composition root. It wires the solo queue components
// together and implements the hook interfaces the host registers.
type Module struct {
	cfg *config.Config

	Policy      *TalentPolicy
	Remapper    *SlotRemapper
	Provisioner *TeamProvisioner
	Coordinator *QueueCoordinator
	Dialog      *DialogController

	teams arena.TeamRegistry
}

var (
	_ arena.ConfigReloadHandler = (*Module)(nil)
	_ arena.PlayerRatingHooks   = (*Module)(nil)
	_ arena.GossipHandler       = (*Module)(nil)
	_ arena.TeamTypeHooks       = (*SlotRemapper)(nil)
)

func New(cfg *config.Config, deps Dependencies) *Module {
	remap := NewSlotRemapper(cfg)
	policy := NewTalentPolicy(cfg, deps.Talents, constants.ForbiddenTalentPointLimit)
	provisioner := NewTeamProvisioner(cfg, deps.Teams, remap, deps.Metrics)
	coordinator := NewQueueCoordinator(cfg, deps.Teams, deps.Battlegrounds, deps.Brackets, deps.Notifier, remap, deps.Metrics)
	dialog := NewDialogController(cfg, policy, coordinator, provisioner, remap, deps.Teams, deps.Queues, deps.Notifier, deps.Metrics)

	return &Module{
		cfg:         cfg,
		Policy:      policy,
		Remapper:    remap,
		Provisioner: provisioner,
		Coordinator: coordinator,
		Dialog:      dialog,
		teams:       deps.Teams,
	}
}

// OnConfigLoad applies a freshly loaded configuration and rebuilds the
// forbidden-talent snapshot. The config struct is updated in place so every
// component observes the new values on its next request.
func (m *Module) OnConfigLoad(scope *envelope.Scope, cfg *config.Config, reload bool) {
	*m.cfg = *cfg
	m.Policy.Reload(m.cfg)

	scope.Log.WithField("reload", reload).
		WithField("forbiddenTabs", len(m.cfg.ForbiddenTalentTabs())).
		Info("solo arena configuration loaded")
}

// TeamIDForSlot resolves the solo team id when the queried slot is the solo
// slot; any other slot keeps the host default.
func (m *Module) TeamIDForSlot(player arena.Player, slot uint8, def uint32) uint32 {
	if slot != m.Remapper.SlotFor(arena.CategorySolo, 0) {
		return def
	}

	if team, ok := m.teams.TeamByCaptain(player.ID(), arena.CategorySolo); ok {
		return team.ID
	}

	return def
}

// PersonalRatingForSlot resolves the solo team rating for the solo slot.
func (m *Module) PersonalRatingForSlot(player arena.Player, slot uint8, def uint32) uint32 {
	if slot != m.Remapper.SlotFor(arena.CategorySolo, 0) {
		return def
	}

	if team, ok := m.teams.TeamByCaptain(player.ID(), arena.CategorySolo); ok {
		return team.Stats.Rating
	}

	return def
}

// MaxPersonalRatingForVendor lets the solo rating satisfy cross-format
// rating requirements when VendorRating is enabled.
func (m *Module) MaxPersonalRatingForVendor(player arena.Player, minSlot uint32, current uint32) uint32 {
	if !m.cfg.VendorRating {
		return current
	}

	if minSlot >= uint32(m.Remapper.SlotFor(arena.CategorySolo, 0)) {
		return current
	}

	if team, ok := m.teams.TeamByCaptain(player.ID(), arena.CategorySolo); ok && team.Stats.Rating > current {
		return team.Stats.Rating
	}

	return current
}

// OnGossipHello implements arena.GossipHandler.
func (m *Module) OnGossipHello(scope *envelope.Scope, player arena.Player) []arena.MenuOption {
	return m.Dialog.OnGossipHello(scope, player)
}

// OnGossipSelect implements arena.GossipHandler.
func (m *Module) OnGossipSelect(scope *envelope.Scope, player arena.Player, action arena.ActionID) []arena.MenuOption {
	return m.Dialog.OnGossipSelect(scope, player, action)
}
