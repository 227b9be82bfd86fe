// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package soloqueue implements the solo (1v1) arena queue extension: the
// talent eligibility gate, the team-size override hooks, single-player team
// provisioning, the queue-join coordinator and the gossip dialog, composed
// against the host battleground/team subsystem.
package soloqueue

import (
	"sync/atomic"

	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
)

type forbiddenTabSet map[uint32]struct{}

// TalentPolicy decides whether a player's active build stays inside the
// forbidden-talent point budget.
//
// The forbidden tab set is rebuilt wholesale on every config (re)load and
// swapped as an immutable snapshot, so a check in flight during a reload
// always sees one consistent set.
type TalentPolicy struct {
	cfg       *config.Config
	catalog   arena.TalentCatalog
	limit     uint32
	forbidden atomic.Pointer[forbiddenTabSet]
}

func NewTalentPolicy(cfg *config.Config, catalog arena.TalentCatalog, limit uint32) *TalentPolicy {
	p := &TalentPolicy{
		cfg:     cfg,
		catalog: catalog,
		limit:   limit,
	}
	p.Reload(cfg)

	return p
}

// Reload rebuilds the forbidden tab snapshot from configuration.
func (p *TalentPolicy) Reload(cfg *config.Config) {
	set := make(forbiddenTabSet)
	for _, id := range cfg.ForbiddenTalentTabs() {
		set[id] = struct{}{}
	}
	p.forbidden.Store(&set)
}

// ForbiddenPoints sums the invested point cost of every unlocked rank the
// player has in forbidden talent lines. Rank position N costs N+1 points.
func (p *TalentPolicy) ForbiddenPoints(player arena.Player) uint32 {
	forbidden := *p.forbidden.Load()
	spec := player.ActiveSpec()

	var points uint32
	for _, entry := range p.catalog.Entries() {
		if _, ok := forbidden[entry.TabID]; !ok {
			continue
		}

		for rank := len(entry.RankSpellIDs) - 1; rank >= 0; rank-- {
			spellID := entry.RankSpellIDs[rank]
			if spellID == 0 {
				continue
			}
			if !player.HasTalent(spellID, spec) {
				continue
			}

			points += uint32(rank) + 1
		}
	}

	return points
}

// IsEligible reports whether the player may enter the solo queue under the
// forbidden-talent budget. A disabled policy admits everyone.
func (p *TalentPolicy) IsEligible(player arena.Player) bool {
	if !p.cfg.BlockForbiddenTalents {
		return true
	}

	return p.ForbiddenPoints(player) < p.limit
}
