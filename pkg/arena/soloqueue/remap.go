// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
)

// SlotRemapper rides the solo category on the host's generic team-size
// machinery by intercepting the four team-type extension points plus the
// arena point multiplier. Every hook is pure and O(1): a non-solo query
// returns the caller's default unchanged.
type SlotRemapper struct {
	cfg *config.Config
}

func NewSlotRemapper(cfg *config.Config) *SlotRemapper {
	return &SlotRemapper{cfg: cfg}
}

func (r *SlotRemapper) SlotFor(category arena.TeamCategory, def uint8) uint8 {
	if category != arena.CategorySolo {
		return def
	}

	return uint8(r.cfg.ArenaSlotID)
}

func (r *SlotRemapper) QueueTypeFor(category arena.TeamCategory, def arena.QueueTypeID) arena.QueueTypeID {
	if category != arena.CategorySolo {
		return def
	}

	return arena.QueueTypeSolo
}

func (r *SlotRemapper) CategoryFor(queueType arena.QueueTypeID, def arena.TeamCategory) arena.TeamCategory {
	if queueType != arena.QueueTypeSolo {
		return def
	}

	return arena.CategorySolo
}

// MaxPlayersFor returns 1 for the solo category regardless of configuration.
func (r *SlotRemapper) MaxPlayersFor(category arena.TeamCategory, def uint32) uint32 {
	if category != arena.CategorySolo {
		return def
	}

	return arena.SoloTeamSize
}

func (r *SlotRemapper) PointsMultiplier(category arena.TeamCategory, def float64) float64 {
	if category != arena.CategorySolo {
		return def
	}

	return r.cfg.ArenaPointsMulti
}
