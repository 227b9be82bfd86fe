// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"fmt"

	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
	"github.com/AccelByte/extend-solo-arena/pkg/constants"
	"github.com/AccelByte/extend-solo-arena/pkg/envelope"
	"github.com/AccelByte/extend-solo-arena/pkg/metrics"
)

// TeamProvisioner creates single-player teams for the solo category.
// Currency is deducted by the caller, and only after CreateTeam succeeds;
// a failed creation must never cost the player anything.
type TeamProvisioner struct {
	cfg     *config.Config
	teams   arena.TeamRegistry
	remap   *SlotRemapper
	metrics metrics.SoloArenaMetrics
}

func NewTeamProvisioner(cfg *config.Config, teams arena.TeamRegistry, remap *SlotRemapper, m metrics.SoloArenaMetrics) *TeamProvisioner {
	return &TeamProvisioner{
		cfg:     cfg,
		teams:   teams,
		remap:   remap,
		metrics: m,
	}
}

// CreateTeam provisions a new solo team captained by the player and returns
// its registry id.
func (p *TeamProvisioner) CreateTeam(scope *envelope.Scope, player arena.Player) (uint32, error) {
	slot := p.remap.SlotFor(arena.CategorySolo, 0)
	// Another extension may have remapped the slot away.
	if slot == 0 {
		return 0, p.reject(ErrSlotUnavailable)
	}

	if player.TeamID(slot) != 0 {
		return 0, p.reject(ErrAlreadyOwnsTeam)
	}

	if int(player.Level()) < p.cfg.MinLevel {
		return 0, p.reject(ErrLevelTooLow)
	}

	name, err := p.resolveName(player.Name())
	if err != nil {
		return 0, p.reject(err)
	}

	team := &arena.ArenaTeam{
		Name:       name,
		CaptainID:  player.ID(),
		Category:   arena.CategorySolo,
		Appearance: arena.DefaultAppearance(),
	}

	id, err := p.teams.AddTeam(team)
	if err != nil {
		scope.Log.WithField("team", name).WithError(err).Error("failed to register solo arena team")
		return 0, p.reject(err)
	}

	scope.Log.WithField("team", name).WithField("captain", player.ID()).Info("solo arena team created")
	p.metrics.TeamCreated()

	return id, nil
}

// resolveName picks the player's name, appending " - N" counters on
// collision. Bounded so a pathological registry cannot loop forever.
func (p *TeamProvisioner) resolveName(base string) (string, error) {
	name := base
	for i := 1; ; i++ {
		if _, exists := p.teams.TeamByName(name); !exists {
			return name, nil
		}
		if i >= constants.TeamNameAttempts {
			return "", ErrNameSpaceExhausted
		}

		name = fmt.Sprintf("%s - %d", base, i)
	}
}

func (p *TeamProvisioner) reject(err error) error {
	p.metrics.TeamCreateRejected(ReasonForError(err))
	return err
}
