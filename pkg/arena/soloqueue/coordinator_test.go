// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/config"
	"github.com/AccelByte/extend-solo-arena/pkg/testsetup"
)

type coordinatorFixture struct {
	cfg         *config.Config
	coordinator *QueueCoordinator
	registry    *testsetup.StubTeamRegistry
	bgs         *testsetup.StubBattlegroundManager
	brackets    *testsetup.StubBracketLookup
	notifier    *testsetup.StubNotifier
}

func newCoordinatorFixture() *coordinatorFixture {
	cfg := testsetup.NewTestConfig()
	registry := testsetup.NewStubTeamRegistry()
	bgs := testsetup.NewStubBattlegroundManager()
	brackets := testsetup.NewStubBracketLookup()
	notifier := &testsetup.StubNotifier{}
	remap := NewSlotRemapper(cfg)

	return &coordinatorFixture{
		cfg:         cfg,
		coordinator: NewQueueCoordinator(cfg, registry, bgs, brackets, notifier, remap, testsetup.NewTestMetrics()),
		registry:    registry,
		bgs:         bgs,
		brackets:    brackets,
		notifier:    notifier,
	}
}

func (f *coordinatorFixture) soloQueue() *testsetup.StubQueue {
	return f.bgs.Queues[arena.QueueTypeSolo]
}

// addSoloTeam registers a team for the player and mirrors the ownership on
// the player's solo slot.
func (f *coordinatorFixture) addSoloTeam(player *testsetup.StubPlayer, rating uint32) uint32 {
	id, _ := f.registry.AddTeam(&arena.ArenaTeam{
		Name:      player.Name(),
		CaptainID: player.ID(),
		Category:  arena.CategorySolo,
		Stats:     arena.TeamStats{Rating: rating},
	})
	player.TeamIDs[uint8(f.cfg.ArenaSlotID)] = id
	return id
}

func TestJoinQueueUnrated(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	f := newCoordinatorFixture()
	f.bgs.Queues[arena.QueueTypeSolo] = &testsetup.StubQueue{AvgWait: 45 * time.Second}
	player := testsetup.NewStubPlayer("Fraz", 80)

	err := f.coordinator.JoinQueue(g.TestScope, player, false)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	queue := f.soloQueue()
	g.Expect(queue.Registrations).To(gomega.HaveLen(1))
	reg := queue.Registrations[0]
	g.Expect(reg.Rated).To(gomega.BeFalse())
	g.Expect(reg.TeamRating).To(gomega.BeZero())
	g.Expect(reg.MatchmakerRating).To(gomega.BeZero())
	g.Expect(reg.TeamID).To(gomega.BeZero())

	g.Expect(queue.FormatBGType).To(gomega.Equal(arena.BattlegroundTypeAllArenas))
	g.Expect(queue.FormatCategory).To(gomega.Equal(arena.CategorySolo))

	template := f.bgs.Templates[arena.BattlegroundTypeAllArenas]
	g.Expect(template.Rated).To(gomega.BeFalse())
	g.Expect(template.MaxPlayersPerTeam).To(gomega.Equal(uint32(1)))

	g.Expect(player.InQueueForType(arena.QueueTypeSolo)).To(gomega.BeTrue())

	g.Expect(f.notifier.Statuses).To(gomega.HaveLen(1))
	status := f.notifier.Statuses[0]
	g.Expect(status.WaitEstimate).To(gomega.Equal(45 * time.Second))
	g.Expect(status.Rated).To(gomega.BeFalse())
	g.Expect(status.QueueType).To(gomega.Equal(arena.QueueTypeSolo))

	g.Expect(f.bgs.Scheduled).To(gomega.HaveLen(1))
	g.Expect(f.bgs.Scheduled[0].QueueType).To(gomega.Equal(arena.QueueTypeSolo))
	g.Expect(f.bgs.Scheduled[0].Bracket).To(gomega.Equal(f.brackets.Bracket.ID))
}

func TestJoinQueueRated(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	f := newCoordinatorFixture()
	player := testsetup.NewStubPlayer("Rated", 80)
	teamID := f.addSoloTeam(player, 1850)

	err := f.coordinator.JoinQueue(g.TestScope, player, true)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	queue := f.soloQueue()
	g.Expect(queue.Registrations).To(gomega.HaveLen(1))
	reg := queue.Registrations[0]
	g.Expect(reg.Rated).To(gomega.BeTrue())
	g.Expect(reg.TeamRating).To(gomega.Equal(uint32(1850)))
	g.Expect(reg.MatchmakerRating).To(gomega.Equal(uint32(1850)))
	g.Expect(reg.TeamID).To(gomega.Equal(teamID))

	g.Expect(f.bgs.Templates[arena.BattlegroundTypeAllArenas].Rated).To(gomega.BeTrue())
	g.Expect(f.bgs.Scheduled[0].MatchmakerRating).To(gomega.Equal(uint32(1850)))
}

func TestJoinQueueRatingFloor(t *testing.T) {
	f := newCoordinatorFixture()
	player := testsetup.NewStubPlayer("Fresh", 80)
	f.addSoloTeam(player, 0)

	err := f.coordinator.JoinQueue(testsetup.NewTestScope(), player, true)
	require.NoError(t, err)

	reg := f.soloQueue().Registrations[0]
	assert.Equal(t, uint32(1), reg.TeamRating)
	assert.Equal(t, uint32(1), reg.MatchmakerRating)
}

func TestJoinQueueRatedWithoutTeam(t *testing.T) {
	f := newCoordinatorFixture()
	player := testsetup.NewStubPlayer("Teamless", 80)

	err := f.coordinator.JoinQueue(testsetup.NewTestScope(), player, true)
	assert.ErrorIs(t, err, ErrNoTeam)

	assert.Empty(t, f.soloQueue().Registrations)
	assert.Equal(t, 1, f.notifier.NotInTeam)
	assert.False(t, player.InQueueForType(arena.QueueTypeSolo))
}

func TestJoinQueueTwiceReturnsAlreadyQueued(t *testing.T) {
	f := newCoordinatorFixture()
	player := testsetup.NewStubPlayer("Eager", 80)

	require.NoError(t, f.coordinator.JoinQueue(testsetup.NewTestScope(), player, false))

	err := f.coordinator.JoinQueue(testsetup.NewTestScope(), player, false)
	assert.ErrorIs(t, err, ErrAlreadyQueued)
	assert.Len(t, f.soloQueue().Registrations, 1)
}

func TestJoinQueueRejections(t *testing.T) {
	tests := []struct {
		name    string
		rated   bool
		setup   func(f *coordinatorFixture, player *testsetup.StubPlayer)
		wantErr error
	}{
		{
			name: "level_too_low",
			setup: func(f *coordinatorFixture, player *testsetup.StubPlayer) {
				player.PlayerLevel = 79
			},
			wantErr: ErrLevelTooLow,
		},
		{
			name: "already_in_battleground",
			setup: func(f *coordinatorFixture, player *testsetup.StubPlayer) {
				player.InBG = true
			},
			wantErr: ErrInBattleground,
		},
		{
			name: "template_missing",
			setup: func(f *coordinatorFixture, player *testsetup.StubPlayer) {
				delete(f.bgs.Templates, arena.BattlegroundTypeAllArenas)
			},
			wantErr: ErrTemplateMissing,
		},
		{
			name: "format_disabled",
			setup: func(f *coordinatorFixture, player *testsetup.StubPlayer) {
				f.bgs.Disabled[arena.BattlegroundTypeAllArenas] = true
			},
			wantErr: ErrFormatDisabled,
		},
		{
			name: "no_bracket",
			setup: func(f *coordinatorFixture, player *testsetup.StubPlayer) {
				f.brackets.Bracket.MaxLevel = 79
			},
			wantErr: ErrNoBracket,
		},
		{
			name: "no_free_queue_slot",
			setup: func(f *coordinatorFixture, player *testsetup.StubPlayer) {
				player.QueueIDs = []arena.QueueTypeID{arena.QueueType2v2, arena.QueueType3v3}
			},
			wantErr: ErrNoFreeSlot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCoordinatorFixture()
			player := testsetup.NewStubPlayer("Blocked", 80)
			tt.setup(f, player)

			err := f.coordinator.JoinQueue(testsetup.NewTestScope(), player, tt.rated)
			assert.ErrorIs(t, err, tt.wantErr)

			if queue, ok := f.bgs.Queues[arena.QueueTypeSolo]; ok {
				assert.Empty(t, queue.Registrations)
			}
			assert.False(t, player.InQueueForType(arena.QueueTypeSolo))
		})
	}
}

// A disqualifying level must win over later checks even when those would
// also fail; the check order is fixed.
func TestJoinQueueCheckOrder(t *testing.T) {
	f := newCoordinatorFixture()
	delete(f.bgs.Templates, arena.BattlegroundTypeAllArenas)
	player := testsetup.NewStubPlayer("Lowbie", 10)

	err := f.coordinator.JoinQueue(testsetup.NewTestScope(), player, false)
	assert.ErrorIs(t, err, ErrLevelTooLow)
}
