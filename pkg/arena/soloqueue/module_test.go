// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package soloqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/testsetup"
)

func newModuleFixture() (*Module, *testsetup.StubTeamRegistry) {
	registry := testsetup.NewStubTeamRegistry()
	module := New(testsetup.NewTestConfig(), Dependencies{
		Teams:         registry,
		Battlegrounds: testsetup.NewStubBattlegroundManager(),
		Brackets:      testsetup.NewStubBracketLookup(),
		Talents:       &testsetup.StubTalentCatalog{},
		Notifier:      &testsetup.StubNotifier{},
		Queues:        &testsetup.StubQueueOps{},
		Metrics:       testsetup.NewTestMetrics(),
	})
	return module, registry
}

func addCaptainedTeam(registry *testsetup.StubTeamRegistry, player *testsetup.StubPlayer, rating uint32) uint32 {
	id, _ := registry.AddTeam(&arena.ArenaTeam{
		Name:      player.Name(),
		CaptainID: player.ID(),
		Category:  arena.CategorySolo,
		Stats:     arena.TeamStats{Rating: rating},
	})
	return id
}

func TestTeamIDForSlot(t *testing.T) {
	module, registry := newModuleFixture()
	player := testsetup.NewStubPlayer("Captain", 80)
	teamID := addCaptainedTeam(registry, player, 1500)

	assert.Equal(t, teamID, module.TeamIDForSlot(player, 3, 0))
	// Other slots keep the host default.
	assert.Equal(t, uint32(9), module.TeamIDForSlot(player, 1, 9))
	// No solo team resolves to the default too.
	stranger := testsetup.NewStubPlayer("Stranger", 80)
	assert.Equal(t, uint32(0), module.TeamIDForSlot(stranger, 3, 0))
}

func TestPersonalRatingForSlot(t *testing.T) {
	module, registry := newModuleFixture()
	player := testsetup.NewStubPlayer("Captain", 80)
	addCaptainedTeam(registry, player, 1712)

	assert.Equal(t, uint32(1712), module.PersonalRatingForSlot(player, 3, 0))
	assert.Equal(t, uint32(400), module.PersonalRatingForSlot(player, 2, 400))
}

func TestMaxPersonalRatingForVendor(t *testing.T) {
	module, registry := newModuleFixture()
	player := testsetup.NewStubPlayer("Vendor", 80)
	addCaptainedTeam(registry, player, 2000)

	// Disabled by default.
	assert.Equal(t, uint32(1500), module.MaxPersonalRatingForVendor(player, 0, 1500))

	module.cfg.VendorRating = true
	assert.Equal(t, uint32(2000), module.MaxPersonalRatingForVendor(player, 0, 1500))
	// The solo rating never lowers an already higher requirement value.
	assert.Equal(t, uint32(2300), module.MaxPersonalRatingForVendor(player, 0, 2300))
	// Queried min slot at or above the solo slot keeps the default.
	assert.Equal(t, uint32(1500), module.MaxPersonalRatingForVendor(player, 3, 1500))
}

func TestOnConfigLoadRebuildsPolicy(t *testing.T) {
	line := talentLine(healTab, 1000, 5)
	registry := testsetup.NewStubTeamRegistry()
	catalog := &testsetup.StubTalentCatalog{Lines: []arena.TalentEntry{
		line,
		talentLine(healTab, 2000, 5),
		talentLine(healTab, 3000, 5),
	}}
	module := New(testsetup.NewTestConfig(), Dependencies{
		Teams:         registry,
		Battlegrounds: testsetup.NewStubBattlegroundManager(),
		Brackets:      testsetup.NewStubBracketLookup(),
		Talents:       catalog,
		Notifier:      &testsetup.StubNotifier{},
		Queues:        &testsetup.StubQueueOps{},
		Metrics:       testsetup.NewTestMetrics(),
	})

	player := testsetup.NewStubPlayer("Healer", 80)
	for _, entry := range catalog.Lines {
		unlock(player, entry, 5)
	}
	assert.True(t, module.Policy.IsEligible(player))

	reloaded := testsetup.NewTestConfig()
	reloaded.ForbiddenTalentsIDs = "201"
	reloaded.Costs = 250000
	module.OnConfigLoad(testsetup.NewTestScope(), reloaded, true)

	assert.False(t, module.Policy.IsEligible(player))
	assert.Equal(t, int64(250000), module.cfg.Costs)
}
