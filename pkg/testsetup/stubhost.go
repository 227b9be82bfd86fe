// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"math/rand"
	"sync"
	"time"

	ulid "github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AccelByte/extend-solo-arena/pkg/arena"
	"github.com/AccelByte/extend-solo-arena/pkg/metrics"
)

var (
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	ulidMutex = sync.Mutex{}
)

func generateID() string {
	ulidMutex.Lock()
	defer ulidMutex.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewTestMetrics returns metrics backed by a fresh registry.
func NewTestMetrics() metrics.SoloArenaMetrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

// StubPlayer is an in-memory arena.Player.
type StubPlayer struct {
	PlayerID      arena.PlayerID
	PlayerName    string
	PlayerLevel   uint8
	Balance       int64
	Spec          uint8
	Talents       map[uint32]bool
	TeamIDs       map[uint8]uint32
	InBG          bool
	QueueIDs      []arena.QueueTypeID
	MaxQueueSlots int
}

func NewStubPlayer(name string, level uint8) *StubPlayer {
	return &StubPlayer{
		PlayerID:      arena.PlayerID(generateID()),
		PlayerName:    name,
		PlayerLevel:   level,
		Talents:       map[uint32]bool{},
		TeamIDs:       map[uint8]uint32{},
		MaxQueueSlots: 2,
	}
}

func (p *StubPlayer) ID() arena.PlayerID      { return p.PlayerID }
func (p *StubPlayer) Name() string            { return p.PlayerName }
func (p *StubPlayer) Level() uint8            { return p.PlayerLevel }
func (p *StubPlayer) Money() int64            { return p.Balance }
func (p *StubPlayer) ModifyMoney(delta int64) { p.Balance += delta }
func (p *StubPlayer) ActiveSpec() uint8       { return p.Spec }

func (p *StubPlayer) HasTalent(spellID uint32, spec uint8) bool {
	return spec == p.Spec && p.Talents[spellID]
}

func (p *StubPlayer) TeamID(slot uint8) uint32 { return p.TeamIDs[slot] }
func (p *StubPlayer) InBattleground() bool     { return p.InBG }

func (p *StubPlayer) InQueueForType(queueType arena.QueueTypeID) bool {
	for _, id := range p.QueueIDs {
		if id == queueType {
			return true
		}
	}
	return false
}

func (p *StubPlayer) HasFreeQueueSlot() bool {
	return len(p.QueueIDs) < p.MaxQueueSlots
}

func (p *StubPlayer) AddQueueID(queueType arena.QueueTypeID) uint8 {
	p.QueueIDs = append(p.QueueIDs, queueType)
	return uint8(len(p.QueueIDs) - 1)
}

func (p *StubPlayer) RemoveQueueID(queueType arena.QueueTypeID) {
	kept := p.QueueIDs[:0]
	for _, id := range p.QueueIDs {
		if id != queueType {
			kept = append(kept, id)
		}
	}
	p.QueueIDs = kept
}

// StubTeamRegistry is an in-memory arena.TeamRegistry.
type StubTeamRegistry struct {
	Teams  map[uint32]*arena.ArenaTeam
	AddErr error
	nextID uint32
}

func NewStubTeamRegistry() *StubTeamRegistry {
	return &StubTeamRegistry{Teams: map[uint32]*arena.ArenaTeam{}}
}

func (r *StubTeamRegistry) TeamByID(id uint32) (*arena.ArenaTeam, bool) {
	team, ok := r.Teams[id]
	return team, ok
}

func (r *StubTeamRegistry) TeamByName(name string) (*arena.ArenaTeam, bool) {
	for _, team := range r.Teams {
		if team.Name == name {
			return team, true
		}
	}
	return nil, false
}

func (r *StubTeamRegistry) TeamByCaptain(captain arena.PlayerID, category arena.TeamCategory) (*arena.ArenaTeam, bool) {
	for _, team := range r.Teams {
		if team.CaptainID == captain && team.Category == category {
			return team, true
		}
	}
	return nil, false
}

func (r *StubTeamRegistry) AddTeam(team *arena.ArenaTeam) (uint32, error) {
	if r.AddErr != nil {
		return 0, r.AddErr
	}

	r.nextID++
	team.ID = r.nextID
	r.Teams[team.ID] = team

	return team.ID, nil
}

// StubQueue is an in-memory arena.BattlegroundQueue recording every call.
type StubQueue struct {
	FormatBGType   arena.BattlegroundTypeID
	FormatCategory arena.TeamCategory
	Registrations  []arena.QueueRegistration
	AvgWait        time.Duration
}

func (q *StubQueue) SetFormat(bgType arena.BattlegroundTypeID, category arena.TeamCategory) {
	q.FormatBGType = bgType
	q.FormatCategory = category
}

func (q *StubQueue) AddGroup(player arena.Player, bracket *arena.Bracket, reg arena.QueueRegistration) *arena.GroupQueueInfo {
	q.Registrations = append(q.Registrations, reg)
	return &arena.GroupQueueInfo{
		Registration: reg,
		Bracket:      bracket.ID,
		JoinedAt:     time.Now(),
	}
}

func (q *StubQueue) AverageWaitTime(info *arena.GroupQueueInfo) time.Duration {
	return q.AvgWait
}

// ScheduledUpdate records one ScheduleQueueUpdate call.
type ScheduledUpdate struct {
	MatchmakerRating uint32
	QueueType        arena.QueueTypeID
	Bracket          arena.BracketID
}

// StubBattlegroundManager is an in-memory arena.BattlegroundManager.
type StubBattlegroundManager struct {
	Templates map[arena.BattlegroundTypeID]*arena.BattlegroundTemplate
	Queues    map[arena.QueueTypeID]*StubQueue
	Disabled  map[arena.BattlegroundTypeID]bool
	Scheduled []ScheduledUpdate
}

func NewStubBattlegroundManager() *StubBattlegroundManager {
	m := &StubBattlegroundManager{
		Templates: map[arena.BattlegroundTypeID]*arena.BattlegroundTemplate{},
		Queues:    map[arena.QueueTypeID]*StubQueue{},
		Disabled:  map[arena.BattlegroundTypeID]bool{},
	}
	m.Templates[arena.BattlegroundTypeAllArenas] = &arena.BattlegroundTemplate{
		BGType: arena.BattlegroundTypeAllArenas,
		MapID:  559,
	}
	return m
}

func (m *StubBattlegroundManager) Template(bgType arena.BattlegroundTypeID) (*arena.BattlegroundTemplate, bool) {
	template, ok := m.Templates[bgType]
	return template, ok
}

func (m *StubBattlegroundManager) Queue(queueType arena.QueueTypeID) arena.BattlegroundQueue {
	queue, ok := m.Queues[queueType]
	if !ok {
		queue = &StubQueue{}
		m.Queues[queueType] = queue
	}
	return queue
}

func (m *StubBattlegroundManager) IsDisabled(bgType arena.BattlegroundTypeID) bool {
	return m.Disabled[bgType]
}

func (m *StubBattlegroundManager) ScheduleQueueUpdate(matchmakerRating uint32, queueType arena.QueueTypeID, bracket arena.BracketID) {
	m.Scheduled = append(m.Scheduled, ScheduledUpdate{
		MatchmakerRating: matchmakerRating,
		QueueType:        queueType,
		Bracket:          bracket,
	})
}

// StubBracketLookup is an in-memory arena.BracketLookup covering one level range.
type StubBracketLookup struct {
	Bracket arena.Bracket
}

func NewStubBracketLookup() *StubBracketLookup {
	return &StubBracketLookup{Bracket: arena.Bracket{ID: 7, MinLevel: 71, MaxLevel: 80}}
}

func (l *StubBracketLookup) BracketByLevel(mapID uint32, level uint8) (*arena.Bracket, bool) {
	if level < l.Bracket.MinLevel || level > l.Bracket.MaxLevel {
		return nil, false
	}
	bracket := l.Bracket
	return &bracket, true
}

// StubTalentCatalog is an in-memory arena.TalentCatalog.
type StubTalentCatalog struct {
	Lines []arena.TalentEntry
}

func (c *StubTalentCatalog) Entries() []arena.TalentEntry { return c.Lines }

// StubNotifier records every outgoing notification.
type StubNotifier struct {
	Messages     []string
	Statuses     []arena.QueueStatus
	NotInTeam    int
	LastStatusTo arena.PlayerID
}

func (n *StubNotifier) SendSysMessage(player arena.Player, message string) {
	n.Messages = append(n.Messages, message)
}

func (n *StubNotifier) SendQueueStatus(player arena.Player, status arena.QueueStatus) {
	n.Statuses = append(n.Statuses, status)
	n.LastStatusTo = player.ID()
}

func (n *StubNotifier) SendNotInTeam(player arena.Player, category arena.TeamCategory) {
	n.NotInTeam++
}

// StubQueueOps records leave/disband dispatches and mirrors the host's
// state changes on stub players.
type StubQueueOps struct {
	Registry *StubTeamRegistry
	Leaves   []arena.QueueTypeID
	Disbands []uint32
}

func (o *StubQueueOps) LeaveQueue(player arena.Player, queueType arena.QueueTypeID) error {
	o.Leaves = append(o.Leaves, queueType)
	if stub, ok := player.(*StubPlayer); ok {
		stub.RemoveQueueID(queueType)
	}
	return nil
}

func (o *StubQueueOps) DisbandTeam(player arena.Player, teamID uint32) error {
	o.Disbands = append(o.Disbands, teamID)
	if o.Registry != nil {
		delete(o.Registry.Teams, teamID)
	}
	if stub, ok := player.(*StubPlayer); ok {
		for slot, id := range stub.TeamIDs {
			if id == teamID {
				delete(stub.TeamIDs, slot)
			}
		}
	}
	return nil
}
