// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.Enable)
	assert.Equal(t, 3, cfg.ArenaSlotID)
	assert.Equal(t, int64(400000), cfg.Costs)
	assert.Equal(t, 80, cfg.MinLevel)
	assert.True(t, cfg.BlockForbiddenTalents)
	assert.Empty(t, cfg.ForbiddenTalentsIDs)
	assert.False(t, cfg.VendorRating)
	assert.Equal(t, 0.64, cfg.ArenaPointsMulti)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SOLO_ARENA_ENABLE", "false")
	t.Setenv("SOLO_ARENA_SLOT_ID", "4")
	t.Setenv("SOLO_ARENA_MIN_LEVEL", "70")
	t.Setenv("SOLO_ARENA_FORBIDDEN_TALENTS_IDS", "201,202")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.Enable)
	assert.Equal(t, 4, cfg.ArenaSlotID)
	assert.Equal(t, 70, cfg.MinLevel)
	assert.Equal(t, []uint32{201, 202}, cfg.ForbiddenTalentTabs())
}

func TestForbiddenTalentTabs(t *testing.T) {
	tests := []struct {
		name string
		ids  string
		want []uint32
	}{
		{
			name: "empty_list",
			ids:  "",
			want: []uint32{},
		},
		{
			name: "single_id",
			ids:  "201",
			want: []uint32{201},
		},
		{
			name: "multiple_ids_with_spaces",
			ids:  "201, 202 ,203",
			want: []uint32{201, 202, 203},
		},
		{
			name: "duplicates_removed",
			ids:  "201,202,201",
			want: []uint32{201, 202},
		},
		{
			name: "malformed_tokens_skipped",
			ids:  "201,abc,,202,-5",
			want: []uint32{201, 202},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ForbiddenTalentsIDs: tt.ids}
			assert.ElementsMatch(t, tt.want, cfg.ForbiddenTalentTabs())
		})
	}
}
