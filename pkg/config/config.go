// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"strconv"
	"strings"

	env "github.com/caarlos0/env"
	pie "github.com/elliotchance/pie/v2"
)

type Config struct {
	Enable                bool    `env:"SOLO_ARENA_ENABLE"                  envDefault:"true"   envDocs:"master on/off switch for the solo arena format"`
	ArenaSlotID           int     `env:"SOLO_ARENA_SLOT_ID"                 envDefault:"3"      envDocs:"arena team slot index the solo category is mapped onto"`
	Costs                 int64   `env:"SOLO_ARENA_COSTS"                   envDefault:"400000" envDocs:"price in copper for creating a solo arena team"`
	MinLevel              int     `env:"SOLO_ARENA_MIN_LEVEL"               envDefault:"80"     envDocs:"minimum player level for team creation and queue join"`
	BlockForbiddenTalents bool    `env:"SOLO_ARENA_BLOCK_FORBIDDEN_TALENTS" envDefault:"true"   envDocs:"enable the forbidden-talent eligibility gate"`
	ForbiddenTalentsIDs   string  `env:"SOLO_ARENA_FORBIDDEN_TALENTS_IDS"   envDefault:""       envDocs:"comma-separated talent tab ids that count toward the forbidden-point cutoff"`
	VendorRating          bool    `env:"SOLO_ARENA_VENDOR_RATING"           envDefault:"false"  envDocs:"whether the solo team rating counts toward vendor rating requirements"`
	ArenaPointsMulti      float64 `env:"SOLO_ARENA_POINTS_MULTI"            envDefault:"0.64"   envDocs:"arena point multiplier applied to the solo category"`
}

// FromEnv builds a Config from the process environment, applying defaults
// for unset variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ForbiddenTalentTabs parses ForbiddenTalentsIDs into a deduplicated id list.
// Malformed tokens are skipped rather than failing the whole load.
func (c *Config) ForbiddenTalentTabs() []uint32 {
	tokens := strings.Split(c.ForbiddenTalentsIDs, ",")

	ids := make([]uint32, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		id, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			continue
		}

		ids = append(ids, uint32(id))
	}

	return pie.Unique(ids)
}
