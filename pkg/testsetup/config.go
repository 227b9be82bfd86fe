// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import "github.com/AccelByte/extend-solo-arena/pkg/config"

// NewTestConfig returns a config matching the documented defaults.
func NewTestConfig() *config.Config {
	return &config.Config{
		Enable:                true,
		ArenaSlotID:           3,
		Costs:                 400000,
		MinLevel:              80,
		BlockForbiddenTalents: true,
		ArenaPointsMulti:      0.64,
	}
}
