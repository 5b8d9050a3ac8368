// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// EASING TESTS
// =============================================================================

func TestEasingEndpoints(t *testing.T) {
	for name, fn := range map[string]EasingFunc{
		"linear":   EaseLinear,
		"outQuad":  EaseOutQuad,
		"outCubic": EaseOutCubic,
	} {
		assert.InDelta(t, 0, fn(0), 1e-9, name)
		assert.InDelta(t, 1, fn(1), 1e-9, name)
		assert.Greater(t, fn(0.5), 0.0, name)
	}
}

func TestTransitionHeight(t *testing.T) {
	c := TransitionConfig{Frames: 4, Easing: EaseLinear}

	assert.Equal(t, 5, c.Height(20, 1))
	assert.Equal(t, 10, c.Height(20, 2))
	assert.Equal(t, 20, c.Height(20, 4))
	assert.Equal(t, 20, c.Height(20, 9))
	assert.Equal(t, 5, c.Height(20, 0), "frames below one clamp to the first")
	assert.Equal(t, 0, c.Height(0, 2))
	assert.Equal(t, 1, c.Height(2, 1), "never fully collapsed while opening")
}

func TestTransitionHeight_Monotonic(t *testing.T) {
	prev := 0
	for f := 1; f <= TransitionSlide.Frames; f++ {
		h := TransitionSlide.Height(30, f)
		assert.GreaterOrEqual(t, h, prev)
		prev = h
	}
	assert.Equal(t, 30, prev)
}

func TestTransitionNone(t *testing.T) {
	assert.Equal(t, time.Duration(0), TransitionNone.FrameInterval())
	assert.Equal(t, 12, TransitionNone.Height(12, 1))
	assert.Equal(t, 25*time.Millisecond, TransitionSlide.FrameInterval())
}
