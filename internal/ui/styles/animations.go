// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"time"
)

// =============================================================================
// TRANSITION EFFECTS
// =============================================================================

// EasingFunc maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// TransitionConfig defines the slide the overlay performs when opened.
type TransitionConfig struct {
	Duration time.Duration
	Frames   int
	Easing   EasingFunc
}

// Default transitions
var (
	TransitionSlide = TransitionConfig{
		Duration: 150 * time.Millisecond,
		Frames:   6,
		Easing:   EaseOutCubic,
	}

	// TransitionNone opens in a single frame.
	TransitionNone = TransitionConfig{Frames: 1, Easing: EaseLinear}
)

// FrameInterval returns the delay between frames.
func (c TransitionConfig) FrameInterval() time.Duration {
	if c.Frames <= 1 {
		return 0
	}
	return c.Duration / time.Duration(c.Frames)
}

// Height returns how many of full rows are visible at frame (1-based).
// The last frame and anything past it show everything.
func (c TransitionConfig) Height(full, frame int) int {
	if full <= 0 {
		return 0
	}
	if c.Frames <= 1 || frame >= c.Frames {
		return full
	}
	if frame < 1 {
		frame = 1
	}
	ease := c.Easing
	if ease == nil {
		ease = EaseLinear
	}
	h := int(math.Round(ease(float64(frame)/float64(c.Frames)) * float64(full)))
	return max(1, min(h, full))
}
