// Package transition fades UI text in and out with eased colour tweens.
package transition

import (
	"fmt"
	"math"
)

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// QuadraticIn accelerates from zero velocity.
func QuadraticIn(t float64) float64 { return t * t }

// QuadraticOut decelerates to zero velocity.
func QuadraticOut(t float64) float64 { return t * (2 - t) }

// QuadraticInOut accelerates then decelerates.
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicInOut accelerates then decelerates with a cubic curve.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// SineInOut follows half a cosine period.
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseByName returns the easing for a configuration name.
func EaseByName(name string) (Ease, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "quadratic-in", "":
		return QuadraticIn, nil
	case "quadratic-out":
		return QuadraticOut, nil
	case "quadratic-in-out":
		return QuadraticInOut, nil
	case "cubic-in-out":
		return CubicInOut, nil
	case "sine-in-out":
		return SineInOut, nil
	default:
		return nil, fmt.Errorf("transition: unknown easing %q", name)
	}
}
