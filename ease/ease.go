// Package ease provides the easing curves used to shape tween playback.
//
// A curve maps a cycle fraction x in [0,1] to an eased factor. Curves are
// plain functions so a custom curve is any func(float64) float64; values
// outside [0,1] are the caller's responsibility.
package ease

import "math"

// Method maps a cycle fraction in [0,1] to an eased factor
type Method func(x float64) float64

// Linear returns the fraction unchanged (no easing)
func Linear(x float64) float64 {
	return x
}

// Discrete returns a threshold curve: the eased factor jumps from 0 to 1
// when the fraction steps over limit
func Discrete(limit float64) Method {
	return func(x float64) float64 {
		if x > limit {
			return 1
		}
		return 0
	}
}

// QuadIn accelerates from zero velocity
func QuadIn(x float64) float64 {
	return x * x
}

// QuadOut decelerates to zero velocity
func QuadOut(x float64) float64 {
	return x * (2 - x)
}

// QuadInOut accelerates until halfway, then decelerates
func QuadInOut(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}
	return -1 + (4-2*x)*x
}

// CubicIn accelerates from zero velocity
func CubicIn(x float64) float64 {
	return x * x * x
}

// CubicOut decelerates to zero velocity
func CubicOut(x float64) float64 {
	x--
	return x*x*x + 1
}

// CubicInOut accelerates until halfway, then decelerates
func CubicInOut(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	x = 2*x - 2
	return 0.5*x*x*x + 1
}

// QuartIn accelerates from zero velocity
func QuartIn(x float64) float64 {
	return x * x * x * x
}

// QuartOut decelerates to zero velocity
func QuartOut(x float64) float64 {
	x--
	return 1 - x*x*x*x
}

// QuartInOut accelerates until halfway, then decelerates
func QuartInOut(x float64) float64 {
	if x < 0.5 {
		return 8 * x * x * x * x
	}
	x--
	return 1 - 8*x*x*x*x
}

// QuintIn accelerates from zero velocity
func QuintIn(x float64) float64 {
	return x * x * x * x * x
}

// QuintOut decelerates to zero velocity
func QuintOut(x float64) float64 {
	x--
	return x*x*x*x*x + 1
}

// QuintInOut accelerates until halfway, then decelerates
func QuintInOut(x float64) float64 {
	if x < 0.5 {
		return 16 * x * x * x * x * x
	}
	x = 2*x - 2
	return 0.5*x*x*x*x*x + 1
}

// SineIn accelerates following a quarter sine wave
func SineIn(x float64) float64 {
	return 1 - math.Cos(x*math.Pi/2)
}

// SineOut decelerates following a quarter sine wave
func SineOut(x float64) float64 {
	return math.Sin(x * math.Pi / 2)
}

// SineInOut accelerates then decelerates following a half sine wave
func SineInOut(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) / 2
}

// CircIn accelerates following a quarter circle arc
func CircIn(x float64) float64 {
	return 1 - math.Sqrt(1-x*x)
}

// CircOut decelerates following a quarter circle arc
func CircOut(x float64) float64 {
	x--
	return math.Sqrt(1 - x*x)
}

// CircInOut accelerates then decelerates following circle arcs
func CircInOut(x float64) float64 {
	if x < 0.5 {
		return (1 - math.Sqrt(1-4*x*x)) / 2
	}
	x = 2*x - 2
	return (math.Sqrt(1-x*x) + 1) / 2
}

// ExpoIn accelerates exponentially
func ExpoIn(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(2, 10*(x-1))
}

// ExpoOut decelerates exponentially
func ExpoOut(x float64) float64 {
	if x >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*x)
}

// ExpoInOut accelerates then decelerates exponentially
func ExpoInOut(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if x < 0.5 {
		return math.Pow(2, 20*x-10) / 2
	}
	return 1 - math.Pow(2, -20*x+10)/2
}

// ElasticIn overshoots backward with a spring oscillation before settling in
func ElasticIn(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	const c = 2 * math.Pi / 3
	return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*c)
}

// ElasticOut overshoots past the end with a spring oscillation
func ElasticOut(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	const c = 2 * math.Pi / 3
	return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*c) + 1
}

// ElasticInOut combines ElasticIn and ElasticOut around the midpoint
func ElasticInOut(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	const c = 2 * math.Pi / 4.5
	if x < 0.5 {
		return -math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*c) / 2
	}
	return math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*c)/2 + 1
}

// BackIn pulls back slightly before accelerating forward
func BackIn(x float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*x*x*x - c1*x*x
}

// BackOut overshoots slightly past the end before settling
func BackOut(x float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	x--
	return 1 + c3*x*x*x + c1*x*x
}

// BackInOut combines BackIn and BackOut around the midpoint
func BackInOut(x float64) float64 {
	const c1 = 1.70158
	const c2 = c1 * 1.525
	if x < 0.5 {
		return (4 * x * x * ((c2+1)*2*x - c2)) / 2
	}
	x = 2*x - 2
	return (x*x*((c2+1)*x+c2) + 2) / 2
}

// BounceOut decelerates with a series of diminishing bounces
func BounceOut(x float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case x < 1/d1:
		return n1 * x * x
	case x < 2/d1:
		x -= 1.5 / d1
		return n1*x*x + 0.75
	case x < 2.5/d1:
		x -= 2.25 / d1
		return n1*x*x + 0.9375
	default:
		x -= 2.625 / d1
		return n1*x*x + 0.984375
	}
}

// BounceIn mirrors BounceOut, bouncing at the start
func BounceIn(x float64) float64 {
	return 1 - BounceOut(1-x)
}

// BounceInOut bounces at both ends around the midpoint
func BounceInOut(x float64) float64 {
	if x < 0.5 {
		return (1 - BounceOut(1-2*x)) / 2
	}
	return (1 + BounceOut(2*x-1)) / 2
}
