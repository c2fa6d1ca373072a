package content

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/tween/component"
	"github.com/lixenwraith/tween/tween"
)

const sampleDoc = `
animations:
  fade_in:
    lens: opacity
    ease: quad_out
    duration: 400ms
    params:
      start: 0
      end: 1
  pulse:
    lens: glyph_fg
    ease: sine_in_out
    duration: 500ms
    repeat: infinite
    mirrored: true
    params:
      start: {r: 10, g: 10, b: 10}
      end: {r: 255, g: 200, b: 0}
  entrance:
    steps:
      - delay: 200ms
      - lens: transform_position
        duration: 1s
        repeat: "2"
        params:
          start: {x: 0, y: 0}
          end: {x: 10, y: 5}
`

func TestParseAndBuild(t *testing.T) {
	lib, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	names := lib.Names()
	want := []string{"entrance", "fade_in", "pulse"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	tw, err := lib.Build("fade_in")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var o component.OpacityComponent
	tw.Step(200*time.Millisecond, &o)
	// quad_out at fraction 0.5
	if o.Value != 0.75 {
		t.Errorf("value = %v, want 0.75", o.Value)
	}
}

func TestBuildRepeatPolicies(t *testing.T) {
	lib, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	pulse, err := lib.Build("pulse")
	if err != nil {
		t.Fatalf("build pulse: %v", err)
	}
	if !pulse.TotalDuration().IsInfinite() {
		t.Errorf("pulse total = %v, want infinite", pulse.TotalDuration())
	}

	entrance, err := lib.Build("entrance")
	if err != nil {
		t.Fatalf("build entrance: %v", err)
	}
	if entrance.Duration() != 1200*time.Millisecond {
		t.Errorf("duration = %v, want 1.2s", entrance.Duration())
	}
	fin, ok := entrance.TotalDuration().Finite()
	if !ok || fin != 2200*time.Millisecond {
		t.Errorf("total = %v, want finite 2.2s", entrance.TotalDuration())
	}
}

func TestBuildReturnsFreshTweenables(t *testing.T) {
	lib, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	a, _ := lib.Build("fade_in")
	b, _ := lib.Build("fade_in")
	var o component.OpacityComponent
	a.Step(time.Second, &o)
	if b.Elapsed() != 0 {
		t.Error("built tweenables share playback state")
	}
}

func TestParseRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			"unknown lens",
			"animations:\n  x:\n    lens: warp\n    duration: 1s\n",
			ErrUnknownLens,
		},
		{
			"missing lens and delay",
			"animations:\n  x:\n    duration: 1s\n",
			ErrBadStep,
		},
		{
			"delay with lens",
			"animations:\n  x:\n    delay: 1s\n    lens: opacity\n",
			ErrBadStep,
		},
		{
			"inline fields with steps",
			"animations:\n  x:\n    lens: opacity\n    steps:\n      - delay: 1s\n",
			ErrBadStep,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	lib, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := lib.Build("missing"); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("err = %v, want ErrUnknownAnimation", err)
	}

	badEase := "animations:\n  x:\n    lens: opacity\n    ease: warp\n    duration: 1s\n    params: {start: 0, end: 1}\n"
	lib2, err := Parse([]byte(badEase))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := lib2.Build("x"); !errors.Is(err, ErrUnknownEase) {
		t.Errorf("err = %v, want ErrUnknownEase", err)
	}

	badRepeat := "animations:\n  x:\n    lens: opacity\n    repeat: sometimes\n    duration: 1s\n    params: {start: 0, end: 1}\n"
	lib3, err := Parse([]byte(badRepeat))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := lib3.Build("x"); !errors.Is(err, ErrBadStep) {
		t.Errorf("err = %v, want ErrBadStep", err)
	}
}

func TestParseRepeat(t *testing.T) {
	tests := []struct {
		in   string
		want tween.TotalDuration
	}{
		{"", tween.FiniteTotal(time.Second)},
		{"once", tween.FiniteTotal(time.Second)},
		{"3", tween.FiniteTotal(3 * time.Second)},
		{"for:2500ms", tween.FiniteTotal(2500 * time.Millisecond)},
		{"infinite", tween.InfiniteTotal()},
	}
	for _, tt := range tests {
		count, err := parseRepeat(tt.in)
		if err != nil {
			t.Errorf("parseRepeat(%q): %v", tt.in, err)
			continue
		}
		c := tween.NewAnimClock(time.Second, count, tween.Repeat)
		if c.Total() != tt.want {
			t.Errorf("parseRepeat(%q) total = %v, want %v", tt.in, c.Total(), tt.want)
		}
	}
}
