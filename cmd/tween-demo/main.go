// Command tween-demo renders a small terminal showcase of the animation
// engine: glyphs bouncing on mirrored tweens, a color pulse driven by a
// YAML animation library, and a completion chime.
//
// Usage: tween-demo [animations.yaml]
//
// With a file argument the library is hot-reloaded on save.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/quasilyte/gmath"

	"github.com/lixenwraith/tween/component"
	"github.com/lixenwraith/tween/content"
	"github.com/lixenwraith/tween/core"
	"github.com/lixenwraith/tween/ease"
	"github.com/lixenwraith/tween/engine"
	"github.com/lixenwraith/tween/event"
	"github.com/lixenwraith/tween/lens"
	"github.com/lixenwraith/tween/tween"
)

const (
	frameMs     = 16
	bouncers    = 12
	bounceRunes = "abcdefghijklmnopqrstuvwxyz0123456789"
)

const defaultAnimations = `
animations:
  pulse:
    lens: text_color
    ease: sine_in_out
    duration: 900ms
    repeat: infinite
    mirrored: true
    params:
      start: {r: 60, g: 60, b: 60}
      end: {r: 255, g: 220, b: 80}
  banner_entrance:
    steps:
      - delay: 300ms
      - lens: opacity
        ease: quad_out
        duration: 700ms
        params: {start: 0, end: 1}
`

type Demo struct {
	screen        tcell.Screen
	width, height int

	eng   *engine.Engine
	clock *engine.PausableClock
	lib   *content.Library

	banner  core.Entity
	speed   float64
	dropped int

	audioInit bool
}

func NewDemo(lib *content.Library) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &Demo{
		screen: screen,
		eng:    engine.NewEngine(),
		clock:  engine.NewPausableClock(),
		lib:    lib,
		speed:  1,
	}
	d.width, d.height = screen.Size()

	if err := d.initAudio(); err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	d.spawnBouncers()
	if err := d.spawnBanner(); err != nil {
		d.cleanup()
		return nil, err
	}
	return d, nil
}

func (d *Demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

func (d *Demo) playChime() {
	if !d.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, _ := generators.SineTone(sampleRate, 660)
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

// spawnBouncers creates glyph entities ping-ponging across the screen,
// each with its own duration so the field stays out of phase
func (d *Demo) spawnBouncers() {
	w := d.eng.World()
	for i := 0; i < bouncers; i++ {
		e := w.CreateEntity()
		y := float64(2 + rand.Intn(max(d.height-6, 1)))
		engine.AddComponent(w, e, component.NewTransform(gmath.Vec{X: 0, Y: y}))
		engine.AddComponent(w, e, component.GlyphComponent{
			Rune: rune(bounceRunes[rand.Intn(len(bounceRunes))]),
			Fg:   core.RGB{R: 80, G: 200, B: 255},
		})

		move := tween.New(
			ease.QuadInOut,
			time.Duration(1500+rand.Intn(2500))*time.Millisecond,
			tween.Infinite(),
			tween.MirroredRepeat,
			lens.TransformPositionLens{
				Start: gmath.Vec{X: 1, Y: y},
				End:   gmath.Vec{X: float64(max(d.width-2, 2)), Y: y},
			},
		)
		d.eng.Attach(e, engine.NewAnimator(move))
	}
}

// spawnBanner builds the banner entity from the animation library: a
// looping color pulse on the text plus a one-shot entrance fade that
// destroys its animator on completion
func (d *Demo) spawnBanner() error {
	w := d.eng.World()
	d.banner = w.CreateEntity()
	engine.AddComponent(w, d.banner, component.TextComponent{
		Text:  "tween-demo  [space] pause  [+/-] speed  [q] quit",
		Color: core.RGB{R: 60, G: 60, B: 60},
	})
	engine.AddComponent(w, d.banner, component.OpacityComponent{})

	pulse, err := d.lib.Build("pulse")
	if err != nil {
		return err
	}
	d.eng.Attach(d.banner, engine.NewAnimator(pulse))

	entrance, err := d.lib.Build("banner_entrance")
	if err != nil {
		return err
	}
	fader := w.CreateEntity()
	d.eng.Attach(fader, engine.NewAnimator(entrance).
		WithTarget(engine.ComponentTarget[component.OpacityComponent](d.banner)).
		WithDestroyOnCompletion())
	return nil
}

// restartBanner rebuilds the banner animations, used after a hot reload
func (d *Demo) restartBanner() {
	if a, ok := d.eng.AnimatorOf(d.banner); ok {
		if fresh, err := d.lib.Build("pulse"); err == nil {
			if err := a.SetTweenable(fresh); err != nil {
				log.Printf("pulse rebuild rejected: %v", err)
			}
		}
	}
}

func (d *Demo) handleEvents() {
	for _, ev := range d.eng.World().Resources().Event.Queue.Consume() {
		switch ev.Type {
		case event.EventAnimationCompleted:
			d.playChime()
		case event.EventAnimatorDropped:
			d.dropped++
		}
	}
}

func (d *Demo) draw() {
	d.screen.Clear()
	w := d.eng.World()

	glyphs := engine.StoreFor[component.GlyphComponent](w)
	transforms := engine.StoreFor[component.TransformComponent](w)
	for _, e := range glyphs.GetAllEntities() {
		g, _ := glyphs.GetComponent(e)
		tr, ok := transforms.GetComponent(e)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(g.Fg.R), int32(g.Fg.G), int32(g.Fg.B)))
		d.screen.SetContent(int(tr.Position.X), int(tr.Position.Y), g.Rune, nil, style)
	}

	if text, ok := engine.GetComponent[component.TextComponent](w, d.banner); ok {
		c := text.Color
		if op, ok := engine.GetComponent[component.OpacityComponent](w, d.banner); ok {
			c = c.Scale(op.Value)
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		for i, r := range text.Text {
			d.screen.SetContent(2+i, 0, r, nil, style)
		}
	}

	status := fmt.Sprintf("animators:%d dropped:%d speed:%.2f paused:%v",
		d.eng.Count(), d.dropped, d.speed, d.clock.IsPaused())
	for i, r := range status {
		d.screen.SetContent(2+i, d.height-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	d.screen.Show()
}

func (d *Demo) setSpeed(speed float64) {
	if speed < 0.25 {
		speed = 0.25
	}
	if speed > 4 {
		speed = 4
	}
	d.speed = speed
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if d.clock.IsPaused() {
				d.clock.Resume()
			} else {
				d.clock.Pause()
			}
		case '+', '=':
			d.setSpeed(d.speed * 2)
		case '-':
			d.setSpeed(d.speed / 2)
		}
	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
	}
	return true
}

func (d *Demo) run() {
	ticker := time.NewTicker(frameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			dt := time.Duration(float64(d.clock.Tick()) * d.speed)
			d.eng.StepAll(dt)
			d.handleEvents()
			d.draw()
		}
	}
}

func (d *Demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func main() {
	var lib *content.Library
	var watcher *content.Watcher

	var demo *Demo
	if len(os.Args) > 1 {
		var err error
		watcher, err = content.Watch(os.Args[1], func(*content.Library) {
			if demo != nil {
				demo.restartBanner()
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		defer watcher.Close()
		lib = watcher.Library()
	} else {
		var err error
		lib, err = content.Parse([]byte(defaultAnimations))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse default animations: %v\n", err)
			os.Exit(1)
		}
	}

	demo, err := NewDemo(lib)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	demo.run()
}
