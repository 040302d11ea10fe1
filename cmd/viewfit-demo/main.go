package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/viewfit/component"
	"github.com/lixenwraith/viewfit/core"
	"github.com/lixenwraith/viewfit/engine"
	"github.com/lixenwraith/viewfit/event"
	"github.com/lixenwraith/viewfit/parameter"
	"github.com/lixenwraith/viewfit/system"
)

// Terminal demo: the terminal is the primary surface, one camera keeps a
// fixed-ratio viewport letterboxed inside it, a second camera targets the
// surface directly with a 4:3 ratio and is drawn as a dim underlay.
// Up/Down adjust the main ratio, q/Esc/Ctrl+C quit.
func main() {
	ratio := flag.Float64("ratio", 16.0/9.0, "initial viewport aspect ratio (width/height)")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	world := engine.NewWorld()
	world.AddSystem(system.NewCameraDetectSystem(world))
	world.AddSystem(system.NewSurfaceDetectSystem(world))
	world.AddSystem(system.NewViewportSyncSystem(world))

	w, h := screen.Size()
	surface := world.SpawnSurface(w, h, 1.0, true)
	camera := world.SpawnCamera(*ratio, component.RenderTarget{Kind: component.TargetPrimary})
	underlay := world.SpawnCamera(4.0/3.0, component.RenderTarget{
		Kind:    component.TargetSurface,
		Surface: surface,
	})

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return

		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventResize:
				nw, nh := tev.Size()
				if surf, ok := world.Surfaces.Get(surface); ok {
					surf.Width, surf.Height = nw, nh
					world.Surfaces.Set(surface, surf)
				}
				world.PushNotification(event.EventSurfaceResized, &event.SurfaceResizedPayload{
					Surface: surface,
					Width:   nw,
					Height:  nh,
				})
				screen.Sync()

			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC || tev.Rune() == 'q':
					return
				case tev.Key() == tcell.KeyUp:
					adjustRatio(world, camera, 0.1)
				case tev.Key() == tcell.KeyDown:
					adjustRatio(world, camera, -0.1)
				}
			}

		case <-ticker.C:
			world.Update()
			draw(screen, world, camera, underlay)
		}
	}
}

// adjustRatio mutates the camera's desired aspect ratio through the store,
// which the camera detector picks up on the next tick
func adjustRatio(world *engine.World, camera core.Entity, delta float64) {
	vp, ok := world.Viewports.Get(camera)
	if !ok {
		return
	}
	vp.AspectRatio += delta
	if vp.AspectRatio < 0.1 {
		vp.AspectRatio = 0.1
	}
	world.Viewports.Set(camera, vp)
}

func draw(screen tcell.Screen, world *engine.World, camera, underlay core.Entity) {
	screen.Clear()

	if cam, ok := world.Cameras.Get(underlay); ok {
		fillArea(screen, cam.Viewport, tcell.StyleDefault.Background(tcell.ColorDarkSlateGray))
	}

	cam, ok := world.Cameras.Get(camera)
	if !ok {
		screen.Show()
		return
	}
	fillArea(screen, cam.Viewport, tcell.StyleDefault.Background(tcell.ColorDarkRed))

	vp, _ := world.Viewports.Get(camera)
	status := fmt.Sprintf(" ratio %.2f | viewport %dx%d at (%d,%d) | Up/Down adjust, q quit ",
		vp.AspectRatio, cam.Viewport.Width, cam.Viewport.Height, cam.Viewport.X, cam.Viewport.Y)
	drawText(screen, 0, 0, status, tcell.StyleDefault.Bold(true))

	screen.Show()
}

func fillArea(screen tcell.Screen, area core.Area, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
