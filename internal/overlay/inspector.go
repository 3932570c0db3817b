package overlay

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/game"
	"github.com/leterax/go-planets/pkg/scene"
)

// DefaultRefresh is how many ticks pass between status refreshes
const DefaultRefresh = 15

// Titler receives the formatted status line
type Titler interface {
	SetTitle(title string)
}

// Inspector is a game.System that reports camera and planet state.
// The status is written to the window title and logged at debug level
// whenever it changes.
type Inspector struct {
	base       string
	window     Titler
	refresh    uint64
	worldScale float64

	last string
}

// NewInspector creates an inspector. base prefixes every title.
func NewInspector(base string, window Titler, worldScale float64) *Inspector {
	return &Inspector{
		base:       base,
		window:     window,
		refresh:    DefaultRefresh,
		worldScale: worldScale,
	}
}

// SetWorldScale changes the metres-per-unit used for distances
func (i *Inspector) SetWorldScale(scale float64) {
	i.worldScale = scale
}

// EditCameras applies fn to every camera's state
func (i *Inspector) EditCameras(reg *scene.Registry, fn func(*camera.State)) {
	reg.EachCamera(func(_ ecs.Entity, _ *scene.Transform, s *camera.State) {
		fn(s)
	})
}

// Update refreshes the status every refresh ticks
func (i *Inspector) Update(ctx *game.Context) {
	if ctx.Tick%i.refresh != 0 {
		return
	}

	status := i.Status(ctx)
	if status == i.last {
		return
	}
	i.last = status

	if i.window != nil {
		i.window.SetTitle(i.base + " | " + status)
	}
	ctx.Logger.Debug("inspector", zap.String("status", status), zap.Uint64("tick", ctx.Tick))
}

// Status formats the current scene state
func (i *Inspector) Status(ctx *game.Context) string {
	var parts []string
	if ctx.Capture != nil {
		parts = append(parts, ctx.Capture.Mode().String())
	}

	var eye mgl32.Vec3
	found := false
	ctx.Registry.EachCamera(func(_ ecs.Entity, t *scene.Transform, s *camera.State) {
		if found {
			return
		}
		found = true
		eye = t.Position

		state := "on"
		if !s.Enabled {
			state = "off"
		}
		parts = append(parts, fmt.Sprintf("yaw %.1f pitch %.1f speed %.2f [%s]", s.Yaw, s.Pitch, s.Speed(), state))
	})

	ctx.Registry.EachPlanet(func(_ ecs.Entity, t *scene.Transform, p *scene.Planet) {
		line := fmt.Sprintf("%s %.3g kg", p.Name, p.Weight)
		if found {
			metres := float64(t.Position.Sub(eye).Len()) * i.worldScale
			line += " at " + FormatDistance(metres)
		}
		parts = append(parts, line)
	})

	return strings.Join(parts, " | ")
}

// FormatDistance renders metres with a readable unit
func FormatDistance(metres float64) string {
	if metres < 1000 {
		return fmt.Sprintf("%.0f m", metres)
	}
	return fmt.Sprintf("%.0f km", metres/1000)
}
