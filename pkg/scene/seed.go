package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

var (
	// DefaultCameraPosition is where the startup camera is placed
	DefaultCameraPosition = mgl32.Vec3{-2, 2.5, 5}

	// Earth is the planet seeded at startup
	Earth = Planet{
		Name:   "Earth",
		Weight: 6e24,
		Radius: 5,
		Color:  SeaGreen,
	}
	earthPosition = mgl32.Vec3{0, 0.5, 0}
)

// Seeded holds the handles of the startup entities
type Seeded struct {
	Camera ecs.Entity
	Earth  ecs.Entity
}

// Seed spawns the startup camera looking at the origin and the Earth
func (r *Registry) Seed() Seeded {
	return Seeded{
		Camera: r.SpawnCamera(DefaultCameraPosition, mgl32.Vec3{}),
		Earth:  r.SpawnPlanet(Earth, earthPosition),
	}
}
