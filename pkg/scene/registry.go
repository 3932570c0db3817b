package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/leterax/go-planets/pkg/camera"
)

// Registry is the explicit entity store shared by the systems.
// It must not be copied after NewRegistry.
type Registry struct {
	world ecs.World

	cameras *ecs.Map2[Transform, camera.State]
	planets *ecs.Map2[Transform, Planet]

	cameraFilter *ecs.Filter2[Transform, camera.State]
	planetFilter *ecs.Filter2[Transform, Planet]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	r := &Registry{world: ecs.NewWorld()}
	r.cameras = ecs.NewMap2[Transform, camera.State](&r.world)
	r.planets = ecs.NewMap2[Transform, Planet](&r.world)
	r.cameraFilter = ecs.NewFilter2[Transform, camera.State](&r.world)
	r.planetFilter = ecs.NewFilter2[Transform, Planet](&r.world)
	return r
}

// SpawnCamera adds a camera at position, oriented towards lookAt
func (r *Registry) SpawnCamera(position, lookAt mgl32.Vec3) ecs.Entity {
	state := camera.DefaultState()
	state.LookAt(position, lookAt)

	t := Transform{Position: position, Rotation: state.Rotation()}
	return r.cameras.NewEntity(&t, &state)
}

// SpawnPlanet adds a planet at position
func (r *Registry) SpawnPlanet(p Planet, position mgl32.Vec3) ecs.Entity {
	t := NewTransform(position)
	return r.planets.NewEntity(&t, &p)
}

// Camera returns the components of a camera entity, or nils if e is not a
// live camera. The pointers are only valid until the next structural change.
func (r *Registry) Camera(e ecs.Entity) (*Transform, *camera.State) {
	if !r.world.Alive(e) || !r.cameras.HasAll(e) {
		return nil, nil
	}
	return r.cameras.Get(e)
}

// Planet returns the components of a planet entity, or nils
func (r *Registry) Planet(e ecs.Entity) (*Transform, *Planet) {
	if !r.world.Alive(e) || !r.planets.HasAll(e) {
		return nil, nil
	}
	return r.planets.Get(e)
}

// Cameras lists every camera entity
func (r *Registry) Cameras() []ecs.Entity {
	var out []ecs.Entity
	query := r.cameraFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// Planets lists every planet entity
func (r *Registry) Planets() []ecs.Entity {
	var out []ecs.Entity
	query := r.planetFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// EachCamera calls fn for every camera. fn must not spawn or remove entities.
func (r *Registry) EachCamera(fn func(e ecs.Entity, t *Transform, s *camera.State)) {
	query := r.cameraFilter.Query()
	for query.Next() {
		t, s := query.Get()
		fn(query.Entity(), t, s)
	}
}

// EachPlanet calls fn for every planet. fn must not spawn or remove entities.
func (r *Registry) EachPlanet(fn func(e ecs.Entity, t *Transform, p *Planet)) {
	query := r.planetFilter.Query()
	for query.Next() {
		t, p := query.Get()
		fn(query.Entity(), t, p)
	}
}

// SetCamerasEnabled toggles input handling on every camera
func (r *Registry) SetCamerasEnabled(enabled bool) {
	r.EachCamera(func(_ ecs.Entity, _ *Transform, s *camera.State) {
		s.Enabled = enabled
	})
}

// Close removes every entity
func (r *Registry) Close() {
	for _, e := range append(r.Cameras(), r.Planets()...) {
		r.world.RemoveEntity(e)
	}
}
