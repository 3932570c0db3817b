package render

import (
	"embed"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/leterax/go-planets/internal/openglhelper"
	"github.com/leterax/go-planets/internal/overlay"
	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/scene"
)

//go:embed shaders
var shaderFS embed.FS

// Renderer draws the planets from the first camera's point of view and the
// overlay panel on top
type Renderer struct {
	window *openglhelper.Window
	camera *Camera
	logger *zap.Logger

	planetShader *openglhelper.Shader
	sphere       *openglhelper.Mesh

	panel *overlay.Panel
}

// NewRenderer compiles shaders and uploads the planet mesh.
// panel may be nil.
func NewRenderer(window *openglhelper.Window, panel *overlay.Panel, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	shader, err := openglhelper.LoadShader(shaderFS, "shaders/planet.vert", "shaders/planet.frag")
	if err != nil {
		return nil, fmt.Errorf("failed to load planet shader: %w", err)
	}

	fbWidth, fbHeight := window.FramebufferSize()
	r := &Renderer{
		window:       window,
		camera:       NewCamera(fbWidth, fbHeight),
		logger:       logger,
		planetShader: shader,
		sphere:       openglhelper.NewUVSphere(SphereSectors, SphereStacks),
		panel:        panel,
	}
	window.OnResize(r.camera.UpdateProjectionMatrix)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	return r, nil
}

// Draw renders one frame
func (r *Renderer) Draw(reg *scene.Registry) {
	r.window.Clear(ClearColor)

	var view mgl32.Mat4
	found := false
	reg.EachCamera(func(_ ecs.Entity, t *scene.Transform, _ *camera.State) {
		if !found {
			view, found = t.ViewMatrix(), true
		}
	})
	if found {
		r.drawPlanets(reg, view)
	}

	r.drawPanel()
}

func (r *Renderer) drawPlanets(reg *scene.Registry, view mgl32.Mat4) {
	r.planetShader.Use()
	r.planetShader.SetMat4("view", view)
	r.planetShader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.planetShader.SetVec3("lightDir", LightDirection)
	r.planetShader.SetVec3("lightColor", LightColor)
	r.planetShader.SetFloat("ambient", Ambient)

	reg.EachPlanet(func(_ ecs.Entity, t *scene.Transform, p *scene.Planet) {
		model := t.Matrix().Mul4(mgl32.Scale3D(p.Radius, p.Radius, p.Radius))
		r.planetShader.SetMat4("model", model)
		r.planetShader.SetVec3("color", p.Color)
		r.sphere.Draw()
	})
}

// drawPanel fills the overlay rectangle with a scissored clear
func (r *Renderer) drawPanel() {
	if r.panel == nil || !r.panel.Visible {
		return
	}

	winWidth, _ := r.window.Size()
	fbWidth, fbHeight := r.window.FramebufferSize()
	if winWidth == 0 || fbWidth == 0 {
		return
	}

	// Panel coordinates are in screen units; scale for HiDPI framebuffers.
	scale := float64(fbWidth) / float64(winWidth)
	p := *r.panel
	p.X, p.Y, p.Width, p.Height = p.X*scale, p.Y*scale, p.Width*scale, p.Height*scale
	x, y, w, h := p.Scissor(fbHeight)

	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
	gl.ClearColor(p.Color.X(), p.Color.Y(), p.Color.Z(), p.Color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
}

// Cleanup frees GPU resources. The window is closed by its owner.
func (r *Renderer) Cleanup() {
	if r.sphere != nil {
		r.sphere.Delete()
	}
	if r.planetShader != nil {
		r.planetShader.Delete()
	}
}
