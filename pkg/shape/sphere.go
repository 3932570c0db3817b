// Package shape generates mesh geometry on the CPU
package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved size of a Vertex: position, normal, uv
const FloatsPerVertex = 8

// Vertex is a mesh vertex with position, normal and texture coordinates
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// UVSphere builds a latitude/longitude sphere centred on the origin.
// Poles lie on ±Z. sectors and stacks are raised to 3 and 2 if smaller.
func UVSphere(radius float32, sectors, stacks int) ([]Vertex, []uint32) {
	if sectors < 3 {
		sectors = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	vertices := make([]Vertex, 0, (stacks+1)*(sectors+1))
	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		ring := math.Cos(stackAngle)
		z := math.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			n := mgl32.Vec3{
				float32(ring * math.Cos(sectorAngle)),
				float32(ring * math.Sin(sectorAngle)),
				float32(z),
			}
			vertices = append(vertices, Vertex{
				Position:  n.Mul(radius),
				Normal:    n,
				TexCoords: mgl32.Vec2{float32(j) / float32(sectors), float32(i) / float32(stacks)},
			})
		}
	}

	indices := make([]uint32, 0, sectors*(stacks-1)*6)
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors+1)

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return vertices, indices
}

// Interleave flattens vertices into the layout NewMesh expects
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoords[0], v.TexCoords[1],
		)
	}
	return out
}
