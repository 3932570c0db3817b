// Package openglhelper wraps the GLFW window and the OpenGL objects the
// viewer draws with in a small Go-friendly API.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferUsage is the GL usage hint for a buffer's data store
type BufferUsage uint32

const (
	// StaticDraw: uploaded once, drawn many times
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw: rewritten often, drawn many times
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
)

// BufferObject is a GL buffer (VBO, EBO, ...)
type BufferObject struct {
	ID   uint32
	Type uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, ...
	Size int    // bytes
}

// NewBufferObject creates a buffer of the given type and uploads data.
// data may be nil to only allocate storage.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var id uint32
	gl.GenBuffers(1, &id)

	bo := &BufferObject{ID: id, Type: bufferType, Size: sizeInBytes}
	bo.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))
	return bo
}

// NewVBO uploads interleaved vertex data
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage)
}

// NewEBO uploads triangle indices
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), usage)
}

// Bind binds the buffer to its target
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind clears the buffer's target
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete frees the buffer
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// VertexArrayObject stores vertex attribute configuration
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a vertex array object
func NewVAO() *VertexArrayObject {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArrayObject{ID: id}
}

// Bind binds the vertex array
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds any vertex array
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete frees the vertex array
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer describes and enables one float attribute of the
// currently bound array buffer
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}
