package view

import "image/color"

// A 2 dimensional vector
type Vec2 struct {
	X, Y int16
}

// A single vertex with a position and color
type Vertex struct {
	Position Vec2
	Color    color.RGBA
}

// Stores the draw data
type DrawData struct {
	VtxBuffer []Vertex
}

// Pushes vertices to the vertex buffer
func (dd *DrawData) PushVertices(vertices ...Vertex) {
	dd.VtxBuffer = append(dd.VtxBuffer, vertices...)
}

func (dd *DrawData) PushQuad(vertices ...Vertex) {
	if len(vertices) != 4 {
		panic("view: PushQuad takes 4 vertices")
	}

	// push the two triangles
	dd.PushVertices(vertices[0:3]...)
	dd.PushVertices(vertices[1:4]...)
}

// Pushes an axis aligned rectangle
func (dd *DrawData) PushRect(x, y, w, h int16, clr color.RGBA) {
	dd.PushQuad(
		NewVertex(Vec2{x, y}, clr),
		NewVertex(Vec2{x + w, y}, clr),
		NewVertex(Vec2{x, y + h}, clr),
		NewVertex(Vec2{x + w, y + h}, clr),
	)
}

// Drops all vertices
func (dd *DrawData) Reset() {
	dd.VtxBuffer = dd.VtxBuffer[:0]
}

func NewVertex(pos Vec2, clr color.RGBA) Vertex {
	return Vertex{Position: pos, Color: clr}
}

func NewDrawData() *DrawData {
	return &DrawData{}
}
