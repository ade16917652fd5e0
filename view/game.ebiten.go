package view

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var emptyImage *ebiten.Image

// 1x1 white source image for untextured triangles
func whiteImage() *ebiten.Image {
	if emptyImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		emptyImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return emptyImage
}

// An Ebitengine game that shows a Viewer
type Game struct {
	Viewer *Viewer
}

func (game *Game) Update() error {
	v := game.Viewer
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		v.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		v.Cursor = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		v.Cursor = len(v.Steps) - 1
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}
	v.Build()
	return nil
}

func (game *Game) Draw(screen *ebiten.Image) {
	dd := game.Viewer.DrawData
	vertices := make([]ebiten.Vertex, len(dd.VtxBuffer))
	indices := make([]uint16, len(dd.VtxBuffer))

	for idx, vtx := range dd.VtxBuffer {
		vertices[idx].ColorR = float32(vtx.Color.R) / 255
		vertices[idx].ColorG = float32(vtx.Color.G) / 255
		vertices[idx].ColorB = float32(vtx.Color.B) / 255
		vertices[idx].ColorA = 1 // should always be 1
		vertices[idx].DstX = float32(vtx.Position.X)
		vertices[idx].DstY = float32(vtx.Position.Y)
		vertices[idx].SrcX = 1
		vertices[idx].SrcY = 1
		indices[idx] = uint16(idx)
	}

	screen.DrawTriangles(vertices, indices, whiteImage(), &ebiten.DrawTrianglesOptions{})
	ebitenutil.DebugPrintAt(screen, game.Viewer.Caption(), int(ROW_X), 4)
	ebitenutil.DebugPrintAt(screen, "space/right: next  left: back  home/end  q: quit", int(ROW_X), SCREEN_H-20)
}

func (game *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return SCREEN_W, SCREEN_H
}

// Opens a window showing `v`. Blocks until the window is closed
func Run(v *Viewer) error {
	ebiten.SetWindowSize(SCREEN_W*2, SCREEN_H*2)
	ebiten.SetWindowTitle("restdiv")
	v.Build()
	err := ebiten.RunGame(&Game{Viewer: v})
	if err == ebiten.Termination {
		return nil
	}
	return err
}
