// Package ebiten provides Dear ImGui backend integration for hosts built on
// the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to layer the debugui windows over an Ebiten game loop.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
