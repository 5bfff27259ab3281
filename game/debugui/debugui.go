// Package debugui provides immediate-mode inspection windows for a running
// board using Dear ImGui. Hosts call the Render methods once per frame
// between their backend's BeginFrame and EndFrame.
package debugui

import "time"

// FrameTimer measures wall-clock delta time between frames for the timing
// windows.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
