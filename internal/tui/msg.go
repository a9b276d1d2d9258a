package tui

import "github.com/papapumpkin/orrery/internal/scene"

// Scene sources carried by MsgSceneLoaded.
const (
	SourceRefresh = "refresh" // user pressed the refresh key
	SourceReload  = "reload"  // the elements file changed on disk
)

// MsgSceneLoaded replaces the displayed scene.
type MsgSceneLoaded struct {
	Scene  *scene.Scene
	Source string
}

// MsgSceneFailed reports a refresh or reload that could not produce a scene.
// The previous scene stays on screen.
type MsgSceneFailed struct {
	Err    error
	Source string
}
