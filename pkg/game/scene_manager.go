package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		sm.closeCurrent()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize forwards a viewport change to the active scene.
// Without an active scene the surface follows the window size.
func (sm *SceneManager) Resize(width, height int, scale float64) (int, int) {
	if sm.currentScene == nil {
		return int(float64(width) * scale), int(float64(height) * scale)
	}
	return sm.currentScene.Resize(width, height, scale)
}

// Close closes the active scene (called when the window closes).
func (sm *SceneManager) Close() {
	sm.closeCurrent()
}

func (sm *SceneManager) closeCurrent() {
	closer, ok := sm.currentScene.(Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Printf("[SceneManager] Warning: failed to close scene: %v", err)
	}
}
