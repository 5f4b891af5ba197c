package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"oddstream.games/digest/splash"
)

// GameScene interface defines the API for each game scene
// each separate scene (eg Splash, Content) must implement these
type GameScene interface {
	Layout(int, int) (int, int)
	Update() error
	Draw(*ebiten.Image)
}

// SceneManager holds the scenes on screen, bottom first.
// It is the parent a finished splash removes itself from.
type SceneManager struct {
	scenes []GameScene
}

var _ splash.Parent = (*SceneManager)(nil)

// Push adds scene on top of the others
func (sm *SceneManager) Push(scene GameScene) {
	sm.scenes = append(sm.scenes, scene)
}

// Insert puts scene at index i, 0 being the bottom
func (sm *SceneManager) Insert(i int, scene GameScene) {
	if i < 0 || i > len(sm.scenes) {
		i = len(sm.scenes)
	}
	sm.scenes = append(sm.scenes, nil)
	copy(sm.scenes[i+1:], sm.scenes[i:])
	sm.scenes[i] = scene
}

// Remove takes scene off the stack, reporting whether it was there
func (sm *SceneManager) Remove(scene GameScene) bool {
	for i, s := range sm.scenes {
		if s == scene {
			sm.scenes = append(sm.scenes[:i], sm.scenes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSplash implements splash.Parent
func (sm *SceneManager) RemoveSplash(a *splash.Animator) {
	for _, s := range sm.scenes {
		if ss, ok := s.(*SplashScene); ok && ss.animator == a {
			sm.Remove(ss)
			return
		}
	}
}

// Get returns the top GameScene, or nil
func (sm *SceneManager) Get() GameScene {
	if len(sm.scenes) == 0 {
		return nil
	}
	return sm.scenes[len(sm.scenes)-1]
}

// Len returns the number of scenes
func (sm *SceneManager) Len() int {
	return len(sm.scenes)
}

// Layout lays out every scene at the outside size
func (sm *SceneManager) Layout(outsideWidth, outsideHeight int) (int, int) {
	for _, s := range sm.scenes {
		s.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Update updates every scene, bottom first. A scene may remove itself.
func (sm *SceneManager) Update() error {
	scenes := make([]GameScene, len(sm.scenes))
	copy(scenes, sm.scenes)
	for _, s := range scenes {
		if err := s.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws every scene, bottom first
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	for _, s := range sm.scenes {
		s.Draw(screen)
	}
}
