package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"oddstream.games/digest/splash"
)

type fakeScene struct {
	name    string
	updates int
	w, h    int
	err     error
	onTick  func()
}

func (f *fakeScene) Layout(w, h int) (int, int) {
	f.w, f.h = w, h
	return w, h
}

func (f *fakeScene) Update() error {
	f.updates++
	if f.onTick != nil {
		f.onTick()
	}
	return f.err
}

func (f *fakeScene) Draw(*ebiten.Image) {}

func names(sm *SceneManager) []string {
	var out []string
	for _, s := range sm.scenes {
		out = append(out, s.(*fakeScene).name)
	}
	return out
}

func TestSceneManagerInsertAndRemove(t *testing.T) {
	sm := &SceneManager{}
	a, b, c := &fakeScene{name: "a"}, &fakeScene{name: "b"}, &fakeScene{name: "c"}
	sm.Push(a)
	sm.Push(b)
	sm.Insert(0, c)

	if got := names(sm); len(got) != 3 || got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("order = %v, want [c a b]", got)
	}
	if sm.Get() != b {
		t.Errorf("top = %v, want b", sm.Get())
	}
	if !sm.Remove(a) || sm.Remove(a) {
		t.Error("Remove should succeed once")
	}
	if sm.Len() != 2 {
		t.Errorf("Len = %d, want 2", sm.Len())
	}
	sm.Insert(99, a)
	if sm.Get() != a {
		t.Error("out of range Insert should push on top")
	}
}

func TestSceneManagerUpdateAllowsSelfRemoval(t *testing.T) {
	sm := &SceneManager{}
	a, b := &fakeScene{name: "a"}, &fakeScene{name: "b"}
	a.onTick = func() { sm.Remove(a) }
	sm.Push(a)
	sm.Push(b)

	if err := sm.Update(); err != nil {
		t.Fatal(err)
	}
	if a.updates != 1 || b.updates != 1 {
		t.Errorf("updates a=%d b=%d, want 1 each", a.updates, b.updates)
	}
	if sm.Len() != 1 || sm.Get() != b {
		t.Errorf("scenes = %v, want [b]", names(sm))
	}
}

func TestSceneManagerUpdateError(t *testing.T) {
	sm := &SceneManager{}
	boom := errors.New("boom")
	sm.Push(&fakeScene{name: "a", err: boom})
	if err := sm.Update(); !errors.Is(err, boom) {
		t.Errorf("Update error = %v, want boom", err)
	}
}

func TestSceneManagerLayout(t *testing.T) {
	sm := &SceneManager{}
	a := &fakeScene{name: "a"}
	sm.Push(a)
	if w, h := sm.Layout(320, 240); w != 320 || h != 240 || a.w != 320 || a.h != 240 {
		t.Errorf("layout %dx%d, scene %dx%d", w, h, a.w, a.h)
	}
}

func TestRemoveSplash(t *testing.T) {
	sm := &SceneManager{}
	sc, err := NewSplashScene(splash.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	other, err := NewSplashScene(splash.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	sm.Push(&fakeScene{name: "content"})
	sm.Push(sc)

	sm.RemoveSplash(other.Animator())
	if sm.Len() != 2 {
		t.Fatal("removed a splash that was not in the manager")
	}
	sm.RemoveSplash(sc.Animator())
	if sm.Len() != 1 {
		t.Fatal("splash not removed")
	}
}
