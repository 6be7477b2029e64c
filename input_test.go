package main

import (
	"reflect"
	"testing"

	"github.com/milk9111/modordie/obj"
	"github.com/milk9111/modordie/prefabs"
)

func TestInputTransitions(t *testing.T) {
	in := NewInput()

	tests := []struct {
		name string
		cur  map[obj.Action]bool
		want []InputEvent
	}{
		{name: "nothing held", cur: map[obj.Action]bool{}},
		{
			name: "press right",
			cur:  map[obj.Action]bool{obj.ActionRight: true},
			want: []InputEvent{{Action: obj.ActionRight, Pressed: true}},
		},
		{name: "still held", cur: map[obj.Action]bool{obj.ActionRight: true}},
		{
			name: "jump while running",
			cur:  map[obj.Action]bool{obj.ActionRight: true, obj.ActionUp: true},
			want: []InputEvent{{Action: obj.ActionUp, Pressed: true}},
		},
		{
			name: "switch direction",
			cur:  map[obj.Action]bool{obj.ActionLeft: true},
			want: []InputEvent{
				{Action: obj.ActionUp, Pressed: false},
				{Action: obj.ActionLeft, Pressed: true},
				{Action: obj.ActionRight, Pressed: false},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := in.apply(tt.cur)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputRelease(t *testing.T) {
	in := NewInput()
	in.apply(map[obj.Action]bool{obj.ActionLeft: true, obj.ActionUp: true})

	got := in.Release()
	want := []InputEvent{
		{Action: obj.ActionUp, Pressed: false},
		{Action: obj.ActionLeft, Pressed: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Release = %v, want %v", got, want)
	}
	if again := in.Release(); len(again) != 0 {
		t.Fatalf("second Release = %v, want none", again)
	}
}

func TestPlayerSprite(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	got := playerSprite(spec)
	if got.Stand != "character0" || len(got.Walk) != 4 {
		t.Fatalf("textures = %q %v", got.Stand, got.Walk)
	}
	if got.JumpSound != "jump1" || got.GameOverSound != "gameover2" {
		t.Fatalf("sounds = %q %q", got.JumpSound, got.GameOverSound)
	}
	if got.ChangeDistance != 64 {
		t.Fatalf("ChangeDistance = %v, want 64", got.ChangeDistance)
	}
}

func TestWatchDirs(t *testing.T) {
	if got := watchDirs(""); !reflect.DeepEqual(got, []string{"configs", "levels", "prefabs"}) {
		t.Fatalf("watchDirs(\"\") = %v", got)
	}
	got := watchDirs("/etc/modordie/config.yaml")
	if got[len(got)-1] != "/etc/modordie" {
		t.Fatalf("watchDirs = %v, want config dir last", got)
	}
}
