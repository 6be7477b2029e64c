package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/modordie/obj"
)

const stickDeadzone = 0.3

var actions = []obj.Action{obj.ActionUp, obj.ActionLeft, obj.ActionRight}

// InputEvent is a key-down or key-up of one action.
type InputEvent struct {
	Action  obj.Action
	Pressed bool
}

// Input turns the polled keyboard and gamepad state into press and release
// events, one per transition.
type Input struct {
	held map[obj.Action]bool
}

func NewInput() *Input {
	return &Input{held: make(map[obj.Action]bool)}
}

// Update polls the devices and returns the transitions since the last call.
func (i *Input) Update() []InputEvent {
	return i.apply(poll())
}

// PausePressed reports whether Escape or the gamepad start button went down
// this frame.
func (i *Input) PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(ids[0], ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

// Release emits key-ups for everything still held, e.g. when the game
// pauses mid-jump.
func (i *Input) Release() []InputEvent {
	return i.apply(map[obj.Action]bool{})
}

func (i *Input) apply(cur map[obj.Action]bool) []InputEvent {
	var events []InputEvent
	for _, a := range actions {
		if cur[a] == i.held[a] {
			continue
		}
		i.held[a] = cur[a]
		events = append(events, InputEvent{Action: a, Pressed: cur[a]})
	}
	return events
}

func poll() map[obj.Action]bool {
	cur := map[obj.Action]bool{
		obj.ActionUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		obj.ActionLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		obj.ActionRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		id := ids[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			cur[obj.ActionLeft] = cur[obj.ActionLeft] || x < 0
			cur[obj.ActionRight] = cur[obj.ActionRight] || x > 0
		}
		cur[obj.ActionUp] = cur[obj.ActionUp] || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		cur[obj.ActionLeft] = cur[obj.ActionLeft] || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		cur[obj.ActionRight] = cur[obj.ActionRight] || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	}
	return cur
}
