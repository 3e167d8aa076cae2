// Package lemonade implements the tap-driven lemonade state machine.
//
// A Session starts at Lemon and walks Lemon → Squeezing → Drinking →
// EmptyGlass → Restarting → Lemon, one state per tap, except that Squeezing
// holds until the lemon has been squeezed RequiredTaps times.
package lemonade

import "fmt"

// State is one of the five phases of a lemonade cycle.
type State int

const (
	Lemon State = iota
	Squeezing
	Drinking
	EmptyGlass
	Restarting
	stateCount
)

// States lists every state in cycle order.
var States = [stateCount]State{Lemon, Squeezing, Drinking, EmptyGlass, Restarting}

var stateNames = [stateCount]string{
	"lemon", "squeezing", "drinking", "empty-glass", "restarting",
}

// Image names the artwork shown for a state.
type Image string

const (
	ImageLemonTree Image = "lemon tree"
	ImageSqueeze   Image = "squeeze"
	ImageDrink     Image = "drink"
	ImageRestart   Image = "restart"
	ImageEmoji     Image = "emoji"
)

// Asset is the (image, caption) pair rendered for a state. The caption is
// also the state's text description.
type Asset struct {
	Image   Image
	Caption string
}

var assets = [stateCount]Asset{
	Lemon:      {ImageLemonTree, "Touch the lemon tree to select a lemon"},
	Squeezing:  {ImageSqueeze, "Touch the lemon to squeeze it"},
	Drinking:   {ImageDrink, "Touch to drink the lemonade"},
	EmptyGlass: {ImageRestart, "Touch the empty glass"},
	Restarting: {ImageEmoji, "Start over?"},
}

// Valid reports whether s is one of the five defined states.
func (s State) Valid() bool {
	return s >= Lemon && s < stateCount
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Asset returns the image and caption for s. It panics on an undefined
// state.
func (s State) Asset() Asset {
	mustValid(s)
	return assets[s]
}

// ParseState returns the state whose String form is name.
func ParseState(name string) (State, bool) {
	for _, s := range States {
		if stateNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

func mustValid(s State) {
	if !s.Valid() {
		panic(fmt.Sprintf("lemonade: undefined state %d", int(s)))
	}
}
