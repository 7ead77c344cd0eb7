package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// ClockData is the length of the step being simulated, in seconds.
type ClockData struct {
	DT float64
}

var Clock = donburi.NewComponentType[ClockData]()
