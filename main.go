package main

import (
	"github.com/faiface/pixel/pixelgl"
	"github.com/lorenzo-arena/chip8go/cmd"
)

func main() {
	// pixelgl needs access to the main OS thread, so the whole cobra
	// command tree (and therefore the emulator run loop) executes
	// inside pixelgl.Run's callback.
	pixelgl.Run(cmd.Execute)
}
