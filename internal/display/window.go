// Package display is the presentation layer the core's framebuffer and
// keypad are read/written through: a pixelgl window that renders the
// 64x32 grid as filled squares and translates physical key events into
// keypad presses/releases.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/lorenzo-arena/chip8go/internal/framebuffer"
	"github.com/lorenzo-arena/chip8go/internal/keypad"
	"github.com/lorenzo-arena/chip8go/internal/nyan"
	"golang.org/x/image/colornames"
)

// keyRepeatDur controls how often a held key re-fires Press while the
// physical key stays down.
const keyRepeatDur = time.Second / 5

const (
	gridWidth    float64 = framebuffer.Width
	gridHeight   float64 = framebuffer.Height
	screenWidth  float64 = 1024
	screenHeight float64 = 768

	// nyanDegreesPerFrame is how fast the foreground hue rotates when
	// Nyan mode is enabled.
	nyanDegreesPerFrame = 2
)

// keyMap is the physical-key -> hex-keypad-code mapping.
var keyMap = map[int]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2,
	0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX,
	0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window wraps a pixelgl window with the CHIP-8-specific key mapping
// and optional Nyan color rotation.
type Window struct {
	*pixelgl.Window
	keysDown [keypad.NumKeys]*time.Ticker

	nyan     bool
	nyanHue  nyan.RGB
	baseline nyan.RGB
}

// Config selects optional presentation behavior.
type Config struct {
	// Nyan enables the foreground color-rotation presentation mode.
	Nyan bool
}

// New opens a pixelgl window sized for the CHIP-8 64x32 grid.
func New(cfg Config) (*Window, error) {
	pcfg := pixelgl.WindowConfig{
		Title:  "chip8go",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(pcfg)
	if err != nil {
		return nil, fmt.Errorf("display: create window: %w", err)
	}

	baseline := nyan.RGB{R: 1, G: 0, B: 0}
	return &Window{
		Window:   w,
		nyan:     cfg.Nyan,
		nyanHue:  baseline,
		baseline: baseline,
	}, nil
}

// DrawGraphics renders every lit framebuffer cell as a filled square,
// background white. When Nyan mode is enabled the foreground color
// rotates by nyanDegreesPerFrame each call.
func (w *Window) DrawGraphics(fb *framebuffer.Framebuffer) {
	w.Clear(colornames.White)

	imDraw := imdraw.New(nil)
	fg := w.foregroundColor()
	imDraw.Color = pixel.RGB(fg.R, fg.G, fg.B)

	cellW, cellH := screenWidth/gridWidth, screenHeight/gridHeight
	cells := fb.Snapshot()

	for y := 0; y < framebuffer.Height; y++ {
		for x := 0; x < framebuffer.Width; x++ {
			if !cells[y*framebuffer.Width+x] {
				continue
			}
			// Flip the row: framebuffer (0,0) is top-left, pixelgl's
			// origin is bottom-left.
			flippedY := framebuffer.Height - 1 - y
			imDraw.Push(pixel.V(cellW*float64(x), cellH*float64(flippedY)))
			imDraw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(flippedY)+cellH))
			imDraw.Rectangle(0)
		}
	}

	imDraw.Draw(w)
	w.Update()
}

func (w *Window) foregroundColor() nyan.RGB {
	if !w.nyan {
		return nyan.RGB{R: 0, G: 0, B: 0}
	}
	w.nyanHue = nyan.RotateHue(w.nyanHue, nyanDegreesPerFrame)
	return w.nyanHue
}

// HandleKeyInput polls pixelgl's input state and forwards press/release
// and key-repeat events to kp.
func (w *Window) HandleKeyInput(kp *keypad.Keypad) {
	for code, key := range keyMap {
		switch {
		case w.JustReleased(key):
			kp.Release(code)
			if w.keysDown[code] != nil {
				w.keysDown[code].Stop()
				w.keysDown[code] = nil
			}
		case w.JustPressed(key):
			kp.Press(code)
			if w.keysDown[code] == nil {
				w.keysDown[code] = time.NewTicker(keyRepeatDur)
			}
		}

		if w.keysDown[code] == nil {
			continue
		}

		select {
		case <-w.keysDown[code].C:
			kp.Press(code)
		default:
		}
	}
}
