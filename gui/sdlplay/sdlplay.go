// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay implements the GUI interface with an SDL2 window. The
// framebuffer is kept in a streaming texture which the renderer stretches
// over the whole window, so any scale factor works.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/kevinadari/gopher8/curated"
	"github.com/kevinadari/gopher8/gui"
	"github.com/kevinadari/gopher8/hardware/video"
)

// Error messages.
const (
	SDLError = "sdlplay: %v"
)

// bytes per pixel in the texture. RGBA
const pixelDepth = 4

// SdlPlay implements the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	snd *sound

	// one RGBA pixel group per machine pixel
	pixels []byte

	events chan gui.Event
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. The window is scale times larger than the machine framebuffer in
// both directions.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	scr := &SdlPlay{}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	var err error

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// texture is the same size as the machine framebuffer. the renderer
	// stretches it over the window
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset the alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(events chan gui.Event) {
	scr.events = events
}

// SetPixels implements the gui.GUI interface.
func (scr *SdlPlay) SetPixels(pixels []uint8) error {
	for i, p := range pixels {
		var v byte
		if p != 0 {
			v = 255
		}
		scr.pixels[i*pixelDepth] = v
		scr.pixels[i*pixelDepth+1] = v
		scr.pixels[i*pixelDepth+2] = v
	}

	if err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	scr.renderer.Present()

	return nil
}

// SetSound implements the gui.GUI interface.
func (scr *SdlPlay) SetSound(active bool) {
	scr.snd.queue(active)
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
