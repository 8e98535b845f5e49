// This file is part of CompassCore project.
// Copyright (C) 2026.  CompassCore authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ebitensink

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"CompassCore/game"
	"CompassCore/locator"
	"CompassCore/world"
)

var background = color.RGBA{R: 46, G: 82, B: 52, A: 255}

// Window - вікно гри, реалізує ebiten.Game
type Window struct {
	log  *zap.Logger
	game *game.Game
	sink *Sink
	*world.Inputs

	uiScale float64
	zoom    float64
	width   int
	height  int
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow створює вікно для локального гравця player
func NewWindow(log *zap.Logger, g *game.Game, player *world.Player, sink *Sink) *Window {
	g.Locator().Icons().OnRelease(sink.Release)
	return &Window{
		log:     log,
		game:    g,
		sink:    sink,
		Inputs:  &player.Inputs,
		uiScale: 1,
		zoom:    1,
	}
}

// Run відкриває вікно і блокується поки його не закриють
func (w *Window) Run(tickRate int) error {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("CompassCore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate)
	return ebiten.RunGame(w)
}

// Update виконує один тік гри
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.input()
	w.game.Update(time.Now())
	return nil
}

func (w *Window) input() {
	var move locator.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move[0]++
	}
	w.Inputs.Lock()
	w.Inputs.Move = move
	w.Inputs.Unlock()

	resize := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		w.zoom = min(w.zoom*1.25, 4)
		resize = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		w.zoom = max(w.zoom*0.8, 0.25)
		resize = true
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		w.uiScale = w.uiScale + 0.5
		if w.uiScale > 2 {
			w.uiScale = 1
		}
		resize = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		w.game.ReturnToTitle(time.Now())
	}
	if resize && w.width > 0 {
		w.game.Resize(w.width, w.height, w.uiScale, w.zoom)
	}
}

// Draw малює кадр
func (w *Window) Draw(screen *ebiten.Image) {
	now := time.Now()
	screen.Fill(background)
	w.sink.Begin(screen, w.uiScale)
	w.game.Draw(w.sink, now)

	s := w.game.Stats()
	status := fmt.Sprintf("tracked %d  cached %d  regen %d  deferred %d\nui x%.1f  zoom x%.2f",
		s.Tracked, s.Cached, s.Regenerations, s.Deferred, w.uiScale, w.zoom)
	if msgs := w.game.Messages(now); len(msgs) > 0 {
		status += "\n" + msgs[len(msgs)-1].Text
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout повідомляє гру про новий розмір вікна
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(w.width, w.height, w.uiScale, w.zoom)
		w.log.Debug("Window resized", zap.Int("width", w.width), zap.Int("height", w.height))
	}
	return outsideWidth, outsideHeight
}
