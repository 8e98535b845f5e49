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

// Йоу, чат! Це ігрове ядро, яке з'єднує світ і компас.
// Update крутить тіки: світ рухає гравців, список гравців звіряється
// з компасом, компас перевіряє зовнішність. Draw збирає кадр.

package game

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"CompassCore/locator"
	"CompassCore/world"
)

// Game - ігрове ядро
type Game struct {
	log    *zap.Logger
	config Config

	mu      sync.Mutex // Update, Draw і події клієнта йдуть з різних горутин
	world   *world.World
	locator *locator.Locator
	hud     *locator.HUDZones
	camera  world.Camera
	local   locator.EntityID
	ticks   uint

	globalChat *globalChat
	*playerList
}

// NewGame створює ядро. local - гравець, навколо якого будується компас.
func NewGame(log *zap.Logger, config Config, compositor locator.Compositor, w *world.World, local *world.Player) *Game {
	log = log.Named("game")
	l := locator.New(log.Named("locator"), compositor, config.Locator(), config.IconRegenLimiter.Limiter())
	hud := locator.NewHUDZones()
	l.SetOverlap(hud)

	local.Local = true
	w.AddPlayer(local)

	chat := &globalChat{log: log.Named("chat")}
	return &Game{
		log:        log,
		config:     config,
		world:      w,
		locator:    l,
		hud:        hud,
		local:      local.ID,
		camera:     world.Camera{Width: 1280, Height: 720, UIScale: 1, Zoom: 1},
		globalChat: chat,
		playerList: newPlayerList(log, l, chat),
	}
}

// Locator повертає компас
func (g *Game) Locator() *locator.Locator { return g.locator }

// World повертає світ
func (g *Game) World() *world.World { return g.world }

// Local повертає ID локального гравця
func (g *Game) Local() locator.EntityID { return g.local }

// Run крутить Update з частотою TickRate поки ctx не скасовано
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.config.TickRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			g.Update(now)
		}
	}
}

// Update виконує один тік гри
func (g *Game) Update(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.ticks
	g.ticks++
	g.world.Tick(n)
	if n%g.config.RegistryEvery == 0 {
		g.playerList.refresh(g.world, g.local, now)
	}
	g.locator.Tick(now, g.world.Entities())
}

// Draw будує кадр і віддає команди в sink. Повертає кількість команд.
func (g *Game) Draw(sink locator.Sink, now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	viewer, ok := g.world.Viewer(g.local, g.camera)
	if !ok {
		return 0
	}
	return g.locator.Draw(sink, viewer, g.world.Entities(), now)
}

// Resize змінює розмір екрану і перебудовує зони інтерфейсу.
// width і height задані в пікселях екрану.
func (g *Game) Resize(width, height int, uiScale, zoom float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if uiScale <= 0 {
		uiScale = 1
	}
	if zoom <= 0 {
		zoom = 1
	}
	cam := world.Camera{
		Width:   float64(width) / uiScale,
		Height:  float64(height) / uiScale,
		UIScale: uiScale,
		Zoom:    zoom,
	}
	g.camera = cam
	if err := g.config.ValidateViewport(cam.Width, cam.Height); err != nil {
		g.log.Warn("Screen too small for the compass", zap.Error(err))
	}

	// тулбар внизу по центру, годинник у правому верхньому куті
	const toolbarW, toolbarH = 800, 96
	g.hud.Set("toolbar", locator.Rect{
		X: (cam.Width - toolbarW) / 2,
		Y: cam.Height - toolbarH,
		W: toolbarW,
		H: toolbarH,
	})
	const clockW, clockH = 288, 180
	g.hud.Set("clock", locator.Rect{X: cam.Width - clockW, Y: 0, W: clockW, H: clockH})
}

// Camera повертає поточні параметри екрану
func (g *Game) Camera() world.Camera {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.camera
}

// Connect додає віддаленого гравця у світ.
// Компас дізнається про нього на найближчій звірці.
func (g *Game) Connect(p *world.Player) {
	g.world.AddPlayer(p)
}

// Disconnect прибирає гравця зі світу і одразу звільняє його іконку
func (g *Game) Disconnect(id locator.EntityID, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id == g.local {
		return
	}
	g.world.RemovePlayer(id)
	g.playerList.removePlayer(id, now)
}

// ReturnToTitle скидає компас, ніби гравець вийшов у головне меню
func (g *Game) ReturnToTitle(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.locator.SessionEnded()
	g.playerList.clear()
	g.ticks = 0
	g.globalChat.broadcastSystemChat("Returned to title", now)
}

// Messages повертає свіжі системні повідомлення
func (g *Game) Messages(now time.Time) []Message {
	return g.globalChat.recent(now)
}

// Stats повертає лічильники компаса
func (g *Game) Stats() locator.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.locator.Stats()
}
