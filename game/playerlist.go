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

// Йоу, чат! Зараз розберемо як компас дізнається про гравців.
// Раз на RegistryEvery тіків ми звіряємо список гравців у світі з тими,
// кого компас вже відстежує: нових додаємо, зниклих забуваємо.
// Вихід гравця обробляється одразу, без очікування звірки.

package game

import (
	"time"

	"go.uber.org/zap"

	"CompassCore/locator"
	"CompassCore/world"
)

// playerList - гравці, про яких знає компас
type playerList struct {
	log     *zap.Logger
	locator *locator.Locator
	chat    *globalChat
	known   map[locator.EntityID]string // ID -> нікнейм
}

func newPlayerList(log *zap.Logger, l *locator.Locator, chat *globalChat) *playerList {
	return &playerList{
		log:     log,
		locator: l,
		chat:    chat,
		known:   make(map[locator.EntityID]string),
	}
}

// refresh звіряє список з гравцями у світі
func (pl *playerList) refresh(w *world.World, local locator.EntityID, now time.Time) {
	present := make(map[locator.EntityID]struct{})
	for _, id := range w.IDs() {
		if id == local {
			continue
		}
		present[id] = struct{}{}
		if _, ok := pl.known[id]; ok {
			continue
		}
		p, ok := w.Player(id)
		if !ok {
			continue
		}
		pl.addPlayer(id, p.Name, now)
	}
	for id := range pl.known {
		if _, ok := present[id]; !ok {
			pl.removePlayer(id, now)
		}
	}
}

// addPlayer починає відстеження гравця
func (pl *playerList) addPlayer(id locator.EntityID, name string, now time.Time) {
	pl.known[id] = name
	pl.locator.Joined(id)
	pl.chat.broadcastSystemChat(name+" joined", now)
}

// removePlayer забуває гравця і звільняє його іконку
func (pl *playerList) removePlayer(id locator.EntityID, now time.Time) {
	name, ok := pl.known[id]
	if !ok {
		return
	}
	delete(pl.known, id)
	pl.locator.Left(id)
	pl.chat.broadcastSystemChat(name+" left", now)
}

// clear забуває всіх (повернення в головне меню)
func (pl *playerList) clear() {
	pl.log.Debug("Clear player list", zap.Int("count", len(pl.known)))
	clear(pl.known)
}
