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

// Йоу, чат! Це світ, в якому живуть гравці.
// Він знає хто де стоїть і в якій локації, а раз на тік
// рухає всіх гравців. Компас отримує від світу тільки знімки.

package world

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"go.uber.org/zap"

	"CompassCore/locator"
)

// World - світ з гравцями
type World struct {
	log    *zap.Logger
	config Config

	tickLock sync.Mutex                   // м'ютекс для синхронізації тіків
	players  map[locator.EntityID]*Player // всі гравці у світі
	rng      *rand.Rand                   // для блукання віддалених гравців
}

// Config - налаштування світу
type Config struct {
	TileSize  float64      // розмір клітинки в пікселях
	Bounds    locator.Rect // межі кожної локації в пікселях
	Speed     float64      // швидкість в пікселях за тік
	Locations []string     // доступні локації
	Seed      int64
}

// New створює порожній світ
func New(logger *zap.Logger, config Config) *World {
	return &World{
		log:     logger,
		config:  config,
		players: make(map[locator.EntityID]*Player),
		rng:     rand.New(rand.NewSource(config.Seed)),
	}
}

// Config повертає налаштування світу
func (w *World) Config() Config { return w.config }

// AddPlayer додає гравця
func (w *World) AddPlayer(p *Player) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	w.players[p.ID] = p
	w.log.Debug("Add player",
		zap.Int64("entity", int64(p.ID)),
		zap.String("name", p.Name),
		zap.String("location", p.Location),
	)
}

// RemovePlayer видаляє гравця
func (w *World) RemovePlayer(id locator.EntityID) bool {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	if _, ok := w.players[id]; !ok {
		return false
	}
	delete(w.players, id)
	w.log.Debug("Remove player", zap.Int64("entity", int64(id)))
	return true
}

// Player повертає гравця за ID
func (w *World) Player(id locator.EntityID) (*Player, bool) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	p, ok := w.players[id]
	return p, ok
}

// Update змінює гравця під м'ютексом світу
func (w *World) Update(id locator.EntityID, fn func(p *Player)) bool {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	p, ok := w.players[id]
	if ok {
		fn(p)
	}
	return ok
}

// IDs повертає ID всіх гравців по зростанню
func (w *World) IDs() []locator.EntityID {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	return w.sortedIDs()
}

// sortedIDs - ID гравців по зростанню, щоб випадковість не залежала від порядку мапи
func (w *World) sortedIDs() []locator.EntityID {
	ids := make([]locator.EntityID, 0, len(w.players))
	for id := range w.players {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entities повертає знімок усіх гравців, впорядкований по ID
func (w *World) Entities() []locator.Entity {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	entities := make([]locator.Entity, 0, len(w.players))
	for _, p := range w.players {
		entities = append(entities, p.Entity(w.config.TileSize))
	}
	slices.SortFunc(entities, func(a, b locator.Entity) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return entities
}

// Len повертає кількість гравців
func (w *World) Len() int {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	return len(w.players)
}
