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

// Йоу, чат! Тут тіки світу.
// Кожен тік локальний гравець рухається за Inputs,
// а віддалені йдуть по своїй швидкості і відбиваються від країв.
// Раз на 8 тіків віддалені гравці трохи змінюють напрямок.

package world

import (
	"math"

	"go.uber.org/zap"

	"CompassCore/locator"
)

// Tick виконує одне оновлення світу
func (w *World) Tick(n uint) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()

	if n%8 == 0 {
		w.subtickWander()
	}
	w.subtickMove()
}

// subtickWander повертає швидкість віддалених гравців на випадковий кут
func (w *World) subtickWander() {
	for _, id := range w.sortedIDs() {
		p := w.players[id]
		if p.Local {
			continue
		}
		turn := (w.rng.Float64() - 0.5) * math.Pi / 4
		speed := p.Velocity.Norm()
		if speed == 0 {
			speed = w.config.Speed
			turn = w.rng.Float64() * 2 * math.Pi
		}
		angle := math.Atan2(p.Velocity[1], p.Velocity[0]) + turn
		p.Velocity = locator.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed)
	}
}

// subtickMove рухає всіх гравців
func (w *World) subtickMove() {
	for _, p := range w.players {
		if p.Local {
			w.moveLocal(p)
			continue
		}
		next := p.Position.Add(p.Velocity)
		b := w.config.Bounds
		if next[0] < b.X || next[0] > b.X+b.W {
			p.Velocity[0] = -p.Velocity[0]
		}
		if next[1] < b.Y || next[1] > b.Y+b.H {
			p.Velocity[1] = -p.Velocity[1]
		}
		w.place(p, p.Position.Add(p.Velocity))
	}
}

func (w *World) moveLocal(p *Player) {
	p.Inputs.Lock()
	move, travel := p.Inputs.Move, p.Inputs.Travel
	p.Inputs.Travel = ""
	p.Inputs.Unlock()

	if travel != "" && travel != p.Location {
		w.log.Info("Travel",
			zap.Int64("entity", int64(p.ID)),
			zap.String("from", p.Location),
			zap.String("to", travel),
		)
		p.Location = travel
	}
	w.place(p, p.Position.Add(move.Mul(w.config.Speed)))
}

// place ставить гравця в нову позицію в межах локації
func (w *World) place(p *Player, pos Position) {
	if !IsValid(pos) {
		w.log.Warn("Invalid position", zap.Int64("entity", int64(p.ID)))
		return
	}
	lo, hi := w.config.Bounds.Min(), w.config.Bounds.Max()
	p.Position = pos.Max(lo).Min(hi)
}
