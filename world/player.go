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

// Йоу, чат! Тут описаний гравець у нашому маленькому світі.
// Локальний гравець керується з клавіатури через Inputs,
// віддалені гравці блукають самі по собі.

package world

import (
	"sync"

	"github.com/google/uuid"

	"CompassCore/locator"
)

// Player - гравець у світі
type Player struct {
	ID          locator.EntityID
	Name        string              // нікнейм
	UUID        uuid.UUID           // ідентифікатор акаунта
	Position    Position            // позиція ніг
	Velocity    locator.Vec2        // швидкість в пікселях за тік (для віддалених)
	Location    string              // локація
	SplitScreen bool                // локальний гравець на розділеному екрані
	Visual      locator.VisualState // зовнішність

	Local  bool   // керується з клавіатури
	Inputs Inputs // стан вводу для локального гравця
}

// Inputs - стан вводу, захищений м'ютексом
// бо клавіатура читається в окремій горутині
type Inputs struct {
	sync.Mutex
	Move   locator.Vec2 // напрямок руху, кожна компонента -1, 0 або 1
	Travel string       // локація, куди перейти на наступному тіку
}

// NewPlayer створює гравця з новим ID
func NewPlayer(name, location string, pos Position, visual locator.VisualState) *Player {
	return &Player{
		ID:       NewEntityID(),
		Name:     name,
		UUID:     uuid.New(),
		Position: pos,
		Location: location,
		Visual:   visual,
	}
}

// Entity повертає знімок гравця для компаса
func (p *Player) Entity(tileSize float64) locator.Entity {
	e := locator.NewEntity(p.ID, p.Position, tileSize, p.Location, p.Visual)
	e.SplitScreen = p.SplitScreen
	return e
}
