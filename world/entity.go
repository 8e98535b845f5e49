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

// Йоу, чат! Тут ідентифікатори і позиції гравців.
// Кожен гравець отримує унікальний ID на весь час роботи процесу,
// щоб кеш іконок не переплутав двох різних людей.

package world

import (
	"math"
	"sync/atomic"

	"CompassCore/locator"
)

// entityCounter - атомарний лічильник ID
var entityCounter atomic.Int64

// NewEntityID генерує новий унікальний ID
func NewEntityID() locator.EntityID {
	return locator.EntityID(entityCounter.Add(1))
}

// Position - позиція ніг у світових пікселях
type Position = locator.Vec2

// IsValid перевіряє що координати не NaN і не Inf
func IsValid(p Position) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) &&
		!math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}
