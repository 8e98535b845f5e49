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

package locator

import (
	"slices"
	"testing"
)

func TestHUDZones(t *testing.T) {
	z := NewHUDZones()
	z.Set("toolbar", Rect{X: 100, Y: 550, W: 600, H: 50})
	z.Set("clock", Rect{X: 650, Y: 0, W: 150, H: 120})
	z.Set("chat", Rect{X: 0, Y: 400, W: 200, H: 200})

	if !z.Overlaps(Vec2{700, 50}) {
		t.Error("clock not found")
	}
	if z.Overlaps(Vec2{400, 300}) {
		t.Error("centre of the screen overlaps a zone")
	}
	under := z.Under(Vec2{150, 575})
	slices.Sort(under)
	if !slices.Equal(under, []string{"chat", "toolbar"}) {
		t.Errorf("Under = %v", under)
	}

	// переміщення зони
	z.Set("clock", Rect{X: 0, Y: 0, W: 150, H: 120})
	if z.Overlaps(Vec2{700, 50}) || !z.Overlaps(Vec2{50, 50}) {
		t.Error("clock did not move")
	}
	if z.Len() != 3 {
		t.Errorf("Len = %d, want 3", z.Len())
	}

	z.Remove("chat")
	z.Remove("missing")
	if under := z.Under(Vec2{150, 575}); !slices.Equal(under, []string{"toolbar"}) {
		t.Errorf("Under after Remove = %v", under)
	}
}
