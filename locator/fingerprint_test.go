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
	"image/color"
	"testing"
)

func farmer() VisualState {
	return VisualState{
		TextureID: "farmer_base",
		EyeColor:  color.RGBA{R: 122, G: 68, B: 52, A: 255},
		Skin:      2,
		Hair:      5,
		HairColor: color.RGBA{R: 193, G: 90, B: 50, A: 255},
		Hat:       NoHat,
		Accessory: NoAccessory,
	}
}

func TestComputeFingerprint_deterministic(t *testing.T) {
	a, b := ComputeFingerprint(farmer()), ComputeFingerprint(farmer())
	if a != b {
		t.Fatalf("equal traits give %x and %x", a, b)
	}
	if a == Unresolved {
		t.Fatal("resolved appearance gave Unresolved")
	}
}

func TestComputeFingerprint_traits(t *testing.T) {
	base := ComputeFingerprint(farmer())
	changes := map[string]func(v *VisualState){
		"texture":    func(v *VisualState) { v.TextureID = "farmer_girl_base" },
		"eye color":  func(v *VisualState) { v.EyeColor.B++ },
		"skin":       func(v *VisualState) { v.Skin++ },
		"hair":       func(v *VisualState) { v.Hair++ },
		"hair color": func(v *VisualState) { v.HairColor = color.RGBA{R: 20, G: 20, B: 20, A: 255} },
		"hat":        func(v *VisualState) { v.Hat = 3 },
		"accessory":  func(v *VisualState) { v.Accessory = 0 },
	}
	for name, change := range changes {
		v := farmer()
		change(&v)
		if fp := ComputeFingerprint(v); fp == base {
			t.Errorf("changing %s kept fingerprint %x", name, fp)
		}
	}
}

func TestComputeFingerprint_order(t *testing.T) {
	a := farmer()
	a.Skin, a.Hair = 1, 2
	b := farmer()
	b.Skin, b.Hair = 2, 1
	if ComputeFingerprint(a) == ComputeFingerprint(b) {
		t.Error("swapped fields gave the same fingerprint")
	}
}

func TestComputeFingerprint_unresolved(t *testing.T) {
	v := farmer()
	v.TextureID = ""
	if fp := ComputeFingerprint(v); fp != Unresolved {
		t.Errorf("empty texture gave %x, want Unresolved", fp)
	}
}

func TestReserve(t *testing.T) {
	if fp := reserve(Unresolved); fp == Unresolved {
		t.Error("reserve kept the sentinel")
	}
	if fp := reserve(42); fp != 42 {
		t.Errorf("reserve(42) = %d", fp)
	}
}

func BenchmarkComputeFingerprint(b *testing.B) {
	v := farmer()
	for i := 0; i < b.N; i++ {
		ComputeFingerprint(v)
	}
}
