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
	"encoding/binary"
	"image/color"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint - відбиток зовнішності гравця.
// Рівні відбитки означають однакові іконки.
type Fingerprint uint64

// Unresolved - зовнішність ще не доступна (рендерер не готовий).
// Справжній відбиток ніколи не дорівнює Unresolved.
const Unresolved Fingerprint = 0

// ComputeFingerprint рахує відбиток VisualState.
// Поля пишуться в xxhash по черзі, тому порядок має значення.
func ComputeFingerprint(v VisualState) Fingerprint {
	if v.TextureID == "" {
		return Unresolved
	}
	var buf [8]byte
	d := xxhash.New()
	writeInt := func(i int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(i)))
		_, _ = d.Write(buf[:])
	}
	writeColor := func(c color.RGBA) {
		_, _ = d.Write([]byte{c.R, c.G, c.B, c.A})
	}

	writeInt(len(v.TextureID))
	_, _ = d.WriteString(v.TextureID)
	writeColor(v.EyeColor)
	writeInt(v.Skin)
	writeInt(v.Hair)
	writeColor(v.HairColor)
	writeInt(v.Hat)
	writeInt(v.Accessory)

	return reserve(Fingerprint(d.Sum64()))
}

// reserve зсуває хеш, що випадково збігся з Unresolved
func reserve(fp Fingerprint) Fingerprint {
	if fp == Unresolved {
		return fp + 1
	}
	return fp
}
