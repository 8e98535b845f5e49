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
	"errors"
	"image"
	"testing"

	"go.uber.org/zap/zaptest"
)

func countingGenerator(calls *int) Generator {
	return func(EntityID) (*image.RGBA, error) {
		*calls++
		return image.NewRGBA(image.Rect(0, 0, 64, 64)), nil
	}
}

func TestIconCache_Upsert(t *testing.T) {
	cache := NewIconCache(zaptest.NewLogger(t))
	var calls int
	gen := countingGenerator(&calls)

	// f, f, f, g, g
	for _, fp := range []Fingerprint{11, 11, 11, 22, 22} {
		if _, err := cache.Upsert(1, fp, gen); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Errorf("generator called %d times, want 2", calls)
	}
	if n := cache.Generations(1); n != 2 {
		t.Errorf("Generations = %d, want 2", n)
	}
	icon, ok := cache.Get(1)
	if !ok {
		t.Fatal("no icon after Upsert")
	}
	if icon.Fingerprint != 22 || icon.Width != 64 || icon.Height != 64 {
		t.Errorf("icon = %+v", icon)
	}
}

func TestIconCache_Evict(t *testing.T) {
	cache := NewIconCache(zaptest.NewLogger(t))
	var calls int
	gen := countingGenerator(&calls)

	_, _ = cache.Upsert(1, 11, gen)
	if !cache.Evict(1) {
		t.Fatal("Evict of cached entity returned false")
	}
	if _, ok := cache.Get(1); ok {
		t.Error("icon survived Evict")
	}
	if cache.Evict(1) {
		t.Error("second Evict returned true")
	}
	_, _ = cache.Upsert(1, 11, gen)
	if calls != 2 {
		t.Errorf("generator called %d times after evict, want 2", calls)
	}
	if n := cache.Generations(1); n != 1 {
		t.Errorf("Generations after evict = %d, want 1", n)
	}
}

func TestIconCache_Unresolved(t *testing.T) {
	cache := NewIconCache(zaptest.NewLogger(t))
	var calls int
	gen := countingGenerator(&calls)

	_, _ = cache.Upsert(1, Unresolved, gen)
	if calls != 0 {
		t.Errorf("generator called for Unresolved")
	}
	if _, ok := cache.Get(1); ok {
		t.Error("icon for Unresolved entity")
	}

	_, _ = cache.Upsert(1, 11, gen)
	_, _ = cache.Upsert(1, Unresolved, gen)
	if _, ok := cache.Get(1); ok {
		t.Error("icon kept after appearance became Unresolved")
	}
	_, _ = cache.Upsert(1, 11, gen)
	if calls != 2 {
		t.Errorf("generator called %d times, want 2", calls)
	}
}

func TestIconCache_GeneratorError(t *testing.T) {
	cache := NewIconCache(zaptest.NewLogger(t))
	var calls int
	_, _ = cache.Upsert(1, 11, countingGenerator(&calls))

	boom := errors.New("boom")
	_, err := cache.Upsert(1, 22, func(EntityID) (*image.RGBA, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	icon, ok := cache.Get(1)
	if !ok || icon.Fingerprint != 11 {
		t.Errorf("failed regeneration replaced the icon: %+v", icon)
	}
	if !cache.Stale(1, 22) {
		t.Error("entry not stale after failed regeneration")
	}

	_, err = cache.Upsert(1, 22, func(EntityID) (*image.RGBA, error) { return nil, nil })
	if !errors.Is(err, ErrEmptyIcon) {
		t.Errorf("err = %v, want ErrEmptyIcon", err)
	}
}

func TestIconCache_Release(t *testing.T) {
	cache := NewIconCache(zaptest.NewLogger(t))
	released := make(map[EntityID]int)
	cache.OnRelease(func(id EntityID, icon *Icon) { released[id]++ })

	var calls int
	gen := countingGenerator(&calls)
	_, _ = cache.Upsert(1, 11, gen)
	_, _ = cache.Upsert(1, 22, gen) // заміна
	_, _ = cache.Upsert(2, 11, gen)
	_, _ = cache.Upsert(3, 11, gen)
	cache.Evict(2)
	cache.Clear()

	want := map[EntityID]int{1: 2, 2: 1, 3: 1}
	for id, n := range want {
		if released[id] != n {
			t.Errorf("entity %d released %d times, want %d", id, released[id], n)
		}
	}
	if cache.Len() != 0 {
		t.Errorf("Len after Clear = %d", cache.Len())
	}
}
