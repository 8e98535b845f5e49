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

// Кеш іконок гравців.
// Складання іконки - це повний прохід композиції шарів, тому робимо його
// тільки коли відбиток зовнішності змінився. Кадр лише читає кеш.

package locator

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"
)

// Icon - складена іконка гравця
type Icon struct {
	Fingerprint Fingerprint // відбиток з якого зібрана іконка
	Image       *image.RGBA // бітмап, яким володіє кеш
	Width       int
	Height      int
}

// Generator складає іконку для гравця
type Generator func(id EntityID) (*image.RGBA, error)

// ReleaseFunc викликається коли кеш відпускає іконку
// (заміна, витіснення, очищення). Хост може звільнити копію на GPU.
type ReleaseFunc func(id EntityID, icon *Icon)

// ErrEmptyIcon повертається коли генератор нічого не склав
var ErrEmptyIcon = errors.New("generator returned no image")

type iconEntry struct {
	fingerprint Fingerprint
	icon        *Icon // nil поки зовнішність Unresolved
	generations int   // скільки разів генератор викликався для цього запису
}

// IconCache зберігає останню іконку кожного гравця.
// Не безпечний для одночасного доступу: запис і читання йдуть з одного циклу.
type IconCache struct {
	log       *zap.Logger
	entries   map[EntityID]*iconEntry
	onRelease ReleaseFunc
}

// NewIconCache створює порожній кеш
func NewIconCache(log *zap.Logger) *IconCache {
	return &IconCache{
		log:     log,
		entries: make(map[EntityID]*iconEntry),
	}
}

// OnRelease встановлює обробник звільнення іконок
func (c *IconCache) OnRelease(fn ReleaseFunc) { c.onRelease = fn }

// Stale повідомляє чи потрібна регенерація для відбитку fp
func (c *IconCache) Stale(id EntityID, fp Fingerprint) bool {
	e, ok := c.entries[id]
	return !ok || e.fingerprint != fp
}

// Upsert оновлює іконку гравця.
// Генератор викликається рівно один раз, якщо запису немає або відбиток інший;
// при тому самому відбитку нічого не відбувається. Unresolved відпускає
// поточну іконку без виклику генератора. Помилка генератора лишає іконку
// без змін, тож наступне опитування спробує ще раз.
func (c *IconCache) Upsert(id EntityID, fp Fingerprint, gen Generator) (bool, error) {
	e, ok := c.entries[id]
	if ok && e.fingerprint == fp {
		return false, nil
	}
	if !ok {
		e = &iconEntry{}
		c.entries[id] = e
	}
	if fp == Unresolved {
		c.release(id, e)
		e.fingerprint = Unresolved
		return false, nil
	}

	img, err := gen(id)
	e.generations++
	if err != nil {
		return false, fmt.Errorf("generate icon for %d: %w", id, err)
	}
	if img == nil {
		return false, fmt.Errorf("generate icon for %d: %w", id, ErrEmptyIcon)
	}

	c.release(id, e)
	size := img.Bounds().Size()
	e.fingerprint = fp
	e.icon = &Icon{Fingerprint: fp, Image: img, Width: size.X, Height: size.Y}
	c.log.Debug("Icon regenerated",
		zap.Int64("entity", int64(id)),
		zap.Uint64("fingerprint", uint64(fp)),
		zap.Int("generations", e.generations),
	)
	return true, nil
}

// Get повертає поточну іконку гравця, якщо вона є
func (c *IconCache) Get(id EntityID) (*Icon, bool) {
	e, ok := c.entries[id]
	if !ok || e.icon == nil {
		return nil, false
	}
	return e.icon, true
}

// Generations повертає кількість викликів генератора для гравця
func (c *IconCache) Generations(id EntityID) int {
	if e, ok := c.entries[id]; ok {
		return e.generations
	}
	return 0
}

// Evict видаляє запис гравця і відпускає його іконку
func (c *IconCache) Evict(id EntityID) bool {
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	c.release(id, e)
	delete(c.entries, id)
	return true
}

// Clear відпускає всі іконки
func (c *IconCache) Clear() {
	for id, e := range c.entries {
		c.release(id, e)
	}
	clear(c.entries)
}

// Len повертає кількість записів
func (c *IconCache) Len() int { return len(c.entries) }

func (c *IconCache) release(id EntityID, e *iconEntry) {
	if e.icon == nil {
		return
	}
	if c.onRelease != nil {
		c.onRelease(id, e.icon)
	}
	e.icon = nil
}
