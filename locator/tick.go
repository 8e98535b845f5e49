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
	"image"
	"time"

	"go.uber.org/zap"
)

// Tick - один тік гри. Кожен PollEvery-й тік перевіряємо відбитки
// зовнішності і перескладаємо іконки, що застаріли.
func (l *Locator) Tick(now time.Time, entities []Entity) {
	n := l.ticks
	l.ticks++
	if n%l.config.PollEvery != 0 || !l.config.ShowIcon {
		return
	}
	l.stats.Polls++
	for i := range entities {
		if _, ok := l.tracked[entities[i].ID]; !ok {
			continue
		}
		l.poll(now, &entities[i])
	}
}

// poll оновлює іконку одного гравця
func (l *Locator) poll(now time.Time, e *Entity) {
	fp := ComputeFingerprint(e.Visual)
	if fp == Unresolved {
		_, _ = l.icons.Upsert(e.ID, Unresolved, nil)
		return
	}
	if !l.icons.Stale(e.ID, fp) {
		return
	}
	if l.limiter != nil && !l.limiter.AllowN(now, 1) {
		l.stats.Deferred++
		l.log.Debug("Icon regeneration deferred", zap.Int64("entity", int64(e.ID)))
		return
	}

	visual := e.Visual
	regenerated, err := l.icons.Upsert(e.ID, fp, func(EntityID) (*image.RGBA, error) {
		return l.compositor.Composite(visual)
	})
	if err != nil {
		l.stats.Failures++
		l.compositionFailed(e.ID, fp, err)
		return
	}
	delete(l.failed, e.ID)
	if regenerated {
		l.stats.Regenerations++
	}
}

// compositionFailed пише Error на першу помилку для відбитку, далі тільки Debug.
func (l *Locator) compositionFailed(id EntityID, fp Fingerprint, err error) {
	fields := []zap.Field{
		zap.Int64("entity", int64(id)),
		zap.Uint64("fingerprint", uint64(fp)),
		zap.Error(err),
	}
	if last, ok := l.failed[id]; ok && last == fp {
		l.log.Debug("Icon composition failed again", fields...)
		return
	}
	l.failed[id] = fp
	l.log.Error("Icon composition failed", fields...)
}
