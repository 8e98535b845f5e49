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
	"time"

	"go.uber.org/zap"

	"CompassCore/locator/internal/geom"
)

// Frame будує команди малювання для одного кадру.
// Кеш тільки читається. Для кожного гравця спочатку йде бульбашка, потім стрілка.
func (l *Locator) Frame(viewer Viewer, entities []Entity, now time.Time) []Directive {
	cfg := l.config
	if !cfg.ShowIcon && !cfg.ShowArrow {
		return nil
	}

	offset := cfg.InsetOffset
	if !cfg.ShowArrow {
		offset = cfg.InsetOffsetNoArrow
	}
	boundary, err := geom.InsetBoundary(viewer.Viewport, offset, viewer.scale())
	if err != nil {
		l.stats.InsetClamped++
		if !l.insetWarned {
			l.insetWarned = true
			l.log.Warn("Inset offset clamped",
				zap.Float64("offset", offset),
				zap.Float64("applied", boundary.Offset),
				zap.Error(err),
			)
		}
	} else {
		l.insetWarned = false
	}

	var directives []Directive
	for i := range entities {
		e := &entities[i]
		if _, ok := l.tracked[e.ID]; !ok {
			continue
		}
		if l.visible != nil && !l.visible(viewer, *e) {
			continue
		}
		if e.Bounds.Intersects(viewer.Viewport) {
			continue
		}
		directives = l.locate(directives, viewer, boundary, e, now)
	}
	return directives
}

// Draw відправляє команди кадру в sink
func (l *Locator) Draw(sink Sink, viewer Viewer, entities []Entity, now time.Time) int {
	directives := l.Frame(viewer, entities, now)
	for _, d := range directives {
		sink.Submit(d)
	}
	return len(directives)
}

func (l *Locator) locate(out []Directive, viewer Viewer, b geom.Boundary[float64], e *Entity, now time.Time) []Directive {
	cfg := l.config
	target := e.Bounds.Center()

	var (
		point Vec2
		ok    bool
	)
	switch cfg.Algorithm {
	case CrossingSegments:
		point, ok = b.Crossing(viewer.Anchor, target)
	default:
		point, ok = b.Clip(viewer.Anchor, target)
	}
	if !ok {
		point = geom.ClampToBoundary(target, b.Inner)
		l.stats.Degenerate++
		l.degenerate(e.ID, viewer.Anchor, target)
	}

	screen := viewer.toScreen(point)
	// кут від точки на рамці до цілі, навіть якщо точку притягнуто запасним варіантом
	angle := geom.ArrowAngle(point, target)
	opacity := l.opacity(e.ID, screen, now)

	if cfg.ShowIcon {
		if icon, ok := l.icons.Get(e.ID); ok {
			out = append(out, Directive{
				Kind:     IndicatorIcon,
				Entity:   e.ID,
				Icon:     icon,
				Position: screen,
				Scale:    cfg.IconScale * viewer.UIScale,
				Opacity:  opacity,
				Depth:    cfg.Depth,
			})
		}
	}
	if cfg.ShowArrow {
		out = append(out, Directive{
			Kind:     IndicatorArrow,
			Entity:   e.ID,
			Position: screen.Add(geom.Polar(angle).Mul(cfg.ArrowDistance * viewer.UIScale)),
			Rotation: angle + geom.QuarterTurn,
			Scale:    cfg.ArrowScale * viewer.UIScale,
			Opacity:  opacity,
			Depth:    cfg.Depth,
		})
	}
	return out
}

// opacity рухає перехід прозорості гравця до цілі і повертає поточне значення
func (l *Locator) opacity(id EntityID, screen Vec2, now time.Time) float64 {
	target := 1.0
	if l.overlap != nil && l.overlap.Overlaps(screen) {
		target = l.config.DimmedOpacity
	}
	fade, ok := l.fades[id]
	if !ok {
		fade = NewTransition(1)
	}
	fade = fade.SetTarget(target, l.config.FadeDuration, now)
	l.fades[id] = fade
	return fade.Value(now)
}

// degenerate пише попередження один раз на гравця, далі тільки Debug
func (l *Locator) degenerate(id EntityID, from, to Vec2) {
	fields := []zap.Field{
		zap.Int64("entity", int64(id)),
		zap.Float64s("from", from[:]),
		zap.Float64s("to", to[:]),
	}
	if _, ok := l.warned[id]; ok {
		l.log.Debug("No boundary crossing", fields...)
		return
	}
	l.warned[id] = struct{}{}
	l.log.Warn("No boundary crossing, clamping to boundary", fields...)
}
