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

// Йоу, чат! Це серце компаса.
// Locator тримає кеш іконок і переходи прозорості між кадрами,
// а кожен кадр перетворює знімок світу в команди малювання.
// Є два ритми: Tick кожен тік гри (раз на PollEvery тіків перевіряємо
// зовнішність гравців) і Frame кожен кадр (тільки читаємо кеш).

package locator

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// CrossingAlgorithm - спосіб пошуку точки на рамці
type CrossingAlgorithm int

const (
	CrossingClip     CrossingAlgorithm = iota // відсікання Лянга-Барскі
	CrossingSegments                          // перебір чотирьох сторін
)

// Config - налаштування компаса
type Config struct {
	PollEvery          uint          // перевіряти зовнішність кожен N-й тік
	FadeDuration       time.Duration // тривалість зміни прозорості
	InsetOffset        float64       // відступ рамки від краю екрану
	InsetOffsetNoArrow float64       // відступ коли стрілка вимкнена
	ArrowDistance      float64       // відстань від центру бульбашки до стрілки
	DimmedOpacity      float64       // прозорість над елементами інтерфейсу
	IconScale          float64       // масштаб іконки (множиться на uiScale)
	ArrowScale         float64       // масштаб спрайту стрілки (множиться на uiScale)
	Depth              float64       // глибина малювання
	ShowIcon           bool
	ShowArrow          bool
	Algorithm          CrossingAlgorithm
}

// DefaultConfig повертає налаштування за замовчуванням
func DefaultConfig() Config {
	return Config{
		PollEvery:          30,
		FadeDuration:       300 * time.Millisecond,
		InsetOffset:        50,
		InsetOffsetNoArrow: 40,
		ArrowDistance:      36,
		DimmedOpacity:      0.5,
		IconScale:          1,
		ArrowScale:         4,
		Depth:              0.8,
		ShowIcon:           true,
		ShowArrow:          true,
		Algorithm:          CrossingClip,
	}
}

// Stats - лічильники для діагностики
type Stats struct {
	Ticks         uint
	Polls         uint64
	Regenerations uint64 // скільки разів складали іконку
	Deferred      uint64 // регенерації відкладені лімітером
	Failures      uint64 // помилки генератора
	Degenerate    uint64 // кадри без перетину з рамкою
	InsetClamped  uint64 // кадри з завеликим відступом
	Tracked       int
	Cached        int
}

// Locator - оркестратор компаса. Не безпечний для одночасного доступу:
// Tick і Frame мають викликатись з одного циклу гри.
type Locator struct {
	base       *zap.Logger
	log        *zap.Logger // base з полем поточної сесії
	config     Config
	compositor Compositor
	limiter    *rate.Limiter // обмеження регенерацій іконок, nil - без обмежень

	visible VisibilityFilter
	overlap OverlapPredicate

	session uuid.UUID
	icons   *IconCache
	fades   map[EntityID]Transition
	tracked map[EntityID]struct{}
	warned  map[EntityID]struct{}    // вже попереджали про вироджену геометрію
	failed  map[EntityID]Fingerprint // відбиток, на якому генератор вже падав

	insetWarned bool

	ticks uint
	stats Stats
}

// New створює компас
func New(logger *zap.Logger, compositor Compositor, config Config, limiter *rate.Limiter) *Locator {
	if config.PollEvery == 0 {
		config.PollEvery = 1
	}
	l := &Locator{
		base:       logger,
		config:     config,
		compositor: compositor,
		limiter:    limiter,
		visible:    SameLocation,
		fades:      make(map[EntityID]Transition),
		tracked:    make(map[EntityID]struct{}),
		warned:     make(map[EntityID]struct{}),
		failed:     make(map[EntityID]Fingerprint),
	}
	l.icons = NewIconCache(logger.Named("icons"))
	l.newSession()
	return l
}

// SetVisibilityFilter замінює фільтр видимості
func (l *Locator) SetVisibilityFilter(f VisibilityFilter) { l.visible = f }

// SetOverlap задає перевірку перекриття з інтерфейсом
func (l *Locator) SetOverlap(o OverlapPredicate) { l.overlap = o }

// Icons дає доступ до кешу (наприклад щоб підписатись на звільнення іконок)
func (l *Locator) Icons() *IconCache { return l.icons }

// Session повертає ідентифікатор поточної сесії світу
func (l *Locator) Session() uuid.UUID { return l.session }

// Config повертає налаштування
func (l *Locator) Config() Config { return l.config }

// Joined починає відстежувати гравця
func (l *Locator) Joined(id EntityID) bool {
	if _, ok := l.tracked[id]; ok {
		return false
	}
	l.tracked[id] = struct{}{}
	l.log.Debug("Track entity", zap.Int64("entity", int64(id)))
	return true
}

// Tracked повідомляє чи гравець відстежується
func (l *Locator) Tracked(id EntityID) bool {
	_, ok := l.tracked[id]
	return ok
}

// Left забуває гравця і звільняє його іконку
func (l *Locator) Left(id EntityID) {
	delete(l.tracked, id)
	delete(l.fades, id)
	delete(l.warned, id)
	delete(l.failed, id)
	l.icons.Evict(id)
	l.log.Debug("Forget entity", zap.Int64("entity", int64(id)))
}

// SessionEnded очищає все (повернення в головне меню)
func (l *Locator) SessionEnded() {
	l.log.Info("Session ended",
		zap.Int("tracked", len(l.tracked)),
		zap.Int("cached", l.icons.Len()),
	)
	clear(l.tracked)
	clear(l.fades)
	clear(l.warned)
	clear(l.failed)
	l.insetWarned = false
	l.ticks = 0
	l.icons.Clear()
	l.newSession()
}

// Stats повертає копію лічильників
func (l *Locator) Stats() Stats {
	s := l.stats
	s.Ticks = l.ticks
	s.Tracked = len(l.tracked)
	s.Cached = l.icons.Len()
	return s
}

func (l *Locator) newSession() {
	l.session = uuid.New()
	l.log = l.base.With(zap.String("session", l.session.String()))
}
