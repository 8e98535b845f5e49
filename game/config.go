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

// Йоу, чат! Зараз розберемо конфігурацію компаса!
// Тут зберігаються всі налаштування які можна змінити в config.toml

package game

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/time/rate"

	"CompassCore/locator"
)

// Config - головна структура з налаштуваннями
// Поля з тегом `toml` читаються з конфіг файлу
type Config struct {
	// Скільки тіків гри на секунду
	TickRate int `toml:"tick-rate"`

	// Кожен N-й тік перевіряємо зовнішність гравців і перескладаємо іконки
	PollEvery uint `toml:"poll-every"`

	// Кожен N-й тік звіряємо список підключених гравців з компасом
	RegistryEvery uint `toml:"registry-every"`

	// Тривалість зміни прозорості бульбашки
	FadeDuration duration `toml:"fade-duration"`

	// Відступ рамки компаса від краю екрану (в одиницях інтерфейсу)
	InsetOffset float64 `toml:"inset-offset"`
	// Відступ, коли стрілка вимкнена
	InsetOffsetNoArrow float64 `toml:"inset-offset-no-arrow"`

	// Відстань від центру бульбашки до стрілки
	ArrowDistance float64 `toml:"arrow-distance"`

	// Прозорість бульбашки над елементами інтерфейсу
	DimmedOpacity float64 `toml:"dimmed-opacity"`

	// Сховати бульбашку з головою або стрілку
	HideCompassBubble bool `toml:"hide-compass-bubble"`
	HideCompassArrow  bool `toml:"hide-compass-arrow"`

	// "clip" або "segments"
	CrossingAlgorithm string `toml:"crossing-algorithm"`

	// Розмір клітинки світу в пікселях
	TileSize float64 `toml:"tile-size"`

	// Скільки іконок можна перескласти за період
	IconRegenLimiter Limiter `toml:"icon-regen-limiter"`
}

// DefaultConfig повертає налаштування за замовчуванням
func DefaultConfig() Config {
	return Config{
		TickRate:           60,
		PollEvery:          30,
		RegistryEvery:      60,
		FadeDuration:       duration{300 * time.Millisecond},
		InsetOffset:        50,
		InsetOffsetNoArrow: 40,
		ArrowDistance:      36,
		DimmedOpacity:      0.5,
		CrossingAlgorithm:  "clip",
		TileSize:           64,
		IconRegenLimiter:   Limiter{Every: duration{time.Second}, N: 8},
	}
}

// ErrInvalidConfig - значення в конфігу не має сенсу
var ErrInvalidConfig = errors.New("invalid config")

// Validate перевіряє значення конфігу
func (c Config) Validate() error {
	var problems []string
	if c.TickRate <= 0 {
		problems = append(problems, "tick-rate must be positive")
	}
	if c.PollEvery == 0 {
		problems = append(problems, "poll-every must be positive")
	}
	if c.RegistryEvery == 0 {
		problems = append(problems, "registry-every must be positive")
	}
	if c.FadeDuration.Duration < 0 {
		problems = append(problems, "fade-duration must not be negative")
	}
	if c.InsetOffset < 0 || c.InsetOffsetNoArrow < 0 {
		problems = append(problems, "inset offsets must not be negative")
	}
	if c.DimmedOpacity < 0 || c.DimmedOpacity > 1 {
		problems = append(problems, "dimmed-opacity must be within [0, 1]")
	}
	if c.TileSize <= 0 {
		problems = append(problems, "tile-size must be positive")
	}
	if _, err := c.crossing(); err != nil {
		problems = append(problems, err.Error())
	}
	if c.IconRegenLimiter.N < 0 || c.IconRegenLimiter.Every.Duration < 0 {
		problems = append(problems, "icon-regen-limiter must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ValidateViewport перевіряє що рамка компаса поміщається в екран width x height
func (c Config) ValidateViewport(width, height float64) error {
	offset := c.InsetOffset
	if c.HideCompassArrow {
		offset = c.InsetOffsetNoArrow
	}
	if 2*offset >= min(width, height) {
		return fmt.Errorf("%w: inset offset %v does not fit a %vx%v screen", ErrInvalidConfig, offset, width, height)
	}
	return nil
}

func (c Config) crossing() (locator.CrossingAlgorithm, error) {
	switch c.CrossingAlgorithm {
	case "", "clip":
		return locator.CrossingClip, nil
	case "segments":
		return locator.CrossingSegments, nil
	}
	return 0, fmt.Errorf("unknown crossing-algorithm %q", c.CrossingAlgorithm)
}

// Locator перетворює налаштування в конфіг компаса
func (c Config) Locator() locator.Config {
	lc := locator.DefaultConfig()
	lc.PollEvery = c.PollEvery
	lc.FadeDuration = c.FadeDuration.Duration
	lc.InsetOffset = c.InsetOffset
	lc.InsetOffsetNoArrow = c.InsetOffsetNoArrow
	lc.ArrowDistance = c.ArrowDistance
	lc.DimmedOpacity = c.DimmedOpacity
	lc.ShowIcon = !c.HideCompassBubble
	lc.ShowArrow = !c.HideCompassArrow
	lc.Algorithm, _ = c.crossing()
	return lc
}

// LoadConfig читає конфіг з файлу поверх DefaultConfig.
// Якщо файлу немає - повертаємо налаштування за замовчуванням.
// Якщо знайдемо невідомі налаштування - повернемо помилку.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	meta, err := toml.DecodeFile(path, &c)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err errUnknownConfig
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// errUnknownConfig - це список невідомих налаштувань
type errUnknownConfig []string

func (e errUnknownConfig) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

// Limiter - структура для обмеження частоти дій
// Наприклад: не більше 8 іконок кожну секунду
type Limiter struct {
	Every duration `toml:"every"`
	N     int      `toml:"n"`
}

// Limiter перетворює налаштування в rate.Limiter.
// N == 0 означає без обмежень.
func (l *Limiter) Limiter() *rate.Limiter {
	if l.N == 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(l.Every.Duration), l.N)
}

// duration - обгортка навколо time.Duration
// Потрібна щоб читати тривалість з конфіг файлу
type duration struct {
	time.Duration
}

// UnmarshalText перетворює текст з конфігу в time.Duration
// Наприклад "300ms" -> 300 мілісекунд
func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}
