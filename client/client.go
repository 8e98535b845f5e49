package client

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"CompassCore/game"
	"CompassCore/world"
)

// Client - термінальний клієнт локального гравця.
// Читає клавіатуру в окремій горутині і малює кадри компаса символами.
type Client struct {
	// Логер для цього клієнта
	log *zap.Logger
	// Термінал
	screen tcell.Screen
	// Ігрове ядро
	game *game.Game
	// Обробники клавіш
	keys  map[tcell.Key]KeyHandler
	runes map[rune]KeyHandler
	// Вказівник на Inputs гравця
	*world.Inputs

	colors   iconColors
	cellSize Cell    // скільки пікселів інтерфейсу в одній клітинці
	uiScale  float64 // масштаб інтерфейсу
	zoom     float64 // зум камери
	quit     chan struct{}
}

// KeyHandler обробляє натискання клавіші
type KeyHandler func(ev *tcell.EventKey, c *Client) error

// Cell - розмір клітинки терміналу в пікселях інтерфейсу
type Cell struct{ W, H float64 }

// New створює клієнта для локального гравця player
func New(log *zap.Logger, screen tcell.Screen, g *game.Game, player *world.Player) *Client {
	c := &Client{
		log:      log,
		screen:   screen,
		game:     g,
		keys:     make(map[tcell.Key]KeyHandler),
		runes:    make(map[rune]KeyHandler),
		Inputs:   &player.Inputs,
		colors:   make(iconColors),
		cellSize: Cell{W: 16, H: 32},
		uiScale:  1,
		zoom:     1,
		quit:     make(chan struct{}),
	}
	for k, h := range defaultKeys {
		c.keys[k] = h
	}
	for r, h := range defaultRunes {
		c.runes[r] = h
	}
	g.Locator().Icons().OnRelease(c.colors.release)
	return c
}

// AddHandler додає обробник для символу
func (c *Client) AddHandler(r rune, handler KeyHandler) {
	c.runes[r] = handler
}

// Start запускає клієнта і блокується до виходу.
// Події клавіатури читаються в окремій горутині,
// тіки гри і кадри крутяться в цій.
func (c *Client) Start(ctx context.Context, tickRate int) {
	events := make(chan tcell.Event, 64)
	go c.startReceive(events)

	c.resize()
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.quit:
			return
		case ev := <-events:
			if err := c.handle(ev); err != nil {
				c.log.Error("Handle event error", zap.Error(err))
				return
			}
		case now := <-ticker.C:
			c.game.Update(now)
			c.draw(now)
		}
	}
}

// Stop зупиняє клієнта
func (c *Client) Stop() {
	select {
	case <-c.quit:
	default:
		close(c.quit)
	}
}

// startReceive читає події терміналу
func (c *Client) startReceive(events chan<- tcell.Event) {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-c.quit:
			return
		}
	}
}

func (c *Client) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.resize()
	case *tcell.EventKey:
		handler := c.keys[ev.Key()]
		if ev.Key() == tcell.KeyRune {
			handler = c.runes[ev.Rune()]
		}
		if handler != nil {
			return handler(ev, c)
		}
	}
	return nil
}

// resize перераховує екран гри з розміру терміналу
func (c *Client) resize() {
	cols, rows := c.screen.Size()
	w := float64(cols) * c.cellSize.W * c.uiScale
	h := float64(rows-statusRows) * c.cellSize.H * c.uiScale
	c.game.Resize(int(w), int(h), c.uiScale, c.zoom)
	c.screen.Sync()
}

func (c *Client) draw(now time.Time) {
	c.screen.Clear()
	sink := newScreenSink(c.screen, c.cellSize, statusRows, c.colors)
	c.game.Draw(sink, now)
	c.drawStatus(now)
	c.screen.Show()
}

// defaultKeys і defaultRunes - стандартні обробники клавіш
var (
	defaultKeys = map[tcell.Key]KeyHandler{
		tcell.KeyUp:     moveHandler(0, -1),
		tcell.KeyDown:   moveHandler(0, 1),
		tcell.KeyLeft:   moveHandler(-1, 0),
		tcell.KeyRight:  moveHandler(1, 0),
		tcell.KeyEscape: quit,
		tcell.KeyCtrlC:  quit,
	}
	defaultRunes = map[rune]KeyHandler{
		' ': stop,
		'q': quit,
		't': travel,
		'r': returnToTitle,
		'+': zoomHandler(1.25),
		'-': zoomHandler(0.8),
		'u': uiScaleHandler,
	}
)
