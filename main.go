// Йоу, чат! Сьогодні ми будемо розбирати як зібрати компас для кооперативу!
// Коли інший гравець йде за край екрану, на краю з'являється бульбашка
// з його головою і стрілка в його бік.

// Пакет main - це точка входу нашої програми, звідси все починається!
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"

	"CompassCore/client"
	"CompassCore/game"
	"CompassCore/locator"
	"CompassCore/render"
	"CompassCore/render/ebitensink"
	"CompassCore/world"
)

var (
	// isDebug - в дебаг режимі буде більше логів
	isDebug = flag.Bool("debug", false, "Enable debug log output")
	// configPath - шлях до конфігу, якщо файлу немає беремо стандартні налаштування
	configPath = flag.String("config", "config.toml", "Path to the config file")
	// logPath - куди писати логи, термінал зайнятий картинкою
	logPath = flag.String("log", "compass.log", "Log file path")
	// window - відкрити графічне вікно замість терміналу
	window = flag.Bool("window", false, "Open a graphical window instead of the terminal client")
	// peers - скільки віддалених гравців блукає світом
	peers = flag.Int("peers", 3, "Number of simulated remote players")
	seed  = flag.Int64("seed", 1, "Random seed for the simulated players")
)

func main() {
	flag.Parse()

	// В дебаг режимі логи детальніші, в продакшені швидші
	var logConfig zap.Config
	if *isDebug {
		logConfig = zap.NewDevelopmentConfig()
	} else {
		logConfig = zap.NewProductionConfig()
	}
	// Термінал зайнятий картинкою, тому логи йдуть у файл з ротацією
	unwrapErr(zap.RegisterSink("rotate", newRotatingSink))
	logConfig.OutputPaths = []string{"rotate://" + filepath.ToSlash(unwrap(filepath.Abs(*logPath)))}
	logger := unwrap(logConfig.Build())
	defer func(logger *zap.Logger) {
		// Синхронізуємо буфер логів з диском
		if err := logger.Sync(); err != nil {
			fmt.Fprintln(os.Stderr, "sync log:", err)
		}
	}(logger)

	logger.Info("Compass start")
	printBuildInfo(logger)
	defer logger.Info("Compass exit")

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Error("Read config fail", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sprites := render.DefaultSprites()
	compositor := render.NewCompositor(logger.Named("render"), sprites)

	w := world.New(logger.Named("world"), world.Config{
		TileSize:  config.TileSize,
		Bounds:    locator.Rect{X: 0, Y: 0, W: 80 * config.TileSize, H: 65 * config.TileSize},
		Speed:     config.TileSize / 16,
		Locations: []string{"Farm", "Town", "Beach", "Mountain"},
		Seed:      *seed,
	})
	local := world.NewPlayer("Farmer", "Farm", world.Position{40 * config.TileSize, 32 * config.TileSize}, locator.VisualState{
		TextureID: "farmer_base",
		EyeColor:  color.RGBA{R: 60, G: 120, B: 200, A: 255},
		Skin:      1,
		Hair:      2,
		HairColor: color.RGBA{R: 120, G: 70, B: 30, A: 255},
		Hat:       locator.NoHat,
		Accessory: locator.NoAccessory,
	})
	g := game.NewGame(logger, config, compositor, w, local)

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *peers; i++ {
		g.Connect(randomPeer(rng, fmt.Sprintf("Farmhand %d", i+1), w.Config()))
	}

	if *window {
		win := ebitensink.NewWindow(logger.Named("window"), g, local, ebitensink.New(compositor.Arrow()))
		if err := win.Run(config.TickRate); err != nil {
			logger.Error("Window error", zap.Error(err))
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("Open terminal fail", zap.Error(err))
		return
	}
	if err := screen.Init(); err != nil {
		logger.Error("Init terminal fail", zap.Error(err))
		return
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	c := client.New(logger.Named("client"), screen, g, local)
	c.Start(ctx, config.TickRate)
}

// randomPeer створює віддаленого гравця з випадковою зовнішністю
func randomPeer(rng *rand.Rand, name string, wc world.Config) *world.Player {
	textures := []string{"farmer_base", "farmer_girl_base"}
	hat := rng.Intn(5) - 1
	accessory := rng.Intn(3) - 1
	pos := world.Position{
		wc.Bounds.X + rng.Float64()*wc.Bounds.W,
		wc.Bounds.Y + rng.Float64()*wc.Bounds.H,
	}
	return world.NewPlayer(name, "Farm", pos, locator.VisualState{
		TextureID: textures[rng.Intn(len(textures))],
		EyeColor:  color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255},
		Skin:      rng.Intn(6),
		Hair:      rng.Intn(6),
		HairColor: color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255},
		Hat:       hat,
		Accessory: accessory,
	})
}

// printBuildInfo виводить інформацію про збірку
// Це допомагає знайти проблеми з версіями бібліотек
func printBuildInfo(logger *zap.Logger) {
	binaryInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	settings := make(map[string]string)
	for _, v := range binaryInfo.Settings {
		settings[v.Key] = v.Value
	}
	logger.Debug("Build info", zap.Any("settings", settings))
}

// rotatingSink - файл логів, який сам себе ротує
type rotatingSink struct {
	*lumberjack.Logger
}

func (rotatingSink) Sync() error { return nil }

func newRotatingSink(u *url.URL) (zap.Sink, error) {
	return rotatingSink{&lumberjack.Logger{
		Filename:   u.Path,
		MaxSize:    10, // мегабайт
		MaxBackups: 3,
	}}, nil
}

func unwrapErr(err error) {
	if err != nil {
		panic(err)
	}
}

// unwrap - хелпер функція яка спрощує обробку помилок
// Якщо є помилка - відразу панікуємо
func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
