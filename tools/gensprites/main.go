// Йоу, чат! Маленька утиліта, яка зберігає стандартні спрайти в PNG,
// щоб художник міг їх перемалювати, і складає одну пробну іконку.

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"CompassCore/locator"
	"CompassCore/render"
)

var (
	outDir  = flag.String("out", "sprites", "Output directory")
	isDebug = flag.Bool("debug", false, "Enable debug log output")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	if *isDebug {
		logger = unwrap(zap.NewDevelopment())
	} else {
		logger = unwrap(zap.NewProduction())
	}
	defer logger.Sync()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("Create output directory fail", zap.Error(err))
	}

	sprites := render.DefaultSprites()
	files := map[string]image.Image{
		"background.png":  sprites.Background,
		"foreground.png":  sprites.Foreground,
		"hair.png":        sprites.Hair.Image,
		"hats.png":        sprites.Hats.Image,
		"accessories.png": sprites.Accessories.Image,
		"arrow.png":       sprites.Arrow,
	}
	for name, img := range sprites.Faces {
		files["face_"+name+".png"] = img
	}

	compositor := render.NewCompositor(logger.Named("render"), sprites)
	sample := locator.VisualState{
		TextureID: "farmer_girl_base",
		EyeColor:  color.RGBA{R: 40, G: 160, B: 80, A: 255},
		Skin:      2,
		Hair:      4,
		HairColor: color.RGBA{R: 200, G: 60, B: 40, A: 255},
		Hat:       1,
		Accessory: 0,
	}
	icon, err := compositor.Composite(sample)
	if err != nil {
		logger.Fatal("Composite sample icon fail", zap.Error(err))
	}
	files["sample_icon.png"] = icon

	for name, img := range files {
		path := filepath.Join(*outDir, name)
		if err := writePNG(path, img); err != nil {
			logger.Error("Write sprite fail", zap.String("path", path), zap.Error(err))
			continue
		}
		logger.Info("Sprite written", zap.String("path", path))
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
