package main

import (
	"context"
	"log"
	"math/rand"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"exhibit/pkg/display"
	"exhibit/pkg/effect"
	"exhibit/pkg/gallery"
)

var inputDir = flag.String("input-dir", "source-images", "source images dir")
var outputDir = flag.String("output-dir", "output-images", "output images dir")
var images = flag.StringSlice("images", []string{"alf.png", "hug.png", "sad.jpg", "jegermeister.jpg"}, "source images, file names or urls")
var effects = flag.StringSlice("effects", effect.Names(), "effect applied to each image")
var show = flag.String("show", "none", "display backend: none, viewer, terminal, panel, remote, telegram, log")
var serialName = flag.String("serial", "ttyACM0", "panel serial name")
var remoteAddr = flag.String("remote", "127.0.0.1:9123", "panel service addr")
var tgToken = flag.String("tg-token", "", "telegram bot token")
var tgChat = flag.Int64("tg-chat", 0, "telegram chat id")
var seed = flag.Int64("seed", 0, "shuffle seed, 0 for time based")
var debug = flag.Bool("debug", false, "set debug")

var dotRadius = flag.Int("dot-radius", 10, "dot radius")
var dotGap = flag.Int("dot-gap", 5, "gap between dots")
var background = flag.String("background", "#000000", "background color")
var shuffleStep = flag.Int("shuffle-step", 10, "shuffle grid step")
var shuffleRandomness = flag.Int("shuffle-randomness", 3, "shuffle square size factor")
var threshold = flag.Int("threshold", 50, "dominant channel threshold")
var difference = flag.Float64("difference", 0.9, "dominant channel ratio")
var replacements = flag.StringSlice("replacements", []string{"#ff00ff", "#ffff00", "#00ffff"}, "red, green and blue replacements")
var tileColors = flag.StringSlice("tile-colors", []string{"#960096", "#969600", "#009600", "#009696"}, "tile base colors")
var tileLevels = flag.Int("tile-levels", 6, "posterization levels")
var tileSize = flag.Int("tile-size", 2, "tile grid size")

func main() {
	flag.Parse()

	var runErr error

	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			newLogger,
			newParams,
			newDisplay,
			newGallery,
		),
		fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, g *gallery.Gallery, logger *zap.Logger) {
			ctx, cancel := context.WithCancel(context.Background())
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						defer func() {
							_ = sd.Shutdown()
						}()

						report, err := g.Run(ctx)
						report.Log(logger)
						if err != nil {
							logger.With(zap.Error(err)).Error("gallery failed")
							runErr = err
						}
					}()
					return nil
				},
				OnStop: func(context.Context) error {
					cancel()
					return nil
				},
			})
		}),
	)

	app.Run()

	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newParams() (effect.Params, error) {
	p := effect.DefaultParams()
	p.DotRadius = *dotRadius
	p.DotGap = *dotGap
	p.ShuffleStep = *shuffleStep
	p.ShuffleRandomness = *shuffleRandomness
	p.Threshold = *threshold
	p.Ratio = *difference
	p.TileLevels = *tileLevels
	p.TileSize = *tileSize

	bg, err := parseColor(*background)
	if err != nil {
		return p, err
	}
	p.Background = bg
	p.DotBackground = bg

	if p.Replacements, err = parseColors(*replacements); err != nil {
		return p, err
	}
	if p.TileColors, err = parseColors(*tileColors); err != nil {
		return p, err
	}

	if *seed != 0 {
		p.ShuffleOptions = append(p.ShuffleOptions, effect.WithRand(rand.New(rand.NewSource(*seed))))
	}
	return p, nil
}

func newDisplay(lc fx.Lifecycle, logger *zap.Logger) (display.Display, error) {
	switch *show {
	case "", "none":
		return nil, nil
	case "log":
		return display.Log(logger), nil
	case "viewer":
		tmp, err := display.NewTmpFs("")
		if err != nil {
			return nil, err
		}
		return display.NewViewer(tmp, logger), nil
	case "terminal":
		return display.NewTerminal(logger), nil
	case "panel":
		p, err := display.OpenPanel(*serialName, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return p.Shutdown()
			},
		})
		return p, nil
	case "remote":
		r, err := display.Dial(*remoteAddr)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return r.Close()
			},
		})
		return r, nil
	case "telegram":
		return display.NewTelegram(*tgToken, *tgChat, logger)
	}
	return nil, display.ErrUnknownDisplay
}

func newGallery(params effect.Params, d display.Display, logger *zap.Logger) (*gallery.Gallery, error) {
	list, err := effect.BuildAll(*effects, params)
	if err != nil {
		return nil, err
	}

	in, err := gallery.DirFs(*inputDir, false)
	if err != nil {
		return nil, err
	}
	out, err := gallery.DirFs(*outputDir, true)
	if err != nil {
		return nil, err
	}

	opts := []gallery.Option{
		gallery.WithFs(in, out),
		gallery.WithLogger(logger),
		gallery.WithProgress(os.Stderr),
	}
	if d != nil {
		opts = append(opts, gallery.WithDisplay(d))
	}

	logger.With(
		zap.Strings("images", *images),
		zap.Strings("effects", *effects),
		zap.String("output", *outputDir),
	).Debug("gallery ready")

	return gallery.New(*images, list, opts...)
}
