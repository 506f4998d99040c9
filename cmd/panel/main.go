package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"exhibit/pkg/display"
)

var serial = flag.String("serial", "ttyACM0", "serial name")
var listen = flag.String("listen", ":9123", "listen addr")
var light = flag.Uint8("light", 100, "set light")
var mirror = flag.Bool("mirror", false, "set mirror")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, *http.Server, error) {
				logger, err := zap.NewDevelopment()
				return logger, &http.Server{Addr: *listen}, err
			},
			func(logger *zap.Logger) (*display.Panel, error) {
				return display.OpenPanel(*serial, logger)
			},
			display.NewService,
		),
		fx.Invoke(
			func(p *display.Panel) error {
				if err := p.Startup(); err != nil {
					return err
				}
				if err := p.SetMirror(*mirror); err != nil {
					return err
				}
				return p.SetLight(*light)
			},
			display.Serve,
		),
	).Run()
}
