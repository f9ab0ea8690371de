// Command map-fetch downloads a single static map image without opening a
// window. Positional arguments are navigation actions applied in order
// before the fetch, e.g. "map-fetch ZoomIn ZoomIn PanNorth".
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/map-viewer/internal/config"
	"github.com/ytget/map-viewer/internal/logging"
	"github.com/ytget/map-viewer/internal/model"
	"github.com/ytget/map-viewer/internal/viewer"
)

func main() {
	configDir := flag.String("config", "", "directory containing config.yaml")
	layer := flag.String("layer", "", "map layer override (map, sat, sat,skl)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [action...]\nactions: %s\n",
			os.Args[0], actionNames())
		flag.PrintDefaults()
	}
	flag.Parse()

	logging.Setup(zerolog.InfoLevel, nil)

	actions, err := parseActions(flag.Args())
	if err != nil {
		flag.Usage()
		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	if err := config.LoadEnv(config.DefaultEnvPaths()...); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}

	var paths []string
	if *configDir != "" {
		paths = append(paths, *configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Setup(cfg.LogLevel(), nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := viewer.NewServiceFromConfig(cfg, nil)
	if *layer != "" {
		if err := svc.SetLayer(*layer); err != nil {
			log.Fatal().Err(err).Msg("Invalid layer")
		}
	}

	for _, action := range actions {
		svc.Move(action)
	}

	snap := svc.Refresh(ctx)
	if !snap.OK() {
		log.Fatal().Err(snap.Err).Str("state", snap.State.String()).Msg("Fetch failed")
	}
	fmt.Println(snap.ImagePath)
}

// parseActions converts action names such as "ZoomIn" (any case) to actions
func parseActions(args []string) ([]model.Action, error) {
	actions := make([]model.Action, 0, len(args))
	for _, arg := range args {
		action, ok := lookupAction(arg)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", arg)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func lookupAction(name string) (model.Action, bool) {
	for _, a := range model.AllActions() {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return "", false
}

func actionNames() string {
	names := make([]string, 0, len(model.AllActions()))
	for _, a := range model.AllActions() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
