package query

import (
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/kmbeta/kmbeta/pkg/config"
	"github.com/kmbeta/kmbeta/pkg/directory"
	"github.com/kmbeta/kmbeta/pkg/kmb"
	"github.com/kmbeta/kmbeta/pkg/render"
)

func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "route",
			Usage: "Display route info",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "route",
					Aliases:  []string{"r"},
					Usage:    "Route number, e.g. 35A",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				orchestrator, err := newOrchestrator(c)
				if err != nil {
					return err
				}

				startTime := time.Now()

				variants, err := orchestrator.Route(c.String("route"))
				if err != nil {
					return err
				}

				if log.Logger.GetLevel() <= zerolog.DebugLevel {
					pretty.Println(variants)
				}

				render.Routes(os.Stdout, variants)

				log.Debug().Msgf("Operation took %s", time.Since(startTime).String())

				return nil
			},
		},
		{
			Name:  "eta",
			Usage: "Display live arrival info for one route variant",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "route",
					Aliases:  []string{"r"},
					Usage:    "Route number, e.g. 35A",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "direction",
					Aliases:  []string{"d"},
					Usage:    "Route direction, either inbound or outbound",
					Required: true,
				},
				&cli.IntFlag{
					Name:    "service-type",
					Aliases: []string{"s"},
					Usage:   "Route service type",
					Value:   1,
				},
			},
			Action: func(c *cli.Context) error {
				orchestrator, err := newOrchestrator(c)
				if err != nil {
					return err
				}

				startTime := time.Now()

				rows, err := orchestrator.ETA(
					c.Context,
					c.String("route"),
					directory.ParseDirection(c.String("direction")),
					c.Int("service-type"),
				)
				if err != nil {
					return err
				}

				render.ETARows(os.Stdout, rows)

				log.Debug().Msgf("Operation took %s", time.Since(startTime).String())

				return nil
			},
		},
		{
			Name:  "all",
			Usage: "Display all route info. Example `kmbeta all | fzf`",
			Action: func(c *cli.Context) error {
				orchestrator, err := newOrchestrator(c)
				if err != nil {
					return err
				}

				startTime := time.Now()

				render.Routes(os.Stdout, orchestrator.All())

				log.Debug().Msgf("Operation took %s", time.Since(startTime).String())

				return nil
			},
		},
	}
}

// newOrchestrator builds the orchestrator and performs the two bulk
// directory loads every query kind depends on
func newOrchestrator(c *cli.Context) (*Orchestrator, error) {
	loadedConfig, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := kmb.NewClient(loadedConfig.API.BaseURL, loadedConfig.RequestTimeout())
	orchestrator := NewOrchestrator(client, loadedConfig.Language)

	if err := orchestrator.Load(c.Context); err != nil {
		return nil, err
	}

	return orchestrator, nil
}
