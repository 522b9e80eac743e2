package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DeltaTestSoftware/scatter"
	"github.com/DeltaTestSoftware/scatter/internal/config"
	"github.com/DeltaTestSoftware/scatter/window"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	table, err := scatter.LoadTable(cfg.Data)
	if err != nil {
		log.Fatal().Err(err).Msg("load data")
	}
	log.Info().Str("file", cfg.Data).Int("records", len(table.Records)).Msg("data loaded")

	doc, err := scatter.NewDocument(cfg.ListTemplate)
	if err != nil {
		log.Fatal().Err(err).Msg("create document")
	}
	doc.Logger = log.Logger

	for _, f := range cfg.Figures {
		doc.ScatterPlot(table.Records, f.Selector, f.Config)
	}

	if cfg.Out != "" {
		if err := writeHTML(doc, cfg.Out); err != nil {
			log.Fatal().Err(err).Msg("write html")
		}
		log.Info().Str("file", cfg.Out).Msg("html written")
	}

	if cfg.Window {
		if err := window.Show(doc, "Scatter"); err != nil {
			log.Fatal().Err(err).Msg("window")
		}
	}
}

func writeHTML(doc *scatter.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.WriteHTML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
