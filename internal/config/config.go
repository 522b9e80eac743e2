// Package config loads the settings of the scatterplot command from flags,
// SCATTER_ environment variables and an optional scatter.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/DeltaTestSoftware/scatter"
)

// Figure is one scatter plot and the element it is mounted at.
type Figure struct {
	Selector       string `mapstructure:"selector"`
	scatter.Config `mapstructure:",squash"`
}

type Config struct {
	// Data is the CSV file with a header row.
	Data string
	// Out is the HTML file written after loading. Empty disables it.
	Out string
	// Window opens the interactive viewer.
	Window       bool
	LogLevel     string
	ListTemplate string
	Figures      []Figure
}

var defaultFigures = []map[string]any{
	{
		"selector": "#figure1",
		"title":    "MPG vs Price",
		"x":        "Price",
		"y":        "MPG",
		"r":        "Weight",
		"color":    "Country",
	},
	{
		"selector": "#figure2",
		"title":    "MPG vs Engine Size",
		"x":        "EngineSizeCI",
		"y":        "MPG",
		"r":        "Price",
		"color":    "Country",
	},
}

// Load parses args and merges them with the environment and the config
// file. Flags win over the environment, which wins over the file.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("scatterplot", pflag.ContinueOnError)
	fs.String("config", "", "config file (default ./scatter.yaml)")
	fs.String("data", "./data/car_sample_data.csv", "CSV file to plot")
	fs.String("out", "scatter.html", "HTML file to write, empty to skip")
	fs.Bool("window", false, "open the interactive window")
	fs.String("log-level", "info", "log level")
	fs.String("list-template", scatter.DefaultListTemplate, "line template for selected records")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("figures", defaultFigures)
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix("SCATTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", file, err)
		}
	} else {
		v.SetConfigName("scatter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Data:         v.GetString("data"),
		Out:          v.GetString("out"),
		Window:       v.GetBool("window"),
		LogLevel:     v.GetString("log-level"),
		ListTemplate: v.GetString("list-template"),
	}
	if err := v.UnmarshalKey("figures", &cfg.Figures); err != nil {
		return nil, fmt.Errorf("decode figures: %w", err)
	}
	for i, f := range cfg.Figures {
		if f.Selector == "" {
			return nil, fmt.Errorf("figure %d: missing selector", i)
		}
	}
	return cfg, nil
}
