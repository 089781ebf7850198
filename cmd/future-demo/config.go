package main

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Delay     time.Duration
	Consumers int `validate:"min=1,max=1024"`
	Fail      bool
}

// fileConfig is the yaml shape; delay is a time.ParseDuration string so the
// file can say "250ms" instead of nanoseconds.
type fileConfig struct {
	Delay     string `yaml:"delay"`
	Consumers *int   `yaml:"consumers"`
	Fail      *bool  `yaml:"fail"`
}

// loadConfig starts from the flag values and lets an optional yaml file
// override them, then validates the result.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	flags := cmd.Flags()
	conf := &Config{}
	conf.Delay, _ = flags.GetDuration("delay")
	conf.Consumers, _ = flags.GetInt("consumers")
	conf.Fail, _ = flags.GetBool("fail")

	if path, _ := flags.GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var fc fileConfig
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
		if fc.Delay != "" {
			if conf.Delay, err = time.ParseDuration(fc.Delay); err != nil {
				return nil, err
			}
		}
		if fc.Consumers != nil {
			conf.Consumers = *fc.Consumers
		}
		if fc.Fail != nil {
			conf.Fail = *fc.Fail
		}
	}

	if err := validator.New().Struct(conf); err != nil {
		return nil, err
	}
	return conf, nil
}
