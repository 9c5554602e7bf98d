package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/jaittola/pasteparser/internal/logging"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "PASTEPARSER_CONFIG"

	// Variables to override values in the config file
	ENV_LOG_LEVEL          = "PASTEPARSER_LOG_LEVEL"
	ENV_OUTPUT_FORMAT      = "PASTEPARSER_FORMAT"
	ENV_PRECISION          = "PASTEPARSER_PRECISION"
	ENV_LEGACY_SCALAR_KIND = "PASTEPARSER_LEGACY_SCALAR_KIND"
)

type config struct {
	// Logging configs
	Logging logging.LoggerConfig `json:"logging" yaml:"logging"`

	ParserConfig struct {
		// LegacyScalarKind makes every number a Double, as older calculator
		// versions did.
		LegacyScalarKind bool `json:"legacy_scalar_kind" yaml:"legacy_scalar_kind"`
		// Precision is the precision in bits of converted values.
		Precision uint `json:"precision" yaml:"precision"`
	} `json:"parser" yaml:"parser"`

	OutputConfig struct {
		Format string `json:"format" yaml:"format"` // tree, json, repr, dump, value
	} `json:"output" yaml:"output"`
}

func defaultConfig() config {
	var conf config
	conf.Logging.LogLevel = "warn"
	conf.Logging.Format = "text"
	conf.ParserConfig.Precision = 64
	conf.OutputConfig.Format = "tree"
	return conf
}

// loadConfig reads the config file at path, or at the path named by the
// environment if path is empty, over the defaults. Environment variables
// override the file.
func loadConfig(path string, getenv func(string) string) (config, error) {
	conf := defaultConfig()
	if path == "" {
		path = getenv(ENV_CONFIG_FILE_PATH)
	}
	if path != "" {
		yamlFile, err := os.ReadFile(path)
		if err != nil {
			return conf, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(yamlFile, &conf); err != nil {
			return conf, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := envOverride(&conf, getenv); err != nil {
		return conf, err
	}
	if err := checkFormat(conf.OutputConfig.Format); err != nil {
		return conf, err
	}
	return conf, nil
}

func envOverride(conf *config, getenv func(string) string) error {
	if level := getenv(ENV_LOG_LEVEL); level != "" {
		conf.Logging.LogLevel = level
	}

	if format := getenv(ENV_OUTPUT_FORMAT); format != "" {
		conf.OutputConfig.Format = format
	}

	if prec := getenv(ENV_PRECISION); prec != "" {
		p, err := strconv.ParseUint(prec, 10, 32)
		if err != nil || p == 0 {
			return fmt.Errorf("%s: invalid precision %q", ENV_PRECISION, prec)
		}
		conf.ParserConfig.Precision = uint(p)
	}

	if legacy := getenv(ENV_LEGACY_SCALAR_KIND); legacy != "" {
		b, err := strconv.ParseBool(legacy)
		if err != nil {
			return fmt.Errorf("%s: %w", ENV_LEGACY_SCALAR_KIND, err)
		}
		conf.ParserConfig.LegacyScalarKind = b
	}
	return nil
}

var formats = []string{"tree", "json", "repr", "dump", "value"}

func checkFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format: %s", format)
}
