package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/TedDriggs/diplomacy-sub000/pkg/logger"
)

// AppMetadata :
// Describes the properties needed to run the example adjudication command.
// The library itself never reads configuration: every value that changes
// adjudication behavior (the rulebook edition) is passed explicitly to
// `Submission.Adjudicate` by the caller. This structure only carries the
// handful of knobs that make sense for a one-shot command-line tool.
//
// The `RunID` identifies this invocation in the logs. It is generated at
// startup and is meant to change on every run, so that the trace of two
// adjudications performed back to back on the same machine can still be
// told apart.
//
// The `Environment` is the name of the configuration file that was loaded,
// or "unknown" if none was provided. It is only used for display purposes.
//
// The `Edition` is the textual name of the rulebook edition to adjudicate
// under (e.g. "1971", "1982", "2023", "dptg"). It is resolved against
// `rulebook.Edition` by the caller; `pkg/config` has no notion of what an
// edition means.
//
// The `MinLevel` is the minimum trace severity the example command prints.
type AppMetadata struct {
	RunID       string `json:"run_id"`
	Environment string `json:"environment"`
	Edition     string `json:"edition"`
	MinLevel    logger.Severity
}

// Parse :
// Used to parse the example command's configuration and produce the
// corresponding metadata. Configuration is entirely optional: with no
// `configFile` the command falls back to sane defaults (the 1982 rulebook,
// `notice`-level tracing).
//
// The `configFile` is the name (without extension) of an optional YAML
// configuration file holding an `Edition` and/or `Tracing.MinLevel` key.
//
// This function returns the built-in command properties.
func Parse(configFile string) AppMetadata {
	metadata := AppMetadata{
		RunID:       uuid.New().String(),
		Environment: "unknown",
		Edition:     "1982",
		MinLevel:    logger.Notice,
	}

	if len(configFile) == 0 {
		return metadata
	}

	viper.SetEnvPrefix("ENV")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	viper.SetConfigName(configFile)
	viper.AddConfigPath(".")
	viper.AddConfigPath("data/config")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("could not parse input configuration %q (err: %v)", configFile, err))
	}

	metadata.Environment = configFile

	if viper.IsSet("Edition") {
		metadata.Edition = viper.GetString("Edition")
	}
	if viper.IsSet("Tracing.MinLevel") {
		if lvl, ok := parseSeverity(viper.GetString("Tracing.MinLevel")); ok {
			metadata.MinLevel = lvl
		}
	}

	return metadata
}

// parseSeverity :
// Converts the textual name of a severity (as found in a configuration
// file) into its `logger.Severity` value.
//
// Returns false if the name does not match any known severity.
func parseSeverity(name string) (logger.Severity, bool) {
	levels := map[string]logger.Severity{
		"verbose":  logger.Verbose,
		"debug":    logger.Debug,
		"info":     logger.Info,
		"notice":   logger.Notice,
		"warning":  logger.Warning,
		"error":    logger.Error,
		"critical": logger.Critical,
		"fatal":    logger.Fatal,
	}

	lvl, ok := levels[strings.ToLower(name)]
	return lvl, ok
}
