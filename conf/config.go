// Package conf loads the calc command's configuration from an optional TOML
// file and from environment variables.
//
// The configuration file is looked up in the working directory as
// config.toml unless the CALC_CONFIG_FILE environment variable names another
// file. Every option can also be set through environment variables prefixed
// with CALC_, e.g. CALC__LOGGING__LOG_LEVEL.
//
// An example configuration file:
//
//	[logging]
//	debug = true
//	log_level = "debug"
//
//	[output]
//	format = "%.6g"
//	prompt = "calc> "
package conf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ConfigStruct is a structure holding the whole calc configuration.
type ConfigStruct struct {
	Logging LoggingConfiguration `mapstructure:"logging" toml:"logging"`
	Output  OutputConfiguration  `mapstructure:"output"  toml:"output"`
}

// LoggingConfiguration represents configuration for logging in general.
type LoggingConfiguration struct {
	// Debug enables pretty colored logging.
	Debug bool `mapstructure:"debug" toml:"debug"`

	// LogLevel sets the logging level to show. Possible values are:
	// "debug"
	// "info"
	// "warn", "warning"
	// "error"
	// "fatal"
	//
	// The logging level won't be changed if the value is not one of those
	// listed above.
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
}

// OutputConfiguration represents configuration of result printing.
type OutputConfiguration struct {
	// Format is the fmt verb used to print results.
	Format string `mapstructure:"format" toml:"format"`

	// Prompt is printed before each line read in interactive mode.
	Prompt string `mapstructure:"prompt" toml:"prompt"`
}

// Default returns the configuration used when no file and no environment
// override anything.
func Default() ConfigStruct {
	return ConfigStruct{
		Logging: LoggingConfiguration{
			LogLevel: "info",
		},
		Output: OutputConfiguration{
			Format: "%g",
			Prompt: "> ",
		},
	}
}

// LoadConfiguration loads configuration from defaultConfigFile, from the file
// set in configFileEnvVariableName, or from the environment.
func LoadConfiguration(configFileEnvVariableName, defaultConfigFile string) (ConfigStruct, error) {
	config := Default()

	// env. variable holding name of configuration file
	configFile, specified := os.LookupEnv(configFileEnvVariableName)
	if specified {
		// we need to separate the directory name and filename without
		// extension
		directory, basename := filepath.Split(configFile)
		file := strings.TrimSuffix(basename, filepath.Ext(basename))
		// parse the configuration
		log.Info().Str("filename", configFile).Msg("Parsing configuration file")
		viper.SetConfigName(file)
		viper.AddConfigPath(directory)
	} else {
		log.Info().Str("filename", defaultConfigFile).Msg("Parsing configuration file")
		// parse the configuration
		viper.SetConfigName(defaultConfigFile)
		viper.AddConfigPath(".")
	}

	// try to read the whole configuration
	err := viper.ReadInConfig()
	if _, isNotFoundError := err.(viper.ConfigFileNotFoundError); !specified && isNotFoundError {
		// A missing config file is fine, but Viper only overrides keys it
		// knows about from the environment, so feed it the defaults encoded
		// as a fake TOML config first.
		fakeTomlConfigWriter := new(bytes.Buffer)

		err := toml.NewEncoder(fakeTomlConfigWriter).Encode(config)
		if err != nil {
			return config, err
		}

		fakeTomlConfig := fakeTomlConfigWriter.String()

		viper.SetConfigType("toml")

		err = viper.ReadConfig(strings.NewReader(fakeTomlConfig))
		if err != nil {
			return config, err
		}
	} else if err != nil {
		// error is processed on caller side
		return config, fmt.Errorf("fatal error config file: %s", err)
	}

	// override config from env if there's variable in env

	const envPrefix = "CALC_"

	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "__"))

	err = viper.Unmarshal(&config)
	return config, err
}

// GetLoggingConfiguration returns logging configuration.
func GetLoggingConfiguration(config ConfigStruct) LoggingConfiguration {
	return config.Logging
}

// GetOutputConfiguration returns output configuration.
func GetOutputConfiguration(config ConfigStruct) OutputConfiguration {
	return config.Output
}
