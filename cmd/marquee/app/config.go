package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
)

// EnvPrefix is prepended to every configuration key read from the environment.
const EnvPrefix = "MARQUEE"

// Config holds the application configuration loaded from config files,
// environment variables, .env files and, last, command-line flags.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	DataFile            string
	SuggestionThreshold int
	HistogramWidth      int

	// Logging configuration
	LogLevel    string // from --log-level only
	EnvLogLevel string // from LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. MARQUEE_* environment variables
//  3. .env and .env.local files
//  4. Config file (~/.marquee.yaml or ./.marquee.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations; a missing explicit file is an error.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".marquee")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot parse config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DataFile:            v.GetString("data_file"),
		SuggestionThreshold: v.GetInt("suggestion_threshold"),
		HistogramWidth:      v.GetInt("histogram_width"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_file", constants.DefaultDataFile)
	v.SetDefault("suggestion_threshold", constants.SuggestionThreshold)
	v.SetDefault("histogram_width", constants.HistogramWidth)
	v.SetDefault("format", "")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.NewConfigError("config", "data_file must not be empty", nil)
	}
	if c.SuggestionThreshold < 0 || c.SuggestionThreshold > 100 {
		return errors.NewConfigError("config", "suggestion_threshold must be between 0 and 100", nil)
	}
	if c.HistogramWidth <= 0 {
		return errors.NewConfigError("config", "histogram_width must be positive", nil)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return errors.NewConfigError("config", err.Error(), nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Empty strings and false booleans leave the loaded value in place.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, dataFile string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if dataFile != "" {
		c.DataFile = dataFile
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never overrides.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
