package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/ingest"
	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/logger"
	"github.com/spigell/cv-tailor/internal/relevance"
	"github.com/spigell/cv-tailor/internal/selection"
)

const (
	app       = "cv-tailor"
	envPrefix = "CV_TAILOR"
)

type Config struct {
	MaxInputLength int            `mapstructure:"max-input-length"`
	UserAgent      string         `mapstructure:"user-agent"`
	Keywords       KeywordsConfig `mapstructure:"keywords"`
	Tuning         map[string]any `mapstructure:"tuning"`
	Server         ServerConfig   `mapstructure:"server"`
	Report         ReportConfig   `mapstructure:"report"`
}

type KeywordsConfig struct {
	PoolLimit        int      `mapstructure:"pool-limit"`
	InsightLimit     int      `mapstructure:"insight-limit"`
	Exclude          []string `mapstructure:"exclude"`
	ExcludeFile      string   `mapstructure:"exclude-file"`
	Include          []string `mapstructure:"include"`
	DefaultSelection string   `mapstructure:"default-selection"`
}

type ServerConfig struct {
	Listen    string          `mapstructure:"listen"`
	Token     string          `mapstructure:"token" json:"-"`
	TokenFile string          `mapstructure:"token-file"`
	RateLimit RateLimitConfig `mapstructure:"rate-limit"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type ReportConfig struct {
	XLSX string `mapstructure:"xlsx"`
	JSON string `mapstructure:"json"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-tailor extracts the keywords of a job posting and scores how well a CV covers them",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-tailor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max-input-length", ingest.DefaultMaxInputLength)
	v.SetDefault("user-agent", "")
	v.SetDefault("keywords.pool-limit", keywords.DefaultPoolLimit)
	v.SetDefault("keywords.insight-limit", keywords.InsightLimit)
	v.SetDefault("keywords.exclude", []string{})
	v.SetDefault("keywords.exclude-file", "")
	v.SetDefault("keywords.include", []string{})
	v.SetDefault("keywords.default-selection", selection.DefaultRecommended)
	v.SetDefault("server.listen", ":3001")
	v.SetDefault("server.token", "")
	v.SetDefault("server.token-file", "")
	v.SetDefault("server.rate-limit.requests", 10)
	v.SetDefault("server.rate-limit.window", time.Minute)
	v.SetDefault("report.xlsx", "")
	v.SetDefault("report.json", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

func initConfig() {
	// .env is optional, real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		log.Fatal(err)
	}
}

// readConfig reads the explicit config file, or cv-tailor.yaml from the
// working directory when it exists.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		return nil, errors.New("config is empty")
	}

	if config.Keywords.PoolLimit <= 0 {
		return nil, fmt.Errorf("keywords.pool-limit must be positive, got %d", config.Keywords.PoolLimit)
	}
	if config.MaxInputLength <= 0 {
		return nil, fmt.Errorf("max-input-length must be positive, got %d", config.MaxInputLength)
	}

	return config, nil
}

// setup builds the logger, the config and the scorer every command needs.
func setup() (*zap.Logger, *Config, *relevance.Scorer) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting", zap.String("version", version), zap.Any("config", config))

	tuning, err := relevance.DecodeTuning(config.Tuning)
	if err != nil {
		logger.Fatal("getting a tuning", zap.Error(err))
	}

	scorer := relevance.NewScorer(tuning, logger).WithInsightLimit(config.Keywords.InsightLimit)
	logger.Debug("scorer ready", zap.Any("tuning", scorer.Tuning()))

	return logger, config, scorer
}
