package main

import (
	"os"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Sigma       float64 `yaml:"sigma" json:"sigma"`
	Defuzzifier string  `yaml:"defuzzifier" json:"defuzzifier"`
	Samples     int     `yaml:"samples" json:"samples"`

	PresetRoot  string `yaml:"presetRoot" json:"presetRoot"`
	RedisDSN    string `yaml:"redisDSN" json:"redisDSN"`
	RedisPreKey string `yaml:"redisPreKey" json:"redisPreKey"`

	CacheExpiration time.Duration `yaml:"cacheExpiration" json:"cacheExpiration"`
}

func (cfg *Config) fill() {
	if cfg.Sigma <= 0 {
		cfg.Sigma = 0.15
	}

	if cfg.Samples < 2 {
		cfg.Samples = 101
	}

	if cfg.PresetRoot == "" {
		cfg.PresetRoot = "presets"
	}

	if cfg.RedisPreKey == "" {
		cfg.RedisPreKey = "fuzzylab"
	}
}

var (
	cfg        Config
	configFile string

	logger = l.NewConsoleLoggerWrapper()

	rootCmd = &cobra.Command{
		Use:           "fuzzylab",
		Short:         "Membership functions, fuzzy set algebra and a Mamdani approximation of y = x^2",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				d, err := os.ReadFile(configFile)
				if err != nil {
					return err
				}

				if err = yaml.Unmarshal(d, &cfg); err != nil {
					return err
				}
			}

			cfg.fill()

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "yaml config file")

	rootCmd.AddCommand(mfCmd(), opsCmd(), fisCmd(), curveCmd(), anchorsCmd(), presetCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("fuzzylab failed")
	}
}
