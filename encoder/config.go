package encoder

import (
	"github.com/spf13/viper"
)

type Config struct {
	// Workers is the number of goroutines encoding blocks. 1 encodes inline.
	Workers int `mapstructure:"workers"`
	// Digest adds a SHAKE-256 fingerprint of the codeword stream to the summary.
	Digest bool `mapstructure:"digest"`
}

func init() {
	viper.SetDefault("workers", 1)
	viper.SetDefault("digest", false)
}

// NewConfig reads the encoder settings from viper, falling back to defaults.
func NewConfig() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config.normalize(), nil
}

func (c Config) normalize() Config {
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}
