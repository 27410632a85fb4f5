package callback

import "time"

type Config struct {
	Enable  bool          `mapstructure:"enable"`
	Timeout time.Duration `mapstructure:"timeout"`
}
