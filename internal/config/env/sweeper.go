package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type sweeperEnv struct {
	Interval time.Duration `env:"SWEEP_INTERVAL,required"`
}

type sweeper struct {
	raw sweeperEnv
}

func NewSweeperConfig() (*sweeper, error) {
	var raw sweeperEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &sweeper{raw: raw}, nil
}

func (cfg *sweeper) Interval() time.Duration { return cfg.raw.Interval }
