package starward

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _swconfig{}
)

// _swconfig is a "hidden" struct, just use `swConfig`
type _swconfig struct {
	VSOP87    bool
	VSOP87Dir string
	obsName   string
	obsLat    float64
	obsLon    float64
}

// swConfig returns the starward configuration, loading it on first use. The
// file is a conf.toml searched in the directory set by the STARWARD_CONFIG
// environment variable and then in the working directory. A missing file
// falls back to the defaults; any other read error panics. Concurrent first
// callers all wait for the one load.
func swConfig() _swconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	// Load the configuration file
	viper.SetConfigName("conf")
	if confPath := os.Getenv("STARWARD_CONFIG"); confPath != "" {
		viper.AddConfigPath(confPath)
	}
	viper.AddConfigPath(".")
	viper.SetDefault("observer.name", Greenwich.Name)
	viper.SetDefault("observer.latitude", Greenwich.Lat().Deg())
	viper.SetDefault("observer.longitude", -Greenwich.Lon().Deg())
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error reading conf.toml: %s", err))
		}
	}

	vsop87Enabled := viper.GetBool("VSOP87.enabled")
	vsop87Dir := viper.GetString("VSOP87.directory")
	obsName := viper.GetString("observer.name")
	obsLat := viper.GetFloat64("observer.latitude")
	obsLon := viper.GetFloat64("observer.longitude")

	config = _swconfig{VSOP87: vsop87Enabled, VSOP87Dir: vsop87Dir, obsName: obsName, obsLat: obsLat, obsLon: obsLon}
}

// DefaultObserver returns the observing site from the configuration, which
// is Greenwich when nothing else is set.
func DefaultObserver() Observer {
	c := swConfig()
	return NewObserver(c.obsName, c.obsLat, c.obsLon)
}
