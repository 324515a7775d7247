package opt

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/towzeur/go-game-implementation/goban"
)

// Options are the settings shared by the goban commands. Each can
// come from a flag, a GOBAN_* environment variable or a config file,
// in that order of precedence.
type Options struct {
	Size     int    `mapstructure:"size"`
	Height   int    `mapstructure:"height"`
	Width    int    `mapstructure:"width"`
	Handicap int    `mapstructure:"handicap"`
	DB       string `mapstructure:"db"`
	Unicode  bool   `mapstructure:"unicode"`
	Debug    bool   `mapstructure:"debug"`

	config string
}

func (o *Options) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.config, "config", "", "config file (yaml, toml or json)")
	flags.IntVar(&o.Size, "size", 19, "board size")
	flags.IntVar(&o.Height, "height", 0, "board height (overrides -size)")
	flags.IntVar(&o.Width, "width", 0, "board width (overrides -size)")
	flags.IntVar(&o.Handicap, "handicap", 0, "handicap stones for black")
	flags.StringVar(&o.DB, "db", "", "sqlite database to log games to")
	flags.BoolVar(&o.Unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&o.Debug, "debug", false, "debug logging")
}

// Resolve fills o from the config file and environment, then
// reapplies any flag set explicitly on the command line.
func (o *Options) Resolve(flags *flag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix("GOBAN")
	v.AutomaticEnv()
	flags.VisitAll(func(f *flag.Flag) {
		if f.Name != "config" {
			v.SetDefault(f.Name, f.Value.String())
		}
	})
	if o.config != "" {
		v.SetConfigFile(o.config)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", o.config)
		}
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			v.Set(f.Name, f.Value.String())
		}
	})
	if err := v.Unmarshal(o); err != nil {
		return errors.Wrap(err, "decode options")
	}
	return nil
}

// BuildConfig returns the board configuration described by o.
func (o *Options) BuildConfig(log *zap.Logger) goban.Config {
	cfg := goban.Config{Height: o.Size, Width: o.Size, Logger: log}
	if o.Height != 0 {
		cfg.Height = o.Height
	}
	if o.Width != 0 {
		cfg.Width = o.Width
	}
	return cfg
}

func NewLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
