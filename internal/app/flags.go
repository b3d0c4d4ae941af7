package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Workers int
	Pattern string
	Fill    float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 512, Height: 512, Scale: 2, TPS: 30, Seed: 42, Fill: 0.3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.IntVar(&c.Workers, "workers", c.Workers, "evaluator workers (0 = one per CPU)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "catalog pattern to load instead of a random fill")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "alive probability for the random fill")
}
