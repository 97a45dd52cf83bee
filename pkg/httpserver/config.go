package httpserver

import "time"

type Config struct {
	Addr              string        `env:"ADDR"`                                // Addr is the address the server listens on. Empty disables the server.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"` // ReadHeaderTimeout is the time allowed to read request headers.
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`    // ShutdownTimeout is the time allowed for graceful shutdown.
}

// Enabled reports whether an address is configured.
func (c Config) Enabled() bool { return c.Addr != "" }

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 3)

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadHeaderTimeout > 0 {
		configOpts = append(configOpts, WithReadHeaderTimeout(cfg.ReadHeaderTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
