package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type GithubConfig struct {
	Token        string        `yaml:"token"`
	Username     string        `yaml:"username" validate:"required"`
	PortfolioTag string        `yaml:"portfolioTag" validate:"required"`
	StartYear    int           `yaml:"startYear" validate:"required|min:2008"`
	Concurrency  int           `yaml:"concurrency"`
	CacheTTL     time.Duration `yaml:"cacheTTL" validate:"required|min:1"`
	StaleTTL     time.Duration `yaml:"staleTTL" validate:"required|min:1"`
}

type DevtoConfig struct {
	Username string `yaml:"username" validate:"required"`
}

type WakatimeConfig struct {
	APIKey string `yaml:"apiKey"`
}

type RefreshConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Github    GithubConfig   `yaml:"github"`
	Devto     DevtoConfig    `yaml:"devto"`
	Wakatime  WakatimeConfig `yaml:"wakatime"`
	Refresh   RefreshConfig  `yaml:"refresh"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
