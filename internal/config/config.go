package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and then overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Timezone is the IANA zone used for day boundaries in stats and streaks.
	Timezone string `env:"TIMEZONE" env-default:"UTC" yaml:"timezone"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins is a comma separated CORS allow list; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"studytracker" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// User holds the identity used when a request does not name one.
	User struct {
		// DefaultID is the UUID of the single local user
		DefaultID string `env:"USER_DEFAULT_ID" env-default:"00000000-0000-0000-0000-000000000001" yaml:"defaultId"`
	} `yaml:"user"`

	// Timer contains the pomodoro timer settings
	Timer struct {
		// StatePath is the bbolt file holding the timer snapshot
		StatePath string `env:"TIMER_STATE_PATH" env-default:"timer.db" yaml:"statePath"`
		// PomodoroMinutes is the default study cycle length
		PomodoroMinutes int `env:"TIMER_POMODORO_MINUTES" env-default:"25" yaml:"pomodoroMinutes"`
		// BreakMinutes is the default break length
		BreakMinutes int `env:"TIMER_BREAK_MINUTES" env-default:"5" yaml:"breakMinutes"`
		// CheckIntervalMinutes is how often a focus check is prompted
		CheckIntervalMinutes int `env:"TIMER_CHECK_INTERVAL_MINUTES" env-default:"15" yaml:"checkIntervalMinutes"`
		// TickInterval is the wall clock period of one timer tick
		TickInterval time.Duration `env:"TIMER_TICK_INTERVAL" env-default:"1s" yaml:"tickInterval"`
		// SaveTimeout bounds persisting a finished session
		SaveTimeout time.Duration `env:"TIMER_SAVE_TIMEOUT" env-default:"10s" yaml:"saveTimeout"`
	} `yaml:"timer"`

	// Worker contains background job settings
	Worker struct {
		// Concurrency is the number of streak jobs processed in parallel
		Concurrency int `env:"WORKER_CONCURRENCY" env-default:"4" yaml:"concurrency"`
		// MaxAttempts is the number of tries before a streak job is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// JobTimeout bounds a single streak job
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"30s" yaml:"jobTimeout"`
	} `yaml:"worker"`

	// Tracing configures OpenTelemetry span export
	Tracing struct {
		// Endpoint is the OTLP/HTTP collector host:port; empty disables export
		Endpoint string `env:"TRACING_ENDPOINT" env-default:"" yaml:"endpoint"`
		// Insecure disables TLS towards the collector
		Insecure bool `env:"TRACING_INSECURE" env-default:"true" yaml:"insecure"`
		// ServiceName is reported as the service.name resource attribute
		ServiceName string `env:"TRACING_SERVICE_NAME" env-default:"studytracker" yaml:"serviceName"`
		// SampleRatio is the fraction of root spans sampled
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", c.Timezone, err)
	}

	return loc, nil
}
