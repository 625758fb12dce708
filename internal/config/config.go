package config

// Configuration declares the configuration properties of this app.
type Configuration interface {
	FetchConfig
	LogConfig

	// String returns a string representation of the configuration.
	String() string
}

// FetchConfig defines how coverage reports are retrieved.
type FetchConfig interface {
	// FetchTimeout returns the report fetch timeout in seconds.
	FetchTimeout() string
}

// LogConfig defines the logging configuration.
type LogConfig interface {
	// Level returns the logging level.
	Level() string
}
