package haystack

import "time"

// Defaults applied by New when the corresponding option is not given.
const (
	DefaultEndpoint         = "http://localhost:8529"
	DefaultCollection       = "documents"
	DefaultReadinessTimeout = 10 * time.Second
)

// Config holds the client configuration.
type Config struct {
	Endpoints        []string      `json:"endpoints" yaml:"endpoints"`
	Database         string        `json:"database" yaml:"database"`
	Username         string        `json:"username,omitempty" yaml:"username"`
	Password         string        `json:"-" yaml:"password"`
	Collection       string        `json:"collection" yaml:"collection"`
	CreateCollection bool          `json:"create_collection" yaml:"create_collection"`
	ReadinessTimeout time.Duration `json:"readiness_timeout" yaml:"readiness_timeout"`
}

// Redacted returns a copy safe to log or serialize: the password is masked.
func (c Config) Redacted() Config {
	out := c
	if out.Password != "" {
		out.Password = "***"
	}
	return out
}

// Option customizes the client configuration.
type Option func(*Config)

// WithEndpoints sets the ArangoDB server endpoints.
func WithEndpoints(endpoints ...string) Option {
	return func(c *Config) {
		c.Endpoints = endpoints
	}
}

// WithDatabase sets the database name.
func WithDatabase(name string) Option {
	return func(c *Config) {
		c.Database = name
	}
}

// WithBasicAuth sets username/password authentication.
func WithBasicAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

// WithCollection sets the collection backing the store.
func WithCollection(name string) Option {
	return func(c *Config) {
		c.Collection = name
	}
}

// WithCreateCollection controls whether a missing collection is created
// during New. Enabled by default.
func WithCreateCollection(create bool) Option {
	return func(c *Config) {
		c.CreateCollection = create
	}
}

// WithReadinessTimeout bounds how long New waits for the server to respond.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ReadinessTimeout = d
	}
}

func defaultConfig() Config {
	return Config{
		Endpoints:        []string{DefaultEndpoint},
		Collection:       DefaultCollection,
		CreateCollection: true,
		ReadinessTimeout: DefaultReadinessTimeout,
	}
}
