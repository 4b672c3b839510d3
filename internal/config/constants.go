package config

// Default values applied when the environment does not set a variable
const (
	DefaultPort               = 3000
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "shooter-mock-api"
	DefaultVersion            = "1.0.0"
	DefaultMaxBodyBytes int64 = 1 << 20
	DefaultCORSOrigin         = "*"
)

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)

// EnvFile is the optional dotenv file read before parsing the environment
const EnvFile = ".env"
