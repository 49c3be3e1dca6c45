package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the application.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`               // listen address
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`          // MongoDB connection string
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"bestellapp"`   // database name
	JwtSecret             string `env:"JWT_SECRET,required"`                      // secret for signing session tokens
	SessionTTLHours       int    `env:"SESSION_TTL_HOURS" envDefault:"12"`        // admin session lifetime
	AdminUsername         string `env:"ADMIN_USERNAME" envDefault:"admin"`        // seeded admin account
	AdminPassword         string `env:"ADMIN_PASSWORD,required"`                  // seeded admin password (stored hashed)
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`              // allowed origins, comma separated
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"` // cookies cross the origin boundary
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`   // max requests per window (0 disables)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"` // window length in seconds
}

// getEnvPath returns the env file path for the current environment by walking
// up from the working directory until a config/env directory is found.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("cannot determine working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the env file for the current environment and parses the
// configuration from the process environment. Returns nil on failure; callers
// treat that as fatal. fmt is used here because the logger may not be
// initialised yet.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("no env file loaded from %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("failed to parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
