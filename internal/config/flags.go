package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a backend API base URL
//	-d SQLite keystore path
//	-c/-config json file path with configs
//	-seal-secret credential sealing secret
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval background refresh interval (e.g., "5m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var baseURL string
	var keystorePath string
	var jsonConfigPath string
	var sealSecret string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("societyhub", flag.ContinueOnError)
	fs.StringVar(&baseURL, "a", "", "Backend API base URL")
	fs.StringVar(&keystorePath, "d", "", "SQLite keystore path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sealSecret, "seal-secret", "", "Credential sealing secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Refresh interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SealSecret: sealSecret,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: keystorePath,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
