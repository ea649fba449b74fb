package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        "go-ask-box",
			TokenDuration:      24 * time.Hour,
			EmailTokenDuration: 48 * time.Hour,
			Version:            "dev",
		},
		Storage: Storage{
			Cache: Cache{TTL: 5 * time.Minute},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimit:      5,
			RateBurst:      10,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}
