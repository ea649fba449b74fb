// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.EmailTokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit < 0 || (cfg.Server.RateLimit > 0 && cfg.Server.RateBurst < 1) {
		return ErrInvalidServerConfigs
	}

	b := cfg.Bootstrap
	if (b.AdminUsername != "") != (b.AdminPassword != "") {
		return ErrInvalidBootstrapConfigs
	}

	return nil
}
