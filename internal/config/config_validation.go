// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// applyDefaults fills every field that no source provided with its
// documented default value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordCost == 0 {
		cfg.App.PasswordCost = DefaultPasswordCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = DefaultMaxIdleConns
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the Err*Configs
// sentinels wrapped with the offending field otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost must be in range %d-%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}
