package models

import (
	"os"
)

// InitializeTestDb points the models package at a throw-away sqlite db,
// so each test run starts from a clean schema.
func InitializeTestDb() {
	tmpDir, err := os.MkdirTemp("", "safetravelbuddy-test")
	if err != nil {
		logg.Panic(err)
	}

	if err := AutoMigrate("test-passphrase", tmpDir); err != nil {
		logg.Panic(err)
	}
}
