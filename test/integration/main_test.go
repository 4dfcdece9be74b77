package integration_test

import (
	"os"
	"testing"
)

const (
	adminEmail    = "admin@test.com"
	adminPassword = "admin_password123"
)

func TestMain(m *testing.M) {
	os.Setenv("SERVER_ENV", "test")
	os.Setenv("JWT_SECRET", "integration_test_secret_12345")
	os.Setenv("WHATSAPP_NUMBER", "5511999990000")
	os.Setenv("FIRST_ADMIN_EMAIL", adminEmail)
	os.Setenv("FIRST_ADMIN_PASSWORD", adminPassword)

	os.Exit(m.Run())
}
