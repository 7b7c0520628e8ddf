package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arteideas/backend/pkg/config"
)

func TestDSN_CodificaCredenciales(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db.interno",
		Port:     5432,
		User:     "arte",
		Password: "p@ss/w#rd",
		DBName:   "arte_ideas",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.interno:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// La contraseña va URL-encoded; tal cual rompería el parseo del DSN.
	assert.NotContains(t, dsn, "p@ss/w#rd")
	assert.Contains(t, dsn, "p%40ss%2Fw%23rd")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgresql://u:p@proveedor:6543/app?sslmode=require",
		Host:        "localhost",
		Port:        5432,
		User:        "postgres",
		DBName:      "arte_ideas",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())

	cfg.DatabaseURL = ""
	assert.Equal(t, cfg.DSN(), cfg.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", config.HTTPConfig{Host: "0.0.0.0", Port: 8080}.Addr())
}
