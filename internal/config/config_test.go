package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-sheet-api/internal/config"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal(config.StoreSheets, cfg.Store)
	s.Empty(cfg.SheetEndpoint)
	s.Equal(30*time.Second, cfg.HTTPTimeout)
	s.Equal([]string{"localhost:6379"}, cfg.RedisAddrs)
	s.Equal(300, cfg.OccupationBudget)
	s.Equal("INFO", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Empty(cfg.Log.FilePath)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"COC_GRPC_PORT":         "9000",
		"COC_STORE":             "redis",
		"COC_SHEET_ENDPOINT":    "https://script.example.com/exec",
		"COC_HTTP_TIMEOUT":      "5s",
		"COC_REDIS_ADDRS":       "a:6379,b:6379",
		"COC_REDIS_MASTER_NAME": "mymaster",
		"COC_OCCUPATION_BUDGET": "240",
		"COC_LOG_LEVEL":         "DEBUG",
		"COC_LOG_FORMAT":        "json",
		"COC_LOG_FILE":          "logs/server.log",
	})
	s.Require().NoError(err)

	s.Equal(9000, cfg.GRPCPort)
	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal("https://script.example.com/exec", cfg.SheetEndpoint)
	s.Equal(5*time.Second, cfg.HTTPTimeout)
	s.Equal([]string{"a:6379", "b:6379"}, cfg.RedisAddrs)
	s.Equal("mymaster", cfg.RedisMasterName)
	s.Equal(240, cfg.OccupationBudget)
	s.Equal("DEBUG", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal("logs/server.log", cfg.Log.FilePath)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestParseFailure() {
	_, err := config.LoadFrom(map[string]string{"COC_GRPC_PORT": "not-a-port"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown store", mutate: func(c *config.Config) { c.Store = "postgres" }},
		{name: "port out of range", mutate: func(c *config.Config) { c.GRPCPort = 70000 }},
		{name: "negative budget", mutate: func(c *config.Config) { c.OccupationBudget = -1 }},
		{name: "negative timeout", mutate: func(c *config.Config) { c.HTTPTimeout = -time.Second }},
		{name: "redis without addresses", mutate: func(c *config.Config) {
			c.Store = config.StoreRedis
			c.RedisAddrs = nil
		}},
		{name: "sqlite without path", mutate: func(c *config.Config) {
			c.Store = config.StoreSQLite
			c.SQLitePath = ""
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.LoadFrom(map[string]string{})
			s.Require().NoError(err)

			tc.mutate(cfg)
			err = cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
