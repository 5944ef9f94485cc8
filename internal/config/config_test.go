package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ITEMS_PER_PAGE", "")
	t.Setenv("TYPE_CACHE_TTL", "")
	t.Setenv("STRICT_WALLET_ACCESS", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 10, cfg.ItemsPerPage)
	assert.Equal(t, 10*time.Minute, cfg.TypeCacheTTL)
	assert.False(t, cfg.StrictWalletAccess)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ITEMS_PER_PAGE", "25")
	t.Setenv("TYPE_CACHE_TTL", "30s")
	t.Setenv("JWT_TTL", "bogus")
	t.Setenv("STRICT_WALLET_ACCESS", "true")

	cfg := LoadConfig()

	assert.Equal(t, 25, cfg.ItemsPerPage)
	assert.Equal(t, 30*time.Second, cfg.TypeCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.StrictWalletAccess)
}

func TestLoadConfigIntBounds(t *testing.T) {
	tests := []struct {
		name      string
		perPage   string
		redisDB   string
		wantPage  int
		wantRedis int
	}{
		{name: "zero page size falls back", perPage: "0", redisDB: "0", wantPage: 10, wantRedis: 0},
		{name: "negative values fall back", perPage: "-3", redisDB: "-1", wantPage: 10, wantRedis: 0},
		{name: "valid values", perPage: "1", redisDB: "2", wantPage: 1, wantRedis: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ITEMS_PER_PAGE", tt.perPage)
			t.Setenv("REDIS_DB", tt.redisDB)

			cfg := LoadConfig()

			assert.Equal(t, tt.wantPage, cfg.ItemsPerPage)
			assert.Equal(t, tt.wantRedis, cfg.RedisDB)
		})
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "mysql",
			cfg:  Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "ledger"},
			want: "u:p@tcp(db:3306)/ledger?parseTime=true&loc=UTC",
		},
		{
			name: "postgres",
			cfg:  Config{DBDriver: DriverPostgres, DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "6543", DBName: "ledger"},
			want: "host=db user=u password=p dbname=ledger port=6543 sslmode=disable TimeZone=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
