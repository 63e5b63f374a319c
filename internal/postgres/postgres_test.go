package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, "host=127.0.0.1 port=5432 dbname=postgres sslmode=prefer", Config{}.String())
	})
	t.Run("credentials", func(t *testing.T) {
		conf := Config{Host: "db", User: "realpay", Password: "secret", DBName: "receipts", SSLMode: "disable"}
		assert.Equal(t, "host=db port=5432 dbname=receipts sslmode=disable user=realpay password=secret", conf.String())
		assert.Equal(t, "postgres://realpay:secret@db:5432/receipts?sslmode=disable", conf.MigrateURL())
	})
	t.Run("url wins", func(t *testing.T) {
		conf := Config{Host: "ignored", URL: "postgres://localhost/x"}
		assert.Equal(t, "postgres://localhost/x", conf.String())
		assert.Equal(t, "postgres://localhost/x", conf.MigrateURL())
	})
}
