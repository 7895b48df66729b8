// Package sqlitetest abre bancos SQLite em memória com o schema da aplicação,
// para testes de repositórios, serviços e handlers.
package sqlitetest

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui; GinkgoT() também o satisfaz
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Open cria um banco em memória já migrado e o fecha ao fim do teste
func Open(t TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), postgres.NewGormConfig("error"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Cada conexão ":memory:" é um banco distinto
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
