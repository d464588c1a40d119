package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/repository/postgres"
)

// getTestDB connects to the database named by TEST_DATABASE_DSN and
// prepares the pedidos schema. Integration tests are skipped when no
// database is available.
func getTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=delivery_map_test sslmode=disable"
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS pedidos (
			id BIGSERIAL PRIMARY KEY,
			cliente_id BIGINT NOT NULL,
			estado TEXT,
			prioridad TEXT,
			total NUMERIC
		)`,
		`CREATE TABLE IF NOT EXISTS pedido_detalles (
			id BIGSERIAL PRIMARY KEY,
			pedido_id BIGINT NOT NULL REFERENCES pedidos(id),
			producto_id BIGINT NOT NULL
		)`,
		`TRUNCATE pedido_detalles, pedidos RESTART IDENTITY`,
	}
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	t.Cleanup(func() { db.Close() })
	return postgres.NewDBForTest(db, nil)
}

func seedPedidos(t *testing.T, db *postgres.DB) {
	t.Helper()
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO pedidos (cliente_id, estado, prioridad, total) VALUES
			(10, 'pendiente', 'alta', 120.50),
			(11, 'completado', 'baja', 40.00),
			(12, 'pendiente', 'media', 75.00)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO pedido_detalles (pedido_id, producto_id) VALUES
			(1, 100), (1, 101), (3, 200)`)
	require.NoError(t, err)
}

func TestPedidoRepository_List(t *testing.T) {
	db := getTestDB(t)
	seedPedidos(t, db)

	repo := postgres.NewPedidoRepository(db)

	pedidos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pedidos, 3)

	assert.Equal(t, int64(1), pedidos[0].ID)
	assert.Equal(t, int64(10), pedidos[0].ClienteID)
	assert.Equal(t, domain.EstadoPendiente, pedidos[0].Estado)
	assert.Equal(t, "alta", pedidos[0].Prioridad)
	assert.Equal(t, 120.50, pedidos[0].Total)
	assert.Equal(t, []int64{100, 101}, pedidos[0].ProductoIDs)

	assert.Equal(t, domain.EstadoCompletado, pedidos[1].Estado)
	assert.Empty(t, pedidos[1].ProductoIDs)

	assert.Equal(t, []int64{200}, pedidos[2].ProductoIDs)
}

func TestPedidoRepository_UpdateEstado(t *testing.T) {
	db := getTestDB(t)
	seedPedidos(t, db)

	repo := postgres.NewPedidoRepository(db)
	ctx := context.Background()

	t.Run("marks the pedido completado", func(t *testing.T) {
		err := repo.UpdateEstado(ctx, 1, domain.EstadoCompletado)
		require.NoError(t, err)

		pedidos, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.EstadoCompletado, pedidos[0].Estado)
	})

	t.Run("unknown pedido", func(t *testing.T) {
		err := repo.UpdateEstado(ctx, 9999, domain.EstadoCompletado)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
