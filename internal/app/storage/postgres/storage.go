package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/escrima/go-orders-service/internal/app/entity"
	err_storage "github.com/escrima/go-orders-service/internal/app/storage/api/errors"
	"github.com/escrima/go-orders-service/migrations"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	err = runMigrations(db)
	if err != nil {
		return nil, fmt.Errorf("error while applying migrations: %w", err)
	}

	return &Postgres{
		db: db,
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return err
	}

	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Postgres) SaveOrder(ctx context.Context, order entity.Order) error {
	query := `INSERT INTO orders (id, user_id, product, status, cost, total, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		order.ID.String(), order.UserID.String(), order.Product,
		string(order.Status), order.Cost, order.Total, order.DateCreated)
	if err != nil {
		return fmt.Errorf("error while inserting order: %w", err)
	}

	return nil
}

func (s *Postgres) GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	query := `SELECT id, user_id, product, status, cost, total, date_created
		FROM orders WHERE id = $1`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order: %w", err)
	}

	return order, nil
}

func (s *Postgres) GetOrders(ctx context.Context) (entity.Orders, error) {
	query := `SELECT id, user_id, product, status, cost, total, date_created
		FROM orders ORDER BY date_created`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error while selecting orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error while scanning order row: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating order rows: %w", err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var order entity.Order
	var status string

	err := row.Scan(&order.ID, &order.UserID, &order.Product, &status,
		&order.Cost, &order.Total, &order.DateCreated)
	if err != nil {
		return entity.Order{}, err
	}

	order.Status = entity.OrderStatus(status)

	return order, nil
}
