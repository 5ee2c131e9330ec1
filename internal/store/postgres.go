package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/order-notifier/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// PostgresStore альтернатива Firebase: документ заказа целиком в jsonb
type PostgresStore struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *PostgresStore) PutOrder(ctx context.Context, order entities.OrderRecord) error {
	if order.Messages == nil {
		order.Messages = []entities.Message{}
	}

	doc, err := order.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	query, args := s.upsertQuery(order.OrderNumber, doc)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetOrder(ctx context.Context, orderNumber string) (entities.OrderRecord, error) {
	query, args := s.selectQuery(orderNumber)

	var doc []byte
	err := s.db.GetContext(ctx, &doc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderRecord{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.OrderRecord{}, fmt.Errorf("failed to select order: %w", err)
	}

	var order entities.OrderRecord
	if err := order.Unmarshal(doc); err != nil {
		return entities.OrderRecord{}, err
	}
	return order, nil
}

// upsertQuery повторная запись заменяет документ целиком
func (s *PostgresStore) upsertQuery(orderNumber string, doc []byte) (string, []any) {
	return s.qb.Insert("orders").
		Columns("order_number", "document", "updated_at").
		Values(orderNumber, string(doc), sq.Expr("now()")).
		Suffix("ON CONFLICT (order_number) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		MustSql()
}

func (s *PostgresStore) selectQuery(orderNumber string) (string, []any) {
	return s.qb.Select("document").
		From("orders").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()
}
