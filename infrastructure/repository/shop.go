package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
)

const shopsTable = "shops"

var shopColumns = []string{
	"id",
	"name",
	"marketplace",
	"perf_key",
	"perf_secret",
	"client_id",
	"client_key",
	"spreadsheet_url",
	"created_at",
	"updated_at",
}

type ShopRepository interface {
	GetShopByName(ctx context.Context, name string) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]*domain.Shop, error)
	UpsertShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
}

type shopRepository struct {
	conn *postgres.Connection
}

func NewShopRepository(conn *postgres.Connection) ShopRepository {
	return &shopRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var shop domain.Shop
	var marketplace string
	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&marketplace,
		&shop.PerfKey,
		&shop.PerfSecret,
		&shop.ClientID,
		&shop.ClientKey,
		&shop.SpreadsheetURL,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	shop.Marketplace = domain.Marketplace(marketplace)
	return &shop, nil
}

// GetShopByName retorna nil quando a loja não está cadastrada
func (r *shopRepository) GetShopByName(ctx context.Context, name string) (*domain.Shop, error) {
	queryBuilder := squirrel.
		Select(shopColumns...).
		From(shopsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar)

	shopSQL, shopArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	shop, err := scanShop(r.conn.QueryRowContext(ctx, shopSQL, shopArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar loja %q", name)
	}

	return shop, nil
}

func (r *shopRepository) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	queryBuilder := squirrel.
		Select(shopColumns...).
		From(shopsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	shopsSQL, shopsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, shopsSQL, shopsArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar lojas")
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}

// UpsertShop insere a loja ou atualiza a existente com o mesmo nome, mantendo o id original
func (r *shopRepository) UpsertShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	queryBuilder := squirrel.
		Insert(shopsTable).
		Columns("id", "name", "marketplace", "perf_key", "perf_secret", "client_id", "client_key", "spreadsheet_url").
		Values(
			shop.ID,
			shop.Name,
			string(shop.Marketplace),
			shop.PerfKey,
			shop.PerfSecret,
			shop.ClientID,
			shop.ClientKey,
			shop.SpreadsheetURL,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			marketplace = EXCLUDED.marketplace,
			perf_key = EXCLUDED.perf_key,
			perf_secret = EXCLUDED.perf_secret,
			client_id = EXCLUDED.client_id,
			client_key = EXCLUDED.client_key,
			spreadsheet_url = EXCLUDED.spreadsheet_url,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	shopSQL, shopArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	saved := *shop
	err = r.conn.QueryRowContext(ctx, shopSQL, shopArgs...).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao salvar loja %q", shop.Name)
	}

	return &saved, nil
}
