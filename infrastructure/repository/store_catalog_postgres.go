package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/frontrow-invoice-api/infrastructure/database/postgres"
	"github.com/vfg2006/frontrow-invoice-api/internal/domain"
)

const (
	storesTable = "stores s"
)

// postgresStoreCatalog lê o catálogo de lojas de uma tabela. Somente leitura:
// edições feitas na sessão não são gravadas de volta.
type postgresStoreCatalog struct {
	conn *postgres.Connection
}

func NewPostgresStoreCatalog(conn *postgres.Connection) StoreCatalog {
	return &postgresStoreCatalog{
		conn: conn,
	}
}

func listStoresQuery() (string, []interface{}, error) {
	return squirrel.
		Select(
			"s.id",
			"s.name",
			"s.domain",
			"s.client_name",
			"COALESCE(s.notes, '')",
			"s.last_invoice_date",
			"s.billing_frequency",
			"s.billing_status",
		).
		From(storesTable).
		OrderBy("s.position ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listBaselinesQuery() (string, []interface{}, error) {
	return squirrel.
		Select("s.id", "s.baseline_orders", "s.baseline_revenue").
		From(storesTable).
		Where(squirrel.NotEq{"s.baseline_orders": nil}).
		Where(squirrel.NotEq{"s.baseline_revenue": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (c *postgresStoreCatalog) ListStores() ([]domain.Store, error) {
	query, args, err := listStoresQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de lojas")
	}

	rows, err := c.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar lojas")
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear loja")
		}
		stores = append(stores, *store)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de lojas")
	}

	return stores, nil
}

func (c *postgresStoreCatalog) ListBaselines() (map[string]domain.Baseline, error) {
	query, args, err := listBaselinesQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de baselines")
	}

	rows, err := c.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar baselines")
	}
	defer rows.Close()

	baselines := make(map[string]domain.Baseline)
	for rows.Next() {
		var (
			id       string
			baseline domain.Baseline
		)
		if err := rows.Scan(&id, &baseline.Orders, &baseline.Revenue); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear baseline")
		}
		baselines[id] = baseline
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de baselines")
	}

	return baselines, nil
}

func scanStore(rows *sql.Rows) (*domain.Store, error) {
	var (
		store           domain.Store
		clientName      sql.NullString
		lastInvoiceDate sql.NullTime
		billingStatus   sql.NullString
		frequency       string
	)

	err := rows.Scan(
		&store.ID,
		&store.Name,
		&store.Domain,
		&clientName,
		&store.Notes,
		&lastInvoiceDate,
		&frequency,
		&billingStatus,
	)
	if err != nil {
		return nil, err
	}

	if clientName.Valid && clientName.String != "" {
		store.ClientName = stringPtr(clientName.String)
	}
	if lastInvoiceDate.Valid {
		store.LastInvoiceDate = stringPtr(lastInvoiceDate.Time.Format(time.DateOnly))
	}
	store.BillingStatus = billingStatus.String

	store.BillingFrequency = domain.BillingFrequency(frequency)
	if !store.BillingFrequency.IsValid() {
		store.BillingFrequency = domain.BillingFrequencyMonthly
	}

	return &store, nil
}
