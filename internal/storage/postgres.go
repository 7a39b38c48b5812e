package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nordport/terminal-orders/internal/config"
	"github.com/nordport/terminal-orders/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the Postgres order store.
type Repo struct {
	pool   *pgxpool.Pool
	tables config.Tables
}

func New(pool *pgxpool.Pool, t config.Tables) *Repo { return &Repo{pool: pool, tables: t} }

func (r *Repo) qt(tbl string) string { return fmt.Sprintf(`"%s"."%s"`, r.tables.Schema, tbl) }

const orderCols = `
	id::text,
	COALESCE(reference, ''),
	COALESCE(service, 0),
	COALESCE(commodity, ''),
	eta_date,
	COALESCE(eta_time, ''),
	etd_date,
	COALESCE(etd_time, ''),
	COALESCE(eta_driver_id::text, ''),
	COALESCE(eta_truck_id::text, ''),
	COALESCE(eta_trailer_id::text, ''),
	COALESCE(eta_driver, ''),
	COALESCE(eta_driver_phone, ''),
	COALESCE(eta_truck, ''),
	COALESCE(eta_trailer, ''),
	COALESCE(etd_driver_id::text, ''),
	COALESCE(etd_truck_id::text, ''),
	COALESCE(etd_trailer_id::text, ''),
	COALESCE(etd_driver, ''),
	COALESCE(etd_driver_phone, ''),
	COALESCE(etd_truck, ''),
	COALESCE(etd_trailer, ''),
	COALESCE(pallets, 0),
	COALESCE(boxes, 0),
	COALESCE(kilos, 0),
	COALESCE(notes, ''),
	COALESCE(priority, false),
	COALESCE(in_terminal, false),
	COALESCE(status, 0),
	COALESCE(terminal_id::text, ''),
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o                domain.Order
		etaDate, etdDate *time.Time
	)
	err := row.Scan(
		&o.ID, &o.Reference, &o.Service, &o.Commodity,
		&etaDate, &o.EtaTime, &etdDate, &o.EtdTime,
		&o.EtaDriverID, &o.EtaTruckID, &o.EtaTrailerID,
		&o.EtaDriver, &o.EtaDriverPhone, &o.EtaTruck, &o.EtaTrailer,
		&o.EtdDriverID, &o.EtdTruckID, &o.EtdTrailerID,
		&o.EtdDriver, &o.EtdDriverPhone, &o.EtdTruck, &o.EtdTrailer,
		&o.Pallets, &o.Boxes, &o.Kilos, &o.Notes,
		&o.Priority, &o.InTerminal, &o.Status, &o.TerminalID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if etaDate != nil {
		d := domain.DateOf(*etaDate)
		o.EtaDate = &d
	}
	if etdDate != nil {
		d := domain.DateOf(*etdDate)
		o.EtdDate = &d
	}
	return &o, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY created_at DESC, reference`,
		orderCols, r.qt(r.tables.Orders),
	))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM %s WHERE id = $1`,
		orderCols, r.qt(r.tables.Orders),
	), orderID)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return o, err
}

func (r *Repo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (
			reference, service, commodity,
			eta_date, eta_time, etd_date, etd_time,
			eta_driver_id, eta_truck_id, eta_trailer_id,
			eta_driver, eta_driver_phone, eta_truck, eta_trailer,
			etd_driver_id, etd_truck_id, etd_trailer_id,
			etd_driver, etd_driver_phone, etd_truck, etd_trailer,
			pallets, boxes, kilos, notes,
			priority, in_terminal, status, terminal_id
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,
		        $16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)
		RETURNING id::text, created_at, updated_at
	`, r.qt(r.tables.Orders)),
		o.Reference, o.Service, nullStr(string(o.Commodity)),
		o.EtaDate, nullStr(o.EtaTime), o.EtdDate, nullStr(o.EtdTime),
		nullUUID(o.EtaDriverID), nullUUID(o.EtaTruckID), nullUUID(o.EtaTrailerID),
		nullStr(o.EtaDriver), nullStr(o.EtaDriverPhone), nullStr(o.EtaTruck), nullStr(o.EtaTrailer),
		nullUUID(o.EtdDriverID), nullUUID(o.EtdTruckID), nullUUID(o.EtdTrailerID),
		nullStr(o.EtdDriver), nullStr(o.EtdDriverPhone), nullStr(o.EtdTruck), nullStr(o.EtdTrailer),
		o.Pallets, o.Boxes, o.Kilos, nullStr(o.Notes),
		o.Priority, o.InTerminal, o.Status, nullUUID(o.TerminalID),
	)

	created := *o
	if err := row.Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repo) Update(ctx context.Context, o *domain.Order) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET
			reference = $2, service = $3, commodity = $4,
			eta_date = $5, eta_time = $6, etd_date = $7, etd_time = $8,
			eta_driver_id = $9, eta_truck_id = $10, eta_trailer_id = $11,
			eta_driver = $12, eta_driver_phone = $13, eta_truck = $14, eta_trailer = $15,
			etd_driver_id = $16, etd_truck_id = $17, etd_trailer_id = $18,
			etd_driver = $19, etd_driver_phone = $20, etd_truck = $21, etd_trailer = $22,
			pallets = $23, boxes = $24, kilos = $25, notes = $26,
			priority = $27, in_terminal = $28, status = $29, terminal_id = $30,
			updated_at = now()
		WHERE id = $1
	`, r.qt(r.tables.Orders)),
		o.ID,
		o.Reference, o.Service, nullStr(string(o.Commodity)),
		o.EtaDate, nullStr(o.EtaTime), o.EtdDate, nullStr(o.EtdTime),
		nullUUID(o.EtaDriverID), nullUUID(o.EtaTruckID), nullUUID(o.EtaTrailerID),
		nullStr(o.EtaDriver), nullStr(o.EtaDriverPhone), nullStr(o.EtaTruck), nullStr(o.EtaTrailer),
		nullUUID(o.EtdDriverID), nullUUID(o.EtdTruckID), nullUUID(o.EtdTrailerID),
		nullStr(o.EtdDriver), nullStr(o.EtdDriverPhone), nullStr(o.EtdTruck), nullStr(o.EtdTrailer),
		o.Pallets, o.Boxes, o.Kilos, nullStr(o.Notes),
		o.Priority, o.InTerminal, o.Status, nullUUID(o.TerminalID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, orderID string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id = $1`, r.qt(r.tables.Orders),
	), orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) FindByReference(ctx context.Context, reference, terminalID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM %s WHERE reference = $1 AND terminal_id = $2`,
		orderCols, r.qt(r.tables.Orders),
	), reference, terminalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *Repo) Terminals(ctx context.Context) ([]domain.Terminal, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT
			id::text,
			name,
			COALESCE(short_name, ''),
			COALESCE(account_code, 0),
			COALESCE(address, ''),
			COALESCE(time_zone, '')
		FROM %s ORDER BY name
	`, r.qt(r.tables.Terminals)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terminals []domain.Terminal
	for rows.Next() {
		var t domain.Terminal
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortName, &t.AccountCode, &t.Address, &t.TimeZone); err != nil {
			return nil, err
		}
		terminals = append(terminals, t)
	}
	return terminals, rows.Err()
}

// nullStr maps "" to SQL NULL so empty form fields don't persist as empty
// strings.
func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullUUID maps "" to NULL for uuid columns, which reject empty strings.
func nullUUID(s string) *string {
	return nullStr(s)
}
