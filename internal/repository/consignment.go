package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/pricing"
	"github.com/Kabir14815/rr/pkg/storage/postgres"
	"github.com/Kabir14815/rr/pkg/storage/postgres/transaction"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	_table           = "consignments"
	_uniqueViolation = "23505"

	// serialises sr_no allocation across concurrent creates
	_srNoLockKey = 7_240_001

	_consignmentNoPrefix = "DXOO"
	_consignmentNoLayout = "0201061504"
)

//go:embed schema.sql
var _schema string

var _columns = []string{
	"id", "sr_no", "consignment_no", "date", "name", "user_id",
	"destination", "destination_city", "destination_state", "destination_pincode",
	"pieces", "weight", "product_name", "invoice_id", "invoice_no", "zone",
	"delivery_partner", "service_type", "mode", "region", "courier_zone",
	"base_rate", "docket_charges", "oda_charge", "fov", "fuel_charge", "gst",
	"value", "total", "rate_card_id", "shipment_id",
	"box1_dimensions", "box2_dimensions", "box3_dimensions", "created_at",
}

// ConsignmentRepository stores consignments directly in Postgres. It mirrors
// the remote consignment endpoints: sr_no is allocated sequentially and the
// total is computed from the submitted charges.
type ConsignmentRepository struct {
	db  *postgres.Postgres
	tm  transaction.Manager
	now func() time.Time
}

func NewConsignmentRepository(db *postgres.Postgres, tm transaction.Manager) *ConsignmentRepository {
	return &ConsignmentRepository{db: db, tm: tm, now: time.Now}
}

// EnsureSchema creates the consignments table and its indexes if missing.
func (r *ConsignmentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, _schema); err != nil {
		return fmt.Errorf("repository.consignment.EnsureSchema: %w", err)
	}
	return nil
}

func (r *ConsignmentRepository) CreateConsignment(
	ctx context.Context,
	in entity.ConsignmentInput,
) (*entity.Consignment, error) {
	const op = "repository.consignment.Create"

	var created *entity.Consignment
	err := r.tm.ExecuteInTransaction(ctx, "create_consignment", func(tx postgres.QueryExecuter) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", _srNoLockKey); err != nil {
			return fmt.Errorf("lock sr_no: %w", err)
		}

		srNo, err := r.nextSrNo(ctx, tx)
		if err != nil {
			return err
		}

		row, err := postgres.QueryRowOf(ctx, tx, insertQuery(r.db.Builder, uuid.New(), srNo, ConsignmentNumber(r.now()), in))
		if err != nil {
			return err
		}

		created, err = scanConsignment(row)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _uniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrConflictingData)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *ConsignmentRepository) nextSrNo(ctx context.Context, tx postgres.QueryExecuter) (int64, error) {
	row, err := postgres.QueryRowOf(ctx, tx, r.db.Builder.Select("COALESCE(MAX(sr_no), 0) + 1").From(_table))
	if err != nil {
		return 0, fmt.Errorf("sr_no: %w", err)
	}

	var next int64
	if err = row.Scan(&next); err != nil {
		return 0, fmt.Errorf("next sr_no: %w", err)
	}
	return next, nil
}

func (r *ConsignmentRepository) GetConsignment(ctx context.Context, id string) (*entity.Consignment, error) {
	const op = "repository.consignment.Get"

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrDataNotFound)
	}

	row, err := postgres.QueryRowOf(ctx, r.db.Pool, r.db.Builder.Select(_columns...).
		From(_table).
		Where(squirrel.Eq{"id": uid}).
		Limit(1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := scanConsignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrDataNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListConsignments returns consignments newest first (by sr_no).
func (r *ConsignmentRepository) ListConsignments(
	ctx context.Context,
	f entity.ConsignmentFilter,
) ([]entity.Consignment, error) {
	const op = "repository.consignment.List"

	rows, err := postgres.QueryOf(ctx, r.db.Pool, listQuery(r.db.Builder, f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]entity.Consignment, 0)
	for rows.Next() {
		c, err := scanConsignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		out = append(out, *c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return out, nil
}

func (r *ConsignmentRepository) DeleteConsignment(ctx context.Context, id string) error {
	const op = "repository.consignment.Delete"

	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, entity.ErrDataNotFound)
	}

	tag, err := postgres.ExecOf(ctx, r.db.Pool, r.db.Builder.Delete(_table).Where(squirrel.Eq{"id": uid}))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, entity.ErrDataNotFound)
	}
	return nil
}

// ConsignmentNumber formats the public number of a consignment created at t.
func ConsignmentNumber(t time.Time) string {
	return _consignmentNoPrefix + t.UTC().Format(_consignmentNoLayout)
}

func listQuery(b squirrel.StatementBuilderType, f entity.ConsignmentFilter) squirrel.SelectBuilder {
	limit := f.Limit
	if limit == 0 {
		limit = entity.DefaultListLimit
	}

	q := b.Select(_columns...).From(_table)
	if !f.StartDate.IsZero() {
		q = q.Where(squirrel.GtOrEq{"date": f.StartDate.Time})
	}
	if !f.EndDate.IsZero() {
		q = q.Where(squirrel.LtOrEq{"date": f.EndDate.Time})
	}
	if f.Zone != "" {
		q = q.Where(squirrel.Eq{"zone": f.Zone})
	}
	if f.UserID != "" {
		q = q.Where(squirrel.Eq{"user_id": f.UserID})
	}
	if f.InvoiceID != "" {
		q = q.Where(squirrel.Eq{"invoice_id": f.InvoiceID})
	}

	return q.OrderBy("sr_no DESC").
		Offset(uint64(f.Skip)).
		Limit(uint64(limit))
}

func insertQuery(
	b squirrel.StatementBuilderType,
	id uuid.UUID,
	srNo int64,
	number string,
	in entity.ConsignmentInput,
) squirrel.InsertBuilder {
	total := pricing.CalculateTotal(in.Charges).Total.Round(2)

	return b.Insert(_table).
		SetMap(map[string]any{
			"id":                  id,
			"sr_no":               srNo,
			"consignment_no":      number,
			"date":                in.Date.Time,
			"name":                in.Name,
			"user_id":             in.UserID,
			"destination":         in.Destination,
			"destination_city":    in.DestinationCity,
			"destination_state":   in.DestinationState,
			"destination_pincode": in.DestinationPincode,
			"pieces":              in.Pieces,
			"weight":              in.Weight,
			"product_name":        in.ProductName,
			"invoice_id":          in.InvoiceID,
			"invoice_no":          in.InvoiceNo,
			"zone":                in.Zone,
			"delivery_partner":    in.DeliveryPartner,
			"service_type":        string(in.ServiceType),
			"mode":                string(in.Mode),
			"region":              in.Region,
			"courier_zone":        in.CourierZone,
			"base_rate":           in.BaseRate,
			"docket_charges":      in.DocketCharge,
			"oda_charge":          in.ODACharge,
			"fov":                 in.FOV,
			"fuel_charge":         in.FuelChargePercent,
			"gst":                 in.GSTPercent,
			"value":               in.Value,
			"total":               total,
			"rate_card_id":        in.RateCardID,
			"box1_dimensions":     in.Box1Dimensions,
			"box2_dimensions":     in.Box2Dimensions,
			"box3_dimensions":     in.Box3Dimensions,
		}).
		Suffix("RETURNING " + strings.Join(_columns, ", "))
}

func scanConsignment(row pgx.Row) (*entity.Consignment, error) {
	var (
		c           entity.Consignment
		id          uuid.UUID
		serviceType string
		mode        string
		createdAt   time.Time
	)

	err := row.Scan(
		&id, &c.SrNo, &c.ConsignmentNo, &c.Date.Time, &c.Name, &c.UserID,
		&c.Destination, &c.DestinationCity, &c.DestinationState, &c.DestinationPincode,
		&c.Pieces, &c.Weight, &c.ProductName, &c.InvoiceID, &c.InvoiceNo, &c.Zone,
		&c.DeliveryPartner, &serviceType, &mode, &c.Region, &c.CourierZone,
		&c.BaseRate, &c.DocketCharge, &c.ODACharge, &c.FOV, &c.FuelChargePercent, &c.GSTPercent,
		&c.Value, &c.Total, &c.RateCardID, &c.ShipmentID,
		&c.Box1Dimensions, &c.Box2Dimensions, &c.Box3Dimensions, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	c.ID = id.String()
	c.ServiceType = entity.ServiceType(serviceType)
	c.Mode = entity.TransportMode(mode)
	c.CreatedAt = &createdAt
	return &c, nil
}
