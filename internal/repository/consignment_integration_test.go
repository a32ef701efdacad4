package repository_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Kabir14815/rr/internal/config"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/repository"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"
	"github.com/Kabir14815/rr/pkg/storage/postgres"
	"github.com/Kabir14815/rr/pkg/storage/postgres/transaction"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type ConsignmentRepositorySuite struct {
	suite.Suite

	db   *postgres.Postgres
	repo *repository.ConsignmentRepository
}

func (s *ConsignmentRepositorySuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load("")
	s.Require().NoError(err, "Failed to load configuration")

	testLogger := logger.NewNop()

	db, err := postgres.NewPostgres(ctx, &cfg.Postgres, testLogger,
		postgres.PoolSize(cfg.Postgres.PoolMax),
		postgres.ConnectRetry(cfg.Postgres.ConnAttempts, cfg.Postgres.BaseRetryDelay, cfg.Postgres.MaxRetryDelay),
	)
	s.Require().NoError(err, "Failed to connect to postgres")
	s.db = db

	txManager, err := transaction.NewManager(db, testLogger, metric.NewFactory().Transaction())
	s.Require().NoError(err)

	s.repo = repository.NewConsignmentRepository(db, txManager)
	s.Require().NoError(s.repo.EnsureSchema(ctx))
}

func (s *ConsignmentRepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *ConsignmentRepositorySuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Pool.Exec(ctx, "TRUNCATE TABLE consignments;")
	s.Require().NoError(err)
}

func (s *ConsignmentRepositorySuite) TestCreateAndGet() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	in := generateFakeInput("METRO")

	created, err := s.repo.CreateConsignment(ctx, in)
	s.Require().NoError(err)
	s.Require().Equal(int64(1), created.SrNo)
	s.Require().True(strings.HasPrefix(created.ConsignmentNo, "DXOO"))
	s.Require().Len(created.ConsignmentNo, len("DXOO")+10)
	s.Require().Equal("186.44", created.Total.StringFixed(2))

	got, err := s.repo.GetConsignment(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Equal(created.ID, got.ID)
	s.Require().Equal(in.Name, got.Name)
	s.Require().Equal(in.Zone, got.Zone)
	s.Require().True(in.Weight.Equal(got.Weight))
}

func (s *ConsignmentRepositorySuite) TestConcurrentCreatesGetDistinctSerials() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const n = 8
	serials := make([]int64, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			created, err := s.repo.CreateConsignment(ctx, generateFakeInput("LOCAL"))
			if err != nil {
				return err
			}
			serials[i] = created.SrNo
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Require().Len(lo.Uniq(serials), n)
	s.Require().Equal(int64(n), lo.Max(serials))
}

func (s *ConsignmentRepositorySuite) TestListFiltersAndOrder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, zone := range []string{"METRO", "ROI", "METRO"} {
		_, err := s.repo.CreateConsignment(ctx, generateFakeInput(zone))
		s.Require().NoError(err)
	}

	metro, err := s.repo.ListConsignments(ctx, entity.ConsignmentFilter{Zone: "METRO"})
	s.Require().NoError(err)
	s.Require().Len(metro, 2)
	s.Require().Greater(metro[0].SrNo, metro[1].SrNo)

	page, err := s.repo.ListConsignments(ctx, entity.ConsignmentFilter{Skip: 1, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Require().Equal(int64(2), page[0].SrNo)
}

func (s *ConsignmentRepositorySuite) TestDelete() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := s.repo.CreateConsignment(ctx, generateFakeInput("ZONAL"))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeleteConsignment(ctx, created.ID))

	_, err = s.repo.GetConsignment(ctx, created.ID)
	s.Require().ErrorIs(err, entity.ErrDataNotFound)
	s.Require().ErrorIs(s.repo.DeleteConsignment(ctx, created.ID), entity.ErrDataNotFound)
}

func TestConsignmentRepository(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TEST to run.")
	}
	suite.Run(t, new(ConsignmentRepositorySuite))
}

func generateFakeInput(zone string) entity.ConsignmentInput {
	return entity.ConsignmentInput{
		Date:               entity.Today(),
		UserID:             gofakeit.UUID(),
		Name:               gofakeit.Name() + " (Company)",
		Destination:        gofakeit.Street(),
		DestinationCity:    gofakeit.City(),
		DestinationState:   gofakeit.State(),
		DestinationPincode: gofakeit.Zip(),
		ProductName:        gofakeit.ProductName(),
		Pieces:             gofakeit.Number(1, 20),
		Weight:             decimal.NewFromFloat(gofakeit.Float64Range(0.5, 50)).Round(2),
		DeliveryPartner:    "DTDC",
		ServiceType:        entity.ServiceCargo,
		Mode:               entity.ModeSurface,
		Region:             "north",
		Zone:               zone,
		Charges: entity.Charges{
			BaseRate:          decimal.NewFromInt(100),
			DocketCharge:      decimal.NewFromInt(20),
			ODACharge:         decimal.NewFromInt(10),
			FOV:               decimal.NewFromInt(15),
			FuelChargePercent: decimal.NewFromInt(10),
			GSTPercent:        decimal.NewFromInt(18),
		},
	}
}
