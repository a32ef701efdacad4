package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kabir14815/rr/internal/draft"
	mock_draft "github.com/Kabir14815/rr/internal/draft/mock"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"
	mock_service "github.com/Kabir14815/rr/internal/service/mock"
	"github.com/Kabir14815/rr/pkg/cache"
	"github.com/Kabir14815/rr/pkg/logger"
	mock_metric "github.com/Kabir14815/rr/pkg/metric/mock"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type deskDeps struct {
	store    *mock_service.MockConsignmentStore
	exporter *mock_service.MockExporter
	users    *mock_service.MockUserDirectory
	invoices *mock_service.MockInvoiceDirectory
	lookup   *mock_draft.MockRateCardLookup
}

func newCacheMetrics(ctrl *gomock.Controller) *mock_metric.MockCache {
	m := mock_metric.NewMockCache(ctrl)
	m.EXPECT().Hit(gomock.Any()).AnyTimes()
	m.EXPECT().Miss(gomock.Any()).AnyTimes()
	m.EXPECT().Size(gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().Eviction(gomock.Any(), gomock.Any()).AnyTimes()
	return m
}

func newDesk(t *testing.T, opts ...service.DeskOption) (*service.Desk, deskDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := deskDeps{
		store:    mock_service.NewMockConsignmentStore(ctrl),
		exporter: mock_service.NewMockExporter(ctrl),
		users:    mock_service.NewMockUserDirectory(ctrl),
		invoices: mock_service.NewMockInvoiceDirectory(ctrl),
		lookup:   mock_draft.NewMockRateCardLookup(ctrl),
	}

	rateMetrics := mock_metric.NewMockRateCard(ctrl)
	rateMetrics.EXPECT().Lookup(gomock.Any(), gomock.Any()).AnyTimes()
	rateMetrics.EXPECT().Stale().AnyTimes()

	drafts, err := cache.NewLRUCache[uuid.UUID, *draft.Controller]("drafts", 16, logger.NewNop(), newCacheMetrics(ctrl))
	require.NoError(t, err)

	desk, err := service.NewDesk(
		deps.store, deps.exporter, deps.users, deps.invoices, deps.lookup,
		drafts, logger.NewNop(), rateMetrics, opts...,
	)
	require.NoError(t, err)
	t.Cleanup(desk.Close)
	return desk, deps
}

func fakeUser() entity.User {
	return entity.User{
		ID:          gofakeit.UUID(),
		FullName:    gofakeit.Name(),
		CompanyName: gofakeit.Company(),
		Email:       gofakeit.Email(),
	}
}

func cargoKey(userID string) []draft.SetField {
	return []draft.SetField{
		{Field: draft.FieldUserID, Value: userID},
		{Field: draft.FieldDeliveryPartner, Value: "DTDC"},
		{Field: draft.FieldServiceType, Value: string(entity.ServiceCargo)},
		{Field: draft.FieldMode, Value: string(entity.ModeSurface)},
		{Field: draft.FieldRegion, Value: "north"},
	}
}

func matched() *entity.RateCardResult {
	return &entity.RateCardResult{
		Found: true,
		RateCard: &entity.RateCard{
			ID:           "rc-1",
			BaseRate:     decimal.NewFromInt(100),
			DocketCharge: decimal.NewFromInt(20),
			ODI:          decimal.NewFromInt(10),
			FOV:          decimal.NewFromInt(15),
			FuelCharge:   decimal.NewFromInt(10),
			GST:          decimal.NewFromInt(18),
		},
	}
}

func waitLookup(t *testing.T, desk *service.Desk, id uuid.UUID, status draft.LookupStatus) *service.DraftView {
	t.Helper()

	var view *service.DraftView
	require.Eventually(t, func() bool {
		var err error
		view, err = desk.GetDraft(context.Background(), id)
		require.NoError(t, err)
		return view.Lookup == status
	}, time.Second, 5*time.Millisecond)
	return view
}

func TestDesk_UpdateDraft_ResolvesRateCard(t *testing.T) {
	desk, deps := newDesk(t)
	ctx := context.Background()
	user := fakeUser()

	deps.users.EXPECT().ListUsers(gomock.Any(), 0, 1000).Return([]entity.User{fakeUser(), user}, nil)
	deps.lookup.EXPECT().
		LookupRateCard(gomock.Any(), entity.RateCardQuery{
			UserID:          user.ID,
			DeliveryPartner: "DTDC",
			ServiceType:     entity.ServiceCargo,
			Mode:            entity.ModeSurface,
			Locator:         "north",
		}).
		Return(matched(), nil).
		Times(1)

	opened, err := desk.OpenDraft(ctx)
	require.NoError(t, err)
	require.Equal(t, draft.LookupIdle, opened.Lookup)
	require.Equal(t, "0.00", opened.TotalDisplay)

	view, err := desk.UpdateDraft(ctx, opened.ID, cargoKey(user.ID))
	require.NoError(t, err)
	require.Equal(t, user.DisplayName(), view.Draft.SenderName)
	require.Equal(t, draft.LookupFetching, view.Lookup)

	resolved := waitLookup(t, desk, opened.ID, draft.LookupResolved)
	require.True(t, resolved.PricingLocked)
	require.Equal(t, "rc-1", resolved.Draft.RateCardID)
	require.Equal(t, "186.44", resolved.TotalDisplay)
	require.Equal(t, draft.MsgRateCardApplied, resolved.Notice.Text)

	_, err = desk.UpdateDraft(ctx, opened.ID, []draft.SetField{{Field: draft.FieldBaseRate, Value: "1"}})
	require.ErrorIs(t, err, entity.ErrPricingLocked)
}

func TestDesk_UpdateDraft_ResolvesInvoiceNumber(t *testing.T) {
	desk, deps := newDesk(t)
	ctx := context.Background()

	deps.invoices.EXPECT().ListInvoices(gomock.Any()).Return([]entity.Invoice{
		{ID: "inv-1", InvoiceNumber: "INV-2026-001"},
		{ID: "inv-2", InvoiceNumber: "INV-2026-002"},
	}, nil)

	opened, err := desk.OpenDraft(ctx)
	require.NoError(t, err)

	view, err := desk.UpdateDraft(ctx, opened.ID, []draft.SetField{{Field: draft.FieldInvoiceID, Value: "inv-2"}})
	require.NoError(t, err)
	require.Equal(t, "INV-2026-002", view.Draft.InvoiceNo)

	view, err = desk.UpdateDraft(ctx, opened.ID, []draft.SetField{{Field: draft.FieldInvoiceID, Value: ""}})
	require.NoError(t, err)
	require.Empty(t, view.Draft.InvoiceNo)
}

func TestDesk_UpdateDraft_DirectoryFailureKeepsEdit(t *testing.T) {
	desk, deps := newDesk(t)
	ctx := context.Background()

	deps.users.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, entity.ErrTransport)

	opened, err := desk.OpenDraft(ctx)
	require.NoError(t, err)

	view, err := desk.UpdateDraft(ctx, opened.ID, []draft.SetField{{Field: draft.FieldUserID, Value: "u-1"}})
	require.NoError(t, err)
	require.Equal(t, "u-1", view.Draft.UserID)
	require.Empty(t, view.Draft.SenderName)
}

func TestDesk_DirectoryCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	users, err := cache.NewLRUCache[string, []entity.User]("users", 1, logger.NewNop(), newCacheMetrics(ctrl))
	require.NoError(t, err)
	invoices, err := cache.NewLRUCache[string, []entity.Invoice]("invoices", 1, logger.NewNop(), newCacheMetrics(ctrl))
	require.NoError(t, err)

	desk, deps := newDesk(t, service.DirectoryCache(users, invoices, time.Minute))
	ctx := context.Background()

	first, second := fakeUser(), fakeUser()
	deps.users.EXPECT().ListUsers(gomock.Any(), 0, 1000).Return([]entity.User{first, second}, nil).Times(1)

	opened, err := desk.OpenDraft(ctx)
	require.NoError(t, err)

	view, err := desk.UpdateDraft(ctx, opened.ID, []draft.SetField{{Field: draft.FieldUserID, Value: first.ID}})
	require.NoError(t, err)
	require.Equal(t, first.DisplayName(), view.Draft.SenderName)

	view, err = desk.UpdateDraft(ctx, opened.ID, []draft.SetField{{Field: draft.FieldUserID, Value: second.ID}})
	require.NoError(t, err)
	require.Equal(t, second.DisplayName(), view.Draft.SenderName)
}

func TestDesk_SubmitDraft(t *testing.T) {
	t.Run("PendingRateCard", func(t *testing.T) {
		desk, deps := newDesk(t)
		ctx := context.Background()

		release := make(chan struct{})
		deps.users.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.lookup.EXPECT().LookupRateCard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ entity.RateCardQuery) (*entity.RateCardResult, error) {
				select {
				case <-release:
				case <-ctx.Done():
				}
				return matched(), nil
			})
		deps.store.EXPECT().CreateConsignment(gomock.Any(), gomock.Any()).Times(0)

		opened, err := desk.OpenDraft(ctx)
		require.NoError(t, err)
		_, err = desk.UpdateDraft(ctx, opened.ID, cargoKey("u-1"))
		require.NoError(t, err)

		_, view, err := desk.SubmitDraft(ctx, opened.ID)
		close(release)
		require.ErrorIs(t, err, entity.ErrRateCardPending)
		require.Equal(t, "u-1", view.Draft.UserID)
	})

	t.Run("Created", func(t *testing.T) {
		desk, deps := newDesk(t)
		ctx := context.Background()
		user := fakeUser()

		deps.users.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entity.User{user}, nil)
		deps.lookup.EXPECT().LookupRateCard(gomock.Any(), gomock.Any()).Return(matched(), nil)
		deps.store.EXPECT().
			CreateConsignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in entity.ConsignmentInput) (*entity.Consignment, error) {
				require.Equal(t, user.ID, in.UserID)
				require.Equal(t, user.DisplayName(), in.Name)
				require.Equal(t, "north", in.Region)
				require.Empty(t, in.CourierZone)
				require.Equal(t, "rc-1", in.RateCardID)
				return &entity.Consignment{ID: "c-1", SrNo: 12, ConsignmentNo: "DXOO1610261015"}, nil
			})

		opened, err := desk.OpenDraft(ctx)
		require.NoError(t, err)

		changes := append([]draft.SetField{
			{Field: draft.FieldDestination, Value: "Delhi"},
			{Field: draft.FieldProductName, Value: "Spares"},
		}, cargoKey(user.ID)...)
		_, err = desk.UpdateDraft(ctx, opened.ID, changes)
		require.NoError(t, err)
		waitLookup(t, desk, opened.ID, draft.LookupResolved)

		created, view, err := desk.SubmitDraft(ctx, opened.ID)
		require.NoError(t, err)
		require.Equal(t, "c-1", created.ID)
		require.Equal(t, draft.LookupIdle, view.Lookup)
		require.Empty(t, view.Draft.UserID)
		require.False(t, view.PricingLocked)
	})

	t.Run("StoreRejects", func(t *testing.T) {
		desk, deps := newDesk(t)
		ctx := context.Background()
		remote := &entity.RemoteError{Status: 400, Detail: "Invoice already closed", Kind: entity.ErrInvalidData}

		deps.store.EXPECT().CreateConsignment(gomock.Any(), gomock.Any()).Return(nil, remote)

		opened, err := desk.OpenDraft(ctx)
		require.NoError(t, err)
		deps.users.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		_, err = desk.UpdateDraft(ctx, opened.ID, []draft.SetField{
			{Field: draft.FieldUserID, Value: "u-1"},
			{Field: draft.FieldDestination, Value: "Pune"},
			{Field: draft.FieldProductName, Value: "Docs"},
		})
		require.NoError(t, err)

		_, view, err := desk.SubmitDraft(ctx, opened.ID)
		require.ErrorIs(t, err, entity.ErrInvalidData)
		require.Equal(t, "Invoice already closed", entity.UserMessage(err, service.MsgCreateFailed))
		require.Equal(t, "Pune", view.Draft.Destination)
	})
}

func TestDesk_DiscardDraft(t *testing.T) {
	desk, _ := newDesk(t)
	ctx := context.Background()

	opened, err := desk.OpenDraft(ctx)
	require.NoError(t, err)

	require.NoError(t, desk.DiscardDraft(ctx, opened.ID))
	require.ErrorIs(t, desk.DiscardDraft(ctx, opened.ID), entity.ErrDataNotFound)

	_, err = desk.GetDraft(ctx, opened.ID)
	require.ErrorIs(t, err, entity.ErrDataNotFound)
}

func TestDesk_LoadDashboard(t *testing.T) {
	testCases := []struct {
		desc          string
		consignments  error
		users         error
		invoices      error
		expectedRows  int
		expectedUsers int
		warnings      []string
	}{
		{
			desc:          "all succeed",
			expectedRows:  2,
			expectedUsers: 1,
		},
		{
			desc:          "users failure still renders list",
			users:         entity.ErrTransport,
			expectedRows:  2,
			expectedUsers: 0,
		},
		{
			desc:          "consignment failure warns",
			consignments:  entity.ErrTransport,
			invoices:      entity.ErrTransport,
			expectedRows:  0,
			expectedUsers: 1,
			warnings:      []string{service.MsgLoadFailed},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			desk, deps := newDesk(t)

			rows := []entity.Consignment{{ID: "c2", SrNo: 2}, {ID: "c1", SrNo: 1}}
			if tc.consignments != nil {
				rows = nil
			}
			users := []entity.User{fakeUser()}
			if tc.users != nil {
				users = nil
			}

			deps.store.EXPECT().ListConsignments(gomock.Any(), entity.ConsignmentFilter{}).Return(rows, tc.consignments)
			deps.users.EXPECT().ListUsers(gomock.Any(), 0, 1000).Return(users, tc.users)
			deps.invoices.EXPECT().ListInvoices(gomock.Any()).Return(nil, tc.invoices)

			dash := desk.LoadDashboard(context.Background())
			require.Len(t, dash.Consignments, tc.expectedRows)
			require.Len(t, dash.Users, tc.expectedUsers)
			require.NotNil(t, dash.Consignments)
			require.NotNil(t, dash.Users)
			require.NotNil(t, dash.Invoices)
			require.Equal(t, tc.warnings, dash.Warnings)

			body, err := json.Marshal(dash)
			require.NoError(t, err)
			for _, key := range []string{"consignments", "users", "invoices"} {
				require.NotContains(t, string(body), `"`+key+`":null`)
			}
		})
	}
}

func TestDesk_ListConsignments(t *testing.T) {
	desk, deps := newDesk(t)
	ctx := context.Background()

	filter := entity.ConsignmentFilter{Zone: "METRO", Limit: 50}
	deps.store.EXPECT().ListConsignments(gomock.Any(), filter).Return([]entity.Consignment{{ID: "c1"}}, nil)

	list, err := desk.ListConsignments(ctx, filter)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = desk.ListConsignments(ctx, entity.ConsignmentFilter{Zone: "MARS"})
	require.ErrorIs(t, err, entity.ErrInvalidData)

	from, _ := entity.ParseDay("2026-10-10")
	to, _ := entity.ParseDay("2026-10-01")
	_, err = desk.ListConsignments(ctx, entity.ConsignmentFilter{StartDate: from, EndDate: to})
	require.ErrorIs(t, err, entity.ErrInvalidData)
}

func TestDesk_DeleteConsignment(t *testing.T) {
	desk, deps := newDesk(t)
	ctx := context.Background()

	deps.store.EXPECT().DeleteConsignment(gomock.Any(), "c1").Return(nil)
	deps.store.EXPECT().DeleteConsignment(gomock.Any(), "missing").Return(entity.ErrDataNotFound)

	require.NoError(t, desk.DeleteConsignment(ctx, "c1"))
	require.ErrorIs(t, desk.DeleteConsignment(ctx, "missing"), entity.ErrDataNotFound)
}

func TestDesk_ExportConsignments(t *testing.T) {
	testCases := []struct {
		desc     string
		input    entity.ExportRequest
		sent     entity.ExportRequest
		calls    int
		expected error
	}{
		{desc: "all", input: entity.ExportRequest{Mode: entity.ExportAll}, calls: 1},
		{desc: "selected", input: entity.ExportRequest{Mode: entity.ExportSelected, IDs: []string{"a"}}, calls: 1},
		{
			desc:  "selected ids trimmed",
			input: entity.ExportRequest{Mode: entity.ExportSelected, IDs: []string{" a ", "", "b"}},
			sent:  entity.ExportRequest{Mode: entity.ExportSelected, IDs: []string{"a", "b"}},
			calls: 1,
		},
		{desc: "empty selection", input: entity.ExportRequest{Mode: entity.ExportSelected}, expected: entity.ErrInvalidData},
		{
			desc:     "blank selection",
			input:    entity.ExportRequest{Mode: entity.ExportSelected, IDs: []string{"", " "}},
			expected: entity.ErrInvalidData,
		},
		{desc: "unknown zone", input: entity.ExportRequest{Mode: entity.ExportZone, Zone: "MARS"}, expected: entity.ErrInvalidData},
		{desc: "unknown mode", input: entity.ExportRequest{Mode: "pdf"}, expected: entity.ErrInvalidData},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			desk, deps := newDesk(t)

			sent := tc.sent
			if sent.Mode == "" {
				sent = tc.input
			}
			deps.exporter.EXPECT().ExportConsignments(gomock.Any(), sent).
				Return(&entity.Export{FileName: "consignments_2026-10-16.xlsx", Content: []byte("x")}, nil).
				Times(tc.calls)

			export, err := desk.ExportConsignments(context.Background(), tc.input)
			if tc.expected != nil {
				require.ErrorIs(t, err, tc.expected)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "consignments_2026-10-16.xlsx", export.FileName)
		})
	}
}

func TestDesk_ExportFailure(t *testing.T) {
	desk, deps := newDesk(t)

	deps.exporter.EXPECT().ExportConsignments(gomock.Any(), gomock.Any()).Return(nil, entity.ErrTransport)

	_, err := desk.ExportConsignments(context.Background(), entity.ExportRequest{Mode: entity.ExportAll})
	require.True(t, errors.Is(err, entity.ErrTransport))
	require.Equal(t, service.MsgExportFailed, entity.UserMessage(err, service.MsgExportFailed))
}

func TestNewDesk_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	drafts, err := cache.NewLRUCache[uuid.UUID, *draft.Controller]("drafts", 1, logger.NewNop(), newCacheMetrics(ctrl))
	require.NoError(t, err)

	_, err = service.NewDesk(nil, nil, nil, nil, nil, drafts, logger.NewNop(), mock_metric.NewMockRateCard(ctrl))
	require.Error(t, err)

	_, err = service.NewDesk(
		mock_service.NewMockConsignmentStore(ctrl),
		mock_service.NewMockExporter(ctrl),
		mock_service.NewMockUserDirectory(ctrl),
		mock_service.NewMockInvoiceDirectory(ctrl),
		mock_draft.NewMockRateCardLookup(ctrl),
		drafts, logger.NewNop(), mock_metric.NewMockRateCard(ctrl),
		service.DraftTTL(0),
	)
	require.Error(t, err)
}
