package handler

import (
	"context"

	"github.com/hitoshi/portal/internal/model"
)

// --- モック定義 ---

// mockCatalogService はCatalogServiceInterfaceのモック実装。
type mockCatalogService struct {
	currentUserFn  func(ctx context.Context) *model.User
	listJobsFn     func(ctx context.Context, status string) []model.Job
	getJobFn       func(ctx context.Context, id int64) (*model.Job, error)
	listInvoicesFn func(ctx context.Context, status string) []model.Invoice
	listPromosFn   func(ctx context.Context) []model.Promo
	listFAQsFn     func(ctx context.Context) []model.FAQ
	membershipFn   func(ctx context.Context) *model.Membership
}

func (m *mockCatalogService) CurrentUser(ctx context.Context) *model.User {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx)
	}
	return &model.User{}
}

func (m *mockCatalogService) ListJobs(ctx context.Context, status string) []model.Job {
	if m.listJobsFn != nil {
		return m.listJobsFn(ctx, status)
	}
	return []model.Job{}
}

func (m *mockCatalogService) GetJob(ctx context.Context, id int64) (*model.Job, error) {
	if m.getJobFn != nil {
		return m.getJobFn(ctx, id)
	}
	return nil, model.NewJobNotFoundError()
}

func (m *mockCatalogService) ListInvoices(ctx context.Context, status string) []model.Invoice {
	if m.listInvoicesFn != nil {
		return m.listInvoicesFn(ctx, status)
	}
	return []model.Invoice{}
}

func (m *mockCatalogService) ListPromos(ctx context.Context) []model.Promo {
	if m.listPromosFn != nil {
		return m.listPromosFn(ctx)
	}
	return []model.Promo{}
}

func (m *mockCatalogService) ListFAQs(ctx context.Context) []model.FAQ {
	if m.listFAQsFn != nil {
		return m.listFAQsFn(ctx)
	}
	return []model.FAQ{}
}

func (m *mockCatalogService) Membership(ctx context.Context) *model.Membership {
	if m.membershipFn != nil {
		return m.membershipFn(ctx)
	}
	return &model.Membership{}
}

// mockRequestService はRequestServiceInterfaceのモック実装。
type mockRequestService struct {
	createFn func(ctx context.Context, in model.ServiceRequest) (*model.ServiceRequest, error)
	listFn   func(ctx context.Context) ([]*model.ServiceRequest, error)
}

func (m *mockRequestService) Create(ctx context.Context, in model.ServiceRequest) (*model.ServiceRequest, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &in, nil
}

func (m *mockRequestService) List(ctx context.Context) ([]*model.ServiceRequest, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockMessageService はMessageServiceInterfaceのモック実装。
type mockMessageService struct {
	postFn func(ctx context.Context, msg model.Message) (*model.Message, error)
	listFn func(ctx context.Context, jobID *int64) ([]*model.Message, error)
}

func (m *mockMessageService) Post(ctx context.Context, msg model.Message) (*model.Message, error) {
	if m.postFn != nil {
		return m.postFn(ctx, msg)
	}
	return &msg, nil
}

func (m *mockMessageService) List(ctx context.Context, jobID *int64) ([]*model.Message, error) {
	if m.listFn != nil {
		return m.listFn(ctx, jobID)
	}
	return nil, nil
}

// mockPaymentGateway はPaymentGatewayInterfaceのモック実装。
type mockPaymentGateway struct {
	createPaymentIntentFn func(ctx context.Context, invoiceID int64) (*model.PaymentIntent, error)
}

func (m *mockPaymentGateway) CreatePaymentIntent(ctx context.Context, invoiceID int64) (*model.PaymentIntent, error) {
	if m.createPaymentIntentFn != nil {
		return m.createPaymentIntentFn(ctx, invoiceID)
	}
	return &model.PaymentIntent{}, nil
}

// mockSensorService はSensorServiceInterfaceのモック実装。
type mockSensorService struct {
	recordFn func(ctx context.Context, sensorID int64, reading model.SensorReading) *model.SensorReading
}

func (m *mockSensorService) Record(ctx context.Context, sensorID int64, reading model.SensorReading) *model.SensorReading {
	if m.recordFn != nil {
		return m.recordFn(ctx, sensorID, reading)
	}
	reading.SensorID = sensorID
	return &reading
}

// mockPinger はPingerのモック実装。
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}
