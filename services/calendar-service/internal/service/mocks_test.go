package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/models"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/metrics"
)

// Mock InstallationRepository
type mockInstallationRepository struct {
	orderExistsFunc func(ctx context.Context, orderID uint64) (bool, error)
	createFunc      func(ctx context.Context, inst *models.Installation) error
	getByIDFunc     func(ctx context.Context, id int64) (*models.Installation, error)
	updateFunc      func(ctx context.Context, inst *models.Installation) error
	deleteFunc      func(ctx context.Context, id int64) (bool, error)
	listBetweenFunc func(ctx context.Context, from, to time.Time) ([]*models.Installation, error)
}

func (m *mockInstallationRepository) OrderExists(ctx context.Context, orderID uint64) (bool, error) {
	if m.orderExistsFunc != nil {
		return m.orderExistsFunc(ctx, orderID)
	}
	return false, errors.New("not implemented")
}

func (m *mockInstallationRepository) Create(ctx context.Context, inst *models.Installation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, inst)
	}
	return errors.New("not implemented")
}

func (m *mockInstallationRepository) GetByID(ctx context.Context, id int64) (*models.Installation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInstallationRepository) Update(ctx context.Context, inst *models.Installation) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, inst)
	}
	return errors.New("not implemented")
}

func (m *mockInstallationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, errors.New("not implemented")
}

func (m *mockInstallationRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Installation, error) {
	if m.listBetweenFunc != nil {
		return m.listBetweenFunc(ctx, from, to)
	}
	return nil, errors.New("not implemented")
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.InstallationEvent
	err    error
}

func (p *fakePublisher) PublishInstallationChanged(ctx context.Context, event models.InstallationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type fakeSMS struct {
	receptors []string
	message   string
	calls     int
	err       error
}

func (f *fakeSMS) Send(ctx context.Context, receptors []string, message string) (string, error) {
	f.calls++
	f.receptors, f.message = receptors, message
	if f.err != nil {
		return "", f.err
	}
	return "1001", nil
}

var tehran = time.FixedZone("IRST", 3*3600+1800)

// 1403/09/15, a Thursday
var fixedNow = time.Date(2024, 12, 5, 10, 0, 0, 0, tehran)

type testEnv struct {
	repo    *mockInstallationRepository
	pub     *fakePublisher
	sms     *fakeSMS
	metrics *metrics.Metrics
	logs    *bytes.Buffer
	svc     *InstallationService
}

func newTestEnv() *testEnv {
	reg := prometheus.NewRegistry()
	env := &testEnv{
		repo:    &mockInstallationRepository{},
		pub:     &fakePublisher{},
		sms:     &fakeSMS{},
		metrics: metrics.NewMetricsWith("calendar", reg, reg),
		logs:    &bytes.Buffer{},
	}
	env.svc = NewInstallationService(env.repo, NewCalendar(tehran), Options{
		Publisher: env.pub,
		SMS:       env.sms,
		Receptors: []string{"09121234567"},
		Metrics:   env.metrics,
		Logger:    logger.New("calendar", env.logs),
		Clock:     func() time.Time { return fixedNow },
	})
	return env
}

func strPtr(s string) *string { return &s }
