package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/internal/data/repository"
	"ora-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes for service tests.

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  map[uuid.UUID]*entity.Booking
	items     map[uuid.UUID][]*entity.BookingService
	history   map[uuid.UUID][]*entity.BookingStatusHistory
	createErr error // returned once by CreateWithServices, then cleared
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[uuid.UUID]*entity.Booking{},
		items:    map[uuid.UUID][]*entity.BookingService{},
		history:  map[uuid.UUID][]*entity.BookingStatusHistory{},
	}
}

func (f *fakeBookingRepo) CreateWithServices(ctx context.Context, booking *entity.Booking, items []*entity.BookingService) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	b := *booking
	f.bookings[b.ID] = &b
	f.items[b.ID] = items
	f.history[b.ID] = append(f.history[b.ID], &entity.BookingStatusHistory{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: b.CreatedAt},
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   b.Status,
		ChangedBy:  "system",
	})
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) FindByCode(ctx context.Context, code string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BookingCode == code {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByCodeAndEmail(ctx context.Context, code, email string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BookingCode == code && strings.EqualFold(b.CustomerEmail, email) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindFiltered(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountFiltered(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	bookings, _ := f.FindFiltered(ctx, filter, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindServices(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[bookingID], nil
}

func (f *fakeBookingRepo) FindHistory(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingStatusHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history[bookingID], nil
}

func (f *fakeBookingRepo) UpdateWithHistory(ctx context.Context, booking *entity.Booking, hist *entity.BookingStatusHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *booking
	f.bookings[cp.ID] = &cp
	f.history[cp.ID] = append(f.history[cp.ID], hist)
	return nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *booking
	f.bookings[cp.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, items := range f.items {
		for _, item := range items {
			if item.ServiceID == serviceID {
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) StreamByCreatedRange(ctx context.Context, from, to time.Time, fn func(*repository.BookingExportRow) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.CreatedAt.Before(from) || b.CreatedAt.After(to) {
			continue
		}
		row := &repository.BookingExportRow{
			BookingCode:   b.BookingCode,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			ServiceDate:   b.ServiceDate,
			ServiceTime:   b.ServiceTime,
			Status:        b.Status,
			Amount:        b.Amount,
			CreatedAt:     b.CreatedAt,
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) SumCompletedAmount(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusCompleted {
			sum += b.Amount
		}
	}
	return sum, nil
}

func (f *fakeBookingRepo) SumCompletedAmountSince(ctx context.Context, since time.Time) (float64, error) {
	return f.SumCompletedAmount(ctx)
}

func (f *fakeBookingRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	return f.FindFiltered(ctx, repository.BookingFilter{}, limit, 0)
}

type fakeServiceRepo struct {
	services  map[uuid.UUID]*entity.Service
	packages  map[uuid.UUID]*entity.ServicePackage
	deleteErr error
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		services: map[uuid.UUID]*entity.Service{},
		packages: map[uuid.UUID]*entity.ServicePackage{},
	}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	cp := *service
	f.services[cp.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	cp := *svc
	return &cp, nil
}

func (f *fakeServiceRepo) FindBySlug(ctx context.Context, serviceSlug string) (*entity.Service, error) {
	for _, svc := range f.services {
		if svc.Slug == serviceSlug {
			cp := *svc
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindActive(ctx context.Context, featuredOnly bool, limit, offset int) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, svc := range f.services {
		if !svc.IsActive {
			continue
		}
		if featuredOnly && !svc.IsFeatured {
			continue
		}
		cp := *svc
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeServiceRepo) CountActive(ctx context.Context, featuredOnly bool) (int64, error) {
	services, _ := f.FindActive(ctx, featuredOnly, 0, 0)
	return int64(len(services)), nil
}

func (f *fakeServiceRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, svc := range f.services {
		cp := *svc
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeServiceRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	cp := *service
	f.services[cp.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) FindPackages(ctx context.Context, serviceID uuid.UUID) ([]*entity.ServicePackage, error) {
	var out []*entity.ServicePackage
	for _, pkg := range f.packages {
		if pkg.ServiceID == serviceID {
			cp := *pkg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) FindPackageByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, nil
	}
	cp := *pkg
	return &cp, nil
}

func (f *fakeServiceRepo) TopByCompletedBookings(ctx context.Context, limit int) ([]*repository.TopService, error) {
	return nil, nil
}

type fakeCouponRepo struct {
	coupons map[uuid.UUID]*entity.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: map[uuid.UUID]*entity.Coupon{}}
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	cp := *coupon
	f.coupons[cp.ID] = &cp
	return nil
}

func (f *fakeCouponRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	c, ok := f.coupons[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCouponRepo) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	for _, c := range f.coupons {
		if strings.EqualFold(c.Code, code) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Coupon, error) {
	var out []*entity.Coupon
	for _, c := range f.coupons {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCouponRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.coupons)), nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, coupon *entity.Coupon) error {
	cp := *coupon
	f.coupons[cp.ID] = &cp
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.coupons, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*entity.Payment{}}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	cp := *payment
	f.payments[cp.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	cp := *payment
	f.payments[cp.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) SumPaidByBookingID(ctx context.Context, bookingID uuid.UUID) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		if p.BookingID == bookingID && p.Status == entity.PaymentStatusPaid {
			sum += p.PaidAmount
		}
	}
	return sum, nil
}

type fakeNewsletterRepo struct {
	subscribers map[uuid.UUID]*entity.NewsletterSubscriber
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subscribers: map[uuid.UUID]*entity.NewsletterSubscriber{}}
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	cp := *subscriber
	f.subscribers[cp.ID] = &cp
	return nil
}

func (f *fakeNewsletterRepo) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	for _, sub := range f.subscribers {
		if strings.EqualFold(sub.Email, email) {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsletterRepo) FindByToken(ctx context.Context, token string) (*entity.NewsletterSubscriber, error) {
	for _, sub := range f.subscribers {
		if sub.UnsubscribeToken == token {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsletterRepo) FindAll(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.NewsletterSubscriber, error) {
	var out []*entity.NewsletterSubscriber
	for _, sub := range f.subscribers {
		if activeOnly && !sub.IsActive {
			continue
		}
		cp := *sub
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeNewsletterRepo) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	subs, _ := f.FindAll(ctx, activeOnly, 0, 0)
	return int64(len(subs)), nil
}

func (f *fakeNewsletterRepo) Update(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	cp := *subscriber
	f.subscribers[cp.ID] = &cp
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	f.users[cp.ID] = &cp
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	cp := *session
	f.sessions[cp.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	now := time.Now()
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, s := range f.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var n int64
	for id, s := range f.sessions {
		if s.ExpiresAt.Before(time.Now()) {
			delete(f.sessions, id)
			n++
		}
	}
	return n, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:      "ORA Booking",
			BaseURL:   "http://localhost:8080",
			Currency:  "RM",
			AdminMail: "ops@example.com",
		},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

type testDeps struct {
	repo     *repository.Repository
	books    *fakeBookingRepo
	svcs     *fakeServiceRepo
	coups    *fakeCouponRepo
	pays     *fakePaymentRepo
	subs     *fakeNewsletterRepo
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	mailer   *fakeMailer
}

func newTestDeps() *testDeps {
	books := newFakeBookingRepo()
	svcs := newFakeServiceRepo()
	coups := newFakeCouponRepo()
	pays := newFakePaymentRepo()
	subs := newFakeNewsletterRepo()
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return &testDeps{
		repo: &repository.Repository{
			Booking:    books,
			Service:    svcs,
			Coupon:     coups,
			Payment:    pays,
			Newsletter: subs,
			User:       users,
			Session:    sessions,
		},
		books:    books,
		svcs:     svcs,
		coups:    coups,
		pays:     pays,
		subs:     subs,
		users:    users,
		sessions: sessions,
		mailer:   &fakeMailer{},
	}
}

func (d *testDeps) bookingService() BookingService {
	return NewBookingService(d.repo, testConfig(), d.mailer, nil, zap.NewNop())
}

func (d *testDeps) catalogService() CatalogService {
	return NewCatalogService(d.repo, zap.NewNop())
}

func (d *testDeps) newsletterService() NewsletterService {
	return NewNewsletterService(d.repo, testConfig(), d.mailer, zap.NewNop())
}

func (d *testDeps) authService() AuthService {
	return NewAuthService(d.repo, testConfig(), zap.NewNop())
}
