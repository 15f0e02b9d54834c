package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetByIDFunc func(ctx context.Context, id string) (*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Seed(accounts ...*domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		m.accounts[a.ID] = a
	}
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

// MockProfitCenterRepository is a mock implementation of ProfitCenterRepository.
type MockProfitCenterRepository struct {
	mu      sync.RWMutex
	centers map[string]*domain.ProfitCenter

	GetByIDFunc func(ctx context.Context, id string) (*domain.ProfitCenter, error)
}

func NewMockProfitCenterRepository() *MockProfitCenterRepository {
	return &MockProfitCenterRepository{centers: make(map[string]*domain.ProfitCenter)}
}

func (m *MockProfitCenterRepository) Seed(centers ...*domain.ProfitCenter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range centers {
		m.centers[c.ID] = c
	}
}

func (m *MockProfitCenterRepository) GetByID(ctx context.Context, id string) (*domain.ProfitCenter, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.centers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrProfitCenterNotFound
}

// MockSourceCodeRepository is a mock implementation of SourceCodeRepository.
type MockSourceCodeRepository struct {
	mu    sync.RWMutex
	codes map[string]*domain.SourceCode

	GetByIDFunc func(ctx context.Context, id string) (*domain.SourceCode, error)
}

func NewMockSourceCodeRepository() *MockSourceCodeRepository {
	return &MockSourceCodeRepository{codes: make(map[string]*domain.SourceCode)}
}

func (m *MockSourceCodeRepository) Seed(codes ...*domain.SourceCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range codes {
		m.codes[c.ID] = c
	}
}

func (m *MockSourceCodeRepository) GetByID(ctx context.Context, id string) (*domain.SourceCode, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.codes[id]; ok {
		return c, nil
	}
	return nil, domain.ErrSourceCodeNotFound
}

// MockVendorRepository is a mock implementation of VendorRepository.
type MockVendorRepository struct {
	mu      sync.RWMutex
	vendors map[string]*domain.Vendor

	GetByIDFunc func(ctx context.Context, id string) (*domain.Vendor, error)
}

func NewMockVendorRepository() *MockVendorRepository {
	return &MockVendorRepository{vendors: make(map[string]*domain.Vendor)}
}

func (m *MockVendorRepository) Seed(vendors ...*domain.Vendor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range vendors {
		m.vendors[v.ID] = v
	}
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.vendors[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVendorNotFound
}

// MockBankRepository is a mock implementation of BankRepository.
type MockBankRepository struct {
	mu       sync.RWMutex
	banks    map[string]*domain.Bank
	balances map[string]decimal.Decimal

	GetByIDFunc      func(ctx context.Context, id string) (*domain.Bank, error)
	GetGLBalanceFunc func(ctx context.Context, bankID string) (decimal.Decimal, error)
}

func NewMockBankRepository() *MockBankRepository {
	return &MockBankRepository{
		banks:    make(map[string]*domain.Bank),
		balances: make(map[string]decimal.Decimal),
	}
}

func (m *MockBankRepository) Seed(bank *domain.Bank, glBalance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banks[bank.ID] = bank
	m.balances[bank.ID] = glBalance
}

func (m *MockBankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.banks[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBankNotFound
}

func (m *MockBankRepository) GetGLBalance(ctx context.Context, bankID string) (decimal.Decimal, error) {
	if m.GetGLBalanceFunc != nil {
		return m.GetGLBalanceFunc(ctx, bankID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[bankID], nil
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice

	GetByIDFunc func(ctx context.Context, id string) (*domain.Invoice, error)
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{invoices: make(map[string]*domain.Invoice)}
}

func (m *MockInvoiceRepository) Seed(invoices ...*domain.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range invoices {
		m.invoices[inv.ID] = inv
	}
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

// MockEnumRepository is a mock implementation of EnumRepository.
type MockEnumRepository struct {
	mu     sync.RWMutex
	values map[string]*domain.EnumValue

	GetByCodeFunc func(ctx context.Context, enumDomain, code string) (*domain.EnumValue, error)
}

func NewMockEnumRepository() *MockEnumRepository {
	return &MockEnumRepository{values: make(map[string]*domain.EnumValue)}
}

func (m *MockEnumRepository) Seed(values ...*domain.EnumValue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range values {
		m.values[v.Domain+":"+v.Code] = v
	}
}

func (m *MockEnumRepository) GetByCode(ctx context.Context, enumDomain, code string) (*domain.EnumValue, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, enumDomain, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[enumDomain+":"+code]; ok {
		return v, nil
	}
	return nil, domain.ErrEnumValueNotFound
}

// MockPostingRepository is a mock implementation of PostingRepository.
type MockPostingRepository struct {
	mu       sync.RWMutex
	postings map[string]*domain.LedgerPosting
	order    []string

	CreateFunc          func(ctx context.Context, posting *domain.LedgerPosting) error
	UpdateFunc          func(ctx context.Context, posting *domain.LedgerPosting) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.LedgerPosting, error)
	ListByDateRangeFunc func(ctx context.Context, from, to time.Time) ([]*domain.LedgerPosting, error)
}

func NewMockPostingRepository() *MockPostingRepository {
	return &MockPostingRepository{postings: make(map[string]*domain.LedgerPosting)}
}

func (m *MockPostingRepository) Create(ctx context.Context, posting *domain.LedgerPosting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, posting)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postings[posting.ID] = posting
	m.order = append(m.order, posting.ID)
	return nil
}

func (m *MockPostingRepository) Update(ctx context.Context, posting *domain.LedgerPosting) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, posting)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.postings[posting.ID]; !ok {
		return domain.ErrPostingNotFound
	}
	m.postings[posting.ID] = posting
	return nil
}

func (m *MockPostingRepository) GetByID(ctx context.Context, id string) (*domain.LedgerPosting, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.postings[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPostingNotFound
}

func (m *MockPostingRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.LedgerPosting, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.LedgerPosting, 0, len(m.order))
	for _, id := range m.order {
		p := m.postings[id]
		if !p.Date.Before(from) && !p.Date.After(to) {
			result = append(result, p)
		}
	}
	return result, nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	CreateDetailFunc func(ctx context.Context, tx usecase.Transaction, detail *domain.PaymentDetail) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Payment, error)
	ListByVendorFunc func(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{payments: make(map[string]*domain.Payment)}
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) CreateDetail(ctx context.Context, tx usecase.Transaction, detail *domain.PaymentDetail) error {
	if m.CreateDetailFunc != nil {
		return m.CreateDetailFunc(ctx, tx, detail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[detail.PaymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	updated := p.WithDetail(*detail)
	m.payments[detail.PaymentID] = &updated
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Payment, error) {
	if m.ListByVendorFunc != nil {
		return m.ListByVendorFunc(ctx, vendorID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Payment, 0)
	for _, p := range m.payments {
		if p.VendorID == vendorID {
			result = append(result, p)
		}
	}
	return result, nil
}

// MockReconcilingItemRepository is a mock implementation of ReconcilingItemRepository.
type MockReconcilingItemRepository struct {
	mu    sync.RWMutex
	items map[string][]domain.ReconcilingItem

	ListByBankFunc func(ctx context.Context, bankID string) ([]domain.ReconcilingItem, error)
}

func NewMockReconcilingItemRepository() *MockReconcilingItemRepository {
	return &MockReconcilingItemRepository{items: make(map[string][]domain.ReconcilingItem)}
}

func (m *MockReconcilingItemRepository) Seed(bankID string, items ...domain.ReconcilingItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[bankID] = append(m.items[bankID], items...)
}

func (m *MockReconcilingItemRepository) ListByBank(ctx context.Context, bankID string) ([]domain.ReconcilingItem, error) {
	if m.ListByBankFunc != nil {
		return m.ListByBankFunc(ctx, bankID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[bankID], nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockTransaction is a no-op Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.RolledBack = true
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockRetrier runs the operation once, no backoff.
type MockRetrier struct{}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}
