package handlers

import (
	"bookhaven/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a testify mock of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBooks() ([]*models.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Book), args.Error(1)
}

func (m *MockCatalogService) CreateBook(req *models.BookCreateRequest) (*models.Book, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockCatalogService) UpdateBook(id string, req *models.BookUpdateRequest) (*models.Book, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockCatalogService) DeleteBook(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCartService is a testify mock of CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(bookID string, quantity int) error {
	args := m.Called(bookID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(bookID string) error {
	args := m.Called(bookID)
	return args.Error(0)
}

func (m *MockCartService) UpdateQuantity(bookID string, quantity int) error {
	args := m.Called(bookID, quantity)
	return args.Error(0)
}

// MockAuthService is a testify mock of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(req *models.LoginRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ChangePassword(userID, bearerToken string, req *models.PasswordChangeRequest) error {
	args := m.Called(userID, bearerToken, req)
	return args.Error(0)
}

func (m *MockAuthService) ForgotPassword(req *models.ForgotPasswordRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

// MockOrderService is a testify mock of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(req *models.CheckoutRequest) (*models.Order, []byte, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Order), args.Get(1).([]byte), args.Error(2)
}

func (m *MockOrderService) Update(orderID string, req *models.OrderUpdateRequest) (*models.Order, []byte, error) {
	args := m.Called(orderID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Order), args.Get(1).([]byte), args.Error(2)
}

func (m *MockOrderService) Delete(orderID string) error {
	args := m.Called(orderID)
	return args.Error(0)
}
