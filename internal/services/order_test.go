package services

import (
	"testing"

	"bookhaven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testItemID  = "9a8e1f24-6b77-4d08-9a11-3c5be0d4a004"
	testItemID2 = "51c3f7d9-28e4-4f90-bb02-7d64a9e8b005"
	testOrderID = "c4b2d6e8-1a3f-4c5d-8e7f-9b0a1c2d3006"
)

func newOrderService(
	orders *MockOrderRepository,
	users *MockUserRepository,
	cartItems *MockCartItemRepository,
	books *MockBookRepository,
) *OrderService {
	return NewOrderService(orders, users, cartItems, books, NewReceiptService())
}

func TestOrderService_Checkout(t *testing.T) {
	user := &models.User{ID: testUserID, Username: "jane"}

	t.Run("total is the sum of quantity times book price", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		users.On("GetByID", testUserID).Return(user, nil)
		cartItems.On("GetByID", testItemID).Return(&models.CartItem{ID: testItemID, BookID: testBookID, Quantity: 2, Price: 500}, nil)
		cartItems.On("GetByID", testItemID2).Return(&models.CartItem{ID: testItemID2, BookID: testBookID2, Quantity: 1, Price: 300}, nil)
		books.On("GetByID", testBookID).Return(&models.Book{ID: testBookID, Title: "Dune", Price: 500}, nil)
		books.On("GetByID", testBookID2).Return(&models.Book{ID: testBookID2, Title: "Emma", Price: 300}, nil)
		orders.On("Create", mock.MatchedBy(func(o *models.Order) bool {
			return o.TotalAmount == 1300 && len(o.Items) == 2
		})).Return(&models.Order{
			ID:          testOrderID,
			UserID:      testUserID,
			Items:       []string{testItemID, testItemID2},
			TotalAmount: 1300,
		}, nil)

		order, receipt, err := service.Checkout(&models.CheckoutRequest{
			UserID:          testUserID,
			Items:           []string{testItemID, testItemID2},
			ShippingAddress: "42 Haven St, Kisumu",
			PaymentMethod:   "mpesa",
		})

		require.NoError(t, err)
		assert.Equal(t, 1300, order.TotalAmount)
		assert.NotEmpty(t, receipt)
		orders.AssertExpectations(t)
	})

	t.Run("missing user aborts before any item lookup", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		users.On("GetByID", "missing").Return(nil, models.ErrUserNotFound)

		_, _, err := service.Checkout(&models.CheckoutRequest{UserID: "missing", Items: []string{testItemID}})

		assert.ErrorIs(t, err, models.ErrUserNotFound)
		cartItems.AssertNotCalled(t, "GetByID")
		orders.AssertNotCalled(t, "Create")
	})

	t.Run("missing cart item persists no order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		users.On("GetByID", testUserID).Return(user, nil)
		cartItems.On("GetByID", testItemID).Return(nil, models.ErrCartItemNotFound)

		_, _, err := service.Checkout(&models.CheckoutRequest{UserID: testUserID, Items: []string{testItemID}})

		assert.ErrorIs(t, err, models.ErrCartItemNotFound)
		orders.AssertNotCalled(t, "Create")
	})

	t.Run("missing referenced book persists no order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		users.On("GetByID", testUserID).Return(user, nil)
		cartItems.On("GetByID", testItemID).Return(&models.CartItem{ID: testItemID, BookID: testBookID, Quantity: 1, Price: 500}, nil)
		books.On("GetByID", testBookID).Return(nil, models.ErrBookNotFound)

		_, _, err := service.Checkout(&models.CheckoutRequest{UserID: testUserID, Items: []string{testItemID}})

		assert.ErrorIs(t, err, models.ErrBookNotFound)
		orders.AssertNotCalled(t, "Create")
	})
}

func TestOrderService_Update(t *testing.T) {
	user := &models.User{ID: testUserID, Username: "jane"}
	existing := &models.Order{ID: testOrderID, UserID: testUserID, Items: []string{testItemID}, TotalAmount: 500}

	t.Run("totals come from caller-supplied quantity and price", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		orders.On("GetByID", testOrderID).Return(existing, nil)
		users.On("GetByID", testUserID).Return(user, nil)
		cartItems.On("GetByID", testItemID).Return(&models.CartItem{ID: testItemID, BookID: testBookID, Quantity: 2, Price: 500}, nil)
		books.On("GetByID", testBookID).Return(&models.Book{ID: testBookID, Title: "Dune", Price: 999}, nil)
		orders.On("Update", mock.MatchedBy(func(o *models.Order) bool {
			return o.ID == testOrderID && o.TotalAmount == 3*250
		})).Return(nil)

		order, receipt, err := service.Update(testOrderID, &models.OrderUpdateRequest{
			UserID:          testUserID,
			Items:           []models.OrderItemUpdate{{ID: testItemID, Quantity: 3, Price: 250}},
			ShippingAddress: "42 Haven St, Kisumu",
			PaymentMethod:   "card",
		})

		require.NoError(t, err)
		assert.Equal(t, 750, order.TotalAmount)
		assert.NotEmpty(t, receipt)
	})

	t.Run("missing quantity or price is a validation failure", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		orders.On("GetByID", testOrderID).Return(existing, nil)
		users.On("GetByID", testUserID).Return(user, nil)

		_, _, err := service.Update(testOrderID, &models.OrderUpdateRequest{
			UserID: testUserID,
			Items:  []models.OrderItemUpdate{{ID: testItemID, Quantity: 2}},
		})

		ve, ok := models.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Details, "Invalid item format")
		orders.AssertNotCalled(t, "Update")
	})

	t.Run("unknown order is 404, unlike delete", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		orders.On("GetByID", "missing").Return(nil, models.ErrOrderNotFound)

		_, _, err := service.Update("missing", &models.OrderUpdateRequest{UserID: testUserID})

		assert.ErrorIs(t, err, models.ErrOrderNotFound)
	})
}

func TestOrderService_Delete(t *testing.T) {
	t.Run("deleting an absent order still succeeds", func(t *testing.T) {
		orders := new(MockOrderRepository)
		users := new(MockUserRepository)
		cartItems := new(MockCartItemRepository)
		books := new(MockBookRepository)
		service := newOrderService(orders, users, cartItems, books)

		orders.On("Delete", "missing").Return(nil)

		assert.NoError(t, service.Delete("missing"))
	})
}
