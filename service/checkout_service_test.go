package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/fixtures"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	. "github.com/smartystreets/goconvey/convey"
)

func createMockCheckoutService(t *testing.T) (*CheckoutService, *dao.MockDAO) {
	mockDao := dao.NewMockDAO(gomock.NewController(t))
	return &CheckoutService{DAO: mockDao}, mockDao
}

func TestUnitCheckoutServiceLookups(t *testing.T) {
	ctx := context.Background()

	Convey("Original transaction key of an order", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(fixtures.GetCheckoutSessionDB(""), nil)

		key, responseType, err := service.OriginalTransactionKey(ctx, fixtures.QuoteID, fixtures.OrderIncrementID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(key.OriginalTransactionKey, ShouldEqual, fixtures.OriginalTransactionKey)
	})

	Convey("No original transaction key for the order", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(fixtures.GetCheckoutSessionDB(""), nil)

		key, responseType, err := service.OriginalTransactionKey(ctx, fixtures.QuoteID, "000000099")
		So(key, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(err.Error(), ShouldEqual, "no transaction key stored for order [000000099]")
	})

	Convey("Error loading the session", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, errors.New("timeout"))

		_, responseType, err := service.OriginalTransactionKey(ctx, fixtures.QuoteID, fixtures.OrderIncrementID)
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})

	Convey("Amount already paid for an order", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(fixtures.GetCheckoutSessionDB(""), nil)

		paid, responseType, err := service.AlreadyPaid(ctx, fixtures.QuoteID, fixtures.OrderIncrementID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(paid.AlreadyPaid.Equal(decimal.NewFromInt(25)), ShouldBeTrue)
	})

	Convey("Nothing paid for the order", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)

		_, responseType, err := service.AlreadyPaid(ctx, fixtures.QuoteID, fixtures.OrderIncrementID)
		So(responseType, ShouldEqual, NotFound)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitCheckoutServiceOrderID(t *testing.T) {
	ctx := context.Background()

	Convey("Reserved order id is returned without touching the sequence", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(fixtures.GetCheckoutSessionDB("000000042"), nil)

		orderID, responseType, err := service.OrderID(ctx, fixtures.QuoteID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(orderID, ShouldResemble, &models.OrderIDRest{QuoteID: fixtures.QuoteID, OrderID: "000000042"})
	})

	Convey("Order id is reserved and the session saved", t, func() {
		service, mockDao := createMockCheckoutService(t)
		gomock.InOrder(
			mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil),
			mockDao.EXPECT().NextOrderSequence(ctx).Return(int64(45), nil),
			mockDao.EXPECT().UpsertCheckoutSession(ctx, &models.CheckoutSessionDB{QuoteID: fixtures.QuoteID, ReservedOrderID: "000000045"}).Return(nil),
		)

		orderID, responseType, err := service.OrderID(ctx, fixtures.QuoteID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(orderID.OrderID, ShouldEqual, "000000045")
	})

	Convey("Error saving the reserved order id", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)
		mockDao.EXPECT().NextOrderSequence(ctx).Return(int64(45), nil)
		mockDao.EXPECT().UpsertCheckoutSession(ctx, gomock.Any()).Return(errors.New("timeout"))

		orderID, responseType, err := service.OrderID(ctx, fixtures.QuoteID)
		So(orderID, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldStartWith, "error saving quote: ")
	})
}

func TestUnitCheckoutServiceIsGroupTransaction(t *testing.T) {
	ctx := context.Background()

	Convey("Order of the quote is paid with a group transaction", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(fixtures.GetCheckoutSessionDB("000000042"), nil)
		mockDao.EXPECT().CountGroupTransactions(ctx, "000000042").Return(int64(2), nil)

		status, responseType, err := service.IsGroupTransaction(ctx, fixtures.QuoteID)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(status, ShouldResemble, &models.GroupTransactionStatusRest{QuoteID: fixtures.QuoteID, OrderID: "000000042", GroupTransaction: true})
	})

	Convey("Error counting group transactions", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(fixtures.GetCheckoutSessionDB("000000042"), nil)
		mockDao.EXPECT().CountGroupTransactions(ctx, "000000042").Return(int64(0), errors.New("timeout"))

		status, responseType, err := service.IsGroupTransaction(ctx, fixtures.QuoteID)
		So(status, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitCheckoutServiceRecord(t *testing.T) {
	ctx := context.Background()

	Convey("Payment without transaction key is invalid", t, func() {
		service, _ := createMockCheckoutService(t)

		responseType, err := service.RecordPayment(ctx, fixtures.QuoteID, fixtures.OrderIncrementID, models.CheckoutPaymentRest{AlreadyPaid: decimal.NewFromInt(5)})
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Negative paid amount is invalid", t, func() {
		service, _ := createMockCheckoutService(t)

		responseType, err := service.RecordPayment(ctx, fixtures.QuoteID, fixtures.OrderIncrementID, models.CheckoutPaymentRest{
			OriginalTransactionKey: fixtures.OriginalTransactionKey,
			AlreadyPaid:            decimal.NewFromInt(-5),
		})
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "invalid checkout payment: [already_paid must not be negative]")
	})

	Convey("Payment is recorded on the stored session", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(&models.CheckoutSessionDB{QuoteID: fixtures.QuoteID, ReservedOrderID: "000000042"}, nil)
		mockDao.EXPECT().UpsertCheckoutSession(ctx, &models.CheckoutSessionDB{
			QuoteID:                 fixtures.QuoteID,
			ReservedOrderID:         "000000042",
			OriginalTransactionKeys: map[string]string{"000000042": fixtures.OriginalTransactionKey},
			AlreadyPaid:             map[string]string{"000000042": "5"},
		}).Return(nil)

		responseType, err := service.RecordPayment(ctx, fixtures.QuoteID, "000000042", models.CheckoutPaymentRest{
			OriginalTransactionKey: fixtures.OriginalTransactionKey,
			AlreadyPaid:            decimal.NewFromInt(5),
		})
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Group transaction without order id is invalid", t, func() {
		service, _ := createMockCheckoutService(t)

		_, responseType, err := service.RecordGroupTransaction(ctx, fixtures.OriginalTransactionKey, models.GroupTransactionRest{})
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Group transaction is stored under its transaction key", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().UpsertGroupTransaction(ctx, &models.GroupTransactionDB{
			TransactionKey: fixtures.OriginalTransactionKey,
			OrderID:        fixtures.OrderIncrementID,
			Method:         "giftcard",
			Amount:         "10",
		}).Return(nil)

		groupTransaction, responseType, err := service.RecordGroupTransaction(ctx, fixtures.OriginalTransactionKey, models.GroupTransactionRest{
			OrderID: fixtures.OrderIncrementID,
			Method:  "giftcard",
			Amount:  decimal.NewFromInt(10),
		})
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(groupTransaction.TransactionKey, ShouldEqual, fixtures.OriginalTransactionKey)
	})

	Convey("Error storing group transaction", t, func() {
		service, mockDao := createMockCheckoutService(t)
		mockDao.EXPECT().UpsertGroupTransaction(ctx, gomock.Any()).Return(errors.New("timeout"))

		_, responseType, err := service.RecordGroupTransaction(ctx, fixtures.OriginalTransactionKey, models.GroupTransactionRest{OrderID: fixtures.OrderIncrementID})
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error writing group transaction to database: [timeout]")
	})
}
