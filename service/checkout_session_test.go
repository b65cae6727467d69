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

func TestUnitStoredCheckoutSession(t *testing.T) {
	ctx := context.Background()

	Convey("Error reading the session", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, errors.New("timeout"))

		session, err := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		So(session, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error getting checkout session for quote [1042]: [timeout]")
	})

	Convey("Quote without stored state gets an empty session", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)

		session, err := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		So(err, ShouldBeNil)
		So(session.OriginalTransactionKeys(), ShouldBeEmpty)
		So(session.BuckarooAlreadyPaid(), ShouldBeEmpty)
		So(session.Quote().ReservedOrderID(), ShouldEqual, "")
	})

	Convey("Stored state is exposed", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		stored := fixtures.GetCheckoutSessionDB("000000042")
		stored.AlreadyPaid["000000043"] = "not an amount"
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(stored, nil)

		session, err := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		So(err, ShouldBeNil)
		So(session.OriginalTransactionKeys()[fixtures.OrderIncrementID], ShouldEqual, fixtures.OriginalTransactionKey)
		So(session.BuckarooAlreadyPaid(), ShouldHaveLength, 1)
		So(session.BuckarooAlreadyPaid()[fixtures.OrderIncrementID].Equal(decimal.NewFromInt(25)), ShouldBeTrue)
		So(session.Quote().ReservedOrderID(), ShouldEqual, "000000042")
	})

	Convey("Reserved order id is zero padded from the sequence and saved", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)
		mockDao.EXPECT().NextOrderSequence(ctx).Return(int64(44), nil)
		mockDao.EXPECT().UpsertCheckoutSession(ctx, &models.CheckoutSessionDB{QuoteID: fixtures.QuoteID, ReservedOrderID: "000000044"}).Return(nil)

		session, _ := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		quote := session.Quote()
		So(quote.ReserveOrderID(ctx), ShouldBeNil)
		So(quote.ReservedOrderID(), ShouldEqual, "000000044")
		So(quote.Save(ctx), ShouldBeNil)
	})

	Convey("Error reading the sequence", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)
		mockDao.EXPECT().NextOrderSequence(ctx).Return(int64(0), errors.New("timeout"))

		session, _ := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		quote := session.Quote()
		So(quote.ReserveOrderID(ctx), ShouldNotBeNil)
		So(quote.ReservedOrderID(), ShouldEqual, "")
	})

	Convey("Recorded payment is saved with the session", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)
		mockDao.EXPECT().UpsertCheckoutSession(ctx, &models.CheckoutSessionDB{
			QuoteID:                 fixtures.QuoteID,
			OriginalTransactionKeys: map[string]string{fixtures.OrderIncrementID: fixtures.OriginalTransactionKey},
			AlreadyPaid:             map[string]string{fixtures.OrderIncrementID: "12.5"},
		}).Return(nil)

		session, _ := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		err := session.RecordPayment(ctx, fixtures.OrderIncrementID, fixtures.OriginalTransactionKey, decimal.RequireFromString("12.50"))
		So(err, ShouldBeNil)
	})

	Convey("Error saving the session", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().GetCheckoutSession(ctx, fixtures.QuoteID).Return(nil, nil)
		mockDao.EXPECT().UpsertCheckoutSession(ctx, gomock.Any()).Return(errors.New("duplicate key"))

		session, _ := LoadCheckoutSession(ctx, mockDao, fixtures.QuoteID)
		err := session.RecordPayment(ctx, fixtures.OrderIncrementID, fixtures.OriginalTransactionKey, decimal.NewFromInt(1))
		So(err.Error(), ShouldEqual, "error writing checkout session for quote [1042]: [duplicate key]")
	})
}

func TestUnitStoredGroupTransactions(t *testing.T) {
	ctx := context.Background()

	Convey("Order with group transactions", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CountGroupTransactions(ctx, fixtures.OrderIncrementID).Return(int64(2), nil)

		isGroup, err := (&StoredGroupTransactions{DAO: mockDao}).IsGroupTransaction(ctx, fixtures.OrderIncrementID)
		So(err, ShouldBeNil)
		So(isGroup, ShouldBeTrue)
	})

	Convey("Order without group transactions", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CountGroupTransactions(ctx, fixtures.OrderIncrementID).Return(int64(0), nil)

		isGroup, err := (&StoredGroupTransactions{DAO: mockDao}).IsGroupTransaction(ctx, fixtures.OrderIncrementID)
		So(err, ShouldBeNil)
		So(isGroup, ShouldBeFalse)
	})

	Convey("Error counting group transactions", t, func() {
		mockDao := dao.NewMockDAO(gomock.NewController(t))
		mockDao.EXPECT().CountGroupTransactions(ctx, fixtures.OrderIncrementID).Return(int64(0), errors.New("timeout"))

		_, err := (&StoredGroupTransactions{DAO: mockDao}).IsGroupTransaction(ctx, fixtures.OrderIncrementID)
		So(err.Error(), ShouldEqual, "error counting group transactions for order [000000042]: [timeout]")
	})
}
