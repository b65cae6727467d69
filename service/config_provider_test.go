package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buckaroo/buckaroo-payments.api/config"
	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/fixtures"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/golang/mock/gomock"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitAccountConfig(t *testing.T) {
	Convey("Account mode comes from config", t, func() {
		account := AccountConfig{Config: config.Config{ActiveMode: 2}}
		mode, err := account.ActiveMode(context.Background())
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeLive)
	})
}

func TestUnitMethodConfigRegistry(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	registry := NewMethodConfigRegistry(mockDao, []string{fixtures.IdealMethod})

	Convey("Registered method returns a provider", t, func() {
		provider, err := registry.Get(fixtures.IdealMethod)
		So(err, ShouldBeNil)
		So(provider, ShouldNotBeNil)
	})

	Convey("Unregistered method returns an error", t, func() {
		provider, err := registry.Get("buckaroo_magento2_unknown")
		So(provider, ShouldBeNil)
		So(errors.Is(err, ErrUnknownPaymentMethod), ShouldBeTrue)
		So(err.Error(), ShouldEqual, "no config provider registered for payment method: [buckaroo_magento2_unknown]")
	})
}

func TestUnitStoredMethodConfig(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	provider := StoredMethodConfig{DAO: mockDao, Method: fixtures.CreditCardMethod}
	ctx := context.Background()
	testMode := int(models.ModeTest)

	Convey("Method default mode without store", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).
			Return(fixtures.GetMethodConfigDB(fixtures.CreditCardMethod, 2, &testMode), nil)

		mode, err := provider.ActiveMode(ctx, "")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeLive)
	})

	Convey("Store override wins", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).
			Return(fixtures.GetMethodConfigDB(fixtures.CreditCardMethod, 2, &testMode), nil)

		mode, err := provider.ActiveMode(ctx, "nl")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeTest)
	})

	Convey("Store without override falls back to method default", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).
			Return(fixtures.GetMethodConfigDB(fixtures.CreditCardMethod, 2, &testMode), nil)

		mode, err := provider.ActiveMode(ctx, "be")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeLive)
	})

	Convey("Method without stored config is inactive", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).Return(nil, nil)

		mode, err := provider.ActiveMode(ctx, "nl")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeInactive)
	})

	Convey("Database error is surfaced", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).Return(nil, errors.New("timeout"))

		_, err := provider.ActiveMode(ctx, "")
		So(err.Error(), ShouldEqual, "error getting config for payment method [buckaroo_magento2_creditcard]: [timeout]")
	})

	Convey("Sorted credit cards prefer the store setting", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).
			Return(fixtures.GetMethodConfigDB(fixtures.CreditCardMethod, 2, &testMode), nil)

		sortOrder, err := provider.SortedCreditcards(ctx, "nl")
		So(err, ShouldBeNil)
		So(sortOrder, ShouldEqual, "mastercard,visa")
	})

	Convey("Sorted credit cards fall back to the method default", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).
			Return(fixtures.GetMethodConfigDB(fixtures.CreditCardMethod, 2, nil), nil)

		sortOrder, err := provider.SortedCreditcards(ctx, "nl")
		So(err, ShouldBeNil)
		So(sortOrder, ShouldEqual, "visa,mastercard,amex")
	})

	Convey("Sorted credit cards empty without stored config", t, func() {
		mockDao.EXPECT().GetMethodConfig(ctx, fixtures.CreditCardMethod).Return(nil, nil)

		sortOrder, err := provider.SortedCreditcards(ctx, "")
		So(err, ShouldBeNil)
		So(sortOrder, ShouldBeEmpty)
	})
}
