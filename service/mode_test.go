package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/golang/mock/gomock"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitModeResolver(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockAccount := NewMockAccountConfigProvider(mockCtrl)
	mockFactory := NewMockMethodConfigFactory(mockCtrl)
	mockProvider := NewMockMethodConfigProvider(mockCtrl)

	resolver := ModeResolver{
		Account: mockAccount,
		Methods: mockFactory,
	}
	ctx := context.Background()

	Convey("Account mode returned when no payment method given", t, func() {
		mockAccount.EXPECT().ActiveMode(ctx).Return(models.ModeTest, nil)

		mode, err := resolver.Mode(ctx, "", "")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeTest)
	})

	Convey("Inactive account short circuits method lookup", t, func() {
		mockAccount.EXPECT().ActiveMode(ctx).Return(models.ModeInactive, nil)

		mode, err := resolver.Mode(ctx, "buckaroo_magento2_ideal", "nl")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeInactive)
	})

	Convey("Method mode returned for active account", t, func() {
		mockAccount.EXPECT().ActiveMode(ctx).Return(models.ModeLive, nil)
		mockFactory.EXPECT().Get("buckaroo_magento2_ideal").Return(mockProvider, nil)
		mockProvider.EXPECT().ActiveMode(ctx, "").Return(models.ModeTest, nil)

		mode, err := resolver.Mode(ctx, "buckaroo_magento2_ideal", "")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeTest)
	})

	Convey("Store is passed to the method provider", t, func() {
		mockAccount.EXPECT().ActiveMode(ctx).Return(models.ModeLive, nil)
		mockFactory.EXPECT().Get("buckaroo_magento2_ideal").Return(mockProvider, nil)
		mockProvider.EXPECT().ActiveMode(ctx, "nl").Return(models.ModeLive, nil)

		mode, err := resolver.Mode(ctx, "buckaroo_magento2_ideal", "nl")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, models.ModeLive)
	})

	Convey("Unknown payment method error is surfaced", t, func() {
		mockAccount.EXPECT().ActiveMode(ctx).Return(models.ModeLive, nil)
		mockFactory.EXPECT().Get("unknown").Return(nil, ErrUnknownPaymentMethod)

		_, err := resolver.Mode(ctx, "unknown", "")
		So(errors.Is(err, ErrUnknownPaymentMethod), ShouldBeTrue)
	})

	Convey("Account error is surfaced", t, func() {
		mockAccount.EXPECT().ActiveMode(ctx).Return(models.ModeInactive, errors.New("config unavailable"))

		_, err := resolver.Mode(ctx, "", "")
		So(err.Error(), ShouldEqual, "error getting account mode: [config unavailable]")
	})
}
