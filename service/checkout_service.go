package service

import (
	"context"
	"fmt"

	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/transformers"
	"github.com/companieshouse/chs.go/log"
)

// CheckoutService serves the Buckaroo checkout state of quotes to the host
type CheckoutService struct {
	DAO dao.DAO
}

func (service *CheckoutService) loadHelper(ctx context.Context, quoteID string) (*CheckoutHelper, *StoredCheckoutSession, error) {
	session, err := LoadCheckoutSession(ctx, service.DAO, quoteID)
	if err != nil {
		return nil, nil, err
	}

	helper := &CheckoutHelper{
		Session:           session,
		GroupTransactions: &StoredGroupTransactions{DAO: service.DAO},
	}
	return helper, session, nil
}

// OriginalTransactionKey returns the transaction key stored for an order of the quote
func (service *CheckoutService) OriginalTransactionKey(ctx context.Context, quoteID, orderID string) (*models.OriginalTransactionKeyRest, ResponseType, error) {
	helper, _, err := service.loadHelper(ctx, quoteID)
	if err != nil {
		return nil, Error, err
	}

	key, ok := helper.OriginalTransactionKey(orderID)
	if !ok {
		return nil, NotFound, fmt.Errorf("no transaction key stored for order [%s]", orderID)
	}

	return &models.OriginalTransactionKeyRest{OrderID: orderID, OriginalTransactionKey: key}, Success, nil
}

// AlreadyPaid returns the amount already paid through Buckaroo for an order of the quote
func (service *CheckoutService) AlreadyPaid(ctx context.Context, quoteID, orderID string) (*models.AlreadyPaidRest, ResponseType, error) {
	helper, _, err := service.loadHelper(ctx, quoteID)
	if err != nil {
		return nil, Error, err
	}

	amount, ok := helper.AlreadyPaid(orderID)
	if !ok {
		return nil, NotFound, fmt.Errorf("no payment stored for order [%s]", orderID)
	}

	return &models.AlreadyPaidRest{OrderID: orderID, AlreadyPaid: amount}, Success, nil
}

// OrderID returns the order id reserved for the quote, reserving one if needed
func (service *CheckoutService) OrderID(ctx context.Context, quoteID string) (*models.OrderIDRest, ResponseType, error) {
	helper, _, err := service.loadHelper(ctx, quoteID)
	if err != nil {
		return nil, Error, err
	}

	orderID, err := helper.OrderID(ctx)
	if err != nil {
		return nil, Error, err
	}

	return &models.OrderIDRest{QuoteID: quoteID, OrderID: orderID}, Success, nil
}

// IsGroupTransaction reports whether the order of the quote is paid with a group transaction
func (service *CheckoutService) IsGroupTransaction(ctx context.Context, quoteID string) (*models.GroupTransactionStatusRest, ResponseType, error) {
	helper, _, err := service.loadHelper(ctx, quoteID)
	if err != nil {
		return nil, Error, err
	}

	orderID, err := helper.OrderID(ctx)
	if err != nil {
		return nil, Error, err
	}

	isGroup, err := helper.IsGroupTransaction(ctx)
	if err != nil {
		return nil, Error, err
	}

	return &models.GroupTransactionStatusRest{QuoteID: quoteID, OrderID: orderID, GroupTransaction: isGroup}, Success, nil
}

// RecordPayment stores the transaction key and paid amount of an order of the quote
func (service *CheckoutService) RecordPayment(ctx context.Context, quoteID, orderID string, payment models.CheckoutPaymentRest) (ResponseType, error) {
	err := validate.Struct(payment)
	if err != nil {
		return InvalidData, fmt.Errorf("invalid checkout payment: [%v]", err)
	}
	if payment.AlreadyPaid.IsNegative() {
		return InvalidData, fmt.Errorf("invalid checkout payment: [already_paid must not be negative]")
	}

	_, session, err := service.loadHelper(ctx, quoteID)
	if err != nil {
		return Error, err
	}

	err = session.RecordPayment(ctx, orderID, payment.OriginalTransactionKey, payment.AlreadyPaid)
	if err != nil {
		return Error, err
	}

	log.Info("checkout payment recorded", log.Data{"quote_id": quoteID, "order_id": orderID})

	return Success, nil
}

// RecordGroupTransaction stores one transaction of a group transaction
func (service *CheckoutService) RecordGroupTransaction(ctx context.Context, transactionKey string, groupTransaction models.GroupTransactionRest) (*models.GroupTransactionRest, ResponseType, error) {
	groupTransaction.TransactionKey = transactionKey
	err := validate.Struct(groupTransaction)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid group transaction: [%v]", err)
	}

	groupTransactionDB := transformers.GroupTransactionTransformer{}.TransformToDB(groupTransaction)
	err = service.DAO.UpsertGroupTransaction(ctx, &groupTransactionDB)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing group transaction to database: [%v]", err)
	}

	log.Info("group transaction stored", log.Data{"transaction_key": transactionKey, "order_id": groupTransaction.OrderID})

	return &groupTransaction, Success, nil
}
