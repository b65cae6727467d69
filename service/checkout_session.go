package service

import (
	"context"
	"fmt"

	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
)

// StoredCheckoutSession is the checkout session of a quote as kept in the
// checkout store.
type StoredCheckoutSession struct {
	DAO  dao.DAO
	data models.CheckoutSessionDB
}

// LoadCheckoutSession reads the checkout session of a quote. A quote without
// stored state gets an empty session.
func LoadCheckoutSession(ctx context.Context, d dao.DAO, quoteID string) (*StoredCheckoutSession, error) {
	session, err := d.GetCheckoutSession(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("error getting checkout session for quote [%s]: [%w]", quoteID, err)
	}
	if session == nil {
		session = &models.CheckoutSessionDB{QuoteID: quoteID}
	}

	return &StoredCheckoutSession{DAO: d, data: *session}, nil
}

// OriginalTransactionKeys returns the Buckaroo transaction keys by order id.
func (s *StoredCheckoutSession) OriginalTransactionKeys() map[string]string {
	return s.data.OriginalTransactionKeys
}

// BuckarooAlreadyPaid returns the amounts paid through Buckaroo by order id.
// Amounts that are not valid decimals are skipped.
func (s *StoredCheckoutSession) BuckarooAlreadyPaid() map[string]decimal.Decimal {
	paid := make(map[string]decimal.Decimal, len(s.data.AlreadyPaid))
	for orderID, amount := range s.data.AlreadyPaid {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			log.Error(fmt.Errorf("invalid already paid amount stored: [%v]", err), log.Data{"quote_id": s.data.QuoteID, "order_id": orderID})
			continue
		}
		paid[orderID] = value
	}
	return paid
}

// Quote returns the quote of the session.
func (s *StoredCheckoutSession) Quote() Quote {
	return &storedQuote{session: s}
}

// RecordPayment stores the transaction key and the amount paid for an order
// and saves the session.
func (s *StoredCheckoutSession) RecordPayment(ctx context.Context, orderID, transactionKey string, alreadyPaid decimal.Decimal) error {
	if s.data.OriginalTransactionKeys == nil {
		s.data.OriginalTransactionKeys = make(map[string]string)
	}
	if s.data.AlreadyPaid == nil {
		s.data.AlreadyPaid = make(map[string]string)
	}

	s.data.OriginalTransactionKeys[orderID] = transactionKey
	s.data.AlreadyPaid[orderID] = alreadyPaid.String()

	return s.save(ctx)
}

func (s *StoredCheckoutSession) save(ctx context.Context) error {
	if err := s.DAO.UpsertCheckoutSession(ctx, &s.data); err != nil {
		return fmt.Errorf("error writing checkout session for quote [%s]: [%w]", s.data.QuoteID, err)
	}
	return nil
}

type storedQuote struct {
	session *StoredCheckoutSession
}

func (q *storedQuote) ReservedOrderID() string {
	return q.session.data.ReservedOrderID
}

func (q *storedQuote) ReserveOrderID(ctx context.Context) error {
	sequence, err := q.session.DAO.NextOrderSequence(ctx)
	if err != nil {
		return err
	}

	q.session.data.ReservedOrderID = formatOrderID(sequence)
	return nil
}

func (q *storedQuote) Save(ctx context.Context) error {
	return q.session.save(ctx)
}

// increment ids are zero padded to nine digits
func formatOrderID(sequence int64) string {
	return fmt.Sprintf("%09d", sequence)
}

// StoredGroupTransactions checks orders against the group transaction store.
type StoredGroupTransactions struct {
	DAO dao.DAO
}

// IsGroupTransaction reports whether any group transaction is stored for the
// order.
func (g *StoredGroupTransactions) IsGroupTransaction(ctx context.Context, orderID string) (bool, error) {
	count, err := g.DAO.CountGroupTransactions(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("error counting group transactions for order [%s]: [%w]", orderID, err)
	}
	return count > 0, nil
}
