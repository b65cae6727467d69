package dao

import (
	"context"
	"errors"

	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const orderSequenceID = "order_increment_id"

type sequenceDB struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// GetCheckoutSession gets the checkout state of a quote from the DB.
// If the quote has no state yet, nil is returned.
func (m *MongoService) GetCheckoutSession(ctx context.Context, quoteID string) (*models.CheckoutSessionDB, error) {
	var resource models.CheckoutSessionDB

	collection := m.db.Collection(m.CheckoutCollectionName)
	err := collection.FindOne(ctx, bson.M{"_id": quoteID}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no checkout session found", log.Data{"quote_id": quoteID})
			return nil, nil
		}

		log.Error(err, log.Data{"quote_id": quoteID})
		return nil, err
	}

	return &resource, nil
}

// UpsertCheckoutSession writes the checkout state of a quote to the DB,
// replacing any existing document.
func (m *MongoService) UpsertCheckoutSession(ctx context.Context, session *models.CheckoutSessionDB) error {
	collection := m.db.Collection(m.CheckoutCollectionName)

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": session.QuoteID}, session, opts)
	if err != nil {
		log.Error(err, log.Data{"quote_id": session.QuoteID})
		return err
	}

	return nil
}

// NextOrderSequence increments and returns the order increment id sequence.
// The sequence starts at 1 when no counter is stored yet.
func (m *MongoService) NextOrderSequence(ctx context.Context) (int64, error) {
	var sequence sequenceDB

	collection := m.db.Collection(m.CounterCollectionName)

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderSequenceID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&sequence)
	if err != nil {
		log.Error(err, log.Data{"counter": orderSequenceID})
		return 0, err
	}

	return sequence.Seq, nil
}

// UpsertGroupTransaction writes one transaction of a group transaction to
// the DB, keyed by its transaction key.
func (m *MongoService) UpsertGroupTransaction(ctx context.Context, groupTransaction *models.GroupTransactionDB) error {
	collection := m.db.Collection(m.GroupTxCollectionName)

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": groupTransaction.TransactionKey}, groupTransaction, opts)
	if err != nil {
		log.Error(err, log.Data{"transaction_key": groupTransaction.TransactionKey, "order_id": groupTransaction.OrderID})
		return err
	}

	return nil
}

// CountGroupTransactions returns the number of group transactions stored for
// an order.
func (m *MongoService) CountGroupTransactions(ctx context.Context, orderID string) (int64, error) {
	collection := m.db.Collection(m.GroupTxCollectionName)

	count, err := collection.CountDocuments(ctx, bson.M{"order_id": orderID})
	if err != nil {
		log.Error(err, log.Data{"order_id": orderID})
		return 0, err
	}

	return count, nil
}
