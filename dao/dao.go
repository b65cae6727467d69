package dao

import (
	"context"

	"github.com/buckaroo/buckaroo-payments.api/config"
	"github.com/buckaroo/buckaroo-payments.api/models"
)

// DAO is an interface for accessing payment method configuration and checkout
// state from a backend store
type DAO interface {
	GetMethodConfig(ctx context.Context, method string) (*models.MethodConfigDB, error)
	UpsertMethodConfig(ctx context.Context, methodConfig *models.MethodConfigDB) error
	GetCheckoutSession(ctx context.Context, quoteID string) (*models.CheckoutSessionDB, error)
	UpsertCheckoutSession(ctx context.Context, session *models.CheckoutSessionDB) error
	NextOrderSequence(ctx context.Context) (int64, error)
	UpsertGroupTransaction(ctx context.Context, groupTransaction *models.GroupTransactionDB) error
	CountGroupTransactions(ctx context.Context, orderID string) (int64, error)
}

// NewDAO will create a new instance of the DAO interface.
func NewDAO(cfg *config.Config) (DAO, error) {
	mongoClient, err := getMongoClient(cfg.MongoDBURL)
	if err != nil {
		return nil, err
	}

	return &MongoService{
		db:                     mongoClient.Database(cfg.Database),
		CollectionName:         cfg.MethodConfigCollection,
		CheckoutCollectionName: cfg.CheckoutCollection,
		GroupTxCollectionName:  cfg.GroupTxCollection,
		CounterCollectionName:  cfg.CounterCollection,
	}, nil
}
