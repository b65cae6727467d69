package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) (*mongo.Client, error) {
	if client != nil {
		return client, nil
	}

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: [%w]", err)
	}

	client = mongoClient
	return client, nil
}

// Ping checks that the mongodb instance is reachable.
func Ping(ctx context.Context, timeout time.Duration) error {
	if client == nil {
		return errors.New("mongodb client not initialised")
	}

	pingContext, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingContext, nil); err != nil {
		return fmt.Errorf("error pinging mongodb: [%w]", err)
	}

	log.Info("connected to mongodb successfully")
	return nil
}

// Disconnect closes the mongodb client, if one was created.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}

	err := client.Disconnect(ctx)
	client = nil
	return err
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// MongoService is an implementation of the DAO interface using MongoDB
type MongoService struct {
	db                     MongoDatabaseInterface
	CollectionName         string
	CheckoutCollectionName string
	GroupTxCollectionName  string
	CounterCollectionName  string
}

// GetMethodConfig gets the configuration of a payment method from the DB.
// If the method is not found in the DB, nil is returned.
func (m *MongoService) GetMethodConfig(ctx context.Context, method string) (*models.MethodConfigDB, error) {
	var resource models.MethodConfigDB

	collection := m.db.Collection(m.CollectionName)
	err := collection.FindOne(ctx, bson.M{"_id": method}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no config found for payment method", log.Data{"payment_method": method})
			return nil, nil
		}

		log.Error(err, log.Data{"payment_method": method})
		return nil, err
	}

	return &resource, nil
}

// UpsertMethodConfig writes the configuration of a payment method to the DB,
// replacing any existing document.
func (m *MongoService) UpsertMethodConfig(ctx context.Context, methodConfig *models.MethodConfigDB) error {
	collection := m.db.Collection(m.CollectionName)

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": methodConfig.Method}, methodConfig, opts)
	if err != nil {
		log.Error(err, log.Data{"payment_method": methodConfig.Method})
		return err
	}

	return nil
}
