package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const emailIndexName = "email_unique"

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository]. Users are stored one document per account in the
// "users" collection; a unique index on "email" enforces uniqueness.
type mongoUserRepository struct {
	client *mongo.Client
	users  *mongo.Collection
	schema *schemaGate
	logger *logger.Logger
	ids    IDGenerator
	now    func() time.Time
}

// NewConnectMongo creates a MongoDB client for cfg.DSN. The driver connects
// lazily, so an unreachable server is not an error here; the unique email
// index is created on the first successful contact.
func NewConnectMongo(cfg config.DB, log *logger.Logger) (*mongoUserRepository, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	r := &mongoUserRepository{
		client: client,
		users:  client.Database(cfg.Name).Collection(models.User{}.TableName()),
		logger: log,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
	r.schema = newSchemaGate(r.ensureIndexes)

	return r, nil
}

func (r *mongoUserRepository) ensureIndexes(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return fmt.Errorf("error creating email index: %w", err)
	}

	r.logger.Info().Str("database", r.users.Database().Name()).Msg("email index is in place")
	return nil
}

// CreateUser implements [UserRepository].
func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.schema.ensure(ctx); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("store is not ready")
		return models.User{}, err
	}

	user.UserID = r.ids.Generate()
	user.Email = NormalizeEmail(user.Email)
	user.CreatedAt = r.now().UTC().Truncate(time.Millisecond)

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, mapMongoError(err)
	}

	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.schema.ensure(ctx); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.FindUserByEmail").Msg("store is not ready")
		return nil, err
	}

	var user models.User
	err := r.users.FindOne(ctx, bson.D{{Key: "email", Value: NormalizeEmail(email)}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Err(err).Str("func", "*mongoUserRepository.FindUserByEmail").Msg("error finding user")
		return nil, mapMongoError(err)
	}

	return &user, nil
}

// Ping implements [HealthChecker]. A missing email index is created first.
func (r *mongoUserRepository) Ping(ctx context.Context) error {
	if err := r.schema.ensure(ctx); err != nil {
		return err
	}
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close disconnects the client.
func (r *mongoUserRepository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

func mapMongoError(err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return ErrEmailAlreadyExists
	case errors.Is(err, context.DeadlineExceeded),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err),
		errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
