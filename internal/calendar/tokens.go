package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/oauth2"

	"planfit/pkg/config"
	"planfit/pkg/sealer"
)

const tokensCollection = "calendar_tokens"

// TokenStore persists per-user OAuth tokens. Get returns ErrNotAuthorized
// when the user has never authorized (or revoked) calendar access.
type TokenStore interface {
	Get(ctx context.Context, userID int64) (*oauth2.Token, error)
	Save(ctx context.Context, userID int64, tok *oauth2.Token) error
	Delete(ctx context.Context, userID int64) error
}

type storedToken struct {
	UserID    int64     `bson:"_id"`
	Sealed    string    `bson:"sealed_token"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type mongoTokenStore struct {
	collection *mongo.Collection
	sealer     *sealer.Sealer
}

// NewMongoTokenStore stores tokens sealed with AES-GCM; the seal key comes
// from configuration.
func NewMongoTokenStore(cfg *config.Config) (TokenStore, error) {
	s, err := sealer.New(cfg.TokenSealKey)
	if err != nil {
		return nil, err
	}

	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTokenStore{
		collection: db.Collection(tokensCollection),
		sealer:     s,
	}, nil
}

func (s *mongoTokenStore) Get(ctx context.Context, userID int64) (*oauth2.Token, error) {
	var doc storedToken
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotAuthorized
		}
		return nil, err
	}

	raw, err := s.sealer.Unseal(doc.Sealed)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (s *mongoTokenStore) Save(ctx context.Context, userID int64, tok *oauth2.Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return err
	}

	sealed, err := s.sealer.Seal(raw)
	if err != nil {
		return err
	}

	_, err = s.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"sealed_token": sealed,
			"updated_at":   time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *mongoTokenStore) Delete(ctx context.Context, userID int64) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
