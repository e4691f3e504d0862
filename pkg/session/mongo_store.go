package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	mongoSessionsCollection = "sessions"
	mongoUsersCollection    = "users"
)

// MongoStore keeps sessions in the "sessions" collection and joins the
// "users" collection with $lookup on read. User ids are stored as strings.
type MongoStore struct {
	sessions *mongo.Collection
	users    string
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		sessions: db.Collection(mongoSessionsCollection),
		users:    mongoUsersCollection,
	}
}

type mongoSession struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type mongoSessionUser struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type mongoSessionWithUser struct {
	mongoSession `bson:",inline"`
	User         mongoSessionUser `bson:"user"`
}

func (s *MongoStore) Insert(ctx context.Context, sess Session) error {
	_, err := s.sessions.InsertOne(ctx, mongoSession{
		ID:        sess.ID,
		UserID:    sess.UserID.String(),
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSession
		}
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*Session, *User, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: s.users},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$limit", Value: 1}},
	}

	cur, err := s.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, nil, errors.Join(ErrStore, err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, nil, errors.Join(ErrStore, err)
		}
		return nil, nil, ErrSessionNotFound
	}

	var doc mongoSessionWithUser
	if err := cur.Decode(&doc); err != nil {
		return nil, nil, errors.Join(ErrStore, err)
	}

	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, nil, errors.Join(ErrStore, err)
	}

	sess := &Session{ID: doc.ID, UserID: userID, ExpiresAt: doc.ExpiresAt}
	user := &User{
		ID:        userID,
		Email:     doc.User.Email,
		Name:      doc.User.Name,
		CreatedAt: doc.User.CreatedAt,
		UpdatedAt: doc.User.UpdatedAt,
	}
	return sess, user, nil
}

func (s *MongoStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	_, err := s.sessions.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "expires_at", Value: expiresAt}}}},
	)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.sessions.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}
