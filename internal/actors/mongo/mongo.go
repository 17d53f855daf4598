package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Env is the execution environment of the mongo UserService.
type Env interface {
	// UserCollection returns the collection holding the users.
	UserCollection() *mongo.Collection
}

// Collection is an Env backed by a mongo collection handle.
type Collection struct {
	// Users is the users collection.
	Users *mongo.Collection
}

// UserCollection returns the wrapped collection.
func (c Collection) UserCollection() *mongo.Collection {
	return c.Users
}

// UserService is a mongo implementation of ports.UserService. Update and delete
// are single-document atomic operations. BSON dates keep milliseconds, so stored
// timestamps are truncated to milliseconds.
type UserService struct {
	nowFunc func() time.Time
	idFunc  func() (uuid.UUID, error)
}

// UserServiceOptArgs are the optional arguments for building a UserService
type UserServiceOptArgs = func(*UserService)

// WithNowFunc can be used to override the nowFunc. Useful for testing.
func WithNowFunc(nowFunc func() time.Time) UserServiceOptArgs {
	return func(s *UserService) {
		s.nowFunc = nowFunc
	}
}

// WithIDFunc overrides how fresh user ids are generated.
func WithIDFunc(idFunc func() (uuid.UUID, error)) UserServiceOptArgs {
	return func(s *UserService) {
		s.idFunc = idFunc
	}
}

// NewUserService creates a new mongo UserService.
func NewUserService(optArgs ...UserServiceOptArgs) *UserService {
	s := &UserService{nowFunc: func() time.Time { return time.Now().UTC() }, idFunc: model.NewUserID}
	for _, opt := range optArgs {
		opt(s)
	}
	return s
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, env Env, args model.GetUserArgs) (*model.User, error) {
	return findUser(ctx, env.UserCollection(), args.ID, "get user")
}

// CreateUser inserts a user with a fresh id and reads back the stored document.
func (s *UserService) CreateUser(ctx context.Context, env Env, args model.CreateUserArgs) (*model.User, error) {
	id, err := s.idFunc()
	if err != nil {
		return nil, model.Internal(err, "create user")
	}
	now := s.now()
	doc := userDB{ID: id.String(), Name: args.Name, CreatedAt: now, UpdatedAt: now}
	if _, err := env.UserCollection().InsertOne(ctx, doc); err != nil {
		return nil, model.Internal(fmt.Errorf("error inserting user: %w", err), "create user")
	}
	return findUser(ctx, env.UserCollection(), id, "create user")
}

// UpdateUser renames the user and moves updated_at forward by at least one millisecond.
func (s *UserService) UpdateUser(ctx context.Context, env Env, args model.UpdateUserArgs) (*model.User, error) {
	_, updated, err := s.UpdateUserTracked(ctx, env, args)
	return updated, err
}

// UpdateUserTracked renames the user in one atomic document update. The replaced
// document is returned by the server; the new state is derived from it with the
// same rule the pipeline applies.
func (s *UserService) UpdateUserTracked(ctx context.Context, env Env, args model.UpdateUserArgs) (*model.User, *model.User, error) {
	now := s.now()
	// pipeline stages evaluate strings starting with $ as expressions
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "name", Value: bson.D{{Key: "$literal", Value: args.Name}}},
			{Key: "updated_at", Value: bson.D{{Key: "$max", Value: bson.A{
				now,
				bson.D{{Key: "$add", Value: bson.A{"$updated_at", 1}}},
			}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	doc := new(userDB)
	err := env.UserCollection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: args.ID.String()}}, update, opts).Decode(doc)
	if err != nil {
		return nil, nil, findErr(err, "update user")
	}
	before, err := translateDBToModel(doc, "update user")
	if err != nil {
		return nil, nil, err
	}

	after := *before
	after.Name = args.Name
	after.UpdatedAt = before.UpdatedAt.Add(time.Millisecond)
	if now.After(after.UpdatedAt) {
		after.UpdatedAt = now
	}
	return before, &after, nil
}

// DeleteUser removes the user and returns the document as it was before the deletion.
func (s *UserService) DeleteUser(ctx context.Context, env Env, args model.DeleteUserArgs) (*model.User, error) {
	doc := new(userDB)
	err := env.UserCollection().FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: args.ID.String()}}).Decode(doc)
	if err != nil {
		return nil, findErr(err, "delete user")
	}
	return translateDBToModel(doc, "delete user")
}

func (s *UserService) now() time.Time {
	return s.nowFunc().UTC().Truncate(time.Millisecond)
}

func findUser(ctx context.Context, collection *mongo.Collection, id uuid.UUID, op string) (*model.User, error) {
	doc := new(userDB)
	if err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(doc); err != nil {
		return nil, findErr(err, op)
	}
	return translateDBToModel(doc, op)
}

func findErr(err error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.RejectNotFound("user not found")
	}
	return model.Internal(fmt.Errorf("error finding user: %w", err), op)
}

func translateDBToModel(doc *userDB, op string) (*model.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, model.Internal(fmt.Errorf("error decoding stored user id %q: %w", doc.ID, err), op)
	}
	return &model.User{
		ID:        id,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
	}, nil
}

type userDB struct {
	// ID unique identifier of the user, in canonical UUID string form.
	ID string `bson:"_id"`

	// Name is the user display name.
	Name string `bson:"name"`

	// CreatedAt is the time at which the user was created in the system.
	CreatedAt time.Time `bson:"created_at"`

	// UpdatedAt is the time at which the user was last updated
	UpdatedAt time.Time `bson:"updated_at"`
}
