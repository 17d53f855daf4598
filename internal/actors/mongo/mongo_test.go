package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports/portstest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBTestSuite struct {
	suite.Suite
	db             *mongo.Client
	userCollection *mongo.Collection
	service        *UserService
}

var (
	dummyTime = time.Date(2024, 3, 1, 12, 0, 0, 987654321, time.UTC)
)

func (suite *MongoDBTestSuite) SetupSuite() {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		suite.T().Skip("MONGODB_URL not set")
	}

	clientOptions := options.Client().ApplyURI(url)
	db, err := mongo.Connect(context.Background(), clientOptions)
	suite.Require().NoError(err)
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	suite.Require().NoError(db.Ping(timeoutCtx, nil))

	suite.db = db
	suite.userCollection = db.Database("chatting").Collection("users")
	suite.service = NewUserService(WithNowFunc(func() time.Time { return dummyTime }))
}

func (suite *MongoDBTestSuite) SetupTest() {
	_, err := suite.userCollection.DeleteMany(context.Background(), bson.D{})
	suite.Require().NoError(err)
}

func (suite *MongoDBTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Disconnect(context.Background()))
	}
}

func (suite *MongoDBTestSuite) TestConformance() {
	portstest.RunUserService[Env](suite.T(), NewUserService(), Collection{Users: suite.userCollection})
}

func (suite *MongoDBTestSuite) TestCreateUser_StoresUUIDString() {
	env := Collection{Users: suite.userCollection}
	created, err := suite.service.CreateUser(context.Background(), env, model.CreateUserArgs{Name: "Jane"})
	suite.Require().NoError(err)
	suite.Equal(dummyTime.Truncate(time.Millisecond), created.CreatedAt)

	raw, err := suite.userCollection.FindOne(context.Background(), bson.D{{Key: "_id", Value: created.ID.String()}}).DecodeBytes()
	suite.Require().NoError(err)
	suite.Equal(created.ID.String(), raw.Lookup("_id").StringValue())
}

func (suite *MongoDBTestSuite) TestUpdateUser_FrozenClockAdvances() {
	env := Collection{Users: suite.userCollection}
	created, err := suite.service.CreateUser(context.Background(), env, model.CreateUserArgs{Name: "Jane"})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateUser(context.Background(), env, model.UpdateUserArgs{ID: created.ID, Name: "Janet"})
	suite.Require().NoError(err)
	suite.Equal("Janet", updated.Name)
	suite.Equal(created.UpdatedAt.Add(time.Millisecond), updated.UpdatedAt)
	suite.Equal(created.CreatedAt, updated.CreatedAt)
}

func (suite *MongoDBTestSuite) TestUpdateUser_NamesAreNotExpressions() {
	env := Collection{Users: suite.userCollection}
	created, err := suite.service.CreateUser(context.Background(), env, model.CreateUserArgs{Name: "Jane"})
	suite.Require().NoError(err)

	for _, name := range []string{"$name", "$_id", "$$NOW", "$$ROOT"} {
		before, after, err := suite.service.UpdateUserTracked(context.Background(), env, model.UpdateUserArgs{ID: created.ID, Name: name})
		suite.Require().NoError(err, name)
		suite.Equal(name, after.Name)

		raw, err := suite.userCollection.FindOne(context.Background(), bson.D{{Key: "_id", Value: created.ID.String()}}).DecodeBytes()
		suite.Require().NoError(err)
		suite.Equal(name, raw.Lookup("name").StringValue())

		got, err := suite.service.GetUser(context.Background(), env, model.GetUserArgs{ID: created.ID})
		suite.Require().NoError(err)
		suite.Equal(name, got.Name)
		suite.True(after.UpdatedAt.Equal(got.UpdatedAt))
		suite.True(before.UpdatedAt.Add(time.Millisecond).Equal(after.UpdatedAt))
	}
}

func (suite *MongoDBTestSuite) TestMissingUser() {
	env := Collection{Users: suite.userCollection}
	_, err := suite.service.UpdateUser(context.Background(), env, model.UpdateUserArgs{ID: uuid.New(), Name: "x"})
	portstest.RequireRejection(suite.T(), err, model.NotFound)
	_, err = suite.service.DeleteUser(context.Background(), env, model.DeleteUserArgs{ID: uuid.New()})
	portstest.RequireRejection(suite.T(), err, model.NotFound)
}

func TestMongoDBSuite(t *testing.T) {
	suite.Run(t, new(MongoDBTestSuite))
}
