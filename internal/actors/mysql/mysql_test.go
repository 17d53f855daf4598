package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/chatting/chatting/internal/core/model"
	"github.com/chatting/chatting/internal/core/ports/portstest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MySQLTestSuite struct {
	suite.Suite
	db      *sql.DB
	env     Conn
	service *UserService
}

var (
	dummyTime = time.Date(2024, 3, 1, 12, 0, 0, 654321000, time.UTC)
)

func (suite *MySQLTestSuite) SetupSuite() {
	dsn := os.Getenv("MYSQL_URL")
	if dsn == "" {
		suite.T().Skip("MYSQL_URL not set")
	}
	db, err := sql.Open("mysql", dsn)
	suite.Require().NoError(err)
	suite.Require().NoError(db.PingContext(context.Background()))
	suite.db = db
	suite.env = Conn{DB: db}
	suite.service = NewUserService(WithNowFunc(func() time.Time { return dummyTime }))
}

func (suite *MySQLTestSuite) SetupTest() {
	_, err := suite.db.Exec("TRUNCATE TABLE users")
	suite.Require().NoError(err)
}

func (suite *MySQLTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close())
	}
}

func (suite *MySQLTestSuite) TestConformance() {
	portstest.RunUserService[Env](suite.T(), NewUserService(), suite.env)
}

func (suite *MySQLTestSuite) TestCreateUser_KeepsMicroseconds() {
	created, err := suite.service.CreateUser(context.Background(), suite.env, model.CreateUserArgs{Name: "Jane"})
	suite.Require().NoError(err)
	suite.Equal(dummyTime, created.CreatedAt)
	suite.Equal(dummyTime, created.UpdatedAt)

	var raw []byte
	suite.Require().NoError(suite.db.QueryRow("SELECT id FROM users WHERE name = ?", "Jane").Scan(&raw))
	suite.Len(raw, 16)
	suite.Equal(created.ID[:], raw)
}

func (suite *MySQLTestSuite) TestUpdateAndDeleteMissing() {
	tests := []struct {
		name string
		call func(id uuid.UUID) error
	}{
		{
			name: "update",
			call: func(id uuid.UUID) error {
				_, err := suite.service.UpdateUser(context.Background(), suite.env, model.UpdateUserArgs{ID: id, Name: "x"})
				return err
			},
		},
		{
			name: "delete",
			call: func(id uuid.UUID) error {
				_, err := suite.service.DeleteUser(context.Background(), suite.env, model.DeleteUserArgs{ID: id})
				return err
			},
		},
	}

	for _, test := range tests {
		suite.Run(test.name, func() {
			err := test.call(uuid.New())
			portstest.RequireRejection(suite.T(), err, model.NotFound)
		})
	}
}

func TestMySQLSuite(t *testing.T) {
	suite.Run(t, new(MySQLTestSuite))
}

func TestConnectArgs_DSN(t *testing.T) {
	dsn := ConnectArgs{Host: "db", Port: 3306, User: "root", Password: "secret", Database: "chatting"}.DSN()
	assert.Contains(t, dsn, "root:secret@tcp(db:3306)/chatting")
	assert.Contains(t, dsn, "parseTime=true")
}
