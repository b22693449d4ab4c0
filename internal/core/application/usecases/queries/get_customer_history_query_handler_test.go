package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/assignment"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GetCustomerHistoryQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler queries.GetCustomerHistoryQueryHandler
}

func (suite *GetCustomerHistoryQueryHandlerTestSuite) SetupTest() {
	suite.db = newQueryTestDB(suite.T())
	suite.handler = queries.NewGetCustomerHistoryQueryHandler(suite.db)
}

func (suite *GetCustomerHistoryQueryHandlerTestSuite) customerQuery(name string) queries.GetCustomerHistoryQuery {
	query, err := queries.NewGetCustomerHistoryQuery(name)
	suite.Require().NoError(err)
	return query
}

func (suite *GetCustomerHistoryQueryHandlerTestSuite) TestHandle_UnknownCustomer_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), suite.customerQuery("Nobody"))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerHistoryQueryHandlerTestSuite) TestHandle_JoinsAssignmentStatus() {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(suite.T(), suite.db, 51, "Alice Smith", base)
	seedOrder(suite.T(), suite.db, 52, "Alice Smith", base.Add(time.Hour))
	seedOrder(suite.T(), suite.db, 53, "Bob Jones", base)

	seedAssignedOrder(suite.T(), suite.db, 52, 7, assignment.InProgress.String())

	result, err := suite.handler.Handle(context.Background(), suite.customerQuery("Alice Smith"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Newest first.
	suite.Equal(int64(52), result[0].OrderID)
	suite.Equal(assignment.InProgress.String(), result[0].AssignmentStatus)

	// Backlog orders carry an empty status.
	suite.Equal(int64(51), result[1].OrderID)
	suite.Empty(result[1].AssignmentStatus)
}

func (suite *GetCustomerHistoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerHistoryQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerHistoryQuery constructor")
}

func TestGetCustomerHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerHistoryQueryHandlerTestSuite))
}
