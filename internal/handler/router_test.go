//go:build unit

package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"travelmate/internal/handler"
	"travelmate/internal/handler/api"
	"travelmate/internal/handler/middleware"
	"travelmate/internal/pkg/clock"
	"travelmate/internal/pkg/config"
	"travelmate/internal/usecase/queries"
	"travelmate/tests/common/httptest"
	commandsmock "travelmate/tests/mock/commands"
	queriesmock "travelmate/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	tripQueries *queriesmock.MockTripQueries
	userQueries *queriesmock.MockUserQueries
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.tripQueries = queriesmock.NewMockTripQueries(s.mockCtrl)
	s.userQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	cfg.Server.MaxBodyBytes = 256
	clk := clock.NewMockClock(time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC))

	s.router = gin.New()
	err := handler.NewRouter(s.router, cfg, middleware.NewLogger(cfg.Log),
		api.NewUserHandler(commandsmock.NewMockUserCommands(s.mockCtrl), s.userQueries),
		api.NewCatalogHandler(commandsmock.NewMockCatalogCommands(s.mockCtrl), queriesmock.NewMockCatalogQueries(s.mockCtrl)),
		api.NewTripHandler(commandsmock.NewMockTripCommands(s.mockCtrl), s.tripQueries, clk),
		api.NewSavedTripHandler(commandsmock.NewMockSavedTripCommands(s.mockCtrl), queriesmock.NewMockSavedTripQueries(s.mockCtrl)),
	)
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok","message":"Service is healthy"}`, rec.Body.String())
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterTestSuite) TestSwaggerHiddenOutsideDebug() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/swagger/index.html", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
}

func (s *RouterTestSuite) TestStaticAndParamSegmentsCoexist() {
	s.tripQueries.EXPECT().ListUserTrips(gomock.Any(), int64(1)).Return(nil, nil).Times(1)
	s.tripQueries.EXPECT().GetTrip(gomock.Any(), int64(1)).Return(nil, queries.ErrTripNotFound).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/trips/user/1", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/trips/1", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Trip not found")
}

func (s *RouterTestSuite) TestItineraryIsNotCached() {
	s.tripQueries.EXPECT().GetItinerary(gomock.Any(), int64(3)).Return(nil, queries.ErrTripNotFound).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/trips/3/itinerary.pdf", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Cache-Control": "no-store"})

	s.tripQueries.EXPECT().GetTrip(gomock.Any(), int64(3)).Return(nil, queries.ErrTripNotFound).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/trips/3", nil)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Cache-Control": ""})
}

func (s *RouterTestSuite) TestBodyLimit() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/users", map[string]any{
		"name":  strings.Repeat("a", 512),
		"email": "big@example.com",
	})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "Request body too large")
}

func (s *RouterTestSuite) TestUserRoutes() {
	s.userQueries.EXPECT().GetUserByEmail(gomock.Any(), "john@example.com").Return(nil, queries.ErrUserNotFound).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users?email=john@example.com", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
}
