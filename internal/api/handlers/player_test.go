package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"players-api/internal/cache"
	apperrors "players-api/internal/errors"
	"players-api/internal/metrics"
	"players-api/internal/mocks"
	"players-api/internal/service"
	"players-api/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPlayerService *mocks.MockPlayerServiceInterface
	cache             *cache.Cache[[]service.PlayerResponse]
	metrics           *metrics.Mock
	handler           *PlayerHandler
	httpSuite         *testutils.HTTPTestSuite
	factories         *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerService = mocks.NewMockPlayerServiceInterface(suite.ctrl)
	suite.cache = cache.New[[]service.PlayerResponse]()
	suite.metrics = metrics.NewMock()
	suite.factories = testutils.NewFactorySet()

	suite.handler = NewPlayerHandler(suite.mockPlayerService, suite.cache, suite.metrics, 600*time.Second)

	suite.httpSuite = testutils.SetupHTTPTest()
	players := suite.httpSuite.Router.Group("/players")
	{
		players.POST("/", suite.handler.CreatePlayer)
		players.GET("/", suite.handler.ListPlayers)
		players.GET("/:id", suite.handler.GetPlayer)
		players.GET("/squadnumber/:squad_number", suite.handler.GetPlayerBySquadNumber)
		players.PUT("/:id", suite.handler.UpdatePlayer)
		players.DELETE("/:id", suite.handler.DeletePlayer)
	}
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerHandlerTestSuite) seededResponse() service.PlayerResponse {
	p := suite.factories.Player.Create()
	return service.PlayerResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		SquadNumber: p.SquadNumber,
		Position:    p.Position,
		Team:        p.Team,
		Starting11:  p.Starting11,
	}
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayer() {
	body := testutils.PlayerPayload(suite.factories.Player.Nonexistent())
	created := &service.PlayerResponse{ID: uuid.New(), FirstName: "Thiago", LastName: "Almada", SquadNumber: 16}

	suite.mockPlayerService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.PlayerRequest) (*service.PlayerResponse, error) {
			assert.Equal(suite.T(), 16, req.SquadNumber)
			assert.Equal(suite.T(), "Ezequiel", *req.MiddleName)
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/players/", body)

	var response service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), created.ID, response.ID)
	assert.Equal(suite.T(), 1, suite.metrics.CacheInvalidations())
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayerConflict() {
	body := testutils.PlayerPayload(suite.factories.Player.Create())
	suite.mockPlayerService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrPlayerExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/players/", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
	assert.Equal(suite.T(), 0, suite.metrics.CacheInvalidations())
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayerValidationError() {
	suite.mockPlayerService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("firstName", "required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/players/", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "firstName")
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayerMalformedBody() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/players/", `{"squadNumber": "ten"`)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "Invalid request body")
}

func (suite *PlayerHandlerTestSuite) TestCreatePlayerPersistenceFailure() {
	body := testutils.PlayerPayload(suite.factories.Player.Nonexistent())
	suite.mockPlayerService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewPersistenceError("create", "player", errors.New("disk full")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/players/", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "database error")
	assert.NotContains(suite.T(), recorder.Body.String(), "disk full")
}

func (suite *PlayerHandlerTestSuite) TestListPlayersCachesResult() {
	players := []service.PlayerResponse{suite.seededResponse()}
	suite.mockPlayerService.EXPECT().GetAll(gomock.Any()).Return(players, nil).Times(1)

	first := suite.httpSuite.MakeRequest(http.MethodGet, "/players/", nil)
	testutils.AssertCacheOutcome(suite.T(), first, "MISS")

	second := suite.httpSuite.MakeRequest(http.MethodGet, "/players/", nil)
	testutils.AssertCacheOutcome(suite.T(), second, "HIT")

	var response []service.PlayerResponse
	testutils.ParseJSONResponse(suite.T(), second, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), players[0].ID, response[0].ID)
	assert.Equal(suite.T(), 1, suite.metrics.CacheHits())
	assert.Equal(suite.T(), 1, suite.metrics.CacheMisses())
}

func (suite *PlayerHandlerTestSuite) TestListPlayersMissAfterWrite() {
	players := []service.PlayerResponse{suite.seededResponse()}
	suite.mockPlayerService.EXPECT().GetAll(gomock.Any()).Return(players, nil).Times(2)
	suite.mockPlayerService.EXPECT().Delete(gomock.Any(), players[0].ID).Return(nil)

	testutils.AssertCacheOutcome(suite.T(), suite.httpSuite.MakeRequest(http.MethodGet, "/players/", nil), "MISS")

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/players/"+players[0].ID.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	testutils.AssertCacheOutcome(suite.T(), suite.httpSuite.MakeRequest(http.MethodGet, "/players/", nil), "MISS")
}

func (suite *PlayerHandlerTestSuite) TestListPlayersFailureIsNotCached() {
	suite.mockPlayerService.EXPECT().
		GetAll(gomock.Any()).
		Return(nil, apperrors.NewPersistenceError("retrieve", "player", errors.New("db failed")))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	assert.Equal(suite.T(), 0, suite.cache.Len())
}

func (suite *PlayerHandlerTestSuite) TestGetPlayer() {
	player := suite.seededResponse()
	suite.mockPlayerService.EXPECT().GetByID(gomock.Any(), player.ID).Return(&player, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/"+player.ID.String(), nil)

	var response service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), player.ID, response.ID)
	assert.Equal(suite.T(), "Aston Villa FC", *response.Team)
}

func (suite *PlayerHandlerTestSuite) TestGetPlayerNotFound() {
	id := suite.factories.Player.Unknown()
	suite.mockPlayerService.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrPlayerNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "player not found")
}

func (suite *PlayerHandlerTestSuite) TestInvalidPathParameters() {
	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{Name: "get with malformed id", Method: http.MethodGet, URL: "/players/not-a-uuid", ExpectedStatus: http.StatusBadRequest, ExpectedError: "Invalid player ID"},
		{Name: "put with malformed id", Method: http.MethodPut, URL: "/players/123", Body: map[string]interface{}{}, ExpectedStatus: http.StatusBadRequest, ExpectedError: "Invalid player ID"},
		{Name: "delete with malformed id", Method: http.MethodDelete, URL: "/players/xyz", ExpectedStatus: http.StatusBadRequest, ExpectedError: "Invalid player ID"},
		{Name: "squad number not an integer", Method: http.MethodGet, URL: "/players/squadnumber/ten", ExpectedStatus: http.StatusBadRequest, ExpectedError: "invalid squad number"},
	})
}

func (suite *PlayerHandlerTestSuite) TestGetPlayerBySquadNumber() {
	player := suite.seededResponse()
	suite.mockPlayerService.EXPECT().GetBySquadNumber(gomock.Any(), 23).Return(&player, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/squadnumber/23", nil)

	var response service.PlayerResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "608514c7-ceb3-51da-b4bc-0bdbc8178c18", response.ID.String())
}

func (suite *PlayerHandlerTestSuite) TestGetPlayerBySquadNumberNotFound() {
	suite.mockPlayerService.EXPECT().GetBySquadNumber(gomock.Any(), 99).Return(nil, apperrors.ErrPlayerNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/squadnumber/99", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *PlayerHandlerTestSuite) TestUpdatePlayer() {
	player := suite.factories.Player.Create()
	body := testutils.PlayerPayload(player)
	body["firstName"] = "Dibu"
	suite.cache.Set(PlayersCacheKey, []service.PlayerResponse{}, time.Minute)

	suite.mockPlayerService.EXPECT().
		Update(gomock.Any(), player.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.PlayerRequest) error {
			assert.Equal(suite.T(), "Dibu", req.FirstName)
			return nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/players/"+player.ID.String(), body)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
	assert.Equal(suite.T(), 0, suite.cache.Len())
}

func (suite *PlayerHandlerTestSuite) TestUpdatePlayerNotFound() {
	id := suite.factories.Player.Unknown()
	body := testutils.PlayerPayload(suite.factories.Player.Nonexistent())
	suite.cache.Set(PlayersCacheKey, []service.PlayerResponse{}, time.Minute)
	suite.mockPlayerService.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(apperrors.ErrPlayerNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/players/"+id.String(), body)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	assert.Equal(suite.T(), 1, suite.cache.Len(), "failed writes keep the cache")
}

func (suite *PlayerHandlerTestSuite) TestUpdatePlayerPersistenceFailure() {
	player := suite.factories.Player.Create()
	suite.mockPlayerService.EXPECT().
		Update(gomock.Any(), player.ID, gomock.Any()).
		Return(apperrors.NewPersistenceError("update", "player", errors.New("locked")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/players/"+player.ID.String(), testutils.PlayerPayload(player))

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

func (suite *PlayerHandlerTestSuite) TestDeletePlayerNotFound() {
	id := suite.factories.Player.Unknown()
	suite.mockPlayerService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrPlayerNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/players/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	assert.Equal(suite.T(), 0, suite.metrics.CacheInvalidations())
}

func (suite *PlayerHandlerTestSuite) TestUnexpectedErrorIsHidden() {
	suite.mockPlayerService.EXPECT().GetBySquadNumber(gomock.Any(), 7).Return(nil, errors.New("secret detail"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/squadnumber/7", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
	assert.NotContains(suite.T(), recorder.Body.String(), "secret detail")
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
