package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"gestman-backend/internal/api/handlers"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/service"
	"gestman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MaintenanceHandlerTestSuite exercises the schedule endpoints
type MaintenanceHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	catalog  *mocks.MockCatalogServiceInterface
	schedule *mocks.MockScheduleServiceInterface
	scan     *mocks.MockAlertScanServiceInterface
	http     *testutils.HTTPTestSuite
}

func (suite *MaintenanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.catalog = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.schedule = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.scan = mocks.NewMockAlertScanServiceInterface(suite.ctrl)

	handler := handlers.NewMaintenanceHandler(suite.catalog, suite.schedule, suite.scan)
	suite.http = testutils.SetupHTTPTest()
	m := suite.http.Router.Group("/api/v1/maintenance")
	m.GET("/checklist-items", handler.ListChecklistItems)
	m.POST("/occurrences/:id/complete", handler.CompleteOccurrence)
	m.DELETE("/occurrences/:id", handler.DeleteOccurrence)
	m.GET("/groups/form", handler.GroupForm)
	m.POST("/groups/complete", handler.CompleteGroup)
	m.GET("/upcoming", handler.Upcoming)
	m.POST("/alerts/scan", handler.ScanAlerts)
}

func (suite *MaintenanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MaintenanceHandlerTestSuite) TestCompleteOccurrence() {
	id := uuid.New()
	suite.schedule.EXPECT().Complete(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req *service.CompleteRequest) (*service.CompletionResponse, error) {
			assert.Equal(suite.T(), "mrossi", req.Operator)
			assert.Equal(suite.T(), "OK", req.Outcome)
			return &service.CompletionResponse{
				Completed: service.OccurrenceResponse{ID: id, DueDate: "2025-01-15", Recurrence: schedule.Monthly},
				Next:      service.OccurrenceResponse{ID: uuid.New(), DueDate: "2025-02-15", Recurrence: schedule.Monthly},
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/maintenance/occurrences/"+id.String()+"/complete",
		map[string]interface{}{"operator": "mrossi", "outcome": "OK"})

	var resp service.CompletionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("2025-02-15", resp.Next.DueDate)
	suite.Nil(resp.AlertID)
}

func (suite *MaintenanceHandlerTestSuite) TestCompleteOccurrenceErrors() {
	id := uuid.New()
	url := "/api/v1/maintenance/occurrences/" + id.String() + "/complete"
	body := map[string]interface{}{"operator": "mrossi"}

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:   "already completed",
			Method: http.MethodPost,
			URL:    url,
			Body:   body,
			Setup: func() {
				suite.schedule.EXPECT().Complete(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrOccurrenceAlreadyCompleted)
			},
			ExpectedStatus: http.StatusConflict,
			ExpectedError:  "already completed",
		},
		{
			Name:   "not found",
			Method: http.MethodPost,
			URL:    url,
			Body:   body,
			Setup: func() {
				suite.schedule.EXPECT().Complete(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrOccurrenceNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "occurrence not found",
		},
		{
			Name:   "missing operator",
			Method: http.MethodPost,
			URL:    url,
			Body:   map[string]interface{}{"notes": "x"},
			Setup: func() {
				suite.schedule.EXPECT().Complete(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.NewValidationError("operator", "is required"))
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "operator",
		},
		{
			Name:           "invalid id",
			Method:         http.MethodPost,
			URL:            "/api/v1/maintenance/occurrences/not-a-uuid/complete",
			Body:           body,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "invalid id",
		},
	})
}

func (suite *MaintenanceHandlerTestSuite) TestCompleteOccurrenceMalformedBody() {
	recorder := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/maintenance/occurrences/"+uuid.NewString()+"/complete", "{")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *MaintenanceHandlerTestSuite) TestCompleteGroup() {
	suite.schedule.EXPECT().CompleteGroup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.CompleteGroupRequest) (*service.GroupCompletionResponse, error) {
			assert.Len(suite.T(), req.OccurrenceIDs, 2)
			return &service.GroupCompletionResponse{
				Completed: make([]service.OccurrenceResponse, 2),
				Next:      make([]service.OccurrenceResponse, 2),
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/maintenance/groups/complete", map[string]interface{}{
		"occurrence_ids": []string{uuid.NewString(), uuid.NewString()},
		"operator":       "mrossi",
	})

	var resp service.GroupCompletionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp.Next, 2)
}

func (suite *MaintenanceHandlerTestSuite) TestGroupFormRequiresKey() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/maintenance/groups/form?location_number=001", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "required")
}

func (suite *MaintenanceHandlerTestSuite) TestGroupFormNotFound() {
	suite.schedule.EXPECT().GroupForm("001", "EST-001", "2025-03-10").Return(nil, apperrors.ErrGroupNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet,
		"/api/v1/maintenance/groups/form?location_number=001&asset_id=EST-001&due_date=2025-03-10", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "maintenance group not found")
}

func (suite *MaintenanceHandlerTestSuite) TestUpcomingDefaultsToThirtyDays() {
	suite.schedule.EXPECT().Upcoming(30).Return(&service.UpcomingResponse{Days: 30, Overdue: 1}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/maintenance/upcoming", nil)

	var resp service.UpcomingResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(30, resp.Days)
	suite.Equal(1, resp.Overdue)
}

func (suite *MaintenanceHandlerTestSuite) TestUpcomingDays() {
	suite.schedule.EXPECT().Upcoming(7).Return(&service.UpcomingResponse{Days: 7}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/maintenance/upcoming?days=7", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/maintenance/upcoming?days=week", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "days must be an integer")
}

func (suite *MaintenanceHandlerTestSuite) TestDeleteOccurrenceNotFound() {
	id := uuid.New()
	suite.schedule.EXPECT().DeleteOccurrence(id).Return(apperrors.ErrOccurrenceNotFound)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/maintenance/occurrences/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "occurrence not found")
}

func (suite *MaintenanceHandlerTestSuite) TestListChecklistItemsRequiresAssetType() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/maintenance/checklist-items", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "asset_type is required")
}

func (suite *MaintenanceHandlerTestSuite) TestScanAlerts() {
	suite.scan.EXPECT().Scan(gomock.Any()).Return(&service.ScanResult{Evaluated: 4, Created: 2, Skipped: 1}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/maintenance/alerts/scan", nil)

	var resp service.ScanResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(2, resp.Created)
	suite.Equal(1, resp.Skipped)
}

func TestMaintenanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}
