package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"gestman-backend/internal/api/handlers"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/mocks"
	"gestman-backend/internal/service"
	"gestman-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockReportServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockReportServiceInterface(suite.ctrl)

	handler := handlers.NewReportHandler(suite.service)
	suite.http = testutils.SetupHTTPTest()
	reports := suite.http.Router.Group("/api/v1/reports")
	reports.GET("/:section/export", handler.Export)
	reports.POST("/:section/bulk-delete", handler.BulkDelete)
	reports.POST("/:section/cleanup", handler.Cleanup)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestExportStreamsWorkbook() {
	f := excelize.NewFile()
	suite.Require().NoError(f.SetCellValue("Sheet1", "A1", "Created"))
	suite.service.EXPECT().Export(service.SectionAlerts, "").Return(&service.ExportResult{
		FileName: "alerts_20250310_140500.xlsx",
		File:     f,
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/reports/alerts/export", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("attachment; filename=\"alerts_20250310_140500.xlsx\"", recorder.Header().Get("Content-Disposition"))

	book, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	suite.Require().NoError(err)
	defer book.Close()
	value, err := book.GetCellValue("Sheet1", "A1")
	suite.Require().NoError(err)
	suite.Equal("Created", value)
}

func (suite *ReportHandlerTestSuite) TestExportErrors() {
	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:           "unknown section",
			Method:         http.MethodGet,
			URL:            "/api/v1/reports/assets/export",
			Setup:          func() { suite.service.EXPECT().Export("assets", "").Return(nil, apperrors.ErrUnknownSection) },
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "unknown report section",
		},
		{
			Name:   "unsupported format",
			Method: http.MethodGet,
			URL:    "/api/v1/reports/alerts/export?format=pdf",
			Setup: func() {
				suite.service.EXPECT().Export("alerts", "pdf").Return(nil, apperrors.ErrUnsupportedExportFormat)
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "unsupported export format",
		},
	})
}

func (suite *ReportHandlerTestSuite) TestBulkDelete() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	suite.service.EXPECT().BulkDelete(service.SectionSubmissions, ids).Return(int64(2), nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/reports/submissions/bulk-delete",
		handlers.BulkDeleteRequest{IDs: ids})

	var resp handlers.CountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(2), resp.Count)
}

func (suite *ReportHandlerTestSuite) TestBulkDeleteRequiresIDs() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/reports/alerts/bulk-delete", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *ReportHandlerTestSuite) TestCleanup() {
	suite.service.EXPECT().Cleanup(service.SectionAlerts, 0).Return(int64(7), nil)
	suite.service.EXPECT().Cleanup(service.SectionOccurrences, 30).Return(int64(1), nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/reports/alerts/cleanup", nil)
	var resp handlers.CountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(7), resp.Count)

	recorder = suite.http.MakeRequest(http.MethodPost, "/api/v1/reports/occurrences/cleanup?days=30", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(1), resp.Count)
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
