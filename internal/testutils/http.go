package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gestman-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
	// Operator, when set, is sent as the operator header on every request
	Operator string
}

// SetupHTTPTest initializes Gin for testing with request id propagation
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())

	return &HTTPTestSuite{
		Router: router,
	}
}

// MakeRequest encodes body as JSON and executes the request
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}
	return suite.do(method, url, reqBody, body != nil, nil)
}

// MakeRawRequest sends body verbatim; used for malformed payloads
func (suite *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return suite.do(method, url, strings.NewReader(body), true, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}
	return suite.do(method, url, reqBody, body != nil, headers)
}

func (suite *HTTPTestSuite) do(method, url string, body io.Reader, isJSON bool, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	if suite.Operator != "" {
		req.Header.Set(middleware.OperatorHeader, suite.Operator)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// HTTPTestCase represents a test case for HTTP handlers
type HTTPTestCase struct {
	Name           string
	Method         string
	URL            string
	Body           interface{}
	Setup          func()
	ExpectedStatus int
	// ExpectedError, when set, must appear in the error field
	ExpectedError string
}

// RunHTTPTestCases runs a series of HTTP test cases
func (suite *HTTPTestSuite) RunHTTPTestCases(t *testing.T, testCases []HTTPTestCase) {
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}

			recorder := suite.MakeRequest(tc.Method, tc.URL, tc.Body)

			if tc.ExpectedError != "" {
				AssertErrorResponse(t, recorder, tc.ExpectedStatus, tc.ExpectedError)
				return
			}
			assert.Equal(t, tc.ExpectedStatus, recorder.Code, recorder.Body.String())
		})
	}
}
