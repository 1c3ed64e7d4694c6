package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mockapi "github.com/banachtech/mcoption/api/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "mco_d8Kq.RGbV3hb3LEwYohYW"
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		setupAuth     func(t *testing.T, request *http.Request)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request) {
				request.Header.Set(authorizationHeaderKey, fmt.Sprintf("%s %s", authorizationTypeBearer, apiKey))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "NO_AUTHORIZATION",
			setupAuth: func(t *testing.T, request *http.Request) {
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				require.Contains(t, recorder.Body.String(), "not provided")
			},
		},
		{
			name: "INVALID_FORMAT",
			setupAuth: func(t *testing.T, request *http.Request) {
				request.Header.Set(authorizationHeaderKey, apiKey)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				require.Contains(t, recorder.Body.String(), "format")
			},
		},
		{
			name: "UNSUPPORTED_TYPE",
			setupAuth: func(t *testing.T, request *http.Request) {
				request.Header.Set(authorizationHeaderKey, fmt.Sprintf("basic %s", apiKey))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				require.Contains(t, recorder.Body.String(), "unsupported")
			},
		},
		{
			name: "WRONG_KEY",
			setupAuth: func(t *testing.T, request *http.Request) {
				request.Header.Set(authorizationHeaderKey, fmt.Sprintf("%s %s", authorizationTypeBearer, "mco_d8Kq.wrong"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				require.Contains(t, recorder.Body.String(), "valid API Key")
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p := mockapi.NewMockPricer(ctrl)

			server := newTestServer(t, p, string(hash))
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/v1/defaults", nil)
			require.NoError(t, err)

			tc.setupAuth(t, request)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestNoAuthWithoutKeyHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mockapi.NewMockPricer(ctrl), "")
	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/v1/defaults", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"spot":100`)
	require.Contains(t, recorder.Body.String(), `"max_paths":1000000`)
	require.Contains(t, recorder.Body.String(), `"max_sample_paths":100`)
	require.Contains(t, recorder.Body.String(), `"max_steps":1000`)
}
