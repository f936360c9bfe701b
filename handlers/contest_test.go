// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/titan-sentara/middleware"
	"github.com/danielhkuo/titan-sentara/models"
	"github.com/danielhkuo/titan-sentara/testutil"
)

func TestAddPosition(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := testutil.NewTestService(t, conn)
	handler := NewContestHandler(svc, testutil.GetTestConfig())

	tests := []struct {
		name           string
		caller         string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.AddPositionResponse)
	}{
		{
			name:           "valid position creation",
			caller:         testutil.TestAdmin,
			requestBody:    models.AddPositionRequest{Name: "President"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.AddPositionResponse) {
				if resp.PositionID != 1 {
					t.Errorf("Expected position_id 1, got %d", resp.PositionID)
				}
			},
		},
		{
			name:           "second position gets next id",
			caller:         testutil.TestAdmin,
			requestBody:    models.AddPositionRequest{Name: "Secretary"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.AddPositionResponse) {
				if resp.PositionID != 2 {
					t.Errorf("Expected position_id 2, got %d", resp.PositionID)
				}
			},
		},
		{
			name:           "non-admin caller",
			caller:         testutil.TestVoter,
			requestBody:    models.AddPositionRequest{Name: "Treasurer"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing caller header",
			caller:         "",
			requestBody:    models.AddPositionRequest{Name: "Treasurer"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty name",
			caller:         testutil.TestAdmin,
			requestBody:    models.AddPositionRequest{Name: ""},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.caller != "" {
				headers[middleware.CallerHeader] = tt.caller
			}
			req := testutil.MakeRequest("POST", "/contest/positions", tt.requestBody, headers)
			w := httptest.NewRecorder()

			handler.AddPosition(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.AddPositionResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestAddPositionInvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := testutil.NewTestService(t, conn)
	handler := NewContestHandler(svc, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/contest/positions", bytes.NewReader([]byte(`{broken`)))
	req.Header.Set(middleware.CallerHeader, testutil.TestAdmin)
	w := httptest.NewRecorder()

	handler.AddPosition(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestAddCandidate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := testutil.NewTestService(t, conn)
	handler := NewContestHandler(svc, testutil.GetTestConfig())

	posID := testutil.AddTestPosition(t, svc, "President")

	tests := []struct {
		name           string
		caller         string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.AddCandidateResponse)
	}{
		{
			name:           "valid candidate creation",
			caller:         testutil.TestAdmin,
			requestBody:    models.AddCandidateRequest{Name: "Alice", PositionID: posID},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.AddCandidateResponse) {
				if resp.CandidateID != 1 {
					t.Errorf("Expected candidate_id 1, got %d", resp.CandidateID)
				}
			},
		},
		{
			name:           "dangling position",
			caller:         testutil.TestAdmin,
			requestBody:    models.AddCandidateRequest{Name: "Bob", PositionID: 42},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "empty name",
			caller:         testutil.TestAdmin,
			requestBody:    models.AddCandidateRequest{Name: "", PositionID: posID},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-admin caller",
			caller:         testutil.TestVoter,
			requestBody:    models.AddCandidateRequest{Name: "Bob", PositionID: posID},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/contest/candidates", tt.requestBody, map[string]string{
				middleware.CallerHeader: tt.caller,
			})
			w := httptest.NewRecorder()

			handler.AddCandidate(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.AddCandidateResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestSetParameters(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := testutil.NewTestService(t, conn)
	handler := NewContestHandler(svc, testutil.GetTestConfig())

	now := time.Now().Unix()

	tests := []struct {
		name           string
		caller         string
		requestBody    interface{}
		expectedStatus int
		wantState      string
	}{
		{
			name:           "open window",
			caller:         testutil.TestAdmin,
			requestBody:    models.SetParametersRequest{UnitCost: 100, StartTime: now - 60, EndTime: now + 3600},
			expectedStatus: http.StatusOK,
			wantState:      models.WindowOpen,
		},
		{
			name:           "re-arm to the future",
			caller:         testutil.TestAdmin,
			requestBody:    models.SetParametersRequest{UnitCost: 50, StartTime: now + 3600, EndTime: now + 7200},
			expectedStatus: http.StatusOK,
			wantState:      models.WindowConfigured,
		},
		{
			name:           "inverted time range",
			caller:         testutil.TestAdmin,
			requestBody:    models.SetParametersRequest{UnitCost: 100, StartTime: now + 100, EndTime: now + 100},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative unit cost",
			caller:         testutil.TestAdmin,
			requestBody:    models.SetParametersRequest{UnitCost: -1, StartTime: now, EndTime: now + 100},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-admin caller",
			caller:         testutil.TestVoter,
			requestBody:    models.SetParametersRequest{UnitCost: 100, StartTime: now, EndTime: now + 100},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/contest/parameters", tt.requestBody, map[string]string{
				middleware.CallerHeader: tt.caller,
			})
			w := httptest.NewRecorder()

			handler.SetParameters(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.wantState != "" {
				var resp models.SetParametersResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.WindowState != tt.wantState {
					t.Errorf("Expected window_state %q, got %q", tt.wantState, resp.WindowState)
				}
			}
		})
	}
}

func TestIsAdminEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	svc := testutil.NewTestService(t, conn)
	handler := NewContestHandler(svc, testutil.GetTestConfig())

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"admin address", testutil.TestAdmin, true},
		{"recased admin address", "0x00000000000000000000000000000000000000AA", true},
		{"other address", testutil.TestVoter, false},
		{"malformed address", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/contest/admin/"+tt.address, nil)
			req.SetPathValue("address", tt.address)
			w := httptest.NewRecorder()

			handler.IsAdmin(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.IsAdminResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.IsAdmin != tt.want {
				t.Errorf("Expected is_admin %v for %q, got %v", tt.want, tt.address, resp.IsAdmin)
			}
		})
	}
}
