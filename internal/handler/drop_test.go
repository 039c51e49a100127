package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/curioboard/curio/internal/domain"
	"github.com/curioboard/curio/internal/handler"
	"github.com/curioboard/curio/mocks"
)

const (
	testUserID = "5f6d1c2e-8a3b-4f70-9c21-0d4e5b6a7f80"
	testDropID = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
	testPostID = "9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b"
)

func TestDropHandler_AttemptDrop(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockDropService)
		expectedStatus int
		expectedError  string
		expectIssued   *bool
	}{
		{
			name:        "Drop Issued",
			requestBody: handler.AttemptDropRequest{UserID: testUserID},
			setupMock: func(m *mocks.MockDropService) {
				m.On("AttemptDrop", mock.Anything, testUserID).
					Return(&domain.ItemDrop{ID: testDropID, OwnerID: testUserID, ItemID: 3, Pattern: 512}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectIssued:   ptr(true),
		},
		{
			name:        "No Drop This Time",
			requestBody: handler.AttemptDropRequest{UserID: testUserID},
			setupMock: func(m *mocks.MockDropService) {
				m.On("AttemptDrop", mock.Anything, testUserID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectIssued:   ptr(false),
		},
		{
			name:        "User Not Found",
			requestBody: handler.AttemptDropRequest{UserID: testUserID},
			setupMock: func(m *mocks.MockDropService) {
				m.On("AttemptDrop", mock.Anything, testUserID).Return(nil, domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "user not found",
		},
		{
			name:           "Validation Error (Not A UUID)",
			requestBody:    handler.AttemptDropRequest{UserID: "not-a-uuid"},
			setupMock:      func(m *mocks.MockDropService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "Malformed JSON",
			requestBody:    "{bad json",
			setupMock:      func(m *mocks.MockDropService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockDropService(t)
			tt.setupMock(mockSvc)

			h := handler.NewDropHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/drop", bytes.NewReader(marshalBody(t, tt.requestBody)))
			w := httptest.NewRecorder()

			h.HandleAttemptDrop(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
			if tt.expectIssued != nil {
				var resp handler.AttemptDropResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectIssued, resp.Issued)
				if *tt.expectIssued {
					assert.NotNil(t, resp.Drop)
				} else {
					assert.Nil(t, resp.Drop)
				}
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func marshalBody(t *testing.T, body interface{}) []byte {
	t.Helper()
	if s, ok := body.(string); ok {
		return []byte(s)
	}
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return b
}
