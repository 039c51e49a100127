package handler_test

import (
	"bytes"
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

func TestReactionHandler_ConsumeReaction(t *testing.T) {
	handler.InitValidator()

	validRequest := handler.ConsumeReactionRequest{
		UserID: testUserID,
		DropID: testDropID,
		PostID: testPostID,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockReactionService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: validRequest,
			setupMock: func(m *mocks.MockReactionService) {
				m.On("Consume", mock.Anything, testDropID, testUserID, testPostID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Already Consumed",
			requestBody: validRequest,
			setupMock: func(m *mocks.MockReactionService) {
				m.On("Consume", mock.Anything, testDropID, testUserID, testPostID).
					Return(domain.ErrAlreadyConsumed)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "already been used",
		},
		{
			name:        "Own Post",
			requestBody: validRequest,
			setupMock: func(m *mocks.MockReactionService) {
				m.On("Consume", mock.Anything, testDropID, testUserID, testPostID).
					Return(domain.ErrOwnPost)
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  "your own post",
		},
		{
			name:        "Not A Reaction",
			requestBody: validRequest,
			setupMock: func(m *mocks.MockReactionService) {
				m.On("Consume", mock.Anything, testDropID, testUserID, testPostID).
					Return(domain.ErrNotAReaction)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "not a reaction",
		},
		{
			name:        "Post Not Found",
			requestBody: validRequest,
			setupMock: func(m *mocks.MockReactionService) {
				m.On("Consume", mock.Anything, testDropID, testUserID, testPostID).
					Return(domain.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Validation Error (Missing Post)",
			requestBody:    handler.ConsumeReactionRequest{UserID: testUserID, DropID: testDropID},
			setupMock:      func(m *mocks.MockReactionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockReactionService(t)
			tt.setupMock(mockSvc)

			h := handler.NewReactionHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reaction", bytes.NewReader(marshalBody(t, tt.requestBody)))
			w := httptest.NewRecorder()

			h.HandleConsumeReaction(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
		})
	}
}
