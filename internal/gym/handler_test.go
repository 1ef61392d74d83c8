package gym

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupGymRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewHandler(NewService(repo))
	router.GET("/gyms", h.ListGyms)
	router.GET("/gyms/:gymSlug/branches", h.ListBranches)
	return router
}

func TestListGyms_Handler(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetGyms", mock.Anything).Return([]Gym{{ID: eagleID, Slug: "eagle-gym", NameEn: "Eagle Gym"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gyms", nil)
	setupGymRouter(mockRepo).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var gyms []Gym
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gyms))
	require.Len(t, gyms, 1)
	assert.Equal(t, "eagle-gym", gyms[0].Slug)
}

func TestListGyms_Handler_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetGyms", mock.Anything).Return(nil, errors.New("permission denied"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gyms", nil)
	setupGymRouter(mockRepo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch gyms")
}

func TestListBranches_Handler(t *testing.T) {
	t.Run("known gym", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetGymBySlug", mock.Anything, "eagle-gym").Return(&Gym{ID: eagleID}, nil)
		mockRepo.On("GetBranchesByGym", mock.Anything, eagleID).Return([]Branch{{Slug: "fostat"}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gyms/eagle-gym/branches", nil)
		setupGymRouter(mockRepo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"fostat"`)
	})

	t.Run("unknown gym", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetGymBySlug", mock.Anything, "iron-gym").Return(nil, ErrGymNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gyms/iron-gym/branches", nil)
		setupGymRouter(mockRepo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
