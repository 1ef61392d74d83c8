package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"eaglegym/internal/content"
	"eaglegym/internal/gym"
	"eaglegym/internal/selection"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticDirectory struct{}

func (staticDirectory) GetGyms(ctx context.Context) ([]gym.Gym, error) {
	return []gym.Gym{{Slug: "eagle-gym"}}, nil
}

func (staticDirectory) GetBranches(ctx context.Context, gymSlug string) ([]gym.Branch, error) {
	return []gym.Branch{{GymSlug: "eagle-gym", Slug: "fostat"}, {GymSlug: "eagle-gym", Slug: "qoopa"}}, nil
}

type countingDirectory struct {
	calls atomic.Int32
}

func (d *countingDirectory) GetGyms(ctx context.Context) ([]gym.Gym, error) {
	d.calls.Add(1)
	return staticDirectory{}.GetGyms(ctx)
}

func (d *countingDirectory) GetBranches(ctx context.Context, gymSlug string) ([]gym.Branch, error) {
	d.calls.Add(1)
	return staticDirectory{}.GetBranches(ctx, gymSlug)
}

func testFactory() (*selection.State, content.Service) {
	reader := content.NewService(nil, nil, content.NewMediaResolver("https://store.example.co", "gym-media"))
	return selection.New(staticDirectory{}, reader, "eagle-gym", "fostat"), reader
}

func TestManager_CreateAndLookup(t *testing.T) {
	m := NewManager(testSecret, time.Hour, testFactory)

	s, token, err := m.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "fostat", s.Selection.SelectedBranch())

	gymSlug, branchSlug := s.Content.ActiveBranch()
	assert.Equal(t, "eagle-gym", gymSlug)
	assert.Equal(t, "fostat", branchSlug)

	got, expiresAt, err := m.Lookup(token)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestManager_CreateLoadsListsOnFirstBranch(t *testing.T) {
	dir := &countingDirectory{}
	m := NewManager(testSecret, time.Hour, func() (*selection.State, content.Service) {
		reader := content.NewService(nil, nil, content.NewMediaResolver("https://store.example.co", "gym-media"))
		return selection.New(dir, reader, "eagle-gym", "fostat"), reader
	})

	s, _, err := m.Create()
	require.NoError(t, err)
	assert.Equal(t, int32(0), dir.calls.Load())
	assert.Equal(t, "fostat", s.Selection.SelectedBranch())
	assert.Empty(t, s.Selection.Branches())

	require.NoError(t, s.Selection.SelectBranch(context.Background(), "eagle-gym", "qoopa"))
	assert.Equal(t, int32(2), dir.calls.Load())

	branch, ok := s.Selection.CurrentBranch()
	require.True(t, ok)
	assert.Equal(t, "qoopa", branch.Slug)
}

func TestManager_Evict(t *testing.T) {
	m := NewManager(testSecret, time.Minute, testFactory)

	_, token, err := m.Create()
	require.NoError(t, err)

	assert.Equal(t, 0, m.Evict(time.Now()))
	assert.Equal(t, 1, m.Evict(time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, m.Len())

	_, _, err = m.Lookup(token)
	assert.Equal(t, ErrSessionExpired, err)
}

func TestManager_RunStopsWithContext(t *testing.T) {
	m := NewManager(testSecret, time.Minute, testFactory)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func setupSessionRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/whoami", func(c *gin.Context) {
		s, ok := FromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, s.ID.String())
	})
	return router
}

func TestMiddleware(t *testing.T) {
	m := NewManager(testSecret, time.Hour, testFactory)
	router := setupSessionRouter(m)

	t.Run("New visitor gets a cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req2.AddCookie(cookies[0])
		router.ServeHTTP(w2, req2)

		assert.Equal(t, w.Body.String(), w2.Body.String())
		assert.Empty(t, w2.Result().Cookies())
	})

	t.Run("Invalid cookie starts a new session", func(t *testing.T) {
		before := m.Len()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Result().Cookies(), 1)
		assert.Equal(t, before+1, m.Len())
	})

	t.Run("Evicted session starts a new one", func(t *testing.T) {
		s, token, err := m.Create()
		require.NoError(t, err)
		m.Evict(time.Now().Add(2 * time.Hour))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEqual(t, s.ID.String(), w.Body.String())
	})
}
