package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinelog/internal/database"
	"cinelog/internal/middleware"
	"cinelog/internal/modules/auth"
	"cinelog/internal/modules/catalog"
	"cinelog/internal/modules/collection"
	"cinelog/internal/modules/favorite"
	"cinelog/internal/modules/review"
	jwtsvc "cinelog/internal/pkg/jwt"
	"cinelog/internal/repository"
)

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Suite struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupSuite(t *testing.T) *Suite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate schema")

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(movieRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteService := favorite.NewService(favoriteRepo, catalogService)
	favoriteHandler := favorite.NewHandler(favoriteService)

	collectionService := collection.NewService(collectionRepo, catalogService)
	collectionHandler := collection.NewHandler(collectionService)

	reviewService := review.NewService(reviewRepo, catalogService)
	reviewHandler := review.NewHandler(reviewService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	authHandler.RegisterPublicRoutes(api)
	authHandler.RegisterProfileRoutes(api)
	catalogHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api, nil)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
		collectionHandler.RegisterRoutes(protected)
		reviewHandler.RegisterRoutes(nil, protected)
	}

	return &Suite{router: r, db: db}
}

func (s *Suite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *Suite) register(t *testing.T, username, email, password string) string {
	t.Helper()

	w, resp := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %s", username, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func fightClub() gin.H {
	return gin.H{
		"tmdbId":      550,
		"title":       "Fight Club",
		"poster":      "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
		"voteAverage": 8.4,
		"releaseDate": "1999-10-15",
	}
}

func TestRegisterLoginAuthenticateRoundtrip(t *testing.T) {
	s := setupSuite(t)

	s.register(t, "alice", "alice@example.com", "secret123")

	w, resp := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "alice", data.User.Username)

	// The login token must be accepted on a protected endpoint.
	w, _ = s.do(t, http.MethodGet, "/api/users/me", data.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password", "no password material may leak")
}

func TestRegisterConflicts(t *testing.T) {
	s := setupSuite(t)
	s.register(t, "alice", "alice@example.com", "secret123")

	// Reused email, fresh username.
	w, resp := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "someone-else",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)

	// Reused username, fresh email.
	w, resp = s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"email":    "fresh@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "USERNAME_TAKEN", resp.Error.Code)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s := setupSuite(t)
	s.register(t, "alice", "alice@example.com", "secret123")

	w1, resp1 := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	w2, resp2 := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	require.NotNil(t, resp1.Error)
	require.NotNil(t, resp2.Error)
	assert.Equal(t, resp1.Error.Message, resp2.Error.Message)
}

func TestProfileUpdateAndPublicView(t *testing.T) {
	s := setupSuite(t)
	token := s.register(t, "alice", "alice@example.com", "secret123")

	w, _ := s.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"bio": "cinephile",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cinephile")

	// Public profile shows bio but never the email.
	w, _ = s.do(t, http.MethodGet, "/api/users/alice", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cinephile")
	assert.NotContains(t, w.Body.String(), "alice@example.com")

	w, _ = s.do(t, http.MethodGet, "/api/users/nobody", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoritesLifecycle(t *testing.T) {
	s := setupSuite(t)
	token := s.register(t, "alice", "alice@example.com", "secret123")

	// Empty at first.
	w, resp := s.do(t, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movies []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	assert.Empty(t, movies)

	// Add lazily caches the movie.
	w, resp = s.do(t, http.MethodPost, "/api/favorites", token, fightClub())
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, float64(550), movies[0]["tmdbId"])

	// The cache is now readable publicly.
	w, _ = s.do(t, http.MethodGet, "/api/movies/550", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second add: exactly one membership, Conflict response.
	w, _ = s.do(t, http.MethodPost, "/api/favorites", token, fightClub())
	assert.Equal(t, http.StatusConflict, w.Code)
	_, resp = s.do(t, http.MethodGet, "/api/favorites", token, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	assert.Len(t, movies, 1)

	// Check endpoint.
	w, _ = s.do(t, http.MethodGet, "/api/favorites/check/550", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isFavorite":true`)
	w, _ = s.do(t, http.MethodGet, "/api/favorites/check/999", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isFavorite":false`)

	// Remove is idempotent: absent movie is a no-op, list length stable.
	w, resp = s.do(t, http.MethodDelete, "/api/favorites/999", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	assert.Len(t, movies, 1)

	w, resp = s.do(t, http.MethodDelete, "/api/favorites/550", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	assert.Empty(t, movies)
}

func TestCollectionOwnershipScenario(t *testing.T) {
	s := setupSuite(t)
	tokenA := s.register(t, "account-a", "a@example.com", "secret123")
	tokenB := s.register(t, "account-b", "b@example.com", "secret123")

	// A creates a collection and adds Fight Club.
	w, resp := s.do(t, http.MethodPost, "/api/collections", tokenA, gin.H{"name": "Favorites 2024"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	w, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/collections/%d/movies", created.ID), tokenA,
		gin.H{"movie": fightClub()})
	require.Equal(t, http.StatusOK, w.Code)

	// GET the collection's movies: exactly one entry with tmdbId 550.
	w, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/collections/%d/movies", created.ID), tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movies []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, float64(550), movies[0]["tmdbId"])

	// B cannot see, mutate or delete A's collection: always 404, never 403.
	paths := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, fmt.Sprintf("/api/collections/%d/movies", created.ID), nil},
		{http.MethodPost, fmt.Sprintf("/api/collections/%d/movies", created.ID), gin.H{"movie": fightClub()}},
		{http.MethodDelete, fmt.Sprintf("/api/collections/%d/movies/550", created.ID), nil},
		{http.MethodDelete, fmt.Sprintf("/api/collections/%d", created.ID), nil},
	}
	for _, p := range paths {
		w, _ := s.do(t, p.method, p.path, tokenB, p.body)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s as non-owner", p.method, p.path)
	}

	// B's own listing does not include A's collection.
	w, resp = s.do(t, http.MethodGet, "/api/collections", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var collections []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &collections))
	assert.Empty(t, collections)

	// Duplicate append is a silent no-op.
	w, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/collections/%d/movies", created.ID), tokenA,
		gin.H{"movie": fightClub()})
	require.Equal(t, http.StatusOK, w.Code)
	_, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/collections/%d/movies", created.ID), tokenA, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	assert.Len(t, movies, 1)

	// Owner removes then deletes.
	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/collections/%d/movies/550", created.ID), tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/collections/%d", created.ID), tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/collections/%d/movies", created.ID), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCollectionCreateValidation(t *testing.T) {
	s := setupSuite(t)
	token := s.register(t, "alice", "alice@example.com", "secret123")

	w, _ := s.do(t, http.MethodPost, "/api/collections", token, gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = s.do(t, http.MethodPost, "/api/collections", token, gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewUpsertSemantics(t *testing.T) {
	s := setupSuite(t)
	token := s.register(t, "alice", "alice@example.com", "secret123")

	// Reviews require a cached movie; nothing is cached yet.
	w, _ := s.do(t, http.MethodPost, "/api/reviews/550", token, gin.H{"rating": 4, "text": "good"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Favoriting caches it.
	w, _ = s.do(t, http.MethodPost, "/api/favorites", token, fightClub())
	require.Equal(t, http.StatusOK, w.Code)

	// Boundary ratings.
	for rating, want := range map[any]int{
		-1:  http.StatusBadRequest,
		6:   http.StatusBadRequest,
		5.5: http.StatusBadRequest,
		0:   http.StatusCreated,
		5:   http.StatusCreated,
	} {
		w, _ := s.do(t, http.MethodPost, "/api/reviews/550", token, gin.H{"rating": rating, "text": "boundary"})
		assert.Equal(t, want, w.Code, "rating %v", rating)
	}

	// Empty text rejected.
	w, _ = s.do(t, http.MethodPost, "/api/reviews/550", token, gin.H{"rating": 3, "text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Re-posting replaces instead of duplicating.
	w, _ = s.do(t, http.MethodPost, "/api/reviews/550", token, gin.H{"rating": 2, "text": "second thoughts"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.do(t, http.MethodGet, "/api/reviews/movie/550", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
		User   struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reviews))
	require.Len(t, reviews, 1, "one review per (user, movie) pair")
	assert.Equal(t, 2, reviews[0].Rating)
	assert.Equal(t, "second thoughts", reviews[0].Text)
	assert.Equal(t, "alice", reviews[0].User.Username)
}

func TestReviewDeleteOwnership(t *testing.T) {
	s := setupSuite(t)
	tokenA := s.register(t, "account-a", "a@example.com", "secret123")
	tokenB := s.register(t, "account-b", "b@example.com", "secret123")

	w, _ := s.do(t, http.MethodPost, "/api/favorites", tokenA, fightClub())
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := s.do(t, http.MethodPost, "/api/reviews/550", tokenA, gin.H{"rating": 5, "text": "mine"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	// Foreign delete is Forbidden, not NotFound: review lists are public.
	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", created.ID), tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", created.ID), tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", created.ID), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewListByUserExpandsMovies(t *testing.T) {
	s := setupSuite(t)
	token := s.register(t, "alice", "alice@example.com", "secret123")

	w, _ := s.do(t, http.MethodPost, "/api/favorites", token, fightClub())
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodPost, "/api/reviews/550", token, gin.H{"rating": 4, "text": "solid"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, meResp := s.do(t, http.MethodGet, "/api/users/me", token, nil)
	var me struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(meResp.Data, &me))

	// Public endpoint, no token.
	w, resp := s.do(t, http.MethodGet, fmt.Sprintf("/api/reviews/user/%d", me.User.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []struct {
		Rating int `json:"rating"`
		Movie  struct {
			TmdbID int64  `json:"tmdbId"`
			Title  string `json:"title"`
		} `json:"movie"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(550), reviews[0].Movie.TmdbID)
	assert.Equal(t, "Fight Club", reviews[0].Movie.Title)
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	s := setupSuite(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodPut, "/api/users/profile"},
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodGet, "/api/collections"},
		{http.MethodPost, "/api/collections"},
		{http.MethodPost, "/api/reviews/550"},
	}

	for _, e := range endpoints {
		w, _ := s.do(t, e.method, e.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", e.method, e.path)
	}
}
