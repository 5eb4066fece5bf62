package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/subtrackify/subtrackify/config"
	"github.com/subtrackify/subtrackify/internal/api/middleware"
	"github.com/subtrackify/subtrackify/internal/model/dto"
	"github.com/subtrackify/subtrackify/internal/pkg/response"
	"github.com/subtrackify/subtrackify/internal/repository"
	"github.com/subtrackify/subtrackify/internal/service"
	"github.com/subtrackify/subtrackify/internal/testutil"
)

const testJWTSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      testJWTSecret,
			ExpireHours: 168,
		},
	}
}

func setupAuthHandler(t *testing.T) (*AuthHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, testConfig())
	handler := NewAuthHandler(authService)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, db, cleanup
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	return performAuthRequest(r, method, path, body, "")
}

func performAuthRequest(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

// asUser 注入认证身份，绕过 JWT 中间件
func asUser(userID int64, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.EmailKey, email)
		c.Next()
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Password: "Password123",
		Name:     "Test User",
	}

	w := performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "test@example.com", user["email"])
	// 密码哈希不下发
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Password: "Password123",
		Name:     "First User",
	}

	// First registration
	w := performRequest(router, "POST", "/register", req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email
	req.Name = "Second User"
	w = performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "User with this email already exists", resp.Error)
}

func TestAuthHandler_Register_InvalidRequest(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	tests := []struct {
		name string
		body map[string]string
	}{
		{
			name: "missing fields",
			body: map[string]string{"email": "invalid-email"},
		},
		{
			name: "short password",
			body: map[string]string{"email": "a@example.com", "password": "Ab1", "name": "Test"},
		},
		{
			name: "weak password",
			body: map[string]string{"email": "a@example.com", "password": "alllowercase", "name": "Test"},
		},
		{
			name: "short name",
			body: map[string]string{"email": "a@example.com", "password": "Password123", "name": "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, "POST", "/register", tt.body)
			resp := parseResponse(t, w)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	registerReq := dto.RegisterRequest{
		Email:    "login@example.com",
		Password: "Password123",
		Name:     "Login User",
	}
	w := performRequest(router, "POST", "/register", registerReq)
	require.Equal(t, http.StatusCreated, w.Code)

	loginReq := dto.LoginRequest{
		Email:    "login@example.com",
		Password: "Password123",
	}
	w = performRequest(router, "POST", "/login", loginReq)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	registerReq := dto.RegisterRequest{
		Email:    "known@example.com",
		Password: "Password123",
		Name:     "Known User",
	}
	w := performRequest(router, "POST", "/register", registerReq)
	require.Equal(t, http.StatusCreated, w.Code)

	// 未知邮箱与错误密码的响应完全一致
	wUnknown := performRequest(router, "POST", "/login", dto.LoginRequest{
		Email:    "nonexistent@example.com",
		Password: "Password123",
	})
	wWrong := performRequest(router, "POST", "/login", dto.LoginRequest{
		Email:    "known@example.com",
		Password: "WrongPassword1",
	})

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.JSONEq(t, wUnknown.Body.String(), wWrong.Body.String())
}

func TestAuthHandler_Login_InvalidRequest(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/login", map[string]string{})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)
	router.GET("/me", middleware.Auth(testJWTSecret), handler.Me)

	w := performRequest(router, "POST", "/register", dto.RegisterRequest{
		Email:    "me@example.com",
		Password: "Password123",
		Name:     "Me User",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := parseResponse(t, w)
	data := resp.Data.(map[string]interface{})
	token := data["token"].(string)

	// 注册拿到的 Token 直接可用
	w = performAuthRequest(router, "GET", "/me", nil, token)
	resp = parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	user, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "me@example.com", user["email"])
}

func TestAuthHandler_Me_NoToken(t *testing.T) {
	handler, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/me", middleware.Auth(testJWTSecret), handler.Me)

	w := performRequest(router, "GET", "/me", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No authorization header provided", resp.Error)
}
