package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGet_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	router := gin.New()
	router.GET("/tickets", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotRequestID = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	api := New(srv.URL, WithTokenSource(func() string { return "token123" }))
	var out map[string]any
	err := api.Get(context.Background(), "/tickets", &out)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, true, out["ok"])
}

func TestGet_NoTokenLeavesRequestUnauthenticated(t *testing.T) {
	var gotAuth string
	router := gin.New()
	router.GET("/tickets", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.Status(http.StatusOK)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	api := New(srv.URL, WithTokenSource(func() string { return "" }))
	err := api.Get(context.Background(), "/tickets", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestErrorNormalization_ServerMessage(t *testing.T) {
	router := gin.New()
	router.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	api := New(srv.URL)
	err := api.Post(context.Background(), "/auth/login", gin.H{}, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid password", apiErr.Message)
	assert.True(t, IsUnauthorized(err))
}

func TestErrorNormalization_FallbackMessage(t *testing.T) {
	router := gin.New()
	router.GET("/tickets", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	api := New(srv.URL)
	err := api.Get(context.Background(), "/tickets", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, FallbackMessage, apiErr.Message)
}

func TestErrorNormalization_TransportFailure(t *testing.T) {
	api := New("http://127.0.0.1:1") // nothing listens here
	err := api.Get(context.Background(), "/tickets", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.False(t, IsUnauthorized(err))
}

func TestUnauthorizedHookFires(t *testing.T) {
	router := gin.New()
	router.GET("/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "token expired"})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	fired := false
	api := New(srv.URL, WithUnauthorizedHook(func() { fired = true }))
	err := api.Get(context.Background(), "/auth/me", nil)
	require.Error(t, err)
	assert.True(t, fired)
}

func TestPostMultipart_FieldsAndFiles(t *testing.T) {
	var gotCategory string
	var gotFiles []string
	router := gin.New()
	router.POST("/service-requests", func(c *gin.Context) {
		gotCategory = c.PostForm("category")
		form, err := c.MultipartForm()
		require.NoError(t, err)
		for _, fh := range form.File["images"] {
			gotFiles = append(gotFiles, fh.Filename)
		}
		c.JSON(http.StatusCreated, gin.H{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	api := New(srv.URL)
	files := []File{
		{FieldName: "images", FileName: "one.png", ContentType: "image/png", Data: []byte{1, 2}},
		{FieldName: "images", FileName: "two.png", ContentType: "image/png", Data: []byte{3, 4}},
	}
	err := api.PostMultipart(context.Background(), "/service-requests", map[string]string{"category": "CCTV"}, files, nil)
	require.NoError(t, err)
	assert.Equal(t, "CCTV", gotCategory)
	assert.Equal(t, []string{"one.png", "two.png"}, gotFiles)
}

func TestContextCancellationStopsRequest(t *testing.T) {
	router := gin.New()
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := New(srv.URL)
	err := api.Get(ctx, "/slow", nil)
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.StatusCode)
}
