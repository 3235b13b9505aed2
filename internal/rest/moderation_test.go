package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/domain/mocks"
	"github.com/inkwell-blog/inkwell/internal/rest"
)

func newModerationRouter(svc domain.ModerationUsecase, actor *domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", actor.UserID)
			c.Set("is_admin", actor.Admin)
		})
	}
	h := rest.NewModerationHandler(svc)
	r.POST("/admin/comments/:id/read", h.MarkRead)
	r.GET("/admin/comments/unread", h.ListUnread)
	r.GET("/admin/comments/unread/count", h.UnreadCount)
	return r
}

func TestMarkReadEndpoint(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	id := uuid.NewString()
	admin := domain.Actor{UserID: 1, Admin: true}
	at := time.Now()
	by := admin.UserID
	svc.On("MarkRead", mock.Anything, id, admin).
		Return(&domain.ReadReceipt{ID: id, IsRead: true, ReadAt: &at, ReadBy: &by}, nil)

	r := newModerationRouter(svc, &admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/comments/"+id+"/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		ID     string `json:"id"`
		IsRead bool   `json:"is_read"`
		ReadBy *int64 `json:"read_by"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, id, res.ID)
	assert.True(t, res.IsRead)
	require.NotNil(t, res.ReadBy)
	assert.Equal(t, admin.UserID, *res.ReadBy)
}

func TestMarkReadEndpoint_NotFound(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	id := uuid.NewString()
	admin := domain.Actor{UserID: 1, Admin: true}
	svc.On("MarkRead", mock.Anything, id, admin).Return(nil, domain.ErrCommentNotFound)

	r := newModerationRouter(svc, &admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/comments/"+id+"/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnreadCountEndpoint(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	admin := domain.Actor{UserID: 1, Admin: true}
	svc.On("UnreadCount", mock.Anything, admin).Return(int64(4), nil)

	r := newModerationRouter(svc, &admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/comments/unread/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Unread int64 `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(4), res.Unread)
}

func TestListUnreadEndpoint(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	admin := domain.Actor{UserID: 1, Admin: true}
	authorID := int64(7)
	c := &domain.Comment{
		ID:        uuid.NewString(),
		ArticleID: 42,
		UserID:    &authorID,
		Content:   "pending moderation",
		CreatedAt: time.Now(),
		Article:   &domain.Article{ID: 42, Title: "Hello", Slug: "hello"},
		User:      &domain.User{ID: authorID, Name: "alice"},
	}
	svc.On("ListUnread", mock.Anything, admin, int64(50)).Return([]*domain.Comment{c}, nil)

	r := newModerationRouter(svc, &admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/comments/unread?limit=50", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Comments []struct {
			ID      string `json:"id"`
			Content string `json:"content"`
			Article *struct {
				Title string `json:"title"`
			} `json:"article"`
			User *struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Comments, 1)
	assert.Equal(t, c.ID, res.Comments[0].ID)
	require.NotNil(t, res.Comments[0].Article)
	assert.Equal(t, "Hello", res.Comments[0].Article.Title)
	require.NotNil(t, res.Comments[0].User)
	assert.Equal(t, "alice", res.Comments[0].User.Name)
}

func TestListUnreadEndpoint_DefaultLimit(t *testing.T) {
	// a missing limit reaches the service as zero, the service applies its
	// default
	svc := new(mocks.ModerationUsecase)
	admin := domain.Actor{UserID: 1, Admin: true}
	svc.On("ListUnread", mock.Anything, admin, int64(0)).Return([]*domain.Comment{}, nil)

	r := newModerationRouter(svc, &admin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/comments/unread", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestModerationEndpoints_NotAdmin(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	actor := domain.Actor{UserID: 5}
	svc.On("UnreadCount", mock.Anything, actor).Return(int64(0), domain.ErrForbidden)

	r := newModerationRouter(svc, &actor)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/comments/unread/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
