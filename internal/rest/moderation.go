package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/internal/rest/response"
)

type moderationHandler struct {
	Service domain.ModerationUsecase
}

func NewModerationHandler(svc domain.ModerationUsecase) *moderationHandler {
	return &moderationHandler{
		Service: svc,
	}
}

// MarkRead acknowledges a comment for moderation. Idempotent.
func (h *moderationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	receipt, err := h.Service.MarkRead(ctx, id, actorFromContext(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// UnreadCount returns the pending-moderation counter for the calling admin.
func (h *moderationHandler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	count, err := h.Service.UnreadCount(ctx, actorFromContext(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// ListUnread returns unread comments newest-first, enriched with article and
// author snapshots. The service clamps the limit.
func (h *moderationHandler) ListUnread(c *gin.Context) {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		limit = 0
	}

	ctx := c.Request.Context()
	comments, err := h.Service.ListUnread(ctx, actorFromContext(c), limit)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.UnreadComment, len(comments))
	for i := range comments {
		res[i] = response.NewUnreadCommentFromDomain(comments[i])
	}
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
