package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/internal/rest/request"
	"github.com/inkwell-blog/inkwell/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// CreateComment accepts a submission from a logged-in user (token identity)
// or a guest (author_name in the body); the two are mutually exclusive and
// the token wins when both are present.
func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	articleID := int64(idP)

	var author domain.CommentAuthor
	if actor := actorFromContext(c); actor.Authenticated() {
		author, err = domain.RegisteredAuthor(actor.UserID)
	} else {
		author, err = domain.AnonymousAuthor(req.AuthorName)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "either login or supply an author name"})
		return
	}

	in := domain.CreateCommentInput{
		ArticleID: articleID,
		Content:   req.Content,
		ParentID:  req.ParentID,
		Author:    author,
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Create(ctx, in)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(comment))
}

// DeleteComment removes a comment and its whole reply subtree. Admin only.
func (h *commentHandler) DeleteComment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrCommentNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, id, actorFromContext(c)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// FetchCommentsByArticle returns one page of threaded comments.
func (h *commentHandler) FetchCommentsByArticle(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	cursor := c.Query("cursor")

	ctx := c.Request.Context()
	comments, nextCursor, err := h.Service.FetchByArticle(ctx, id, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(comments[i])
	}

	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
