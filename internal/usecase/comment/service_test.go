package comment_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/domain/mocks"
	ucase "github.com/inkwell-blog/inkwell/internal/usecase/comment"
)

const testArticleID = int64(42)

type serviceMocks struct {
	commentRepo *mocks.CommentRepository
	articleRepo *mocks.ArticleRepository
	bloomRepo   *mocks.BloomRepository
	countSyncer *mocks.CommentCountSyncer
}

func newService(t *testing.T) (domain.CommentUsecase, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		commentRepo: new(mocks.CommentRepository),
		articleRepo: new(mocks.ArticleRepository),
		bloomRepo:   new(mocks.BloomRepository),
		countSyncer: new(mocks.CommentCountSyncer),
	}
	svc := ucase.NewService(m.commentRepo, m.articleRepo, m.bloomRepo, m.countSyncer)
	return svc, m
}

func articleExists(m serviceMocks) {
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).Return(true, nil)
	m.articleRepo.On("GetByID", mock.Anything, testArticleID).Return(domain.Article{ID: testArticleID}, nil)
}

func anonAuthor(t *testing.T, name string) domain.CommentAuthor {
	t.Helper()
	a, err := domain.AnonymousAuthor(name)
	require.NoError(t, err)
	return a
}

func registeredAuthor(t *testing.T, uid int64) domain.CommentAuthor {
	t.Helper()
	a, err := domain.RegisteredAuthor(uid)
	require.NoError(t, err)
	return a
}

func TestCreate_Anonymous(t *testing.T) {
	svc, m := newService(t)
	articleExists(m)
	m.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	m.countSyncer.On("Send", domain.CommentCountDelta{ArticleID: testArticleID, Delta: 1}).Return()

	c, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		Author:    anonAuthor(t, "Guest"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, testArticleID, c.ArticleID)
	assert.False(t, c.IsRead)
	assert.Nil(t, c.ReadAt)
	assert.Nil(t, c.UserID)
	require.NotNil(t, c.AuthorName)
	assert.Equal(t, "Guest", *c.AuthorName)
	assert.Nil(t, c.ParentID)
	m.commentRepo.AssertExpectations(t)
	m.countSyncer.AssertExpectations(t)
}

func TestCreate_Registered(t *testing.T) {
	svc, m := newService(t)
	articleExists(m)
	m.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	m.countSyncer.On("Send", mock.Anything).Return()

	c, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   faker.Sentence(),
		Author:    registeredAuthor(t, 7),
	})

	require.NoError(t, err)
	require.NotNil(t, c.UserID)
	assert.Equal(t, int64(7), *c.UserID)
	assert.Nil(t, c.AuthorName)
}

func TestCreate_MissingAuthorIdentity(t *testing.T) {
	svc, m := newService(t)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		// zero CommentAuthor: neither user id nor author name
	})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreate_ContentBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
		{"over the length bound", strings.Repeat("x", domain.MaxCommentLength+1)},
		{"over the length bound in runes", strings.Repeat("评", domain.MaxCommentLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			_, err := svc.Create(context.Background(), domain.CreateCommentInput{
				ArticleID: testArticleID,
				Content:   tt.content,
				Author:    anonAuthor(t, "Guest"),
			})

			assert.ErrorIs(t, err, domain.ErrBadParamInput)
			m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_AnonymousNameRules(t *testing.T) {
	_, err := domain.AnonymousAuthor("")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = domain.AnonymousAuthor(strings.Repeat("n", domain.MaxAuthorNameLength+1))
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	a, err := domain.AnonymousAuthor("Guest")
	require.NoError(t, err)
	name, ok := a.Name()
	assert.True(t, ok)
	assert.Equal(t, "Guest", name)

	// the bound counts characters, not bytes: a multibyte name at the
	// ceiling is accepted, one character over is not
	_, err = domain.AnonymousAuthor(strings.Repeat("名", domain.MaxAuthorNameLength))
	assert.NoError(t, err)

	_, err = domain.AnonymousAuthor(strings.Repeat("名", domain.MaxAuthorNameLength+1))
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestCreate_BloomLookupFailureFailsOpen(t *testing.T) {
	// a broken filter must not block submissions; the store check is the
	// authority on article existence
	svc, m := newService(t)
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).
		Return(false, errors.New("redis down"))
	m.articleRepo.On("GetByID", mock.Anything, testArticleID).
		Return(domain.Article{ID: testArticleID}, nil)
	m.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	m.countSyncer.On("Send", mock.Anything).Return()

	c, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		Author:    anonAuthor(t, "Guest"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	m.commentRepo.AssertExpectations(t)
}

func TestCreate_ArticleAbsentInBloom(t *testing.T) {
	svc, m := newService(t)
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).Return(false, nil)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		Author:    anonAuthor(t, "Guest"),
	})

	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	m.articleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreate_ArticleAbsentInStore(t *testing.T) {
	// the bloom filter answers "maybe", the store says no
	svc, m := newService(t)
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).Return(true, nil)
	m.articleRepo.On("GetByID", mock.Anything, testArticleID).Return(domain.Article{}, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		Author:    anonAuthor(t, "Guest"),
	})

	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestCreate_ParentNotFound(t *testing.T) {
	svc, m := newService(t)
	articleExists(m)
	parentID := uuid.NewString()
	m.commentRepo.On("GetByID", mock.Anything, parentID).Return(nil, domain.ErrCommentNotFound)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		ParentID:  &parentID,
		Author:    anonAuthor(t, "Guest"),
	})

	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestCreate_CrossArticleParentRejected(t *testing.T) {
	svc, m := newService(t)
	articleExists(m)
	parentID := uuid.NewString()
	m.commentRepo.On("GetByID", mock.Anything, parentID).
		Return(&domain.Comment{ID: parentID, ArticleID: testArticleID + 1}, nil)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		ParentID:  &parentID,
		Author:    anonAuthor(t, "Guest"),
	})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

// thread fixture: top -> reply1 -> reply2, depths 0, 1, 2
func threadFixture() (top, reply1, reply2 *domain.Comment) {
	top = &domain.Comment{ID: uuid.NewString(), ArticleID: testArticleID}
	reply1 = &domain.Comment{ID: uuid.NewString(), ArticleID: testArticleID, ParentID: &top.ID, RootID: &top.ID}
	reply2 = &domain.Comment{ID: uuid.NewString(), ArticleID: testArticleID, ParentID: &reply1.ID, RootID: &top.ID}
	return
}

func TestCreate_ReplyToDepthOneSucceeds(t *testing.T) {
	svc, m := newService(t)
	articleExists(m)
	top, reply1, _ := threadFixture()

	m.commentRepo.On("GetByID", mock.Anything, reply1.ID).Return(reply1, nil)
	m.commentRepo.On("FetchByArticle", mock.Anything, testArticleID).
		Return([]*domain.Comment{top, reply1}, nil)
	m.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	m.countSyncer.On("Send", mock.Anything).Return()

	c, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		ParentID:  &reply1.ID,
		Author:    anonAuthor(t, "Guest"),
	})

	require.NoError(t, err)
	require.NotNil(t, c.ParentID)
	assert.Equal(t, reply1.ID, *c.ParentID)
	require.NotNil(t, c.RootID)
	assert.Equal(t, top.ID, *c.RootID)
}

func TestCreate_ReplyToDepthTwoRejected(t *testing.T) {
	svc, m := newService(t)
	articleExists(m)
	top, reply1, reply2 := threadFixture()

	m.commentRepo.On("GetByID", mock.Anything, reply2.ID).Return(reply2, nil)
	m.commentRepo.On("FetchByArticle", mock.Anything, testArticleID).
		Return([]*domain.Comment{top, reply1, reply2}, nil)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "one level too deep",
		ParentID:  &reply2.ID,
		Author:    anonAuthor(t, "Guest"),
	})

	assert.ErrorIs(t, err, domain.ErrMaxDepthExceeded)
	m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreate_ParentDeletedRaceSurfaces(t *testing.T) {
	// the parent passed validation but was cascade-deleted before the
	// insert; the store's referential integrity reports it
	svc, m := newService(t)
	articleExists(m)
	top, reply1, _ := threadFixture()

	m.commentRepo.On("GetByID", mock.Anything, reply1.ID).Return(reply1, nil)
	m.commentRepo.On("FetchByArticle", mock.Anything, testArticleID).
		Return([]*domain.Comment{top, reply1}, nil)
	m.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Return(domain.ErrParentNotFound)

	_, err := svc.Create(context.Background(), domain.CreateCommentInput{
		ArticleID: testArticleID,
		Content:   "Nice post!",
		ParentID:  &reply1.ID,
		Author:    anonAuthor(t, "Guest"),
	})

	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	m.countSyncer.AssertNotCalled(t, "Send", mock.Anything)
}

func TestDelete_RequiresAuthentication(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Delete(context.Background(), uuid.NewString(), domain.Actor{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDelete_RequiresAdmin(t *testing.T) {
	svc, m := newService(t)

	err := svc.Delete(context.Background(), uuid.NewString(), domain.Actor{UserID: 5})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	m.commentRepo.AssertNotCalled(t, "DeleteSubtree", mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	svc, m := newService(t)
	id := uuid.NewString()
	m.commentRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCommentNotFound)

	err := svc.Delete(context.Background(), id, domain.Actor{UserID: 5, Admin: true})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestDelete_CascadeReportsRemovedRows(t *testing.T) {
	svc, m := newService(t)
	top, _, _ := threadFixture()

	m.commentRepo.On("GetByID", mock.Anything, top.ID).Return(top, nil)
	m.commentRepo.On("DeleteSubtree", mock.Anything, top.ID).Return(int64(3), nil)
	m.countSyncer.On("Send", domain.CommentCountDelta{ArticleID: testArticleID, Delta: -3}).Return()

	err := svc.Delete(context.Background(), top.ID, domain.Actor{UserID: 5, Admin: true})
	require.NoError(t, err)
	m.countSyncer.AssertExpectations(t)
}

func TestFetchByArticle_NestsReplies(t *testing.T) {
	svc, m := newService(t)
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).Return(true, nil)
	top, reply1, reply2 := threadFixture()

	m.commentRepo.On("FetchRoots", mock.Anything, testArticleID, "", int64(10)).
		Return([]*domain.Comment{top}, nil)
	m.commentRepo.On("FetchReplies", mock.Anything, []string{top.ID}).
		Return([]*domain.Comment{reply1, reply2}, nil)

	roots, nextCursor, err := svc.FetchByArticle(context.Background(), testArticleID, "", 10)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.NotEmpty(t, nextCursor)

	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, reply1.ID, roots[0].Replies[0].ID)
	require.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, reply2.ID, roots[0].Replies[0].Replies[0].ID)
}

func TestFetchByArticle_RepliesLoadFails(t *testing.T) {
	// a failed reply load surfaces as an internal error, never as a
	// silently truncated thread
	svc, m := newService(t)
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).Return(true, nil)
	top, _, _ := threadFixture()

	m.commentRepo.On("FetchRoots", mock.Anything, testArticleID, "", int64(10)).
		Return([]*domain.Comment{top}, nil)
	m.commentRepo.On("FetchReplies", mock.Anything, []string{top.ID}).
		Return(nil, errors.New("connection reset"))

	res, nextCursor, err := svc.FetchByArticle(context.Background(), testArticleID, "", 10)

	assert.ErrorIs(t, err, domain.ErrInternalServerError)
	assert.Nil(t, res)
	assert.Empty(t, nextCursor)
}

func TestFetchByArticle_UnknownArticle(t *testing.T) {
	svc, m := newService(t)
	m.bloomRepo.On("Exists", mock.Anything, testArticleID).Return(false, nil)

	_, _, err := svc.FetchByArticle(context.Background(), testArticleID, "", 10)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}
