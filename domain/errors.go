package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnauthorized will throw if no authenticated actor is attached to the request
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden will throw if the actor lacks the capability for the action
	ErrForbidden = errors.New("you are not allowed to do this")

	// ErrArticleNotFound will throw if the referenced article does not exist
	ErrArticleNotFound = errors.New("article is not found")
	// ErrParentNotFound will throw if the referenced parent comment does not exist
	ErrParentNotFound = errors.New("parent comment is not found")
	// ErrCommentNotFound will throw if the referenced comment does not exist
	ErrCommentNotFound = errors.New("comment is not found")
	// ErrMaxDepthExceeded will throw if a reply would nest deeper than MaxCommentDepth
	ErrMaxDepthExceeded = errors.New("comment nesting depth limit exceeded")
)
