package request

// Comment is the submission body. The article id comes from the URL, the
// registered author (if any) from the session token. Length ceilings are
// enforced by the comment service against the domain constants.
type Comment struct {
	Content    string  `json:"content" binding:"required"`
	AuthorName string  `json:"author_name" binding:"omitempty,min=1,max=100"`
	ParentID   *string `json:"parent_id" binding:"omitempty,uuid4"`
}
