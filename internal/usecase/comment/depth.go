package comment

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/domain"
)

// depthWalkLimit bounds the parent-chain walk. Valid trees never get close
// to this; hitting it means the chain loops back on itself.
const depthWalkLimit = 64

// errThreadCycle reports a parent chain that does not terminate.
var errThreadCycle = errors.New("comment parent chain does not terminate")

// commentIndex builds the arena-style id -> comment lookup for one article.
func commentIndex(comments []*domain.Comment) map[string]*domain.Comment {
	byID := make(map[string]*domain.Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}
	return byID
}

// commentDepth computes the nesting depth of c by walking its parent chain
// through byID, the full comment set of the same article. Top-level comments
// have depth 0. A dangling parent pointer ends the walk where it stands; the
// row is inconsistent but the thread stays readable.
func commentDepth(c *domain.Comment, byID map[string]*domain.Comment) (int, error) {
	depth := 0
	cur := c.ParentID
	for cur != nil {
		if depth >= depthWalkLimit {
			return 0, errThreadCycle
		}

		parent, ok := byID[*cur]
		if !ok {
			logrus.Warnf("comment %s has dangling parent %s, treating as top-level", c.ID, *cur)
			break
		}

		depth++
		cur = parent.ParentID
	}
	return depth, nil
}
