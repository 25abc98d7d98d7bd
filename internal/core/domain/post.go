package domain

// ExternalPost is a community discussion post fetched for one request.
// Posts are never persisted; they exist only while a query is ranked.
type ExternalPost struct {
	// ID is the post identifier assigned by the forum.
	ID string

	// Title is the post title.
	Title string

	// Body is the free-text body. May be empty for link or image posts.
	Body string

	// Forum is the origin forum label (subreddit name).
	Forum string

	// Author is the posting account name.
	Author string

	// Score is the forum's vote score.
	Score int

	// Comments is the comment count.
	Comments int
}

// Valid reports whether the post carries the minimum fields required
// to be a scoring candidate. Malformed fragments are dropped silently.
func (p ExternalPost) Valid() bool {
	return p.ID != "" && p.Title != ""
}
