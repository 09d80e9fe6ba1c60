package services

// Guest identity substituted when a caller supplies none.
const (
	GuestAuthorName = "Anonymous User"
	GuestAuthorID   = "anonymous"
)

// Actor is the identity the HTTP boundary vouches for on a request. The zero
// value is an anonymous visitor.
type Actor struct {
	ID       string
	Username string
}

func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}

// resolveAuthor picks the display name stored on a new record: the name the
// caller typed, else the session username, else the guest name.
func resolveAuthor(requested string, actor Actor) string {
	if requested != "" {
		return requested
	}
	if actor.Username != "" {
		return actor.Username
	}
	return GuestAuthorName
}

// resolveAuthorID decides the author id stored on new novels and comments.
// Every record is attributed to the guest id regardless of who is signed in;
// switching to real attribution means returning requested (or actor.ID) here.
func resolveAuthorID(requested string, actor Actor) string {
	return GuestAuthorID
}
