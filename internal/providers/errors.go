package providers

import "errors"

// ErrNoPosts indicates the channel page has no message elements, usually because the layout changed.
var ErrNoPosts = errors.New("no posts found on channel page")
