package folio

import "time"

// Health is the /healthz response body.
type Health struct {
	Status     string    `json:"status"`
	Generation string    `json:"generation,omitempty"`
	LoadedAt   time.Time `json:"loaded_at,omitempty"`
	Posts      int       `json:"posts"`
	Rejected   int       `json:"rejected"`
	Error      string    `json:"error,omitempty"`
}

// relatedPosts is how many same-category posts a post page links to.
const relatedPosts = 3
