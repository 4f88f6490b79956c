package itunes

// Kind selects which result type a query returns.
type Kind int

const (
	KindTrack      Kind = iota // Songs (media=music)
	KindCollection             // Albums (entity=album)
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Track represents a song returned by a track search.
type Track struct {
	ID             int64  `json:"trackId"`
	Name           string `json:"trackName"`
	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName"`
	ArtworkURL100  string `json:"artworkUrl100"`
}

// Collection represents an album returned by a collection search.
type Collection struct {
	ID            int64  `json:"collectionId"`
	Name          string `json:"collectionName"`
	ArtistName    string `json:"artistName"`
	ArtworkURL100 string `json:"artworkUrl100"`
}

// ResultKind reports KindTrack.
func (Track) ResultKind() Kind { return KindTrack }

// ResultKind reports KindCollection.
func (Collection) ResultKind() Kind { return KindCollection }

// Result is the set of types a search can decode.
type Result interface {
	Track | Collection
	ResultKind() Kind
}

// Page is one bounded response from the search endpoint.
type Page[T Result] struct {
	ResultCount int `json:"resultCount"` // Server's count hint for this page
	Results     []T `json:"results"`
}

// Query describes a single paged search request.
type Query struct {
	Term   string // Required: search term (URL-encoded by the client)
	Limit  int    // Required: page size, 1..MaxLimit
	Offset int    // Optional: number of results to skip
}
