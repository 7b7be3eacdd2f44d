package storage

// Content type constants for the autopost alternator.
const (
	ContentJoke   = "joke"
	ContentHourly = "hourly"
)

type alternatorDoc struct {
	LastType string `json:"last_type"`
}

// StateStore persists the joke/hourly alternation across restarts,
// shaped {"last_type": "joke"|"hourly"|null}.
type StateStore struct {
	path string
}

// NewStateStore creates a StateStore backed by path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// LastType returns the content type of the last successful autopost, or ""
// when none has been recorded yet.
func (s *StateStore) LastType() string {
	var doc alternatorDoc
	if err := readJSON(s.path, &doc); err != nil {
		warnLoad(s.path, err)
		return ""
	}
	return doc.LastType
}

// SetLastType records the content type of a successful autopost.
func (s *StateStore) SetLastType(contentType string) error {
	return writeJSON(s.path, alternatorDoc{LastType: contentType})
}
