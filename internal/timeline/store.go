package timeline

import "errors"

const (
	// DefaultCapacity is the number of tweets a timeline holds.
	DefaultCapacity = 10

	// DefaultStartID is the id given to the first tweet of an empty timeline.
	DefaultStartID = 100
)

var (
	ErrFull            = errors.New("timeline is full")
	ErrEmpty           = errors.New("timeline is empty")
	ErrNotFound        = errors.New("tweet not found")
	ErrNoSelection     = errors.New("no tweet is selected")
	ErrInvalidPosition = errors.New("position out of range")
)

// Record is a single tweet.
type Record struct {
	ID      int
	Message Message
	Likes   int
}

// Options configures a Store. Non-positive values fall back to the defaults.
type Options struct {
	Capacity         int
	StartID          int
	MaxMessageLength int
	Logger           Logger
}

// Store is a fixed-capacity, insertion-ordered sequence of tweets together
// with the currently selected position.
//
// A Store is not safe for concurrent use; it is driven by a single menu loop.
type Store struct {
	records   []Record
	selection Selection
	capacity  int
	startID   int
	maxLen    int
	logger    Logger
}

// New creates an empty Store.
func New(opts Options) *Store {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.StartID <= 0 {
		opts.StartID = DefaultStartID
	}
	if opts.MaxMessageLength <= 0 {
		opts.MaxMessageLength = DefaultMaxMessageLength
	}
	if opts.Logger == nil {
		opts.Logger = NewNopLogger()
	}

	return &Store{
		records:  make([]Record, 0, opts.Capacity),
		capacity: opts.Capacity,
		startID:  opts.StartID,
		maxLen:   opts.MaxMessageLength,
		logger:   opts.Logger,
	}
}

// Len returns the number of tweets in the timeline.
func (s *Store) Len() int { return len(s.records) }

// Cap returns the maximum number of tweets the timeline holds.
func (s *Store) Cap() int { return s.capacity }

// MaxMessageLength returns the message limit in runes.
func (s *Store) MaxMessageLength() int { return s.maxLen }

// Selection returns the current selection.
func (s *Store) Selection() Selection { return s.selection }

// Records returns a copy of the timeline in order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// NextID returns the id the next added tweet will get: the start id for an
// empty timeline, otherwise one more than the highest id present.
//
// The value is derived from the current contents, so deleting the tweet with
// the highest id lets a later Add reissue that id.
func (s *Store) NextID() int {
	if len(s.records) == 0 {
		return s.startID
	}

	maxID := s.records[0].ID
	for _, r := range s.records[1:] {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// Add appends a tweet and returns its position. The selection is left alone;
// callers that want the new tweet selected pass the position to Adopt.
func (s *Store) Add(message string) (int, error) {
	if len(s.records) == s.capacity {
		return -1, ErrFull
	}

	rec := Record{
		ID:      s.NextID(),
		Message: NewMessage(message, s.maxLen),
	}
	s.records = append(s.records, rec)

	pos := len(s.records) - 1
	s.logger.Debug("tweet added", "id", rec.ID, "position", pos)
	return pos, nil
}

// Select returns the position of the tweet with the given id.
// It does not change the selection.
func (s *Store) Select(id int) (int, error) {
	if len(s.records) == 0 {
		return -1, ErrEmpty
	}

	for i, r := range s.records {
		if r.ID == id {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Adopt makes pos the current selection.
func (s *Store) Adopt(pos int) error {
	if pos < 0 || pos >= len(s.records) {
		return ErrInvalidPosition
	}
	s.selection = At(pos)
	return nil
}

// selected returns the selected position, or ErrNoSelection.
func (s *Store) selected() (int, error) {
	pos, ok := s.selection.Position()
	if !ok || pos >= len(s.records) {
		return -1, ErrNoSelection
	}
	return pos, nil
}

// Edit replaces the message of the selected tweet. Id and likes are kept.
func (s *Store) Edit(message string) error {
	pos, err := s.selected()
	if err != nil {
		return err
	}

	s.records[pos].Message = NewMessage(message, s.maxLen)
	s.logger.Debug("tweet edited", "id", s.records[pos].ID)
	return nil
}

// Like adds one like to the selected tweet.
func (s *Store) Like() error {
	pos, err := s.selected()
	if err != nil {
		return err
	}

	s.records[pos].Likes++
	s.logger.Debug("tweet liked", "id", s.records[pos].ID, "likes", s.records[pos].Likes)
	return nil
}

// Delete removes the selected tweet, shifts the following tweets down by one
// position and clears the selection.
func (s *Store) Delete() error {
	pos, err := s.selected()
	if err != nil {
		return err
	}

	id := s.records[pos].ID
	copy(s.records[pos:], s.records[pos+1:])
	s.records[len(s.records)-1] = Record{}
	s.records = s.records[:len(s.records)-1]
	s.selection = NoSelection()

	s.logger.Debug("tweet deleted", "id", id, "position", pos)
	return nil
}
