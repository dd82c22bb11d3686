package reading

// HistoryCapacity is the number of readings kept.
const HistoryCapacity = 5

// History holds the most recent readings, newest first. It is not safe for
// concurrent use; the session that owns it serializes access.
type History struct {
	entries []Reading
}

func NewHistory() *History {
	return &History{entries: make([]Reading, 0, HistoryCapacity+1)}
}

// Record inserts r as the most recent reading, evicting the oldest once
// more than HistoryCapacity are held.
func (h *History) Record(r Reading) {
	h.entries = append(h.entries, Reading{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = r
	if len(h.entries) > HistoryCapacity {
		h.entries[HistoryCapacity] = Reading{}
		h.entries = h.entries[:HistoryCapacity]
	}
}

// List returns a snapshot of the history, newest first.
func (h *History) List() []Reading {
	return append([]Reading(nil), h.entries...)
}

func (h *History) Len() int {
	return len(h.entries)
}

// Latest returns the most recent reading, if any.
func (h *History) Latest() (Reading, bool) {
	if len(h.entries) == 0 {
		return Reading{}, false
	}
	return h.entries[0], true
}
