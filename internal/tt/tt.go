// File internal/tt/tt.go
package tt

// Flag marks how a stored score relates to the true minimax value:
// Exact, a fail-low Upper bound, or a fail-high Lower bound.
type Flag uint8

const (
	Exact Flag = iota
	Lower
	Upper
)

// Entry is one transposition table slot.
type Entry struct {
	Hash     uint64
	Depth    int8
	Score    int32
	Flag     Flag
	BestMove uint32
}

// defaultPow is the default table size as a power of two (2^18 slots).
const defaultPow = 18

// Table is a fixed-size, single-slot replace-always transposition
// table indexed by the low bits of the Zobrist hash.
type Table struct {
	slots    []Entry
	sizeMask uint64
}

// New allocates a Table with 2^pow slots.
func New(pow uint8) *Table {
	t := &Table{}
	t.Resize(pow)
	return t
}

// NewDefault allocates a Table at the default size.
func NewDefault() *Table {
	return New(defaultPow)
}

// Resize reallocates the table to 2^pow slots, discarding all entries.
func (t *Table) Resize(pow uint8) {
	size := 1 << pow
	t.slots = make([]Entry, size)
	t.sizeMask = uint64(size - 1)
}

// Clear marks every slot empty without reallocating.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
}

// Probe looks up hash. hit is false on a miss or a hash collision in
// the slot; Probe itself does not consult depth — the
// engine's single-slot policy means a hit is always usable as at
// least a move-ordering hint, and the caller decides whether the
// stored depth/flag satisfy an exact cutoff.
func (t *Table) Probe(hash uint64) (e Entry, hit bool) {
	slot := &t.slots[hash&t.sizeMask]
	if slot.Hash != hash {
		return Entry{}, false
	}
	return *slot, true
}

// Store always overwrites the slot for hash, regardless of the
// previous occupant's depth — a deliberate simplification from
// depth-preferred replacement, appropriate for the node budgets this
// engine runs under.
func (t *Table) Store(hash uint64, depth int8, score int32, flag Flag, best uint32) {
	slot := &t.slots[hash&t.sizeMask]
	slot.Hash = hash
	slot.Depth = depth
	slot.Score = score
	slot.Flag = flag
	slot.BestMove = best
}
