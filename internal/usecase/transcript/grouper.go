package transcript

import (
	"fmt"
	"strings"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// ChangeKind tells the caller whether a turn opened a new block or extended
// the last one
type ChangeKind string

const (
	ChangeAppended ChangeKind = "appended"
	ChangeMerged   ChangeKind = "merged"
)

// Change describes the effect of one turn on the block sequence
type Change struct {
	Kind  ChangeKind     `json:"kind"`
	Index int            `json:"index"`
	Block entities.Block `json:"block"`
}

// Group coalesces consecutive same-speaker turns into blocks. It stops at the
// first turn whose speaker is not one of the two known roles.
func Group(turns []entities.Turn) ([]entities.Block, error) {
	blocks := make([]entities.Block, 0, len(turns))
	for i, t := range turns {
		var err error
		if blocks, _, err = merge(blocks, t); err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
	}
	return blocks, nil
}

// Grouper builds the block sequence one turn at a time.
// It is not safe for concurrent use.
type Grouper struct {
	blocks []entities.Block
}

// NewGrouper creates an empty incremental grouper
func NewGrouper() *Grouper {
	return &Grouper{blocks: make([]entities.Block, 0)}
}

// Add folds the turn into the sequence and reports what changed. A turn with
// an unknown speaker leaves the sequence untouched.
func (g *Grouper) Add(turn entities.Turn) (Change, error) {
	blocks, change, err := merge(g.blocks, turn)
	if err != nil {
		return Change{}, err
	}
	g.blocks = blocks
	return change, nil
}

// Blocks returns a snapshot of the current sequence
func (g *Grouper) Blocks() []entities.Block {
	out := make([]entities.Block, len(g.blocks))
	copy(out, g.blocks)
	return out
}

// Len returns the number of blocks
func (g *Grouper) Len() int {
	return len(g.blocks)
}

// merge is the single step shared by batch and incremental grouping
func merge(blocks []entities.Block, turn entities.Turn) ([]entities.Block, Change, error) {
	if !turn.Speaker.Valid() {
		return blocks, Change{}, fmt.Errorf("%w: %q", entities.ErrUnknownSpeaker, turn.Speaker)
	}
	if n := len(blocks); n > 0 && blocks[n-1].Speaker == turn.Speaker {
		blocks[n-1].Text += " " + turn.Text
		return blocks, Change{Kind: ChangeMerged, Index: n - 1, Block: blocks[n-1]}, nil
	}
	blocks = append(blocks, entities.Block{Speaker: turn.Speaker, Text: turn.Text})
	return blocks, Change{Kind: ChangeAppended, Index: len(blocks) - 1, Block: blocks[len(blocks)-1]}, nil
}

// HasCandidateSpeech reports whether any candidate block has non-blank text
func HasCandidateSpeech(blocks []entities.Block) bool {
	for _, b := range blocks {
		if b.Speaker.IsCandidate() && strings.TrimSpace(b.Text) != "" {
			return true
		}
	}
	return false
}
