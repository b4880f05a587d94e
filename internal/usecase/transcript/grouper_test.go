package transcript

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

func turn(s entities.Speaker, text string) entities.Turn {
	return entities.Turn{Speaker: s, Text: text}
}

func TestGroup_Empty(t *testing.T) {
	blocks := mustGroup(t, nil)
	if blocks == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(blocks) != 0 {
		t.Fatalf("expected 0 blocks, got %d", len(blocks))
	}
}

func TestGroup_SingleTurn(t *testing.T) {
	blocks := mustGroup(t, []entities.Turn{turn(entities.SpeakerAgent, "Hello")})
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Speaker != entities.SpeakerAgent || blocks[0].Text != "Hello" {
		t.Fatalf("unexpected block %+v", blocks[0])
	}
}

func TestGroup_MergesConsecutiveSpeakers(t *testing.T) {
	turns := []entities.Turn{
		turn(entities.SpeakerCandidate, "Hi"),
		turn(entities.SpeakerCandidate, "there"),
		turn(entities.SpeakerAgent, "Hello"),
	}
	blocks := mustGroup(t, turns)
	want := []entities.Block{
		{Speaker: entities.SpeakerCandidate, Text: "Hi there"},
		{Speaker: entities.SpeakerAgent, Text: "Hello"},
	}
	assertBlocks(t, blocks, want)
}

func TestGroup_AlternatingSpeakersKeepOrder(t *testing.T) {
	turns := []entities.Turn{
		turn(entities.SpeakerAgent, "Tell me about yourself."),
		turn(entities.SpeakerCandidate, "I am"),
		turn(entities.SpeakerCandidate, "a developer."),
		turn(entities.SpeakerAgent, "Great."),
		turn(entities.SpeakerAgent, "Next question."),
		turn(entities.SpeakerCandidate, "Sure."),
	}
	want := []entities.Block{
		{Speaker: entities.SpeakerAgent, Text: "Tell me about yourself."},
		{Speaker: entities.SpeakerCandidate, Text: "I am a developer."},
		{Speaker: entities.SpeakerAgent, Text: "Great. Next question."},
		{Speaker: entities.SpeakerCandidate, Text: "Sure."},
	}
	assertBlocks(t, mustGroup(t, turns), want)
}

func TestGroup_EmptyTextStillJoinedWithSpace(t *testing.T) {
	turns := []entities.Turn{
		turn(entities.SpeakerCandidate, "a"),
		turn(entities.SpeakerCandidate, ""),
		turn(entities.SpeakerCandidate, "b"),
	}
	assertBlocks(t, mustGroup(t, turns), []entities.Block{{Speaker: entities.SpeakerCandidate, Text: "a  b"}})
}

func TestGrouper_SignalsAppendAndMerge(t *testing.T) {
	g := NewGrouper()

	c := mustAdd(t, g, turn(entities.SpeakerCandidate, "Hi"))
	if c.Kind != ChangeAppended || c.Index != 0 || c.Block.Text != "Hi" {
		t.Fatalf("unexpected first change %+v", c)
	}

	c = mustAdd(t, g, turn(entities.SpeakerCandidate, "there"))
	if c.Kind != ChangeMerged || c.Index != 0 || c.Block.Text != "Hi there" {
		t.Fatalf("unexpected merge change %+v", c)
	}

	c = mustAdd(t, g, turn(entities.SpeakerAgent, "Hello"))
	if c.Kind != ChangeAppended || c.Index != 1 {
		t.Fatalf("unexpected append change %+v", c)
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 blocks, got %d", g.Len())
	}
}

func TestGrouper_SnapshotIsNotAliased(t *testing.T) {
	g := NewGrouper()
	mustAdd(t, g, turn(entities.SpeakerCandidate, "one"))
	snap := g.Blocks()
	mustAdd(t, g, turn(entities.SpeakerCandidate, "two"))

	if snap[0].Text != "one" {
		t.Fatalf("snapshot changed after Add: %q", snap[0].Text)
	}
	snap[0].Text = "mutated"
	if g.Blocks()[0].Text != "one two" {
		t.Fatalf("grouper state changed through snapshot")
	}
}

func TestGroup_IncrementalMatchesBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"um", "so", "I", "built", "a", "service", "", "  ", "<mark>", "ok."}

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(20)
		turns := make([]entities.Turn, 0, n)
		for i := 0; i < n; i++ {
			s := entities.SpeakerCandidate
			if rng.Intn(2) == 0 {
				s = entities.SpeakerAgent
			}
			turns = append(turns, turn(s, words[rng.Intn(len(words))]))
		}

		batch := mustGroup(t, turns)
		g := NewGrouper()
		for _, tr := range turns {
			mustAdd(t, g, tr)
		}
		assertBlocks(t, g.Blocks(), batch)

		// no two adjacent blocks share a speaker
		for i := 1; i < len(batch); i++ {
			if batch[i].Speaker == batch[i-1].Speaker {
				t.Fatalf("adjacent blocks %d and %d share speaker %s", i-1, i, batch[i].Speaker)
			}
		}

		// block texts without separators reproduce the turn texts
		var fromTurns, fromBlocks strings.Builder
		for _, tr := range turns {
			fromTurns.WriteString(tr.Text)
		}
		for _, b := range batch {
			fromBlocks.WriteString(b.Text)
		}
		if strings.ReplaceAll(fromBlocks.String(), " ", "") != strings.ReplaceAll(fromTurns.String(), " ", "") {
			t.Fatalf("text not preserved: turns=%q blocks=%q", fromTurns.String(), fromBlocks.String())
		}
	}
}

func TestGroup_RejectsUnknownSpeaker(t *testing.T) {
	cases := []struct {
		name    string
		speaker entities.Speaker
	}{
		{"system role", entities.Speaker("system")},
		{"zero value", entities.Speaker("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			turns := []entities.Turn{
				turn(entities.SpeakerCandidate, "hi"),
				turn(tc.speaker, "you are a bot"),
				turn(entities.SpeakerCandidate, "there"),
			}
			blocks, err := Group(turns)
			if !errors.Is(err, entities.ErrUnknownSpeaker) {
				t.Fatalf("expected ErrUnknownSpeaker, got %v", err)
			}
			if blocks != nil {
				t.Fatalf("expected no blocks on error, got %+v", blocks)
			}
		})
	}
}

func TestGrouper_RejectsUnknownSpeaker(t *testing.T) {
	g := NewGrouper()
	mustAdd(t, g, turn(entities.SpeakerCandidate, "hi"))

	for _, s := range []entities.Speaker{"system", ""} {
		if _, err := g.Add(turn(s, "zero")); !errors.Is(err, entities.ErrUnknownSpeaker) {
			t.Fatalf("speaker %q: expected ErrUnknownSpeaker, got %v", s, err)
		}
	}
	assertBlocks(t, g.Blocks(), []entities.Block{{Speaker: entities.SpeakerCandidate, Text: "hi"}})

	c := mustAdd(t, g, turn(entities.SpeakerCandidate, "there"))
	if c.Kind != ChangeMerged || c.Block.Text != "hi there" {
		t.Fatalf("rejected turn should not break merging: %+v", c)
	}
}

func TestHasCandidateSpeech(t *testing.T) {
	cases := []struct {
		name   string
		blocks []entities.Block
		want   bool
	}{
		{"empty", nil, false},
		{"agent only", []entities.Block{{Speaker: entities.SpeakerAgent, Text: "Hello"}}, false},
		{"blank candidate", []entities.Block{{Speaker: entities.SpeakerCandidate, Text: "  \n"}}, false},
		{"candidate", []entities.Block{{Speaker: entities.SpeakerCandidate, Text: "I built a React app."}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasCandidateSpeech(tc.blocks); got != tc.want {
				t.Fatalf("want %v got %v", tc.want, got)
			}
		})
	}
}

func assertBlocks(t *testing.T, got, want []entities.Block) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("block %d: want %+v got %+v", i, want[i], got[i])
		}
	}
}

func mustGroup(t *testing.T, turns []entities.Turn) []entities.Block {
	t.Helper()
	blocks, err := Group(turns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return blocks
}

func mustAdd(t *testing.T, g *Grouper, tr entities.Turn) Change {
	t.Helper()
	c, err := g.Add(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}
