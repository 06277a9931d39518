package session

import (
	"github.com/leandrodaf/lilymidi/internal/aggregator"
	"github.com/leandrodaf/lilymidi/internal/notation"
)

// parameters is the mutable notation context shared by the event loop and
// the command channel. Guarded by Session.mu.
type parameters struct {
	notation.Settings
	mode           aggregator.InputMode
	checkEveryNote bool
	checkNextNote  bool
	previous       *notation.Reference
}

// Snapshot is a read-only copy of the session parameters.
type Snapshot struct {
	Session           string           `json:"session"`
	Key               string           `json:"key"`
	Accidentals       string           `json:"accidentals"`
	Mode              string           `json:"mode"`
	Language          string           `json:"language"`
	OctaveEntry       string           `json:"octave-entry"`
	CheckEveryNote    bool             `json:"octave-check-notes"`
	CheckNextNote     bool             `json:"octave-check-on-next-note"`
	Alterations       map[uint8]string `json:"alterations"`
	GlobalAlterations map[uint8]string `json:"global-alterations"`
	PreviousChord     []string         `json:"previous-chord"`
	PreviousReference string           `json:"previous-absolute-note-reference"`
	PendingNotes      []string         `json:"pending-notes"`
	PedalDown         bool             `json:"pedal-down"`
}

func (p *parameters) snapshot(agg *aggregator.Aggregator) Snapshot {
	s := Snapshot{
		Key:               p.Key.String(),
		Accidentals:       p.Accidentals.String(),
		Mode:              p.mode.String(),
		Language:          p.Language.String(),
		OctaveEntry:       p.OctaveEntry.String(),
		CheckEveryNote:    p.checkEveryNote,
		CheckNextNote:     p.checkNextNote,
		Alterations:       p.Alterations.Entries(),
		GlobalAlterations: make(map[uint8]string, p.GlobalAlterations.Len()),
		PreviousChord:     p.names(agg.LastChord()),
		PendingNotes:      p.names(agg.Pending()),
		PedalDown:         agg.PedalDown(),
	}
	if s.Alterations == nil {
		s.Alterations = map[uint8]string{}
	}
	for note, text := range p.GlobalAlterations.Entries() {
		s.GlobalAlterations[uint8(note)] = text
	}
	if p.previous != nil {
		s.PreviousReference = p.AbsoluteName(p.previous.Note)
	}
	return s
}

func (p *parameters) names(notes aggregator.Notes) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = p.AbsoluteName(n)
	}
	return out
}
