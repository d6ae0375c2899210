package server

import (
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/scale"
)

func names[T interface{ String() string }](items []T) []string {
	res := make([]string, len(items))
	for i, item := range items {
		res[i] = item.String()
	}
	return res
}

func (s *Server) pitchView(p pitch.Pitch) model.PitchView {
	return model.PitchView{
		Name:        p.Scientific(),
		Helmholtz:   p.Helmholtz(),
		Letter:      p.Name(),
		Accidental:  p.Accidental(),
		Octave:      p.Octave(),
		Key:         p.Key(),
		Midi:        p.MIDI(),
		Frequency:   p.Frequency(s.cfg.Theory.ConcertPitch),
		Chroma:      p.Chroma(),
		Enharmonics: names(p.Enharmonics(s.cfg.Theory.OneAccidental)),
	}
}

func intervalView(i interval.Interval, c interval.Convention) model.IntervalView {
	return model.IntervalView{
		Name:        i.String(),
		Quality:     i.Quality(),
		QualityLong: i.QualityLong(),
		Number:      i.Number(),
		Direction:   string(i.Direction()),
		Steps:       i.Coord.Steps,
		Semitones:   i.Coord.Semitones,
		Simple:      c.Simple(i).String(),
		Base:        c.Base(i),
		Compound:    i.IsCompound(),
		Inverted:    i.Invert().String(),
		Cents:       interval.Semitones(i.Coord.Semitones).Cents(),
	}
}

func chordView(c *chord.Chord) model.ChordView {
	return model.ChordView{
		Name:      c.Name(),
		Symbol:    c.Symbol(),
		Root:      c.Root().String(),
		Bass:      c.Bass().String(),
		Quality:   c.Quality(),
		Type:      c.ChordType(),
		Notes:     names(c.Notes()),
		Intervals: names(c.Intervals()),
		Voicing:   names(c.Voicing()),
	}
}

func scaleView(sc *scale.Scale) model.ScaleView {
	return model.ScaleView{
		Tonic:  sc.Tonic().String(),
		Name:   sc.Name(),
		Notes:  names(sc.Notes()),
		Simple: sc.Simple(),
	}
}
