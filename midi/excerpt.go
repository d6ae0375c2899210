package midi

import (
	"github.com/jsphweid/harmonia/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies mf from ticksOffset on, keeping at most maxNotes note
// events per track. Other events before the offset are kept but pulled
// together so tempo and program changes still apply. A track cut short is
// closed; a complete one keeps its own end of track.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNotes int
		started, truncated := false, false
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(gomidi.NoteOnMsg),
				evt.Message.Is(gomidi.NoteOffMsg):
				if absTicks < ticksOffset {
					continue
				}
				if numNotes >= maxNotes {
					truncated = true
					break TrackEventLoop
				}
				if !started {
					// the first note starts the excerpt
					evt.Delta = 0
					started = true
				}
				newTrack = append(newTrack, evt)
				numNotes++
			default:
				if !started {
					evt.Delta = util.Min(evt.Delta, 1)
				}
				newTrack = append(newTrack, evt)
			}
		}
		if truncated {
			newTrack.Close(0)
		}
		res.Tracks = append(res.Tracks, newTrack)
	}
	return &res
}
