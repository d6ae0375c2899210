package model

// Notes are MIDI note numbers.
type Notes = []uint8

// ChordEvent is a set of notes sounding together in a MIDI file.
type ChordEvent struct {
	// Ticks is the absolute tick position of the event.
	Ticks uint64
	// Offset is the same position in milliseconds.
	Offset uint32
	Notes  Notes

	// FormedByNoteOn is false when the set was left over after a note off.
	FormedByNoteOn bool
}

// ReducedEvent is a note on or off with its absolute position.
type ReducedEvent struct {
	Ticks     uint64
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
