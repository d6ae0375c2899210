package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/midi"
	"github.com/jsphweid/harmonia/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long:  `Listens on the configured MIDI input port and names each chord as it is played.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return listen(ctx)
	},
}

// heldNotes tracks the keys currently down on the input port.
type heldNotes struct {
	sync.Mutex
	on map[uint8]bool
}

func (h *heldNotes) set(key uint8, down bool) {
	h.Lock()
	defer h.Unlock()
	if down {
		h.on[key] = true
	} else {
		delete(h.on, key)
	}
}

func (h *heldNotes) snapshot() model.Notes {
	h.Lock()
	defer h.Unlock()
	notes := make(model.Notes, 0, len(h.on))
	for k := range h.on {
		notes = append(notes, k)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
	return notes
}

func nameHeld(notes model.Notes) {
	if len(notes) == 0 {
		return
	}
	keys := make([]int, len(notes))
	for i, n := range notes {
		keys[i] = int(n)
	}
	c, err := chord.FromKeys(keys)
	if err != nil {
		fmt.Println(warnStyle.Render(err.Error()))
		return
	}
	fmt.Printf("%s %s %s\n", nameStyle.Render(fmt.Sprintf("%-8s", c.Name())), c.Quality(), labelStyle.Render(midi.CreateChordKey(notes)))
}

func listen(ctx context.Context) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(cfg.Midi.InPort)
	if err != nil {
		return errors.Wrapf(err, "opening MIDI input %d", cfg.Midi.InPort)
	}

	held := &heldNotes{on: make(map[uint8]bool)}
	// a chord played by hand arrives as several note ons a few millis apart
	debounced := debounce.New(time.Duration(cfg.Midi.DebounceMs) * time.Millisecond)
	report := func() { nameHeld(held.snapshot()) }

	stopListening, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.set(key, true)
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			held.set(key, false)
		}
	})
	if err != nil {
		return errors.Wrap(err, "listening")
	}
	defer stopListening()

	fmt.Printf("listening on %v, ctrl-c to stop\n", in)
	<-ctx.Done()
	return nil
}
