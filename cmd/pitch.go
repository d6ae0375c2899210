package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	pitchFrequency float64
	pitchScale     string
	pitchOctaves   bool
)

func init() {
	pitchCmd.Flags().Float64VarP(&pitchFrequency, "frequency", "f", 0, "name the pitch nearest to this frequency in Hz")
	pitchCmd.Flags().StringVarP(&pitchScale, "scale", "s", "", `scale to place the pitch in, e.g. "D4 major"`)
	pitchCmd.Flags().BoolVar(&pitchOctaves, "octaves", false, "mark octaves in solfege syllables")
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch [name...]",
	Short: "Describes pitches",
	Long:  `Describes pitches given in scientific ("C#4") or Helmholtz ("c#'") notation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pitchFrequency > 0 {
			p, cents := pitch.FromFrequency(pitchFrequency, cfg.Theory.ConcertPitch)
			title(p.String())
			field("cents", fmt.Sprintf("%+.2f", cents))
			return nil
		}
		if len(args) == 0 {
			return errors.New("need at least one pitch or --frequency")
		}

		var sc *scale.Scale
		if pitchScale != "" {
			var err error
			if sc, err = parseScaleArg(pitchScale); err != nil {
				return err
			}
		}
		for _, arg := range args {
			p, err := pitch.Parse(arg)
			if err != nil {
				return err
			}
			describePitch(p, sc)
		}
		return nil
	},
}

// parseScaleArg reads "tonic name", e.g. "Ab2 harmonicminor".
func parseScaleArg(arg string) (*scale.Scale, error) {
	parts := strings.Fields(arg)
	if len(parts) < 2 {
		return nil, errors.Errorf("scale %q: want tonic and name", arg)
	}
	return scale.Parse(parts[0], strings.Join(parts[1:], ""))
}

func describePitch(p pitch.Pitch, sc *scale.Scale) {
	title(p.String())
	field("helmholtz", p.Helmholtz())
	field("key", p.Key())
	field("midi", p.MIDI())
	field("frequency", fmt.Sprintf("%.2f Hz", p.Frequency(cfg.Theory.ConcertPitch)))
	field("chroma", p.Chroma())

	var enharmonics []string
	for _, e := range p.Enharmonics(cfg.Theory.OneAccidental) {
		enharmonics = append(enharmonics, e.String())
	}
	field("enharmonics", strings.Join(enharmonics, " "))

	if sc == nil {
		return
	}
	degree := p.ScaleDegree(sc)
	if degree == 0 {
		field("degree", warnStyle.Render("not in "+sc.String()))
	} else {
		field("degree", degree)
	}
	if syllable, ok := p.Solfege(sc, pitchOctaves); ok {
		field("solfege", syllable)
	}
}
