package model

type PitchView struct {
	Name        string   `json:"name"`
	Helmholtz   string   `json:"helmholtz"`
	Letter      string   `json:"letter"`
	Accidental  string   `json:"accidental"`
	Octave      int      `json:"octave"`
	Key         int      `json:"key"`
	Midi        int      `json:"midi"`
	Frequency   float64  `json:"frequency"`
	Chroma      int      `json:"chroma"`
	Enharmonics []string `json:"enharmonics"`
}

type IntervalView struct {
	Name        string  `json:"name"`
	Quality     string  `json:"quality"`
	QualityLong string  `json:"quality_long"`
	Number      int     `json:"number"`
	Direction   string  `json:"direction"`
	Steps       int     `json:"steps"`
	Semitones   int     `json:"semitones"`
	Simple      string  `json:"simple"`
	Base        string  `json:"base"`
	Compound    bool    `json:"compound"`
	Inverted    string  `json:"inverted"`
	Cents       float64 `json:"cents"`
}

type AddIntervalsRequest struct {
	Intervals []string `json:"intervals"`
}

type ChordView struct {
	Name      string   `json:"name"`
	Symbol    string   `json:"symbol"`
	Root      string   `json:"root"`
	Bass      string   `json:"bass"`
	Quality   string   `json:"quality"`
	Type      string   `json:"type"`
	Notes     []string `json:"notes"`
	Intervals []string `json:"intervals"`
	Voicing   []string `json:"voicing"`
}

type ScaleView struct {
	Tonic  string   `json:"tonic"`
	Name   string   `json:"name"`
	Notes  []string `json:"notes"`
	Simple []string `json:"simple"`
}

type ScaleNames struct {
	Names []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
