package pitch

import (
	"encoding/xml"
	"strings"

	"github.com/jsphweid/harmonia/notation"
	"github.com/pkg/errors"
)

// xmlPitch mirrors the MusicXML <pitch> element.
type xmlPitch struct {
	XMLName xml.Name
	Step    string `xml:"step"`
	Alter   int    `xml:"alter"`
	Octave  int    `xml:"octave"`
}

func (p Pitch) xmlObject(rootName string) xmlPitch {
	if rootName == "" {
		rootName = "pitch"
	}
	return xmlPitch{
		XMLName: xml.Name{Local: rootName},
		Step:    strings.ToUpper(p.Name()),
		Alter:   p.AccidentalValue(),
		Octave:  p.Octave(),
	}
}

// ToXML renders p as <rootName><step/><alter/><octave/></rootName>.
// An empty rootName means "pitch".
func (p Pitch) ToXML(rootName string) (string, error) {
	out, err := xml.Marshal(p.xmlObject(rootName))
	if err != nil {
		return "", errors.Wrap(err, "marshal pitch")
	}
	return string(out), nil
}

// FromXML reads a MusicXML-style pitch element. The root element name is
// not checked.
func FromXML(text string) (Pitch, error) {
	var obj xmlPitch
	if err := xml.Unmarshal([]byte(text), &obj); err != nil {
		return Pitch{}, errors.Wrapf(notation.ErrMalformedNotation, "pitch xml: %v", err)
	}
	return obj.pitch()
}

func (obj xmlPitch) pitch() (Pitch, error) {
	letter, err := notation.LetterIndex(obj.Step)
	if err != nil {
		return Pitch{}, err
	}
	return FromCoord(notation.FromParts(letter, obj.Alter, obj.Octave)), nil
}

func (p Pitch) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	obj := p.xmlObject(start.Name.Local)
	return e.EncodeElement(struct {
		Step   string `xml:"step"`
		Alter  int    `xml:"alter"`
		Octave int    `xml:"octave"`
	}{obj.Step, obj.Alter, obj.Octave}, start)
}

func (p *Pitch) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var obj xmlPitch
	if err := d.DecodeElement(&obj, &start); err != nil {
		return errors.Wrap(err, "decode pitch")
	}
	parsed, err := obj.pitch()
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
