package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// NoteEvent is one note-on extracted from a parsed file, used by the
// inspect command to verify exported files round-trip.
type NoteEvent struct {
	Track    int
	AbsTicks int64
	Channel  uint8
	Note     uint8
	Velocity uint8
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// NoteOns walks every track of a parsed file and returns its note-on
// events with absolute tick offsets.
func NoteOns(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for ti, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				res = append(res, NoteEvent{
					Track:    ti,
					AbsTicks: absTicks,
					Channel:  channel,
					Note:     key,
					Velocity: velocity,
				})
			}
		}
	}
	return res
}
