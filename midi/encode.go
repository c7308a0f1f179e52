package midi

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"

	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/tuning"
)

// TicksPerQuarter is the fixed SMF division.
const TicksPerQuarter = 480

const baseVelocity = 100

// Track is one voice of a format-1 export. Volume scales every velocity in
// the track, 0..1.
type Track struct {
	Riff    model.ProgressionRiff
	Channel uint8
	Volume  float64
}

type event struct {
	tick    int
	noteOff bool
	channel uint8
	note    uint8
	vel     uint8
}

// ExportRiff writes a format-0 Standard MIDI File: one merged track
// carrying the tempo meta event and every note of the riff. An empty riff
// yields a structurally valid, silent file.
func ExportRiff(t tuning.Tuning, r model.ProgressionRiff) []byte {
	bpm := r.Bpm
	if bpm <= 0 {
		bpm = constants.DefaultBpm
	}

	track := tempoEvent(bpm)
	track = append(track, eventBytes(collectEvents(t, r, 0, 1.0))...)
	track = append(track, endOfTrack()...)

	var buf bytes.Buffer
	writeHeader(&buf, 0, 1)
	writeChunk(&buf, track)
	return buf.Bytes()
}

// ExportTracks writes a format-1 file: a tempo-only conductor track
// followed by one track per voice, velocities scaled by per-track volume.
func ExportTracks(t tuning.Tuning, tracks []Track, bpm int) []byte {
	if bpm <= 0 {
		bpm = constants.DefaultBpm
	}

	var buf bytes.Buffer
	writeHeader(&buf, 1, uint16(len(tracks)+1))

	conductor := tempoEvent(bpm)
	conductor = append(conductor, endOfTrack()...)
	writeChunk(&buf, conductor)

	for _, tr := range tracks {
		volume := tr.Volume
		if volume <= 0 || volume > 1 {
			volume = 1
		}
		data := eventBytes(collectEvents(t, tr.Riff, tr.Channel, volume))
		data = append(data, endOfTrack()...)
		writeChunk(&buf, data)
	}
	return buf.Bytes()
}

// collectEvents flattens a riff into note-on/off events in non-decreasing
// tick order, with note-offs ahead of note-ons at equal ticks so
// back-to-back notes never swallow each other.
func collectEvents(t tuning.Tuning, r model.ProgressionRiff, channel uint8, volume float64) []event {
	var events []event
	for mi, measure := range r.Riffs {
		measureStart := float64(mi) * constants.BeatsPerMeasure
		for _, note := range measure.Notes {
			onTick := beatTicks(measureStart + note.StartBeat)
			offTick := beatTicks(measureStart + note.StartBeat + note.Duration)
			if offTick <= onTick {
				continue
			}
			vel := scaleVelocity(velocityFor(note.Technique), volume)
			key := uint8(t.MidiAt(note.String, note.Fret) & 0x7f)
			events = append(events, event{tick: onTick, channel: channel, note: key, vel: vel})
			events = append(events, event{tick: offTick, noteOff: true, channel: channel, note: key})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].noteOff && !events[j].noteOff
	})
	return events
}

func eventBytes(events []event) []byte {
	var out []byte
	lastTick := 0
	for _, e := range events {
		delta := uint32(e.tick - lastTick)
		lastTick = e.tick
		out = append(out, varLen(delta)...)
		if e.noteOff {
			out = append(out, 0x80|e.channel, e.note&0x7f, 0)
		} else {
			out = append(out, 0x90|e.channel, e.note&0x7f, e.vel&0x7f)
		}
	}
	return out
}

// velocityFor attenuates legato techniques to ~80% and muted notes to ~60%
// of the base velocity.
func velocityFor(technique model.Technique) uint8 {
	switch technique {
	case model.TechniqueHammerOn, model.TechniquePullOff,
		model.TechniqueSlideUp, model.TechniqueSlideDown:
		return baseVelocity * 80 / 100
	case model.TechniqueMuted:
		return baseVelocity * 60 / 100
	default:
		return baseVelocity
	}
}

func scaleVelocity(vel uint8, volume float64) uint8 {
	scaled := int(math.Round(float64(vel) * volume))
	if scaled > 127 {
		scaled = 127
	}
	if scaled < 0 {
		scaled = 0
	}
	return uint8(scaled)
}

func beatTicks(beats float64) int {
	return int(math.Round(beats * TicksPerQuarter))
}

// varLen encodes a MIDI variable-length quantity.
func varLen(v uint32) []byte {
	if v < 0x80 {
		return []byte{byte(v)}
	}
	var buf [4]byte
	n := 0
	for tmp := v; tmp > 0; tmp >>= 7 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b := byte((v >> (uint(i) * 7)) & 0x7F)
		if i > 0 {
			b |= 0x80
		}
		buf[n-1-i] = b
	}
	return buf[:n]
}

func tempoEvent(bpm int) []byte {
	uspq := uint32(math.Round(60_000_000 / float64(bpm)))
	return []byte{
		0x00,
		0xFF, 0x51, 0x03,
		byte(uspq >> 16), byte(uspq >> 8), byte(uspq),
	}
}

func endOfTrack() []byte {
	return []byte{0x00, 0xFF, 0x2F, 0x00}
}

func writeHeader(buf *bytes.Buffer, format uint16, numTracks uint16) {
	buf.WriteString("MThd")
	binary.Write(buf, binary.BigEndian, uint32(6))
	binary.Write(buf, binary.BigEndian, format)
	binary.Write(buf, binary.BigEndian, numTracks)
	binary.Write(buf, binary.BigEndian, uint16(TicksPerQuarter))
}

func writeChunk(buf *bytes.Buffer, data []byte) {
	buf.WriteString("MTrk")
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
}
