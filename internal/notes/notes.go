// Package notes extracts the pitch sequence of a Standard MIDI File.
package notes

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Source yields an ordered, finite pitch sequence. Every call starts over
// from the beginning.
type Source interface {
	Pitches() ([]int, error)
}

// File is a Source backed by a MIDI file on disk.
type File string

// Pitches reads the file again and returns its note-on pitches.
func (f File) Pitches() ([]int, error) {
	return ReadFile(string(f))
}

// ReadFile returns the note-on pitches of the MIDI file at path.
func ReadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MIDI file: %w", err)
	}
	defer f.Close()

	pitches, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pitches, nil
}

type noteOn struct {
	tick int64
	key  uint8
}

// Read parses a Standard MIDI File and returns the key number of every
// note-on message in playback order.
//
// Tracks are merged by absolute tick. Messages sharing a tick keep track
// order, then file order. Note-on messages with velocity zero are included.
// A file without note-on messages yields an empty slice.
func Read(r io.Reader) ([]int, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI file: %w", err)
	}

	var events []noteOn
	for _, track := range s.Tracks {
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)
			if key, ok := noteOnKey(ev.Message); ok {
				events = append(events, noteOn{tick: tick, key: key})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].tick < events[j].tick
	})

	pitches := make([]int, len(events))
	for i, ev := range events {
		pitches[i] = int(ev.key)
	}
	return pitches, nil
}

// noteOnKey returns the key of a note-on channel message of any velocity.
func noteOnKey(msg []byte) (uint8, bool) {
	if len(msg) == 3 && msg[0]&0xF0 == 0x90 {
		return msg[1], true
	}
	return 0, false
}
