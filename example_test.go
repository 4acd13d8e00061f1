// SPDX-License-Identifier: EPL-2.0

package ucra_test

import (
	"fmt"

	ucra "github.com/ucra/go-ucra"
)

// Example_render demonstrates the most common use case: creating an engine,
// rendering one note, and inspecting the result.
func Example_render() {
	eng, err := ucra.New()
	if err != nil {
		fmt.Printf("create error: %v\n", err)
		return
	}
	defer eng.Close()

	res, err := eng.Render(&ucra.RenderConfig{
		SampleRate: 44100,
		Channels:   1,
		Notes: []ucra.NoteSegment{
			{StartSec: 0.0, DurationSec: 0.1, MIDINote: 69, Velocity: 100},
		},
	})
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("frames: %d\n", res.Frames())
	fmt.Printf("samples: %d\n", len(res.Samples()))
	// Output:
	// frames: 4410
	// samples: 4410
}

// Example_engineInfo queries the implementation info string.
func Example_engineInfo() {
	eng, err := ucra.New()
	if err != nil {
		fmt.Printf("create error: %v\n", err)
		return
	}
	defer eng.Close()

	info, err := eng.Info()
	if err != nil {
		fmt.Printf("info error: %v\n", err)
		return
	}
	fmt.Println(info)
	// Output: UCRA Reference Engine v1.0
}

// Example_pitchCurve renders a note whose pitch is overridden by a curve.
func Example_pitchCurve() {
	eng, err := ucra.New()
	if err != nil {
		fmt.Printf("create error: %v\n", err)
		return
	}
	defer eng.Close()

	// Slide from A4 to E5 over the first half of the note.
	f0, err := ucra.NewCurve(
		[]float32{0.0, 0.25, 0.5},
		[]float32{440.0, 550.0, 660.0},
	)
	if err != nil {
		fmt.Printf("curve error: %v\n", err)
		return
	}

	res, err := eng.Render(&ucra.RenderConfig{
		SampleRate: 44100,
		Channels:   1,
		Notes: []ucra.NoteSegment{
			{DurationSec: 1.0, MIDINote: 69, Velocity: 100, Lyric: "ah", F0: f0},
		},
	})
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("rendered %.1fs\n", float64(res.Frames())/float64(res.SampleRate()))
	// Output: rendered 1.0s
}
