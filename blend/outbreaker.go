// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

// splitCounts are the segment counts an outbreaker input can be cut into.
var splitCounts = [...]int{4, 8, 16, 32}

const (
	outbreakerMinLen = 12.0
	outbreakerMaxLen = 16.0
	mute             = -90.0
)

// material is what every outbreaker track is assembled from.
type material struct {
	a, b, c audio.Buffer
	aHalf   audio.Buffer
	head    []audio.Buffer // segments of the first input
}

// track is one mk run. s grows step by step.
type track struct {
	*material
	rng *rand.Rand
	s   audio.Buffer
}

// mkStep is one decision point of a track.
type mkStep struct {
	name string
	run  func(*track) error
}

// mkSteps is the fixed order in which a track is built. Every coin flip
// happens inside exactly one step, so the draw sequence is auditable.
var mkSteps = []mkStep{
	{"open", (*track).open},
	{"c", func(t *track) error { return t.push(t.c) }},
	{"b-half quiet", func(t *track) error { return t.pushGain(t.bHalf, -5) }},
	{"c-half or stutter", (*track).cHalfOrStutter},
	{"b-half", func(t *track) error { return t.pushPart(t.bHalf) }},
	{"c-half", func(t *track) error { return t.pushPart(t.cHalf) }},
	{"a-half", func(t *track) error { return t.push(t.aHalf) }},
	{"quiet half", (*track).quietHalf},
	{"c again", func(t *track) error { return t.push(t.c) }},
	{"tail", (*track).tail},
}

func (t *track) push(x audio.Buffer) error {
	s, err := ops.Add(t.s, x)
	if err != nil {
		return err
	}
	t.s = s
	return nil
}

func (t *track) pushPart(part func() (audio.Buffer, error)) error {
	x, err := part()
	if err != nil {
		return err
	}
	return t.push(x)
}

func (t *track) pushGain(part func() (audio.Buffer, error), db float64) error {
	x, err := part()
	if err != nil {
		return err
	}
	return t.push(ops.Gain(x, db))
}

func (t *track) pushChop(part func() (audio.Buffer, error), n int, db float64) error {
	x, err := part()
	if err != nil {
		return err
	}
	if x, err = ops.Chop(x, n); err != nil {
		return err
	}
	return t.push(ops.Gain(x, db))
}

// bHalf is the first half of b, or the second half of the second segment
// of the first input.
func (t *track) bHalf() (audio.Buffer, error) {
	if len(t.head) < 2 {
		return audio.Buffer{}, fmt.Errorf("%w: b half needs 2 segments of the first input", audio.ErrTooManySegments)
	}
	if coin(t.rng) {
		return half(t.b, false)
	}
	return half(t.head[1], true)
}

// cHalf is like bHalf for c and the third segment, faded to silence.
func (t *track) cHalf() (audio.Buffer, error) {
	if len(t.head) < 3 {
		return audio.Buffer{}, fmt.Errorf("%w: c half needs 3 segments of the first input", audio.ErrTooManySegments)
	}
	var (
		h   audio.Buffer
		err error
	)
	if coin(t.rng) {
		h, err = half(t.c, false)
	} else {
		h, err = half(t.head[2], true)
	}
	if err != nil {
		return audio.Buffer{}, err
	}
	return ops.Fade(h, 0, 0.01), nil
}

func (t *track) open() error {
	t.s = t.a
	switch {
	case coin(t.rng):
		return t.push(ops.Gain(t.b, -5))
	case coin(t.rng):
		return t.push(ops.Gain(t.a, -5))
	default:
		s, err := ops.Speed(t.s, 0.5)
		if err != nil {
			return err
		}
		t.s = s
		return nil
	}
}

func (t *track) cHalfOrStutter() error {
	if coin(t.rng) {
		return t.pushPart(t.cHalf)
	}
	x, err := t.cHalf()
	if err != nil {
		return err
	}
	if x, err = ops.Chop(x, 8); err != nil {
		return err
	}
	return t.push(x)
}

func (t *track) quietHalf() error {
	switch {
	case coin(t.rng):
		return t.pushGain(t.bHalf, -5)
	case coin(t.rng):
		return t.pushGain(t.cHalf, -5)
	default:
		return t.pushChop(t.cHalf, 2, -5)
	}
}

func (t *track) tail() error {
	switch {
	case coin(t.rng):
		return t.push(ops.Gain(t.b, -10))
	case coin(t.rng):
		return t.push(ops.Gain(t.a, -10))
	default:
		return t.pushChop(func() (audio.Buffer, error) { return t.b, nil }, 8, -10)
	}
}

// mk builds one track by running mkSteps in order.
func (m *material) mk(rng *rand.Rand) (audio.Buffer, error) {
	t := &track{material: m, rng: rng}
	for _, step := range mkSteps {
		if err := step.run(t); err != nil {
			return audio.Buffer{}, fmt.Errorf("mk %s: %w", step.name, err)
		}
	}
	return t.s, nil
}

// segments quarter-trims b and splits it into a randomly chosen count.
func segments(b audio.Buffer, rng *rand.Rand) ([]audio.Buffer, error) {
	q, err := quarter(b)
	if err != nil {
		return nil, err
	}
	return ops.Split(q, splitCounts[rng.IntN(len(splitCounts))])
}

// muteTail drops the last part of b, resolved against its duration, to -90 dB.
func muteTail(b audio.Buffer, part audio.Time) (audio.Buffer, error) {
	total := b.Duration()
	partSec, err := part.Resolve(total)
	if err != nil {
		return audio.Buffer{}, err
	}
	mainSec := total - partSec

	body, err := ops.Cut(b, audio.Seconds(0), audio.Seconds(mainSec))
	if err != nil {
		return audio.Buffer{}, err
	}
	tail, err := ops.Cut(b, audio.Seconds(mainSec), audio.Seconds(partSec))
	if err != nil {
		return audio.Buffer{}, err
	}
	return ops.Add(body, ops.Gain(tail, mute))
}

// Outbreaker cuts each of three inputs into 4, 8, 16 or 32 segments and
// takes segment 0 of the first (a), segment 1 of the second (b) and segment
// 2 of the third (c), the latter two stretched to the length of a. Three
// tracks are assembled from them by mk; the second loses its last sixteenth
// on a coin flip and the third always loses its last eighth. The arrangement
// track1 track2 track1 track3 is stretched to 12..16 seconds.
func Outbreaker(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error) {
	head, err := segments(inputs[0], rng)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("first input: %w", err)
	}
	second, err := segments(inputs[1], rng)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("second input: %w", err)
	}
	if len(second) < 2 {
		return audio.Buffer{}, fmt.Errorf("%w: second input gave %d segments", audio.ErrTooManySegments, len(second))
	}
	third, err := segments(inputs[2], rng)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("third input: %w", err)
	}
	if len(third) < 3 {
		return audio.Buffer{}, fmt.Errorf("%w: third input gave %d segments", audio.ErrTooManySegments, len(third))
	}

	m := &material{a: head[0], head: head}
	if m.b, err = ops.Resize(second[1], m.a.Duration()); err != nil {
		return audio.Buffer{}, err
	}
	if m.c, err = ops.Resize(third[2], m.a.Duration()); err != nil {
		return audio.Buffer{}, err
	}
	aHalf, err := half(m.a, false)
	if err != nil {
		return audio.Buffer{}, err
	}
	m.aHalf = ops.Fade(aHalf, 0, 0.01)

	var tracks [3]audio.Buffer
	for i := range tracks {
		if tracks[i], err = m.mk(rng); err != nil {
			return audio.Buffer{}, fmt.Errorf("track %d: %w", i+1, err)
		}
	}

	if coin(rng) {
		if tracks[1], err = muteTail(tracks[1], audio.MustFraction(1, 16)); err != nil {
			return audio.Buffer{}, fmt.Errorf("track 2 tail: %w", err)
		}
	}
	if tracks[2], err = muteTail(tracks[2], audio.MustFraction(2, 16)); err != nil {
		return audio.Buffer{}, fmt.Errorf("track 3 tail: %w", err)
	}

	f, err := ops.Join([]audio.Buffer{tracks[0], tracks[1], tracks[0], tracks[2]})
	if err != nil {
		return audio.Buffer{}, err
	}

	length := outbreakerMinLen + float64(rng.Float64()*(outbreakerMaxLen-outbreakerMinLen))
	slog.Debug("blend: outbreaker", "segments", []int{len(head), len(second), len(third)}, "length", length)
	return ops.Resize(f, length)
}
