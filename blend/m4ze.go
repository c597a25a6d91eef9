// SPDX-License-Identifier: EPL-2.0

package blend

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

const (
	mazeSegments = 64
	silenced     = -100.0
)

// maze holds the two layers m4ze builds one segment pair at a time.
type maze struct {
	rng *rand.Rand

	normal      int // 0: never mix, 1: always mix, 2: mix on a coin flip
	speeder     bool
	speederRate int

	src, dst []audio.Buffer // segments of the first and second input
	l1, l2   []audio.Buffer
}

// mazeBranches are the three things a segment pair can turn into, picked
// uniformly per pair.
var mazeBranches = [...]func(m *maze, i int) error{
	(*maze).mixOrKeep,
	(*maze).keepFirst,
	(*maze).keepSecond,
}

// mixOrKeep puts the mix of both segments on layer 1 and silence on layer
// 2, or keeps each segment on its own layer.
func (m *maze) mixOrKeep(i int) error {
	s, t := m.src[i], m.dst[i]
	if m.normal == 1 || (m.normal != 0 && coin(m.rng)) {
		mixed, err := ops.Mix(s, t, false)
		if err != nil {
			return err
		}
		m.l1 = append(m.l1, mixed)
		m.l2 = append(m.l2, ops.Gain(s, silenced))
		return nil
	}
	m.l1 = append(m.l1, s)
	m.l2 = append(m.l2, t)
	return nil
}

func (m *maze) keepFirst(i int) error {
	m.l1 = append(m.l1, m.src[i])
	m.l2 = append(m.l2, ops.Gain(m.dst[i], silenced))
	return nil
}

// keepSecond silences layer 1. With the speeder on, layer 2 may get this
// and the next segment of the second input squeezed to double speed.
func (m *maze) keepSecond(i int) error {
	m.l1 = append(m.l1, ops.Gain(m.src[i], silenced))

	t := m.dst[i]
	if m.speeder && m.rng.IntN(m.speederRate+1) == 0 && i+1 < len(m.dst) {
		cur, err := ops.Speed(t, 2)
		if err != nil {
			return err
		}
		next, err := ops.Speed(m.dst[i+1], 2)
		if err != nil {
			return err
		}
		if t, err = ops.Add(cur, next); err != nil {
			return err
		}
	}
	m.l2 = append(m.l2, t)
	return nil
}

// M4ze stretches the second input to the length of the first, cuts both
// into 64 segments and routes every segment pair through one of three
// branches into two layers, which are finally mixed without normalizing.
func M4ze(inputs []audio.Buffer, rng *rand.Rand) (audio.Buffer, error) {
	s1 := inputs[0]
	s2, err := ops.Resize(inputs[1], s1.Duration())
	if err != nil {
		return audio.Buffer{}, err
	}

	m := &maze{rng: rng}
	if m.src, err = ops.Split(s1, mazeSegments); err != nil {
		return audio.Buffer{}, fmt.Errorf("first input: %w", err)
	}
	if m.dst, err = ops.Split(s2, mazeSegments); err != nil {
		return audio.Buffer{}, fmt.Errorf("second input: %w", err)
	}

	m.normal = rng.IntN(3)
	if rng.IntN(3) == 0 {
		m.speeder = true
		m.speederRate = 1 + rng.IntN(4)
	}

	for i := range min(len(m.src), len(m.dst)) {
		if err := mazeBranches[rng.IntN(len(mazeBranches))](m, i); err != nil {
			return audio.Buffer{}, fmt.Errorf("segment %d: %w", i, err)
		}
	}

	layer1, err := ops.Join(m.l1)
	if err != nil {
		return audio.Buffer{}, err
	}
	layer2, err := ops.Join(m.l2)
	if err != nil {
		return audio.Buffer{}, err
	}
	return ops.Mix(layer1, layer2, false)
}
