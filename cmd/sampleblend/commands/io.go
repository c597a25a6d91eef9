// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/sampleblend"
	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/formats/wav"
)

var errOutputRequired = errors.New("an output file is required, use -o")

// write saves b to the -o file, or streams it to standard output.
func (a *app) write(cmd *cobra.Command, b audio.Buffer) error {
	if a.output == "" || a.output == "-" {
		return wav.WritePCM16(cmd.OutOrStdout(), b)
	}
	return a.save(a.output, b)
}

func (a *app) save(path string, b audio.Buffer) error {
	if err := sampleblend.SaveFile(path, b, a.cfg.BitDepth); err != nil {
		return err
	}
	slog.Debug("sampleblend: wrote", "path", path, "duration", b.Duration())
	return nil
}

// numbered inserts n before the extension: out.wav becomes out-3.wav.
func numbered(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n, ext)
}

func loadAll(paths []string) ([]audio.Buffer, error) {
	out := make([]audio.Buffer, len(paths))
	for i, p := range paths {
		b, err := sampleblend.LoadFile(p)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func parseTime(name, s string) (audio.Time, error) {
	t, err := audio.ParseTime(s)
	if err != nil {
		return audio.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
