// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ik5/sampleblend"
)

// fileInfo describes one decoded file.
type fileInfo struct {
	Path       string  `yaml:"path" json:"path"`
	Format     string  `yaml:"format" json:"format"`
	Channels   int     `yaml:"channels" json:"channels"`
	SampleRate int     `yaml:"sample_rate" json:"sample_rate"`
	Frames     int     `yaml:"frames" json:"frames"`
	Duration   float64 `yaml:"duration" json:"duration"`
	Peak       float32 `yaml:"peak" json:"peak"`
}

func newInfoCmd(_ *app) *cobra.Command {
	var (
		format string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Show format, duration and peak level of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]fileInfo, 0, len(args))
			for _, p := range args {
				b, err := sampleblend.LoadFile(p)
				if err != nil {
					return err
				}
				infos = append(infos, fileInfo{
					Path:       p,
					Format:     strings.ToLower(strings.TrimPrefix(filepath.Ext(p), ".")),
					Channels:   b.Format.Channels,
					SampleRate: b.Format.SampleRate,
					Frames:     b.Frames(),
					Duration:   b.Duration(),
					Peak:       b.Peak(),
				})
			}

			w := cmd.OutOrStdout()
			if pretty {
				return outputPretty(w, infos)
			}
			return output(w, infos, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "styled terminal output")
	return cmd
}

func output(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).Width(12)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00ff9f")).
			Padding(0, 1)
)

func outputPretty(w io.Writer, infos []fileInfo) error {
	for _, info := range infos {
		rows := []string{
			titleStyle.Render(info.Path),
			labelStyle.Render("format") + info.Format,
			labelStyle.Render("channels") + fmt.Sprint(info.Channels),
			labelStyle.Render("rate") + fmt.Sprintf("%d Hz", info.SampleRate),
			labelStyle.Render("duration") + fmt.Sprintf("%.3fs (%d frames)", info.Duration, info.Frames),
			labelStyle.Render("peak") + fmt.Sprintf("%.3f", info.Peak),
		}
		if _, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(rows, "\n"))); err != nil {
			return err
		}
	}
	return nil
}
