package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"texture-viewer/asset"
	"texture-viewer/engine"
	"texture-viewer/viewport"
)

func NewViewCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "view [texture]",
		Short: "Open the inspector, optionally with a texture selected",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(configPath)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}

			g := NewGame(settings, LoadUIFont(settings.Font))
			if path := settings.Merge(arg); path != "" {
				if err := g.inspector.Select(path); err != nil {
					return err
				}
				log.Printf("Selected %s", path)
			}

			ebiten.SetWindowSize(WindowSize, WindowSize)
			ebiten.SetWindowTitle(WindowTitle)
			return ebiten.RunGame(g)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file (default ~/.config/texture-viewer/config.yaml)")

	return cmd
}

func NewReplayCmd() *cobra.Command {
	var (
		configPath string
		imageSize  string
		texture    string
		out        string
		expect     string
		tolerance  float64
	)

	cmd := &cobra.Command{
		Use:   "replay <script.star>",
		Short: "Run a scripted input sequence against a viewer session and print the result as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(configPath)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			size, err := replaySize(imageSize, settings.Merge(texture))
			if err != nil {
				return err
			}
			opts, err := settings.SessionOptions()
			if err != nil {
				return err
			}
			s, err := viewport.NewSession(size, viewport.Rect{Width: WindowSize, Height: WindowSize}, opts...)
			if err != nil {
				return err
			}

			script, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			res, err := engine.Replay(args[0], string(script), s)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}

			report := NewReplayReport(args[0], s, res)
			if out != "" {
				if err := SaveReport(report, out); err != nil {
					return err
				}
			} else if err := WriteReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if expect != "" {
				want, err := LoadReport(expect)
				if err != nil {
					return err
				}
				if err := want.Compare(report, tolerance); err != nil {
					return fmt.Errorf("mismatch against %s: %w", expect, err)
				}
				log.Printf("Replay matches %s", expect)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file (default ~/.config/texture-viewer/config.yaml)")
	cmd.Flags().StringVar(&imageSize, "image", "", "texture size as WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&texture, "texture", "t", "", "read the texture size from this image file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&expect, "expect", "", "compare against a previously saved report")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "allowed zoom and pan difference for --expect")

	return cmd
}

// replaySize picks the texture size for a replay: an explicit --image
// wins, otherwise the texture file header is probed.
func replaySize(imageSize, texture string) (viewport.Size, error) {
	if imageSize != "" {
		return ParseSize(imageSize)
	}
	if texture == "" {
		return viewport.Size{}, errors.New("need --image WIDTHxHEIGHT or --texture")
	}
	f, err := os.Open(texture)
	if err != nil {
		return viewport.Size{}, err
	}
	defer f.Close()
	size, _, err := asset.Probe(f)
	return size, err
}

// ParseSize parses "WIDTHxHEIGHT", e.g. "1000x500".
func ParseSize(s string) (viewport.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return viewport.Size{}, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return viewport.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return viewport.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return viewport.Size{}, fmt.Errorf("size %q: %w", s, viewport.ErrEmptyImage)
	}
	return viewport.Size{Width: width, Height: height}, nil
}
