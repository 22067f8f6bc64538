package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"transcriptdiff/client/publish"
	"transcriptdiff/config"
	"transcriptdiff/export"
	"transcriptdiff/logger"
	"transcriptdiff/render"
	"transcriptdiff/text"
	"transcriptdiff/utils"
)

// stdinName is the path argument that reads a side from standard input
const stdinName = "-"

// renderFlags are output settings shared by compare and show
type renderFlags struct {
	layout      string
	changesOnly bool
	color       string
	width       int
	noStats     bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.layout, "layout", "l", "", "Output layout (unified, split, inline)")
	cmd.Flags().BoolVar(&f.changesOnly, "changes-only", false, "Show only added, removed, and modified lines")
	cmd.Flags().StringVar(&f.color, "color", "", "Colorize output (auto, always, never)")
	cmd.Flags().IntVar(&f.width, "width", 0, "Total width of the split layout")
	cmd.Flags().BoolVar(&f.noStats, "no-stats", false, "Omit the change summary table")
}

// options merges flags over the configured render settings
func (f *renderFlags) options(cfg config.Render, out io.Writer) (render.Options, error) {
	layout := cfg.Layout
	if f.layout != "" {
		layout = strings.ToLower(strings.TrimSpace(f.layout))
	}
	switch layout {
	case config.LayoutUnified, config.LayoutSplit, config.LayoutInline:
	default:
		return render.Options{}, fmt.Errorf("invalid --layout %q: must be unified, split, or inline", f.layout)
	}

	colorMode := cfg.Color
	if f.color != "" {
		colorMode = strings.ToLower(strings.TrimSpace(f.color))
	}
	var useColor bool
	switch colorMode {
	case config.ColorAlways:
		useColor = true
	case config.ColorNever:
		useColor = false
	case config.ColorAuto:
		useColor = shouldColorize(out)
	default:
		return render.Options{}, fmt.Errorf("invalid --color %q: must be auto, always, or never", f.color)
	}

	width := cfg.Width
	if f.width > 0 {
		width = f.width
	}

	return render.Options{
		Layout:      render.Layout(layout),
		ChangesOnly: f.changesOnly || cfg.ChangesOnly,
		Color:       useColor,
		Width:       width,
	}, nil
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newCompareCommand(app *appContext) *cobra.Command {
	var (
		flags      renderFlags
		jsonOutput bool
		outputPath string
		doPublish  bool
		title      string
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "compare ORIGINAL REVISED",
		Short: "Diff two transcript revisions",
		Long: "Diff two transcript revisions line by line. Lines that changed but\n" +
			"still share enough words are shown as modified, with word-level changes.\n" +
			"Use - for one of the paths to read it from standard input.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ensureConfig(cmd)
			if err != nil {
				return err
			}
			if args[0] == stdinName && args[1] == stdinName {
				return errors.New("only one side can be read from standard input")
			}

			original, err := readSide(cmd, args[0])
			if err != nil {
				return err
			}
			revised, err := readSide(cmd, args[1])
			if err != nil {
				return err
			}

			opts := text.Options{SimilarityThreshold: cfg.Diff.SimilarityThreshold}
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 || threshold >= 1 {
					return fmt.Errorf("invalid --threshold %v: must be at least 0 and below 1", threshold)
				}
				opts.SimilarityThreshold = threshold
			}

			limits := utils.Limits{MaxLines: cfg.Diff.MaxLines, MaxLineTokens: cfg.Diff.MaxLineTokens}
			if err := utils.CheckDiffSize(original, revised, limits); err != nil {
				return err
			}

			result := text.ComputeDiffWithOptions(original, revised, opts)
			summary := text.Summarize(original, revised)
			logger.Info("compared %s with %s: %d added, %d removed, %d modified",
				args[0], args[1], result.Stats.Added, result.Stats.Removed, result.Stats.Modified)

			if outputPath != "" {
				if err := export.WriteFile(outputPath, result); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				if err := export.Write(out, result, false); err != nil {
					return err
				}
			} else if err := writeReport(out, result, summary, &flags, cfg.Render); err != nil {
				return err
			}

			if !doPublish {
				return nil
			}
			if title == "" {
				title = defaultTitle(args)
			}
			resp, err := publishResult(cmd.Context(), cfg.Publish, publish.NewRequest(title, summary, result))
			if err != nil {
				return err
			}
			// Keep stdout parseable when it carries JSON
			notice := out
			if jsonOutput {
				notice = cmd.ErrOrStderr()
			}
			fmt.Fprintf(notice, "Published %s: %s\n", resp.ComparisonID, resp.ViewURL)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Write the diff result as JSON instead of rendering it")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also save the diff result as JSON (brotli compressed if the path ends in .br)")
	cmd.Flags().BoolVar(&doPublish, "publish", false, "Send the diff result to the configured publish URL")
	cmd.Flags().StringVar(&title, "title", "", "Title attached to a published result")
	cmd.Flags().Float64Var(&threshold, "threshold", text.SimilarityThreshold, "Word overlap above which a changed line counts as modified")
	return cmd
}

func newShowCommand(app *appContext) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Render a diff result saved with compare --output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ensureConfig(cmd)
			if err != nil {
				return err
			}
			result, err := export.ReadFile(args[0])
			if err != nil {
				return err
			}
			// The source texts are not stored with a result
			return writeReport(cmd.OutOrStdout(), result, "", &flags, cfg.Render)
		},
	}

	flags.register(cmd)
	return cmd
}

// writeReport renders result followed by the stats table
func writeReport(out io.Writer, result *text.Result, summary string, flags *renderFlags, cfg config.Render) error {
	opts, err := flags.options(cfg, out)
	if err != nil {
		return err
	}
	if err := render.New(opts).Render(out, result); err != nil {
		return fmt.Errorf("render diff: %w", err)
	}
	if flags.noStats {
		return nil
	}
	fmt.Fprintln(out)
	return render.RenderStats(out, result.Stats, summary)
}

func readSide(cmd *cobra.Command, path string) (string, error) {
	if path == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func defaultTitle(args []string) string {
	names := make([]string, len(args))
	for i, arg := range args {
		if arg == stdinName {
			names[i] = "stdin"
			continue
		}
		names[i] = filepath.Base(arg)
	}
	return strings.Join(names, " → ")
}

func publishResult(ctx context.Context, cfg config.Publish, req *publish.Request) (*publish.Response, error) {
	if cfg.URL == "" {
		return nil, errors.New("publish.url is not configured")
	}
	if cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	client := publish.NewClient(cfg.URL, cfg.Token, cfg.TimeoutMs)
	resp, err := client.Publish(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("publish result: %w", err)
	}
	logger.Info("published comparison %s to %s", resp.ComparisonID, cfg.URL)
	return resp, nil
}
