package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/krishpranav/katanaa/internal/cargo"
	"github.com/krishpranav/katanaa/internal/platform"
	"github.com/krishpranav/katanaa/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of checking one tool.
type Result struct {
	Tool    string
	Found   bool
	Binary  string
	Path    string
	Version *semver.Version
	Banner  string
}

// Checker probes the host for toolchain binaries.
type Checker struct {
	Platform platform.Platform
	Tools    []Tool
	// LookPath and Output default to exec.LookPath and running the binary.
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, path string, args ...string) ([]byte, error)
}

// NewChecker returns a Checker for p using DefaultTools.
func NewChecker(p platform.Platform) *Checker {
	return &Checker{
		Platform: p,
		Tools:    DefaultTools,
		LookPath: exec.LookPath,
		Output:   commandOutput,
	}
}

func commandOutput(ctx context.Context, path string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, path, args...).CombinedOutput()
}

// probeLimit bounds how many version banners run at once.
const probeLimit = 4

// CheckTools reports each applicable tool to w and returns the results in
// the order of c.Tools. Tools are probed concurrently.
func (c *Checker) CheckTools(ctx context.Context, w io.Writer) []Result {
	out := ui.NewPrinter(w)
	out.Section(fmt.Sprintf("Toolchain check (%s):", c.Platform))

	var tools []Tool
	for _, tool := range c.Tools {
		if tool.AppliesTo(c.Platform) {
			tools = append(tools, tool)
		}
	}

	results := make([]Result, len(tools))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeLimit)
	for i, tool := range tools {
		i, tool := i, tool
		g.Go(func() error {
			results[i] = c.probe(gctx, tool)
			return nil
		})
	}
	_ = g.Wait()

	for i, tool := range tools {
		r := results[i]
		switch {
		case !r.Found && tool.Optional:
			out.Check(ui.StatusInfo, fmt.Sprintf("%s not installed (optional)", tool.Name))
		case !r.Found:
			out.Check(ui.StatusMiss, fmt.Sprintf("%s not found (tried %s)", tool.Name, strings.Join(tool.Binaries, ", ")))
		case r.Version != nil:
			out.Check(ui.StatusOK, fmt.Sprintf("%s %s at %s", tool.Name, r.Version, r.Path))
		default:
			out.Check(ui.StatusOK, fmt.Sprintf("%s found at %s (version unknown)", tool.Name, r.Path))
		}

		if tool.Name == "rustc" && r.Found && !IsNightly(r.Banner) {
			out.Check(ui.StatusWarn, "rustc is not a nightly toolchain; -Zshare-generics requires nightly")
		}
	}
	return results
}

func (c *Checker) probe(ctx context.Context, tool Tool) Result {
	r := Result{Tool: tool.Name}
	for _, bin := range tool.Binaries {
		path, err := c.LookPath(bin)
		if err != nil {
			continue
		}
		r.Found = true
		r.Binary = bin
		r.Path = path
		break
	}
	if !r.Found {
		return r
	}

	banner, err := c.Output(ctx, r.Path, tool.VersionArgs...)
	if err != nil {
		return r
	}
	r.Banner = strings.TrimSpace(string(banner))
	if v, err := ParseVersion(r.Banner); err == nil {
		r.Version = v
	}
	return r
}

// CheckConfig validates an existing Cargo config file against the schema
// katanaa generates and reports issues to w.
func CheckConfig(w io.Writer, path string) error {
	out := ui.NewPrinter(w)
	out.Section(fmt.Sprintf("Config validation: %s", path))

	result, err := cargo.ValidateFile(path)
	if err != nil {
		out.Check(ui.StatusFail, err.Error())
		return fmt.Errorf("config validation failed: %w", err)
	}

	if result.Valid {
		out.Check(ui.StatusOK, "matches the katanaa config schema")
		return nil
	}

	out.Check(ui.StatusFail, fmt.Sprintf("%d validation issue(s):", len(result.Issues)))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("config %s has %d validation issue(s)", path, len(result.Issues))
}
