// Command glinfo creates an offscreen GL context, resolves the gl command
// table against it and reports which entry points the driver provides.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/glproc"
	"github.com/gogpu/glproc/gl"
	"github.com/gogpu/glproc/platform"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func init() {
	// GL contexts are current per OS thread.
	runtime.LockOSThread()
}

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML config file",
		Value: defaultConfigPath(),
	}
	loaderFlag = &cli.StringSliceFlag{
		Name:  "loader",
		Usage: "platform loader to try (egl, glx, wgl, cgl); repeatable",
	}
	glesFlag = &cli.BoolFlag{
		Name:  "gles",
		Usage: "request an OpenGL ES context",
	}
	glVersionFlag = &cli.StringFlag{
		Name:  "gl-version",
		Usage: "requested context version",
	}
	missingOnlyFlag = &cli.BoolFlag{
		Name:  "missing-only",
		Usage: "list only commands that did not resolve",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format (table|plain|toml)",
	}
	saveConfigFlag = &cli.BoolFlag{
		Name:  "save-config",
		Usage: "write the effective settings to the config file and exit",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "debug logging to stderr",
	}
)

func main() {
	app := &cli.App{
		Name:  "glinfo",
		Usage: "report GL entry point availability",
		Flags: []cli.Flag{
			configFlag,
			loaderFlag,
			glesFlag,
			glVersionFlag,
			missingOnlyFlag,
			formatFlag,
			saveConfigFlag,
			verboseFlag,
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "glinfo:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Bool(verboseFlag.Name) {
		glproc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	path := ctx.String(configFlag.Name)
	cfg, err := loadConfig(path, ctx.IsSet(configFlag.Name))
	if err != nil {
		return err
	}
	if err := cfg.applyFlags(ctx); err != nil {
		return err
	}
	if ctx.Bool(saveConfigFlag.Name) {
		return writeConfig(path, &cfg)
	}

	v, err := glproc.ParseVersion(cfg.GLVersion)
	if err != nil {
		return fmt.Errorf("--gl-version: %w", err)
	}
	headless, err := platform.NewHeadless(platform.HeadlessConfig{
		GLES:  cfg.GLES,
		Major: v.Major,
		Minor: v.Minor,
	})
	if err != nil {
		return err
	}
	defer headless.Close()

	binding, err := platform.Open(cfg.Loaders...)
	if err != nil {
		return err
	}
	defer binding.Close()

	glctx, err := gl.NewContext(binding, binding, gl.WithPreload())
	if err != nil {
		return err
	}

	rep := newReport(binding.Name(), glctx.Report(), cfg.MissingOnly)
	return rep.write(os.Stdout, cfg.Format, term.IsTerminal(int(os.Stdout.Fd())))
}
