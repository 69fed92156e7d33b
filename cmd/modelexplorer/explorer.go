package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"mjcf-parser/internal/commands"
	"mjcf-parser/internal/config"
	"mjcf-parser/internal/debug"
	"mjcf-parser/internal/diag"
	"mjcf-parser/internal/geom"
	"mjcf-parser/internal/graphics"
	"mjcf-parser/internal/mjcf"
	"mjcf-parser/internal/physics"
	"mjcf-parser/internal/scene"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errWarnings = errors.New("model has warnings")

// newLogger builds a console logger filtered at the given diagnostic level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, ok := diag.ParseLevel(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q: must be one of debug, warn, error", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl.ZapLevel())
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// app carries what every subcommand needs.
type app struct {
	cfg        config.Config
	configPath string
	logger   *zap.Logger
	recorder *diag.Recorder
	out      io.Writer
}

func newApp(cfg config.Config, configPath string, logger *zap.Logger, out io.Writer) *app {
	rec := diag.NewRecorder()
	if cfg.LogFile != "" {
		rec = diag.NewFileRecorder(cfg.LogFile)
	}
	return &app{cfg: cfg, configPath: configPath, logger: logger, recorder: rec, out: out}
}

func (a *app) commands(stderr io.Writer) *commands.Registry {
	reg := commands.NewRegistry()

	viewFlags := flag.NewFlagSet("view", flag.ContinueOnError)
	viewFlags.SetOutput(stderr)
	bounds := viewFlags.Bool("bounds", a.cfg.ShowBounds, "draw collision bounds")
	reg.Register("view", "open the model in a window", viewFlags, func(args []string) error {
		a.cfg.ShowBounds = *bounds
		return a.withModel(args, a.view)
	})

	inspectFlags := flag.NewFlagSet("inspect", flag.ContinueOnError)
	inspectFlags.SetOutput(stderr)
	reg.Register("inspect", "print resolved geometries as YAML", inspectFlags, func(args []string) error {
		return a.withModel(args, a.inspect)
	})

	checkFlags := flag.NewFlagSet("check", flag.ContinueOnError)
	checkFlags.SetOutput(stderr)
	strict := checkFlags.Bool("strict", false, "fail when the model has warnings")
	reg.Register("check", "parse the model and report diagnostics", checkFlags, func(args []string) error {
		return a.withModel(args, func(path string, m *mjcf.Model) error {
			return a.check(path, m, *strict)
		})
	})

	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.SetOutput(stderr)
	force := initFlags.Bool("force", false, "overwrite an existing config file")
	reg.Register("init", "write the effective settings to the -config file", initFlags, func(args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("%w: init takes no arguments", commands.ErrUsage)
		}
		return a.writeConfig(*force)
	})
	return reg
}

// writeConfig saves the effective settings, defaults plus file plus flags, to the
// config path.
func (a *app) writeConfig(force bool) error {
	if _, err := os.Stat(a.configPath); err == nil && !force {
		return fmt.Errorf("%s already exists; use init -force to overwrite", a.configPath)
	}
	if err := config.Save(a.configPath, a.cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(a.out, "wrote %s\n", a.configPath)
	return nil
}

// withModel parses the single MODEL_FILE argument and hands it to fn.
func (a *app) withModel(args []string, fn func(path string, m *mjcf.Model) error) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one MODEL_FILE", commands.ErrUsage)
	}
	path := args[0]
	m, err := a.load(path)
	if err != nil {
		return err
	}
	return fn(path, m)
}

func (a *app) load(path string) (*mjcf.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	defer f.Close()

	logger := a.logger.With(zap.String("model_file", path))
	sink := diag.Tee(diag.NewZapSink(logger), a.recorder)
	m, err := mjcf.Parse(f, sink)
	if err != nil {
		diag.Error(sink, "Model parse failed", "error", err.Error())
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Debug("Parsed model", zap.String("model_name", m.Name), zap.Int("geoms", len(m.Geoms)))
	return m, nil
}

func (a *app) view(_ string, m *mjcf.Model) error {
	world := physics.NewStaticWorld(m.Geoms)
	world.SetGravity(a.cfg.Gravity)
	scn := scene.New(a.cfg, m.Geoms, world)
	hud := debug.New(m.Name, len(m.Geoms))
	hud.ShowFPS = a.cfg.ShowFPS

	update := func(dt float32) {
		scn.Update()
		world.Step(dt)
	}
	draw := func() {
		scn.Draw()
		hud.Draw()
	}
	graphics.Run(graphics.Window{Title: a.cfg.Title + " - " + m.Name, Width: a.cfg.Width, Height: a.cfg.Height}, update, draw)
	return nil
}

func (a *app) inspect(_ string, m *mjcf.Model) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(newModelView(m)); err != nil {
		return err
	}
	return enc.Close()
}

func (a *app) check(path string, m *mjcf.Model, strict bool) error {
	warns := a.recorder.Count(diag.LevelWarn)
	fmt.Fprintf(a.out, "%s: ok, model %q, %d geoms, %d warnings\n", path, m.Name, len(m.Geoms), warns)
	if strict && warns > 0 {
		return errWarnings
	}
	return nil
}

// modelView is the inspect output.
type modelView struct {
	Model string     `yaml:"model"`
	Geoms []geomView `yaml:"geoms"`
}

type geomView struct {
	Name  string     `yaml:"name"`
	Named bool       `yaml:"named"`
	Type  string     `yaml:"type"`
	Size  []float64  `yaml:"size,flow,omitempty"`
	Pos   [3]float64 `yaml:"pos,flow"`
	Quat  [4]float64 `yaml:"quat,flow"`
	RGBA  [4]float64 `yaml:"rgba,flow"`
}

func newModelView(m *mjcf.Model) modelView {
	v := modelView{Model: m.Name, Geoms: make([]geomView, 0, len(m.Geoms))}
	for _, d := range m.Geoms {
		q := d.Pose.Orientation
		v.Geoms = append(v.Geoms, geomView{
			Name:  d.Name,
			Named: d.Named,
			Type:  d.Shape.Kind().String(),
			Size:  shapeSize(d.Shape),
			Pos:   d.Pose.Translation,
			Quat:  [4]float64{q.W, q.V[0], q.V[1], q.V[2]},
			RGBA:  d.Material.RGBA,
		})
	}
	return v
}

// shapeSize lists a shape's dimensions in the order the size attribute gives them.
func shapeSize(s geom.Shape) []float64 {
	switch s := s.(type) {
	case geom.Sphere:
		return []float64{s.Radius}
	case geom.Capsule:
		return []float64{s.Radius, s.HalfLength}
	case geom.Box:
		return s.HalfExtents[:]
	}
	return nil
}
