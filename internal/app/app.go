// Package app implements the command orchestrator for rpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.rpack.dev/rpack/internal/adapters/detector"
	"go.rpack.dev/rpack/internal/adapters/linear"
	"go.rpack.dev/rpack/internal/adapters/telemetry"
	"go.rpack.dev/rpack/internal/adapters/tui"
	"go.rpack.dev/rpack/internal/core/domain"
	"go.rpack.dev/rpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Step names shown in the renderer, in the order commands run them.
const (
	stepInit     = "init"
	stepRestore  = "restore"
	stepInstall  = "install"
	stepUpdate   = "update"
	stepClean    = "clean"
	stepSnapshot = "snapshot"
	stepCheck    = "check"
	stepOutdated = "outdated"
)

// App represents the main application logic. Command execution is strictly
// sequential; concurrent invocations against the same project are not
// coordinated.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestStore
	snapshots    ports.Snapshotter
	installer    ports.Installer
	logger       ports.Logger

	stdout io.Writer
	stderr io.Writer

	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestStore,
	snapshots ports.Snapshotter,
	installer ports.Installer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		manifests:    manifests,
		snapshots:    snapshots,
		installer:    installer,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI tick loop.
// This is primarily used for testing to keep updates deterministic.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// WithOutputStreams redirects command output and renderer output.
// This is primarily used for testing.
func (a *App) WithOutputStreams(stdout, stderr io.Writer) *App {
	if stdout != nil {
		a.stdout = stdout
	}
	if stderr != nil {
		a.stderr = stderr
	}
	return a
}

// Install brings the project library in line with the manifest: restore
// drift from the lockfile, install the declared dependencies, prune unused
// packages and record the result in the lockfile.
func (a *App) Install(ctx context.Context, opts Options) error {
	env, m, err := a.project(opts)
	if err != nil {
		return err
	}
	deps := m.Dependencies()

	err = a.execute(ctx, opts, []string{stepRestore, stepInstall, stepClean, stepSnapshot},
		func(ctx context.Context, tracer ports.Tracer) error {
			return a.syncSteps(ctx, tracer, env, deps)
		})
	if err != nil {
		return err
	}

	if err := a.reportUsing(ctx, env, deps); err != nil {
		return err
	}
	a.logger.Info("install complete")
	return nil
}

// Init sets up a project from scratch: create the manifest when absent,
// initialize the snapshot subsystem, then run the install sequence. Running
// init on an initialized project is equivalent to install.
func (a *App) Init(ctx context.Context, opts Options) error {
	env, err := a.environment(opts)
	if err != nil {
		return err
	}
	created, err := a.manifests.EnsureExists(env)
	if err != nil {
		return err
	}
	if created {
		a.logger.Info("created " + domain.ManifestFileName)
	}
	m, err := a.manifests.Load(env)
	if err != nil {
		return err
	}
	deps := m.Dependencies()

	steps := []string{stepRestore, stepInstall, stepClean, stepSnapshot}
	initialize := !a.snapshots.Initialized(env)
	if initialize {
		steps = append([]string{stepInit}, steps...)
	}

	err = a.execute(ctx, opts, steps, func(ctx context.Context, tracer ports.Tracer) error {
		if initialize {
			if err := step(ctx, tracer, stepInit, func(ctx context.Context, out io.Writer) error {
				return a.snapshots.Init(ctx, env, out)
			}); err != nil {
				return err
			}
		}
		return a.syncSteps(ctx, tracer, env, deps)
	})
	if err != nil {
		return err
	}

	if err := a.reportUsing(ctx, env, deps); err != nil {
		return err
	}
	a.logger.Info("project ready")
	return nil
}

// Add declares packages in the manifest and installs them. A token may pin
// an exact version as name@version. Remotes are source locators for
// packages that do not come from the configured repositories. A failed
// install puts the manifest back the way it was.
func (a *App) Add(ctx context.Context, tokens, remotes []string, opts Options) error {
	if len(tokens) == 0 {
		return zerr.With(domain.ErrUsage, "reason", "add requires at least one package")
	}
	specs := make([]domain.PackageSpec, 0, len(tokens))
	for _, token := range tokens {
		spec, err := domain.ParsePackageSpec(token)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	env, m, err := a.project(opts)
	if err != nil {
		return err
	}

	err = a.execute(ctx, opts, []string{stepRestore, stepInstall, stepClean, stepSnapshot},
		func(ctx context.Context, tracer ports.Tracer) error {
			if err := a.restoreStep(ctx, tracer, env); err != nil {
				return err
			}
			if err := step(ctx, tracer, stepInstall, func(ctx context.Context, out io.Writer) error {
				original := m.Clone()
				m.AddRemotes(remotes...)
				for _, spec := range specs {
					// A pin or a remote source must reinstall even when some
					// version of the package is already present.
					if spec.Pinned() || len(remotes) > 0 {
						if err := a.installer.Uninstall(ctx, env, spec.Name, out); err != nil {
							return err
						}
					}
					m.SetDependency(domain.Dependency{Name: spec.Name, Constraint: spec.Constraint()})
				}
				if err := a.manifests.Save(env, m); err != nil {
					return err
				}
				if err := a.installer.InstallDeclared(ctx, env, m.Dependencies(), out); err != nil {
					return a.rollback(env, original, err)
				}
				return nil
			}); err != nil {
				return err
			}
			if err := a.cleanStep(ctx, tracer, env); err != nil {
				return err
			}
			return a.snapshotStep(ctx, tracer, env)
		})
	if err != nil {
		return err
	}

	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	versions, err := a.installer.InstalledVersions(ctx, env, names)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if v := versions[spec.Name]; v != "" {
			a.logger.Info(fmt.Sprintf("added %s %s", spec.Name, v))
		} else {
			a.logger.Info("added " + spec.Name)
		}
	}
	return nil
}

// Remove deletes package declarations from the manifest and lets the
// subsystems prune the library. Every name must be declared; nothing is
// mutated otherwise.
func (a *App) Remove(ctx context.Context, names, remotes []string, opts Options) error {
	if len(names) == 0 {
		return zerr.With(domain.ErrUsage, "reason", "remove requires at least one package")
	}

	env, m, err := a.project(opts)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !m.HasDependency(name) {
			return zerr.With(domain.ErrUnknownPackage, "package", name)
		}
	}

	err = a.execute(ctx, opts, []string{stepRestore, stepInstall, stepClean, stepSnapshot},
		func(ctx context.Context, tracer ports.Tracer) error {
			if err := a.restoreStep(ctx, tracer, env); err != nil {
				return err
			}
			if err := step(ctx, tracer, stepInstall, func(ctx context.Context, out io.Writer) error {
				original := m.Clone()
				for _, name := range names {
					m.RemoveDependency(name)
				}
				m.RemoveRemotes(remotes...)
				if err := a.manifests.Save(env, m); err != nil {
					return err
				}
				if err := a.installer.InstallDeclared(ctx, env, m.Dependencies(), out); err != nil {
					return a.rollback(env, original, err)
				}
				return nil
			}); err != nil {
				return err
			}
			if err := a.cleanStep(ctx, tracer, env); err != nil {
				return err
			}
			return a.snapshotStep(ctx, tracer, env)
		})
	if err != nil {
		return err
	}

	for _, name := range names {
		a.logger.Info("removed " + name)
	}
	return nil
}

// Update reinstalls a declared package so it moves to the newest version
// its constraint allows, then records the new library state. The manifest
// is never mutated.
func (a *App) Update(ctx context.Context, name string, opts Options) error {
	if strings.TrimSpace(name) == "" {
		return zerr.With(domain.ErrUsage, "reason", "update requires a package name")
	}

	env, m, err := a.project(opts)
	if err != nil {
		return err
	}
	if !m.HasDependency(name) {
		return zerr.With(domain.ErrUnknownPackage, "package", name)
	}
	deps := m.Dependencies()

	var oldVersion string
	err = a.execute(ctx, opts, []string{stepRestore, stepUpdate, stepSnapshot},
		func(ctx context.Context, tracer ports.Tracer) error {
			if err := a.restoreStep(ctx, tracer, env); err != nil {
				return err
			}
			if err := step(ctx, tracer, stepUpdate, func(ctx context.Context, out io.Writer) error {
				old, err := a.installer.InstalledVersion(ctx, env, name)
				if err != nil {
					return err
				}
				oldVersion = old
				if err := a.installer.Uninstall(ctx, env, name, out); err != nil {
					return err
				}
				return a.installer.InstallDeclared(ctx, env, deps, out)
			}); err != nil {
				return err
			}
			return a.snapshotStep(ctx, tracer, env)
		})
	if err != nil {
		return err
	}

	newVersion, err := a.installer.InstalledVersion(ctx, env, name)
	if err != nil {
		return err
	}
	switch {
	case oldVersion == "":
		a.logger.Info(fmt.Sprintf("installed %s %s", name, newVersion))
	case oldVersion == newVersion:
		a.logger.Info(fmt.Sprintf("%s already at %s", name, newVersion))
	default:
		a.logger.Info(fmt.Sprintf("updated %s %s -> %s", name, oldVersion, newVersion))
	}
	return nil
}

// Check verifies that every declared dependency is installed and in sync
// with the lockfile. It mutates nothing and fails when anything is missing.
func (a *App) Check(ctx context.Context, opts Options) error {
	env, m, err := a.project(opts)
	if err != nil {
		return err
	}
	deps := m.Dependencies()

	var status domain.LibraryStatus
	err = a.execute(ctx, opts, []string{stepCheck}, func(ctx context.Context, tracer ports.Tracer) error {
		return step(ctx, tracer, stepCheck, func(ctx context.Context, out io.Writer) error {
			s, err := a.snapshots.Status(ctx, env, out)
			if err != nil {
				return err
			}
			status = s
			return nil
		})
	})
	if err != nil {
		return err
	}

	recorded := make(map[string]domain.PackageStatus, len(status.Packages))
	for _, p := range status.Packages {
		recorded[p.Name] = p
	}

	var missing []string
	for _, dep := range deps {
		if dep.Name == "R" {
			continue
		}
		st, ok := recorded[dep.Name]
		switch {
		case !ok || st.Installed == "":
			a.logger.Warn(dep.Name + " is not installed")
			missing = append(missing, dep.Name)
		case !st.Synchronized:
			a.logger.Warn(dep.Name + " is out of sync with the lockfile")
			missing = append(missing, dep.Name)
		}
	}
	if len(missing) > 0 {
		return zerr.With(domain.ErrMissingPackages, "packages", strings.Join(missing, ", "))
	}
	a.logger.Info("all declared packages are installed")
	return nil
}

// Outdated lists installed packages for which the configured repositories
// carry a newer version. The report is informational; the command succeeds
// either way.
func (a *App) Outdated(ctx context.Context, opts Options) error {
	env, _, err := a.project(opts)
	if err != nil {
		return err
	}

	var rows []domain.OutdatedPackage
	err = a.execute(ctx, opts, []string{stepOutdated}, func(ctx context.Context, tracer ports.Tracer) error {
		return step(ctx, tracer, stepOutdated, func(ctx context.Context, out io.Writer) error {
			list, err := a.installer.Outdated(ctx, env, out)
			if err != nil {
				return err
			}
			rows = list
			return nil
		})
	})
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		a.logger.Info("all packages are up to date")
		return nil
	}
	w := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "PACKAGE\tINSTALLED\tAVAILABLE")
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", row.Name, row.Installed, row.Available)
	}
	return w.Flush()
}

// project resolves the environment and loads the manifest, failing early
// when the project has no lockfile yet.
func (a *App) project(opts Options) (domain.Environment, *domain.Manifest, error) {
	env, err := a.environment(opts)
	if err != nil {
		return domain.Environment{}, nil, err
	}
	if !a.snapshots.Initialized(env) {
		return domain.Environment{}, nil, domain.ErrProjectNotInitialized
	}
	m, err := a.manifests.Load(env)
	if err != nil {
		return domain.Environment{}, nil, err
	}
	return env, m, nil
}

// environment resolves the project root against the working directory and
// applies the configuration file.
func (a *App) environment(opts Options) (domain.Environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.Environment{}, errors.Join(domain.ErrFailedToGetRoot,
			zerr.Wrap(err, "get working directory"))
	}
	root, err := filepath.Abs(wd)
	if err != nil {
		return domain.Environment{}, errors.Join(domain.ErrFailedToGetRoot,
			zerr.Wrap(err, "resolve project root"))
	}
	env, err := a.configLoader.Load(root, opts.ConfigPath)
	if err != nil {
		return domain.Environment{}, err
	}
	if opts.Verbose {
		a.logEnvironment(env)
	}
	return env, nil
}

func (a *App) logEnvironment(env domain.Environment) {
	a.logger.Info("project root: " + env.Root)
	a.logger.Info("interpreter: " + env.Rscript)
	a.logger.Info("library: " + env.Library)
	names := make([]string, 0, len(env.Repos))
	for name := range env.Repos {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		a.logger.Info("repository " + name + ": " + env.Repos[name])
	}
}

// execute runs worker against a renderer selected for the environment. Step
// progress flows from spans through the telemetry bridge into the renderer;
// worker runs on its own goroutine so an interactive renderer can own the
// terminal meanwhile.
func (a *App) execute(
	ctx context.Context,
	opts Options,
	steps []string,
	worker func(ctx context.Context, tracer ports.Tracer) error,
) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		if a.disableTick {
			model = model.WithDisableTick()
		}
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(&model, optsTea...)
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr)
	}

	// Report spans to the renderer through the bridge. The provider is
	// global, so the tracer picks it up by name.
	bridge := telemetry.NewBridge(renderer)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	otel.SetTracerProvider(tp)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	tracer := telemetry.NewOTelTracer("rpack").WithRenderer(renderer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				_, _ = fmt.Fprintf(a.stderr, "command panic: %v\n", r)
			}
			_ = renderer.Stop()
		}()

		tracer.EmitPlan(ctx, steps)

		// The root span groups the steps without being rendered itself.
		ctx, root := tracer.Start(ctx, "rpack", ports.WithQuiet())
		defer root.End()

		return worker(ctx, tracer)
	})

	return g.Wait()
}

// syncSteps is the shared tail of install and init: restore, install,
// clean, snapshot.
func (a *App) syncSteps(ctx context.Context, tracer ports.Tracer, env domain.Environment, deps []domain.Dependency) error {
	if err := a.restoreStep(ctx, tracer, env); err != nil {
		return err
	}
	if err := step(ctx, tracer, stepInstall, func(ctx context.Context, out io.Writer) error {
		return a.installer.InstallDeclared(ctx, env, deps, out)
	}); err != nil {
		return err
	}
	if err := a.cleanStep(ctx, tracer, env); err != nil {
		return err
	}
	return a.snapshotStep(ctx, tracer, env)
}

// restoreStep repairs library drift from the lockfile before any other
// work, so the subsystems operate on the recorded state.
func (a *App) restoreStep(ctx context.Context, tracer ports.Tracer, env domain.Environment) error {
	return step(ctx, tracer, stepRestore, func(ctx context.Context, out io.Writer) error {
		status, err := a.snapshots.Status(ctx, env, out)
		if err != nil {
			return err
		}
		if !status.NeedsRestore() {
			_, _ = fmt.Fprintln(out, "Library is in sync with the lockfile.")
			return nil
		}
		return a.snapshots.Restore(ctx, env, out)
	})
}

func (a *App) cleanStep(ctx context.Context, tracer ports.Tracer, env domain.Environment) error {
	return step(ctx, tracer, stepClean, func(ctx context.Context, out io.Writer) error {
		return a.snapshots.Clean(ctx, env, out)
	})
}

func (a *App) snapshotStep(ctx context.Context, tracer ports.Tracer, env domain.Environment) error {
	return step(ctx, tracer, stepSnapshot, func(ctx context.Context, out io.Writer) error {
		return a.snapshots.Snapshot(ctx, env, out)
	})
}

// rollback writes the pre-mutation manifest back after a failed install so
// the command leaves no trace. The original failure is surfaced; a rollback
// failure is attached to it.
func (a *App) rollback(env domain.Environment, original *domain.Manifest, cause error) error {
	if err := a.manifests.Save(env, original); err != nil {
		return errors.Join(cause, zerr.Wrap(err, "restore manifest after failed install"))
	}
	return cause
}

// reportUsing prints one line per declared dependency with the version that
// ended up installed. The interpreter requirement "R" is not a package.
func (a *App) reportUsing(ctx context.Context, env domain.Environment, deps []domain.Dependency) error {
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		if d.Name == "R" {
			continue
		}
		names = append(names, d.Name)
	}
	if len(names) == 0 {
		return nil
	}
	versions, err := a.installer.InstalledVersions(ctx, env, names)
	if err != nil {
		return err
	}
	for _, name := range names {
		if v := versions[name]; v != "" {
			a.logger.Info(fmt.Sprintf("using %s %s", name, v))
		}
	}
	return nil
}

// step runs fn inside a span named name. The span doubles as the step's
// output sink; a failure is recorded on the span so the renderer can show
// it against the step.
func step(ctx context.Context, tracer ports.Tracer, name string, fn func(ctx context.Context, out io.Writer) error) error {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
