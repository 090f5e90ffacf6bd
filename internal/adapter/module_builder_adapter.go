package adapter

import (
	"context"
	"fmt"
	"path/filepath"

	m "semreg.dev/pkg/semreg/internal/model"
)

// BuiltModule is what the external module builder produces.
type BuiltModule struct {
	Representation m.Path
	SourceDir      m.Path
}

// ModuleBuilder builds the analyzable representation of a kernel module.
type ModuleBuilder interface {
	Build(ctx context.Context, version, moduleDir, module string, debug bool) (BuiltModule, error)
}

// LocalModuleBuilder runs an external builder command. The command receives
// --kernel, --module-dir, --module and optionally --debug, and prints the path
// of the built representation on its last line of output.
type LocalModuleBuilder struct {
	argv []string
}

// NewLocalModuleBuilder constructs a LocalModuleBuilder running argv.
func NewLocalModuleBuilder(argv []string) *LocalModuleBuilder {
	return &LocalModuleBuilder{argv: argv}
}

// Build runs the builder for module of the given kernel version.
func (b *LocalModuleBuilder) Build(ctx context.Context, version, moduleDir, module string, debug bool) (BuiltModule, error) {
	args := []string{"--kernel", version, "--module-dir", moduleDir, "--module", module}
	if debug {
		args = append(args, "--debug")
	}

	out, err := runCommand(ctx, "", b.argv, args...)
	if err != nil {
		return BuiltModule{}, fmt.Errorf("build %s for %s: %w", module, version, err)
	}

	path := lastLine(out)
	if path == "" {
		return BuiltModule{}, fmt.Errorf("build %s for %s: builder printed no output path", module, version)
	}

	return BuiltModule{
		Representation: m.Path(path),
		SourceDir:      m.Path(filepath.Dir(path)),
	}, nil
}
