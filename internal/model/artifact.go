package model

import "path/filepath"

const (
	// IRExt is the extension of built module representations.
	IRExt = ".ll"
	// SourceExt is the extension of copied module sources.
	SourceExt = ".c"
)

// BuildArtifact is a built module representation and its copied source.
type BuildArtifact struct {
	Version        string
	Module         string
	Representation Path
	Source         Path
}

// TaskLayout computes the deterministic file names of a task directory:
//
//	<root>/<module>/<module>_old.ll
//	<root>/<module>/<module>_old-<param>.ll
//	<root>/<module>/<module>_old.c
type TaskLayout struct {
	Root   Path
	Module string
	Param  string
}

// NewTaskLayout returns the layout of a scenario under tasksRoot.
func NewTaskLayout(tasksRoot Path, spec ScenarioSpec) TaskLayout {
	return TaskLayout{Root: tasksRoot, Module: spec.Module, Param: spec.Param}
}

// Dir is the task directory shared by every parameter of the module.
func (l TaskLayout) Dir() Path {
	return Path(filepath.Join(string(l.Root), l.Module))
}

// ModuleFile returns the raw representation path of a side.
func (l TaskLayout) ModuleFile(side Side) Path {
	return l.file(l.Module + "_" + string(side) + IRExt)
}

// Simplified returns the parameter-qualified representation path of a side.
func (l TaskLayout) Simplified(side Side) Path {
	return l.file(l.Module + "_" + string(side) + "-" + l.Param + IRExt)
}

// Source returns the copied source path of a side.
func (l TaskLayout) Source(side Side) Path {
	return l.file(l.Module + "_" + string(side) + SourceExt)
}

// LockFile returns the lock file guarding the build of a side.
func (l TaskLayout) LockFile(side Side) Path {
	return l.file(l.Module + "_" + string(side) + ".lock")
}

func (l TaskLayout) file(name string) Path {
	return Path(filepath.Join(string(l.Dir()), name))
}
