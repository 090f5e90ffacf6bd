package model

// Path represents a file system path.
type Path string

// Side identifies one of the two compared module versions.
type Side string

const (
	// SideOld is the older kernel version of a module.
	SideOld Side = "old"
	// SideNew is the newer kernel version of a module.
	SideNew Side = "new"
)
