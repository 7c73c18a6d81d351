package model

import "io/fs"

//EntryKind classifies one filesystem path, as seen without following symlinks.
type EntryKind int

const (
	KindAbsent EntryKind = iota
	KindRegular
	KindDirectory
	KindOther // symlink, device, fifo, socket
)

func (k EntryKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}

//KindOf maps the type bits of a file mode onto an EntryKind.
func KindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

//EntryStat holds what the comparator knows about one path in one of the trees.
//Size and ModTime are meaningful for regular files only.
type EntryStat struct {
	Kind    EntryKind
	Size    int64 // in bytes
	ModTime int64 // unix seconds
}

func (s EntryStat) Exists() bool {
	return s.Kind != KindAbsent
}

func (s EntryStat) IsRegular() bool {
	return s.Kind == KindRegular
}

//SameAs reports whether both entries are regular files with equal size and modification time.
//Contents are never looked at.
func (s EntryStat) SameAs(other EntryStat) bool {
	return s.IsRegular() && other.IsRegular() && s.Size == other.Size && s.ModTime == other.ModTime
}

//DirPair is a directory in the walked tree and the same relative location in the mirrored tree.
type DirPair struct {
	Self, Other string
}

//Join builds the pair for a child entry. Paths are concatenated as is, without any cleaning.
func (p DirPair) Join(name string) DirPair {
	return DirPair{Self: join(p.Self, name), Other: join(p.Other, name)}
}

func join(dir, name string) string {
	if dir == "/" { // filesystem root is the only directory allowed to end with a separator
		return "/" + name
	}
	return dir + "/" + name
}

//StatOf converts the result of lstat into an EntryStat.
func StatOf(info fs.FileInfo) EntryStat {
	return EntryStat{Kind: KindOf(info.Mode()), Size: info.Size(), ModTime: info.ModTime().Unix()}
}
