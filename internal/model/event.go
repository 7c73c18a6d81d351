package model

//DiffKind is a label of one line of the report.
type DiffKind string

const (
	Differs DiffKind = "DIFFERS"
	Missing DiffKind = "MISSING"
)

//DiffEvent is one reported difference.
//For Missing the path is the one that does not exist, for Differs it is the path in the walked tree.
type DiffEvent struct {
	Kind DiffKind `json:"kind"`
	Path string   `json:"path"`
}

func NewDiffers(path string) DiffEvent {
	return DiffEvent{Kind: Differs, Path: path}
}

func NewMissing(path string) DiffEvent {
	return DiffEvent{Kind: Missing, Path: path}
}

func (e DiffEvent) String() string {
	return string(e.Kind) + ": " + e.Path
}
