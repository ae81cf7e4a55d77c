package pack

// Entry is one file copied into the archive.
type Entry struct {
	Name string // stored name, slash separated
	Path string // absolute source path
	Mode int
	Size int64
}

// Result describes a finished archive.
type Result struct {
	Path  string
	Count int
	Size  int64
}
