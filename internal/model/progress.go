package model

// Progress is an advisory progress update.
type Progress struct {
	Title    string
	Info     string
	Fraction float64
}

// CopyStats counts what a copy pass did.
type CopyStats struct {
	Copied      int
	Rescaled    int
	Skipped     int
	MetaCopied  int
	Directories int
}

// BuildResult summarizes a repro build.
type BuildResult struct {
	Target   string
	Manifest int
	Stats    CopyStats
	Failed   []DecodeError
}
