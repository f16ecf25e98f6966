package domain

import (
	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

// ProgressFunc receives advisory progress updates. Operations never wait on
// it and a nil func is ignored.
type ProgressFunc func(m.Progress)

// progressRange maps the steps of one stage onto a slice of the overall bar.
type progressRange struct {
	report ProgressFunc
	title  string
	start  float64
	end    float64
}

// Stage slices of a repro build.
var (
	cleanStage   = progressRange{title: "Cleaning Target", start: 0, end: 0.05}
	findStage    = progressRange{title: "Finding Files", start: 0.05, end: 0.1}
	collectStage = progressRange{title: "Collect Dependencies", start: 0.1, end: 0.2}
	copyStage    = progressRange{title: "Copy", start: 0.2, end: 1}
)

func (r progressRange) with(report ProgressFunc) progressRange {
	r.report = report
	return r
}

// step reports item i of count.
func (r progressRange) step(info string, i, count int) {
	fraction := r.start
	if count > 0 {
		fraction += (r.end - r.start) * float64(i) / float64(count)
	}

	r.emit(info, fraction)
}

func (r progressRange) begin(info string) {
	r.emit(info, r.start)
}

func (r progressRange) done(info string) {
	r.emit(info, r.end)
}

func (r progressRange) emit(info string, fraction float64) {
	if r.report == nil {
		return
	}

	r.report(m.Progress{Title: r.title, Info: info, Fraction: fraction})
}
