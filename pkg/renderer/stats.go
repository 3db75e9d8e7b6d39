package renderer

import "time"

// ScanlineStats describes one rendered row
type ScanlineStats struct {
	Y           int           // Row index
	Pixels      int           // Pixels written
	PrimaryHits int           // Pixels whose primary ray hit a shape
	Duration    time.Duration // Wall time spent on the row
}

// RenderStats contains statistics about a full-frame render
type RenderStats struct {
	Width, Height int
	Scanlines     int           // Rows completed
	TotalPixels   int           // Pixels written across all rows
	PrimaryHits   int           // Pixels whose primary ray hit a shape
	Workers       int           // Worker goroutines used
	Duration      time.Duration // Wall time for the whole frame
}

// add folds one scanline into the frame totals
func (rs *RenderStats) add(line ScanlineStats) {
	rs.Scanlines++
	rs.TotalPixels += line.Pixels
	rs.PrimaryHits += line.PrimaryHits
}

// Coverage returns the fraction of pixels that hit geometry
func (rs RenderStats) Coverage() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.PrimaryHits) / float64(rs.TotalPixels)
}

// Complete reports whether every row of the frame was rendered
func (rs RenderStats) Complete() bool {
	return rs.Height > 0 && rs.Scanlines == rs.Height
}
