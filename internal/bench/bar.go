package bench

import "github.com/schollz/progressbar/v3"

// bar is a really simple progress bar for the benchmarking process.
type bar struct {
	pb *progressbar.ProgressBar
}

func newBar(description string, maxItems int) *bar {
	pb := progressbar.Default(int64(maxItems), description)
	_ = pb.Set(0)
	return &bar{pb: pb}
}

func (b *bar) Inc() {
	_ = b.pb.Add(1)
}

func (b *bar) Finish() {
	_ = b.pb.Finish()
	_ = b.pb.Close()
}
