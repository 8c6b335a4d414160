package ioimport

import (
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

// newProgressBar tracks bytes read from f on stderr. It returns nil when
// stderr is not a terminal or the size of f is unknown.
func newProgressBar(f *os.File) *pb.ProgressBar {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}

	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return nil
	}

	bar := pb.Full.Start64(info.Size())
	bar.Set("prefix", "Importing members: ")
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
