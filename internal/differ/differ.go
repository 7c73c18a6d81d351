package differ

import (
	"context"
	"io/fs"
	"time"

	"dirdiff/internal/log"
	"dirdiff/internal/model"
	"dirdiff/internal/report"
	"dirdiff/pkg/helpers/iout"
)

const dirBatchSize = 256

const (
	passForward = "forward"
	passReverse = "reverse"
)

//Differ compares two directory trees by the size and modification time of regular files
//and by the presence of entries.
type Differ struct {
	log  log.Logger
	sink report.Sink
}

func New(logger log.Logger, sink report.Sink) *Differ {
	return &Differ{log: logger, sink: sink}
}

type passStats struct {
	dirs, entries, reported int
}

//Run walks dirA checking every entry against dirB (full check of regular files),
//then walks dirB checking only that every entry exists in dirA.
//The reverse pass starts only if the forward one succeeded. Any returned error is fatal.
func (d *Differ) Run(ctx context.Context, dirA, dirB string) error {
	if err := d.compare(ctx, dirA, dirB, true); err != nil {
		return err
	}
	return d.compare(ctx, dirB, dirA, false)
}

//compare walks root depth-first with an explicit stack, so neither depth nor path length is limited.
//Only one directory is open at a time.
func (d *Differ) compare(ctx context.Context, root, mirror string, firstPass bool) error {
	pass := passReverse
	if firstPass {
		pass = passForward
	}
	d.log.Debug("pass started", log.String("pass", pass), log.String("root", root), log.String("mirror", mirror))
	start := time.Now()

	var stats passStats
	stack := []model.DirPair{{Self: root, Other: mirror}}
	for len(stack) > 0 {
		pair := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		subdirs, err := d.compareDir(ctx, pair, firstPass, &stats)
		if err != nil {
			d.log.Info("pass aborted", log.String("pass", pass), log.Cause(err))
			return err
		}
		// reversed, so that subdirectories are visited in listing order
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	d.log.Info("pass finished", log.String("pass", pass), log.Int("dirs", stats.dirs),
		log.Int("entries", stats.entries), log.Int("reported", stats.reported), log.Duration("took", time.Since(start)))
	return nil
}

//compareDir checks the entries of one directory and returns the pairs of its subdirectories.
func (d *Differ) compareDir(ctx context.Context, pair model.DirPair, firstPass bool, stats *passStats) ([]model.DirPair, error) {
	var (
		subdirs []model.DirPair
		fatal   error
		count   int
	)
	err := iout.ReadDirBatches(pair.Self, dirBatchSize, func(entries []fs.DirEntry) error {
		for _, entry := range entries {
			if fatal = ctx.Err(); fatal != nil {
				return fatal
			}
			count++
			child := pair.Join(entry.Name())
			// the type comes from the listing itself, symlinks to directories are not followed
			if entry.IsDir() {
				subdirs = append(subdirs, child)
				continue
			}
			reported, err := d.checkSame(child.Self, child.Other, firstPass, entry.Type().IsRegular())
			if reported {
				stats.reported++
			}
			if err != nil {
				fatal = err
				return fatal
			}
		}
		return nil
	})
	if fatal != nil {
		return nil, fatal
	}
	if err != nil {
		return nil, &OpError{Op: opRead, Path: pair.Self, Err: iout.Cause(err)}
	}

	stats.dirs++
	stats.entries += count
	d.log.Debug("directory compared", log.String("dir", pair.Self), log.Int("entries", count), log.Int("subdirs", len(subdirs)))
	return subdirs, nil
}
