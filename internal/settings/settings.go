package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirdiff/internal/log"
	"dirdiff/pkg/helpers/iout"

	"github.com/spf13/pflag"
)

type ColorMode string

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

var (
	//ErrUsage means the command line does not name exactly two directories.
	ErrUsage = errors.New("exactly two directories must be given")
	//ErrSameDirectories means both arguments resolve to the same location.
	ErrSameDirectories = errors.New("Same directories")
	ErrNotDirectory    = errors.New("Not a directory") 
)

//PathError is a failure to inspect one of the directories given on the command line.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *PathError) Unwrap() error { return e.Err }

type Settings struct {
	// DirA and DirB are the arguments as given, only trailing separators are stripped.
	// All reported paths are built from them.
	DirA, DirB string
	// CanonA and CanonB are absolute and symlink-free, used for the identity check and logging.
	CanonA, CanonB string
	LogLevel       log.Level
	LogFile        string
	Color          ColorMode

	level string
	color string
}

//Bind registers the optional flags in the flag set. The returned settings are complete only after Complete.
func Bind(flagSet *pflag.FlagSet) *Settings {
	stg := new(Settings)
	flagSet.StringVar(&stg.level, "loglvl", log.WarnLevel,
		fmt.Sprintf("level of diagnostic logging, permitted values are: %v, %v, %v, %v",
			log.DebugLevel, log.InfoLevel, log.WarnLevel, log.ErrorLevel),
	)
	flagSet.StringVar(&stg.LogFile, "logfile", "",
		"file for diagnostic logs, if empty - logs are written to stderr")
	flagSet.StringVar(&stg.color, "color", ColorAuto,
		fmt.Sprintf("coloring of the report labels: %v (only for a terminal), %v, %v", ColorAuto, ColorAlways, ColorNever))
	return stg
}

//Complete validates the flags and the positional arguments.
//Errors come in argument order: the first bad directory is the one reported.
func (stg *Settings) Complete(args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if !log.Level(stg.level).IsValid() {
		return fmt.Errorf("logging level %q does not exist", stg.level)
	}
	stg.LogLevel = log.Level(strings.ToLower(stg.level))
	if !ColorMode(stg.color).IsValid() {
		return fmt.Errorf("color mode %q does not exist", stg.color)
	}
	stg.Color = ColorMode(stg.color)

	var err error
	if stg.CanonA, err = canonicalDir(args[0]); err != nil {
		return err
	}
	if stg.CanonB, err = canonicalDir(args[1]); err != nil {
		return err
	}
	if stg.CanonA == stg.CanonB {
		return ErrSameDirectories
	}
	stg.DirA, stg.DirB = TrimTrailingSeparators(args[0]), TrimTrailingSeparators(args[1])
	return nil
}

//Colored tells whether the report labels should be colored for the given kind of stdout.
func (stg *Settings) Colored(stdoutIsTerminal bool) bool {
	switch stg.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutIsTerminal
	}
}

//canonicalDir checks that the path is an existing directory (symlinks are followed)
//and returns its absolute, symlink-free form.
func canonicalDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &PathError{Path: path, Err: iout.Cause(err)}
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Path: path, Err: iout.Cause(err)}
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &PathError{Path: path, Err: iout.Cause(err)}
	}
	return canon, nil
}

//TrimTrailingSeparators removes trailing path separators, but never reduces the filesystem root to an empty path.
func TrimTrailingSeparators(path string) string {
	trimmed := strings.TrimRight(path, "/"+string(filepath.Separator))
	if trimmed == "" && path != "" {
		return path[:1]
	}
	return trimmed
}
