// Package day07 rebuilds a filesystem from a terminal transcript and
// measures its directories.
//
// The transcript holds commands prefixed with "$ " ("cd /", "cd ..",
// "cd <name>", "ls") and, after each ls, one line per entry: "dir <name>"
// or "<size> <name>".
package day07

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/adventsolve/aoc"
)

var (
	ErrMalformedCommand = errors.New("malformed command")
	ErrMalformedEntry   = errors.New("malformed listing entry")
	ErrUnknownDirectory = errors.New("unknown directory")
	ErrDiskOverflow     = errors.New("listing exceeds disk size")
)

const (
	SmallDirLimit = 100000
	DiskSize      = 70000000
	FreeNeeded    = 30000000
)

// Dir is a directory in the rebuilt tree.
type Dir struct {
	Name  string
	Dirs  map[string]*Dir
	Files map[string]int

	size int // -1 until computed
}

func newDir(name string) *Dir {
	return &Dir{Name: name, Dirs: map[string]*Dir{}, Files: map[string]int{}, size: -1}
}

func (d *Dir) child(name string) *Dir {
	c, ok := d.Dirs[name]
	if !ok {
		c = newDir(name)
		d.Dirs[name] = c
	}
	return c
}

// Size returns the total size of the files below d.
func (d *Dir) Size() int {
	if d.size >= 0 {
		return d.size
	}
	total := aoc.Sum(maps.Values(d.Files)...)
	for _, c := range d.Dirs {
		total += c.Size()
	}
	d.size = total
	return total
}

// Walk calls fn for d and every directory below it, parents first and
// siblings in name order.
func (d *Dir) Walk(fn func(*Dir)) {
	fn(d)
	names := maps.Keys(d.Dirs)
	slices.Sort(names)
	for _, name := range names {
		d.Dirs[name].Walk(fn)
	}
}

// Parse replays the transcript and returns the root directory.
// Changing into a directory that no listing mentioned creates it.
func Parse(input string) (*Dir, error) {
	root := newDir("/")
	var path aoc.Stack[*Dir] // directories entered below root
	cwd := func() *Dir {
		if d, ok := path.Peek(); ok {
			return d
		}
		return root
	}
	listing := false

	for i, line := range aoc.Lines(input) {
		if line == "" {
			continue
		}
		if cmd, ok := strings.CutPrefix(line, "$ "); ok {
			listing = false
			f := strings.Fields(cmd)
			switch {
			case len(f) == 1 && f[0] == "ls":
				listing = true
			case len(f) == 2 && f[0] == "cd" && f[1] == "/":
				path = aoc.Stack[*Dir]{}
			case len(f) == 2 && f[0] == "cd" && f[1] == "..":
				if _, ok := path.Pop(); !ok {
					return nil, aoc.ParseErr(i+1, line, ErrUnknownDirectory)
				}
			case len(f) == 2 && f[0] == "cd":
				path.Push(cwd().child(f[1]))
			default:
				return nil, aoc.ParseErr(i+1, line, ErrMalformedCommand)
			}
			continue
		}
		if !listing {
			return nil, aoc.ParseErr(i+1, line, ErrMalformedEntry)
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, aoc.ParseErr(i+1, line, ErrMalformedEntry)
		}
		if f[0] == "dir" {
			cwd().child(f[1])
			continue
		}
		size, err := strconv.Atoi(f[0])
		if err != nil || size < 0 {
			return nil, aoc.ParseErr(i+1, line, ErrMalformedEntry)
		}
		cwd().Files[f[1]] = size
	}
	return root, nil
}

// PartOne sums the sizes of all directories of at most SmallDirLimit.
func PartOne(input string) (int, error) {
	root, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int
	root.Walk(func(d *Dir) {
		if d.Size() <= SmallDirLimit {
			sum += d.Size()
		}
	})
	return sum, nil
}

// PartTwo returns the size of the smallest directory whose removal
// leaves FreeNeeded bytes free on a disk of DiskSize. It returns 0 when
// enough space is already free.
func PartTwo(input string) (int, error) {
	root, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if root.Size() > DiskSize {
		return 0, ErrDiskOverflow
	}
	need := FreeNeeded - (DiskSize - root.Size())
	if need <= 0 {
		return 0, nil
	}
	best := root.Size()
	root.Walk(func(d *Dir) {
		if s := d.Size(); s >= need && s < best {
			best = s
		}
	})
	return best, nil
}
