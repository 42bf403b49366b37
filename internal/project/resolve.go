package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultMaxDepth is how many directory levels below the root are searched
// for child lists.
const DefaultMaxDepth = 5

// Resolver builds a project tree from a start directory.
type Resolver struct {
	// FileName is the project file looked for in each directory.
	FileName string
	// MaxDepth bounds the downward search for child lists.
	MaxDepth int
	Logger   *log.Logger
}

// NewResolver returns a resolver with the default file name and depth and
// a logger that discards output.
func NewResolver() *Resolver {
	return &Resolver{
		FileName: FileName,
		MaxDepth: DefaultMaxDepth,
		Logger:   log.New(io.Discard),
	}
}

// LoadRoot resolves start with the default resolver.
func LoadRoot(start string) (*Node, error) {
	return NewResolver().LoadRoot(start)
}

// LoadRoot walks upward from start to the nearest list that is not marked
// as a child, then attaches every child list found below it.
func (r *Resolver) LoadRoot(start string) (*Node, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve %s: %w", start, err)
	}

	root, err := r.findRoot(abs)
	if err != nil {
		return nil, err
	}
	r.logger().Debug("resolved root", "path", root.Path, "steps", root.Steps)

	r.descend(root, root.Dir(), 1)
	return root, nil
}

func (r *Resolver) findRoot(start string) (*Node, error) {
	var skipped []SkippedFile

	dir := start
	for steps := 0; ; steps-- {
		if path, ok := hasFile(dir, r.fileName()); ok {
			node, err := LoadFile(path, steps)
			switch {
			case err != nil:
				r.logger().Warn("skipping unreadable project file", "path", path, "err", err)
				skipped = append(skipped, SkippedFile{Path: path, Err: err})
			case node.Data.IsChild:
				r.logger().Debug("skipping child list while ascending", "path", path)
			default:
				return node, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, &NotFoundError{Start: start, Skipped: skipped}
}

// descend searches the subdirectories of dir for child lists and attaches
// them to parent. depth is the depth of those subdirectories below the
// root directory.
func (r *Resolver) descend(parent *Node, dir string, depth int) {
	if depth > r.maxDepth() {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger().Warn("unable to read directory", "dir", dir, "err", err)
		return
	}

	for _, entry := range entries {
		// Symlinks report a non-directory type here and are not followed.
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		sub := filepath.Join(dir, entry.Name())

		path, ok := hasFile(sub, r.fileName())
		if !ok {
			r.descend(parent, sub, depth+1)
			continue
		}

		node, err := LoadFile(path, parent.Steps+1)
		if err != nil {
			r.logger().Warn("ignoring unreadable child list", "path", path, "err", err)
			continue
		}
		if !node.Data.IsChild {
			r.logger().Debug("ignoring independent project", "path", path)
			continue
		}

		r.descend(node, sub, depth+1)
		parent.Attach(node)
		r.logger().Debug("attached child list", "path", path, "parent", parent.Path, "steps", node.Steps)
	}
}

func (r *Resolver) fileName() string {
	if r.FileName == "" {
		return FileName
	}
	return r.FileName
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return r.MaxDepth
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}
	return r.Logger
}
