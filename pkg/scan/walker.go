// Package scan walks a directory tree and builds the relationship graph:
// one node per filesystem entry, a contains edge per parent/child pair,
// and reference nodes for identifiers extracted from known file formats.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/src-d/enry/v2"

	"github.com/agnosticengineer/visualize-files-graph/pkg/extract"
	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// RootID is the node ID of the scanned root directory.
const RootID = "."

const ignoreFileName = ".gitignore"

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("input path is not a directory")

// Options control traversal behavior.
type Options struct {
	// IncludeHidden scans dot-prefixed files and directories.
	IncludeHidden bool
	// Extract runs reference extraction on matching files.
	Extract bool
	// MaxFileSize caps the size of files read for extraction; larger
	// files keep their node but are not parsed. Zero means no cap.
	MaxFileSize int64
	// Extractors override the default extractor set. Nil uses Default.
	Extractors []extract.Extractor
	// Logger receives progress and skip warnings. Nil uses slog.Default.
	Logger *slog.Logger
}

// Walker builds a graph from a directory tree.
type Walker struct {
	opts       Options
	extractors []extract.Extractor
	logger     *slog.Logger
}

// NewWalker creates a walker with the given options.
func NewWalker(opts Options) *Walker {
	extractors := opts.Extractors
	if extractors == nil {
		extractors = extract.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Walker{opts: opts, extractors: extractors, logger: logger}
}

// Walk scans root and returns the resulting graph. A missing or unreadable
// root is fatal; unreadable subpaths are logged and skipped.
func (w *Walker) Walk(ctx context.Context, root string) (*graph.Graph, error) {
	info, statErr := os.Stat(root)
	if statErr != nil {
		return nil, fmt.Errorf("stat input directory: %w", statErr)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	matcher := w.loadIgnoreRules(root)

	g := graph.New()
	g.AddNode(graph.Node{ID: RootID, Label: filepath.Base(root), Kind: graph.KindDirectory})

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		ctxErr := ctx.Err()
		if ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)

		if err != nil {
			if rel == RootID {
				return fmt.Errorf("read input directory: %w", err)
			}

			w.logger.Warn("skipping unreadable path", "path", rel, "error", err)

			return nil
		}

		if rel == RootID {
			return nil
		}

		if skip := w.shouldSkip(rel, entry, matcher); skip {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		w.addEntry(g, path, rel, entry)

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return g, nil
}

func (w *Walker) loadIgnoreRules(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ignoreFileName)

	_, statErr := os.Stat(path)
	if statErr != nil {
		return nil
	}

	matcher, compileErr := ignore.CompileIgnoreFile(path)
	if compileErr != nil {
		w.logger.Warn("ignoring unparsable ignore file", "path", path, "error", compileErr)

		return nil
	}

	return matcher
}

func (w *Walker) shouldSkip(rel string, entry fs.DirEntry, matcher *ignore.GitIgnore) bool {
	if !w.opts.IncludeHidden && strings.HasPrefix(entry.Name(), ".") {
		return true
	}

	if matcher == nil {
		return false
	}

	if entry.IsDir() && matcher.MatchesPath(rel+"/") {
		return true
	}

	return matcher.MatchesPath(rel)
}

func (w *Walker) addEntry(g *graph.Graph, path, rel string, entry fs.DirEntry) {
	w.logger.Debug("found entry", "path", rel, "dir", entry.IsDir())

	parent := filepath.ToSlash(filepath.Dir(rel))

	if entry.IsDir() {
		g.AddNode(graph.Node{ID: rel, Label: entry.Name(), Kind: graph.KindDirectory})
		g.AddEdge(graph.Edge{Source: parent, Target: rel, Kind: graph.EdgeContains})

		return
	}

	node := graph.Node{ID: rel, Label: entry.Name(), Kind: graph.KindFile}

	info, infoErr := entry.Info()
	if infoErr == nil {
		node.Size = info.Size()
	}

	extractor := extract.ForName(w.extractors, entry.Name())
	if extractor != nil {
		node.Kind = extractor.FileKind()
	}

	data := w.readForExtraction(path, rel, node.Size)
	node.Language = enry.GetLanguage(entry.Name(), data)

	g.AddNode(node)
	g.AddEdge(graph.Edge{Source: parent, Target: rel, Kind: graph.EdgeContains})

	if w.opts.Extract && extractor != nil && data != nil {
		w.extractReferences(g, extractor, rel, data)
	}
}

// readForExtraction returns file content for language detection and
// extraction, or nil when the file is skipped (too large, unreadable).
func (w *Walker) readForExtraction(path, rel string, size int64) []byte {
	if w.opts.MaxFileSize > 0 && size > w.opts.MaxFileSize {
		w.logger.Debug("skipping large file", "path", rel, "size", size)

		return nil
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		w.logger.Warn("skipping unreadable file", "path", rel, "error", readErr)

		return nil
	}

	return data
}

func (w *Walker) extractReferences(g *graph.Graph, extractor extract.Extractor, rel string, data []byte) {
	if enry.IsBinary(data) {
		return
	}

	refs, extractErr := extractor.Extract(data)
	if extractErr != nil {
		w.logger.Warn("extraction failed", "format", extractor.Name(), "path", rel, "error", extractErr)

		return
	}

	w.logger.Debug("extracted references", "format", extractor.Name(), "path", rel, "count", len(refs))

	for _, ref := range refs {
		// Reference nodes are keyed by the bare identifier so files that
		// mention the same key or variable share a node.
		if !g.HasNode(ref.Key) {
			g.AddNode(graph.Node{ID: ref.Key, Label: ref.Key, Kind: extractor.RefKind()})
		}

		g.AddEdge(graph.Edge{
			Source: rel,
			Target: ref.Key,
			Kind:   graph.EdgeReferences,
			Detail: referenceDetail(ref),
		})
	}
}

func referenceDetail(ref extract.Reference) string {
	switch {
	case ref.Group != "" && ref.Value != "":
		return fmt.Sprintf("%s: %s = %s", ref.Group, ref.Key, ref.Value)
	case ref.Group != "":
		return fmt.Sprintf("%s: %s", ref.Group, ref.Key)
	case ref.Value != "":
		return fmt.Sprintf("%s = %s", ref.Key, ref.Value)
	default:
		return ref.Key
	}
}
