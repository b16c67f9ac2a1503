// Package tree renders a directory hierarchy as box-drawing text.
package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"go.uber.org/zap"

	"github.com/temirov/struktur/internal/types"
)

const (
	connectorMiddle   = "├── "
	connectorLast     = "└── "
	prefixContinued   = "│   "
	prefixBlank       = "    "
	lineTerminator    = "\n"
	accessDeniedLabel = "[Access denied]"

	// errorLabelFormat marks a subdirectory that could not be enumerated.
	errorLabelFormat = "[Error: %s]"
	// rootErrorLineFormat replaces the whole listing when the root cannot be enumerated.
	rootErrorLineFormat = "[Error reading root: %s]"

	warningSkipSubdirMessage = "skipping subdirectory"
	warningRootMessage       = "unable to read root directory"
	logFieldPath             = "path"
)

// directoryReader lists the raw entries of a directory.
type directoryReader func(osDirname string, scratchBuffer []byte) (godirwalk.Dirents, error)

// TreeBuilder renders directory listings.
type TreeBuilder struct {
	IgnoreSet IgnoreSet
	Logger    *zap.Logger

	readDirents   directoryReader
	scratchBuffer []byte
}

// NewTreeBuilder returns a TreeBuilder that leaves files named in ignoreSet out of the listing.
// A nil logger disables diagnostics.
func NewTreeBuilder(ignoreSet IgnoreSet, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{
		IgnoreSet:     ignoreSet,
		Logger:        logger,
		readDirents:   godirwalk.ReadDirents,
		scratchBuffer: make([]byte, godirwalk.MinimumScratchBufferSize),
	}
}

// BuildTree returns the listing for rootDirectoryPath. The first line is the
// root folder name followed by the path separator. Enumeration failures are
// rendered as placeholder lines, never returned.
func (treeBuilder *TreeBuilder) BuildTree(rootDirectoryPath string) string {
	cleanRootPath := filepath.Clean(rootDirectoryPath)

	var outputBuffer strings.Builder
	appendLine(&outputBuffer, rootHeader(cleanRootPath))

	rootEntries, rootReadError := treeBuilder.listEntries(cleanRootPath)
	if rootReadError != nil {
		treeBuilder.Logger.Warn(warningRootMessage, zap.String(logFieldPath, cleanRootPath), zap.Error(rootReadError))
		appendLine(&outputBuffer, fmt.Sprintf(rootErrorLineFormat, rootReadError.Error()))
		return outputBuffer.String()
	}

	treeBuilder.writeEntries(&outputBuffer, cleanRootPath, rootEntries, "")
	return outputBuffer.String()
}

// writeEntries appends one line per entry and descends into directories.
// Ignored files keep their place among the siblings: they decide which entry is
// last but produce no line, so a visible entry sorted before them keeps "├── ".
func (treeBuilder *TreeBuilder) writeEntries(outputBuffer *strings.Builder, directoryPath string, entries []types.Entry, prefix string) {
	numberOfEntries := len(entries)
	for index, entry := range entries {
		isLastEntry := index == numberOfEntries-1
		connector := connectorMiddle
		childPrefix := prefix + prefixContinued
		if isLastEntry {
			connector = connectorLast
			childPrefix = prefix + prefixBlank
		}

		if !entry.IsDirectory() {
			if !treeBuilder.IgnoreSet.Contains(entry.Name) {
				appendLine(outputBuffer, prefix+connector+entry.Name)
			}
			continue
		}

		appendLine(outputBuffer, prefix+connector+entry.Name+string(filepath.Separator))
		childDirectoryPath := filepath.Join(directoryPath, entry.Name)
		childEntries, readDirectoryError := treeBuilder.listEntries(childDirectoryPath)
		if readDirectoryError != nil {
			treeBuilder.Logger.Warn(warningSkipSubdirMessage, zap.String(logFieldPath, childDirectoryPath), zap.Error(readDirectoryError))
			appendLine(outputBuffer, childPrefix+connectorLast+failureLabel(readDirectoryError))
			continue
		}
		treeBuilder.writeEntries(outputBuffer, childDirectoryPath, childEntries, childPrefix)
	}
}

// listEntries enumerates and sorts directoryPath. Ignored files are kept and skipped while rendering.
func (treeBuilder *TreeBuilder) listEntries(directoryPath string) ([]types.Entry, error) {
	directoryEntries, readDirectoryError := treeBuilder.readDirents(directoryPath, treeBuilder.scratchBuffer)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}

	entries := make([]types.Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		// Dangling or unreadable links are listed as files.
		isDirectory, _ := directoryEntry.IsDirOrSymlinkToDir()
		if isDirectory {
			entries = append(entries, types.Entry{Name: entryName, Kind: types.NodeTypeDirectory})
			continue
		}
		entries = append(entries, types.Entry{Name: entryName, Kind: types.NodeTypeFile})
	}
	sortEntries(entries)
	return entries, nil
}

// rootHeader returns the root folder name followed by the separator. A
// filesystem root has no name, so its header is the bare separator.
func rootHeader(cleanRootPath string) string {
	separator := string(filepath.Separator)
	rootName := filepath.Base(cleanRootPath)
	if rootName == separator {
		rootName = ""
	}
	return rootName + separator
}

func failureLabel(readDirectoryError error) string {
	if errors.Is(readDirectoryError, fs.ErrPermission) {
		return accessDeniedLabel
	}
	return fmt.Sprintf(errorLabelFormat, readDirectoryError.Error())
}

func appendLine(outputBuffer *strings.Builder, line string) {
	outputBuffer.WriteString(line)
	outputBuffer.WriteString(lineTerminator)
}
