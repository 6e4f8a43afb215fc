// SPDX-FileCopyrightText: 2026 The pakfs Authors
//
// SPDX-License-Identifier: MIT

package pakfs

// fileEntry is the current mapping for one virtual file path. The display
// path keeps the spelling of whichever container registered it last.
type fileEntry struct {
	path   string
	handle handle
}

// overlayIndex accumulates the virtual hierarchy as containers are
// ingested. Keys are case-folded normalized paths, values keep the display
// form. The index only ever grows; removal is not supported.
type overlayIndex struct {
	files   map[string]fileEntry
	folders map[string]string
}

func newOverlayIndex() *overlayIndex {
	return &overlayIndex{
		files:   make(map[string]fileEntry),
		folders: make(map[string]string),
	}
}

// setFile registers the handle for a normalized virtual file path,
// unconditionally replacing any existing mapping. This is the override
// rule: later containers win by whole-file replacement, with no merge and
// no tie-break beyond call order.
//
// Every ancestor folder of the path is registered as well, so folder
// membership is always derivable from the file set alone.
func (idx *overlayIndex) setFile(path string, h handle) {
	idx.files[foldPath(path)] = fileEntry{path: path, handle: h}

	for dir := parentPath(path); dir != ""; dir = parentPath(dir) {
		idx.addFolder(dir)
	}
}

// addFolder registers a normalized virtual folder path. Registering a
// folder that is already known is a no-op and keeps the existing display
// form.
func (idx *overlayIndex) addFolder(path string) {
	key := foldPath(path) + "/"
	if _, exists := idx.folders[key]; !exists {
		idx.folders[key] = path + "/"
	}
}
