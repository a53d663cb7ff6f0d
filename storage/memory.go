package storage

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Op records one call made against a Memory store.
type Op struct {
	Kind string // "mkdir", "create" or "append"
	Path string
}

// Memory is an in-memory Storage. It keeps every call in Ops so tests can
// check the order in which files were written. The zero value is ready to use.
type Memory struct {
	Dirs  map[string]bool
	Files map[string]*strings.Builder
	Ops   []Op
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		Dirs:  make(map[string]bool),
		Files: make(map[string]*strings.Builder),
	}
}

// CreateDir implements Storage.
func (m *Memory) CreateDir(p string) error {
	m.init()
	m.Ops = append(m.Ops, Op{Kind: "mkdir", Path: p})
	for p = path.Clean(p); p != "." && p != "/"; p = path.Dir(p) {
		m.Dirs[p] = true
	}
	return nil
}

// CreateFile implements Storage.
func (m *Memory) CreateFile(p, content string) error {
	m.init()
	m.Ops = append(m.Ops, Op{Kind: "create", Path: p})
	if err := m.checkParent(p); err != nil {
		return err
	}
	b := &strings.Builder{}
	b.WriteString(content)
	m.Files[p] = b
	return nil
}

// AppendFile implements Storage.
func (m *Memory) AppendFile(p, content string) error {
	m.init()
	m.Ops = append(m.Ops, Op{Kind: "append", Path: p})
	if err := m.checkParent(p); err != nil {
		return err
	}
	b, ok := m.Files[p]
	if !ok {
		b = &strings.Builder{}
		m.Files[p] = b
	}
	b.WriteString(content)
	return nil
}

// File returns the content of p and whether it exists.
func (m *Memory) File(p string) (string, bool) {
	b, ok := m.Files[p]
	if !ok {
		return "", false
	}
	return b.String(), true
}

// Paths returns every file path, sorted.
func (m *Memory) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for p := range m.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *Memory) init() {
	if m.Dirs == nil {
		m.Dirs = make(map[string]bool)
	}
	if m.Files == nil {
		m.Files = make(map[string]*strings.Builder)
	}
}

func (m *Memory) checkParent(p string) error {
	dir := path.Dir(path.Clean(p))
	if dir == "." || dir == "/" || m.Dirs[dir] {
		return nil
	}
	return fmt.Errorf("open %s: parent directory does not exist", p)
}
