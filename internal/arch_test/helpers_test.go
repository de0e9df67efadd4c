// Package arch_test holds structural checks over the launchplot source tree:
// package layering, third-party library ownership, documentation and size.
package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const (
	modulePath  = "github.com/papapumpkin/launchplot"
	internalPfx = modulePath + "/internal/"
)

// sourcePackage is one parsed package under internal/, test files excluded.
type sourcePackage struct {
	Name  string
	Dir   string
	Files []string
	Fset  *token.FileSet
	ASTs  []*ast.File
}

var (
	treeOnce sync.Once
	treeRoot string
	treePkgs []sourcePackage
	treeErr  error
)

// loadTree locates the module root and parses every internal package once
// per test binary.
func loadTree(t *testing.T) (string, []sourcePackage) {
	t.Helper()
	treeOnce.Do(func() {
		_, thisFile, _, ok := runtime.Caller(0)
		if !ok {
			treeErr = os.ErrNotExist
			return
		}
		treeRoot, treeErr = findModuleRoot(filepath.Dir(thisFile))
		if treeErr != nil {
			return
		}
		treePkgs, treeErr = parseInternal(filepath.Join(treeRoot, "internal"))
	})
	if treeErr != nil {
		t.Fatalf("loading source tree: %v", treeErr)
	}
	return treeRoot, treePkgs
}

func findModuleRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func parseInternal(dir string) ([]sourcePackage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var pkgs []sourcePackage
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "arch_test" {
			continue
		}
		p := sourcePackage{Name: e.Name(), Dir: filepath.Join(dir, e.Name()), Fset: token.NewFileSet()}
		files, err := filepath.Glob(filepath.Join(p.Dir, "*.go"))
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
		for _, f := range files {
			if strings.HasSuffix(f, "_test.go") {
				continue
			}
			file, err := parser.ParseFile(p.Fset, f, nil, parser.ParseComments)
			if err != nil {
				return nil, err
			}
			p.Files = append(p.Files, f)
			p.ASTs = append(p.ASTs, file)
		}
		if len(p.Files) > 0 {
			pkgs = append(pkgs, p)
		}
	}
	return pkgs, nil
}

// imports returns the package's sorted, deduplicated import paths.
func (p sourcePackage) imports() []string {
	seen := make(map[string]bool)
	for _, f := range p.ASTs {
		for _, imp := range f.Imports {
			seen[strings.Trim(imp.Path.Value, `"`)] = true
		}
	}
	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// internalImports returns the names of the internal packages p imports,
// e.g. "launch" for .../internal/launch.
func (p sourcePackage) internalImports() []string {
	var names []string
	for _, path := range p.imports() {
		if rel, ok := strings.CutPrefix(path, internalPfx); ok {
			name, _, _ := strings.Cut(rel, "/")
			names = append(names, name)
		}
	}
	return names
}

// thirdPartyImports returns import paths outside the standard library and
// this module.
func (p sourcePackage) thirdPartyImports() []string {
	var paths []string
	for _, path := range p.imports() {
		first, _, _ := strings.Cut(path, "/")
		if strings.Contains(first, ".") && !strings.HasPrefix(path, modulePath) {
			paths = append(paths, path)
		}
	}
	return paths
}

// hasPackageDoc reports whether any file carries a package comment.
func (p sourcePackage) hasPackageDoc() bool {
	for _, f := range p.ASTs {
		if f.Doc != nil {
			return true
		}
	}
	return false
}

// undocumented lists exported top-level functions, methods and types that
// have no doc comment, as "file:line name".
func (p sourcePackage) undocumented() []string {
	var missing []string
	report := func(pos token.Pos, name string) {
		at := p.Fset.Position(pos)
		missing = append(missing, filepath.Base(at.Filename)+":"+strconv.Itoa(at.Line)+" "+name)
	}
	for _, f := range p.ASTs {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Name.IsExported() && d.Doc == nil {
					report(d.Pos(), d.Name.Name)
				}
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, s := range d.Specs {
					ts := s.(*ast.TypeSpec)
					if ts.Name.IsExported() && d.Doc == nil && ts.Doc == nil {
						report(ts.Pos(), ts.Name.Name)
					}
				}
			}
		}
	}
	return missing
}

// lineCount returns the number of lines in the file at path. A final line
// without a newline still counts.
func lineCount(t *testing.T, path string) int {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if len(data) == 0 {
		return 0
	}
	count := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		count++
	}
	return count
}

func TestLoadTree(t *testing.T) {
	t.Parallel()

	_, pkgs := loadTree(t)
	found := make(map[string]sourcePackage)
	for _, p := range pkgs {
		found[p.Name] = p
		for _, f := range p.Files {
			if strings.HasSuffix(f, "_test.go") {
				t.Errorf("%s: test file %s was parsed", p.Name, f)
			}
		}
	}
	if _, ok := found["arch_test"]; ok {
		t.Error("arch_test should be excluded from the tree")
	}
	for _, name := range []string{"record", "orbit", "launch", "stats", "config", "chart"} {
		if _, ok := found[name]; !ok {
			t.Errorf("package %q missing from the tree", name)
		}
	}
}

func TestImportClassification(t *testing.T) {
	t.Parallel()

	_, pkgs := loadTree(t)
	var launchPkg sourcePackage
	for _, p := range pkgs {
		if p.Name == "launch" {
			launchPkg = p
		}
	}

	internal := strings.Join(launchPkg.internalImports(), ",")
	for _, want := range []string{"orbit", "record"} {
		if !strings.Contains(internal, want) {
			t.Errorf("launch internal imports = %q, want %q", internal, want)
		}
	}
	external := strings.Join(launchPkg.thirdPartyImports(), ",")
	if !strings.Contains(external, "github.com/sourcegraph/conc/pool") {
		t.Errorf("launch third-party imports = %q, want conc/pool", external)
	}
	if strings.Contains(external, "strings") || strings.Contains(external, modulePath) {
		t.Errorf("third-party imports include stdlib or module paths: %q", external)
	}
}
