// Copyright 2019 The gg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// extractdocs analyzes the getopt command's source to find its option
// documentation and writes a Markdown reference page.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/loader"
)

const (
	cmdImportPath    = "gg-scm.io/pkg/getopt/cmd/getopt"
	getoptImportPath = "gg-scm.io/pkg/getopt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: extractdocs OUTDIR")
		os.Exit(64)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "extractdocs:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	doc, err := findDoc()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "extractdocs: Found %d options.\n", len(doc.options))
	return writePage(filepath.Join(outDir, "getopt.md"), doc, time.Now())
}

// commandDoc holds the documentation extracted from the command's
// source: its synopsis and description constants and every option it
// registers.
type commandDoc struct {
	synopsis    string
	description string
	options     []optionDoc
}

type optionDoc struct {
	key   string
	short string
	usage string
}

func findDoc() (*commandDoc, error) {
	conf := &loader.Config{
		TypeCheckFuncBodies: func(path string) bool {
			return path == cmdImportPath
		},
	}
	conf.Import(cmdImportPath)
	prog, err := conf.Load()
	if err != nil {
		return nil, err
	}
	pkgInfo := prog.InitialPackages()[0]
	doc := &commandDoc{
		synopsis:    stringConstant(pkgInfo.Pkg, "synopsis"),
		description: stringConstant(pkgInfo.Pkg, "description"),
	}
	for _, f := range pkgInfo.Files {
		astutil.Apply(f, nil, func(cur *astutil.Cursor) bool {
			call, ok := cur.Node().(*ast.CallExpr)
			if !ok {
				return true
			}
			if !isSpecAdd(&pkgInfo.Info, call) || len(call.Args) != 3 {
				return true
			}
			key, ok1 := stringArg(&pkgInfo.Info, call.Args[0])
			short, ok2 := stringArg(&pkgInfo.Info, call.Args[1])
			usage, ok3 := stringArg(&pkgInfo.Info, call.Args[2])
			if ok1 && ok2 && ok3 {
				doc.options = append(doc.options, optionDoc{key: key, short: short, usage: usage})
			}
			return true
		})
	}
	if len(doc.options) == 0 {
		return nil, errors.New("no option registrations found in " + cmdImportPath)
	}
	return doc, nil
}

// isSpecAdd reports whether call is Add or MustAdd on a
// *getopt.Spec receiver.
func isSpecAdd(info *types.Info, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	if sel.Sel.Name != "Add" && sel.Sel.Name != "MustAdd" {
		return false
	}
	ptr, ok := info.TypeOf(sel.X).(*types.Pointer)
	if !ok {
		return false
	}
	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Spec" && obj.Pkg() != nil && obj.Pkg().Path() == getoptImportPath
}

// stringArg evaluates an argument expression to a string constant.
func stringArg(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

// stringConstant returns the value of a package-level string constant
// or "" if it does not exist.
func stringConstant(pkg *types.Package, name string) string {
	c, ok := pkg.Scope().Lookup(name).(*types.Const)
	if !ok || c.Val().Kind() != constant.String {
		return ""
	}
	return constant.StringVal(c.Val())
}

func writePage(path string, doc *commandDoc, now time.Time) error {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "---\ntitle: getopt\ndate: %s\n---\n\n", now.Format("2006-01-02"))
	if doc.synopsis != "" {
		fmt.Fprintf(buf, "```\n%s\n```\n\n", doc.synopsis)
	}
	if doc.description != "" {
		fmt.Fprintf(buf, "%s\n\n", doc.description)
	}
	buf.WriteString("## Options\n\n")
	buf.WriteString("| Option | Short | Description |\n")
	buf.WriteString("| --- | --- | --- |\n")
	for _, o := range doc.options {
		short := ""
		if o.short != "" {
			short = "`-" + o.short + "`"
		}
		fmt.Fprintf(buf, "| `%s` | %s | %s |\n", mdEscape(o.key), short, mdEscape(o.usage))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("write page for getopt: %v", err)
	}
	return nil
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
