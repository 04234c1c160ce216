// Package customanalyzer provides custom code analysis.
package customanalyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// OsExitInMainAnalyzer reports direct os.Exit calls in the main function of package main.
var OsExitInMainAnalyzer = &analysis.Analyzer{
	Name: "osexitinmain",
	Doc:  "check for direct os.Exit calls in main function of main package",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
				continue
			}
			ast.Inspect(fn.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok || sel.Sel.Name != "Exit" {
					return true
				}
				if ident, ok := sel.X.(*ast.Ident); ok && isOsPackage(pass, ident) {
					pass.Reportf(call.Pos(), "direct os.Exit call in main function")
				}
				return true
			})
		}
	}
	return nil, nil
}

func isOsPackage(pass *analysis.Pass, ident *ast.Ident) bool {
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	return ok && pkgName.Imported().Path() == "os"
}
