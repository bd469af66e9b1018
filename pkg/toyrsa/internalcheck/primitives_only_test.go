package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// corePackages are the packages that must implement their number theory
// from primitive arithmetic. Test files are not loaded, so reference
// cross-checks against big.Int.Exp remain legal in _test.go files.
var corePackages = []string{
	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa",
	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa/numtheory",
}

// forbiddenCalls maps package paths to the ready-made number-theory
// routines whose use would hollow out the library's purpose.
var forbiddenCalls = map[string][]string{
	"math/big":    {"Exp", "ModInverse", "ModSqrt", "ProbablyPrime", "GCD"},
	"crypto/rand": {"Prime"},
}

// TestCoreUsesOnlyPrimitiveArithmetic fails if the core packages call
// library implementations of modular exponentiation, modular inversion,
// gcd, or primality testing instead of their own.
func TestCoreUsesOnlyPrimitiveArithmetic(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedTypesSizes | packages.NeedDeps | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, corePackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				if !isForbidden(obj.Pkg().Path(), obj.Name()) {
					return true
				}

				pos := fset.Position(call.Pos())
				findings = append(findings, fmt.Sprintf(
					"%s: %s.%s must not be called in core packages",
					pos, obj.Pkg().Path(), obj.Name()))
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("primitive-arithmetic policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isForbidden(pkgPath, name string) bool {
	for _, banned := range forbiddenCalls[pkgPath] {
		if name == banned {
			return true
		}
	}
	return false
}
