package codegen

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// LoadPackages loads packages under dir with full syntax and type
// information. Type-checked loading resolves optional.Field through
// aliases and renamed imports that purely syntactic scanning cannot see.
func LoadPackages(dir string, recursive bool) ([]*packages.Package, error) {
	pattern := "."
	if recursive {
		pattern = "./..."
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages in %q: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages found in %q", dir)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, fmt.Errorf("failed to load package %q: %v", pkg.PkgPath, e)
		}
	}
	return pkgs, nil
}
