package main

import (
	"context"
	"fmt"
	"go/token"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cvpartner/optional-field/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("optionalfieldgen").
		WithSynopsis("optionalfieldgen [opts]").
		WithDescription("Rewrite struct tags so optional.Field members omit missing values and default to missing on absent input. Structs are selected with -type or a //optional:fields directive.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg)
		})
}

type Config struct {
	Dir       string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Types     string `cli:"name=type desc='comma-separated struct type names to rewrite'"`
	Write     bool   `cli:"name=w desc='write rewritten files in place instead of printing a diff'"`
	YAML      bool   `cli:"name=yaml desc='also inject omitzero into yaml tags'"`
	TypeCheck bool   `cli:"name=typecheck desc='resolve field types with the type checker (slower, sees aliases)'"`
}

func run(cfg *Config) error {
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	var typeNames []string
	notFound := map[string]bool{}
	if cfg.Types != "" {
		for _, name := range strings.Split(cfg.Types, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				typeNames = append(typeNames, name)
				notFound[name] = true
			}
		}
	}

	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stdout.Fd())

	if cfg.TypeCheck {
		if err := runTypeChecked(cfg, dir, typeNames, notFound); err != nil {
			return err
		}
	} else if err := runSyntactic(cfg, dir, typeNames, notFound); err != nil {
		return err
	}

	return codegen.MissingTypesError(notFound)
}

func runSyntactic(cfg *Config, dir string, typeNames []string, notFound map[string]bool) error {
	pkgs, err := codegen.DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no Go packages found in %q", dir)
	}

	for _, pkg := range pkgs {
		fsets := map[string]*token.FileSet{}
		var all []*codegen.StructInfo
		for _, path := range pkg.Files {
			file, fset, err := codegen.ParseFile(path)
			if err != nil {
				return err
			}
			structs, err := codegen.ExtractStructs(file, path, nil)
			if err != nil {
				return err
			}
			fsets[path] = fset
			all = append(all, structs...)
		}
		if err := processPackage(cfg, all, fsets, typeNames, notFound); err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Dir, err)
		}
	}
	return nil
}

func runTypeChecked(cfg *Config, dir string, typeNames []string, notFound map[string]bool) error {
	pkgs, err := codegen.LoadPackages(dir, cfg.Recursive)
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		fsets := map[string]*token.FileSet{}
		var all []*codegen.StructInfo
		for _, file := range pkg.Syntax {
			path := pkg.Fset.Position(file.Pos()).Filename
			if !strings.HasSuffix(path, ".go") {
				continue
			}
			structs, err := codegen.ExtractStructs(file, path, pkg.TypesInfo)
			if err != nil {
				return err
			}
			fsets[path] = pkg.Fset
			all = append(all, structs...)
		}
		if err := processPackage(cfg, all, fsets, typeNames, notFound); err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.PkgPath, err)
		}
	}
	return nil
}

func processPackage(cfg *Config, all []*codegen.StructInfo, fsets map[string]*token.FileSet, typeNames []string, notFound map[string]bool) error {
	targets, err := codegen.SelectTargets(all, typeNames, notFound)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}

	perFile := map[string][]*codegen.StructInfo{}
	for _, si := range targets {
		perFile[si.FilePath] = append(perFile[si.FilePath], si)
	}

	for path, structs := range perFile {
		src, err := codegen.ReadSource(path)
		if err != nil {
			return err
		}
		out, changed, err := codegen.RewriteSource(fsets[path], src, structs, cfg.YAML)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !changed {
			continue
		}
		if cfg.Write {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %q: %w", path, err)
			}
			fmt.Printf("rewrote %s\n", path)
			continue
		}
		printDiff(path, src, out)
	}
	return nil
}

func printDiff(path string, src, out []byte) {
	fmt.Printf("--- %s\n", path)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(src), string(out), false)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Print(color.GreenString("%s", d.Text))
		case diffmatchpatch.DiffDelete:
			fmt.Print(color.RedString("%s", d.Text))
		default:
			fmt.Print(d.Text)
		}
	}
	fmt.Println()
}
