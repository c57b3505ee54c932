// Command fusec is a minimal debugging front end for the fusec parser
// and resolver. It is not the project's driver: it does not format
// diagnostics for end users and has no notion of multi-file projects.
// It exists so the library can be exercised from a terminal without
// writing a throwaway test.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/fuse-lang/fusec/ast"
	"github.com/fuse-lang/fusec/parser"
	"github.com/fuse-lang/fusec/reporter"
	"github.com/fuse-lang/fusec/resolver"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("bug: fusec crashed", "panic", r)
			os.Exit(2)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fusec",
		Short: "Debugging front end for the fusec parser and resolver",
	}
	root.AddCommand(newParseCommand())
	return root
}

func newParseCommand() *cobra.Command {
	var diffAgainst string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse and resolve a single source file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], diffAgainst)
		},
	}
	cmd.Flags().StringVar(&diffAgainst, "diff", "", "parse a second file and print a structural diff against it")
	return cmd
}

func runParse(cmd *cobra.Command, path string, diffAgainst string) error {
	chunk, errs, unresolved, err := parseAndResolve(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "parsed %d statements, %d errors, %d unresolved references\n",
		len(chunk.Body.Statements), len(errs), unresolved)
	for _, e := range errs {
		printError(cmd, path, e)
	}

	if diffAgainst == "" {
		return nil
	}

	otherChunk, otherErrs, _, err := parseAndResolve(diffAgainst)
	if err != nil {
		return err
	}
	for _, e := range otherErrs {
		printError(cmd, diffAgainst, e)
	}

	diff := cmp.Diff(declarationNames(chunk), declarationNames(otherChunk))
	if diff == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "top-level declarations are identical")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "top-level declaration diff (-%s +%s):\n%s", path, diffAgainst, diff)
	}
	return nil
}

func parseAndResolve(path string) (*ast.Chunk, []error, int, error) {
	var source []byte
	var err error
	if path == "-" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	result := parser.Parse(string(source))
	if result.Panicked {
		return nil, result.Errors, 0, fmt.Errorf("%s: parse panicked", path)
	}

	resolverErrs := resolver.Resolve(result.Chunk)
	allErrs := append(append([]error{}, result.Errors...), resolverErrs...)
	return result.Chunk, allErrs, countUnresolved(result.Chunk), nil
}

func countUnresolved(chunk *ast.Chunk) int {
	counter := &unresolvedCounter{}
	ast.Walk(counter, chunk.Body)
	return counter.count
}

// unresolvedCounter is a throwaway ast.Visitor used only for the CLI's
// summary line; it has no bearing on the resolver itself.
type unresolvedCounter struct {
	count int
}

func (u *unresolvedCounter) Visit(node ast.Node) ast.Visitor {
	if ident, ok := node.(*ast.Identifier); ok {
		if _, ok := ident.Reference.Get(); !ok {
			u.count++
		}
	}
	return u
}

func declarationNames(chunk *ast.Chunk) []string {
	var names []string
	for _, stmt := range chunk.Body.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDeclaration:
			if s.Function.Name != nil {
				names = append(names, s.Function.Name.Name.String())
			}
		case *ast.StructDeclaration:
			names = append(names, s.Name.Name.String())
		case *ast.EnumDeclaration:
			names = append(names, s.Name.Name.String())
		case *ast.TraitDeclaration:
			names = append(names, s.Name.Name.String())
		case *ast.ImplStatement:
			names = append(names, "impl:"+s.Target.Name.String())
		}
	}
	return names
}

func printError(cmd *cobra.Command, path string, err error) {
	if spanErr, ok := err.(reporter.ErrorWithSpan); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s\n", path, spanErr.ErrorSpan().Start, spanErr.Error())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, err.Error())
}
