// Package main is a command-line tool for building, rendering and evaluating expression trees.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/mathtree"
	"github.com/alecthomas/mathtree/internal/exprgen"
	"github.com/alecthomas/mathtree/lexer"
)

var version string = "dev"

// Globals are flags shared by all commands.
type Globals struct {
	Version kong.VersionFlag
	Trace   bool `help:"Trace tree construction to stderr."`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

func (g *Globals) parse(expr []string) (*mathtree.Tree, error) {
	options := []mathtree.Option{}
	if g.Trace {
		options = append(options, mathtree.Trace(g.Stderr))
	}
	p, err := mathtree.Build(options...)
	if err != nil {
		return nil, err
	}
	return p.ParseString("", strings.Join(expr, " "))
}

type CLI struct {
	Globals

	Eval    evalCmd    `cmd:"" help:"Evaluate an expression."`
	Render  renderCmd  `cmd:"" help:"Print an expression with minimal parentheses."`
	AST     astCmd     `cmd:"" name:"ast" help:"Dump the expression tree."`
	Tokens  tokensCmd  `cmd:"" help:"Dump the tokens of an expression after sign folding."`
	Gen     genCmd     `cmd:"" help:"Generate random expressions."`
	Grammar grammarCmd `cmd:"" help:"Print the accepted grammar in EBNF."`
}

type evalCmd struct {
	Expr []string `arg:"" required:"" help:"Expression to evaluate."`
}

func (c *evalCmd) Run(g *Globals) error {
	tree, err := g.parse(c.Expr)
	if err != nil {
		return err
	}
	value, err := tree.Evaluate()
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Stdout, strconv.FormatFloat(value, 'g', -1, 64))
	return nil
}

type renderCmd struct {
	Expr  []string `arg:"" required:"" help:"Expression to render."`
	Value bool     `short:"v" help:"Also print the value of the expression."`
}

func (c *renderCmd) Run(g *Globals) error {
	tree, err := g.parse(c.Expr)
	if err != nil {
		return err
	}
	if !c.Value {
		fmt.Fprintln(g.Stdout, tree)
		return nil
	}
	value, err := tree.Evaluate()
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Stdout, tree, "=", strconv.FormatFloat(value, 'g', -1, 64))
	return nil
}

type astCmd struct {
	Expr []string `arg:"" required:"" help:"Expression to dump."`
}

func (c *astCmd) Run(g *Globals) error {
	tree, err := g.parse(c.Expr)
	if err != nil {
		return err
	}
	mathtree.Annotate(tree.Root)
	fmt.Fprintln(g.Stdout, repr.String(tree.Root, repr.Indent("  ")))
	return nil
}

type tokensCmd struct {
	Raw  bool     `help:"Dump raw lexer symbols, before sign folding."`
	Expr []string `arg:"" required:"" help:"Expression to tokenize."`
}

func (c *tokensCmd) Run(g *Globals) error {
	if c.Raw {
		return c.raw(g)
	}
	tokens, err := mathtree.Tokenize("", strings.Join(c.Expr, " "))
	if err != nil {
		return err
	}
	for _, token := range tokens {
		fmt.Fprintf(g.Stdout, "%s:%s %q\n", token.Pos, token.Type, token.Value)
	}
	return nil
}

func (c *tokensCmd) raw(g *Globals) error {
	lex, err := mathtree.DefaultLexer.Lex("", strings.NewReader(strings.Join(c.Expr, " ")))
	if err != nil {
		return err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return err
	}
	names := lexer.SymbolsByRune(mathtree.DefaultLexer)
	for _, token := range tokens {
		fmt.Fprintf(g.Stdout, "%s:%s %q\n", token.Pos, names[token.Type], token.Value)
	}
	return nil
}

type genCmd struct {
	Depth   int     `short:"d" default:"3" help:"Maximum nesting depth."`
	Count   int     `short:"n" default:"1" help:"Number of expressions to generate."`
	Seed    int64   `help:"Random seed (defaults to the current time)."`
	NoReals bool    `help:"Only generate integer constants."`
	Signs   bool    `help:"Generate unary signs."`
	Stddev  float64 `help:"Standard deviation of generated constants." default:"10"`
	Eval    bool    `short:"e" help:"Also print each expression's value."`
}

func (c *genCmd) Run(g *Globals) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := &exprgen.Generator{
		NoReals: c.NoReals,
		Signs:   c.Signs,
		Stddev:  c.Stddev,
		Rand:    rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < c.Count; i++ {
		expr := gen.Generate(c.Depth)
		if !c.Eval {
			fmt.Fprintln(g.Stdout, expr)
			continue
		}
		tree, err := mathtree.Parse(expr)
		if err != nil {
			return err
		}
		value, err := tree.Evaluate()
		if err != nil {
			fmt.Fprintf(g.Stdout, "%s = %s\n", expr, err)
			continue
		}
		fmt.Fprintf(g.Stdout, "%s = %s\n", expr, strconv.FormatFloat(value, 'g', -1, 64))
	}
	return nil
}

type grammarCmd struct{}

func (c *grammarCmd) Run(g *Globals) error {
	if _, err := mathtree.Grammar(); err != nil {
		return err
	}
	fmt.Fprint(g.Stdout, mathtree.GrammarText)
	return nil
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) error {
	cli := &CLI{Globals: Globals{Stdout: stdout, Stderr: stderr}}
	parser, err := kong.New(cli,
		kong.Name("mathtree"),
		kong.Description(`Build, render and evaluate arithmetic expression trees.`),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Exit); err != nil {
		fmt.Fprintf(os.Stderr, "mathtree: error: %s\n", err)
		os.Exit(1)
	}
}
