// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jsurf/diag"
	"github.com/creachadair/jsurf/surf"
	"github.com/creachadair/jsurf/tree"
	"github.com/creachadair/jsurf/tree/cursor"
	"github.com/iancoleman/strcase"
)

type validateCmd struct {
	Strict bool   `help:"Report only the first error, as a strict parser sees it."`
	JSON   bool   `name:"json" help:"Write diagnostics as a JSON array."`
	File   string `arg:"" help:"Input file, or - for stdin."`
}

// jsonError is the JSON encoding of a diag.Error.
type jsonError struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (v *validateCmd) Run(e *env) error {
	text, err := e.readInput(v.File)
	if err != nil {
		return err
	}
	var res diag.Result
	if v.Strict {
		res = e.svc.ValidateJSON(text)
	} else {
		res = e.svc.ValidateJSONWithAutoFix(text)
	}

	if v.JSON {
		out := make([]jsonError, len(res.Errors))
		for i, d := range res.Errors {
			out[i] = jsonError{
				Line:    d.Line,
				Column:  d.Column,
				Kind:    strcase.ToSnake(d.Kind.String()),
				Message: d.Message,
			}
		}
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if res.Valid {
		fmt.Fprintf(e.stdout, "%s: valid\n", v.File)
	} else {
		for _, d := range res.Errors {
			fmt.Fprintf(e.stdout, "%s:%s\n", v.File, d)
		}
	}
	if !res.Valid {
		return errProblems
	}
	return nil
}

type fixCmd struct {
	Write bool   `help:"Replace the input file with the repaired text." short:"w"`
	File  string `arg:"" help:"Input file, or - for stdin."`
}

func (f *fixCmd) Run(e *env) error {
	text, err := e.readInput(f.File)
	if err != nil {
		return err
	}
	res := e.svc.AnalyzeAndFix(text, true)
	for _, fix := range res.FixesApplied {
		fmt.Fprintf(e.stderr, "fixed: %s\n", fix)
	}
	if err := e.emit(f.File, f.Write, res.Fixed); err != nil {
		return err
	}
	if !res.Converged {
		fmt.Fprintf(e.stderr, "%s: unresolved errors remain\n", f.File)
		return errProblems
	}
	return nil
}

type formatCmd struct {
	Write bool   `help:"Replace the input file with the formatted text." short:"w"`
	File  string `arg:"" help:"Input file, or - for stdin."`
}

func (f *formatCmd) Run(e *env) error {
	text, err := e.readInput(f.File)
	if err != nil {
		return err
	}
	out := e.svc.FormatJSON(text)
	if err := e.emit(f.File, f.Write, out); err != nil {
		return err
	}
	if res := e.svc.ValidateJSON(out); !res.Valid {
		fmt.Fprintf(e.stderr, "%s:%s\n", f.File, res.Errors[0])
		return errProblems
	}
	return nil
}

// emit writes text to the named file if write is set, otherwise to stdout.
func (e *env) emit(name string, write bool, text string) error {
	if !write {
		_, err := fmt.Fprintln(e.stdout, text)
		return err
	}
	if name == "-" {
		return errors.New("cannot write back to stdin")
	}
	return surf.WriteFile(name, text+"\n")
}

type treeCmd struct {
	At    string `help:"Dotted path of the node to print." placeholder:"PATH"`
	Depth int    `help:"Expand containers to this depth (negative for all)." default:"-1"`
	File  string `arg:"" help:"Input file, or - for stdin."`
}

func (c *treeCmd) Run(e *env) error {
	text, err := e.readInput(c.File)
	if err != nil {
		return err
	}
	res := e.svc.ParseToTree(text)
	if !res.Success {
		fmt.Fprintf(e.stdout, "%s:%d:%d: %s\n", c.File, res.Line, res.Column, res.ErrorMessage)
		return errProblems
	}
	node, err := cursor.At(res.Root, c.At)
	if err != nil {
		return fmt.Errorf("path %q: %w", c.At, err)
	}
	tree.ExpandAll(node, c.Depth, true)

	var sb strings.Builder
	printNode(&sb, node, "")
	fmt.Fprint(e.stdout, sb.String())
	return nil
}

// printNode writes an outline of n to sb. Expanded containers are marked "-"
// and list their children; collapsed ones are marked "+".
func printNode(sb *strings.Builder, n *tree.Node, indent string) {
	name := n.Key
	if name == "" {
		name = "$"
	}
	switch n.Kind {
	case tree.KindObject, tree.KindArray:
		lb, rb := "{", "}"
		if n.Kind == tree.KindArray {
			lb, rb = "[", "]"
		}
		mark := "+"
		if n.Expanded {
			mark = "-"
		}
		fmt.Fprintf(sb, "%s%s %s %s%d%s\n", indent, mark, name, lb, len(n.Children), rb)
		if n.Expanded {
			for _, c := range n.Children {
				printNode(sb, c, indent+"  ")
			}
		}
	default:
		val, err := tree.Serialize(n)
		if err != nil {
			val = "<" + err.Error() + ">"
		}
		fmt.Fprintf(sb, "%s  %s = %s\n", indent, name, val)
	}
}

type compareCmd struct {
	Left  string `arg:"" help:"Left input file, or - for stdin."`
	Right string `arg:"" help:"Right input file, or - for stdin."`
}

func (c *compareCmd) Run(e *env) error {
	if c.Left == "-" && c.Right == "-" {
		return errors.New("at most one input may be stdin")
	}
	lt, err := e.readInput(c.Left)
	if err != nil {
		return err
	}
	rt, err := e.readInput(c.Right)
	if err != nil {
		return err
	}
	res, err := e.svc.Compare(lt, rt)
	if err != nil {
		return err
	}
	if res.Identical {
		fmt.Fprintln(e.stdout, "identical")
		return nil
	}
	for _, d := range res.Differences {
		fmt.Fprintln(e.stdout, d)
	}
	return errProblems
}
