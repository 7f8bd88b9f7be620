// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/creachadair/jsurf"
)

// A Formatter carries the settings for rendering a tree as JSON text.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the string used for each level of nesting.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Serialize renders root as indented JSON text with default settings. The
// result does not end with a newline.
func Serialize(root *Node) (string, error) {
	var buf bytes.Buffer
	if err := (Formatter{}).Format(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Format renders root as indented JSON text to w using the settings from f.
// If the tree is malformed, Format reports an error of concrete type
// [*SerializeError] and writes nothing to w.
func (f Formatter) Format(w io.Writer, root *Node) error {
	var buf bytes.Buffer
	if err := f.formatNode(&buf, root, "", ""); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// SerializeError is the concrete type of errors reported for a malformed
// tree.
type SerializeError struct {
	Path    string // path of the offending node
	Message string
}

func (e *SerializeError) Error() string {
	if e.Path == "" {
		return "serialize: " + e.Message
	}
	return fmt.Sprintf("serialize %s: %s", e.Path, e.Message)
}

func errorf(path, msg string, args ...any) error {
	return &SerializeError{Path: path, Message: fmt.Sprintf(msg, args...)}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// formatNode writes n to buf, with nested lines indented by indent.
// The path of n is used to label errors.
func (f Formatter) formatNode(buf *bytes.Buffer, n *Node, indent, path string) error {
	if n == nil {
		return errorf(path, "nil node")
	}
	if n.Kind.IsContainer() && n.Value != nil {
		return errorf(path, "%v node has a value of type %T", n.Kind, n.Value)
	} else if !n.Kind.IsContainer() && len(n.Children) != 0 {
		return errorf(path, "%v node has %d children", n.Kind, len(n.Children))
	}

	switch n.Kind {
	case KindObject:
		return f.formatContainer(buf, n, indent, path, '{', '}')
	case KindArray:
		return f.formatContainer(buf, n, indent, path, '[', ']')
	case KindProperty:
		if len(n.Children) != 1 {
			return errorf(path, "property has %d children, want 1", len(n.Children))
		}
		return f.formatNode(buf, n.Children[0], indent, path)
	case KindString:
		s, ok := n.Value.(string)
		if !ok {
			return errorf(path, "string node has a value of type %T", n.Value)
		}
		buf.WriteString(jsurf.Quote(s))
	case KindNumber:
		s, err := formatNumber(n.Value)
		if err != nil {
			return errorf(path, "%v", err)
		}
		buf.WriteString(s)
	case KindBoolean:
		b, ok := n.Value.(bool)
		if !ok {
			return errorf(path, "boolean node has a value of type %T", n.Value)
		}
		buf.WriteString(strconv.FormatBool(b))
	case KindNull:
		buf.WriteString("null")
	default:
		return errorf(path, "unknown node kind %v", n.Kind)
	}
	return nil
}

func (f Formatter) formatContainer(buf *bytes.Buffer, n *Node, indent, path string, open, close byte) error {
	buf.WriteByte(open)
	if len(n.Children) == 0 {
		buf.WriteByte(close)
		return nil
	}
	inner := indent + f.indent()
	for i, c := range n.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		buf.WriteString(inner)
		if c == nil {
			return errorf(joinPath(path, IndexKey(i)), "nil child")
		}
		if n.Kind == KindObject {
			buf.WriteString(jsurf.Quote(c.Key))
			buf.WriteString(": ")
		}
		if err := f.formatNode(buf, c, inner, joinPath(path, c.Key)); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	buf.WriteString(indent)
	buf.WriteByte(close)
	return nil
}

// formatNumber renders a numeric payload as a JSON number. Payloads of
// unrecognized type, and literals that are not valid JSON numbers, are
// rendered as strings.
func formatNumber(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", fmt.Errorf("number node has no value")
	case Number:
		if _, err := ParseNumber(string(t)); err == nil {
			return string(t), nil
		}
	case json.Number:
		if _, err := ParseNumber(string(t)); err == nil {
			return string(t), nil
		}
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return formatFloat(float64(t), 32)
	case float64:
		return formatFloat(t, 64)
	case *big.Int:
		if t != nil {
			return t.String(), nil
		}
	case *big.Float:
		if t != nil {
			if t.IsInf() {
				return "", fmt.Errorf("number is not finite: %v", t)
			}
			return t.Text('g', -1), nil
		}
	case *big.Rat:
		if t != nil {
			if s, ok := ratDecimal(t); ok {
				return s, nil
			}
		}
	}
	return jsurf.Quote(fmt.Sprint(v)), nil
}

func formatFloat(f float64, bits int) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("number is not finite: %v", f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits), nil
}

// ratDecimal renders r as an exact decimal, if it has one.
func ratDecimal(r *big.Rat) (string, bool) {
	if r.IsInt() {
		return r.Num().String(), true
	}

	// A fraction has a finite decimal expansion iff its reduced denominator
	// has no prime factors other than 2 and 5. The number of digits needed
	// is the larger of the two multiplicities.
	d := new(big.Int).Set(r.Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	var n2, n5 int
	var rem big.Int
	for {
		q, m := new(big.Int).QuoRem(d, two, &rem)
		if m.Sign() != 0 {
			break
		}
		d, n2 = q, n2+1
	}
	for {
		q, m := new(big.Int).QuoRem(d, five, &rem)
		if m.Sign() != 0 {
			break
		}
		d, n5 = q, n5+1
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return "", false
	}
	return r.FloatString(max(n2, n5)), true
}
