package ast

import (
	"strconv"
	"strings"
)

// Walk visits e and its children in pre-order.
// If visit returns false the children of that expression are skipped.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil || !visit(e) {
		return
	}
	switch x := e.(type) {
	case *FunctionDecl:
		walkList(x.Body, visit)
	case *VariableDecl:
		Walk(x.Value, visit)
	case *Assignment:
		Walk(x.Value, visit)
	case *Return:
		Walk(x.Value, visit)
	case *If:
		Walk(x.Cond, visit)
		walkList(x.Body, visit)
	case *While:
		Walk(x.Cond, visit)
		walkList(x.Body, visit)
	case *Binary:
		Walk(x.Left, visit)
		Walk(x.Right, visit)
	}
}

func walkList(list []Expr, visit func(Expr) bool) {
	for _, e := range list {
		Walk(e, visit)
	}
}

// Dump renders e as a compact s-expression, e.g. (+ x 1).
func Dump(e Expr) string {
	var sb strings.Builder
	dump(&sb, e)
	return sb.String()
}

func dump(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case nil:
		sb.WriteString("()")
	case *FunctionDecl:
		sb.WriteString("(fn ")
		sb.WriteString(x.Name)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(x.Params, " "))
		sb.WriteString(")")
		dumpBody(sb, x.Body)
		sb.WriteString(")")
	case *VariableDecl:
		sb.WriteString("(let ")
		sb.WriteString(x.Name)
		if x.Type != nil {
			sb.WriteString(":")
			sb.WriteString(x.Type.String())
		}
		sb.WriteString(" ")
		dump(sb, x.Value)
		sb.WriteString(")")
	case *Assignment:
		sb.WriteString("(= ")
		sb.WriteString(x.Name)
		sb.WriteString(" ")
		dump(sb, x.Value)
		sb.WriteString(")")
	case *Return:
		sb.WriteString("(return ")
		dump(sb, x.Value)
		sb.WriteString(")")
	case *If:
		sb.WriteString("(if ")
		dump(sb, x.Cond)
		dumpBody(sb, x.Body)
		sb.WriteString(")")
	case *While:
		sb.WriteString("(while ")
		dump(sb, x.Cond)
		dumpBody(sb, x.Body)
		sb.WriteString(")")
	case *LitInt:
		sb.WriteString(strconv.FormatInt(x.Value, 10))
	case *LitFloat:
		f := strconv.FormatFloat(x.Value, 'f', -1, 64)
		sb.WriteString(f)
		if !strings.ContainsRune(f, '.') {
			sb.WriteString(".0")
		}
	case *Ident:
		sb.WriteString(x.Name)
	case *Binary:
		sb.WriteString("(")
		sb.WriteString(x.Op.String())
		sb.WriteString(" ")
		dump(sb, x.Left)
		sb.WriteString(" ")
		dump(sb, x.Right)
		sb.WriteString(")")
	}
}

func dumpBody(sb *strings.Builder, body []Expr) {
	for _, e := range body {
		sb.WriteString(" ")
		dump(sb, e)
	}
}
