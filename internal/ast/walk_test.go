package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"paf/internal/ast"
)

// fn first(a, b) { let s: int = a + b; while s { s = s - 1 } return s }
func sampleFunction() *ast.FunctionDecl {
	intType := ast.TypeInt
	return &ast.FunctionDecl{
		Name:   "first",
		Params: []string{"a", "b"},
		Body: []ast.Expr{
			&ast.VariableDecl{
				Name:  "s",
				Type:  &intType,
				Value: &ast.Binary{Left: &ast.Ident{Name: "a"}, Op: ast.OpAdd, Right: &ast.Ident{Name: "b"}},
			},
			&ast.While{
				Cond: &ast.Ident{Name: "s"},
				Body: []ast.Expr{
					&ast.Assignment{
						Name:  "s",
						Value: &ast.Binary{Left: &ast.Ident{Name: "s"}, Op: ast.OpSub, Right: &ast.LitInt{Value: 1}},
					},
				},
			},
			&ast.Return{Value: &ast.Ident{Name: "s"}},
		},
	}
}

func TestDump(t *testing.T) {
	require.Equal(t,
		"(fn first (a b) (let s:int (+ a b)) (while s (= s (- s 1))) (return s))",
		ast.Dump(sampleFunction()))

	require.Equal(t, "(if x (return 2.0))", ast.Dump(&ast.If{
		Cond: &ast.Ident{Name: "x"},
		Body: []ast.Expr{&ast.Return{Value: &ast.LitFloat{Value: 2}}},
	}))
	require.Equal(t, "(/ 6 (* 2 3))", ast.Dump(&ast.Binary{
		Left:  &ast.LitInt{Value: 6},
		Op:    ast.OpDiv,
		Right: &ast.Binary{Left: &ast.LitInt{Value: 2}, Op: ast.OpMul, Right: &ast.LitInt{Value: 3}},
	}))
}

func TestWalk_PreOrder(t *testing.T) {
	var idents []string
	count := 0
	ast.Walk(sampleFunction(), func(e ast.Expr) bool {
		count++
		if id, ok := e.(*ast.Ident); ok {
			idents = append(idents, id.Name)
		}
		return true
	})
	require.Equal(t, []string{"a", "b", "s", "s", "s"}, idents)
	// fn, let, +, a, b, while, s, =, -, s, 1, return, s
	require.Equal(t, 13, count)
}

func TestWalk_SkipChildren(t *testing.T) {
	var loops int
	var inside bool
	ast.Walk(sampleFunction(), func(e ast.Expr) bool {
		if _, ok := e.(*ast.While); ok {
			loops++
			return false
		}
		if a, ok := e.(*ast.Assignment); ok && a.Name == "s" {
			inside = true
		}
		return true
	})
	require.Equal(t, 1, loops)
	require.False(t, inside, "children of a pruned node must not be visited")
}

func TestWalk_Nil(t *testing.T) {
	called := false
	ast.Walk(nil, func(ast.Expr) bool { called = true; return true })
	require.False(t, called)
}
