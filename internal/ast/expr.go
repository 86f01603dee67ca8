package ast

// Expr is the closed set of expression forms. Statement-like forms
// (declarations, assignment, return, control flow) are expressions too.
type Expr interface {
	exprNode()
}

type (
	// FunctionDecl: fn Name(Params...) { Body }
	FunctionDecl struct {
		Name   string
		Params []string
		Body   []Expr
	}

	// VariableDecl: let Name[: Type] = Value. Type is nil when omitted.
	VariableDecl struct {
		Name  string
		Type  *Type
		Value Expr
	}

	Assignment struct {
		Name  string
		Value Expr
	}

	Return struct {
		Value Expr
	}

	If struct {
		Cond Expr
		Body []Expr
	}

	While struct {
		Cond Expr
		Body []Expr
	}

	LitInt struct {
		Value int64
	}

	LitFloat struct {
		Value float64
	}

	Ident struct {
		Name string
	}

	Binary struct {
		Left  Expr
		Op    BinaryOperator
		Right Expr
	}
)

func (*FunctionDecl) exprNode() {}
func (*VariableDecl) exprNode() {}
func (*Assignment) exprNode()   {}
func (*Return) exprNode()       {}
func (*If) exprNode()           {}
func (*While) exprNode()        {}
func (*LitInt) exprNode()       {}
func (*LitFloat) exprNode()     {}
func (*Ident) exprNode()        {}
func (*Binary) exprNode()       {}
