package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"clow/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatExprTree renders the given root nodes as an indented tree, one
// block per root. Node labels carry the kind, payload summary and start
// position.
func FormatExprTree(w io.Writer, exprs *ast.Exprs, roots []ast.ExprID) error {
	for _, root := range roots {
		node := buildExprNode(exprs, root)
		if _, err := io.WriteString(w, node.label+"\n"); err != nil {
			return err
		}
		if err := writeChildren(w, node, ""); err != nil {
			return err
		}
	}
	return nil
}

func writeChildren(w io.Writer, node *treeNode, prefix string) error {
	for i, child := range node.children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(node.children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		if _, err := io.WriteString(w, prefix+connector+child.label+"\n"); err != nil {
			return err
		}
		if err := writeChildren(w, child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

func buildExprNode(exprs *ast.Exprs, id ast.ExprID) *treeNode {
	expr := exprs.Get(id)
	if expr == nil {
		return &treeNode{label: "<nil>"}
	}

	label := func(summary string) string {
		if summary == "" {
			return fmt.Sprintf("%s (%s)", expr.Kind, expr.Loc)
		}
		return fmt.Sprintf("%s %s (%s)", expr.Kind, summary, expr.Loc)
	}

	switch expr.Kind {
	case ast.ExprInt:
		data, _ := exprs.Int(id)
		return &treeNode{label: label(fmt.Sprintf("%d", data.Value))}
	case ast.ExprFloat:
		data, _ := exprs.Float(id)
		return &treeNode{label: label(fmt.Sprintf("%g", data.Value))}
	case ast.ExprIdent:
		data, _ := exprs.Ident(id)
		return &treeNode{label: label(data.Name)}
	case ast.ExprString:
		data, _ := exprs.String(id)
		return &treeNode{label: label(fmt.Sprintf("%q", data.Value))}
	case ast.ExprArray:
		data, _ := exprs.Array(id)
		node := &treeNode{label: label(fmt.Sprintf("[%d]", len(data.Elems)))}
		for _, elem := range data.Elems {
			node.children = append(node.children, buildExprNode(exprs, elem))
		}
		return node
	case ast.ExprUnary:
		data, _ := exprs.Unary(id)
		node := &treeNode{label: label(data.Op.String())}
		node.children = append(node.children, buildExprNode(exprs, data.Operand))
		return node
	case ast.ExprBinary:
		data, _ := exprs.Binary(id)
		node := &treeNode{label: label(data.Op.String())}
		node.children = append(node.children,
			buildExprNode(exprs, data.Left),
			buildExprNode(exprs, data.Right))
		return node
	case ast.ExprVar:
		data, _ := exprs.Var(id)
		node := &treeNode{label: label(data.Type.String())}
		for _, decl := range data.Decls {
			declNode := &treeNode{label: "Decl " + decl.Name}
			if decl.Init.IsValid() {
				declNode.children = append(declNode.children, buildExprNode(exprs, decl.Init))
			}
			node.children = append(node.children, declNode)
		}
		return node
	case ast.ExprFunc:
		data, _ := exprs.Func(id)
		node := &treeNode{label: label(funcSummary(data.Name, data.Mods.String(), typeList(data)))}
		for _, child := range data.Body {
			node.children = append(node.children, buildExprNode(exprs, child))
		}
		return node
	case ast.ExprClass:
		data, _ := exprs.Class(id)
		node := &treeNode{label: label(funcSummary(data.Name, data.Mods.String(), classTypeList(data)))}
		for _, child := range data.Body {
			node.children = append(node.children, buildExprNode(exprs, child))
		}
		return node
	case ast.ExprIf:
		data, _ := exprs.If(id)
		node := &treeNode{label: label("")}
		for i, arm := range data.Arms {
			armNode := &treeNode{label: fmt.Sprintf("Arm[%d]", i)}
			condNode := &treeNode{label: "Cond"}
			condNode.children = append(condNode.children, buildExprNode(exprs, arm.Cond))
			armNode.children = append(armNode.children, condNode)
			bodyNode := &treeNode{label: "Body"}
			for _, child := range arm.Body {
				bodyNode.children = append(bodyNode.children, buildExprNode(exprs, child))
			}
			armNode.children = append(armNode.children, bodyNode)
			node.children = append(node.children, armNode)
		}
		if data.Else != nil {
			elseNode := &treeNode{label: "Else"}
			for _, child := range data.Else {
				elseNode.children = append(elseNode.children, buildExprNode(exprs, child))
			}
			node.children = append(node.children, elseNode)
		}
		return node
	}
	return &treeNode{label: label("?")}
}

func funcSummary(name, mods, typs string) string {
	var parts []string
	if mods != "" {
		parts = append(parts, mods)
	}
	parts = append(parts, name)
	if typs != "" {
		parts = append(parts, "("+typs+")")
	}
	return strings.Join(parts, " ")
}

func typeList(data *ast.ExprFuncData) string {
	names := make([]string, 0, len(data.Types))
	for _, t := range data.Types {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func classTypeList(data *ast.ExprClassData) string {
	names := make([]string, 0, len(data.Types))
	for _, t := range data.Types {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
