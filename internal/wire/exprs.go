package wire

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"clow/internal/ast"
	"clow/internal/source"
	"clow/internal/token"
	"clow/internal/types"
)

type typeRec struct {
	Kind uint8
	Name string
	Args []typeRec
}

func encodeType(t types.Type) typeRec {
	rec := typeRec{Kind: uint8(t.Kind), Name: t.Name}
	for _, arg := range t.Args {
		rec.Args = append(rec.Args, encodeType(arg))
	}
	return rec
}

func (r typeRec) decode() types.Type {
	t := types.Type{Kind: types.Kind(r.Kind), Name: r.Name}
	for _, arg := range r.Args {
		t.Args = append(t.Args, arg.decode())
	}
	return t
}

type declRec struct {
	Name string
	Init uint32
}

type armRec struct {
	Cond uint32
	Body []uint32
}

// exprRec flattens one node. Nodes are stored in arena order, so re-playing
// the constructors on decode reproduces the same 1-based IDs and every
// child reference survives untouched.
type exprRec struct {
	Kind    uint8
	Loc     locRec
	Int     uint64
	Float   float64
	Text    string
	Name    string
	Mods    uint8
	Op      uint8
	Kids    []uint32
	Type    typeRec
	Types   []typeRec
	Decls   []declRec
	Arms    []armRec
	Else    []uint32
	HasElse bool
}

type exprsArtifact struct {
	Schema uint16
	Name   string
	Source string
	Nodes  []exprRec
	Roots  []uint32
}

func ids(list []ast.ExprID) []uint32 {
	out := make([]uint32, 0, len(list))
	for _, id := range list {
		out = append(out, uint32(id))
	}
	return out
}

func exprIDs(list []uint32) []ast.ExprID {
	if list == nil {
		return nil
	}
	out := make([]ast.ExprID, 0, len(list))
	for _, id := range list {
		out = append(out, ast.ExprID(id))
	}
	return out
}

// EncodeExprs serializes a whole node store plus the roots of interest.
func EncodeExprs(ctx source.Context, exprs *ast.Exprs, roots []ast.ExprID) ([]byte, error) {
	artifact := exprsArtifact{
		Schema: exprsSchemaVersion,
		Name:   ctx.Name,
		Source: ctx.Text,
		Nodes:  make([]exprRec, 0, exprs.Len()),
		Roots:  ids(roots),
	}

	for i := uint32(1); i <= exprs.Len(); i++ {
		id := ast.ExprID(i)
		node := exprs.Get(id)
		rec := exprRec{Kind: uint8(node.Kind), Loc: encodeLoc(node.Loc)}

		switch node.Kind {
		case ast.ExprInt:
			data, _ := exprs.Int(id)
			rec.Int = data.Value
		case ast.ExprFloat:
			data, _ := exprs.Float(id)
			rec.Float = data.Value
		case ast.ExprIdent:
			data, _ := exprs.Ident(id)
			rec.Text = data.Name
		case ast.ExprString:
			data, _ := exprs.String(id)
			rec.Text = data.Value
		case ast.ExprArray:
			data, _ := exprs.Array(id)
			rec.Kids = ids(data.Elems)
		case ast.ExprUnary:
			data, _ := exprs.Unary(id)
			rec.Op = uint8(data.Op)
			rec.Kids = []uint32{uint32(data.Operand)}
		case ast.ExprBinary:
			data, _ := exprs.Binary(id)
			rec.Op = uint8(data.Op)
			rec.Kids = []uint32{uint32(data.Left), uint32(data.Right)}
		case ast.ExprVar:
			data, _ := exprs.Var(id)
			rec.Type = encodeType(data.Type)
			for _, decl := range data.Decls {
				rec.Decls = append(rec.Decls, declRec{Name: decl.Name, Init: uint32(decl.Init)})
			}
		case ast.ExprFunc:
			data, _ := exprs.Func(id)
			rec.Name = data.Name
			rec.Mods = uint8(data.Mods)
			for _, t := range data.Types {
				rec.Types = append(rec.Types, encodeType(t))
			}
			rec.Kids = ids(data.Body)
		case ast.ExprClass:
			data, _ := exprs.Class(id)
			rec.Name = data.Name
			rec.Mods = uint8(data.Mods)
			for _, t := range data.Types {
				rec.Types = append(rec.Types, encodeType(t))
			}
			rec.Kids = ids(data.Body)
		case ast.ExprIf:
			data, _ := exprs.If(id)
			for _, arm := range data.Arms {
				rec.Arms = append(rec.Arms, armRec{Cond: uint32(arm.Cond), Body: ids(arm.Body)})
			}
			rec.HasElse = data.Else != nil
			if rec.HasElse {
				rec.Else = ids(data.Else)
			}
		}

		artifact.Nodes = append(artifact.Nodes, rec)
	}

	return msgpack.Marshal(&artifact)
}

// DecodeExprs deserializes a node-store artifact. Child references are
// validated against the node count.
func DecodeExprs(data []byte) (source.Context, *ast.Exprs, []ast.ExprID, error) {
	var artifact exprsArtifact
	if err := msgpack.Unmarshal(data, &artifact); err != nil {
		return source.Context{}, nil, nil, fmt.Errorf("decode expr artifact: %w", err)
	}
	if artifact.Schema != exprsSchemaVersion {
		return source.Context{}, nil, nil, fmt.Errorf("%w: exprs v%d", ErrSchema, artifact.Schema)
	}

	total := uint32(len(artifact.Nodes))
	checkID := func(at int, id uint32) error {
		if id > total {
			return fmt.Errorf("node %d: child reference %d out of range (%d nodes)", at, id, total)
		}
		return nil
	}
	checkAll := func(at int, list []uint32) error {
		for _, id := range list {
			if err := checkID(at, id); err != nil {
				return err
			}
		}
		return nil
	}

	ctx := source.NewContext(artifact.Name, artifact.Source)
	exprs := ast.NewExprs(uint(total))

	for i, rec := range artifact.Nodes {
		loc := rec.Loc.decode()
		switch ast.ExprKind(rec.Kind) {
		case ast.ExprInt:
			exprs.NewInt(loc, rec.Int)
		case ast.ExprFloat:
			exprs.NewFloat(loc, rec.Float)
		case ast.ExprIdent:
			exprs.NewIdent(loc, rec.Text)
		case ast.ExprString:
			exprs.NewString(loc, rec.Text)
		case ast.ExprArray:
			if err := checkAll(i, rec.Kids); err != nil {
				return source.Context{}, nil, nil, err
			}
			exprs.NewArray(loc, exprIDs(rec.Kids))
		case ast.ExprUnary:
			if len(rec.Kids) != 1 {
				return source.Context{}, nil, nil, fmt.Errorf("node %d: unary wants 1 child, has %d", i, len(rec.Kids))
			}
			if err := checkAll(i, rec.Kids); err != nil {
				return source.Context{}, nil, nil, err
			}
			exprs.NewUnary(loc, token.Operator(rec.Op), ast.ExprID(rec.Kids[0]))
		case ast.ExprBinary:
			if len(rec.Kids) != 2 {
				return source.Context{}, nil, nil, fmt.Errorf("node %d: binary wants 2 children, has %d", i, len(rec.Kids))
			}
			if err := checkAll(i, rec.Kids); err != nil {
				return source.Context{}, nil, nil, err
			}
			exprs.NewBinary(loc, token.Operator(rec.Op), ast.ExprID(rec.Kids[0]), ast.ExprID(rec.Kids[1]))
		case ast.ExprVar:
			decls := make([]ast.VarDecl, 0, len(rec.Decls))
			for _, d := range rec.Decls {
				if err := checkID(i, d.Init); err != nil {
					return source.Context{}, nil, nil, err
				}
				decls = append(decls, ast.VarDecl{Name: d.Name, Init: ast.ExprID(d.Init)})
			}
			exprs.NewVar(loc, rec.Type.decode(), decls)
		case ast.ExprFunc, ast.ExprClass:
			if err := checkAll(i, rec.Kids); err != nil {
				return source.Context{}, nil, nil, err
			}
			typs := make([]types.Type, 0, len(rec.Types))
			for _, t := range rec.Types {
				typs = append(typs, t.decode())
			}
			if ast.ExprKind(rec.Kind) == ast.ExprFunc {
				exprs.NewFunc(loc, rec.Name, ast.Modifiers(rec.Mods), typs, exprIDs(rec.Kids))
			} else {
				exprs.NewClass(loc, rec.Name, ast.Modifiers(rec.Mods), typs, exprIDs(rec.Kids))
			}
		case ast.ExprIf:
			arms := make([]ast.IfArm, 0, len(rec.Arms))
			for _, arm := range rec.Arms {
				if err := checkID(i, arm.Cond); err != nil {
					return source.Context{}, nil, nil, err
				}
				if err := checkAll(i, arm.Body); err != nil {
					return source.Context{}, nil, nil, err
				}
				arms = append(arms, ast.IfArm{Cond: ast.ExprID(arm.Cond), Body: exprIDs(arm.Body)})
			}
			var elseBody []ast.ExprID
			if rec.HasElse {
				if err := checkAll(i, rec.Else); err != nil {
					return source.Context{}, nil, nil, err
				}
				elseBody = exprIDs(rec.Else)
				if elseBody == nil {
					elseBody = []ast.ExprID{}
				}
			}
			exprs.NewIf(loc, arms, elseBody)
		default:
			return source.Context{}, nil, nil, fmt.Errorf("node %d: unknown kind %d", i, rec.Kind)
		}
	}

	for _, id := range artifact.Roots {
		if id > total {
			return source.Context{}, nil, nil, fmt.Errorf("root reference %d out of range (%d nodes)", id, total)
		}
	}
	return ctx, exprs, exprIDs(artifact.Roots), nil
}
