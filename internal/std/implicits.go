package std

import (
	"strings"

	"vhdlsem/internal/ast"
	"vhdlsem/internal/entity"
	"vhdlsem/internal/source"
)

func (s *Standard) declPos(typ entity.EntityID) source.Span {
	return s.arena.Get(typ).DeclPos
}

func (s *Standard) constantIn(typ entity.EntityID) entity.EntKind {
	return entity.ObjectKind(entity.Object{
		Class:   ast.Constant,
		Mode:    entity.ModeIn,
		Subtype: entity.NewSubtype(typ),
	})
}

func (s *Standard) param(name string, kind entity.EntKind, of entity.EntityID) entity.EntityID {
	return s.arena.Explicit(entity.IdentDesignator(s.symbol(name)), kind, s.declPos(of))
}

// CreateToString synthesizes
//
//	function TO_STRING (VALUE: T) return STRING;
func (s *Standard) CreateToString(typ entity.EntityID) entity.EntityID {
	formals := entity.NewParams()
	formals.Add(s.param("VALUE", s.constantIn(typ), typ))
	return s.arena.Implicit(typ,
		entity.IdentDesignator(s.symbol("TO_STRING")),
		entity.FunctionDecl(formals, s.stringType()),
		s.declPos(typ))
}

// toStringWith synthesizes the overloaded forms taking a second formal,
// such as TO_STRING (VALUE: REAL; DIGITS: NATURAL).
func (s *Standard) toStringWith(typ entity.EntityID, argName string, argType entity.EntityID) entity.EntityID {
	formals := entity.NewParams()
	formals.Add(s.param("VALUE", s.constantIn(typ), typ))
	formals.Add(s.param(argName, s.constantIn(argType), typ))
	return s.arena.Implicit(typ,
		entity.IdentDesignator(s.symbol("TO_STRING")),
		entity.FunctionDecl(formals, s.stringType()),
		s.declPos(typ))
}

// createMinOrMaximum synthesizes
//
//	function MINIMUM (L, R: T) return T;
//	function MAXIMUM (L, R: T) return T;
func (s *Standard) createMinOrMaximum(name string, typ entity.EntityID) entity.EntityID {
	formals := entity.NewParams()
	formals.Add(s.param("L", s.constantIn(typ), typ))
	formals.Add(s.param("R", s.constantIn(typ), typ))
	return s.arena.Implicit(typ,
		entity.IdentDesignator(s.symbol(name)),
		entity.FunctionDecl(formals, typ),
		s.declPos(typ))
}

func (s *Standard) minimum(typ entity.EntityID) entity.EntityID {
	return s.createMinOrMaximum("MINIMUM", typ)
}

func (s *Standard) maximum(typ entity.EntityID) entity.EntityID {
	return s.createMinOrMaximum("MAXIMUM", typ)
}

func (s *Standard) unary(op entity.Operator, typ, returnType entity.EntityID) entity.EntityID {
	formals := entity.NewParams()
	formals.Add(s.param("V", s.constantIn(typ), typ))
	return s.arena.Implicit(typ,
		entity.OperatorDesignator(op),
		entity.FunctionDecl(formals, returnType),
		s.declPos(typ))
}

func (s *Standard) symmetricUnary(op entity.Operator, typ entity.EntityID) entity.EntityID {
	return s.unary(op, typ, typ)
}

// binary synthesizes op : left x right -> returnType, attached to
// implicitOf. Concatenations attach to the array type rather than the
// element type, hence the separate attribution parameter.
func (s *Standard) binary(op entity.Operator, implicitOf, left, right, returnType entity.EntityID) entity.EntityID {
	formals := entity.NewParams()
	formals.Add(s.param("L", s.constantIn(left), implicitOf))
	formals.Add(s.param("R", s.constantIn(right), implicitOf))
	return s.arena.Implicit(implicitOf,
		entity.OperatorDesignator(op),
		entity.FunctionDecl(formals, returnType),
		s.declPos(implicitOf))
}

func (s *Standard) symmetricBinary(op entity.Operator, typ entity.EntityID) entity.EntityID {
	return s.binary(op, typ, typ, typ, typ)
}

func (s *Standard) comparison(op entity.Operator, typ entity.EntityID) entity.EntityID {
	return s.binary(op, typ, typ, typ, s.boolean())
}

// Deallocate synthesizes
//
//	procedure DEALLOCATE (P: inout AT);
func (s *Standard) Deallocate(typ entity.EntityID) entity.EntityID {
	formals := entity.NewParams()
	formals.Add(s.param("P", entity.ObjectKind(entity.Object{
		Class:   ast.Variable,
		Mode:    entity.ModeInOut,
		Subtype: entity.NewSubtype(typ),
	}), typ))
	return s.arena.Implicit(typ,
		entity.IdentDesignator(s.symbol("DEALLOCATE")),
		entity.ProcedureDecl(formals),
		s.declPos(typ))
}

func (s *Standard) comparators(typ entity.EntityID) []entity.EntityID {
	return []entity.EntityID{
		s.comparison(entity.OpEQ, typ),
		s.comparison(entity.OpNE, typ),
		s.comparison(entity.OpLT, typ),
		s.comparison(entity.OpLTE, typ),
		s.comparison(entity.OpGT, typ),
		s.comparison(entity.OpGTE, typ),
	}
}

func (s *Standard) numericImplicits(typ entity.EntityID) []entity.EntityID {
	res := []entity.EntityID{
		s.minimum(typ),
		s.maximum(typ),
		s.CreateToString(typ),
		s.symmetricUnary(entity.OpMinus, typ),
		s.symmetricUnary(entity.OpPlus, typ),
		s.symmetricUnary(entity.OpAbs, typ),
		s.symmetricBinary(entity.OpPlus, typ),
		s.symmetricBinary(entity.OpMinus, typ),
	}
	return append(res, s.comparators(typ)...)
}

func (s *Standard) physicalImplicits(typ entity.EntityID) []entity.EntityID {
	res := []entity.EntityID{
		s.minimum(typ),
		s.maximum(typ),
		s.symmetricUnary(entity.OpMinus, typ),
		s.symmetricUnary(entity.OpPlus, typ),
		s.symmetricUnary(entity.OpAbs, typ),
		s.symmetricBinary(entity.OpPlus, typ),
		s.symmetricBinary(entity.OpMinus, typ),
	}
	return append(res, s.comparators(typ)...)
}

func (s *Standard) enumImplicits(typ entity.EntityID) []entity.EntityID {
	res := []entity.EntityID{
		s.CreateToString(typ),
		s.minimum(typ),
		s.maximum(typ),
	}
	return append(res, s.comparators(typ)...)
}

func (s *Standard) recordImplicits(typ entity.EntityID) []entity.EntityID {
	return []entity.EntityID{
		s.comparison(entity.OpEQ, typ),
		s.comparison(entity.OpNE, typ),
	}
}

// concatenations builds the four "&" overloads of a one-dimensional
// array, all attached to the array type.
func (s *Standard) concatenations(arrayType, elemType entity.EntityID) []entity.EntityID {
	return []entity.EntityID{
		s.binary(entity.OpConcat, arrayType, arrayType, elemType, arrayType),
		s.binary(entity.OpConcat, arrayType, elemType, arrayType, arrayType),
		s.symmetricBinary(entity.OpConcat, arrayType),
		s.binary(entity.OpConcat, arrayType, elemType, elemType, arrayType),
	}
}

func (s *Standard) arrayImplicits(typ entity.EntityID) []entity.EntityID {
	data := s.arena.TypeOf(typ)
	res := []entity.EntityID{
		s.CreateToString(typ),
		s.comparison(entity.OpEQ, typ),
		s.comparison(entity.OpNE, typ),
	}
	if data.Indexes == 1 {
		res = append(res, s.concatenations(typ, data.Elem)...)
	}
	return res
}

func (s *Standard) accessImplicits(typ entity.EntityID) []entity.EntityID {
	return []entity.EntityID{
		s.Deallocate(typ),
		s.comparison(entity.OpEQ, typ),
		s.comparison(entity.OpNE, typ),
	}
}

// TypeImplicits returns the ordered implicit declarations the language
// requires alongside the given type. Variants without general implicits
// return nil; file subprograms are synthesized separately by the
// declaration analyzer via CreateImplicitFileTypeSubprograms.
func (s *Standard) TypeImplicits(typ entity.EntityID) []entity.EntityID {
	switch s.arena.TypeOf(typ).Kind {
	case entity.TypeAccess:
		return s.accessImplicits(typ)
	case entity.TypeEnum:
		return s.enumImplicits(typ)
	case entity.TypeInteger, entity.TypeReal:
		return s.numericImplicits(typ)
	case entity.TypeRecord:
		return s.recordImplicits(typ)
	case entity.TypePhysical:
		return s.physicalImplicits(typ)
	case entity.TypeArray:
		return s.arrayImplicits(typ)
	default:
		// Universal types predate the standard package; subtypes,
		// aliases, interfaces, protected, incomplete and file types
		// carry none.
		return nil
	}
}

// CreateImplicitFileTypeSubprograms synthesizes the seven file-type
// subprograms for a file type over element type typeMark.
func (s *Standard) CreateImplicitFileTypeSubprograms(fileType, typeMark entity.EntityID) []entity.EntityID {
	stringType := s.stringType()
	boolean := s.boolean()
	fileOpenKind := s.fileOpenKind()
	fileOpenStatus := s.fileOpenStatus()

	var implicit []entity.EntityID

	fileParam := func() entity.EntityID {
		return s.param("F", entity.InterfaceFileKind(fileType), fileType)
	}
	openKindParam := func() entity.EntityID {
		return s.param("Open_Kind", entity.ObjectKind(entity.Object{
			Class:      ast.Constant,
			Mode:       entity.ModeIn,
			Subtype:    entity.NewSubtype(fileOpenKind),
			HasDefault: true,
		}), fileType)
	}

	// procedure FILE_OPEN (file F: FT; External_Name: in STRING;
	//                      Open_Kind: in FILE_OPEN_KIND := READ_MODE);
	{
		formals := entity.NewParams()
		formals.Add(fileParam())
		formals.Add(s.param("External_Name", s.constantIn(stringType), fileType))
		formals.Add(openKindParam())
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("FILE_OPEN")),
			entity.ProcedureDecl(formals),
			s.declPos(fileType)))
	}

	// procedure FILE_OPEN (Status: out FILE_OPEN_STATUS; file F: FT;
	//                      External_Name: in STRING;
	//                      Open_Kind: in FILE_OPEN_KIND := READ_MODE);
	{
		formals := entity.NewParams()
		formals.Add(s.param("Status", entity.ObjectKind(entity.Object{
			Class:   ast.Variable,
			Mode:    entity.ModeOut,
			Subtype: entity.NewSubtype(fileOpenStatus),
		}), fileType))
		formals.Add(fileParam())
		formals.Add(s.param("External_Name", s.constantIn(stringType), fileType))
		formals.Add(openKindParam())
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("FILE_OPEN")),
			entity.ProcedureDecl(formals),
			s.declPos(fileType)))
	}

	// procedure FILE_CLOSE (file F: FT);
	{
		formals := entity.NewParams()
		formals.Add(fileParam())
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("FILE_CLOSE")),
			entity.ProcedureDecl(formals),
			s.declPos(fileType)))
	}

	// procedure READ (file F: FT; VALUE: out TM);
	{
		formals := entity.NewParams()
		formals.Add(fileParam())
		formals.Add(s.param("VALUE", entity.ObjectKind(entity.Object{
			Class:   ast.Variable,
			Mode:    entity.ModeOut,
			Subtype: entity.NewSubtype(typeMark),
		}), fileType))
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("READ")),
			entity.ProcedureDecl(formals),
			s.declPos(fileType)))
	}

	// procedure WRITE (file F: FT; VALUE: in TM);
	{
		formals := entity.NewParams()
		formals.Add(fileParam())
		formals.Add(s.param("VALUE", s.constantIn(typeMark), fileType))
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("WRITE")),
			entity.ProcedureDecl(formals),
			s.declPos(fileType)))
	}

	// procedure FLUSH (file F: FT);
	{
		formals := entity.NewParams()
		formals.Add(fileParam())
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("FLUSH")),
			entity.ProcedureDecl(formals),
			s.declPos(fileType)))
	}

	// function ENDFILE (file F: FT) return BOOLEAN;
	{
		formals := entity.NewParams()
		formals.Add(fileParam())
		implicit = append(implicit, s.arena.Implicit(fileType,
			entity.IdentDesignator(s.symbol("ENDFILE")),
			entity.FunctionDecl(formals, boolean),
			s.declPos(fileType)))
	}

	return implicit
}

// EndOfPackageImplicits performs the closing pass over the STANDARD
// region: per-type implicits for every immediately visible type, the
// TIME TO_STRING, the scalar and vector logical operators, and the
// overloaded REAL and TIME TO_STRING forms.
func (s *Standard) EndOfPackageImplicits() []entity.EntityID {
	var res []entity.EntityID

	attach := func(typ entity.EntityID, ents ...entity.EntityID) {
		data := s.arena.TypeOf(typ)
		for _, e := range ents {
			data.AddImplicit(e)
			res = append(res, e)
		}
	}

	for _, named := range s.region.Immediates() {
		id, ok := named.Solitary()
		if !ok {
			continue
		}
		if s.arena.Get(id).Kind.Kind != entity.KindType {
			continue
		}
		attach(id, s.TypeImplicits(id)...)
	}

	attach(s.Time(), s.CreateToString(s.Time()))

	for _, name := range []string{"BOOLEAN", "BIT"} {
		typ := s.lookupType(name)
		attach(typ,
			s.symmetricBinary(entity.OpAnd, typ),
			s.symmetricBinary(entity.OpOr, typ),
			s.symmetricBinary(entity.OpNand, typ),
			s.symmetricBinary(entity.OpNor, typ),
			s.symmetricBinary(entity.OpXor, typ),
			s.symmetricBinary(entity.OpXnor, typ),
			s.symmetricUnary(entity.OpNot, typ),
		)
	}

	vectorOps := []entity.Operator{
		entity.OpAnd, entity.OpOr, entity.OpNand,
		entity.OpNor, entity.OpXor, entity.OpXnor,
	}
	for _, name := range []string{"BOOLEAN_VECTOR", "BIT_VECTOR"} {
		atyp := s.lookupType(name)
		styp := s.lookupType(strings.TrimSuffix(name, "_VECTOR"))
		for _, op := range vectorOps {
			var reduce entity.EntityID
			if op == entity.OpNot {
				// The reduction entry degenerates to A -> A for "not";
				// possibly a standard reading quirk, kept for review.
				reduce = s.unary(op, atyp, atyp)
			} else {
				reduce = s.unary(op, atyp, styp)
			}
			attach(atyp,
				s.symmetricBinary(op, atyp),
				reduce,
				s.binary(op, atyp, atyp, styp, atyp),
				s.binary(op, atyp, styp, atyp, atyp),
			)
		}
	}

	// function TO_STRING (VALUE: REAL; DIGITS: NATURAL) return STRING;
	// function TO_STRING (VALUE: REAL; FORMAT: STRING) return STRING;
	// function TO_STRING (VALUE: TIME; UNIT: TIME) return STRING;
	attach(s.real(), s.toStringWith(s.real(), "DIGITS", s.natural()))
	attach(s.real(), s.toStringWith(s.real(), "FORMAT", s.stringType()))
	attach(s.Time(), s.toStringWith(s.Time(), "UNIT", s.Time()))

	return res
}
