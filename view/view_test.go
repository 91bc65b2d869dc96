package view

import (
	"testing"

	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/internal/testblob"
	"github.com/arloliu/ifc/record"
	"github.com/stretchr/testify/require"
)

// buildModuleFile assembles a small but fully cross-linked artifact:
// a primary module interface with a namespace and a class in the global
// namespace, a class template with one specialization, and enough names and
// expressions to exercise sort-tag routing.
func buildModuleFile(t *testing.T) *blob.File {
	t.Helper()

	b := testblob.New()

	nsName := b.AddString("engine")
	clsName := b.AddString("Widget")
	unitName := b.AddString("engine.core")
	opName := b.AddString("operator+")
	suffix := b.AddString("sv")
	deprecation := b.AddString("superseded by Gadget")

	b.SetUnit(format.MakeUnitIndex(format.UnitSortPrimary, uint32(unitName)))
	b.SetGlobalScope(0)

	testblob.AddRecords(b, "type.fundamental", []record.FundamentalType{
		{Basis: format.BasisNamespace},
		{Basis: format.BasisClass},
	})

	testblob.AddRecords(b, "decl.scope", []record.ScopeDeclaration{
		{Name: format.MakeNameIndex(format.NameSortIdentifier, uint32(nsName)), Type: format.MakeTypeIndex(format.TypeSortFundamental, 0)},
		{Name: format.MakeNameIndex(format.NameSortIdentifier, uint32(clsName)), Type: format.MakeTypeIndex(format.TypeSortFundamental, 1)},
	})

	// decl[0], decl[1]: global namespace members; decl[2]: a template
	// parameter; decl[3]: the template's lone specialization.
	testblob.AddRecords(b, "decl", []record.Declaration{
		{Index: format.MakeDeclIndex(format.DeclSortScope, 0)},
		{Index: format.MakeDeclIndex(format.DeclSortScope, 1)},
		{Index: format.MakeDeclIndex(format.DeclSortParameter, 0)},
		{Index: format.MakeDeclIndex(format.DeclSortScope, 1)},
	})
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 2}})

	testblob.AddRecords(b, "decl.template", []record.TemplateDeclaration{
		{
			Name:   format.MakeNameIndex(format.NameSortIdentifier, uint32(clsName)),
			Chart:  format.MakeChartIndex(format.ChartSortUnilevel, 0),
			Entity: format.MakeDeclIndex(format.DeclSortScope, 1),
		},
	})
	testblob.AddRecords(b, "chart.unilevel", []record.ChartUnilevel{
		{Parameters: format.Sequence{Start: 2, Size: 1}},
	})
	testblob.AddRecords(b, "trait.specialization", []record.AssociatedTrait[format.Sequence]{
		{Decl: format.MakeDeclIndex(format.DeclSortTemplate, 0), Trait: format.Sequence{Start: 3, Size: 1}},
	})
	testblob.AddRecords(b, "trait.deprecated", []record.AssociatedTrait[format.TextOffset]{
		{Decl: format.MakeDeclIndex(format.DeclSortScope, 1), Trait: deprecation},
	})

	testblob.AddRecords(b, "name.operator", []record.OperatorFunctionName{
		{Name: opName, Operator: 0x21},
	})
	testblob.AddRecords(b, "name.literal", []record.LiteralName{
		{Suffix: suffix},
	})
	testblob.AddRecords(b, "name.specialization", []record.SpecializationName{
		{
			Primary:   format.MakeNameIndex(format.NameSortIdentifier, uint32(clsName)),
			Arguments: format.MakeExprIndex(format.ExprSortTuple, 0),
		},
	})

	testblob.AddRecords(b, "heap.expr", []format.ExprIndex{
		format.MakeExprIndex(format.ExprSortLiteral, 0),
		format.MakeExprIndex(format.ExprSortLiteral, 1),
	})
	testblob.AddRecords(b, "expr.tuple", []record.TupleExpression{
		{Seq: format.Sequence{Start: 0, Size: 2}},
	})
	testblob.AddRecords(b, "expr.qualified-name", []record.QualifiedNameExpression{
		{Elements: format.MakeExprIndex(format.ExprSortTuple, 0)},
	})

	testblob.AddRecords(b, "module.imported", []record.ModuleReference{
		{Owner: 0, Partition: b.AddString("std")},
	})

	f, err := blob.Open(b.Build())
	require.NoError(t, err)

	return f
}

func TestModule_Unit(t *testing.T) {
	m := NewModule(buildModuleFile(t))

	unit := m.Unit()

	require.True(t, unit.IsPrimary())
	require.False(t, unit.IsPartition())
	require.Equal(t, "engine.core", unit.Name())
}

func TestModule_GlobalNamespace(t *testing.T) {
	m := NewModule(buildModuleFile(t))

	global := m.GlobalNamespace()
	require.Equal(t, 2, global.Len())

	var sorts []format.DeclSort
	for decl := range global.Declarations() {
		sorts = append(sorts, decl.Sort())
	}

	require.Equal(t, []format.DeclSort{format.DeclSortScope, format.DeclSortScope}, sorts)
}

func TestModule_ScopeDeclarations(t *testing.T) {
	m := NewModule(buildModuleFile(t))

	var names []string
	for scope := range m.ScopeDeclarations() {
		names = append(names, scope.Name().AsIdentifier())
	}

	require.Equal(t, []string{"engine", "Widget"}, names)
}

func TestModule_Imports(t *testing.T) {
	m := NewModule(buildModuleFile(t))

	var partitions []string
	for ref := range m.Imports() {
		require.Equal(t, "", ref.Owner())
		partitions = append(partitions, ref.Partition())
	}

	require.Equal(t, []string{"std"}, partitions)
}

func TestScopeDeclaration_Kind(t *testing.T) {
	f := buildModuleFile(t)

	ns := NewDeclaration(f, format.MakeDeclIndex(format.DeclSortScope, 0)).AsScope()
	cls := NewDeclaration(f, format.MakeDeclIndex(format.DeclSortScope, 1)).AsScope()

	require.True(t, ns.IsNamespace())
	require.False(t, ns.IsClassOrStruct())
	require.True(t, Identifies(ns.Name(), "engine"))

	require.True(t, cls.IsClassOrStruct())
	require.Equal(t, format.BasisClass, cls.Kind())
	require.True(t, cls.HomeScope().IsNull())
}

func TestDeclaration_DeprecationText(t *testing.T) {
	f := buildModuleFile(t)

	cls := NewDeclaration(f, format.MakeDeclIndex(format.DeclSortScope, 1))
	ns := NewDeclaration(f, format.MakeDeclIndex(format.DeclSortScope, 0))

	require.Equal(t, "superseded by Gadget", cls.DeprecationText())
	require.Equal(t, "", ns.DeprecationText())
	require.Empty(t, cls.Attributes())
}

func TestTemplateDeclaration(t *testing.T) {
	f := buildModuleFile(t)

	decl := NewDeclaration(f, format.MakeDeclIndex(format.DeclSortTemplate, 0))
	require.True(t, decl.IsTemplate())

	tmpl := decl.AsTemplate()
	require.True(t, Identifies(tmpl.Name(), "Widget"))
	require.Equal(t, format.DeclSortScope, tmpl.Entity().Sort())

	chart := tmpl.Chart()
	require.Equal(t, format.ChartSortUnilevel, chart.Sort())

	unilevel := chart.AsUnilevel()
	require.Equal(t, 1, unilevel.Len())
	for param := range unilevel.Parameters() {
		require.Equal(t, format.DeclSortParameter, param.Sort())
	}
	require.True(t, unilevel.Constraint().IsNull())

	var specs []format.DeclSort
	for spec := range tmpl.Specializations() {
		specs = append(specs, spec.Sort())
	}
	require.Equal(t, []format.DeclSort{format.DeclSortScope}, specs)
}

func TestName_SortRouting(t *testing.T) {
	f := buildModuleFile(t)

	t.Run("Identifier", func(t *testing.T) {
		name := NewName(f, format.MakeNameIndex(format.NameSortIdentifier, 0))
		require.True(t, name.IsIdentifier())
		require.Equal(t, "", name.AsIdentifier())
	})

	t.Run("Operator", func(t *testing.T) {
		name := NewName(f, format.MakeNameIndex(format.NameSortOperator, 0))
		require.True(t, name.IsOperator())
		require.Equal(t, "operator+", name.OperatorName())
		require.Equal(t, format.Operator(0x21), name.Operator())
		require.Equal(t, "operator+", name.String())
	})

	t.Run("Literal", func(t *testing.T) {
		name := NewName(f, format.MakeNameIndex(format.NameSortLiteral, 0))
		require.True(t, name.IsLiteral())
		require.Equal(t, "sv", name.AsLiteral())
	})

	t.Run("Specialization", func(t *testing.T) {
		name := NewName(f, format.MakeNameIndex(format.NameSortSpecialization, 0))
		require.True(t, name.IsSpecialization())

		spec := name.AsSpecialization()
		require.True(t, Identifies(spec.Primary(), "Widget"))
		require.True(t, spec.Arguments().IsTuple())
		require.Equal(t, 2, spec.Arguments().AsTuple().Len())
	})
}

func TestExpression_QualifiedNameParts(t *testing.T) {
	f := buildModuleFile(t)

	expr := NewExpression(f, format.MakeExprIndex(format.ExprSortQualifiedName, 0))
	require.True(t, expr.IsQualifiedName())

	parts := expr.QualifiedNameParts()
	require.Equal(t, 2, parts.Len())

	var sorts []format.ExprSort
	for part := range parts.All() {
		sorts = append(sorts, part.Sort())
	}
	require.Equal(t, []format.ExprSort{format.ExprSortLiteral, format.ExprSortLiteral}, sorts)
}
