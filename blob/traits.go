package blob

import (
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// Trait partitions associate side data with declarations as flat
// (declaration, payload) pairs. Each trait index below folds its partition
// into a hash map on first request and returns the built map's entries
// thereafter. A missing trait partition yields an empty map, and a missing
// key yields the payload's zero value; absence of trait data is never an
// error.
const (
	attributeTraitName      = "trait.attribute"
	msvcAttributeTraitName  = ".msvc.trait.decl-attrs"
	deprecatedTraitName     = "trait.deprecated"
	friendTraitName         = "trait.friend"
	specializationTraitName = "trait.specialization"
)

// DeclarationAttributes returns the attributes attached to a declaration.
//
// The list unions the "trait.attribute" partition (object/function traits
// and template attributes) with ".msvc.trait.decl-attrs" (everything else,
// e.g. [[nodiscard]]), in that order; within each partition the partition
// order is preserved. The producer may emit either partition, both or
// neither, and the union is never deduplicated.
//
// The returned slice is shared with the trait map; callers must not modify
// it.
func (f *File) DeclarationAttributes(decl format.DeclIndex) []format.AttrIndex {
	if f.declAttrs == nil {
		f.declAttrs = make(map[format.DeclIndex][]format.AttrIndex)
		f.fillDeclAttributes(attributeTraitName)
		f.fillDeclAttributes(msvcAttributeTraitName)
	}

	return f.declAttrs[decl]
}

func (f *File) fillDeclAttributes(partition string) {
	attrs, ok := TryPartition[record.AssociatedTrait[format.AttrIndex], format.Index](f, partition)
	if !ok {
		return
	}

	for _, t := range attrs.All() {
		f.declAttrs[t.Decl] = append(f.declAttrs[t.Decl], t.Trait)
	}
}

// DeprecationText returns the deprecation message attached to a
// declaration, or the null text offset if it carries none. Duplicate keys
// in "trait.deprecated" resolve last-write-wins.
func (f *File) DeprecationText(decl format.DeclIndex) format.TextOffset {
	if f.deprecations == nil {
		f.deprecations = make(map[format.DeclIndex]format.TextOffset)

		if deprecations, ok := TryPartition[record.AssociatedTrait[format.TextOffset], format.Index](f, deprecatedTraitName); ok {
			for _, t := range deprecations.All() {
				f.deprecations[t.Decl] = t.Trait
			}
		}
	}

	return f.deprecations[decl]
}

// FriendshipOfClass returns the run of friend declarations of a class, or
// the empty sequence if it has none.
func (f *File) FriendshipOfClass(decl format.DeclIndex) format.Sequence {
	if f.friendships == nil {
		f.friendships = make(map[format.DeclIndex]format.Sequence)

		if friendships, ok := TryPartition[record.AssociatedTrait[format.Sequence], format.Index](f, friendTraitName); ok {
			for _, t := range friendships.All() {
				f.friendships[t.Decl] = t.Trait
			}
		}
	}

	return f.friendships[decl]
}

// TemplateSpecializations returns the run of specializations of a template
// inside the "decl" partition, or the empty sequence if it has none.
func (f *File) TemplateSpecializations(decl format.DeclIndex) format.Sequence {
	if f.templateSpecs == nil {
		f.templateSpecs = make(map[format.DeclIndex]format.Sequence)

		if specs, ok := TryPartition[record.AssociatedTrait[format.Sequence], format.Index](f, specializationTraitName); ok {
			for _, t := range specs.All() {
				f.templateSpecs[t.Decl] = t.Trait
			}
		}
	}

	return f.templateSpecs[decl]
}
