package profile

import (
	"encoding/json"
	"sort"
)

// Tag is a priority marker drawn from a fixed vocabulary.
type Tag string

const (
	TagNuclear           Tag = "nuclear"
	TagNuclearTriad      Tag = "nuclear_triad"
	TagBallisticMissiles Tag = "ballistic_missiles"
	TagICBM              Tag = "icbm"
	TagSubmarines        Tag = "submarines"
	TagCarriers          Tag = "carriers"
	TagAntiSubmarine     Tag = "anti_submarine"
	TagProjection        Tag = "projection"
	TagModernization     Tag = "modernization"
	TagIndustrialBase    Tag = "industrial_base"
	TagMaritime          Tag = "maritime"
	TagCoastalSecurity   Tag = "coastal_security"
	TagCyber             Tag = "cyber"
	TagConventional      Tag = "conventional"
	TagMountainWarfare   Tag = "mountain_warfare"
	TagAirSuperiority    Tag = "air_superiority"
	TagAirDefense        Tag = "air_defense"
	TagSpecialOperations Tag = "special_operations"
	TagJointOperations   Tag = "joint_operations"
	TagSurveillance      Tag = "surveillance"
	TagSpace             Tag = "space"
	TagGenericDefense    Tag = "generic_defense"
)

var vocabulary = map[Tag]bool{
	TagNuclear: true, TagNuclearTriad: true, TagBallisticMissiles: true, TagICBM: true,
	TagSubmarines: true, TagCarriers: true, TagAntiSubmarine: true, TagProjection: true,
	TagModernization: true, TagIndustrialBase: true, TagMaritime: true, TagCoastalSecurity: true,
	TagCyber: true, TagConventional: true, TagMountainWarfare: true, TagAirSuperiority: true,
	TagAirDefense: true, TagSpecialOperations: true, TagJointOperations: true,
	TagSurveillance: true, TagSpace: true, TagGenericDefense: true,
}

// Known reports whether the tag belongs to the built-in vocabulary.
func (t Tag) Known() bool {
	return vocabulary[t]
}

// Vocabulary lists the built-in tags in lexical order.
func Vocabulary() []Tag {
	s := make(TagSet, len(vocabulary))
	for t := range vocabulary {
		s[t] = struct{}{}
	}
	return s.Sorted()
}

// TagSet is an unordered set of tags. The zero value is an empty set.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of tags.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
