// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"github.com/MKhiriev/go-sub-merger/models"
)

const (
	outboundsField = "outbounds"
	tagField       = "tag"
)

// DefaultSelectorTags are the template groups that receive node tags when no
// selector set is configured: the manual "select a proxy" group and the
// "auto-select a proxy" group.
var DefaultSelectorTags = []string{"🚀 节点选择", "🎈 自动选择"}

// Merger splices node entries into a template document.
// It holds no per-merge state and is safe for concurrent use.
type Merger struct {
	selectorTags map[string]struct{}
}

// NewMerger returns a Merger that treats the given tags as selector groups.
// With no tags it falls back to [DefaultSelectorTags].
func NewMerger(selectorTags ...string) *Merger {
	if len(selectorTags) == 0 {
		selectorTags = DefaultSelectorTags
	}

	tags := make(map[string]struct{}, len(selectorTags))
	for _, tag := range selectorTags {
		tags[tag] = struct{}{}
	}

	return &Merger{selectorTags: tags}
}

// Merge appends the node entries found in nodes to template's "outbounds"
// array and appends their tags to every selector group that already has an
// "outbounds" list.
//
// template is modified in place and returned. A null template is treated as
// an empty object. The only failures are [ErrNoNodeList] and
// [ErrTemplateNotObject].
func (m *Merger) Merge(template, nodes any) (any, error) {
	entries, err := NodeEntries(nodes)
	if err != nil {
		return nil, err
	}
	tags := NodeTags(entries)

	root, err := templateRoot(template)
	if err != nil {
		return nil, err
	}

	groups, ok := models.ArrayField(root, outboundsField)
	if ok {
		// selector edits touch only the groups that were in the template;
		// node entries are appended afterwards and never rescanned
		m.splice(groups, tags)
	} else {
		groups = make([]any, 0, len(entries))
	}

	root[outboundsField] = append(groups, entries...)

	return root, nil
}

// IsSelector reports whether tag names a group that receives node tags.
func (m *Merger) IsSelector(tag string) bool {
	_, ok := m.selectorTags[tag]
	return ok
}

func (m *Merger) splice(groups []any, tags []any) {
	for _, g := range groups {
		group, ok := models.AsObject(g)
		if !ok {
			continue
		}

		// a missing or non-string tag reads as ""
		tag, _ := models.StringField(group, tagField)
		if !m.IsSelector(tag) {
			continue
		}

		// selector groups without their own list are left as they are
		members, ok := models.ArrayField(group, outboundsField)
		if !ok {
			continue
		}

		group[outboundsField] = append(members, tags...)
	}
}

// NodeEntries extracts the node entry sequence from a nodes document: the
// "outbounds" array of an object, or the document itself when it is an array.
func NodeEntries(nodes any) ([]any, error) {
	if entries, ok := models.ArrayField(nodes, outboundsField); ok {
		return entries, nil
	}
	if entries, ok := models.AsArray(nodes); ok {
		return entries, nil
	}

	return nil, ErrNoNodeList
}

// NodeTags collects the string "tag" of every entry in order. Entries without
// one are skipped; duplicates are kept.
func NodeTags(entries []any) []any {
	tags := make([]any, 0, len(entries))
	for _, entry := range entries {
		if tag, ok := models.StringField(entry, tagField); ok {
			tags = append(tags, tag)
		}
	}

	return tags
}

func templateRoot(template any) (map[string]any, error) {
	if template == nil {
		return make(map[string]any), nil
	}

	root, ok := models.AsObject(template)
	if !ok {
		return nil, ErrTemplateNotObject
	}

	return root, nil
}
